// FilePath: cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	nuts "github.com/vaudience/go-nuts"

	"github.com/itsatony/agrisynth/internal/config"
	"github.com/itsatony/agrisynth/internal/server"
)

func main() {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting AgriSynth data service v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen and moves the cursor to the top left,
// so the logo is drawn on an empty terminal.
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

// DrawLogo prints the ASCII logo followed by the version
func DrawLogo() {
	fmt.Println()
	lines := []string{
		"    ___              _ _____             __  __  ",
		"   /   | ____ ______(_) ___/__  ______  / /_/ /_ ",
		"  / /| |/ __ `/ ___/ /\\__ \\/ / / / __ \\/ __/ __ \\",
		" / ___ / /_/ / /  / /___/ / /_/ / / / / /_/ / / /",
		"/_/  |_\\__, /_/  /_//____/\\__, /_/ /_/\\__/_/ /_/ ",
		"      /____/             /____/   ..........  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
