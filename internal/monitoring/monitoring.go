package monitoring

import (
	"sort"
	"strings"
	"sync"
	"time"

	nuts "github.com/vaudience/go-nuts"
)

// Config holds monitoring configuration
type Config struct {
	LogEvents bool
}

// Service records service events and keeps per-event counters
type Service struct {
	config  Config
	started time.Time

	mu     sync.RWMutex
	counts map[string]int64
}

// EventMetrics is the snapshot exposed on the metrics endpoint
type EventMetrics struct {
	Since  time.Time        `json:"since"`
	Uptime string           `json:"uptime"`
	Events map[string]int64 `json:"events"`
}

// NewService creates a new monitoring service
func NewService(config Config) *Service {
	return &Service{
		config:  config,
		started: time.Now(),
		counts:  make(map[string]int64),
	}
}

// RecordEvent records a monitored event with labels
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	s.mu.Lock()
	s.counts[eventName]++
	s.mu.Unlock()

	if s.config.LogEvents {
		nuts.L.Infof("[Monitoring] Event %s recorded with labels: %s", eventName, formatLabels(labels))
	}
}

// EventCounts returns a copy of the counters
func (s *Service) EventCounts() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int64, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

// GetEventMetrics returns the counters together with the uptime
func (s *Service) GetEventMetrics() EventMetrics {
	return EventMetrics{
		Since:  s.started.UTC(),
		Uptime: time.Since(s.started).Round(time.Second).String(),
		Events: s.EventCounts(),
	}
}

func formatLabels(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+labels[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
