// Package schema validates the shape of generated records against the JSON
// schemas embedded under schemas/. Top-level schemas live in schemas/, shared
// entity definitions in schemas/refs/.
package schema

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
)

// BaseURI prefixes every schema $id
const BaseURI = "https://agrisynth.dev/schemas/"

// Kind names a top-level schema
type Kind string

const (
	KindUser            Kind = "user"
	KindFarm            Kind = "farm"
	KindSensorReading   Kind = "sensor-reading"
	KindPestDetection   Kind = "pest-detection"
	KindLivestock       Kind = "livestock"
	KindLivestockHealth Kind = "livestock-health"
	KindProduct         Kind = "product"
	KindOrder           Kind = "order"
	KindDataset         Kind = "dataset"
)

// ID returns the $id of the kind's schema
func (k Kind) ID() string {
	return BaseURI + string(k) + ".json"
}

//go:embed schemas
var schemaFS embed.FS

// Validator checks values against compiled schemas
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles the embedded schemas
func NewValidator() (*Validator, error) {
	sub, err := fs.Sub(schemaFS, "schemas")
	if err != nil {
		return nil, err
	}
	return NewValidatorFromFS(sub)
}

// NewValidatorFromFS compiles the json files at the root of fsys as top-level
// schemas, resolving references against the json files in refs/
func NewValidatorFromFS(fsys fs.FS) (*Validator, error) {
	tops, err := readSchemas(fsys, ".")
	if err != nil {
		return nil, err
	}
	refs, err := readSchemas(fsys, "refs")
	if err != nil {
		return nil, err
	}

	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, len(tops))}
	for _, top := range tops {
		var header struct {
			ID string `json:"$id"`
		}
		if err := json.Unmarshal([]byte(top), &header); err != nil {
			return nil, fmt.Errorf("parse schema: %w", err)
		}
		if header.ID == "" {
			return nil, fmt.Errorf("schema without $id: %.60s", top)
		}

		sl := gojsonschema.NewSchemaLoader()
		for _, ref := range refs {
			if err := sl.AddSchemas(gojsonschema.NewStringLoader(ref)); err != nil {
				return nil, fmt.Errorf("add ref for %s: %w", header.ID, err)
			}
		}
		compiled, err := sl.Compile(gojsonschema.NewStringLoader(top))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", header.ID, err)
		}
		v.schemas[header.ID] = compiled
	}
	return v, nil
}

func readSchemas(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read schema dir %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", e.Name(), err)
		}
		out = append(out, string(data))
	}
	return out, nil
}

// Has reports whether a schema for kind is loaded
func (v *Validator) Has(kind Kind) bool {
	_, ok := v.schemas[kind.ID()]
	return ok
}

// Validate checks a Go value (struct, slice element or map) against the kind's schema
func (v *Validator) Validate(kind Kind, value interface{}) error {
	return v.validate(kind, gojsonschema.NewGoLoader(value))
}

// ValidateJSON checks raw JSON against the kind's schema
func (v *Validator) ValidateJSON(kind Kind, raw []byte) error {
	return v.validate(kind, gojsonschema.NewBytesLoader(raw))
}

func (v *Validator) validate(kind Kind, loader gojsonschema.JSONLoader) error {
	s, ok := v.schemas[kind.ID()]
	if !ok {
		return fmt.Errorf("no schema for %s", kind)
	}
	result, err := s.Validate(loader)
	if err != nil {
		return fmt.Errorf("validate %s: %w", kind, err)
	}
	if result.Valid() {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "invalid %s:", kind)
	for _, e := range result.Errors() {
		fmt.Fprintf(&b, "\n- %s", e)
	}
	return errors.New(b.String())
}
