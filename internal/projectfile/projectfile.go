// Package projectfile reads and writes mill projects as YAML.
// Only inputs are stored; derived fields are recomputed on load.
package projectfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gorolling/internal/mill"
	"github.com/alexiusacademia/gorolling/internal/rolling"
)

// ValidationError represents a structurally invalid project file
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalid(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Decode parses a project, validates it and recomputes every derived field.
// Unknown keys are rejected so typos in a project file fail loudly.
func Decode(r io.Reader) (mill.Project, error) {
	var p mill.Project
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return mill.Project{}, fmt.Errorf("parse project: %w", err)
	}
	if err := Validate(p); err != nil {
		return mill.Project{}, err
	}
	for i, m := range p.Motors {
		p.Motors[i] = mill.NewMotor(m)
	}
	return mill.Recompute(p), nil
}

// Load reads a project file
func Load(path string) (mill.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mill.Project{}, err
	}
	return Decode(bytes.NewReader(data))
}

// Encode writes the project inputs as YAML
func Encode(w io.Writer, p mill.Project) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}

// Save validates and writes a project file, creating its directory if
// needed. A project Load would reject is never written.
func Save(path string, p mill.Project) error {
	if err := Validate(p); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Validate checks identifiers and stand positions
func Validate(p mill.Project) error {
	if len(p.Stands) == 0 {
		return invalid("project must have at least one stand")
	}

	ids := make(map[string]bool)
	positions := make(map[rolling.Position]string)
	for i, s := range p.Stands {
		if s.ID == "" {
			return invalid("stand %d has no id", i+1)
		}
		if ids[s.ID] {
			return invalid("duplicate stand id %q", s.ID)
		}
		ids[s.ID] = true

		if s.PassNumber < 1 {
			return invalid("stand %q must have a pass number of 1 or more", s.ID)
		}
		if other, ok := positions[s.Position()]; ok {
			return invalid("stands %q and %q share %s pass %d", other, s.ID, s.Train, s.PassNumber)
		}
		positions[s.Position()] = s.ID
	}

	motors := make(map[string]bool)
	for i, m := range p.Motors {
		if m.ID == "" {
			return invalid("motor %d has no id", i+1)
		}
		if motors[m.ID] {
			return invalid("duplicate motor id %q", m.ID)
		}
		motors[m.ID] = true
	}

	blocks := make(map[string]bool)
	for i, b := range p.Blocks {
		if b.ID == "" {
			return invalid("block %d has no id", i+1)
		}
		if blocks[b.ID] {
			return invalid("duplicate block id %q", b.ID)
		}
		blocks[b.ID] = true
	}
	return nil
}
