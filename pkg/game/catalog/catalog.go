// Package catalog holds the static room templates floors are built from.
// The default set is embedded; a custom YAML catalog can replace it.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"pixelshooter/pkg/engine/world"
)

// MinDoors is the fewest doors a template may have.
const MinDoors = 2

//go:embed templates.yaml
var defaultTemplates []byte

// Template is an immutable room shape: its pixel size and the walls that can
// carry a door.
type Template struct {
	Name   string
	Width  float64
	Height float64
	Doors  world.Doors
}

// Catalog is an ordered list of templates.
type Catalog struct {
	Templates []*Template
}

type templateFile struct {
	Templates []struct {
		Name   string   `yaml:"name"`
		Width  float64  `yaml:"width"`
		Height float64  `yaml:"height"`
		Doors  []string `yaml:"doors"`
	} `yaml:"templates"`
}

// Load parses and validates a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var f templateFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{}
	for i, t := range f.Templates {
		var doors world.Doors
		for _, name := range t.Doors {
			dir, ok := world.ParseDirection(name)
			if !ok {
				return nil, fmt.Errorf("template %d (%s): unknown door %q", i, t.Name, name)
			}
			doors = doors.With(dir)
		}
		c.Templates = append(c.Templates, &Template{
			Name:   t.Name,
			Width:  t.Width,
			Height: t.Height,
			Doors:  doors,
		})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile loads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultTemplates))
	if err != nil {
		panic("embedded room catalog is invalid: " + err.Error())
	}
	return c
}

// Validate checks the preconditions the generator relies on.
func (c *Catalog) Validate() error {
	if c == nil || len(c.Templates) == 0 {
		return errors.New("catalog has no templates")
	}
	for i, t := range c.Templates {
		if t.Width <= 0 || t.Height <= 0 {
			return fmt.Errorf("template %d (%s): size %.0fx%.0f must be positive", i, t.Name, t.Width, t.Height)
		}
		if t.Doors.Count() < MinDoors {
			return fmt.Errorf("template %d (%s): has %d doors, need at least %d", i, t.Name, t.Doors.Count(), MinDoors)
		}
	}
	return nil
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.Templates)
}
