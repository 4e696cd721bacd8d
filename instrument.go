package scorecraft

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type (
	// Family is a named group of instruments, e.g. Woodwinds, shown as one
	// collapsible group in the instrument picker.
	Family struct {
		Name        string
		Instruments []string
	}

	// Catalog is the static list of instrument families the user can pick
	// instruments from.
	Catalog struct {
		Families []Family
	}
)

//go:embed catalog.yml
var defaultCatalogYaml []byte

// DefaultCatalog returns the built-in catalog. It panics if the embedded
// catalog is broken.
func DefaultCatalog() Catalog {
	c, err := ReadCatalog(bytes.NewReader(defaultCatalogYaml))
	if err != nil {
		panic(fmt.Errorf("failed to read default catalog: %w", err))
	}
	return c
}

// ReadCatalog decodes and validates a catalog from YAML. Unknown keys are
// rejected.
func ReadCatalog(r io.Reader) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Catalog{}, fmt.Errorf("could not decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate checks that the catalog has at least one family, that every family
// is named uniquely and that no instrument name is empty.
func (c *Catalog) Validate() error {
	if len(c.Families) == 0 {
		return errors.New("catalog has no instrument families")
	}
	seen := make(map[string]bool, len(c.Families))
	for i, f := range c.Families {
		if f.Name == "" {
			return fmt.Errorf("instrument family %d has no name", i)
		}
		if seen[f.Name] {
			return fmt.Errorf("instrument family %q appears twice", f.Name)
		}
		seen[f.Name] = true
		for j, name := range f.Instruments {
			if name == "" {
				return fmt.Errorf("instrument %d of family %q has no name", j, f.Name)
			}
		}
	}
	return nil
}

// Family returns the family with the given name.
func (c *Catalog) Family(name string) (Family, bool) {
	for _, f := range c.Families {
		if f.Name == name {
			return f, true
		}
	}
	return Family{}, false
}

// Copy makes a deep copy of a Catalog.
func (c *Catalog) Copy() Catalog {
	families := make([]Family, len(c.Families))
	for i, f := range c.Families {
		families[i] = Family{Name: f.Name, Instruments: append([]string(nil), f.Instruments...)}
	}
	return Catalog{Families: families}
}
