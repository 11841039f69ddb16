// Package catalog holds the fixed list of design styles offered to the user.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/PabloGalante/lumina/internal/domain"
)

//go:embed styles.yaml
var builtin []byte

// Catalog is an immutable, ordered set of styles.
type Catalog struct {
	styles []domain.Style
	byID   map[domain.StyleID]domain.Style
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in styles are invalid: %v", err))
	}
	return c
}

// Load reads a catalog from path, or returns the built-in one when path is
// empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading styles file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML list of styles. IDs must be present and unique, and
// every style needs a name and an instruction.
func Parse(data []byte) (*Catalog, error) {
	var styles []domain.Style
	if err := yaml.Unmarshal(data, &styles); err != nil {
		return nil, fmt.Errorf("decoding styles: %w", err)
	}
	if len(styles) == 0 {
		return nil, errors.New("styles: catalog is empty")
	}

	byID := make(map[domain.StyleID]domain.Style, len(styles))
	for i, s := range styles {
		s.ID = domain.StyleID(strings.TrimSpace(string(s.ID)))
		switch {
		case s.ID == "":
			return nil, fmt.Errorf("styles[%d]: id is required", i)
		case s.Name == "":
			return nil, fmt.Errorf("styles[%d] (%s): name is required", i, s.ID)
		case s.Instruction == "":
			return nil, fmt.Errorf("styles[%d] (%s): instruction is required", i, s.ID)
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("styles[%d]: duplicate id %q", i, s.ID)
		}
		styles[i] = s
		byID[s.ID] = s
	}

	return &Catalog{styles: styles, byID: byID}, nil
}

// All returns the styles in catalog order.
func (c *Catalog) All() []domain.Style {
	return append([]domain.Style(nil), c.styles...)
}

func (c *Catalog) Len() int {
	return len(c.styles)
}

func (c *Catalog) Get(id domain.StyleID) (domain.Style, error) {
	s, ok := c.byID[id]
	if !ok {
		return domain.Style{}, fmt.Errorf("%w: %s", domain.ErrStyleNotFound, id)
	}
	return s, nil
}
