package stretch

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed stretches.yaml
var defaultCatalog []byte

type Stretch struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Duration    string `yaml:"duration" json:"duration"`
}

func (s Stretch) String() string {
	return fmt.Sprintf("%s - %s (%s)", s.Name, s.Description, s.Duration)
}

type Catalog struct {
	items []Stretch
}

func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse reads a YAML list of stretches. Every item needs a name.
func Parse(data []byte) (*Catalog, error) {
	var items []Stretch
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse stretch catalog: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("stretch catalog is empty")
	}
	for i, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("stretch %d has no name", i)
		}
	}
	return &Catalog{items: items}, nil
}

func (c *Catalog) Len() int { return len(c.items) }

func (c *Catalog) All() []Stretch {
	out := make([]Stretch, len(c.items))
	copy(out, c.items)
	return out
}

// ForTime rotates through the catalog once per minute.
func (c *Catalog) ForTime(t time.Time) Stretch {
	return c.items[t.Minute()%len(c.items)]
}
