package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/monadlab/monadlab/pkg/maybe"
)

// Demo is one before/after teaching entry. Entries are static data; the
// catalog never mutates after load.
type Demo struct {
	Slug    string `yaml:"slug"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Before  string `yaml:"before"`
	After   string `yaml:"after"`
	Input   string `yaml:"input"`
}

//go:embed demos.yaml
var rawDemos []byte

var demos []Demo

func init() {
	if err := yaml.Unmarshal(rawDemos, &demos); err != nil {
		panic(fmt.Sprintf("catalog: bad embedded demos.yaml: %v", err))
	}
}

// All returns every demo in catalog order
func All() []Demo {
	out := make([]Demo, len(demos))
	copy(out, demos)
	return out
}

// Slugs returns the demo slugs in catalog order
func Slugs() []string {
	out := make([]string, 0, len(demos))
	for _, d := range demos {
		out = append(out, d.Slug)
	}
	return out
}

// Get looks a demo up by slug
func Get(slug string) maybe.Maybe[Demo] {
	for _, d := range demos {
		if d.Slug == slug {
			return maybe.Just(d)
		}
	}
	return maybe.None[Demo]()
}
