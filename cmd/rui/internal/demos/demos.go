// Package demos holds the sample programs run by "rui demo".
package demos

import (
	"sort"

	"github.com/go-drift/rui/pkg/widgets"
)

// Demo builds the windows of one sample program.
type Demo struct {
	Name  string
	Short string
	Build func(title string) []*widgets.Window
}

var registry = map[string]Demo{}

func register(d Demo) {
	registry[d.Name] = d
}

// Lookup returns the demo called name.
func Lookup(name string) (Demo, bool) {
	d, ok := registry[name]
	return d, ok
}

// All returns every demo sorted by name.
func All() []Demo {
	out := make([]Demo, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
