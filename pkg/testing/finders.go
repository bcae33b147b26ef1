package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/rui/pkg/core"
)

// Finder locates widgets in the tree.
type Finder interface {
	// Evaluate returns all matching widgets under root (depth-first pre-order).
	Evaluate(root core.Widget) []core.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []core.Widget
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.description()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.widgets), r.description()))
	}
	return r.widgets[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Widget {
	return r.widgets
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.widgets)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.widgets) > 0
}

// ID returns the id of the first match. Panics if no matches.
func (r FinderResult) ID() core.WidgetID {
	return r.First().Core().ID()
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// predicateFinder matches widgets satisfying a predicate.
type predicateFinder struct {
	match func(core.Widget) bool
	desc  string
}

func (f predicateFinder) Evaluate(root core.Widget) []core.Widget {
	var out []core.Widget
	core.Walk(root, func(w core.Widget) {
		if f.match(w) {
			out = append(out, w)
		}
	})
	return out
}

func (f predicateFinder) Description() string { return f.desc }

// ByText finds widgets whose text equals s.
func ByText(s string) Finder {
	return predicateFinder{
		match: func(w core.Widget) bool {
			t, ok := w.(core.HasText)
			return ok && t.Text() == s
		},
		desc: fmt.Sprintf("ByText(%q)", s),
	}
}

// ByTextContaining finds widgets whose text contains s.
func ByTextContaining(s string) Finder {
	return predicateFinder{
		match: func(w core.Widget) bool {
			t, ok := w.(core.HasText)
			return ok && strings.Contains(t.Text(), s)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", s),
	}
}

// ByName finds widgets whose WidgetName equals name.
func ByName(name string) Finder {
	return predicateFinder{
		match: func(w core.Widget) bool { return w.WidgetName() == name },
		desc:  fmt.Sprintf("ByName(%q)", name),
	}
}

// ByID finds the widget with the given id.
func ByID(id core.WidgetID) Finder {
	return predicateFinder{
		match: func(w core.Widget) bool { return w.Core().ID() == id },
		desc:  fmt.Sprintf("ByID(%v)", id),
	}
}

// ByType finds widgets with the same dynamic type as sample.
func ByType(sample core.Widget) Finder {
	typ := reflect.TypeOf(sample)
	return predicateFinder{
		match: func(w core.Widget) bool { return reflect.TypeOf(w) == typ },
		desc:  fmt.Sprintf("ByType(%v)", typ),
	}
}

// ByWidget finds the given widget instance.
func ByWidget(target core.Widget) Finder {
	return predicateFinder{
		match: func(w core.Widget) bool { return w == target },
		desc:  fmt.Sprintf("ByWidget(%s)", target.WidgetName()),
	}
}
