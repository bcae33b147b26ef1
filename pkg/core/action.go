package core

import "strings"

// Action is a set of follow-up work for the driver, accumulated during
// dispatch and applied once the dispatch completes.
type Action uint8

const (
	// ActionNone requires nothing.
	ActionNone Action = 0
	// ActionRedraw redraws the window.
	ActionRedraw Action = 1 << iota
	// ActionRegionMoved re-runs hit-testing for the cursor position.
	ActionRegionMoved
	// ActionResizePopups re-lays out open popups.
	ActionResizePopups
	// ActionResize re-runs layout for the whole window.
	ActionResize
	// ActionReconfigure reassigns ids and re-runs Configure.
	ActionReconfigure
	// ActionClose closes the window.
	ActionClose
)

// Has reports whether all bits of b are set in a.
func (a Action) Has(b Action) bool {
	return a&b == b
}

func (a Action) String() string {
	if a == ActionNone {
		return "none"
	}
	var names []string
	for _, n := range []struct {
		a    Action
		name string
	}{
		{ActionRedraw, "redraw"},
		{ActionRegionMoved, "region-moved"},
		{ActionResizePopups, "resize-popups"},
		{ActionResize, "resize"},
		{ActionReconfigure, "reconfigure"},
		{ActionClose, "close"},
	} {
		if a&n.a != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
