package layout

import (
	"github.com/go-drift/rui/pkg/errors"
	"github.com/go-drift/rui/pkg/geom"
)

// axisStore holds the child rules negotiated in pass one for both axes.
type axisStore struct {
	rules [2][]SizeRules
	valid [2]bool
}

// record stores rules for axis. Recomputing the horizontal axis marks the
// vertical rules stale, since heights may depend on widths.
func (s *axisStore) record(axis AxisInfo, rules []SizeRules) {
	i := axis.index()
	s.rules[i] = append(s.rules[i][:0], rules...)
	s.valid[i] = true
	if i == 0 {
		s.valid[1] = false
	}
}

func (s *axisStore) check(op, widget string) {
	for i, ok := range s.valid {
		if !ok {
			errors.Contract(op, widget, "size rules missing for axis %s", NewAxisInfo(i == 1))
		}
	}
}

// RowSolver lays out children in a single row or column.
//
// Usage within a widget: call Rules for the horizontal axis, then for the
// vertical axis, passing the children's rules; then call Place with the
// widget's rect to obtain each child's rect.
type RowSolver struct {
	// Widget names the owning widget in contract violations.
	Widget string

	dir   geom.Direction
	store axisStore
}

// NewRowSolver returns a solver laying children out in dir.
func NewRowSolver(dir geom.Direction) *RowSolver {
	return &RowSolver{dir: dir}
}

// Direction returns the direction children are laid out in.
func (s *RowSolver) Direction() geom.Direction {
	return s.dir
}

// Rules records the children's rules for axis and returns the combined rules.
// Children are appended along the main axis and maxed across the cross axis.
func (s *RowSolver) Rules(axis AxisInfo, children []SizeRules) SizeRules {
	s.store.record(axis, children)
	if axis.IsVertical() == s.dir.IsVertical() {
		return Sum(children)
	}
	return MaxAll(children)
}

// Place computes the children's rects within rect. hints may be nil or have
// one entry per child.
//
// Place panics with a *errors.ContractError if Rules has not been called for
// both axes since the last horizontal recomputation.
func (s *RowSolver) Place(rect geom.Rect, hints []AlignHints) []geom.Rect {
	s.store.check("layout.RowSolver.Place", s.Widget)
	main := s.dir.IsVertical()
	mainRules := s.store.rules[axisIndex(main)]
	crossRules := s.store.rules[axisIndex(!main)]
	n := len(mainRules)

	sizes := Distribute(mainRules, rect.Size.Get(main))
	gaps := Gaps(mainRules)
	out := make([]geom.Rect, n)

	pos := 0
	for i := 0; i < n; i++ {
		var slot geom.Rect
		slot.Size = slot.Size.Set(main, sizes[i]).Set(!main, rect.Size.Get(!main))
		offset := pos
		if s.dir.IsReversed() {
			offset = rect.Size.Get(main) - pos - sizes[i]
		}
		slot.Pos = rect.Pos.Set(main, rect.Pos.Get(main)+offset)
		pos += sizes[i]
		if i < len(gaps) {
			pos += gaps[i]
		}

		var ideal geom.Size
		ideal = ideal.Set(main, mainRules[i].ideal)
		if i < len(crossRules) {
			ideal = ideal.Set(!main, crossRules[i].ideal)
		}
		out[i] = placeChild(slot, ideal, childHints(hints, i), stretchOf(mainRules, i), stretchOf(crossRules, i), main)
	}
	return out
}

// placeChild aligns a child inside its slot on each axis where the child is
// fixed and the slot exceeds its ideal size.
func placeChild(slot geom.Rect, ideal geom.Size, h AlignHints, mainStretch, crossStretch Stretch, main bool) geom.Rect {
	if mainStretch != StretchFixed {
		ideal = ideal.Set(main, slot.Size.Get(main))
	}
	if crossStretch != StretchFixed {
		ideal = ideal.Set(!main, slot.Size.Get(!main))
	}
	return h.Place(slot, ideal)
}

func childHints(hints []AlignHints, i int) AlignHints {
	if i < len(hints) {
		return hints[i]
	}
	return NoHints
}

func stretchOf(rules []SizeRules, i int) Stretch {
	if i < len(rules) {
		return rules[i].stretch
	}
	return StretchFixed
}

func axisIndex(vertical bool) int {
	if vertical {
		return 1
	}
	return 0
}
