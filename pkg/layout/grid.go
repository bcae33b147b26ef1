package layout

import "github.com/go-drift/rui/pkg/geom"

// GridCell is the position of a child in a grid. Spans of zero count as one.
type GridCell struct {
	Col, Row         int
	ColSpan, RowSpan int
}

func (c GridCell) span(vertical bool) (first, n int) {
	if vertical {
		return c.Row, max(c.RowSpan, 1)
	}
	return c.Col, max(c.ColSpan, 1)
}

// GridSolver lays out children in cells of a grid, allowing cells to span
// several columns or rows.
//
// It is used the same way as [RowSolver].
type GridSolver struct {
	// Widget names the owning widget in contract violations.
	Widget string

	cells  []GridCell
	dims   [2]int
	tracks [2][]SizeRules
	store  axisStore
}

// NewGridSolver returns a solver for children occupying cells, in child order.
func NewGridSolver(cells []GridCell) *GridSolver {
	g := &GridSolver{cells: cells}
	for _, c := range cells {
		for i, vertical := range []bool{false, true} {
			first, n := c.span(vertical)
			g.dims[i] = max(g.dims[i], first+n)
		}
	}
	return g
}

// Cols returns the number of columns.
func (g *GridSolver) Cols() int { return g.dims[0] }

// Rows returns the number of rows.
func (g *GridSolver) Rows() int { return g.dims[1] }

// Rules records the children's rules for axis and returns the grid's rules.
//
// Each column (or row) takes the maximum of the rules of cells spanning only
// it. A cell spanning several columns whose minimum or ideal exceeds the sum
// of the columns it covers adds the shortfall to them in proportion to their
// ideal sizes, or equally when those are all zero.
func (g *GridSolver) Rules(axis AxisInfo, children []SizeRules) SizeRules {
	g.store.record(axis, children)
	v := axis.IsVertical()
	i := axis.index()
	tracks := make([]SizeRules, g.dims[i])

	for ci, r := range children {
		if ci >= len(g.cells) {
			break
		}
		first, n := g.cells[ci].span(v)
		if n == 1 {
			tracks[first] = tracks[first].Max(r)
		}
	}
	for ci, r := range children {
		if ci >= len(g.cells) {
			break
		}
		first, n := g.cells[ci].span(v)
		if n > 1 {
			spreadSpan(tracks[first:first+n], r)
		}
	}

	g.tracks[i] = tracks
	return Sum(tracks)
}

// spreadSpan widens tracks so that together they satisfy r.
func spreadSpan(tracks []SizeRules, r SizeRules) {
	tracks[0].margins.First = max(tracks[0].margins.First, r.margins.First)
	last := len(tracks) - 1
	tracks[last].margins.Last = max(tracks[last].margins.Last, r.margins.Last)

	have := Sum(tracks)
	weights := make([]int, len(tracks))
	for i, t := range tracks {
		weights[i] = t.ideal
	}
	if d := r.min - have.min; d > 0 {
		for i, extra := range share(d, weights) {
			tracks[i].min += extra
			tracks[i].ideal = max(tracks[i].ideal, tracks[i].min)
		}
	}
	have = Sum(tracks)
	if d := r.ideal - have.ideal; d > 0 {
		for i, extra := range share(d, weights) {
			tracks[i].ideal += extra
		}
	}
	if r.stretch > have.stretch {
		for i := range tracks {
			tracks[i].stretch = r.stretch
		}
	}
}

// Place computes the children's rects within rect.
//
// Place panics with a *errors.ContractError if Rules has not been called for
// both axes since the last horizontal recomputation.
func (g *GridSolver) Place(rect geom.Rect, hints []AlignHints) []geom.Rect {
	g.store.check("layout.GridSolver.Place", g.Widget)

	var offsets, sizes [2][]int
	for i, vertical := range []bool{false, true} {
		tracks := g.tracks[i]
		sizes[i] = Distribute(tracks, rect.Size.Get(vertical))
		gaps := Gaps(tracks)
		offsets[i] = make([]int, len(tracks))
		pos := rect.Pos.Get(vertical)
		for t := range tracks {
			offsets[i][t] = pos
			pos += sizes[i][t]
			if t < len(gaps) {
				pos += gaps[t]
			}
		}
	}

	out := make([]geom.Rect, len(g.store.rules[0]))
	for ci := range out {
		if ci >= len(g.cells) {
			break
		}
		var slot geom.Rect
		var ideal geom.Size
		for i, vertical := range []bool{false, true} {
			first, n := g.cells[ci].span(vertical)
			start := offsets[i][first]
			end := offsets[i][first+n-1] + sizes[i][first+n-1]
			slot.Pos = slot.Pos.Set(vertical, start)
			slot.Size = slot.Size.Set(vertical, end-start)

			if r := g.store.rules[i]; ci < len(r) && r[ci].stretch == StretchFixed {
				ideal = ideal.Set(vertical, r[ci].ideal)
			} else {
				ideal = ideal.Set(vertical, end-start)
			}
		}
		out[ci] = childHints(hints, ci).Place(slot, ideal)
	}
	return out
}
