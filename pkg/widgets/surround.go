package widgets

import (
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// surround sizes content inside a border, keeping the content's own margins
// as padding. It remembers what it needs to place the content later.
type surround struct {
	first, last geom.Size
	margins     [2]layout.Margins
}

// rules returns content surrounded by a border of first and last, with outer
// as the margin around the whole.
func (s *surround) rules(axis layout.AxisInfo, content layout.SizeRules, first, last, outer geom.Size) layout.SizeRules {
	s.first, s.last = first, last
	if axis.IsVertical() {
		s.margins[1] = content.Margins()
	} else {
		s.margins[0] = content.Margins()
	}
	frame := layout.ExtractFixed(axis, first.Add(last), outer)
	return content.Surrounded(frame, true)
}

// inner returns the content rect within rect.
func (s *surround) inner(rect geom.Rect) geom.Rect {
	first := s.first.Add(geom.Size{W: s.margins[0].First, H: s.margins[1].First})
	last := s.last.Add(geom.Size{W: s.margins[0].Last, H: s.margins[1].Last})
	return rect.Shrink(first, last)
}
