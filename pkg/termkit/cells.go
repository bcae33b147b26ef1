// Package termkit runs widget trees in a terminal with tcell. Widgets are
// measured in character cells, drawn with box-drawing characters and the
// theme's colours, and driven by tcell key and mouse events.
package termkit

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// Cells measures widgets in terminal cells. It implements draw.SizeHandle.
type Cells struct{}

var one = geom.Size{W: 1, H: 1}

// OuterFrame is one cell of box drawing on each side.
func (Cells) OuterFrame() (first, last geom.Size) { return one, one }

// MenuFrame is one cell of box drawing on each side.
func (Cells) MenuFrame() (first, last geom.Size) { return one, one }

// ButtonSurround is a bracket cell on the left and right.
func (Cells) ButtonSurround() (first, last geom.Size) {
	s := geom.Size{W: 1}
	return s, s
}

// InnerMargin is zero.
func (Cells) InnerMargin() geom.Size { return geom.Size{} }

// OuterMargin keeps one blank column between neighbours.
func (Cells) OuterMargin() geom.Size { return geom.Size{W: 1} }

// LineHeight is one row.
func (Cells) LineHeight(draw.TextClass) int { return 1 }

// TextBound measures display width with East Asian wide characters
// counted as two cells.
func (Cells) TextBound(text string, class draw.TextClass, axis layout.AxisInfo) layout.SizeRules {
	lines := strings.Split(text, "\n")
	if axis.IsHorizontal() {
		ideal := 0
		for _, line := range lines {
			ideal = max(ideal, runewidth.StringWidth(line))
		}
		if class.IsSingleLine() {
			return layout.NewSizeRules(ideal, ideal, layout.Margins{}, layout.StretchFixed)
		}
		minimum := 0
		for _, word := range strings.FieldsFunc(text, unicode.IsSpace) {
			minimum = max(minimum, runewidth.StringWidth(word))
		}
		return layout.NewSizeRules(minimum, ideal, layout.Margins{}, layout.StretchFiller)
	}
	n := len(lines)
	if width, ok := axis.Fixed(); ok && !class.IsSingleLine() {
		n = len(wrap(text, width))
	}
	return layout.NewSizeRules(n, n, layout.Margins{}, layout.StretchFixed)
}

// wrap breaks text into lines no wider than width cells, at spaces where
// possible.
func wrap(text string, width int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		current := words[0]
		for _, w := range words[1:] {
			if next := current + " " + w; runewidth.StringWidth(next) <= width {
				current = next
				continue
			}
			out = append(out, current)
			current = w
		}
		out = append(out, current)
	}
	return out
}

var _ draw.SizeHandle = Cells{}

func sizeOf(width, height int) geom.Size {
	return geom.Size{W: width, H: height}
}
