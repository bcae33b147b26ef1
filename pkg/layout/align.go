package layout

import "github.com/go-drift/rui/pkg/geom"

// Align positions a widget inside a slot larger than its ideal size.
type Align uint8

const (
	// AlignDefault lets the widget decide; for most widgets this stretches.
	AlignDefault Align = iota
	// AlignStart places the widget at the left or top of the slot.
	AlignStart
	// AlignCenter centers the widget in the slot.
	AlignCenter
	// AlignEnd places the widget at the right or bottom of the slot.
	AlignEnd
	// AlignStretch fills the slot.
	AlignStretch
)

// String returns a human-readable representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignDefault:
		return "default"
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignStretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// AlignHints carries per-axis alignment from parent to child in pass two.
type AlignHints struct {
	Horiz Align
	Vert  Align
}

// NoHints is the zero AlignHints: default on both axes.
var NoHints = AlignHints{}

// Get returns the hint for the given axis.
func (h AlignHints) Get(vertical bool) Align {
	if vertical {
		return h.Vert
	}
	return h.Horiz
}

// WithDefault returns h with default entries replaced by those of d.
func (h AlignHints) WithDefault(d AlignHints) AlignHints {
	if h.Horiz == AlignDefault {
		h.Horiz = d.Horiz
	}
	if h.Vert == AlignDefault {
		h.Vert = d.Vert
	}
	return h
}

// Place returns the rect of a widget of the given ideal size inside slot.
// Axes whose hint is default or stretch, or whose slot is not larger than
// ideal, fill the slot.
func (h AlignHints) Place(slot geom.Rect, ideal geom.Size) geom.Rect {
	for _, vertical := range []bool{false, true} {
		pos, size := alignAxis(h.Get(vertical), slot.Pos.Get(vertical), slot.Size.Get(vertical), ideal.Get(vertical))
		slot.Pos = slot.Pos.Set(vertical, pos)
		slot.Size = slot.Size.Set(vertical, size)
	}
	return slot
}

func alignAxis(a Align, pos, avail, ideal int) (int, int) {
	if avail <= ideal {
		return pos, avail
	}
	switch a {
	case AlignStart:
		return pos, ideal
	case AlignCenter:
		return pos + (avail-ideal)/2, ideal
	case AlignEnd:
		return pos + avail - ideal, ideal
	default:
		return pos, avail
	}
}
