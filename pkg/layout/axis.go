package layout

import "fmt"

// AxisInfo describes the axis being sized in pass one.
//
// When the size along the other axis is already known (for example the width
// when wrapping text to compute a height), it is carried as the fixed size.
type AxisInfo struct {
	vertical bool
	hasFixed bool
	fixed    int
}

// Horizontal returns the horizontal axis with no fixed size on the other axis.
func Horizontal() AxisInfo {
	return AxisInfo{}
}

// Vertical returns the vertical axis with no fixed size on the other axis.
func Vertical() AxisInfo {
	return AxisInfo{vertical: true}
}

// NewAxisInfo returns the axis selected by vertical.
func NewAxisInfo(vertical bool) AxisInfo {
	return AxisInfo{vertical: vertical}
}

// IsVertical reports whether this is the vertical axis.
func (a AxisInfo) IsVertical() bool {
	return a.vertical
}

// IsHorizontal reports whether this is the horizontal axis.
func (a AxisInfo) IsHorizontal() bool {
	return !a.vertical
}

// Fixed returns the size along the other axis, if known.
func (a AxisInfo) Fixed() (int, bool) {
	return a.fixed, a.hasFixed
}

// WithFixed returns a copy with the other axis fixed to size.
func (a AxisInfo) WithFixed(size int) AxisInfo {
	a.hasFixed = true
	a.fixed = size
	return a
}

// index returns 0 for horizontal and 1 for vertical, for per-axis storage.
func (a AxisInfo) index() int {
	if a.vertical {
		return 1
	}
	return 0
}

func (a AxisInfo) String() string {
	name := "horizontal"
	if a.vertical {
		name = "vertical"
	}
	if a.hasFixed {
		return fmt.Sprintf("%s(other=%d)", name, a.fixed)
	}
	return name
}
