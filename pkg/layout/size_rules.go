package layout

import (
	"fmt"

	"github.com/go-drift/rui/pkg/geom"
)

// Stretch is the weight with which a widget absorbs space beyond its ideal size.
// Higher values take proportionally more; StretchFixed takes none.
type Stretch uint8

const (
	// StretchFixed never grows beyond the ideal size.
	StretchFixed Stretch = iota
	// StretchFiller grows only as a last resort.
	StretchFiller
	// StretchLow grows, with low priority.
	StretchLow
	// StretchHigh grows, with high priority.
	StretchHigh
	// StretchMaximize takes as much space as it can.
	StretchMaximize
)

// String returns a human-readable representation of the stretch policy.
func (s Stretch) String() string {
	switch s {
	case StretchFixed:
		return "fixed"
	case StretchFiller:
		return "filler"
	case StretchLow:
		return "low"
	case StretchHigh:
		return "high"
	case StretchMaximize:
		return "maximize"
	default:
		return fmt.Sprintf("Stretch(%d)", int(s))
	}
}

// Margins are the space a widget wants before and after itself along one axis.
type Margins struct {
	First int
	Last  int
}

// Uniform returns margins of m on both sides.
func Uniform(m int) Margins {
	return Margins{First: m, Last: m}
}

// Sum returns First + Last.
func (m Margins) Sum() int {
	return m.First + m.Last
}

// SizeRules is the sizing requirement of a widget along one axis.
//
// The zero value is [Empty]: no size, no margins, fixed.
type SizeRules struct {
	min     int
	ideal   int
	margins Margins
	stretch Stretch
}

// Empty is the rule of a widget that occupies no space.
var Empty = SizeRules{}

// NewSizeRules constructs rules; ideal is raised to min if smaller.
func NewSizeRules(min, ideal int, margins Margins, stretch Stretch) SizeRules {
	if min < 0 {
		min = 0
	}
	return SizeRules{min: min, ideal: max(ideal, min), margins: margins, stretch: stretch}
}

// Fixed returns rules with min == ideal == size and no stretch.
func Fixed(size int, margins Margins) SizeRules {
	return NewSizeRules(size, size, margins, StretchFixed)
}

// ExtractFixed returns fixed rules for the given axis of size, with margin
// applied on both sides.
func ExtractFixed(axis AxisInfo, size geom.Size, margin geom.Size) SizeRules {
	v := axis.IsVertical()
	return Fixed(size.Get(v), Uniform(margin.Get(v)))
}

// Min returns the minimum size.
func (r SizeRules) Min() int {
	return r.min
}

// Ideal returns the preferred size.
func (r SizeRules) Ideal() int {
	return r.ideal
}

// Margins returns the outer margins.
func (r SizeRules) Margins() Margins {
	return r.margins
}

// Stretch returns the stretch policy.
func (r SizeRules) Stretch() Stretch {
	return r.stretch
}

// WithStretch returns a copy using the given stretch policy.
func (r SizeRules) WithStretch(s Stretch) SizeRules {
	r.stretch = s
	return r
}

// WithMargins returns a copy using the given margins.
func (r SizeRules) WithMargins(m Margins) SizeRules {
	r.margins = m
	return r
}

// Append combines r with rhs placed after it along the main axis.
//
// Sizes add, separated by the larger of the two margins at the shared
// boundary. The result keeps r's leading margin and rhs's trailing margin.
func (r SizeRules) Append(rhs SizeRules) SizeRules {
	gap := max(r.margins.Last, rhs.margins.First)
	return SizeRules{
		min:     r.min + gap + rhs.min,
		ideal:   r.ideal + gap + rhs.ideal,
		margins: Margins{First: r.margins.First, Last: rhs.margins.Last},
		stretch: max(r.stretch, rhs.stretch),
	}
}

// Max combines r with rhs sharing the same span along the cross axis.
func (r SizeRules) Max(rhs SizeRules) SizeRules {
	return SizeRules{
		min:   max(r.min, rhs.min),
		ideal: max(r.ideal, rhs.ideal),
		margins: Margins{
			First: max(r.margins.First, rhs.margins.First),
			Last:  max(r.margins.Last, rhs.margins.Last),
		},
		stretch: max(r.stretch, rhs.stretch),
	}
}

// Surrounded returns the rules of r placed inside frame.
//
// The frame's size is added to r's. With internalMargins, r's own margins
// become padding inside the frame; otherwise they are dropped. The result
// takes the frame's margins and r's stretch.
func (r SizeRules) Surrounded(frame SizeRules, internalMargins bool) SizeRules {
	inner := 0
	if internalMargins {
		inner = r.margins.Sum()
	}
	return SizeRules{
		min:     r.min + inner + frame.min,
		ideal:   r.ideal + inner + frame.ideal,
		margins: frame.margins,
		stretch: max(r.stretch, frame.stretch),
	}
}

// Sum appends rules in order and returns the total. An empty slice yields Empty.
func Sum(rules []SizeRules) SizeRules {
	if len(rules) == 0 {
		return Empty
	}
	total := rules[0]
	for _, r := range rules[1:] {
		total = total.Append(r)
	}
	return total
}

// MaxAll combines rules with Max. An empty slice yields Empty.
func MaxAll(rules []SizeRules) SizeRules {
	total := Empty
	for _, r := range rules {
		total = total.Max(r)
	}
	return total
}

// Gaps returns the inner spacing between consecutive rules: len(rules)-1 values.
func Gaps(rules []SizeRules) []int {
	if len(rules) < 2 {
		return nil
	}
	gaps := make([]int, len(rules)-1)
	for i := range gaps {
		gaps[i] = max(rules[i].margins.Last, rules[i+1].margins.First)
	}
	return gaps
}

func (r SizeRules) String() string {
	return fmt.Sprintf("SizeRules{min=%d ideal=%d margins=%d/%d stretch=%s}",
		r.min, r.ideal, r.margins.First, r.margins.Last, r.stretch)
}
