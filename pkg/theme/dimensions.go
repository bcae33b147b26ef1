package theme

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/errors"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

var (
	goRegularOnce sync.Once
	goRegular     *opentype.Font
	goRegularErr  error
)

func regularFont() (*opentype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	return goRegular, goRegularErr
}

// Dimensions measures widgets in pixels using the bundled Go Regular font.
// It implements draw.SizeHandle.
type Dimensions struct {
	face        font.Face
	lineHeight  int
	margin      int
	innerMargin int
	frame       int
	buttonFrame int
	menuFrame   int
}

// NewDimensions builds metrics for a resolved configuration. If the bundled
// font cannot be loaded the fixed 7x13 bitmap face is used instead and the
// failure is reported to the error handler.
func NewDimensions(cfg *Config) *Dimensions {
	cfg = Resolve(cfg)
	face := newFace(cfg.Font.Size)
	d := cfg.Dimensions
	return &Dimensions{
		face:        face,
		lineHeight:  face.Metrics().Height.Ceil(),
		margin:      d.Margin,
		innerMargin: d.InnerMargin,
		frame:       d.Frame,
		buttonFrame: d.ButtonFrame,
		menuFrame:   d.MenuFrame,
	}
}

func newFace(size float64) font.Face {
	f, err := regularFont()
	if err == nil {
		var face font.Face
		face, err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			return face
		}
	}
	errors.Report(&errors.RuiError{
		Op:   "theme.newFace",
		Kind: errors.KindTheme,
		Err:  err,
	})
	return basicfont.Face7x13
}

// OuterFrame implements draw.SizeHandle.
func (d *Dimensions) OuterFrame() (first, last geom.Size) {
	s := geom.Size{W: d.frame, H: d.frame}
	return s, s
}

// MenuFrame implements draw.SizeHandle.
func (d *Dimensions) MenuFrame() (first, last geom.Size) {
	s := geom.Size{W: d.menuFrame, H: d.menuFrame}
	return s, s
}

// ButtonSurround implements draw.SizeHandle.
func (d *Dimensions) ButtonSurround() (first, last geom.Size) {
	n := d.buttonFrame + d.innerMargin
	s := geom.Size{W: n, H: n}
	return s, s
}

// InnerMargin implements draw.SizeHandle.
func (d *Dimensions) InnerMargin() geom.Size {
	return geom.Size{W: d.innerMargin, H: d.innerMargin}
}

// OuterMargin implements draw.SizeHandle.
func (d *Dimensions) OuterMargin() geom.Size {
	return geom.Size{W: d.margin, H: d.margin}
}

// LineHeight implements draw.SizeHandle.
func (d *Dimensions) LineHeight(draw.TextClass) int {
	return d.lineHeight
}

// TextBound implements draw.SizeHandle.
//
// Horizontally the ideal width is the widest line; wrapping text may shrink
// to its widest word. Vertically, wrapping text with a fixed width is
// measured after wrapping to that width.
func (d *Dimensions) TextBound(text string, class draw.TextClass, axis layout.AxisInfo) layout.SizeRules {
	lines := strings.Split(text, "\n")
	if axis.IsHorizontal() {
		ideal := 0
		for _, line := range lines {
			ideal = max(ideal, d.width(line))
		}
		if class.IsSingleLine() {
			return layout.NewSizeRules(ideal, ideal, layout.Margins{}, layout.StretchFixed)
		}
		minimum := 0
		for _, word := range strings.FieldsFunc(text, unicode.IsSpace) {
			minimum = max(minimum, d.width(word))
		}
		return layout.NewSizeRules(minimum, ideal, layout.Margins{}, layout.StretchFiller)
	}

	n := len(lines)
	if width, ok := axis.Fixed(); ok && !class.IsSingleLine() {
		n = 0
		for _, line := range lines {
			n += d.wrappedLines(line, width)
		}
	}
	h := max(n, 1) * d.lineHeight
	return layout.NewSizeRules(h, h, layout.Margins{}, layout.StretchFixed)
}

func (d *Dimensions) width(s string) int {
	return font.MeasureString(d.face, s).Ceil()
}

// wrappedLines counts the lines needed to show line within width, breaking
// at spaces. Words wider than width occupy a line of their own.
func (d *Dimensions) wrappedLines(line string, width int) int {
	words := strings.Fields(line)
	if len(words) == 0 {
		return 1
	}
	n, current := 1, words[0]
	for _, w := range words[1:] {
		if next := current + " " + w; d.width(next) <= width {
			current = next
			continue
		}
		n++
		current = w
	}
	return n
}

var _ draw.SizeHandle = (*Dimensions)(nil)
