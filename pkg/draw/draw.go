// Package draw defines the interfaces through which widgets query theme
// metrics and emit drawing commands.
//
// Widgets never talk to a renderer directly. During sizing they receive a
// [SizeHandle] for dimensions and text measurement; during drawing they
// receive a [DrawHandle] and describe themselves in terms of theme elements
// (frames, buttons, text) plus an [InputState] describing how to highlight
// them. Implementations live in the theme and termkit packages.
package draw

import (
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// TextClass selects the font and wrapping behaviour for a piece of text.
type TextClass uint8

const (
	// TextLabel is plain, wrapping text.
	TextLabel TextClass = iota
	// TextButton is single-line text on a button.
	TextButton
	// TextMenuLabel is single-line text in a menu header or entry.
	TextMenuLabel
)

// String returns a human-readable representation of the text class.
func (c TextClass) String() string {
	switch c {
	case TextLabel:
		return "label"
	case TextButton:
		return "button"
	case TextMenuLabel:
		return "menu-label"
	default:
		return "unknown"
	}
}

// IsSingleLine reports whether text of this class never wraps.
func (c TextClass) IsSingleLine() bool {
	return c != TextLabel
}

// InputState describes how a widget should be highlighted.
type InputState struct {
	Disabled  bool
	Hover     bool
	Depress   bool
	NavFocus  bool
	CharFocus bool
}

// SizeHandle provides theme dimensions during the sizing pass.
type SizeHandle interface {
	// OuterFrame returns the border sizes of a frame on the first and last sides.
	OuterFrame() (first, last geom.Size)
	// MenuFrame returns the border sizes of a popup menu frame.
	MenuFrame() (first, last geom.Size)
	// ButtonSurround returns the padding plus border around button content.
	ButtonSurround() (first, last geom.Size)
	// InnerMargin is the padding between a frame and its content.
	InnerMargin() geom.Size
	// OuterMargin is the default margin around widgets.
	OuterMargin() geom.Size
	// LineHeight returns the height of one line of text of the given class.
	LineHeight(class TextClass) int
	// TextBound measures text along axis. For the vertical axis a fixed
	// width, if given, is the wrapping width.
	TextBound(text string, class TextClass, axis layout.AxisInfo) layout.SizeRules
}

// DrawHandle receives drawing commands for one window.
type DrawHandle interface {
	// Background fills rect with the window background.
	Background(rect geom.Rect)
	// OuterFrame draws a frame border inside rect.
	OuterFrame(rect geom.Rect)
	// MenuFrame draws a popup menu frame with background inside rect.
	MenuFrame(rect geom.Rect)
	// Button draws a button background and border.
	Button(rect geom.Rect, state InputState)
	// MenuEntry draws the highlight of a menu header or entry.
	MenuEntry(rect geom.Rect, state InputState)
	// Text draws text aligned within rect.
	Text(rect geom.Rect, text string, class TextClass, align layout.AlignHints, state InputState)
}
