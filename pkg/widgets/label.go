package widgets

import (
	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// Label displays text.
type Label struct {
	core.Base
	text  string
	align layout.AlignHints
}

// NewLabel returns a label showing text.
func NewLabel(text string) *Label {
	return &Label{text: text, align: layout.AlignHints{Horiz: layout.AlignStart, Vert: layout.AlignCenter}}
}

// WithAlign sets the text alignment within the label's rect.
func (l *Label) WithAlign(hints layout.AlignHints) *Label {
	l.align = hints
	return l
}

// WidgetName returns "Label".
func (l *Label) WidgetName() string { return "Label" }

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text.
func (l *Label) SetText(text string) core.Action {
	if l.text == text {
		return core.ActionNone
	}
	l.text = text
	return core.ActionRedraw
}

// SizeRules measures the text.
func (l *Label) SizeRules(sh draw.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	margin := sh.OuterMargin().Get(axis.IsVertical())
	return sh.TextBound(l.text, draw.TextLabel, axis).WithMargins(layout.Uniform(margin))
}

// SetRect stores rect.
func (l *Label) SetRect(rect geom.Rect, _ layout.AlignHints) {
	l.StoreRect(rect)
}

// Draw draws the text.
func (l *Label) Draw(dh draw.DrawHandle, st *core.ManagerState, disabled bool) {
	dh.Text(l.Rect(), l.text, draw.TextLabel, l.align, l.InputState(st, disabled))
}

// Send routes ev to the label.
func (l *Label) Send(mgr *core.Manager, id core.WidgetID, ev core.Event) core.Response {
	return core.DefaultSend(l, mgr, id, ev)
}
