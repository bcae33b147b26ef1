package widgets

import (
	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// TextButton is a push button with a text label. Activating it, by click,
// navigation key or accelerator, emits its message.
type TextButton struct {
	core.Base
	label string
	msg   any
	keys  []core.Key
}

// NewTextButton returns a button labelled label emitting msg.
func NewTextButton(label string, msg any) *TextButton {
	return &TextButton{label: label, msg: msg}
}

// WithKeys adds accelerator keys that activate the button.
func (b *TextButton) WithKeys(keys ...core.Key) *TextButton {
	b.keys = append(b.keys, keys...)
	return b
}

// WidgetName returns "TextButton".
func (b *TextButton) WidgetName() string { return "TextButton" }

// Text returns the button label.
func (b *TextButton) Text() string { return b.label }

// SetText replaces the button label.
func (b *TextButton) SetText(text string) core.Action {
	if b.label == text {
		return core.ActionNone
	}
	b.label = text
	return core.ActionResize
}

// Configure registers the accelerator keys.
func (b *TextButton) Configure(mgr *core.Manager) {
	for _, k := range b.keys {
		mgr.AddAccelKey(k, b.ID())
	}
}

// KeyNav returns true.
func (b *TextButton) KeyNav() bool { return true }

// ActivationViaPress returns true.
func (b *TextButton) ActivationViaPress() bool { return true }

// SizeRules sizes the label inside the button surround.
func (b *TextButton) SizeRules(sh draw.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return buttonRules(sh, axis, b.label)
}

func buttonRules(sh draw.SizeHandle, axis layout.AxisInfo, label string) layout.SizeRules {
	first, last := sh.ButtonSurround()
	frame := layout.ExtractFixed(axis, first.Add(last), sh.OuterMargin())
	content := sh.TextBound(label, draw.TextButton, axis)
	return content.Surrounded(frame, true)
}

// SetRect stores rect.
func (b *TextButton) SetRect(rect geom.Rect, _ layout.AlignHints) {
	b.StoreRect(rect)
}

// Draw draws the button and its label.
func (b *TextButton) Draw(dh draw.DrawHandle, st *core.ManagerState, disabled bool) {
	state := b.InputState(st, disabled)
	dh.Button(b.Rect(), state)
	dh.Text(b.Rect(), b.label, draw.TextButton, centered, state)
}

// Handle emits the message on Activate.
func (b *TextButton) Handle(_ *core.Manager, ev core.Event) core.Response {
	if ev.Kind == core.EventActivate {
		return core.Msg(b.msg)
	}
	return core.Unhandled(ev)
}

// Send routes ev to the button.
func (b *TextButton) Send(mgr *core.Manager, id core.WidgetID, ev core.Event) core.Response {
	return core.DefaultSend(b, mgr, id, ev)
}

var centered = layout.AlignHints{Horiz: layout.AlignCenter, Vert: layout.AlignCenter}
