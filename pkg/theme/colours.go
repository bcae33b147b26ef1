package theme

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/rui/pkg/draw"
)

// Colours is a parsed colour scheme.
type Colours struct {
	Background colorful.Color
	Frame      colorful.Color
	Text       colorful.Color
	Button     colorful.Color
	Hover      colorful.Color
	Depress    colorful.Color
	NavFocus   colorful.Color
}

// Blend factors applied to a base colour for each input state.
const (
	hoverBlend    = 0.35
	depressBlend  = 0.25
	disabledBlend = 0.5
)

func (c ColoursConfig) parse() (Colours, error) {
	var out Colours
	for _, f := range []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"background", c.Background, &out.Background},
		{"frame", c.Frame, &out.Frame},
		{"text", c.Text, &out.Text},
		{"button", c.Button, &out.Button},
		{"hover", c.Hover, &out.Hover},
		{"depress", c.Depress, &out.Depress},
		{"nav_focus", c.NavFocus, &out.NavFocus},
	} {
		if f.hex == "" {
			continue
		}
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return Colours{}, fmt.Errorf("colours.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return out, nil
}

// ParseColours parses the colour section of a resolved configuration.
func ParseColours(c ColoursConfig) (Colours, error) {
	return c.parse()
}

// Fill returns the fill colour for a widget of base colour in state.
// Depress wins over hover; disabled fades toward the background.
func (c Colours) Fill(base colorful.Color, state draw.InputState) colorful.Color {
	switch {
	case state.Disabled:
		return base.BlendLab(c.Background, disabledBlend).Clamped()
	case state.Depress:
		return base.BlendLab(c.Depress, depressBlend).Clamped()
	case state.Hover:
		return base.BlendLab(c.Hover, hoverBlend).Clamped()
	default:
		return base
	}
}

// Border returns the frame colour for a widget in state.
func (c Colours) Border(state draw.InputState) colorful.Color {
	if state.NavFocus || state.CharFocus {
		return c.NavFocus
	}
	return c.Frame
}

// Foreground returns the text colour for state.
func (c Colours) Foreground(state draw.InputState) colorful.Color {
	if state.Disabled {
		return c.Text.BlendLab(c.Background, disabledBlend).Clamped()
	}
	return c.Text
}
