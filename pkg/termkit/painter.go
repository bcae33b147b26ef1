package termkit

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
	"github.com/go-drift/rui/pkg/theme"
)

// Painter draws widgets onto a tcell screen. It implements draw.DrawHandle.
type Painter struct {
	screen  tcell.Screen
	colours theme.Colours
}

// NewPainter returns a painter using the colours of th.
func NewPainter(screen tcell.Screen, th *theme.Theme) *Painter {
	return &Painter{screen: screen, colours: th.Colours}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (p *Painter) style(fg, bg colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
}

func (p *Painter) fill(rect geom.Rect, st tcell.Style) {
	end := rect.End()
	for y := rect.Pos.Y; y < end.Y; y++ {
		for x := rect.Pos.X; x < end.X; x++ {
			p.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// box draws a single-line border along the edge of rect.
func (p *Painter) box(rect geom.Rect, st tcell.Style) {
	if rect.Size.W < 2 || rect.Size.H < 2 {
		return
	}
	x0, y0 := rect.Pos.X, rect.Pos.Y
	x1, y1 := rect.End().X-1, rect.End().Y-1
	for x := x0 + 1; x < x1; x++ {
		p.screen.SetContent(x, y0, tcell.RuneHLine, nil, st)
		p.screen.SetContent(x, y1, tcell.RuneHLine, nil, st)
	}
	for y := y0 + 1; y < y1; y++ {
		p.screen.SetContent(x0, y, tcell.RuneVLine, nil, st)
		p.screen.SetContent(x1, y, tcell.RuneVLine, nil, st)
	}
	p.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, st)
	p.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, st)
	p.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, st)
	p.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, st)
}

func (p *Painter) Background(rect geom.Rect) {
	p.fill(rect, p.style(p.colours.Text, p.colours.Background))
}

func (p *Painter) OuterFrame(rect geom.Rect) {
	p.box(rect, p.style(p.colours.Frame, p.colours.Background))
}

func (p *Painter) MenuFrame(rect geom.Rect) {
	st := p.style(p.colours.Frame, p.colours.Background)
	p.fill(rect, st)
	p.box(rect, st)
}

func (p *Painter) Button(rect geom.Rect, state draw.InputState) {
	bg := p.colours.Fill(p.colours.Button, state)
	st := p.style(p.colours.Border(state), bg)
	p.fill(rect, st)
	if rect.Size.W >= 2 {
		y := rect.Pos.Y + rect.Size.H/2
		p.screen.SetContent(rect.Pos.X, y, '[', nil, st)
		p.screen.SetContent(rect.End().X-1, y, ']', nil, st)
	}
}

func (p *Painter) MenuEntry(rect geom.Rect, state draw.InputState) {
	if !state.Hover && !state.Depress && !state.NavFocus {
		return
	}
	p.fill(rect, p.style(p.colours.Text, p.colours.Fill(p.colours.Background, state)))
}

// Text draws wrapped, aligned text clipped to rect. The background of the
// cells underneath is kept.
func (p *Painter) Text(rect geom.Rect, text string, class draw.TextClass, align layout.AlignHints, state draw.InputState) {
	lines := []string{text}
	if !class.IsSingleLine() {
		lines = wrap(text, rect.Size.W)
	}
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	hints := align.WithDefault(layout.AlignHints{Horiz: layout.AlignStart, Vert: layout.AlignCenter})
	area := hints.Place(rect, geom.Size{W: min(width, rect.Size.W), H: min(len(lines), rect.Size.H)})
	fg := toTcell(p.colours.Foreground(state))
	end := rect.End()
	for i, line := range lines {
		y := area.Pos.Y + i
		if y >= end.Y {
			break
		}
		x := area.Pos.X
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if x+w > end.X {
				break
			}
			_, _, st, _ := p.screen.GetContent(x, y)
			p.screen.SetContent(x, y, r, nil, st.Foreground(fg))
			x += w
		}
	}
}

var _ draw.DrawHandle = (*Painter)(nil)
