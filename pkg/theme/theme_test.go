package theme

import (
	"testing"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

func TestTextBoundSingleLine(t *testing.T) {
	d := MustDefault().Dimensions()
	rules := d.TextBound("Open", draw.TextButton, layout.Horizontal())
	if rules.Min() != rules.Ideal() || rules.Ideal() <= 0 {
		t.Errorf("TextBound = %v, want fixed positive width", rules)
	}
	if rules.Stretch() != layout.StretchFixed {
		t.Errorf("Stretch = %v, want %v", rules.Stretch(), layout.StretchFixed)
	}
	longer := d.TextBound("Open file", draw.TextButton, layout.Horizontal())
	if longer.Ideal() <= rules.Ideal() {
		t.Errorf("longer text ideal %d, want > %d", longer.Ideal(), rules.Ideal())
	}
}

func TestTextBoundWraps(t *testing.T) {
	d := MustDefault().Dimensions()
	text := "a label long enough to wrap"
	h := d.TextBound(text, draw.TextLabel, layout.Horizontal())
	if h.Min() >= h.Ideal() {
		t.Errorf("label min %d, want < ideal %d", h.Min(), h.Ideal())
	}

	one := d.TextBound(text, draw.TextLabel, layout.Vertical())
	if one.Ideal() != d.LineHeight(draw.TextLabel) {
		t.Errorf("unwrapped height = %d, want %d", one.Ideal(), d.LineHeight(draw.TextLabel))
	}
	narrow := d.TextBound(text, draw.TextLabel, layout.Vertical().WithFixed(h.Min()))
	if narrow.Ideal() <= one.Ideal() {
		t.Errorf("wrapped height = %d, want > %d", narrow.Ideal(), one.Ideal())
	}
	wide := d.TextBound(text, draw.TextLabel, layout.Vertical().WithFixed(h.Ideal()))
	if wide.Ideal() != one.Ideal() {
		t.Errorf("height at ideal width = %d, want %d", wide.Ideal(), one.Ideal())
	}
}

func TestTextBoundLines(t *testing.T) {
	d := MustDefault().Dimensions()
	got := d.TextBound("a\nb\nc", draw.TextLabel, layout.Vertical())
	if want := 3 * d.LineHeight(draw.TextLabel); got.Ideal() != want {
		t.Errorf("height = %d, want %d", got.Ideal(), want)
	}
}

func TestDimensionsFromConfig(t *testing.T) {
	cfg := &Config{Dimensions: DimensionsConfig{Frame: 5, ButtonFrame: 1, InnerMargin: 2}}
	d := NewDimensions(cfg)
	first, last := d.OuterFrame()
	if first != (geom.Size{W: 5, H: 5}) || last != first {
		t.Errorf("OuterFrame = %v, %v, want 5x5", first, last)
	}
	first, _ = d.ButtonSurround()
	if first != (geom.Size{W: 3, H: 3}) {
		t.Errorf("ButtonSurround = %v, want 3x3", first)
	}
}

func TestFontSizeChangesLineHeight(t *testing.T) {
	small := NewDimensions(&Config{Font: FontConfig{Size: 10}})
	large := NewDimensions(&Config{Font: FontConfig{Size: 30}})
	if large.LineHeight(draw.TextLabel) <= small.LineHeight(draw.TextLabel) {
		t.Errorf("line heights %d (30pt) <= %d (10pt)", large.LineHeight(draw.TextLabel), small.LineHeight(draw.TextLabel))
	}
}

func TestThemeChange(t *testing.T) {
	base := MustDefault()
	recoloured, err := New(&Config{Colours: ColoursConfig{Text: "#ff0000"}})
	if err != nil {
		t.Fatal(err)
	}
	resized, err := New(&Config{Font: FontConfig{Size: 22}})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		next *Theme
		want core.Action
	}{
		{"same", MustDefault(), core.ActionNone},
		{"colour", recoloured, core.ActionRedraw},
		{"font", resized, core.ActionResize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Change(tt.next); got != tt.want {
				t.Errorf("Change = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecorderHighlights(t *testing.T) {
	th := MustDefault()
	r := NewRecorder(th)
	rect := geom.RectXYWH(0, 0, 10, 10)
	r.Button(rect, draw.InputState{})
	r.Button(rect, draw.InputState{Hover: true})
	r.Button(rect, draw.InputState{Depress: true, Hover: true})
	r.Button(rect, draw.InputState{NavFocus: true})
	r.Text(rect, "ok", draw.TextButton, layout.NoHints, draw.InputState{})

	cmds := r.Commands()
	if len(cmds) != 5 {
		t.Fatalf("len(Commands) = %d, want 5", len(cmds))
	}
	if cmds[0].Fill != th.Colours.Button {
		t.Errorf("plain fill = %v, want button colour", cmds[0].Fill.Hex())
	}
	if cmds[1].Fill == cmds[0].Fill {
		t.Error("hover fill equals plain fill")
	}
	if cmds[2].Fill == cmds[1].Fill {
		t.Error("depress fill equals hover fill")
	}
	if cmds[3].Border != th.Colours.NavFocus {
		t.Errorf("nav focus border = %v, want %v", cmds[3].Border.Hex(), th.Colours.NavFocus.Hex())
	}
	if got := r.Texts(); len(got) != 1 || got[0] != "ok" {
		t.Errorf("Texts = %v, want [ok]", got)
	}
	if _, ok := r.FindText("ok"); !ok {
		t.Error("FindText(ok) not found")
	}
	r.Reset()
	if len(r.Commands()) != 0 {
		t.Errorf("len(Commands) after Reset = %d, want 0", len(r.Commands()))
	}
}
