package demos

import (
	"strconv"
	"strings"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/layout"
	"github.com/go-drift/rui/pkg/widgets"
)

func init() {
	register(Demo{Name: "calculator", Short: "a four-function calculator on a grid", Build: func(title string) []*widgets.Window {
		return []*widgets.Window{Calculator(title)}
	}})
}

// calculator evaluates key presses left to right, without precedence.
type calculator struct {
	acc    float64
	op     string
	entry  string
	failed bool
}

func (c *calculator) press(key string) string {
	switch {
	case key == "C":
		*c = calculator{}
	case c.failed:
	case key == ".":
		if !strings.Contains(c.entry, ".") {
			if c.entry == "" {
				c.entry = "0"
			}
			c.entry += "."
		}
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		if c.entry == "0" {
			c.entry = ""
		}
		c.entry += key
	case key == "=":
		c.apply()
		c.op = ""
	default:
		c.apply()
		c.op = key
	}
	return c.display()
}

func (c *calculator) apply() {
	if c.entry == "" {
		return
	}
	v, err := strconv.ParseFloat(c.entry, 64)
	c.entry = ""
	if err != nil {
		c.failed = true
		return
	}
	switch c.op {
	case "":
		c.acc = v
	case "+":
		c.acc += v
	case "-":
		c.acc -= v
	case "*":
		c.acc *= v
	case "/":
		if v == 0 {
			c.failed = true
			return
		}
		c.acc /= v
	}
}

func (c *calculator) display() string {
	switch {
	case c.failed:
		return "error"
	case c.entry != "":
		return c.entry
	default:
		return strconv.FormatFloat(c.acc, 'g', 12, 64)
	}
}

// calcKeys lays out the keypad below the display. Each key also answers to
// the first character of its label.
var calcKeys = []struct {
	label    string
	col, row int
	colSpan  int
	keys     []core.Key
}{
	{"7", 0, 1, 1, nil}, {"8", 1, 1, 1, nil}, {"9", 2, 1, 1, nil}, {"/", 3, 1, 1, nil},
	{"4", 0, 2, 1, nil}, {"5", 1, 2, 1, nil}, {"6", 2, 2, 1, nil}, {"*", 3, 2, 1, nil},
	{"1", 0, 3, 1, nil}, {"2", 1, 3, 1, nil}, {"3", 2, 3, 1, nil}, {"-", 3, 3, 1, nil},
	{"0", 0, 4, 2, nil}, {".", 2, 4, 1, []core.Key{core.RuneKey(',')}}, {"+", 3, 4, 1, nil},
	{"C", 0, 5, 1, []core.Key{core.RuneKey('c'), core.NamedKey(core.KeyDelete)}},
	{"=", 1, 5, 3, []core.Key{core.NamedKey(core.KeyEnter)}},
}

// Calculator returns a calculator window.
func Calculator(title string) *widgets.Window {
	var calc calculator
	display := widgets.NewLabel("0").WithAlign(layout.AlignHints{Horiz: layout.AlignEnd})
	grid := widgets.NewGrid().AddSpan(layout.GridCell{ColSpan: 4, RowSpan: 1}, display)
	for _, k := range calcKeys {
		keys := append([]core.Key{core.RuneKey(rune(k.label[0]))}, k.keys...)
		btn := widgets.NewTextButton(k.label, k.label).WithKeys(keys...)
		grid.AddSpan(layout.GridCell{Col: k.col, Row: k.row, ColSpan: k.colSpan, RowSpan: 1}, btn)
	}
	body := widgets.NewComposite("Calculator", grid).
		WithMessage(func(mgr *core.Manager, msg any) core.Response {
			key, ok := msg.(string)
			if !ok {
				return core.Msg(msg)
			}
			mgr.SendAction(display.SetText(calc.press(key)))
			return core.None()
		})
	return widgets.NewWindow(title+": calculator", body)
}
