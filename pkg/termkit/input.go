package termkit

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/geom"
)

// mouseButtons maps tcell button masks to runtime buttons.
var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button core.MouseButton
}{
	{tcell.Button1, core.ButtonLeft},
	{tcell.Button3, core.ButtonMiddle},
	{tcell.Button2, core.ButtonRight},
}

// inputState converts tcell events, which report the current button mask,
// into discrete press and release inputs.
type inputState struct {
	buttons tcell.ButtonMask
	cursor  geom.Coord
}

// convert returns the inputs for ev in delivery order.
func (s *inputState) convert(ev tcell.Event) []core.Input {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKey(e)
	case *tcell.EventMouse:
		return s.convertMouse(e)
	case *tcell.EventFocus:
		if !e.Focused {
			s.buttons = tcell.ButtonNone
			return []core.Input{{Kind: core.InputFocusLost}}
		}
	}
	return nil
}

func (s *inputState) convertMouse(e *tcell.EventMouse) []core.Input {
	x, y := e.Position()
	coord := geom.Coord{X: x, Y: y}
	var out []core.Input
	if coord != s.cursor {
		s.cursor = coord
		out = append(out, core.Input{Kind: core.InputCursorMoved, Coord: coord})
	}
	buttons := e.Buttons()
	for _, b := range mouseButtons {
		was, is := s.buttons&b.mask != 0, buttons&b.mask != 0
		if was != is {
			out = append(out, core.Input{
				Kind:    core.InputMouseButton,
				Coord:   coord,
				Button:  b.button,
				Pressed: is,
			})
		}
	}
	s.buttons = buttons
	return out
}

func convertKey(e *tcell.EventKey) []core.Input {
	if e.Key() == tcell.KeyRune {
		r := e.Rune()
		return []core.Input{
			{Kind: core.InputKey, Key: core.RuneKey(r)},
			{Kind: core.InputChar, Char: r},
		}
	}
	code, ok := keyCodes[e.Key()]
	if !ok {
		return nil
	}
	return []core.Input{{Kind: core.InputKey, Key: core.NamedKey(code)}}
}

var keyCodes = map[tcell.Key]core.KeyCode{
	tcell.KeyEscape:     core.KeyEscape,
	tcell.KeyEnter:      core.KeyEnter,
	tcell.KeyTab:        core.KeyTab,
	tcell.KeyBacktab:    core.KeyBacktab,
	tcell.KeyBackspace:  core.KeyBackspace,
	tcell.KeyBackspace2: core.KeyBackspace,
	tcell.KeyDelete:     core.KeyDelete,
	tcell.KeyUp:         core.KeyUp,
	tcell.KeyDown:       core.KeyDown,
	tcell.KeyLeft:       core.KeyLeft,
	tcell.KeyRight:      core.KeyRight,
	tcell.KeyHome:       core.KeyHome,
	tcell.KeyEnd:        core.KeyEnd,
}
