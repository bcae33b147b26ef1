package testing

import (
	"fmt"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/geom"
)

// Click presses and releases the left button at the center of the first
// widget matched by finder.
func (t *Tester) Click(finder Finder) error {
	w, err := t.target("Click", finder)
	if err != nil {
		return err
	}
	rect := w.Core().Rect()
	if rect.IsEmpty() {
		return fmt.Errorf("Click: widget %s %v has no area", w.WidgetName(), w.Core().ID())
	}
	return t.ClickAt(rect.Center())
}

// ClickAt moves the cursor to coord and clicks the left button there.
func (t *Tester) ClickAt(coord geom.Coord) error {
	if err := t.Press(coord); err != nil {
		return err
	}
	return t.Release(coord)
}

// Press moves the cursor to coord and presses the left button.
func (t *Tester) Press(coord geom.Coord) error {
	if err := t.MoveTo(coord); err != nil {
		return err
	}
	return t.input(core.Input{Kind: core.InputMouseButton, Coord: coord, Button: core.ButtonLeft, Pressed: true})
}

// MoveTo moves the cursor to coord.
func (t *Tester) MoveTo(coord geom.Coord) error {
	t.cursor = coord
	return t.input(core.Input{Kind: core.InputCursorMoved, Coord: coord})
}

// Release moves the cursor to coord and releases the left button.
func (t *Tester) Release(coord geom.Coord) error {
	if coord != t.cursor {
		if err := t.MoveTo(coord); err != nil {
			return err
		}
	}
	return t.input(core.Input{Kind: core.InputMouseButton, Coord: coord, Button: core.ButtonLeft})
}

// Drag presses over the first widget matched by from, moves to the center
// of the first widget matched by to and releases there.
func (t *Tester) Drag(from, to Finder) error {
	src, err := t.target("Drag", from)
	if err != nil {
		return err
	}
	if err := t.Press(src.Core().Rect().Center()); err != nil {
		return err
	}
	dst, err := t.target("Drag", to)
	if err != nil {
		return err
	}
	end := dst.Core().Rect().Center()
	if err := t.MoveTo(end); err != nil {
		return err
	}
	return t.Release(end)
}

// Touch performs a tap with touch id at coord.
func (t *Tester) Touch(id uint64, coord geom.Coord) error {
	if err := t.input(core.Input{Kind: core.InputTouch, TouchID: id, Phase: core.TouchStarted, Coord: coord}); err != nil {
		return err
	}
	return t.input(core.Input{Kind: core.InputTouch, TouchID: id, Phase: core.TouchEnded, Coord: coord})
}
