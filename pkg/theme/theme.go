// Package theme provides the reference theme: pixel metrics measured with
// the bundled Go fonts, a colour scheme, a recording draw handle for
// headless use, and the optional rui.yaml configuration with hot reload.
package theme

import (
	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/draw"
)

// Theme is a resolved configuration together with its metrics and colours.
type Theme struct {
	Config  *Config
	Colours Colours

	dims *Dimensions
}

// New resolves cfg against the defaults and builds a Theme. A nil cfg
// yields the default theme.
func New(cfg *Config) (*Theme, error) {
	resolved := Resolve(cfg)
	cols, err := resolved.Colours.parse()
	if err != nil {
		return nil, err
	}
	return &Theme{
		Config:  resolved,
		Colours: cols,
		dims:    NewDimensions(resolved),
	}, nil
}

// MustDefault returns the default theme. It panics only if the built-in
// defaults are invalid.
func MustDefault() *Theme {
	t, err := New(nil)
	if err != nil {
		panic(err)
	}
	return t
}

// SizeHandle returns the metrics used during sizing.
func (t *Theme) SizeHandle() draw.SizeHandle {
	return t.dims
}

// Dimensions returns the pixel metrics of t.
func (t *Theme) Dimensions() *Dimensions {
	return t.dims
}

// Change reports what windows must do when switching from t to next:
// metric changes need a resize, colour changes only a redraw.
func (t *Theme) Change(next *Theme) core.Action {
	if t == nil || next == nil {
		return core.ActionResize
	}
	if t.Config.Font != next.Config.Font || t.Config.Dimensions != next.Config.Dimensions {
		return core.ActionResize
	}
	if t.Colours != next.Colours {
		return core.ActionRedraw
	}
	return core.ActionNone
}
