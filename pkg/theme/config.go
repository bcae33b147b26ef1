package theme

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/rui/pkg/errors"
)

// FileName is the name of the optional theme configuration file.
const FileName = "rui.yaml"

// SchemaVersion is the configuration schema this package understands. Files
// declaring any v1.x.y version are accepted.
const SchemaVersion = "v1.0.0"

// Config represents the optional rui.yaml configuration.
type Config struct {
	Version    string           `yaml:"version,omitempty"`
	Font       FontConfig       `yaml:"font"`
	Dimensions DimensionsConfig `yaml:"dimensions"`
	Colours    ColoursConfig    `yaml:"colours"`
	Input      InputConfig      `yaml:"input"`
	Toolkit    ToolkitConfig    `yaml:"toolkit"`
}

// FontConfig selects the text size.
type FontConfig struct {
	Size float64 `yaml:"size,omitempty"`
}

// DimensionsConfig holds frame and margin sizes in pixels.
type DimensionsConfig struct {
	Margin      int `yaml:"margin,omitempty"`
	InnerMargin int `yaml:"inner_margin,omitempty"`
	Frame       int `yaml:"frame,omitempty"`
	ButtonFrame int `yaml:"button_frame,omitempty"`
	MenuFrame   int `yaml:"menu_frame,omitempty"`
}

// ColoursConfig holds hex colours such as "#1e1e2e".
type ColoursConfig struct {
	Background string `yaml:"background,omitempty"`
	Frame      string `yaml:"frame,omitempty"`
	Text       string `yaml:"text,omitempty"`
	Button     string `yaml:"button,omitempty"`
	Hover      string `yaml:"hover,omitempty"`
	Depress    string `yaml:"depress,omitempty"`
	NavFocus   string `yaml:"nav_focus,omitempty"`
}

// InputConfig holds input behaviour settings.
type InputConfig struct {
	// MouseNavFocus moves navigation focus to clicked widgets.
	MouseNavFocus bool `yaml:"mouse_nav_focus,omitempty"`
}

// ToolkitConfig holds driver settings.
type ToolkitConfig struct {
	// MaxUpdateRounds bounds chained update-handle broadcasts per input.
	MaxUpdateRounds int `yaml:"max_update_rounds,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: SchemaVersion,
		Font:    FontConfig{Size: 14},
		Dimensions: DimensionsConfig{
			Margin:      2,
			InnerMargin: 3,
			Frame:       2,
			ButtonFrame: 4,
			MenuFrame:   1,
		},
		Colours: ColoursConfig{
			Background: "#f5f5f5",
			Frame:      "#7f7f7f",
			Text:       "#1a1a1a",
			Button:     "#d6e2f0",
			Hover:      "#ffffff",
			Depress:    "#000000",
			NavFocus:   "#3584e4",
		},
		Toolkit: ToolkitConfig{MaxUpdateRounds: 8},
	}
}

// LoadOptional reads rui.yaml from dir if present. A missing file yields an
// empty Config.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(data)
}

// Parse decodes and validates configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if v := strings.TrimSpace(c.Version); v != "" {
		if !semver.IsValid(v) || semver.Major(v) != semver.Major(SchemaVersion) {
			return fmt.Errorf("version %q: %w (want %s.x.y)", v, errors.ErrUnsupportedVersion, semver.Major(SchemaVersion))
		}
	}
	if c.Font.Size < 0 {
		return fmt.Errorf("font.size must not be negative, got %v", c.Font.Size)
	}
	for name, v := range map[string]int{
		"margin":       c.Dimensions.Margin,
		"inner_margin": c.Dimensions.InnerMargin,
		"frame":        c.Dimensions.Frame,
		"button_frame": c.Dimensions.ButtonFrame,
		"menu_frame":   c.Dimensions.MenuFrame,
	} {
		if v < 0 {
			return fmt.Errorf("dimensions.%s must not be negative, got %d", name, v)
		}
	}
	if _, err := c.Colours.parse(); err != nil {
		return err
	}
	if c.Toolkit.MaxUpdateRounds < 0 {
		return fmt.Errorf("toolkit.max_update_rounds must not be negative, got %d", c.Toolkit.MaxUpdateRounds)
	}
	return nil
}

// Resolve returns c with every unset field taken from Default. A nil c
// yields the defaults.
func Resolve(c *Config) *Config {
	d := Default()
	if c == nil {
		return d
	}
	out := *c
	if strings.TrimSpace(out.Version) == "" {
		out.Version = d.Version
	}
	if out.Font.Size == 0 {
		out.Font.Size = d.Font.Size
	}
	fill := func(v *int, def int) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&out.Dimensions.Margin, d.Dimensions.Margin)
	fill(&out.Dimensions.InnerMargin, d.Dimensions.InnerMargin)
	fill(&out.Dimensions.Frame, d.Dimensions.Frame)
	fill(&out.Dimensions.ButtonFrame, d.Dimensions.ButtonFrame)
	fill(&out.Dimensions.MenuFrame, d.Dimensions.MenuFrame)
	fill(&out.Toolkit.MaxUpdateRounds, d.Toolkit.MaxUpdateRounds)

	fillStr := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	fillStr(&out.Colours.Background, d.Colours.Background)
	fillStr(&out.Colours.Frame, d.Colours.Frame)
	fillStr(&out.Colours.Text, d.Colours.Text)
	fillStr(&out.Colours.Button, d.Colours.Button)
	fillStr(&out.Colours.Hover, d.Colours.Hover)
	fillStr(&out.Colours.Depress, d.Colours.Depress)
	fillStr(&out.Colours.NavFocus, d.Colours.NavFocus)
	return &out
}
