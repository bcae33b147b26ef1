// Package config locates the project a demo runs in and its optional
// rui.yaml theme file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/go-drift/rui/pkg/theme"
)

// Resolved contains the resolved project settings.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	// ThemePath is the rui.yaml to load and watch, or "" when there is none.
	ThemePath string
}

// FindProjectRoot walks up from dir to the nearest directory holding
// rui.yaml or go.mod. When neither exists dir itself is returned.
func FindProjectRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for d := abs; ; {
		for _, marker := range []string{theme.FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(d, marker)); err == nil {
				return d, nil
			}
		}
		parent := filepath.Dir(d)
		if parent == d {
			return abs, nil
		}
		d = parent
	}
}

// Resolve inspects root. themeOverride, when set, names the theme file
// explicitly and must exist.
func Resolve(root, themeOverride string) (*Resolved, error) {
	modPath, err := modulePath(root)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Root:       root,
		ModulePath: modPath,
		AppName:    defaultAppName(modPath, root),
	}

	switch {
	case themeOverride != "":
		if _, err := os.Stat(themeOverride); err != nil {
			return nil, fmt.Errorf("theme file: %w", err)
		}
		r.ThemePath = themeOverride
	default:
		path := filepath.Join(root, theme.FileName)
		if _, err := os.Stat(path); err == nil {
			r.ThemePath = path
		}
	}
	return r, nil
}

// LoadTheme builds the theme from ThemePath, or the default theme.
func (r *Resolved) LoadTheme() (*theme.Theme, error) {
	if r.ThemePath == "" {
		return theme.MustDefault(), nil
	}
	cfg, err := theme.Load(r.ThemePath)
	if err != nil {
		return nil, err
	}
	return theme.New(cfg)
}

// modulePath returns the module declared in root/go.mod, or "" outside a
// module.
func modulePath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	if err := module.CheckImportPath(path); err != nil {
		return "", fmt.Errorf("invalid module path: %w", err)
	}
	return path, nil
}

func defaultAppName(modPath, root string) string {
	base := filepath.Base(root)
	if prefix, _, ok := module.SplitPathVersion(modPath); ok && prefix != "" {
		parts := strings.Split(prefix, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "rui"
	}
	return base
}
