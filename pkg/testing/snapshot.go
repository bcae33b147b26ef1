package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/theme"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the widget tree layout and the drawing commands.
type Snapshot struct {
	Tree    *Node    `json:"tree"`
	DrawOps []string `json:"drawOps,omitempty"`
}

// Node is a widget in the serialized tree.
type Node struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Rect     [4]int  `json:"rect"`
	Text     string  `json:"text,omitempty"`
	Disabled bool    `json:"disabled,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// CaptureSnapshot captures the current tree and a drawing of it.
func (t *Tester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{Tree: captureNode(t.root)}
	for _, c := range t.Draw().Commands() {
		snap.DrawOps = append(snap.DrawOps, serializeCommand(c))
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When RUI_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("RUI_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: RUI_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: RUI_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns the
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func captureNode(w core.Widget) *Node {
	c := w.Core()
	node := &Node{
		ID:       c.ID().String(),
		Name:     w.WidgetName(),
		Rect:     rectArray(c.Rect()),
		Disabled: c.IsDisabled(),
	}
	if t, ok := w.(core.HasText); ok {
		node.Text = t.Text()
	}
	for i, n := 0, w.Len(); i < n; i++ {
		if child := w.Get(i); child != nil {
			node.Children = append(node.Children, captureNode(child))
		}
	}
	return node
}

func rectArray(r geom.Rect) [4]int {
	return [4]int{r.Pos.X, r.Pos.Y, r.Size.W, r.Size.H}
}

func serializeCommand(c theme.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %v", c.Op, rectArray(c.Rect))
	if c.Op == theme.OpText {
		fmt.Fprintf(&b, " %q %s", c.Text, c.Class)
	}
	var flags []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{c.State.Disabled, "disabled"},
		{c.State.Hover, "hover"},
		{c.State.Depress, "depress"},
		{c.State.NavFocus, "nav-focus"},
		{c.State.CharFocus, "char-focus"},
	} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	if len(flags) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(flags, ","))
	}
	return b.String()
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &s, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i, n := 0, max(len(expectedLines), len(actualLines)); i < n; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
