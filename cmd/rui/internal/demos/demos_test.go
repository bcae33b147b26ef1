package demos

import (
	"testing"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/geom"
	ruitest "github.com/go-drift/rui/pkg/testing"
	"github.com/go-drift/rui/pkg/toolkit"
	"github.com/go-drift/rui/pkg/widgets"
)

func TestRegistry(t *testing.T) {
	want := []string{"calculator", "counter", "menu", "sync-counter"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("All() returned %d demos, want %d", len(all), len(want))
	}
	for i, d := range all {
		if d.Name != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, d.Name, want[i])
		}
		if _, ok := Lookup(d.Name); !ok {
			t.Errorf("Lookup(%q) failed", d.Name)
		}
		if len(d.Build("t")) == 0 {
			t.Errorf("%s built no windows", d.Name)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) succeeded")
	}
}

func label(t *testing.T, tester *ruitest.Tester, name string) string {
	t.Helper()
	return tester.Find(ruitest.ByName(name)).First().(*widgets.Label).Text()
}

func TestCounter(t *testing.T) {
	tester := ruitest.NewTesterWithT(t, Counter("t"))

	if err := tester.Click(ruitest.ByText("+")); err != nil {
		t.Fatal(err)
	}
	for _, r := range "++-+" {
		if err := tester.Key(core.RuneKey(r)); err != nil {
			t.Fatal(err)
		}
	}
	if got := label(t, tester, "Label"); got != "3" {
		t.Errorf("counter = %q, want 3", got)
	}
}

func TestSyncCounter(t *testing.T) {
	tk := toolkit.New(nil)
	windows := SyncCounter("t", core.NewUpdateHandle())
	left := tk.AddWindow(windows[0], geom.Size{})
	tk.AddWindow(windows[1], geom.Size{})

	inc := ruitest.ByText("+").Evaluate(windows[0])[0]
	if _, err := tk.Send(left, inc.Core().ID(), core.Activate()); err != nil {
		t.Fatal(err)
	}
	dec := ruitest.ByText("-").Evaluate(windows[1])[0]
	for i := 0; i < 3; i++ {
		if _, err := tk.Send(tk.Windows()[1], dec.Core().ID(), core.Activate()); err != nil {
			t.Fatal(err)
		}
	}
	for i, w := range windows {
		l := ruitest.ByName("Label").Evaluate(w)[0].(*widgets.Label)
		if l.Text() != "-2" {
			t.Errorf("window %d shows %q, want -2", i, l.Text())
		}
	}
}

func TestMenu(t *testing.T) {
	tester := ruitest.NewTesterWithT(t, Menu("t"))

	if err := tester.Click(ruitest.ByText("Edit")); err != nil {
		t.Fatal(err)
	}
	if _, err := tester.Activate(ruitest.ByText("Case")); err != nil {
		t.Fatal(err)
	}
	if tester.PopupDepth() != 2 {
		t.Fatalf("PopupDepth = %d, want 2", tester.PopupDepth())
	}
	if _, err := tester.Activate(ruitest.ByText("Upper")); err != nil {
		t.Fatal(err)
	}
	if tester.PopupDepth() != 0 {
		t.Errorf("PopupDepth = %d after choosing, want 0", tester.PopupDepth())
	}
	if !tester.Find(ruitest.ByText("chose upper")).Exists() {
		t.Error("status line not updated")
	}

	if err := tester.Click(ruitest.ByText("File")); err != nil {
		t.Fatal(err)
	}
	if err := tester.Click(ruitest.ByText("Quit")); err != nil {
		t.Fatal(err)
	}
	if _, ok := tester.Toolkit().Window(tester.WindowID()); ok {
		t.Error("window still open after Quit")
	}
}

func TestCalculatorKeys(t *testing.T) {
	tests := []struct {
		keys string
		want string
	}{
		{"", "0"},
		{"12", "12"},
		{"12+3=", "15"},
		{"2+3*4=", "20"},
		{"7/2=", "3.5"},
		{"1/0=", "error"},
		{"1/0=C5", "5"},
		{"..5", "0.5"},
		{"00", "0"},
		{"9-", "9"},
		{"9-12=", "-3"},
	}
	for _, tt := range tests {
		var c calculator
		got := c.display()
		for _, k := range tt.keys {
			got = c.press(string(k))
		}
		if got != tt.want {
			t.Errorf("keys %q display = %q, want %q", tt.keys, got, tt.want)
		}
	}
}

func TestCalculatorWindow(t *testing.T) {
	tester := ruitest.NewTesterWithT(t, Calculator("t"))

	for _, k := range []string{"4", "*", "5"} {
		if err := tester.Click(ruitest.ByText(k)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tester.Key(core.NamedKey(core.KeyEnter)); err != nil {
		t.Fatal(err)
	}
	if got := label(t, tester, "Label"); got != "20" {
		t.Errorf("display = %q, want 20", got)
	}

	zero := tester.Find(ruitest.ByText("0")).First()
	one := tester.Find(ruitest.ByText("1")).First()
	if zero.Core().Rect().Size.W <= one.Core().Rect().Size.W {
		t.Errorf("0 key width %d, want wider than 1 key width %d", zero.Core().Rect().Size.W, one.Core().Rect().Size.W)
	}
}
