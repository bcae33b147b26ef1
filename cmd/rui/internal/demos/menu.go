package demos

import (
	"fmt"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/widgets"
)

func init() {
	register(Demo{Name: "menu", Short: "a menu bar with nested menus", Build: func(title string) []*widgets.Window {
		return []*widgets.Window{Menu(title)}
	}})
}

// Menu returns a window with a menu bar and a status line naming the last
// chosen entry. File > Quit closes the window.
func Menu(title string) *widgets.Window {
	status := widgets.NewLabel("choose a menu entry")
	bar := widgets.NewMenuBar(
		widgets.NewSubMenu("File",
			widgets.NewMenuEntry("New", "new"),
			widgets.NewMenuEntry("Open", "open"),
			widgets.NewMenuEntry("Quit", "quit"),
		),
		widgets.NewSubMenu("Edit",
			widgets.NewMenuEntry("Cut", "cut"),
			widgets.NewMenuEntry("Copy", "copy"),
			widgets.NewMenuEntry("Paste", "paste"),
			widgets.NewSubMenu("Case",
				widgets.NewMenuEntry("Upper", "upper"),
				widgets.NewMenuEntry("Lower", "lower"),
			),
		),
		widgets.NewSubMenu("Help",
			widgets.NewMenuEntry("About", "about"),
		),
	)
	body := widgets.NewComposite("MenuDemo", widgets.NewColumn(bar, status)).
		WithMessage(func(mgr *core.Manager, msg any) core.Response {
			name, ok := msg.(string)
			if !ok {
				return core.Msg(msg)
			}
			if name == "quit" {
				return core.Close()
			}
			mgr.SendAction(status.SetText(fmt.Sprintf("chose %s", name)))
			return core.None()
		})
	return widgets.NewWindow(title+": menu", body)
}
