package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/go-drift/rui/cmd/rui/internal/config"
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Inspect theme files",
		Long: `Inspect rui.yaml theme files.

Subcommands:
  check [FILE]   Validate FILE, or the rui.yaml of the current project,
                 and print the resolved settings.`,
		Usage: "rui theme check [FILE]",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	if len(args) == 0 || args[0] != "check" {
		return fmt.Errorf("subcommand is required (check)\n\nUsage: rui theme check [FILE]")
	}

	path := ""
	if len(args) > 1 {
		path = args[1]
	} else {
		root, err := config.FindProjectRoot(".")
		if err != nil {
			return err
		}
		path = filepath.Join(root, theme.FileName)
	}

	cfg, err := theme.Load(path)
	if err != nil {
		return err
	}
	th, err := theme.New(cfg)
	if err != nil {
		return err
	}

	c := th.Config
	fmt.Fprintf(stdout, "%s: ok (schema %s)\n", path, c.Version)
	fmt.Fprintf(stdout, "  font.size          %g\n", c.Font.Size)
	fmt.Fprintf(stdout, "  line height        %d\n", th.Dimensions().LineHeight(draw.TextLabel))
	fmt.Fprintf(stdout, "  dimensions         margin=%d inner=%d frame=%d button=%d menu=%d\n",
		c.Dimensions.Margin, c.Dimensions.InnerMargin, c.Dimensions.Frame,
		c.Dimensions.ButtonFrame, c.Dimensions.MenuFrame)
	fmt.Fprintf(stdout, "  colours            background=%s text=%s nav_focus=%s\n",
		th.Colours.Background.Hex(), th.Colours.Text.Hex(), th.Colours.NavFocus.Hex())
	fmt.Fprintf(stdout, "  max update rounds  %d\n", c.Toolkit.MaxUpdateRounds)
	return nil
}
