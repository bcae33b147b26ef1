package cmd

import (
	"fmt"

	"github.com/go-drift/rui/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the rui version and the theme schema version it reads.",
		Usage: "rui version",
		Run:   runVersion,
	})
}

func runVersion([]string) error {
	fmt.Fprintf(stdout, "rui version %s (built %s), theme schema %s\n", Version, BuildTime, theme.SchemaVersion)
	return nil
}
