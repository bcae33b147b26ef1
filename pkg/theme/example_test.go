package theme_test

import (
	"fmt"

	"github.com/go-drift/rui/pkg/theme"
)

func ExampleParse() {
	cfg, err := theme.Parse([]byte("version: v1.0.0\nfont:\n  size: 16\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	resolved := theme.Resolve(cfg)
	fmt.Println(resolved.Font.Size, resolved.Dimensions.Frame)
	// Output: 16 2
}
