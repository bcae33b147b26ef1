package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-drift/rui/cmd/rui/internal/config"
	"github.com/go-drift/rui/cmd/rui/internal/demos"
	"github.com/go-drift/rui/pkg/errors"
	"github.com/go-drift/rui/pkg/termkit"
	"github.com/go-drift/rui/pkg/theme"
	"github.com/go-drift/rui/pkg/toolkit"
)

func init() {
	var names []string
	for _, d := range demos.All() {
		names = append(names, fmt.Sprintf("  %-14s %s", d.Name, d.Short))
	}
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Run a sample program in the terminal",
		Long: `Run a sample program in the terminal.

Demos:
` + strings.Join(names, "\n") + `

Flags:
  --theme FILE      Theme file (default: rui.yaml in the project root)
  --metrics ADDR    Serve Prometheus metrics on ADDR at /metrics
  --log FILE        Write runtime errors to FILE (default: rui.log)
  --verbose         Include stack traces in the log

The theme file is reloaded when it changes. Ctrl-N switches between the
windows of a demo and Ctrl-C quits.`,
		Usage: "rui demo <name> [--theme FILE] [--metrics ADDR] [--log FILE] [--verbose]",
		Run:   runDemo,
	})
}

type demoOptions struct {
	name        string
	themePath   string
	metricsAddr string
	logPath     string
	verbose     bool
}

func parseDemoArgs(args []string) (demoOptions, error) {
	opts := demoOptions{logPath: "rui.log"}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		value := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", arg)
			}
			i++
			return args[i], nil
		}
		var err error
		switch arg {
		case "--theme":
			opts.themePath, err = value()
		case "--metrics":
			opts.metricsAddr, err = value()
		case "--log":
			opts.logPath, err = value()
		case "--verbose":
			opts.verbose = true
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown flag %q", arg)
			}
			if opts.name != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.name = arg
		}
		if err != nil {
			return opts, err
		}
	}
	if opts.name == "" {
		return opts, fmt.Errorf("demo name is required\n\nUsage: rui demo <name>")
	}
	return opts, nil
}

func runDemo(args []string) error {
	opts, err := parseDemoArgs(args)
	if err != nil {
		return err
	}
	demo, ok := demos.Lookup(opts.name)
	if !ok {
		return fmt.Errorf("unknown demo %q (run \"rui demo --help\" for the list)", opts.name)
	}

	root, err := config.FindProjectRoot(".")
	if err != nil {
		return err
	}
	project, err := config.Resolve(root, opts.themePath)
	if err != nil {
		return err
	}
	th, err := project.LoadTheme()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logFile.Close()
	errors.SetHandler(&errors.LogHandler{Verbose: opts.verbose, Out: logFile})
	defer errors.SetHandler(nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	tk := termkit.NewToolkit(th, toolkit.WithMetrics(toolkit.NewMetrics(reg)))
	if opts.metricsAddr != "" {
		srv := serveMetrics(opts.metricsAddr, reg)
		defer srv.Close()
	}

	screen, err := termkit.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()
	term := termkit.New(screen, tk, demo.Build(project.AppName)...)

	if project.ThemePath != "" {
		go func() {
			err := theme.Watch(ctx, project.ThemePath, func(next *theme.Theme) {
				if err := term.SetTheme(next); err != nil {
					errors.Report(&errors.RuiError{Op: "demo.SetTheme", Kind: errors.KindTheme, Err: err})
				}
			})
			if err != nil {
				errors.Report(&errors.RuiError{Op: "demo.Watch", Kind: errors.KindConfig, Err: err})
			}
		}()
	}

	return term.Run(ctx)
}

// serveMetrics exposes reg at /metrics on addr until closed.
func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errors.Report(&errors.RuiError{Op: "demo.serveMetrics", Kind: errors.KindConfig, Err: err})
		}
	}()
	return srv
}
