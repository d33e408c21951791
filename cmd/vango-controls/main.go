// Command vango-controls renders, serves and publishes the controls gallery.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/controls/internal/config"
	"github.com/vango-dev/controls/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦┌─┐┌┐┌┌─┐┌─┐  ┌─┐┌─┐┌┐┌┌┬┐┬─┐┌─┐┬  ┌─┐
  ╚╗╔╝├─┤││││ ┬│ │  │  │ ││││ │ ├┬┘│ ││  └─┐
   ╚╝ ┴ ┴┘└┘└─┘└─┘  └─┘└─┘┘└┘ ┴ ┴└─└─┘┴─┘└─┘
`

// app is the state shared by all commands, filled before any command runs.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vango-controls",
		Short: "Accessible reactive controls for vango",
		Long: `vango-controls shows the vango control library: buttons with
dropdown variations, link buttons and collapses.

  • render   writes the gallery as a static HTML page
  • serve    runs the gallery as a live page over a websocket
  • publish  uploads the gallery to a directory or an S3 bucket

Settings are read from controls.yaml in the working directory or
any parent; flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to controls.yaml (default: search from the working directory)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")

	rootCmd.AddCommand(
		renderCmd(a),
		serveCmd(a),
		publishCmd(a),
		versionCmd(),
	)
	return rootCmd
}

// load reads the configuration, applies the logging flags and installs the
// logger.
func (a *app) load() error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Log.Format = a.logFormat
	}
	if err := a.validate(); err != nil {
		return err
	}

	a.logger = newLogger(os.Stderr, a.cfg.Log.Level, a.cfg.Log.Format)
	slog.SetDefault(a.logger)
	return nil
}

// validate re-checks the configuration after flag overrides.
func (a *app) validate() error {
	if err := a.cfg.Validate(); err != nil {
		return errors.FromError(err, "C103").WithSuggestion("Check the command-line flags")
	}
	return nil
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
