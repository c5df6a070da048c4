// Package main provides the entry point for the curve2svg CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/curve2svg/internal/config"
	"github.com/gorewood/curve2svg/internal/logging"
	"github.com/gorewood/curve2svg/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// settingsKey carries the resolved config.Settings in the command context.
type settingsKey struct{}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves --color (falling back to the settings file) against
// TTY detection on stdout.
func useColor(cmd *cobra.Command) bool {
	mode := settingsFrom(cmd).Color
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil && flag.Changed {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// settingsFrom returns the settings loaded for this invocation, or the
// built-in defaults when the pre-run hook did not execute.
func settingsFrom(cmd *cobra.Command) config.Settings {
	if ctx := cmd.Context(); ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(config.Settings); ok {
			return s
		}
	}
	return config.Defaults()
}

// newPrinter returns a printer for cmd with warnings and human errors on stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the curve2svg CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve2svg",
		Short: "Export 2D curve objects to SVG",
		Long: `curve2svg - Convert 2D curve objects from a scene file into SVG path data.

Each spline of the chosen object becomes one <path>: Bezier splines as cubic
segments, poly splines as straight lines, NURBS splines as a sampled polyline.
Coordinates are scaled and the Y axis is flipped to match SVG.

Scene files may be YAML, JSON or TOML. 3D curves and non-curve objects are
rejected before anything is written.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'curve2svg --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Resolve settings and the logger once, before any subcommand runs.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return prepareContext(cmd)
	}

	// Persistent flags (available to all subcommands)
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always or never")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug diagnostics to stderr")
	cmd.PersistentFlags().String("config", "", "Settings file (default: "+config.DefaultPath()+")")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	// Define command groups and add commands
	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// prepareContext loads settings (file, then CURVE2SVG_* environment) and
// attaches them and a logger to the command context.
func prepareContext(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	path, _ := flags.GetString("config")
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	} else if _, err := os.Stat(path); err != nil {
		exitErr := output.NewUserErrorWithCause("settings file not found: "+path, err)
		newPrinter(cmd).Error(exitErr)
		return exitErr
	}

	settings, err := config.LoadSettings(path)
	if err == nil {
		settings, err = settings.ApplyEnv(os.LookupEnv)
	}
	if err == nil {
		if flag := flags.Lookup("color"); flag != nil && flag.Changed {
			settings.Color = flag.Value.String()
		}
		settings.Color, err = output.ParseColorMode(settings.Color)
	}
	if err != nil {
		exitErr := output.NewUserErrorWithCause(err.Error(), err)
		newPrinter(cmd).Error(exitErr)
		return exitErr
	}

	verbose, _ := flags.GetBool("verbose")
	logger := logging.New(cmd.ErrOrStderr(), verbose, output.IsTTY(cmd.ErrOrStderr()))
	logger.Debug().Str("config", path).Interface("settings", settings).Msg("resolved settings")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithContext(ctx, logger)
	ctx = context.WithValue(ctx, settingsKey{}, settings)
	cmd.SetContext(ctx)
	return nil
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newExportCmd(), "core")
	addGroupedCommand(cmd, newInspectCmd(), "core")
	addGroupedCommand(cmd, newFormatsCmd(), "core")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
