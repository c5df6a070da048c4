// Package main provides the entry point for the curve2svg CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/curve2svg/internal/config"
	"github.com/gorewood/curve2svg/internal/export"
	"github.com/gorewood/curve2svg/internal/logging"
	"github.com/gorewood/curve2svg/internal/output"
	"github.com/gorewood/curve2svg/internal/scene"
	"github.com/gorewood/curve2svg/internal/svg"
)

// exportFlags holds the export command's flag values.
type exportFlags struct {
	object       string
	out          string
	format       string
	scale        float64
	precision    int
	minify       bool
	includeFills bool
	autoScale    bool
}

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var flags exportFlags
	cmd := &cobra.Command{
		Use:   "export <scene>",
		Short: "Export a 2D curve object to SVG",
		Long: `Export one 2D curve object from a scene file as SVG.

The object is chosen by --object, otherwise the scene's active object, the
only selected curve, or the only curve in the scene. Without --out the
document is written to stdout.

Flags override the settings file and CURVE2SVG_* environment variables.
Out-of-range --scale (0.1 to 1000) and --precision (0 to 10) are clamped
with a warning.

Examples:
  curve2svg export logo.yaml                             # SVG to stdout
  curve2svg export logo.yaml --out logo.svg              # Write logo.svg atomically
  curve2svg export logo.yaml --object Outline --scale 72 # Pick an object, 72 units per scene unit
  curve2svg export logo.yaml --minify --precision 1      # Compact single-line output
  curve2svg export logo.yaml --format json               # Path data as JSON`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], flags)
		},
	}

	defaults := config.Defaults()
	cmd.Flags().StringVar(&flags.object, "object", "", "Object to export (default: active, selected or only curve)")
	cmd.Flags().StringVar(&flags.out, "out", "", "Output file (if omitted, writes to stdout)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: svg or json (default: from --out extension, else svg)")
	cmd.Flags().Float64Var(&flags.scale, "scale", defaults.Scale, "SVG units per scene unit")
	cmd.Flags().IntVar(&flags.precision, "precision", defaults.Precision, "Decimal places for coordinates")
	cmd.Flags().BoolVar(&flags.minify, "minify", defaults.Minify, "Write compact single-line output")
	cmd.Flags().BoolVar(&flags.includeFills, "include-fills", defaults.IncludeFills, "Color paths from the first material")
	cmd.Flags().BoolVar(&flags.autoScale, "auto-scale", defaults.AutoScale, "Refit drawings that come out tiny or huge")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, scenePath string, flags exportFlags) error {
	printer := newPrinter(cmd)

	obj, err := loadObject(scenePath, flags.object)
	if err != nil {
		return fail(printer, err)
	}

	exp, err := chooseExporter(export.Default(), flags.format, flags.out)
	if err != nil {
		return fail(printer, output.NewUserErrorWithCause(err.Error(), err))
	}

	opts, warnings := exportOptions(cmd, settingsFrom(cmd), flags).Normalize()
	if !printer.IsJSON() {
		for _, w := range warnings {
			printer.Warn("%s", w)
		}
	}

	if flags.out == "" {
		return writeToStdout(cmd, printer, exp, obj, opts, warnings)
	}
	return writeToFile(cmd, printer, exp, obj, opts, flags.out, warnings)
}

// loadObject loads the scene and picks the object to export.
func loadObject(scenePath, name string) (*scene.Object, error) {
	scn, err := scene.Load(scenePath)
	if err != nil {
		return nil, err
	}
	return scn.Pick(name)
}

// chooseExporter resolves --format, falling back to the --out extension
// and then to SVG.
func chooseExporter(reg *export.Registry, format, out string) (export.Exporter, error) {
	if format != "" {
		return reg.Lookup(format)
	}
	if out != "" && filepath.Ext(out) != "" {
		return reg.ForPath(out)
	}
	return reg.Lookup("svg")
}

// exportOptions layers explicitly set flags over the resolved settings.
func exportOptions(cmd *cobra.Command, settings config.Settings, flags exportFlags) svg.Options {
	opts := settings.Options()
	changed := cmd.Flags().Changed
	if changed("scale") {
		opts.Scale = flags.scale
	}
	if changed("precision") {
		opts.Precision = flags.precision
	}
	if changed("minify") {
		opts.Minify = flags.minify
	}
	if changed("include-fills") {
		opts.IncludeFills = flags.includeFills
	}
	if changed("auto-scale") {
		opts.AutoScale = flags.autoScale
	}
	return opts
}

// writeToStdout renders the document to stdout, or wraps it in a JSON
// result in --json mode.
func writeToStdout(cmd *cobra.Command, printer *output.Printer, exp export.Exporter, obj *scene.Object, opts svg.Options, warnings []string) error {
	data, res, err := export.Render(cmd.Context(), exp, obj, opts)
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.Success(resultData(res, warnings, string(data)))
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fail(printer, output.NewSystemErrorWithCause("writing output: "+err.Error(), err))
	}
	return nil
}

// writeToFile renders the document and atomically replaces path.
func writeToFile(cmd *cobra.Command, printer *output.Printer, exp export.Exporter, obj *scene.Object, opts svg.Options, path string, warnings []string) error {
	res, err := export.WriteFile(cmd.Context(), path, exp, obj, opts)
	if err != nil {
		return fail(printer, err)
	}
	logging.From(cmd.Context()).Info().Str("path", res.Path).Str("object", res.Object).Msg("export complete")

	if printer.IsJSON() {
		return printer.Success(resultData(res, warnings, ""))
	}
	if err := printer.Success(map[string]any{
		"message": fmt.Sprintf("Exported %s (%s) to %s", res.Object, pluralize(res.Paths, "path"), res.Path),
	}); err != nil {
		return err
	}
	printer.KeyValue("Format", res.Format)
	printer.KeyValue("Scale", strconv.FormatFloat(res.Scale, 'g', -1, 64))
	printer.KeyValue("Size", pluralize(res.Bytes, "byte"))
	return nil
}

// resultData builds the --json payload for an export.
func resultData(res *export.Result, warnings []string, document string) map[string]any {
	data := map[string]any{
		"status": "ok",
		"object": res.Object,
		"format": res.Format,
		"paths":  res.Paths,
		"scale":  res.Scale,
		"bytes":  res.Bytes,
	}
	if res.Path != "" {
		data["path"] = res.Path
	}
	if document != "" {
		data["document"] = document
	}
	if len(warnings) > 0 {
		data["warnings"] = warnings
	}
	return data
}

// fail classifies err into an exit code, prints it and returns it.
func fail(printer *output.Printer, err error) error {
	exitErr := classifyError(err)
	printer.Error(exitErr)
	return exitErr
}

// classifyError maps domain errors onto CLI exit codes: rejected objects
// are unsupported, bad scenes and object choices are user errors, and
// anything else is a system failure.
func classifyError(err error) *output.ExitError {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	switch {
	case errors.Is(err, svg.ErrUnsupportedInput):
		return output.NewUnsupportedError(err.Error(), err)
	case errors.Is(err, scene.ErrInvalidScene),
		errors.Is(err, scene.ErrUnknownFormat),
		errors.Is(err, scene.ErrObjectNotFound),
		errors.Is(err, scene.ErrNoCurves),
		errors.Is(err, scene.ErrAmbiguousObject),
		errors.Is(err, os.ErrNotExist):
		return output.NewUserErrorWithCause(err.Error(), err)
	default:
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
}

// pluralize returns "1 path" or "3 paths".
func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
