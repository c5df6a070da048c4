// Package main provides the entry point for the curve2svg CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/curve2svg/internal/output"
	"github.com/gorewood/curve2svg/internal/scene"
)

// newInspectCmd creates the inspect command.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <scene>",
		Short: "List the objects in a scene file",
		Long: `List every object in a scene file with its type, dimensions, spline and
point counts, and whether it can be exported.

Objects that cannot be exported are dimmed and the STATUS column says why.
The active object is marked with *.

Examples:
  curve2svg inspect logo.yaml         # Human-readable table
  curve2svg inspect logo.yaml --json  # Object summaries as JSON`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

// inspectResult is the --json payload for inspect.
type inspectResult struct {
	Scene   string          `json:"scene"`
	Active  string          `json:"active,omitempty"`
	Objects []scene.Summary `json:"objects"`
}

// runInspect executes the inspect command.
func runInspect(cmd *cobra.Command, path string) error {
	printer := newPrinter(cmd)

	scn, err := scene.Load(path)
	if err != nil {
		return fail(printer, err)
	}
	sums := scn.Summarize()

	if printer.IsJSON() {
		return printer.WriteJSON(inspectResult{Scene: path, Active: scn.Active, Objects: sums})
	}

	printInspect(printer, path, scn.Active, sums)
	return nil
}

// printInspect renders the scene header and object summaries as a table.
func printInspect(printer *output.Printer, path, active string, sums []scene.Summary) {
	printer.Section(path)
	if len(sums) == 0 {
		printer.Println("No objects")
		return
	}

	exportable := 0
	for _, s := range sums {
		if s.Exportable {
			exportable++
		}
	}
	printer.KeyValue("Active", orNone(active))
	printer.KeyValue("Exportable", fmt.Sprintf("%d of %d", exportable, len(sums)))
	printer.Println()

	rows := make([][]string, 0, len(sums))
	var dimmed []string
	for _, s := range sums {
		name := s.Name
		if s.Active {
			name += " *"
		}
		status := "ok"
		if !s.Exportable {
			status = s.Reason
			dimmed = append(dimmed, name)
		}
		rows = append(rows, []string{
			name,
			s.Type,
			s.Dimensions,
			strconv.Itoa(s.Splines),
			strconv.Itoa(s.Points),
			status,
		})
	}
	printer.Table([]string{"NAME", "TYPE", "DIM", "SPLINES", "POINTS", "STATUS"}, rows, dimmed...)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
