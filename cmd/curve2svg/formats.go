// Package main provides the entry point for the curve2svg CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/curve2svg/internal/export"
)

// newFormatsCmd creates the formats command.
func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFormats(cmd, export.Default())
		},
	}
}

// runFormats prints the exporters in reg.
func runFormats(cmd *cobra.Command, reg *export.Registry) error {
	printer := newPrinter(cmd)
	exporters := reg.List()

	if printer.IsJSON() {
		formats := make([]map[string]string, 0, len(exporters))
		for _, exp := range exporters {
			formats = append(formats, map[string]string{
				"name":      exp.Name(),
				"label":     exp.Label(),
				"extension": exp.Extension(),
			})
		}
		return printer.Success(map[string]any{"formats": formats})
	}

	rows := make([][]string, 0, len(exporters))
	for _, exp := range exporters {
		rows = append(rows, []string{exp.Name(), exp.Extension(), exp.Label()})
	}
	printer.Table([]string{"NAME", "EXT", "DESCRIPTION"}, rows)
	return nil
}
