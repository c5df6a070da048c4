// Package main provides the entry point for the curve2svg CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/curve2svg/internal/export"
	"github.com/gorewood/curve2svg/internal/logging"
	curvemcp "github.com/gorewood/curve2svg/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run curve2svg as a Model Context Protocol (MCP) server over stdio.

This exposes scene inspection and curve export as MCP tools that any
MCP-capable agent environment can use. The settings file and CURVE2SVG_*
environment variables provide the export defaults; tool arguments override
them per call.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "curve2svg": {
        "command": "curve2svg",
        "args": ["serve"]
      }
    }
  }

Available tools: inspect_scene, export_svg, export_file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defaults := settingsFrom(cmd).Options()
			logging.From(cmd.Context()).Debug().Float64("scale", defaults.Scale).Msg("starting MCP server")
			server := curvemcp.NewServer(buildVersion(), defaults, export.Default())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
