// Package mcp provides a Model Context Protocol server for curve2svg.
// It exposes scene inspection and curve export as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/curve2svg/internal/export"
	"github.com/gorewood/curve2svg/internal/svg"
)

// NewServer creates an MCP server with all curve2svg tools registered.
// defaults seed every export; tool arguments override them per call.
func NewServer(version string, defaults svg.Options, reg *export.Registry) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "curve2svg",
		Version: version,
	}, nil)
	registerTools(server, defaults, reg)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that replace files on disk.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all curve2svg tools to the server.
func registerTools(server *mcp.Server, defaults svg.Options, reg *export.Registry) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect_scene",
		Description: "List the objects in a scene file with their type, dimensions, spline and point counts, and whether each can be exported as 2D curves.",
		Annotations: readOnlyAnnotations(),
	}, handleInspect())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_svg",
		Description: "Convert one 2D curve object from a scene into an SVG document (or JSON path data) and return it as text. 3D curves and non-curve objects are rejected.",
		Annotations: readOnlyAnnotations(),
	}, handleExport(defaults, reg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_file",
		Description: "Convert one 2D curve object from a scene and write it atomically to a file. The format follows the file extension unless given. Existing files are replaced.",
		Annotations: writeAnnotations(),
	}, handleExportFile(defaults, reg))
}
