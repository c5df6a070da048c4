package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/curve2svg/internal/export"
	"github.com/gorewood/curve2svg/internal/scene"
	"github.com/gorewood/curve2svg/internal/svg"
)

// --- Shared types ---

// sceneRef locates the scene to read: a file path or inline content.
type sceneRef struct {
	path, content, format string
}

// optionOverrides holds per-call overrides of the server's export defaults.
type optionOverrides struct {
	scale        *float64
	precision    *int
	minify       *bool
	includeFills *bool
	autoScale    *bool
}

// ObjectSummary is a simplified scene object for output.
type ObjectSummary struct {
	Name       string `json:"name"                 jsonschema:"object name"`
	Type       string `json:"type"                 jsonschema:"object type such as CURVE or MESH"`
	Dimensions string `json:"dimensions,omitempty" jsonschema:"2D or 3D for curves"`
	Splines    int    `json:"splines"              jsonschema:"number of splines"`
	Points     int    `json:"points"               jsonschema:"number of control points"`
	Active     bool   `json:"active,omitempty"     jsonschema:"true for the scene's active object"`
	Selected   bool   `json:"selected,omitempty"   jsonschema:"true when the object is selected"`
	Exportable bool   `json:"exportable"           jsonschema:"true when the object is a 2D curve"`
	Reason     string `json:"reason,omitempty"     jsonschema:"why the object cannot be exported"`
}

// --- Inspect tool ---

// InspectInput is the input for the inspect_scene tool.
type InspectInput struct {
	Scene       string `json:"scene,omitempty"        jsonschema:"path to a .yaml, .json or .toml scene file"`
	Content     string `json:"content,omitempty"      jsonschema:"inline scene text, used instead of scene"`
	SceneFormat string `json:"scene_format,omitempty" jsonschema:"encoding of content: yaml (default), json or toml"`
}

// InspectOutput is the output for the inspect_scene tool.
type InspectOutput struct {
	Active  string          `json:"active,omitempty" jsonschema:"name of the active object"`
	Objects []ObjectSummary `json:"objects"          jsonschema:"objects in file order"`
}

func handleInspect() mcp.ToolHandlerFor[InspectInput, InspectOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input InspectInput) (*mcp.CallToolResult, InspectOutput, error) {
		scn, err := loadScene(sceneRef{input.Scene, input.Content, input.SceneFormat})
		if err != nil {
			return nil, InspectOutput{}, err
		}
		return nil, InspectOutput{
			Active:  scn.Active,
			Objects: toObjectSummaries(scn.Summarize()),
		}, nil
	}
}

// --- Export tools ---

// ExportInput is the input for the export_svg tool.
type ExportInput struct {
	Scene        string   `json:"scene,omitempty"         jsonschema:"path to a .yaml, .json or .toml scene file"`
	Content      string   `json:"content,omitempty"       jsonschema:"inline scene text, used instead of scene"`
	SceneFormat  string   `json:"scene_format,omitempty"  jsonschema:"encoding of content: yaml (default), json or toml"`
	Object       string   `json:"object,omitempty"        jsonschema:"object to export; defaults to the active, selected or only curve"`
	Format       string   `json:"format,omitempty"        jsonschema:"output format: svg (default) or json"`
	Scale        *float64 `json:"scale,omitempty"         jsonschema:"SVG units per scene unit (0.1 to 1000)"`
	Precision    *int     `json:"precision,omitempty"     jsonschema:"decimal places for coordinates (0 to 10)"`
	Minify       *bool    `json:"minify,omitempty"        jsonschema:"write compact single-line output"`
	IncludeFills *bool    `json:"include_fills,omitempty" jsonschema:"color paths from the first material"`
	AutoScale    *bool    `json:"auto_scale,omitempty"    jsonschema:"refit drawings that come out tiny or huge"`
}

func (in ExportInput) ref() sceneRef {
	return sceneRef{in.Scene, in.Content, in.SceneFormat}
}

func (in ExportInput) overrides() optionOverrides {
	return optionOverrides{in.Scale, in.Precision, in.Minify, in.IncludeFills, in.AutoScale}
}

// ExportOutput is the output for the export_svg tool.
type ExportOutput struct {
	Object   string   `json:"object"             jsonschema:"exported object name"`
	Format   string   `json:"format"             jsonschema:"output format"`
	Paths    int      `json:"paths"              jsonschema:"number of paths written, one per spline"`
	Scale    float64  `json:"scale"              jsonschema:"effective scale after clamping and auto-scale"`
	Document string   `json:"document"           jsonschema:"the rendered document"`
	Warnings []string `json:"warnings,omitempty" jsonschema:"options that were clamped into range"`
}

func handleExport(defaults svg.Options, reg *export.Registry) mcp.ToolHandlerFor[ExportInput, ExportOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		obj, err := pickObject(input.ref(), input.Object)
		if err != nil {
			return nil, ExportOutput{}, err
		}
		exp, err := reg.Lookup(orDefault(input.Format, "svg"))
		if err != nil {
			return nil, ExportOutput{}, err
		}
		opts, warnings := input.overrides().apply(defaults).Normalize()

		data, res, err := export.Render(ctx, exp, obj, opts)
		if err != nil {
			return nil, ExportOutput{}, err
		}
		return nil, ExportOutput{
			Object:   res.Object,
			Format:   res.Format,
			Paths:    res.Paths,
			Scale:    res.Scale,
			Document: string(data),
			Warnings: warnings,
		}, nil
	}
}

// ExportFileInput is the input for the export_file tool.
type ExportFileInput struct {
	Out          string   `json:"out"                     jsonschema:"output file path (required)"`
	Scene        string   `json:"scene,omitempty"         jsonschema:"path to a .yaml, .json or .toml scene file"`
	Content      string   `json:"content,omitempty"       jsonschema:"inline scene text, used instead of scene"`
	SceneFormat  string   `json:"scene_format,omitempty"  jsonschema:"encoding of content: yaml (default), json or toml"`
	Object       string   `json:"object,omitempty"        jsonschema:"object to export; defaults to the active, selected or only curve"`
	Format       string   `json:"format,omitempty"        jsonschema:"output format; defaults to the one matching the out extension"`
	Scale        *float64 `json:"scale,omitempty"         jsonschema:"SVG units per scene unit (0.1 to 1000)"`
	Precision    *int     `json:"precision,omitempty"     jsonschema:"decimal places for coordinates (0 to 10)"`
	Minify       *bool    `json:"minify,omitempty"        jsonschema:"write compact single-line output"`
	IncludeFills *bool    `json:"include_fills,omitempty" jsonschema:"color paths from the first material"`
	AutoScale    *bool    `json:"auto_scale,omitempty"    jsonschema:"refit drawings that come out tiny or huge"`
}

func (in ExportFileInput) ref() sceneRef {
	return sceneRef{in.Scene, in.Content, in.SceneFormat}
}

func (in ExportFileInput) overrides() optionOverrides {
	return optionOverrides{in.Scale, in.Precision, in.Minify, in.IncludeFills, in.AutoScale}
}

// ExportFileOutput is the output for the export_file tool.
type ExportFileOutput struct {
	Object   string   `json:"object"             jsonschema:"exported object name"`
	Format   string   `json:"format"             jsonschema:"output format"`
	Path     string   `json:"path"               jsonschema:"file that was written"`
	Paths    int      `json:"paths"              jsonschema:"number of paths written, one per spline"`
	Scale    float64  `json:"scale"              jsonschema:"effective scale after clamping and auto-scale"`
	Bytes    int      `json:"bytes"              jsonschema:"size of the written file"`
	Warnings []string `json:"warnings,omitempty" jsonschema:"options that were clamped into range"`
}

func handleExportFile(defaults svg.Options, reg *export.Registry) mcp.ToolHandlerFor[ExportFileInput, ExportFileOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportFileInput) (*mcp.CallToolResult, ExportFileOutput, error) {
		if input.Out == "" {
			return nil, ExportFileOutput{}, errors.New("out is required")
		}
		obj, err := pickObject(input.ref(), input.Object)
		if err != nil {
			return nil, ExportFileOutput{}, err
		}

		var exp export.Exporter
		if input.Format != "" {
			exp, err = reg.Lookup(input.Format)
		} else {
			exp, err = reg.ForPath(input.Out)
		}
		if err != nil {
			return nil, ExportFileOutput{}, err
		}
		opts, warnings := input.overrides().apply(defaults).Normalize()

		res, err := export.WriteFile(ctx, input.Out, exp, obj, opts)
		if err != nil {
			return nil, ExportFileOutput{}, err
		}
		return nil, ExportFileOutput{
			Object:   res.Object,
			Format:   res.Format,
			Path:     res.Path,
			Paths:    res.Paths,
			Scale:    res.Scale,
			Bytes:    res.Bytes,
			Warnings: warnings,
		}, nil
	}
}

// --- Helpers ---

// apply returns defaults with the set fields of in applied.
func (o optionOverrides) apply(defaults svg.Options) svg.Options {
	opts := defaults
	if o.scale != nil {
		opts.Scale = *o.scale
	}
	if o.precision != nil {
		opts.Precision = *o.precision
	}
	if o.minify != nil {
		opts.Minify = *o.minify
	}
	if o.includeFills != nil {
		opts.IncludeFills = *o.includeFills
	}
	if o.autoScale != nil {
		opts.AutoScale = *o.autoScale
	}
	return opts
}

// loadScene reads the scene named by a path or given inline.
func loadScene(ref sceneRef) (*scene.Scene, error) {
	switch {
	case ref.content != "":
		format, err := scene.ParseFormat(orDefault(ref.format, string(scene.FormatYAML)))
		if err != nil {
			return nil, err
		}
		return scene.Decode([]byte(ref.content), format)
	case ref.path != "":
		return scene.Load(ref.path)
	default:
		return nil, errors.New("scene or content is required")
	}
}

func pickObject(ref sceneRef, name string) (*scene.Object, error) {
	scn, err := loadScene(ref)
	if err != nil {
		return nil, err
	}
	obj, err := scn.Pick(name)
	if err != nil {
		return nil, fmt.Errorf("choosing object: %w", err)
	}
	return obj, nil
}

// toObjectSummaries converts scene summaries to ObjectSummary slice.
func toObjectSummaries(sums []scene.Summary) []ObjectSummary {
	result := make([]ObjectSummary, 0, len(sums))
	for _, s := range sums {
		result = append(result, ObjectSummary(s))
	}
	return result
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
