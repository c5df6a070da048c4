package svg

import (
	"fmt"
	"math"
)

// Option limits. Values outside these ranges are clamped by Normalize.
const (
	MinScale     = 0.1
	MaxScale     = 1000.0
	MinPrecision = 0
	MaxPrecision = 10

	DefaultScale     = 100.0
	DefaultPrecision = 3
)

// Auto-scale tuning: drawings whose scaled extent falls outside
// [autoScaleLow, autoScaleHigh] are refit to autoScaleTarget units.
const (
	autoScaleTarget = 500.0
	autoScaleLow    = 10.0
	autoScaleHigh   = 5000.0
)

// Options configures a single export.
type Options struct {
	Scale        float64 `json:"scale"         yaml:"scale"`
	Precision    int     `json:"precision"     yaml:"precision"`
	Minify       bool    `json:"minify"        yaml:"minify"`
	IncludeFills bool    `json:"include_fills" yaml:"include_fills"`
	AutoScale    bool    `json:"auto_scale"    yaml:"auto_scale"`
	// Generator is written into the document's leading comment.
	Generator string `json:"-" yaml:"-"`
}

// DefaultOptions returns the dialog defaults.
func DefaultOptions() Options {
	return Options{
		Scale:        DefaultScale,
		Precision:    DefaultPrecision,
		IncludeFills: true,
		Generator:    "curve2svg",
	}
}

// Normalize clamps Scale and Precision into range. A NaN or infinite Scale
// falls back to DefaultScale. It returns the clamped options and one note
// per adjusted field.
func (o Options) Normalize() (Options, []string) {
	var notes []string
	switch {
	case math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0):
		notes = append(notes, fmt.Sprintf("scale %g is not a finite number, using %g", o.Scale, DefaultScale))
		o.Scale = DefaultScale
	case o.Scale < MinScale:
		notes = append(notes, fmt.Sprintf("scale %g below minimum, using %g", o.Scale, MinScale))
		o.Scale = MinScale
	case o.Scale > MaxScale:
		notes = append(notes, fmt.Sprintf("scale %g above maximum, using %g", o.Scale, MaxScale))
		o.Scale = MaxScale
	}
	switch {
	case o.Precision < MinPrecision:
		notes = append(notes, fmt.Sprintf("precision %d below minimum, using %d", o.Precision, MinPrecision))
		o.Precision = MinPrecision
	case o.Precision > MaxPrecision:
		notes = append(notes, fmt.Sprintf("precision %d above maximum, using %d", o.Precision, MaxPrecision))
		o.Precision = MaxPrecision
	}
	return o, notes
}
