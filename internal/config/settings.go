package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/curve2svg/internal/svg"
)

// Environment variables that override settings file values.
const (
	EnvScale        = "CURVE2SVG_SCALE"
	EnvPrecision    = "CURVE2SVG_PRECISION"
	EnvMinify       = "CURVE2SVG_MINIFY"
	EnvIncludeFills = "CURVE2SVG_INCLUDE_FILLS"
	EnvAutoScale    = "CURVE2SVG_AUTO_SCALE"
)

// Settings are the user's export defaults.
//
// Example config.yaml:
//
//	scale: 72
//	precision: 2
//	minify: true
//	include_fills: false
//	color: never
type Settings struct {
	Scale        float64 `yaml:"scale"`
	Precision    int     `yaml:"precision"`
	Minify       bool    `yaml:"minify"`
	IncludeFills bool    `yaml:"include_fills"`
	AutoScale    bool    `yaml:"auto_scale"`
	// Color is the default for --color: auto, always or never.
	Color string `yaml:"color,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	opts := svg.DefaultOptions()
	return Settings{
		Scale:        opts.Scale,
		Precision:    opts.Precision,
		Minify:       opts.Minify,
		IncludeFills: opts.IncludeFills,
		AutoScale:    opts.AutoScale,
		Color:        "auto",
	}
}

// LoadSettings reads settings from path on top of Defaults. A missing file
// or empty path yields the defaults; keys absent from the file keep their
// default values.
func LoadSettings(path string) (Settings, error) {
	settings := Defaults()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Defaults(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return settings, nil
}

// ApplyEnv returns s with CURVE2SVG_* overrides applied. lookup is usually
// os.LookupEnv; empty values are ignored.
func (s Settings) ApplyEnv(lookup func(string) (string, bool)) (Settings, error) {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}

	if v, ok := get(EnvScale); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return s, fmt.Errorf("%s: %w", EnvScale, err)
		}
		s.Scale = f
	}
	if v, ok := get(EnvPrecision); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("%s: %w", EnvPrecision, err)
		}
		s.Precision = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvMinify, &s.Minify},
		{EnvIncludeFills, &s.IncludeFills},
		{EnvAutoScale, &s.AutoScale},
	}
	for _, b := range bools {
		v, ok := get(b.key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = parsed
	}
	return s, nil
}

// Options converts settings into exporter options.
func (s Settings) Options() svg.Options {
	opts := svg.DefaultOptions()
	opts.Scale = s.Scale
	opts.Precision = s.Precision
	opts.Minify = s.Minify
	opts.IncludeFills = s.IncludeFills
	opts.AutoScale = s.AutoScale
	return opts
}
