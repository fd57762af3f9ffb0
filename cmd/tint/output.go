// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/tint/colors"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// colorResult is the output of one color.
type colorResult struct {
	Space  string     `toml:"space" yaml:"space"`
	Values [3]float64 `toml:"values" yaml:"values,flow"`

	// Hex is the sRGB hex code of the color, clamped to the gamut.
	Hex string `toml:"hex" yaml:"hex"`

	// InGamut is whether the color is inside of the sRGB gamut.
	InGamut bool `toml:"in_gamut" yaml:"in_gamut"`
}

func newColorResult(s *space, c colors.Color) colorResult {
	srgb := colors.Convert[colors.SRGB](c)
	rgba := srgb.AsRGBA()
	return colorResult{
		Space:   s.name,
		Values:  s.coord(c).Array(),
		Hex:     fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B),
		InGamut: srgb.InGamut(),
	}
}

// colorsResult is the output of a list of colors.
type colorsResult struct {
	Colors []colorResult `toml:"colors" yaml:"colors"`
}

// diffResult is the output of the diff command.
type diffResult struct {
	DeltaE76   float64 `toml:"delta_e76" yaml:"delta_e76"`
	DeltaE94   float64 `toml:"delta_e94" yaml:"delta_e94"`
	DeltaE2000 float64 `toml:"delta_e2000" yaml:"delta_e2000"`
	DeltaEOK   float64 `toml:"delta_eok" yaml:"delta_eok"`
}

// whitePointResult is the output of the whitepoint command.
type whitePointResult struct {
	Illuminant string     `toml:"illuminant" yaml:"illuminant"`
	CCT        float64    `toml:"cct" yaml:"cct"`
	XYZ        [3]float64 `toml:"xyz" yaml:"xyz,flow"`
	X          float64    `toml:"x" yaml:"x"`
	Y          float64    `toml:"y" yaml:"y"`
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// printer writes results in the configured format.
type printer struct {
	w      io.Writer
	format string
	swatch bool
}

func newPrinter(w io.Writer, cfg *Config) (*printer, error) {
	switch strings.ToLower(cfg.Format) {
	case "text", "toml", "yaml":
	default:
		return nil, fmt.Errorf("unknown output format %q (must be text, toml or yaml)", cfg.Format)
	}
	return &printer{w: w, format: strings.ToLower(cfg.Format), swatch: cfg.Swatch}, nil
}

// encode writes v in a structured format, returning false for text output.
func (p *printer) encode(v any) (bool, error) {
	switch p.format {
	case "toml":
		return true, toml.NewEncoder(p.w).Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

// swatchString returns a truecolor block in the given sRGB hex color.
func swatchString(hex string) string {
	out := termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.TrueColor))
	return out.String("      ").Background(out.Color(hex)).String()
}

func (p *printer) colors(cs ...colorResult) error {
	var v any = colorsResult{Colors: cs}
	if len(cs) == 1 {
		v = cs[0]
	}
	if ok, err := p.encode(v); ok {
		return err
	}
	for _, c := range cs {
		line := fmt.Sprintf("%s %s %s %s", c.Space, formatFloat(c.Values[0]), formatFloat(c.Values[1]), formatFloat(c.Values[2]))
		if p.swatch {
			line += " " + swatchString(c.Hex) + " " + c.Hex
		}
		if !c.InGamut {
			line += " (out of sRGB gamut)"
		}
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) diff(d diffResult) error {
	if ok, err := p.encode(d); ok {
		return err
	}
	_, err := fmt.Fprintf(p.w, "ΔE76   %s\nΔE94   %s\nΔE2000 %s\nΔEOK   %s\n",
		formatFloat(d.DeltaE76), formatFloat(d.DeltaE94), formatFloat(d.DeltaE2000), formatFloat(d.DeltaEOK))
	return err
}

// whitePointsResult is the output of a list of white points.
type whitePointsResult struct {
	WhitePoints []whitePointResult `toml:"white_points" yaml:"white_points"`
}

func (p *printer) whitePoints(wps ...whitePointResult) error {
	var v any = whitePointsResult{WhitePoints: wps}
	if len(wps) == 1 {
		v = wps[0]
	}
	if ok, err := p.encode(v); ok {
		return err
	}
	for _, wp := range wps {
		_, err := fmt.Fprintf(p.w, "%s %gK XYZ %s %s %s xy %s %s\n", wp.Illuminant, wp.CCT,
			formatFloat(wp.XYZ[0]), formatFloat(wp.XYZ[1]), formatFloat(wp.XYZ[2]), formatFloat(wp.X), formatFloat(wp.Y))
		if err != nil {
			return err
		}
	}
	return nil
}
