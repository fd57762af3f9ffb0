// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/tint/cie"
	"cogentcore.org/tint/colors"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/spf13/cobra"
)

// inputSpace returns the space of input colors, with the given
// --from flag value taking priority over the config.
func (a *app) inputSpace(cmd *cobra.Command, from string) (*space, error) {
	if cmd.Flags().Changed("from") {
		a.cfg.From = from
	}
	return lookupSpace(a.cfg.From)
}

// outputSpace returns the space of output colors, with the given
// --to flag value taking priority over the config.
func (a *app) outputSpace(cmd *cobra.Command, to string) (*space, error) {
	if cmd.Flags().Changed("to") {
		a.cfg.To = to
	}
	return lookupSpace(a.cfg.To)
}

// illuminants parses the source and destination illuminants of an
// adaptation. A custom temperature given with --cct overrides the
// destination.
func (a *app) illuminants(from, to string) (src, dst cie.Illuminant, err error) {
	if err = src.UnmarshalText([]byte(from)); err != nil {
		return
	}
	if a.cfg.CCT != 0 {
		dst, err = cie.Custom(a.cfg.CCT)
		return
	}
	err = dst.UnmarshalText([]byte(to))
	return
}

func (a *app) convertCmd() *cobra.Command {
	var from, to string
	var clip bool
	cmd := &cobra.Command{
		Use:   "convert [coordinates...]",
		Short: "Convert colors from one color space to another",
		Long:  "Convert colors from one color space to another. Coordinates are given in groups of three, after -- if any of them are negative.",
		Example: `  tint convert --from srgb --to lab 1 0.5 0
  tint convert --from lab --to srgb --clip -- 50 100 -20`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.inputSpace(cmd, from)
			if err != nil {
				return err
			}
			out, err := a.outputSpace(cmd, to)
			if err != nil {
				return err
			}
			il, err := a.cfg.illuminant()
			if err != nil {
				return err
			}
			if clip && out.clip == nil {
				return fmt.Errorf("clipping to the sRGB gamut is not supported in %s", out.name)
			}
			vs, err := parseCoords(args)
			if err != nil {
				return err
			}
			p, err := newPrinter(cmd.OutOrStdout(), &a.cfg)
			if err != nil {
				return err
			}
			res := make([]colorResult, len(vs))
			for i, v := range vs {
				c := out.convert(in.make(v, il), il)
				if clip {
					cl, ok := out.clip(c)
					if !ok {
						return fmt.Errorf("no color in %s is inside of the sRGB gamut", out.name)
					}
					c = cl
				}
				slog.Debug("converted", "from", in.name, "to", out.name, "input", v, "output", c)
				res[i] = newColorResult(out, c)
			}
			return p.colors(res...)
		},
	}
	cmd.Flags().StringVar(&from, "from", "srgb", "color space of the input ("+strings.Join(spaceNames(), ", ")+")")
	cmd.Flags().StringVar(&to, "to", "lab", "color space of the output")
	cmd.Flags().BoolVar(&clip, "clip", false, "replace the output with the nearest color inside of the sRGB gamut")
	return cmd
}

func (a *app) adaptCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:     "adapt x y z [x y z...]",
		Short:   "Adapt XYZ colors from one illuminant to another",
		Example: "  tint adapt --from D65 --to D50 0.95047 1 1.08883\n  tint adapt --from D65 --cct 3000 0.5 0.5 0.5",
		Args:    cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst, err := a.illuminants(from, to)
			if err != nil {
				return err
			}
			vs, err := parseCoords(args)
			if err != nil {
				return err
			}
			p, err := newPrinter(cmd.OutOrStdout(), &a.cfg)
			if err != nil {
				return err
			}
			xyz := spaces["xyz"]
			res := make([]colorResult, len(vs))
			for i, v := range vs {
				c := cie.XYZFromVector3(v, src).Adapt(dst)
				slog.Debug("adapted", "from", src, "to", dst, "input", v, "output", c)
				res[i] = newColorResult(xyz, c)
			}
			return p.colors(res...)
		},
	}
	cmd.Flags().StringVar(&from, "from", "D65", "illuminant of the input")
	cmd.Flags().StringVar(&to, "to", "D50", "illuminant of the output")
	return cmd
}

func (a *app) diffCmd() *cobra.Command {
	var spaceName string
	cmd := &cobra.Command{
		Use:     "diff a1 a2 a3 b1 b2 b3",
		Short:   "Print the color differences between two colors",
		Example: "  tint diff --space srgb 1 0 0 0.9 0.1 0",
		Args:    cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := lookupSpace(spaceName)
			if err != nil {
				return err
			}
			il, err := a.cfg.illuminant()
			if err != nil {
				return err
			}
			vs, err := parseCoords(args)
			if err != nil {
				return err
			}
			p, err := newPrinter(cmd.OutOrStdout(), &a.cfg)
			if err != nil {
				return err
			}
			ca, cb := s.make(vs[0], il), s.make(vs[1], il)
			la, lb := colors.Convert[colors.Lab](ca), colors.Convert[colors.Lab](cb)
			return p.diff(diffResult{
				DeltaE76:   colors.DeltaE76(la, lb),
				DeltaE94:   colors.DeltaE94(la, lb),
				DeltaE2000: colors.DeltaE2000(la, lb),
				DeltaEOK:   colors.DeltaEOK(colors.Convert[colors.OKLab](ca), colors.Convert[colors.OKLab](cb)),
			})
		},
	}
	cmd.Flags().StringVar(&spaceName, "space", "srgb", "color space of the input")
	return cmd
}

func (a *app) gradientCmd() *cobra.Command {
	var from, spaceName string
	var n int
	cmd := &cobra.Command{
		Use:     "gradient a1 a2 a3 b1 b2 b3",
		Short:   "Print evenly spaced colors between two colors",
		Long:    "Print evenly spaced colors between two colors, interpolated in the --space color space and printed in the --from color space.",
		Example: "  tint gradient --space oklab --from srgb -n 5 1 0 0 0 0 1",
		Args:    cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.inputSpace(cmd, from)
			if err != nil {
				return err
			}
			s, err := lookupSpace(spaceName)
			if err != nil {
				return err
			}
			il, err := a.cfg.illuminant()
			if err != nil {
				return err
			}
			vs, err := parseCoords(args)
			if err != nil {
				return err
			}
			p, err := newPrinter(cmd.OutOrStdout(), &a.cfg)
			if err != nil {
				return err
			}
			cs := s.gradient(in.make(vs[0], il), in.make(vs[1], il), n)
			res := make([]colorResult, len(cs))
			for i, c := range cs {
				res[i] = newColorResult(in, in.convert(c, il))
			}
			return p.colors(res...)
		},
	}
	cmd.Flags().StringVar(&from, "from", "srgb", "color space of the input and output")
	cmd.Flags().StringVar(&spaceName, "space", "oklab", "color space of the interpolation")
	cmd.Flags().IntVarP(&n, "steps", "n", 5, "number of colors")
	return cmd
}

func (a *app) whitePointCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitepoint [illuminant...]",
		Short: "Print the white points of illuminants",
		Long:  "Print the white points of the given illuminants, or of the configured illuminant if none are given. Illuminants are standard names such as D65 or temperatures such as 5000K.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var ils []cie.Illuminant
			for _, arg := range args {
				var il cie.Illuminant
				if err := il.UnmarshalText([]byte(arg)); err != nil {
					return err
				}
				ils = append(ils, il)
			}
			if len(ils) == 0 {
				il, err := a.cfg.illuminant()
				if err != nil {
					return err
				}
				ils = append(ils, il)
			}
			p, err := newPrinter(cmd.OutOrStdout(), &a.cfg)
			if err != nil {
				return err
			}
			wps := make([]whitePointResult, len(ils))
			for i, il := range ils {
				wp := il.WhitePoint()
				x, y := cie.XYZToChromaticity(wp)
				wps[i] = whitePointResult{Illuminant: il.String(), CCT: il.CCT(), XYZ: wp.Array(), X: x, Y: y}
			}
			return p.whitePoints(wps...)
		},
	}
	return cmd
}

func (a *app) imageCmd() *cobra.Command {
	var from, to string
	var quality int
	cmd := &cobra.Command{
		Use:     "image input output",
		Short:   "Adapt the colors of an image to another illuminant",
		Long:    "Adapt the colors of an image to another illuminant. The output format is given by the extension of the output file: .png, .jpg, .jpeg or .bmp.",
		Example: "  tint image --from D65 --to A photo.png warm.png",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst, err := a.illuminants(from, to)
			if err != nil {
				return err
			}
			enc, err := imageEncoder(args[1], quality)
			if err != nil {
				return err
			}
			img, err := imgio.Open(args[0])
			if err != nil {
				return err
			}
			slog.Info("adapting image", "input", args[0], "size", img.Bounds().Size(), "from", src, "to", dst)
			return imgio.Save(args[1], colors.AdaptImage(img, src, dst), enc)
		},
	}
	cmd.Flags().StringVar(&from, "from", "D65", "illuminant of the input")
	cmd.Flags().StringVar(&to, "to", "D50", "illuminant of the output")
	cmd.Flags().IntVar(&quality, "quality", 95, "quality of JPEG output")
	return cmd
}

// imageEncoder returns the encoder for the extension of the given file.
func imageEncoder(file string, quality int) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(quality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	}
	return nil, fmt.Errorf("unsupported image format %q", filepath.Ext(file))
}
