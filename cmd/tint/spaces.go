// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/tint/cie"
	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/math64"
)

// space is a color space that can be named on the command line.
type space struct {
	name string

	// make returns the color with the given coordinates.
	make func(v math64.Vector3, il cie.Illuminant) colors.Color

	// convert converts the color into the space.
	convert func(c colors.Color, il cie.Illuminant) colors.Color

	// coord returns the coordinates of a color in the space.
	coord func(c colors.Color) math64.Vector3

	// gradient returns n colors evenly spaced in the space from a to b.
	gradient func(a, b colors.Color, n int) []colors.Color

	// clip returns the nearest color to c in the space that is
	// inside of the sRGB gamut. It is nil for spaces that do not
	// support clipping.
	clip func(c colors.Color) (colors.Color, bool)
}

func spaceOf[T colors.Point[T]](name string) *space {
	return &space{
		name: name,
		make: func(v math64.Vector3, il cie.Illuminant) colors.Color {
			var zero T
			return zero.FromCoord(v)
		},
		convert: func(c colors.Color, il cie.Illuminant) colors.Color {
			return colors.Convert[T](c)
		},
		coord: func(c colors.Color) math64.Vector3 {
			return c.(T).Coord()
		},
		gradient: func(a, b colors.Color, n int) []colors.Color {
			var cs []colors.Color
			for c := range colors.Gradient(colors.Convert[T](a), colors.Convert[T](b), n) {
				cs = append(cs, c)
			}
			return cs
		},
	}
}

// clipTo makes the space clip colors to the given sRGB gamut.
func clipTo[T colors.Point[T], G colors.Gamut[T]](s *space, g G) *space {
	s.clip = func(c colors.Color) (colors.Color, bool) {
		return colors.NearestInGamut(colors.Convert[T](c), g)
	}
	return s
}

// xyzSpace is XYZ relative to the illuminant selected by the config,
// rather than always D50.
func xyzSpace() *space {
	s := spaceOf[cie.XYZ]("xyz")
	s.make = func(v math64.Vector3, il cie.Illuminant) colors.Color {
		return cie.XYZFromVector3(v, il)
	}
	s.convert = func(c colors.Color, il cie.Illuminant) colors.Color {
		return c.ToXYZ(il)
	}
	return s
}

var spaces = map[string]*space{}

func register(s *space, aliases ...string) {
	spaces[s.name] = s
	for _, a := range aliases {
		spaces[a] = s
	}
}

func init() {
	srgb := colors.UnitCube[colors.SRGB]()
	register(xyzSpace())
	register(spaceOf[colors.XYY]("xyy"))
	register(clipTo[colors.SRGB](spaceOf[colors.SRGB]("srgb"), srgb), "rgb")
	register(clipTo[colors.LinearSRGB](spaceOf[colors.LinearSRGB]("linear-srgb"), colors.UnitCube[colors.LinearSRGB]()), "linear")
	register(clipTo[colors.AdobeRGB](spaceOf[colors.AdobeRGB]("adobe-rgb"), colors.GamutOf(srgb, colors.UnitCube[colors.AdobeRGB]())))
	register(clipTo[colors.DisplayP3](spaceOf[colors.DisplayP3]("display-p3"), colors.GamutOf(srgb, colors.UnitCube[colors.DisplayP3]())), "p3")
	register(clipTo[colors.Rec2020](spaceOf[colors.Rec2020]("rec2020"), colors.GamutOf(srgb, colors.UnitCube[colors.Rec2020]())))
	register(clipTo[colors.ProPhotoRGB](spaceOf[colors.ProPhotoRGB]("prophoto-rgb"), colors.GamutOf(srgb, colors.UnitCube[colors.ProPhotoRGB]())), "prophoto")
	register(clipTo[colors.Lab](spaceOf[colors.Lab]("lab"), colors.GamutOf(srgb, colors.LabBounds)))
	register(spaceOf[colors.LCHab]("lchab"), "lch")
	register(clipTo[colors.Luv](spaceOf[colors.Luv]("luv"), colors.GamutOf(srgb, colors.LuvBounds)))
	register(spaceOf[colors.LCHuv]("lchuv"))
	register(spaceOf[colors.HSV]("hsv"))
	register(spaceOf[colors.HSL]("hsl"))
	register(clipTo[colors.OKLab](spaceOf[colors.OKLab]("oklab"), colors.GamutOf(srgb, colors.OKLabBounds)))
	register(spaceOf[colors.OKLCH]("oklch"))
}

// spaceNames returns the sorted names and aliases of all spaces.
func spaceNames() []string {
	return slices.Sorted(maps.Keys(spaces))
}

// lookupSpace returns the space with the given case insensitive name.
func lookupSpace(name string) (*space, error) {
	s, ok := spaces[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown color space %q (known spaces are %s)", name, strings.Join(spaceNames(), ", "))
	}
	return s, nil
}

// parseCoords parses consecutive triples of coordinates.
func parseCoords(args []string) ([]math64.Vector3, error) {
	if len(args)%3 != 0 {
		return nil, fmt.Errorf("expected coordinates in groups of three, but got %d values", len(args))
	}
	vs := make([]math64.Vector3, len(args)/3)
	for i := range vs {
		var a [3]float64
		for j := range a {
			f, err := strconv.ParseFloat(args[3*i+j], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid coordinate %q: %w", args[3*i+j], err)
			}
			a[j] = f
		}
		vs[i] = math64.Vec3(a[0], a[1], a[2])
	}
	return vs, nil
}
