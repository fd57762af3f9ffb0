// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding"
	"fmt"
	"os"
	"reflect"
	"strconv"

	"cogentcore.org/tint/base/errors"
	"cogentcore.org/tint/cie"
	"github.com/pelletier/go-toml/v2"
)

// Config is the configuration of the tint command. It is read from an
// optional TOML file, and any flags given on the command line override
// the values in the file.
type Config struct {

	// From is the name of the color space of input colors.
	From string `toml:"from" default:"srgb"`

	// To is the name of the color space of output colors.
	To string `toml:"to" default:"lab"`

	// Illuminant is the illuminant of XYZ input and output colors.
	Illuminant cie.Illuminant `toml:"illuminant" default:"D50"`

	// CCT is the correlated color temperature in kelvin of a custom
	// illuminant. If it is nonzero, it overrides Illuminant.
	CCT float64 `toml:"cct"`

	// Format is the output format: text, toml or yaml.
	Format string `toml:"format" default:"text"`

	// Swatch is whether to print a truecolor swatch of each color in
	// text output.
	Swatch bool `toml:"swatch"`
}

// illuminant returns the illuminant selected by the config.
func (c *Config) illuminant() (cie.Illuminant, error) {
	if c.CCT == 0 {
		return c.Illuminant, nil
	}
	return cie.Custom(c.CCT)
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(setFromDefaultTags(cfg))
}

func setFromDefaultTags(obj any) error {
	val := reflect.ValueOf(obj)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaults: expected a pointer to a struct, not %T", obj)
	}
	val = val.Elem()
	typ := val.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok || def == "" {
			continue
		}
		if err := setFromString(val.Field(i), def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaults: field %s of %s from %q: %w", f.Name, typ.Name(), def, err))
		}
	}
	return errors.Join(errs...)
}

func setFromString(fv reflect.Value, s string) error {
	if tu, ok := fv.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		fv.SetFloat(n)
	default:
		return fmt.Errorf("unsupported kind %v", fv.Kind())
	}
	return nil
}

// OpenConfig reads the given TOML file into the config.
// Unknown keys are an error.
func OpenConfig(cfg *Config, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg)
}
