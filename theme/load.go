// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a theme file format.
type Format int

const (
	YAML Format = iota + 1
	TOML
)

// String implements [fmt.Stringer].
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ConfigError is returned when a theme file cannot be loaded.
type ConfigError struct {
	Path  string // The file being loaded, if any.
	Field string // The offending field, if known.
	Err   error
}

// Error implements [error].
func (e *ConfigError) Error() string {
	var buf strings.Builder
	buf.WriteString("lyneate/theme: ")
	if e.Path != "" {
		buf.WriteString(e.Path)
		buf.WriteString(": ")
	}
	if e.Field != "" {
		buf.WriteString(e.Field)
		buf.WriteString(": ")
	}
	buf.WriteString(e.Err.Error())
	return buf.String()
}

// Unwrap implements the interface used by [errors.Is] and [errors.As].
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// file is the on-disk shape of a theme. Every field is optional; absent fields
// keep the value from the preset.
type file struct {
	Preset string    `yaml:"preset" toml:"preset"`
	Chars  fileChars `yaml:"chars" toml:"chars"`
	Sizing struct {
		PreLineNumberPadding *int `yaml:"pre_line_number_padding" toml:"pre_line_number_padding"`
		UnderlineSpacing     *int `yaml:"underline_spacing" toml:"underline_spacing"`
		UnderlineArmLength   *int `yaml:"underline_arm_length" toml:"underline_arm_length"`
		SideArmLength        *int `yaml:"side_arm_length" toml:"side_arm_length"`
		SidePointerLength    *int `yaml:"side_pointer_length" toml:"side_pointer_length"`
	} `yaml:"sizing" toml:"sizing"`
}

type fileChars struct {
	Underline          *string `yaml:"underline" toml:"underline"`
	UnderlineJunction  *string `yaml:"underline_junction" toml:"underline_junction"`
	UnderlineVertical  *string `yaml:"underline_vertical" toml:"underline_vertical"`
	SideVertical       *string `yaml:"side_vertical" toml:"side_vertical"`
	SideVerticalDotted *string `yaml:"side_vertical_dotted" toml:"side_vertical_dotted"`
	SidePointer        *string `yaml:"side_pointer" toml:"side_pointer"`
	SidePointerLine    *string `yaml:"side_pointer_line" toml:"side_pointer_line"`
	SideJunction       *string `yaml:"side_junction" toml:"side_junction"`
	BottomCurve        *string `yaml:"bottom_curve" toml:"bottom_curve"`
	TopCurve           *string `yaml:"top_curve" toml:"top_curve"`
	MessagePointer     *string `yaml:"message_pointer" toml:"message_pointer"`
	MessageLine        *string `yaml:"message_line" toml:"message_line"`
}

// LoadFile loads a theme from the file at path. The format is chosen by the
// file's extension: .yaml or .yml for YAML, .toml for TOML.
func LoadFile(path string) (Theme, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = YAML
	case ".toml":
		format = TOML
	default:
		return Theme{}, &ConfigError{
			Path: path,
			Err:  fmt.Errorf("unrecognized theme file extension %q", filepath.Ext(path)),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, &ConfigError{Path: path, Err: err}
	}

	theme, err := Decode(data, format)
	if err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Path = path
		}
		return Theme{}, err
	}
	return theme, nil
}

// Decode parses a theme from data.
//
// The result starts from [Default], with glyphs taken from the named preset
// ("box", the default, or "ascii") and then overridden field by field.
// Effects cannot be configured from a file; they are always [DefaultEffects].
func Decode(data []byte, format Format) (Theme, error) {
	var f file
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return Theme{}, &ConfigError{Err: err}
		}
	case TOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return Theme{}, &ConfigError{Err: err}
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Theme{}, &ConfigError{
				Field: undecoded[0].String(),
				Err:   errors.New("unknown field"),
			}
		}
	default:
		return Theme{}, &ConfigError{Err: fmt.Errorf("unknown theme format %v", format)}
	}

	return f.theme()
}

func (f *file) theme() (Theme, error) {
	theme := Default()
	switch f.Preset {
	case "", "box":
	case "ascii":
		theme.Chars = ASCII()
	default:
		return Theme{}, &ConfigError{
			Field: "preset",
			Err:   fmt.Errorf("unknown preset %q, expected \"box\" or \"ascii\"", f.Preset),
		}
	}

	chars := []struct {
		name string
		from *string
		to   *rune
	}{
		{"underline", f.Chars.Underline, &theme.Chars.Underline},
		{"underline_junction", f.Chars.UnderlineJunction, &theme.Chars.UnderlineJunction},
		{"underline_vertical", f.Chars.UnderlineVertical, &theme.Chars.UnderlineVertical},
		{"side_vertical", f.Chars.SideVertical, &theme.Chars.SideVertical},
		{"side_vertical_dotted", f.Chars.SideVerticalDotted, &theme.Chars.SideVerticalDotted},
		{"side_pointer", f.Chars.SidePointer, &theme.Chars.SidePointer},
		{"side_pointer_line", f.Chars.SidePointerLine, &theme.Chars.SidePointerLine},
		{"side_junction", f.Chars.SideJunction, &theme.Chars.SideJunction},
		{"bottom_curve", f.Chars.BottomCurve, &theme.Chars.BottomCurve},
		{"top_curve", f.Chars.TopCurve, &theme.Chars.TopCurve},
		{"message_pointer", f.Chars.MessagePointer, &theme.Chars.MessagePointer},
		{"message_line", f.Chars.MessageLine, &theme.Chars.MessageLine},
	}
	for _, c := range chars {
		if c.from == nil {
			continue
		}
		if utf8.RuneCountInString(*c.from) != 1 {
			return Theme{}, &ConfigError{
				Field: "chars." + c.name,
				Err:   fmt.Errorf("expected exactly one character, got %q", *c.from),
			}
		}
		*c.to, _ = utf8.DecodeRuneInString(*c.from)
	}

	sizes := []struct {
		from *int
		to   *int
	}{
		{f.Sizing.PreLineNumberPadding, &theme.Sizing.PreLineNumberPadding},
		{f.Sizing.UnderlineSpacing, &theme.Sizing.UnderlineSpacing},
		{f.Sizing.UnderlineArmLength, &theme.Sizing.UnderlineArmLength},
		{f.Sizing.SideArmLength, &theme.Sizing.SideArmLength},
		{f.Sizing.SidePointerLength, &theme.Sizing.SidePointerLength},
	}
	for _, s := range sizes {
		if s.from != nil {
			*s.to = *s.from
		}
	}
	if err := theme.Sizing.Validate(); err != nil {
		return Theme{}, err
	}

	return theme, nil
}
