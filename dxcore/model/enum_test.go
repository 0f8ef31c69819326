/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package model

import (
	stderrors "errors"
	"testing"

	"dirpx.dev/dxstate/dxcore/errors"
	"gopkg.in/yaml.v3"
)

type light int

const (
	lightRed light = iota
	lightAmber
	lightGreen
)

var lightVariants = NewVariants[light]("Light", "Red", "Amber", "Green")

func TestVariants_Name(t *testing.T) {
	tests := []struct {
		name  string
		light light
		want  string
	}{
		{"Red", lightRed, "Red"},
		{"Green", lightGreen, "Green"},
		{"Negative", light(-1), "unknown"},
		{"Unknown", light(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lightVariants.Name(tt.light); got != tt.want {
				t.Errorf("Name() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVariants_Parse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    light
		wantErr bool
	}{
		{"exact", "Amber", lightAmber, false},
		{"lowercase", "amber", lightAmber, false},
		{"uppercase", "GREEN", lightGreen, false},
		{"empty", "", 0, true},
		{"invalid", "Blue", 0, true},
		{"number", "1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lightVariants.Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var pe *errors.ParseError
				if !stderrors.As(err, &pe) || pe.Type != "Light" {
					t.Errorf("Parse() error = %v, want ParseError for Light", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVariants_ValidAndValues(t *testing.T) {
	values := lightVariants.Values()
	if len(values) != 3 || values[0] != lightRed || values[2] != lightGreen {
		t.Errorf("Values() = %v", values)
	}
	for _, v := range values {
		if !lightVariants.Valid(v) || lightVariants.Validate(v) != nil {
			t.Errorf("%v should be valid", v)
		}
	}
	var ve *errors.ValidationError
	if err := lightVariants.Validate(light(3)); !stderrors.As(err, &ve) {
		t.Errorf("Validate(3) = %v, want ValidationError", err)
	}
}

func TestVariants_JSON(t *testing.T) {
	tests := []struct {
		name    string
		light   light
		want    string
		wantErr bool
	}{
		{"Red", lightRed, `"Red"`, false},
		{"Green", lightGreen, `"Green"`, false},
		{"Invalid", light(99), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lightVariants.JSON(tt.light)
			if (err != nil) != tt.wantErr {
				t.Errorf("JSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("JSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestVariants_ParseJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    light
		wantErr bool
	}{
		{"name", `"Green"`, lightGreen, false},
		{"lowercase name", `"red"`, lightRed, false},
		{"numeric", `1`, lightAmber, false},
		{"invalid name", `"Blue"`, 0, true},
		{"invalid number", `7`, 0, true},
		{"empty", ``, 0, true},
		{"broken string", `"Gre`, 0, true},
		{"object", `{}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lightVariants.ParseJSON([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVariants_Text(t *testing.T) {
	got, err := lightVariants.MarshalText(lightAmber)
	if err != nil || string(got) != "Amber" {
		t.Errorf("MarshalText() = %q, %v, want Amber", got, err)
	}

	_, err = lightVariants.MarshalText(light(-2))
	var me *errors.MarshalError
	if !stderrors.As(err, &me) || me.Value != -2 {
		t.Errorf("MarshalText(-2) error = %v, want MarshalError", err)
	}
}

func TestVariants_YAML(t *testing.T) {
	v, err := lightVariants.MarshalYAML(lightGreen)
	if err != nil || v != "Green" {
		t.Errorf("MarshalYAML() = %v, %v, want Green", v, err)
	}
	if _, err := lightVariants.MarshalYAML(light(9)); err == nil {
		t.Error("MarshalYAML(9) error = nil")
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte("amber"), &node); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	got, err := lightVariants.UnmarshalYAML(node.Content[0])
	if err != nil || got != lightAmber {
		t.Errorf("UnmarshalYAML() = %v, %v, want Amber", got, err)
	}

	var seq yaml.Node
	if err := yaml.Unmarshal([]byte("[1, 2]"), &seq); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if _, err := lightVariants.UnmarshalYAML(seq.Content[0]); err == nil {
		t.Error("UnmarshalYAML(sequence) error = nil")
	}
}
