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
	"encoding/json"
	"strings"

	"dirpx.dev/dxstate/dxcore/errors"
	"gopkg.in/yaml.v3"
)

// Variants holds the variant names of an enum-like type whose constants are
// 0, 1, 2, ... in declaration order. Enum types keep one package-level
// Variants value and delegate their String, Parse, Valid and marshal methods
// to it:
//
//	type Mark int
//
//	const (
//	    Spade Mark = iota
//	    Heart
//	)
//
//	var markVariants = model.NewVariants[Mark]("Mark", "Spade", "Heart")
//
//	func (m Mark) String() string                { return markVariants.Name(m) }
//	func (m Mark) MarshalJSON() ([]byte, error)  { return markVariants.JSON(m) }
//	func ParseMark(s string) (Mark, error)       { return markVariants.Parse(s) }
//
// The names are also the variant names written by the codec, so they MUST
// NOT change once states have been persisted.
type Variants[E ~int] struct {
	typ   string
	names []string
}

// NewVariants returns the variant table of type typ. names[i] is the name of
// the constant with value i.
func NewVariants[E ~int](typ string, names ...string) Variants[E] {
	return Variants[E]{typ: typ, names: names}
}

// TypeName returns the logical type name used in errors.
func (v Variants[E]) TypeName() string {
	return v.typ
}

// Name returns the variant name of e, or "unknown".
func (v Variants[E]) Name(e E) string {
	if !v.Valid(e) {
		return "unknown"
	}
	return v.names[e]
}

// Valid reports whether e is one of the declared constants.
func (v Variants[E]) Valid(e E) bool {
	return e >= 0 && int(e) < len(v.names)
}

// Values returns every constant in declaration order.
func (v Variants[E]) Values() []E {
	out := make([]E, len(v.names))
	for i := range v.names {
		out[i] = E(i)
	}
	return out
}

// Parse returns the constant named s. Matching is case-insensitive, so
// "Heart", "heart" and "HEART" are all accepted.
func (v Variants[E]) Parse(s string) (E, error) {
	for i, name := range v.names {
		if strings.EqualFold(s, name) {
			return E(i), nil
		}
	}
	return 0, &errors.ParseError{Type: v.typ, Value: s}
}

// Validate returns a *errors.ValidationError when e is not a declared
// constant.
func (v Variants[E]) Validate(e E) error {
	if !v.Valid(e) {
		return &errors.ValidationError{
			Type:   v.typ,
			Reason: "unknown variant",
			Value:  int(e),
		}
	}
	return nil
}

// MarshalText returns the variant name of e.
func (v Variants[E]) MarshalText(e E) ([]byte, error) {
	if !v.Valid(e) {
		return nil, &errors.MarshalError{Type: v.typ, Value: int(e)}
	}
	return []byte(v.names[e]), nil
}

// JSON returns the variant name of e as a JSON string. Enum types call it
// from their MarshalJSON method.
func (v Variants[E]) JSON(e E) ([]byte, error) {
	if !v.Valid(e) {
		return nil, &errors.MarshalError{Type: v.typ, Value: int(e)}
	}
	return json.Marshal(v.names[e])
}

// ParseJSON accepts a variant name or, for compatibility, the numeric value
// of a constant. Enum types call it from their UnmarshalJSON method.
func (v Variants[E]) ParseJSON(data []byte) (E, error) {
	if len(data) == 0 {
		return 0, &errors.UnmarshalError{Type: v.typ, Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, &errors.UnmarshalError{Type: v.typ, Data: data, Reason: err.Error()}
		}
		return v.Parse(s)
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return 0, &errors.UnmarshalError{Type: v.typ, Data: data, Reason: err.Error()}
	}
	if !v.Valid(E(i)) {
		return 0, &errors.UnmarshalError{Type: v.typ, Data: data, Reason: "invalid numeric value"}
	}
	return E(i), nil
}

// MarshalYAML returns the variant name of e.
func (v Variants[E]) MarshalYAML(e E) (any, error) {
	if !v.Valid(e) {
		return nil, &errors.MarshalError{Type: v.typ, Value: int(e)}
	}
	return v.names[e], nil
}

// UnmarshalYAML decodes a variant name from a YAML scalar.
func (v Variants[E]) UnmarshalYAML(node *yaml.Node) (E, error) {
	var s string
	if err := node.Decode(&s); err != nil {
		return 0, &errors.UnmarshalError{Type: v.typ, Data: []byte(node.Value), Reason: err.Error()}
	}
	return v.Parse(s)
}
