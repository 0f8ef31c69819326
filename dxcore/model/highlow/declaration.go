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

package highlow

import (
	"dirpx.dev/dxstate/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Declaration is a guess that the declarer's card ranks above (High) or
// below (Low) the opponent's card.
type Declaration int

const (
	High Declaration = iota
	Low
)

var declarationVariants = model.NewVariants[Declaration]("Declaration", "High", "Low")

var _ model.Codable = (*Declaration)(nil)

// ParseDeclaration parses "high" or "low", case-insensitively.
func ParseDeclaration(s string) (Declaration, error) {
	return declarationVariants.Parse(s)
}

func (Declaration) Discriminator() string { return DeclarationDiscriminator }

func (d Declaration) String() string { return declarationVariants.Name(d) }

func (d Declaration) Valid() bool { return declarationVariants.Valid(d) }

func (d Declaration) Validate() error { return declarationVariants.Validate(d) }

func (Declaration) TypeName() string { return "Declaration" }

func (d Declaration) IsZero() bool { return d == High }

func (d Declaration) Redacted() string { return d.String() }

func (d Declaration) MarshalText() ([]byte, error) { return declarationVariants.MarshalText(d) }

func (d *Declaration) UnmarshalText(text []byte) error {
	parsed, err := ParseDeclaration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Declaration) MarshalJSON() ([]byte, error) { return declarationVariants.JSON(d) }

func (d *Declaration) UnmarshalJSON(data []byte) error {
	parsed, err := declarationVariants.ParseJSON(data)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Declaration) MarshalYAML() (any, error) { return declarationVariants.MarshalYAML(d) }

func (d *Declaration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := declarationVariants.UnmarshalYAML(node)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
