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

package cards

import (
	"dirpx.dev/dxstate/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Mark is the suit of a playing card.
type Mark int

const (
	Spade Mark = iota
	Heart
	Diamond
	Club
)

var markVariants = model.NewVariants[Mark]("Mark", "Spade", "Heart", "Diamond", "Club")

var _ model.Codable = (*Mark)(nil)

// Marks returns the four marks in deck order.
func Marks() []Mark {
	return markVariants.Values()
}

// ParseMark parses a mark name, case-insensitively.
func ParseMark(s string) (Mark, error) {
	return markVariants.Parse(s)
}

func (Mark) Discriminator() string { return MarkDiscriminator }

func (m Mark) String() string { return markVariants.Name(m) }

// Valid reports whether m is one of the four marks.
func (m Mark) Valid() bool { return markVariants.Valid(m) }

// Symbol returns the suit symbol, for example "♠", or "?" for an invalid
// mark.
func (m Mark) Symbol() string {
	switch m {
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	default:
		return "?"
	}
}

// Red reports whether the mark is printed in red.
func (m Mark) Red() bool {
	return m == Heart || m == Diamond
}

func (m Mark) Validate() error { return markVariants.Validate(m) }

func (Mark) TypeName() string { return "Mark" }

func (m Mark) IsZero() bool { return m == Spade }

func (m Mark) Redacted() string { return m.String() }

func (m Mark) MarshalText() ([]byte, error) { return markVariants.MarshalText(m) }

func (m *Mark) UnmarshalText(text []byte) error {
	parsed, err := ParseMark(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mark) MarshalJSON() ([]byte, error) { return markVariants.JSON(m) }

func (m *Mark) UnmarshalJSON(data []byte) error {
	parsed, err := markVariants.ParseJSON(data)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mark) MarshalYAML() (any, error) { return markVariants.MarshalYAML(m) }

func (m *Mark) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := markVariants.UnmarshalYAML(node)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
