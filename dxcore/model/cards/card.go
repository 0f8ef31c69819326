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
	"encoding/json"
	"strconv"

	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/dxstate/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Numbers run from Ace (1) to King (13).
const (
	MinNumber = 1
	MaxNumber = 13
)

// BackGlyph is the playing-card back, U+1F0A0.
const BackGlyph rune = 0x1F0A0

// glyphBase holds the Ace code point of each mark's row in the Unicode
// Playing Cards block.
var glyphBase = [...]rune{
	Spade:   0x1F0A1,
	Heart:   0x1F0B1,
	Diamond: 0x1F0C1,
	Club:    0x1F0D1,
}

// Card is a single playing card. The zero Card is not a valid card; it
// stands for "no card" in game state.
type Card struct {
	mark   Mark
	number int32
}

var _ model.Codable = (*Card)(nil)

// NewCard returns the card of the given mark and number.
func NewCard(mark Mark, number int32) (Card, error) {
	c := Card{mark: mark, number: number}
	if err := c.Validate(); err != nil {
		return Card{}, err
	}
	return c, nil
}

// MustCard is like NewCard but panics on invalid input. It is meant for
// constants and tests.
func MustCard(mark Mark, number int32) Card {
	return model.MustValidate(Card{mark: mark, number: number})
}

func (Card) Discriminator() string { return CardDiscriminator }

// Mark returns the card's suit.
func (c Card) Mark() Mark { return c.mark }

// Number returns the card's rank, 1 (Ace) through 13 (King).
func (c Card) Number() int32 { return c.number }

// Compare returns -1, 0 or +1 depending on whether c ranks below, equal to,
// or above other. Marks do not take part in the comparison.
func (c Card) Compare(other Card) int {
	switch {
	case c.number < other.number:
		return -1
	case c.number > other.number:
		return 1
	default:
		return 0
	}
}

// Glyph returns the card's face in the Unicode Playing Cards block. The
// block has a Knight between Jack and Queen, which is skipped.
func (c Card) Glyph() rune {
	if c.Validate() != nil {
		return BackGlyph
	}
	offset := c.number - 1
	if c.number >= 12 {
		offset = c.number
	}
	return glyphBase[c.mark] + offset
}

// Rank returns the short rank label: A, 2-10, J, Q or K.
func (c Card) Rank() string {
	switch c.number {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	default:
		return strconv.Itoa(int(c.number))
	}
}

func (c Card) Validate() error {
	if !c.mark.Valid() {
		return &errors.ValidationError{Type: "Card", Field: "Mark", Reason: "unknown mark", Value: int(c.mark)}
	}
	if c.number < MinNumber || c.number > MaxNumber {
		return &errors.ValidationError{Type: "Card", Field: "Number", Reason: "must be between 1 and 13", Value: c.number}
	}
	return nil
}

func (Card) TypeName() string { return "Card" }

func (c Card) IsZero() bool { return c == Card{} }

// String returns the card as symbol and rank, for example "♥Q".
func (c Card) String() string {
	if c.IsZero() {
		return "-"
	}
	return c.mark.Symbol() + c.Rank()
}

// Redacted returns the same as String; a card carries no secret by itself.
// Callers holding a face-down card log it through Hand or Game instead.
func (c Card) Redacted() string { return c.String() }

// cardDoc is the JSON and YAML form of a Card.
type cardDoc struct {
	Mark   Mark  `json:"mark" yaml:"mark"`
	Number int32 `json:"number" yaml:"number"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(cardDoc{Mark: c.mark, Number: c.number})
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var doc cardDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return &errors.UnmarshalError{Type: "Card", Data: data, Reason: err.Error()}
	}
	parsed, err := NewCard(doc.Mark, doc.Number)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Card) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return cardDoc{Mark: c.mark, Number: c.number}, nil
}

func (c *Card) UnmarshalYAML(node *yaml.Node) error {
	var doc cardDoc
	if err := node.Decode(&doc); err != nil {
		return &errors.UnmarshalError{Type: "Card", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewCard(doc.Mark, doc.Number)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
