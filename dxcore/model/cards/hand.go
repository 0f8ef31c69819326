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
	"strings"

	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/dxstate/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Hand is an ordered pile of cards held by one player, top card first.
type Hand []Card

var _ model.Codable = (*Hand)(nil)

func (Hand) Discriminator() string { return HandDiscriminator }

// Len returns the number of cards in the hand.
func (h Hand) Len() int { return len(h) }

// Draw returns the top card and the rest of the hand. It reports false when
// the hand is empty. The returned hand shares storage with h.
func (h Hand) Draw() (Card, Hand, bool) {
	if len(h) == 0 {
		return Card{}, h, false
	}
	return h[0], h[1:], true
}

func (h Hand) Validate() error {
	return model.ValidateAll(h)
}

func (Hand) TypeName() string { return "Hand" }

func (h Hand) IsZero() bool { return len(h) == 0 }

// String lists every card, for example "[♠A ♥K]".
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Redacted shows only how many cards are left, since a hand is face down.
func (h Hand) Redacted() string {
	return "Hand(" + strconv.Itoa(len(h)) + " cards)"
}

func (h Hand) MarshalJSON() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Card(h))
}

func (h *Hand) UnmarshalJSON(data []byte) error {
	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return &errors.UnmarshalError{Type: "Hand", Data: data, Reason: err.Error()}
	}
	*h = Hand(cards)
	return nil
}

func (h Hand) MarshalYAML() (any, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return []Card(h), nil
}

func (h *Hand) UnmarshalYAML(node *yaml.Node) error {
	var cards []Card
	if err := node.Decode(&cards); err != nil {
		return &errors.UnmarshalError{Type: "Hand", Data: []byte(node.Value), Reason: err.Error()}
	}
	*h = Hand(cards)
	return nil
}
