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

// Package cards provides the playing-card types stored in game state: the
// Mark enum, the Card aggregate, the Hand sequence and the shuffled 52-card
// Deck.
//
// All codable types are registered with the default codec registry when the
// package is imported. Codecs built on their own registry call Register.
package cards

import (
	"dirpx.dev/dxstate/dxcore/codec"
)

// Discriminators written into persisted state. They MUST NOT change once
// states have been persisted.
const (
	MarkDiscriminator = "cards.Mark"
	CardDiscriminator = "cards.Card"
	HandDiscriminator = "cards.Hand"
	DeckDiscriminator = "cards.Deck"
)

// Descriptors returns the codec descriptors of every type in this package.
func Descriptors() []codec.Descriptor {
	return []codec.Descriptor{
		codec.EnumOf(ParseMark),
		codec.AggregateOf[Card](
			codec.Enum("mark", func(c *Card) *Mark { return &c.mark }),
			codec.Int32("number", func(c *Card) *int32 { return &c.number }),
		),
		codec.SequenceOf[Hand](),
		codec.AggregateOf[Deck](
			codec.Sequence("cards", func(d *Deck) *Hand { return &d.cards }),
		),
	}
}

// Register adds the descriptors of this package to r.
func Register(r *codec.Registry) error {
	return r.Register(Descriptors()...)
}

func init() {
	codec.MustRegister(Descriptors()...)
}
