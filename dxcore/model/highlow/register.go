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

// Package highlow implements the High & Low card game whose turn state is
// kept in a codec.State between requests.
//
// Each player holds half of a shuffled deck. Every round both players turn
// over their top card and one of them, the declarer, says whether their own
// card is High or Low compared with the opponent's. A right declaration
// scores 2 for the declarer, a wrong one scores 2 for the opponent, and
// equal numbers score 1 each. The role alternates every round: while the
// player is the parent the enemy declares, otherwise the player does. The
// enemy declares High whenever the player's card is below 7.
//
// A Game advances one request at a time:
//
//	g := highlow.Start(rng)           // deal, turn over the first cards
//	err := g.NextTurn(highlow.High)   // reveal the judgment
//	err = g.NextTurn(highlow.High)    // next round
//
// Between requests the game is stored with State and rebuilt with
// FromState, one State key per field.
package highlow

import (
	"dirpx.dev/dxstate/dxcore/codec"
)

// Discriminators written into persisted state. They MUST NOT change once
// states have been persisted.
const (
	DeclarationDiscriminator = "highlow.Declaration"
	OutcomeDiscriminator     = "highlow.Outcome"
	ResultDiscriminator      = "highlow.Result"
)

// Descriptors returns the codec descriptors of every type in this package.
// Game itself is not registered; it is spread over several State keys.
func Descriptors() []codec.Descriptor {
	return []codec.Descriptor{
		codec.EnumOf(ParseDeclaration),
		codec.EnumOf(ParseOutcome),
		codec.EnumOf(ParseResult),
	}
}

// Register adds the descriptors of this package to r. The cards package
// must be registered as well for a Game to round trip.
func Register(r *codec.Registry) error {
	return r.Register(Descriptors()...)
}

func init() {
	codec.MustRegister(Descriptors()...)
}
