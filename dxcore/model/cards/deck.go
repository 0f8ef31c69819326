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
	"math/rand"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Deck is a shuffled 52-card deck. Cards are taken from the top.
type Deck struct {
	cards Hand
}

func (Deck) Discriminator() string { return DeckDiscriminator }

// NewDeck returns a full deck shuffled with rng. The same rng state always
// produces the same order.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make(Hand, 0, DeckSize)
	for _, m := range Marks() {
		for n := int32(MinNumber); n <= MaxNumber; n++ {
			cards = append(cards, Card{mark: m, number: n})
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Pop takes the top card. It reports false when the deck is empty.
func (d *Deck) Pop() (Card, bool) {
	c, rest, ok := d.cards.Draw()
	if ok {
		d.cards = rest
	}
	return c, ok
}

// Deal empties the deck into two hands, one card at a time, starting with
// the first hand.
func (d *Deck) Deal() (first, second Hand) {
	first = make(Hand, 0, (d.Len()+1)/2)
	second = make(Hand, 0, d.Len()/2)
	toFirst := true
	for {
		c, ok := d.Pop()
		if !ok {
			return first, second
		}
		if toFirst {
			first = append(first, c)
		} else {
			second = append(second, c)
		}
		toFirst = !toFirst
	}
}

// Cards returns a copy of the remaining cards, top first.
func (d *Deck) Cards() Hand {
	return append(Hand{}, d.cards...)
}
