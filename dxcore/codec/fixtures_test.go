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

package codec

import (
	"testing"
	"time"

	"dirpx.dev/dxstate/dxcore/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type suit int

const (
	suitSpade suit = iota
	suitHeart
)

func (suit) Discriminator() string { return "test.Suit" }

func (s suit) String() string {
	switch s {
	case suitSpade:
		return "Spade"
	case suitHeart:
		return "Heart"
	default:
		return "unknown"
	}
}

func (s suit) MarshalText() ([]byte, error) {
	if s != suitSpade && s != suitHeart {
		return nil, &errors.MarshalError{Type: "suit", Value: int(s)}
	}
	return []byte(s.String()), nil
}

func parseSuit(s string) (suit, error) {
	switch s {
	case "Spade":
		return suitSpade, nil
	case "Heart":
		return suitHeart, nil
	default:
		return 0, &errors.ParseError{Type: "suit", Value: s}
	}
}

type card struct {
	suit suit
	rank int32
}

func (card) Discriminator() string { return "test.Card" }

type hand []card

func (hand) Discriminator() string { return "test.Hand" }

type player struct {
	id      uuid.UUID
	name    string
	joined  time.Time
	balance decimal.Decimal
	active  bool
	visits  int64
	suit    suit
	best    *card
	last    Codable
	hand    hand
}

func (player) Discriminator() string { return "test.Player" }

// ghost is registered only by ghostRegistry, to produce discriminators that
// the regular test registry cannot resolve.
type ghost struct {
	tag string
}

func (ghost) Discriminator() string { return "test.Ghost" }

func cardDescriptor() *AggregateDescriptor {
	return AggregateOf[card](
		Enum("suit", func(c *card) *suit { return &c.suit }),
		Int32("rank", func(c *card) *int32 { return &c.rank }),
	)
}

func playerDescriptor() *AggregateDescriptor {
	return AggregateOf[player](
		UUID("id", func(p *player) *uuid.UUID { return &p.id }),
		Text("name", func(p *player) *string { return &p.name }),
		Timestamp("joined", func(p *player) *time.Time { return &p.joined }),
		Decimal("balance", func(p *player) *decimal.Decimal { return &p.balance }),
		Bool("active", func(p *player) *bool { return &p.active }),
		Int64("visits", func(p *player) *int64 { return &p.visits }),
		Enum("suit", func(p *player) *suit { return &p.suit }),
		Optional("best", func(p *player) **card { return &p.best }),
		Nested("last", func(p *player) *Codable { return &p.last }),
		Sequence("hand", func(p *player) *hand { return &p.hand }),
	)
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	r := NewRegistry()
	err := r.Register(
		EnumOf(parseSuit),
		cardDescriptor(),
		SequenceOf[hand](),
		playerDescriptor(),
	)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return r
}

func ghostRegistry(t *testing.T) *Registry {
	t.Helper()

	r := testRegistry(t)
	err := r.Register(AggregateOf[ghost](
		Text("tag", func(g *ghost) *string { return &g.tag }),
	))
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return r
}

func testCodec(t *testing.T, opts ...Option) *Codec {
	t.Helper()
	return New(append([]Option{WithRegistry(testRegistry(t))}, opts...)...)
}

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(card{}, player{}, ghost{}),
}

func samplePlayer() player {
	best := card{suit: suitHeart, rank: 12}
	return player{
		id:      uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		name:    "alice",
		joined:  time.Date(2024, 5, 1, 12, 30, 0, 123, time.UTC),
		balance: decimal.RequireFromString("12.50"),
		active:  true,
		visits:  1 << 40,
		suit:    suitHeart,
		best:    &best,
		last:    card{suit: suitSpade, rank: 7},
		hand:    hand{{suit: suitSpade, rank: 1}, {suit: suitHeart, rank: 13}},
	}
}
