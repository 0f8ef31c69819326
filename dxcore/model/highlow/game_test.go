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
	"encoding/json"
	stderrors "errors"
	"math/rand"
	"strings"
	"testing"

	"dirpx.dev/dxstate/dxcore/codec"
	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/dxstate/dxcore/model"
	"dirpx.dev/dxstate/dxcore/model/cards"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(Game{}, cards.Card{}),
}

func card(m cards.Mark, n int32) cards.Card {
	return cards.MustCard(m, n)
}

// dealt returns a started game whose first cards are already turned over.
func dealt(playerIsParent bool, player, enemy cards.Hand) *Game {
	g := &Game{started: true, playerIsParent: playerIsParent, playerHand: player, enemyHand: enemy}
	g.turnOver()
	if g.playerIsParent {
		g.enemyJudgment()
	}
	return g
}

// played advances g by one NextTurn per declaration.
func played(t *testing.T, g *Game, decls ...Declaration) *Game {
	t.Helper()
	for _, decl := range decls {
		if err := g.NextTurn(decl); err != nil {
			t.Fatalf("NextTurn(%v) error = %v", decl, err)
		}
	}
	return g
}

func newCodec(t *testing.T) *codec.Codec {
	t.Helper()
	r := codec.NewRegistry()
	if err := cards.Register(r); err != nil {
		t.Fatalf("cards.Register() error = %v", err)
	}
	if err := Register(r); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	return codec.New(codec.WithRegistry(r))
}

func validationError(t *testing.T, err error) *errors.ValidationError {
	t.Helper()
	var ve *errors.ValidationError
	if !stderrors.As(err, &ve) {
		t.Fatalf("error = %v, want *errors.ValidationError", err)
	}
	return ve
}

// roundTrip persists and restores g through c.
func roundTrip(t *testing.T, c *codec.Codec, g *Game) *Game {
	t.Helper()
	data, err := c.Persist(g.State())
	if err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	state, err := c.Restore(data)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	restored, err := FromState(state)
	if err != nil {
		t.Fatalf("FromState() error = %v", err)
	}
	return restored
}

func TestJudge(t *testing.T) {
	tests := []struct {
		name       string
		decl       Declaration
		own, other int32
		want       Outcome
	}{
		{"high above", High, 9, 4, Hit},
		{"high below", High, 4, 9, Miss},
		{"high equal", High, 7, 7, Draw},
		{"low below", Low, 2, 13, Hit},
		{"low above", Low, 13, 2, Miss},
		{"low equal", Low, 1, 1, Draw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := judge(tt.decl, tt.own, tt.other); got != tt.want {
				t.Errorf("judge(%v, %d, %d) = %v, want %v", tt.decl, tt.own, tt.other, got, tt.want)
			}
		})
	}
}

func TestResultOf(t *testing.T) {
	tests := []struct {
		player, enemy int32
		want          Result
	}{
		{30, 22, Win},
		{20, 32, Lose},
		{26, 26, Tie},
	}

	for _, tt := range tests {
		if got := resultOf(tt.player, tt.enemy); got != tt.want {
			t.Errorf("resultOf(%d, %d) = %v, want %v", tt.player, tt.enemy, got, tt.want)
		}
	}
}

func TestEnemyJudgment(t *testing.T) {
	tests := []struct {
		name                     string
		player, enemy            cards.Card
		wantDecl                 Declaration
		wantOutcome              Outcome
		wantPlayer, wantEnemyPts int32
	}{
		{"high hit", card(cards.Spade, 3), card(cards.Heart, 10), High, Hit, 0, 2},
		{"high miss", card(cards.Spade, 3), card(cards.Heart, 2), High, Miss, 2, 0},
		{"high draw", card(cards.Spade, 6), card(cards.Heart, 6), High, Draw, 1, 1},
		{"low at seven", card(cards.Spade, 7), card(cards.Heart, 5), Low, Hit, 0, 2},
		{"low miss", card(cards.Spade, 12), card(cards.Heart, 13), Low, Miss, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := dealt(true, cards.Hand{tt.player}, cards.Hand{tt.enemy})

			decl, ok := g.EnemyDeclaration()
			if !ok || decl != tt.wantDecl {
				t.Errorf("EnemyDeclaration() = %v, %t, want %v, true", decl, ok, tt.wantDecl)
			}
			outcome, ok := g.Judgment()
			if !ok || outcome != tt.wantOutcome {
				t.Errorf("Judgment() = %v, %t, want %v, true", outcome, ok, tt.wantOutcome)
			}
			player, enemy := g.Scores()
			if player != tt.wantPlayer || enemy != tt.wantEnemyPts {
				t.Errorf("Scores() = %d, %d, want %d, %d", player, enemy, tt.wantPlayer, tt.wantEnemyPts)
			}
		})
	}
}

func TestGame_TurnCycle(t *testing.T) {
	g := dealt(false,
		cards.Hand{card(cards.Spade, 5), card(cards.Heart, 9)},
		cards.Hand{card(cards.Diamond, 8), card(cards.Club, 9)},
	)

	if got := g.PlayerCard(); got != card(cards.Spade, 5) {
		t.Errorf("PlayerCard() = %v, want ♠5", got)
	}
	if got := g.EnemyCard(); got != card(cards.Diamond, 8) {
		t.Errorf("EnemyCard() = %v, want ♦8", got)
	}
	if _, judged := g.Judgment(); judged {
		t.Error("Judgment() reported a judgment before the player declared")
	}

	// Player declares Low with 5 against 8.
	played(t, g, Low)
	if !g.ShowResult() {
		t.Error("ShowResult() = false after the player declared")
	}
	if outcome, judged := g.Judgment(); !judged || outcome != Hit {
		t.Errorf("Judgment() = %v, %t, want Hit, true", outcome, judged)
	}
	if player, enemy := g.Scores(); player != 2 || enemy != 0 {
		t.Errorf("Scores() = %d, %d, want 2, 0", player, enemy)
	}

	// Next round: the player becomes parent and the enemy declares.
	played(t, g, High)
	if g.ShowResult() {
		t.Error("ShowResult() = true at the start of a round")
	}
	if !g.PlayerIsParent() {
		t.Error("PlayerIsParent() = false, want parent to alternate")
	}
	if got := g.PlayerCard(); got != card(cards.Heart, 9) {
		t.Errorf("PlayerCard() = %v, want ♥9", got)
	}
	if decl, ok := g.EnemyDeclaration(); !ok || decl != Low {
		t.Errorf("EnemyDeclaration() = %v, %t, want Low, true", decl, ok)
	}
	if outcome, _ := g.Judgment(); outcome != Draw {
		t.Errorf("Judgment() = %v, want Draw", outcome)
	}
	if player, enemy := g.Scores(); player != 3 || enemy != 1 {
		t.Errorf("Scores() = %d, %d, want 3, 1", player, enemy)
	}

	// The declaration argument is ignored while the enemy declares.
	played(t, g, Declaration(9))
	if !g.ShowResult() {
		t.Error("ShowResult() = false after the enemy's round was revealed")
	}

	played(t, g, High)
	if !g.Ended() {
		t.Fatal("Ended() = false after both hands ran out")
	}
	if result, ok := g.Result(); !ok || result != Win {
		t.Errorf("Result() = %v, %t, want Win, true", result, ok)
	}

	ve := validationError(t, g.NextTurn(High))
	if !strings.Contains(ve.Reason, "ended") {
		t.Errorf("NextTurn() after the end: reason = %q, want it to mention the end", ve.Reason)
	}
}

func TestGame_NextTurnErrors(t *testing.T) {
	var zero Game
	ve := validationError(t, zero.NextTurn(High))
	if !strings.Contains(ve.Reason, "not started") {
		t.Errorf("NextTurn() before start: reason = %q", ve.Reason)
	}

	g := dealt(false, cards.Hand{card(cards.Spade, 5)}, cards.Hand{card(cards.Heart, 6)})
	if err := g.NextTurn(Declaration(5)); err == nil {
		t.Error("NextTurn(Declaration(5)) error = nil")
	}
	if g.ShowResult() {
		t.Error("an invalid declaration advanced the game")
	}
}

func TestStart(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		g := Start(rand.New(rand.NewSource(seed)))

		if !g.Started() {
			t.Fatalf("seed %d: Started() = false", seed)
		}
		if err := g.Validate(); err != nil {
			t.Fatalf("seed %d: Validate() error = %v", seed, err)
		}
		if len(g.PlayerHand()) != 25 || len(g.EnemyHand()) != 25 {
			t.Errorf("seed %d: hands hold %d and %d cards, want 25 each", seed, len(g.PlayerHand()), len(g.EnemyHand()))
		}

		_, judged := g.Judgment()
		_, declared := g.EnemyDeclaration()
		if judged != g.PlayerIsParent() || declared != g.PlayerIsParent() {
			t.Errorf("seed %d: judged=%t declared=%t with PlayerIsParent()=%t", seed, judged, declared, g.PlayerIsParent())
		}
	}

	a := Start(rand.New(rand.NewSource(3)))
	b := Start(rand.New(rand.NewSource(3)))
	if diff := cmp.Diff(a, b, cmpOpts...); diff != "" {
		t.Errorf("same seed dealt different games (-a +b):\n%s", diff)
	}
}

func TestGame_FullMatchThroughCodec(t *testing.T) {
	c := newCodec(t)
	g := Start(rand.New(rand.NewSource(11)))

	requests := 0
	for !g.Ended() {
		restored := roundTrip(t, c, g)
		if diff := cmp.Diff(g, restored, cmpOpts...); diff != "" {
			t.Fatalf("request %d: restored game mismatch (-want +got):\n%s", requests, diff)
		}

		g = played(t, restored, High)
		requests++
		if requests > cards.DeckSize {
			t.Fatalf("game did not end after %d requests", requests)
		}
	}

	if requests != cards.DeckSize {
		t.Errorf("game ended after %d requests, want %d", requests, cards.DeckSize)
	}
	player, enemy := g.Scores()
	if player+enemy != int32(cards.DeckSize) {
		t.Errorf("scores %d + %d, want every round to hand out two points", player, enemy)
	}
	if result, ok := g.Result(); !ok || result != resultOf(player, enemy) {
		t.Errorf("Result() = %v, %t, want %v, true", result, ok, resultOf(player, enemy))
	}

	if diff := cmp.Diff(g, roundTrip(t, c, g), cmpOpts...); diff != "" {
		t.Errorf("ended game mismatch (-want +got):\n%s", diff)
	}
}

func TestGame_StateKeys(t *testing.T) {
	var zero Game
	want := codec.State{
		KeyStarted:        false,
		KeyEnded:          false,
		KeyShowResult:     false,
		KeyPlayerIsParent: false,
		KeyPlayerScore:    int32(0),
		KeyEnemyScore:     int32(0),
	}
	if diff := cmp.Diff(want, zero.State()); diff != "" {
		t.Errorf("State() of a zero game mismatch (-want +got):\n%s", diff)
	}

	g := dealt(true, cards.Hand{card(cards.Spade, 2)}, cards.Hand{card(cards.Heart, 3)})
	s := g.State()
	for key, want := range map[string]any{
		KeyPlayerCard:       card(cards.Spade, 2),
		KeyEnemyCard:        card(cards.Heart, 3),
		KeyEnemyDeclaration: High,
		KeyJudgment:         Hit,
	} {
		if diff := cmp.Diff(want, s[key], cmpOpts...); diff != "" {
			t.Errorf("State()[%q] mismatch (-want +got):\n%s", key, diff)
		}
	}
	if _, ok := s[KeyResult]; ok {
		t.Errorf("State() holds %q before the game ended", KeyResult)
	}
}

func TestFromState(t *testing.T) {
	g, err := FromState(codec.State{})
	if err != nil {
		t.Fatalf("FromState(empty) error = %v", err)
	}
	if !g.IsZero() {
		t.Error("FromState(empty) is not the zero game")
	}

	g, err = FromState(codec.State{KeyPlayerScore: int32(4), "other": "ignored"})
	if g != nil {
		t.Errorf("FromState() = %v, want nil for scores before start", g)
	}
	validationError(t, err)

	ve := validationError(t, func() error {
		_, err := FromState(codec.State{KeyStarted: "yes"})
		return err
	}())
	if ve.Field != KeyStarted || ve.Reason != "holds string" {
		t.Errorf("FromState() error field %q reason %q", ve.Field, ve.Reason)
	}

	_, err = FromState(codec.State{
		KeyStarted:    true,
		KeyPlayerCard: card(cards.Spade, 2),
		KeyEnemyCard:  card(cards.Heart, 2),
		KeyPlayerHand: cards.Hand{card(cards.Club, 1)},
		KeyEnemyHand:  cards.Hand{},
	})
	if ve := validationError(t, err); ve.Field != "EnemyHand" {
		t.Errorf("FromState() error field = %q, want EnemyHand", ve.Field)
	}
}

func TestGame_Redacted(t *testing.T) {
	g := dealt(false, cards.Hand{card(cards.Spade, 5), card(cards.Heart, 1)}, cards.Hand{card(cards.Diamond, 8), card(cards.Club, 2)})

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"redacted", g.Redacted(), "Game(player ♠5 vs enemy ?, score 0-0, 1 rounds left)"},
		{"full", g.String(), "Game(player ♠5 vs enemy ♦8, score 0-0, hands [♥A] [♣2])"},
		{"safe", model.SafeString(g, false), "Game(player ♠5 vs enemy ?, score 0-0, 1 rounds left)"},
		{"revealed", played(t, g, High).Redacted(), "Game(player ♠5 vs enemy ♦8, score 0-2, 1 rounds left, Miss)"},
		{"not started", (&Game{}).Redacted(), "Game(not started)"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestGame_JSONAndYAML(t *testing.T) {
	tests := []struct {
		name string
		game func(t *testing.T) *Game
	}{
		{"not started", func(*testing.T) *Game { return &Game{} }},
		{"player hit", func(t *testing.T) *Game {
			return played(t, dealt(false,
				cards.Hand{card(cards.Spade, 5), card(cards.Heart, 1)},
				cards.Hand{card(cards.Diamond, 8), card(cards.Club, 2)},
			), Low)
		}},
		{"enemy declares high and hits", func(*testing.T) *Game {
			return dealt(true, cards.Hand{card(cards.Spade, 3)}, cards.Hand{card(cards.Heart, 10)})
		}},
		{"ended with a win", func(t *testing.T) *Game {
			return played(t, dealt(false, cards.Hand{card(cards.Spade, 5)}, cards.Hand{card(cards.Diamond, 8)}), Low, High)
		}},
		{"dealt from a seed", func(t *testing.T) *Game {
			return played(t, Start(rand.New(rand.NewSource(5))), Low)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.game(t)

			data, err := json.Marshal(g)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			var fromJSON Game
			if err := json.Unmarshal(data, &fromJSON); err != nil {
				t.Fatalf("json.Unmarshal(%s) error = %v", data, err)
			}
			if diff := cmp.Diff(g, &fromJSON, cmpOpts...); diff != "" {
				t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
			}

			out, err := yaml.Marshal(g)
			if err != nil {
				t.Fatalf("yaml.Marshal() error = %v", err)
			}
			var fromYAML Game
			if err := yaml.Unmarshal(out, &fromYAML); err != nil {
				t.Fatalf("yaml.Unmarshal() error = %v\n%s", err, out)
			}
			if diff := cmp.Diff(g, &fromYAML, cmpOpts...); diff != "" {
				t.Errorf("YAML round trip mismatch (-want +got):\n%s\n%s", diff, out)
			}
		})
	}

	var g Game
	if err := json.Unmarshal([]byte(`{"started":false,"playerScore":3}`), &g); err == nil {
		t.Error("json.Unmarshal() accepted scores before start")
	}
}

func TestEnums(t *testing.T) {
	decl, err := ParseDeclaration("high")
	if err != nil || decl != High {
		t.Errorf("ParseDeclaration(high) = %v, %v, want High", decl, err)
	}

	_, err = ParseDeclaration("middle")
	var pe *errors.ParseError
	if !stderrors.As(err, &pe) || pe.Type != "Declaration" {
		t.Errorf("ParseDeclaration(middle) error = %v, want a Declaration ParseError", err)
	}

	text, err := Draw.MarshalText()
	if err != nil || string(text) != "Draw" {
		t.Errorf("Draw.MarshalText() = %q, %v", text, err)
	}

	var r Result
	if err := json.Unmarshal([]byte(`"tie"`), &r); err != nil || r != Tie {
		t.Errorf("json.Unmarshal(tie) = %v, %v, want Tie", r, err)
	}

	_, err = Outcome(3).MarshalText()
	var me *errors.MarshalError
	if !stderrors.As(err, &me) || me.Type != "Outcome" {
		t.Errorf("Outcome(3).MarshalText() error = %v, want an Outcome MarshalError", err)
	}
}

func TestCodec_EnumRoundTrip(t *testing.T) {
	c := newCodec(t)
	state := codec.State{"decl": Low, "outcome": Miss, "result": Lose}

	data, err := c.Persist(state)
	if err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	want := `{"decl":{"TypeDiscriminator":"highlow.Declaration","ValueObject":"Low"},` +
		`"outcome":{"TypeDiscriminator":"highlow.Outcome","ValueObject":"Miss"},` +
		`"result":{"TypeDiscriminator":"highlow.Result","ValueObject":"Lose"}}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("Persist() mismatch (-want +got):\n%s", diff)
	}

	got, err := c.Restore(data)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if diff := cmp.Diff(state, got); diff != "" {
		t.Errorf("Restore() mismatch (-want +got):\n%s", diff)
	}
}
