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
	"fmt"
	"math/rand"
	"strings"

	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/dxstate/dxcore/model"
	"dirpx.dev/dxstate/dxcore/model/cards"
	"gopkg.in/yaml.v3"
)

// enemyHighBelow is the player card number under which the enemy declares
// High.
const enemyHighBelow = 7

// Game is the turn state of one High & Low match. The zero Game has not
// started yet.
type Game struct {
	started    bool
	ended      bool
	showResult bool

	// playerIsParent is true in the rounds where the enemy declares.
	playerIsParent bool

	playerCard cards.Card
	enemyCard  cards.Card
	playerHand cards.Hand
	enemyHand  cards.Hand

	playerScore int32
	enemyScore  int32

	judged   bool
	judgment Outcome

	enemyDeclared    bool
	enemyDeclaration Declaration

	result Result
}

var _ model.Model = (*Game)(nil)

// Start deals a new game. rng picks the first parent and shuffles the deck.
// When the player starts as parent the enemy declares at once.
func Start(rng *rand.Rand) *Game {
	g := &Game{started: true, playerIsParent: rng.Intn(2) == 1}

	first, second := cards.NewDeck(rng).Deal()
	if g.playerIsParent {
		g.playerHand, g.enemyHand = first, second
	} else {
		g.playerHand, g.enemyHand = second, first
	}

	g.turnOver()
	if g.playerIsParent {
		g.enemyJudgment()
	}
	return g
}

// NextTurn advances the game by one request. A round takes two requests:
// the first reveals the judgment, the second hands the parent role over and
// turns over the next cards. decl is the player's declaration; it is only
// read when the player is the declarer of the round being judged.
func (g *Game) NextTurn(decl Declaration) error {
	if !g.started {
		return &errors.ValidationError{Type: "Game", Reason: "game has not started"}
	}
	if g.ended {
		return &errors.ValidationError{Type: "Game", Reason: "game has ended"}
	}

	if !g.showResult {
		if !g.playerIsParent {
			if err := decl.Validate(); err != nil {
				return err
			}
			g.playerJudgment(decl)
		}
		g.showResult = true
		return nil
	}

	g.showResult = false
	g.playerIsParent = !g.playerIsParent
	g.turnOver()
	if g.playerIsParent && !g.ended {
		g.enemyJudgment()
	}
	return nil
}

// turnOver draws the next card of each hand, or ends the game when the
// hands are empty.
func (g *Game) turnOver() {
	g.judged, g.judgment = false, 0
	g.enemyDeclared, g.enemyDeclaration = false, 0

	pc, playerRest, ok := g.playerHand.Draw()
	if !ok {
		g.ended = true
		g.result = resultOf(g.playerScore, g.enemyScore)
		return
	}
	ec, enemyRest, _ := g.enemyHand.Draw()

	g.playerCard, g.playerHand = pc, playerRest
	g.enemyCard, g.enemyHand = ec, enemyRest
}

func (g *Game) playerJudgment(decl Declaration) {
	g.judged = true
	g.judgment = judge(decl, g.playerCard.Number(), g.enemyCard.Number())
	g.score(&g.playerScore, &g.enemyScore)
}

func (g *Game) enemyJudgment() {
	decl := Low
	if g.playerCard.Number() < enemyHighBelow {
		decl = High
	}
	g.enemyDeclared = true
	g.enemyDeclaration = decl
	g.judged = true
	g.judgment = judge(decl, g.enemyCard.Number(), g.playerCard.Number())
	g.score(&g.enemyScore, &g.playerScore)
}

func (g *Game) score(declarer, opponent *int32) {
	switch g.judgment {
	case Hit:
		*declarer += 2
	case Miss:
		*opponent += 2
	case Draw:
		*declarer++
		*opponent++
	}
}

// Started reports whether the cards have been dealt.
func (g *Game) Started() bool { return g.started }

// Ended reports whether both hands are exhausted.
func (g *Game) Ended() bool { return g.ended }

// ShowResult reports whether the current round's judgment is revealed.
func (g *Game) ShowResult() bool { return g.showResult }

// PlayerIsParent reports whether the enemy declares this round.
func (g *Game) PlayerIsParent() bool { return g.playerIsParent }

// PlayerCard returns the player's face-up card.
func (g *Game) PlayerCard() cards.Card { return g.playerCard }

// EnemyCard returns the enemy's card. It stays face down until the result
// is shown; callers rendering it for the player check ShowResult.
func (g *Game) EnemyCard() cards.Card { return g.enemyCard }

// PlayerHand returns the player's remaining cards.
func (g *Game) PlayerHand() cards.Hand { return g.playerHand }

// EnemyHand returns the enemy's remaining cards.
func (g *Game) EnemyHand() cards.Hand { return g.enemyHand }

// Scores returns the player's and the enemy's points.
func (g *Game) Scores() (player, enemy int32) { return g.playerScore, g.enemyScore }

// Judgment returns the outcome of the current round, from the declarer's
// point of view. It reports false before the round has been judged.
func (g *Game) Judgment() (Outcome, bool) { return g.judgment, g.judged }

// EnemyDeclaration returns what the enemy declared this round. It reports
// false in rounds where the player declares.
func (g *Game) EnemyDeclaration() (Declaration, bool) {
	return g.enemyDeclaration, g.enemyDeclared
}

// Result returns the player's final standing. It reports false until the
// game has ended.
func (g *Game) Result() (Result, bool) { return g.result, g.ended }

func (g *Game) Validate() error {
	if !g.started {
		if !g.IsZero() {
			return &errors.ValidationError{Type: "Game", Reason: "state present before start"}
		}
		return nil
	}
	if len(g.playerHand) != len(g.enemyHand) {
		return &errors.ValidationError{
			Type:   "Game",
			Field:  "EnemyHand",
			Reason: fmt.Sprintf("holds %d cards, player holds %d", len(g.enemyHand), len(g.playerHand)),
		}
	}
	if g.playerScore < 0 || g.enemyScore < 0 {
		return &errors.ValidationError{Type: "Game", Field: "Scores", Reason: "must not be negative"}
	}
	for _, c := range []struct {
		name string
		card cards.Card
	}{{"playerCard", g.playerCard}, {"enemyCard", g.enemyCard}} {
		if err := c.card.Validate(); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	if err := g.playerHand.Validate(); err != nil {
		return fmt.Errorf("playerHand: %w", err)
	}
	if err := g.enemyHand.Validate(); err != nil {
		return fmt.Errorf("enemyHand: %w", err)
	}
	if err := g.judgment.Validate(); err != nil {
		return err
	}
	if err := g.enemyDeclaration.Validate(); err != nil {
		return err
	}
	return g.result.Validate()
}

func (g *Game) TypeName() string { return "Game" }

func (g *Game) IsZero() bool {
	return !g.started && !g.ended && !g.showResult && !g.playerIsParent &&
		g.playerCard.IsZero() && g.enemyCard.IsZero() &&
		len(g.playerHand) == 0 && len(g.enemyHand) == 0 &&
		g.playerScore == 0 && g.enemyScore == 0 &&
		!g.judged && !g.enemyDeclared
}

// String shows every card, including the ones still face down.
func (g *Game) String() string {
	return g.format(true)
}

// Redacted shows only what the player may see: the enemy card stays hidden
// until the result is shown and both hands appear as counts.
func (g *Game) Redacted() string {
	return g.format(false)
}

func (g *Game) format(all bool) string {
	if !g.started {
		return "Game(not started)"
	}

	var b strings.Builder
	enemy := g.enemyCard.String()
	if !all && !g.showResult && !g.ended {
		enemy = "?"
	}
	fmt.Fprintf(&b, "Game(player %s vs enemy %s, score %d-%d", g.playerCard, enemy, g.playerScore, g.enemyScore)
	if all {
		fmt.Fprintf(&b, ", hands %s %s", g.playerHand, g.enemyHand)
	} else {
		fmt.Fprintf(&b, ", %d rounds left", len(g.playerHand))
	}
	if g.judged && (all || g.showResult) {
		fmt.Fprintf(&b, ", %s", g.judgment)
	}
	if g.ended {
		fmt.Fprintf(&b, ", %s", g.result)
	}
	b.WriteString(")")
	return b.String()
}

// gameDoc is the JSON and YAML form of a Game. The enum pointers carry no
// yaml omitempty: yaml.v3 asks IsZero, which is true for Hit, High and Win.
type gameDoc struct {
	Started          bool         `json:"started" yaml:"started"`
	Ended            bool         `json:"ended" yaml:"ended"`
	ShowResult       bool         `json:"showResult" yaml:"showResult"`
	PlayerIsParent   bool         `json:"playerIsParent" yaml:"playerIsParent"`
	PlayerCard       *cards.Card  `json:"playerCard,omitempty" yaml:"playerCard,omitempty"`
	EnemyCard        *cards.Card  `json:"enemyCard,omitempty" yaml:"enemyCard,omitempty"`
	PlayerHand       cards.Hand   `json:"playerHand" yaml:"playerHand"`
	EnemyHand        cards.Hand   `json:"enemyHand" yaml:"enemyHand"`
	PlayerScore      int32        `json:"playerScore" yaml:"playerScore"`
	EnemyScore       int32        `json:"enemyScore" yaml:"enemyScore"`
	Judgment         *Outcome     `json:"judgment,omitempty" yaml:"judgment"`
	EnemyDeclaration *Declaration `json:"enemyDeclaration,omitempty" yaml:"enemyDeclaration"`
	Result           *Result      `json:"result,omitempty" yaml:"result"`
}

func (g *Game) doc() gameDoc {
	d := gameDoc{
		Started:        g.started,
		Ended:          g.ended,
		ShowResult:     g.showResult,
		PlayerIsParent: g.playerIsParent,
		PlayerHand:     g.playerHand,
		EnemyHand:      g.enemyHand,
		PlayerScore:    g.playerScore,
		EnemyScore:     g.enemyScore,
	}
	if !g.playerCard.IsZero() {
		pc := g.playerCard
		d.PlayerCard = &pc
	}
	if !g.enemyCard.IsZero() {
		ec := g.enemyCard
		d.EnemyCard = &ec
	}
	if g.judged {
		o := g.judgment
		d.Judgment = &o
	}
	if g.enemyDeclared {
		decl := g.enemyDeclaration
		d.EnemyDeclaration = &decl
	}
	if g.ended {
		r := g.result
		d.Result = &r
	}
	return d
}

func (g *Game) fromDoc(d gameDoc) error {
	parsed := Game{
		started:        d.Started,
		ended:          d.Ended,
		showResult:     d.ShowResult,
		playerIsParent: d.PlayerIsParent,
		playerHand:     d.PlayerHand,
		enemyHand:      d.EnemyHand,
		playerScore:    d.PlayerScore,
		enemyScore:     d.EnemyScore,
	}
	// A game that has not started holds no hands; an ended one holds two
	// empty hands. Both read back as null or [] depending on the format.
	if !d.Started {
		parsed.playerHand, parsed.enemyHand = nil, nil
	} else {
		if parsed.playerHand == nil {
			parsed.playerHand = cards.Hand{}
		}
		if parsed.enemyHand == nil {
			parsed.enemyHand = cards.Hand{}
		}
	}
	if d.PlayerCard != nil {
		parsed.playerCard = *d.PlayerCard
	}
	if d.EnemyCard != nil {
		parsed.enemyCard = *d.EnemyCard
	}
	if d.Judgment != nil {
		parsed.judged, parsed.judgment = true, *d.Judgment
	}
	if d.EnemyDeclaration != nil {
		parsed.enemyDeclared, parsed.enemyDeclaration = true, *d.EnemyDeclaration
	}
	if d.Result != nil {
		parsed.result = *d.Result
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*g = parsed
	return nil
}

func (g *Game) MarshalJSON() ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(g.doc())
}

func (g *Game) UnmarshalJSON(data []byte) error {
	var d gameDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return &errors.UnmarshalError{Type: "Game", Data: data, Reason: err.Error()}
	}
	return g.fromDoc(d)
}

func (g *Game) MarshalYAML() (any, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g.doc(), nil
}

func (g *Game) UnmarshalYAML(node *yaml.Node) error {
	var d gameDoc
	if err := node.Decode(&d); err != nil {
		return &errors.UnmarshalError{Type: "Game", Data: []byte(node.Value), Reason: err.Error()}
	}
	return g.fromDoc(d)
}
