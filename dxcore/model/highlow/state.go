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
	"fmt"

	"dirpx.dev/dxstate/dxcore/codec"
	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/dxstate/dxcore/model/cards"
)

// State keys of a persisted Game. Optional keys are omitted while the value
// they hold does not exist yet.
const (
	KeyStarted          = "HasStarted"
	KeyEnded            = "HasEnded"
	KeyShowResult       = "ShowResult"
	KeyPlayerIsParent   = "PlayerIsParent"
	KeyPlayerCard       = "PlayerCard"       // optional
	KeyEnemyCard        = "EnemyCard"        // optional
	KeyPlayerHand       = "PlayerHand"       // optional
	KeyEnemyHand        = "EnemyHand"        // optional
	KeyPlayerScore      = "PlayerScore"
	KeyEnemyScore       = "EnemyScore"
	KeyJudgment         = "Judgment"         // optional
	KeyEnemyDeclaration = "EnemyDeclaration" // optional
	KeyResult           = "Result"           // optional
)

// State spreads g over one key per field.
func (g *Game) State() codec.State {
	s := codec.State{
		KeyStarted:        g.started,
		KeyEnded:          g.ended,
		KeyShowResult:     g.showResult,
		KeyPlayerIsParent: g.playerIsParent,
		KeyPlayerScore:    g.playerScore,
		KeyEnemyScore:     g.enemyScore,
	}
	if !g.playerCard.IsZero() {
		s[KeyPlayerCard] = g.playerCard
	}
	if !g.enemyCard.IsZero() {
		s[KeyEnemyCard] = g.enemyCard
	}
	if g.started {
		s[KeyPlayerHand] = g.playerHand
		s[KeyEnemyHand] = g.enemyHand
	}
	if g.judged {
		s[KeyJudgment] = g.judgment
	}
	if g.enemyDeclared {
		s[KeyEnemyDeclaration] = g.enemyDeclaration
	}
	if g.ended {
		s[KeyResult] = g.result
	}
	return s
}

// FromState rebuilds a Game from a State written by Game.State. Missing
// keys leave their field at its zero value, so an empty State yields a game
// that has not started. Keys that are not part of a Game are ignored.
func FromState(s codec.State) (*Game, error) {
	g := &Game{}
	var err error

	read := func(key string, dst any) {
		if err != nil {
			return
		}
		err = lookup(s, key, dst)
	}
	read(KeyStarted, &g.started)
	read(KeyEnded, &g.ended)
	read(KeyShowResult, &g.showResult)
	read(KeyPlayerIsParent, &g.playerIsParent)
	read(KeyPlayerCard, &g.playerCard)
	read(KeyEnemyCard, &g.enemyCard)
	read(KeyPlayerHand, &g.playerHand)
	read(KeyEnemyHand, &g.enemyHand)
	read(KeyPlayerScore, &g.playerScore)
	read(KeyEnemyScore, &g.enemyScore)
	if err != nil {
		return nil, err
	}

	if _, ok := s[KeyJudgment]; ok {
		g.judged = true
		if err := lookup(s, KeyJudgment, &g.judgment); err != nil {
			return nil, err
		}
	}
	if _, ok := s[KeyEnemyDeclaration]; ok {
		g.enemyDeclared = true
		if err := lookup(s, KeyEnemyDeclaration, &g.enemyDeclaration); err != nil {
			return nil, err
		}
	}
	if err := lookup(s, KeyResult, &g.result); err != nil {
		return nil, err
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("restored game: %w", err)
	}
	return g, nil
}

// lookup copies s[key] into dst when present. A present key whose value has
// another type is an error; a nil value counts as absent.
func lookup(s codec.State, key string, dst any) error {
	v, ok := s[key]
	if !ok || v == nil {
		return nil
	}

	var matched bool
	switch d := dst.(type) {
	case *bool:
		*d, matched = v.(bool)
	case *int32:
		*d, matched = v.(int32)
	case *cards.Card:
		*d, matched = v.(cards.Card)
	case *cards.Hand:
		*d, matched = v.(cards.Hand)
	case *Outcome:
		*d, matched = v.(Outcome)
	case *Declaration:
		*d, matched = v.(Declaration)
	case *Result:
		*d, matched = v.(Result)
	default:
		panic(fmt.Sprintf("highlow: no lookup for %T", dst))
	}
	if !matched {
		return &errors.ValidationError{
			Type:   "Game",
			Field:  key,
			Reason: fmt.Sprintf("holds %T", v),
			Value:  v,
		}
	}
	return nil
}
