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
	"dirpx.dev/dxstate/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Outcome is the judgment of one round, seen from the declarer: Hit when the
// declaration was right, Miss when it was wrong, Draw on equal numbers.
type Outcome int

const (
	Hit Outcome = iota
	Miss
	Draw
)

var outcomeVariants = model.NewVariants[Outcome]("Outcome", "Hit", "Miss", "Draw")

var _ model.Codable = (*Outcome)(nil)

func ParseOutcome(s string) (Outcome, error) {
	return outcomeVariants.Parse(s)
}

// judge compares own against other for a declarer who said decl.
func judge(decl Declaration, own, other int32) Outcome {
	switch {
	case own == other:
		return Draw
	case (own > other) == (decl == High):
		return Hit
	default:
		return Miss
	}
}

func (Outcome) Discriminator() string { return OutcomeDiscriminator }

func (o Outcome) String() string { return outcomeVariants.Name(o) }

func (o Outcome) Valid() bool { return outcomeVariants.Valid(o) }

func (o Outcome) Validate() error { return outcomeVariants.Validate(o) }

func (Outcome) TypeName() string { return "Outcome" }

func (o Outcome) IsZero() bool { return o == Hit }

func (o Outcome) Redacted() string { return o.String() }

func (o Outcome) MarshalText() ([]byte, error) { return outcomeVariants.MarshalText(o) }

func (o *Outcome) UnmarshalText(text []byte) error {
	parsed, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o Outcome) MarshalJSON() ([]byte, error) { return outcomeVariants.JSON(o) }

func (o *Outcome) UnmarshalJSON(data []byte) error {
	parsed, err := outcomeVariants.ParseJSON(data)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o Outcome) MarshalYAML() (any, error) { return outcomeVariants.MarshalYAML(o) }

func (o *Outcome) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := outcomeVariants.UnmarshalYAML(node)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Result is the final standing of the player once both hands are empty.
type Result int

const (
	Win Result = iota
	Lose
	Tie
)

var resultVariants = model.NewVariants[Result]("Result", "Win", "Lose", "Tie")

var _ model.Codable = (*Result)(nil)

func ParseResult(s string) (Result, error) {
	return resultVariants.Parse(s)
}

// resultOf compares the final scores.
func resultOf(player, enemy int32) Result {
	switch {
	case player > enemy:
		return Win
	case player < enemy:
		return Lose
	default:
		return Tie
	}
}

func (Result) Discriminator() string { return ResultDiscriminator }

func (r Result) String() string { return resultVariants.Name(r) }

func (r Result) Valid() bool { return resultVariants.Valid(r) }

func (r Result) Validate() error { return resultVariants.Validate(r) }

func (Result) TypeName() string { return "Result" }

func (r Result) IsZero() bool { return r == Win }

func (r Result) Redacted() string { return r.String() }

func (r Result) MarshalText() ([]byte, error) { return resultVariants.MarshalText(r) }

func (r *Result) UnmarshalText(text []byte) error {
	parsed, err := ParseResult(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Result) MarshalJSON() ([]byte, error) { return resultVariants.JSON(r) }

func (r *Result) UnmarshalJSON(data []byte) error {
	parsed, err := resultVariants.ParseJSON(data)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Result) MarshalYAML() (any, error) { return resultVariants.MarshalYAML(r) }

func (r *Result) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := resultVariants.UnmarshalYAML(node)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
