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

package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"dirpx.dev/dxstate/dxcore/codec"
	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/dxstate/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Bet is a minimal Codable model used to exercise the helpers.
type Bet struct {
	Player string `json:"player" yaml:"player"`
	Amount int32  `json:"amount" yaml:"amount"`
	Note   string `json:"note,omitempty" yaml:"note,omitempty"`
}

func (Bet) Discriminator() string { return "test.Bet" }

func (b Bet) Validate() error {
	if b.Player == "" {
		return &errors.ValidationError{Type: "Bet", Field: "Player", Reason: "must not be empty"}
	}
	if b.Amount <= 0 {
		return &errors.ValidationError{Type: "Bet", Field: "Amount", Reason: "must be positive", Value: b.Amount}
	}
	return nil
}

func (Bet) TypeName() string { return "Bet" }

func (b Bet) IsZero() bool { return b == Bet{} }

func (b Bet) Redacted() string {
	return "Bet{Player:" + b.Player + ", Amount:[REDACTED]}"
}

func (b Bet) String() string {
	return "Bet{Player:" + b.Player + ", Note:" + b.Note + "}"
}

func (b Bet) MarshalJSON() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	type alias Bet
	return json.Marshal((alias)(b))
}

func (b *Bet) UnmarshalJSON(data []byte) error {
	type alias Bet
	if err := json.Unmarshal(data, (*alias)(b)); err != nil {
		return err
	}
	return b.Validate()
}

func (b Bet) MarshalYAML() (any, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	type alias Bet
	return (alias)(b), nil
}

func (b *Bet) UnmarshalYAML(node *yaml.Node) error {
	type alias Bet
	if err := node.Decode((*alias)(b)); err != nil {
		return err
	}
	return b.Validate()
}

var _ model.Codable = (*Bet)(nil)

func betCodec(t *testing.T) *codec.Codec {
	t.Helper()

	r := codec.NewRegistry()
	err := r.Register(codec.AggregateOf[Bet](
		codec.Text("player", func(b *Bet) *string { return &b.Player }),
		codec.Int32("amount", func(b *Bet) *int32 { return &b.Amount }),
		codec.Text("note", func(b *Bet) *string { return &b.Note }),
	))
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return codec.New(codec.WithRegistry(r))
}

func TestModel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		model   Bet
		wantErr bool
	}{
		{"valid model", Bet{Player: "alice", Amount: 5}, false},
		{"missing player", Bet{Amount: 5}, true},
		{"zero amount", Bet{Player: "alice"}, true},
		{"empty model", Bet{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	if err := model.ValidateAll([]Bet{}); err != nil {
		t.Errorf("ValidateAll(empty) = %v, want nil", err)
	}
	if err := model.ValidateAll([]Bet{{Player: "a", Amount: 1}}); err != nil {
		t.Errorf("ValidateAll(valid) = %v, want nil", err)
	}

	err := model.ValidateAll([]Bet{
		{Player: "a", Amount: 1},
		{Amount: 1},
		{Player: "c"},
	})
	if err == nil {
		t.Fatal("ValidateAll() = nil, want error")
	}
	for _, s := range []string{"model[1] (Bet)", "model[2] (Bet)", "Bet.Player", "Bet.Amount"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("ValidateAll() error %q does not mention %q", err, s)
		}
	}
	if strings.Contains(err.Error(), "model[0]") {
		t.Errorf("ValidateAll() reported a valid model: %v", err)
	}
}

func TestMustValidate(t *testing.T) {
	b := model.MustValidate(Bet{Player: "a", Amount: 1})
	if b.Player != "a" {
		t.Errorf("MustValidate() = %+v", b)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustValidate() did not panic")
		}
		if !strings.Contains(r.(string), "Bet") {
			t.Errorf("panic = %v, want it to name the type", r)
		}
	}()
	model.MustValidate(Bet{})
}

func TestSafeString(t *testing.T) {
	b := Bet{Player: "alice", Amount: 50, Note: "all in"}

	safe := model.SafeString(b, false)
	if !strings.Contains(safe, "alice") || !strings.Contains(safe, "[REDACTED]") {
		t.Errorf("SafeString(false) = %q, want the redacted form", safe)
	}
	if strings.Contains(safe, "all in") {
		t.Errorf("SafeString(false) = %q leaks the note", safe)
	}
	if unsafe := model.SafeString(b, true); unsafe != b.String() {
		t.Errorf("SafeString(true) = %q, want %q", unsafe, b.String())
	}
}

func TestModel_JSON_RoundTrip(t *testing.T) {
	original := Bet{Player: "alice", Amount: 5, Note: "n"}

	data, err := model.ToJSON(original)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded Bet
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded != original {
		t.Errorf("JSON round-trip failed: got %+v, want %+v", decoded, original)
	}
}

func TestModel_YAML_RoundTrip(t *testing.T) {
	original := Bet{Player: "alice", Amount: 5}

	data, err := model.ToYAML(original)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var decoded Bet
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if decoded != original {
		t.Errorf("YAML round-trip failed: got %+v, want %+v", decoded, original)
	}
}

func TestModel_Serialize_FailsOnInvalid(t *testing.T) {
	_, err := model.ToJSON(Bet{})
	if err == nil || !strings.Contains(err.Error(), "cannot marshal invalid Bet") {
		t.Errorf("ToJSON() error = %v, want it to name the invalid Bet", err)
	}
	if _, err := model.ToYAML(Bet{Player: "alice"}); err == nil {
		t.Error("ToYAML() should fail on invalid model")
	}
}

func TestCodable_ThroughCodec(t *testing.T) {
	c := betCodec(t)
	original := Bet{Player: "alice", Amount: 5, Note: "n"}

	data, err := c.Persist(codec.State{"bet": original})
	if err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	state, err := c.Restore(data)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if got, ok := state["bet"].(Bet); !ok || got != original {
		t.Errorf("Restore() = %#v, want %+v", state["bet"], original)
	}

	// A codec that does not know the type cannot store it.
	empty := codec.New(codec.WithRegistry(codec.NewRegistry()))
	if _, err := empty.Persist(codec.State{"bet": original}); err == nil {
		t.Error("Persist() with an empty registry error = nil")
	}
}
