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

// Package model defines the contracts shared by the domain types that travel
// through the dxstate codec: playing cards, hands, game enums and the game
// state built from them.
//
// Every domain type SHOULD implement Model. The contract bundles validation,
// JSON and YAML serialization, safe logging, a canonical type name and zero
// detection, so that the generic helpers of this package (ValidateAll,
// MustValidate, SafeString, ToJSON, ToYAML) apply to all of them uniformly. Types that are also stored in a codec.State
// implement Codable, which adds the codec discriminator.
//
// Model values are immutable value types unless documented otherwise.
// Concurrent reads are safe; callers MUST synchronize concurrent writes.
package model

import (
	"encoding/json"

	"dirpx.dev/dxstate/dxcore/codec"
	"gopkg.in/yaml.v3"
)

// Model is the root contract of the domain types.
//
//	type Chip struct{ value int32 }
//
//	func (c Chip) Validate() error   { ... }
//	func (c Chip) TypeName() string  { return "Chip" }
//	func (c Chip) IsZero() bool      { return c.value == 0 }
//	func (c Chip) Redacted() string  { return c.String() }
//	func (c Chip) String() string    { return fmt.Sprintf("Chip(%d)", c.value) }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ model.Model = (*Chip)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Codable is a Model that can be stored in a codec.State. Its discriminator
// MUST be registered with the codec registry before it is persisted.
type Codable interface {
	Model
	codec.Codable
}

// Checked is the constraint of helpers that validate a value and name its
// type in errors. Value types satisfy it even though their unmarshal methods
// live on the pointer.
type Checked interface {
	Validatable
	Identifiable
}

// Validatable is implemented by types that check their own invariants.
//
// Validate MUST NOT mutate the receiver, MUST be deterministic and MUST NOT
// perform I/O. It returns nil if and only if the instance is usable. Errors
// SHOULD be *errors.ValidationError values naming the failing field, for
// example "Card.Number must be between 1 and 13".
//
// Callers SHOULD validate right after a value is restored from a State or
// unmarshaled from JSON or YAML, since those inputs come from outside the
// process.
type Validatable interface {
	Validate() error
}

// Serializable is implemented by types with JSON and YAML forms. Marshal
// methods MUST refuse invalid receivers and unmarshal methods MUST validate
// what they produce.
//
// Types with unexported fields marshal through a small exported mirror
// struct; types without them SHOULD use the alias pattern:
//
//	func (c Chip) MarshalJSON() ([]byte, error) {
//	    if err := c.Validate(); err != nil {
//	        return nil, err
//	    }
//	    type alias Chip
//	    return json.Marshal((alias)(c))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types with a log-safe representation.
//
// Redacted is what goes to logs. For game types it MUST hide information a
// player is not supposed to see yet, such as the cards left in a hand or the
// opponent's face-down card. String MAY show everything and is meant for
// tests and local debugging.
type Loggable interface {
	Redacted() string
	String() string
}

// Identifiable is implemented by types with a canonical CamelCase type name,
// without a package prefix, used in errors and structured logs. TypeName MUST
// return a constant.
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable is implemented by types that can report whether they hold
// no meaningful data. A zero instance usually fails Validate.
type ZeroCheckable interface {
	IsZero() bool
}
