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

// Package codec serializes a string-keyed State of heterogeneous values into
// a single JSON object and restores every value with its exact Go type,
// without a schema declared up front.
//
// Type identity travels in the stream as discriminator strings. A value is
// written either bare, when it is a supported scalar, or tagged:
//
//	{"TypeDiscriminator": "cards.Mark", "ValueObject": "Heart"}
//
// The ValueObject member holds the enum variant name for enumerations, the
// nested field object serialized as a string for aggregates, and an array
// of tagged elements for sequences. Scalars inside a sequence are tagged with
// the builtin scalar discriminators ("bool", "int32", "int64", "decimal",
// "string", "timestamp", "uuid") so that each element can be decoded on its
// own.
//
// # Registering Types
//
// Every enumeration, aggregate and sequence that takes part in a State MUST
// implement Codable and MUST be registered before it is persisted or
// restored. Descriptors are built from typed field references, so the codec
// never inspects values with reflection:
//
//	type Card struct {
//	    mark   Mark
//	    number int32
//	}
//
//	func (Card) Discriminator() string { return "cards.Card" }
//
//	func init() {
//	    codec.MustRegister(
//	        codec.EnumOf(ParseMark),
//	        codec.AggregateOf[Card](
//	            codec.Enum("mark", func(c *Card) *Mark { return &c.mark }),
//	            codec.Int32("number", func(c *Card) *int32 { return &c.number }),
//	        ),
//	        codec.SequenceOf[Hand](),
//	    )
//	}
//
// # Restoring
//
// Bare top-level values carry no type information and are inferred from
// their shape: numbers narrow to int32 when they fit, and strings are
// sniffed as a UUID, then as a timestamp, and only then kept as strings.
// Values inside aggregates are decoded by the declared kind of their field
// and are never sniffed.
//
// Restore is lenient at the top level and inside lists: an entry or element
// whose discriminator is not registered is dropped and logged at Debug.
// Everywhere else an unresolvable discriminator or a payload that does not
// fit its declared kind aborts the whole call. Errors are the struct types of
// package dxcore/errors and carry a path such as "hand[1].mark".
//
// # Concurrency
//
// Registries are populated during init and only read afterwards. A Codec is
// immutable once built, so one value may serve any number of goroutines.
package codec
