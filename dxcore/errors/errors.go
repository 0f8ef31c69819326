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

// Package errors provides the error types shared by the dxstate codec and
// the model packages built on top of it.
//
// The errors in this package are simple value carriers with stable message
// formats. They are designed to be:
//
//   - easy to construct from parsing, encoding and decoding code,
//   - easy to recognize via errors.As,
//   - and easy for users to understand when surfaced in logs.
//
// # Codec Error Types
//
//   - UnsupportedValueTypeError
//     Returned by Persist when a state value has no codec path. The whole
//     encode is aborted and no bytes are produced.
//
//   - MalformedStreamError
//     Returned by Restore when the top-level bytes are not a single
//     well-formed JSON object.
//
//   - UnknownTypeError
//     Returned when a discriminator nested inside an aggregate has no
//     registry entry. Unresolvable top-level entries and list elements are
//     dropped instead.
//
//   - MalformedPayloadError
//     Returned when the payload shape (field map, list, text) does not match
//     the declared kind of the field or descriptor being decoded.
//
//   - ScalarMismatchError
//     Returned when a scalar node cannot be converted to the requested
//     scalar kind.
//
//   - RegistrationError
//     Returned when a descriptor cannot be added to a registry.
//
// # Model Error Types
//
//   - ParseError, MarshalError, UnmarshalError, ValidationError
//     Used by enum-like and aggregate model types when parsing text,
//     marshaling invalid constants, unmarshaling and validating.
//
// # Paths
//
// Codec errors carry a Path locating the failing value inside the state
// mapping, using the key followed by field names and list indexes, for
// example "hand[1].mark". An empty path refers to the value being decoded
// as a whole.
package errors

import (
	"strconv"
)

const prefix = "dxstate: "

// ParseError is returned when parsing a string into a strongly typed
// enum-like value fails.
//
// Type identifies the logical type being parsed (for example, "Mark") and
// Value contains the exact string that could not be interpreted.
//
// # Example
//
//	func ParseMark(s string) (Mark, error) {
//	    switch s {
//	    case "Spade":
//	        return Spade, nil
//	    default:
//	        return 0, &errors.ParseError{Type: "Mark", Value: s}
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Mark").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxstate: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return prefix + "invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants.
//
// This error is a guardrail: it prevents invalid enum-like values from being
// silently emitted into JSON, YAML or the state stream. In most cases a
// MarshalError indicates a programming error such as a numeric cast that was
// never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxstate: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return prefix + "cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling JSON or YAML data into a typed
// value fails.
//
// The Data field is not included in the formatted message to avoid verbose
// logs; callers can log it separately when appropriate.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxstate: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return prefix + "cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Card"), Field optionally identifies which field failed validation, and
// Reason explains the failure.
//
// # Example
//
//	func (c Card) Validate() error {
//	    if c.Number() < 1 {
//	        return &errors.ValidationError{
//	            Type:   "Card",
//	            Field:  "Number",
//	            Reason: "must be between 1 and 13",
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxstate: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxstate: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return prefix + "invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return prefix + "invalid " + e.Type + ": " + e.Reason
}

// UnsupportedValueTypeError is returned when a value handed to the codec has
// no encoding path: it is not one of the supported scalar types, and it is
// not a Codable whose discriminator is registered.
type UnsupportedValueTypeError struct {
	// Path locates the value, starting with the state key.
	Path string

	// GoType is the Go type of the rejected value, as printed by %T.
	GoType string

	// Reason optionally refines why the type was rejected (for example,
	// "discriminator not registered").
	Reason string
}

// Error implements the error interface for UnsupportedValueTypeError.
//
// The error message format is:
//
//	"dxstate: cannot encode {GoType} at {Path}" followed by ": {Reason}" when
//	Reason is set.
func (e *UnsupportedValueTypeError) Error() string {
	msg := prefix + "cannot encode " + e.GoType + at(e.Path)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// MalformedStreamError is returned when the top-level byte stream handed to
// Restore is not exactly one JSON object.
type MalformedStreamError struct {
	// Reason describes what was found instead of an object.
	Reason string

	// Err is the underlying parser error, if any.
	Err error
}

// Error implements the error interface for MalformedStreamError.
//
// The error message format is:
//
//	"dxstate: malformed stream: {Reason}"
func (e *MalformedStreamError) Error() string {
	return prefix + "malformed stream: " + e.Reason
}

// Unwrap returns the underlying parser error.
func (e *MalformedStreamError) Unwrap() error {
	return e.Err
}

// UnknownTypeError is returned when a discriminator found in the stream does
// not resolve to any registered descriptor.
type UnknownTypeError struct {
	// Path locates the tagged value.
	Path string

	// Discriminator is the unresolved type discriminator.
	Discriminator string
}

// Error implements the error interface for UnknownTypeError.
//
// The error message format is:
//
//	"dxstate: unknown type {Discriminator} at {Path}"
func (e *UnknownTypeError) Error() string {
	return prefix + "unknown type " + strconv.Quote(e.Discriminator) + at(e.Path)
}

// MalformedPayloadError is returned when the structural shape of a payload
// does not match what the declared kind requires.
type MalformedPayloadError struct {
	// Path locates the payload.
	Path string

	// Discriminator names the type being decoded, when known.
	Discriminator string

	// Reason describes the mismatch, for example "expected list payload".
	Reason string

	// Err is an underlying error (for example from parsing a nested
	// aggregate document), if any.
	Err error
}

// Error implements the error interface for MalformedPayloadError.
//
// The error message format is:
//
//	"dxstate: malformed {Discriminator} payload at {Path}: {Reason}"
func (e *MalformedPayloadError) Error() string {
	msg := prefix + "malformed "
	if e.Discriminator != "" {
		msg += strconv.Quote(e.Discriminator) + " "
	}
	return msg + "payload" + at(e.Path) + ": " + e.Reason
}

// Unwrap returns the underlying error.
func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// ScalarMismatchError is returned when a scalar node is not compatible with
// the scalar kind it is being decoded into.
type ScalarMismatchError struct {
	// Path locates the scalar.
	Path string

	// Want is the requested scalar kind (for example "int32").
	Want string

	// Got describes the node that was found (for example "text").
	Got string

	// Err is an underlying conversion error, if any.
	Err error
}

// Error implements the error interface for ScalarMismatchError.
//
// The error message format is:
//
//	"dxstate: cannot decode {Got} as {Want} at {Path}"
func (e *ScalarMismatchError) Error() string {
	msg := prefix + "cannot decode " + e.Got + " as " + e.Want + at(e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying conversion error.
func (e *ScalarMismatchError) Unwrap() error {
	return e.Err
}

// RegistrationError is returned when a descriptor cannot be registered.
type RegistrationError struct {
	// Discriminator is the discriminator that was being registered.
	Discriminator string

	// Reason explains the rejection (for example "already registered").
	Reason string
}

// Error implements the error interface for RegistrationError.
//
// The error message format is:
//
//	"dxstate: cannot register {Discriminator}: {Reason}"
func (e *RegistrationError) Error() string {
	return prefix + "cannot register " + strconv.Quote(e.Discriminator) + ": " + e.Reason
}

func at(path string) string {
	if path == "" {
		return ""
	}
	return " at " + path
}
