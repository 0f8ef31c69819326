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
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// field is the type-erased form of Field[T]. Accessors receive the *T being
// encoded or decoded as an any.
type field struct {
	name string
	kind Kind
	typ  string

	// absent reports whether a nullable field has no value and must be
	// skipped on encode. It is nil for fields that are always written.
	absent func(p any) bool

	get func(p any) any

	// set stores a decoded value. It returns false when the value is not
	// assignable to the field's Go type.
	set func(p any, v any) bool
}

// Field describes one field of aggregate type T. Fields are created with the
// typed constructors of this package (Bool, Int32, Enum, Nested, ...), each
// taking a function that returns a pointer to the field inside a *T. That
// single accessor provides both the get and the set capability, so the codec
// never needs reflection to reach a field.
type Field[T any] struct {
	f field
}

func scalarField[T, V any](name string, kind Kind, ref func(*T) *V) Field[T] {
	return Field[T]{f: field{
		name: name,
		kind: kind,
		get: func(p any) any {
			return *ref(p.(*T))
		},
		set: func(p any, v any) bool {
			x, ok := v.(V)
			if ok {
				*ref(p.(*T)) = x
			}
			return ok
		},
	}}
}

// Bool declares a bool field.
func Bool[T any](name string, ref func(*T) *bool) Field[T] {
	return scalarField(name, KindBool, ref)
}

// Int32 declares an int32 field.
func Int32[T any](name string, ref func(*T) *int32) Field[T] {
	return scalarField(name, KindInt32, ref)
}

// Int64 declares an int64 field.
func Int64[T any](name string, ref func(*T) *int64) Field[T] {
	return scalarField(name, KindInt64, ref)
}

// Decimal declares an arbitrary-precision decimal field.
func Decimal[T any](name string, ref func(*T) *decimal.Decimal) Field[T] {
	return scalarField(name, KindDecimal, ref)
}

// Text declares a string field.
func Text[T any](name string, ref func(*T) *string) Field[T] {
	return scalarField(name, KindText, ref)
}

// Timestamp declares a time.Time field.
func Timestamp[T any](name string, ref func(*T) *time.Time) Field[T] {
	return scalarField(name, KindTimestamp, ref)
}

// UUID declares a uuid.UUID field.
func UUID[T any](name string, ref func(*T) *uuid.UUID) Field[T] {
	return scalarField(name, KindUUID, ref)
}

// Enum declares a field holding enumeration E. Like scalar fields, it is
// always written.
func Enum[T any, E Enumeration](name string, ref func(*T) *E) Field[T] {
	f := scalarField(name, KindEnum, ref)
	f.f.typ = discriminatorOf[E]()
	return f
}

// Nested declares a field holding a Codable value: a registered aggregate
// (stored by value) or an interface satisfied by several registered types.
// A nil interface is absent and is not written.
func Nested[T any, A Codable](name string, ref func(*T) *A) Field[T] {
	f := scalarField(name, KindAggregate, ref)
	f.f.typ = discriminatorOf[A]()
	f.f.absent = func(p any) bool {
		return any(*ref(p.(*T))) == nil
	}
	return f
}

// Optional declares a field holding a pointer to a Codable value. A nil
// pointer is absent and is not written; on decode the field is left nil
// unless the payload carries it.
func Optional[T any, A Codable](name string, ref func(*T) **A) Field[T] {
	return Field[T]{f: field{
		name: name,
		kind: KindAggregate,
		typ:  discriminatorOf[A](),
		absent: func(p any) bool {
			return *ref(p.(*T)) == nil
		},
		get: func(p any) any {
			return **ref(p.(*T))
		},
		set: func(p any, v any) bool {
			x, ok := v.(A)
			if ok {
				*ref(p.(*T)) = &x
			}
			return ok
		},
	}}
}

// Sequence declares a field holding sequence S. A nil slice is absent and
// is not written; an empty non-nil slice is written as an empty list and
// restored as an empty non-nil slice.
func Sequence[T any, S interface {
	~[]E
	Codable
}, E any](name string, ref func(*T) *S) Field[T] {
	f := scalarField(name, KindSequence, ref)
	f.f.typ = discriminatorOf[S]()
	f.f.absent = func(p any) bool {
		return *ref(p.(*T)) == nil
	}
	return f
}
