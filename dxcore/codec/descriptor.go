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
	"encoding"
	"fmt"
	"reflect"
	"unicode/utf8"
)

// Codable is implemented by every application-defined type that takes part
// in the codec: enumerations, aggregates and sequences. The discriminator is
// written into the stream and resolved against a Registry on decode, so it
// MUST be stable and unique within the process.
//
// Discriminator MUST be declared on the value receiver and MUST NOT depend
// on the receiver's contents; descriptors call it on zero values.
type Codable interface {
	Discriminator() string
}

// Enumeration is a Codable whose values are encoded as their variant name.
// If the type also implements encoding.TextMarshaler, MarshalText is used
// instead of String so that invalid constants are rejected at encode time.
type Enumeration interface {
	Codable
	fmt.Stringer
}

// Descriptor is the registered metadata for one discriminator. The concrete
// types are *ScalarDescriptor, *EnumDescriptor, *AggregateDescriptor and
// *SequenceDescriptor; the set is closed.
type Descriptor interface {
	// Discriminator returns the discriminator the descriptor is registered
	// under.
	Discriminator() string

	// Kind returns the semantic kind of the values the descriptor describes.
	Kind() Kind

	sealed()
}

// ScalarDescriptor describes one of the builtin scalar kinds. Every Registry
// carries one per scalar kind; they tag scalar elements of sequences.
type ScalarDescriptor struct {
	kind Kind
}

func (d *ScalarDescriptor) Discriminator() string { return d.kind.String() }
func (d *ScalarDescriptor) Kind() Kind { return d.kind }
func (d *ScalarDescriptor) sealed() {}

// EnumDescriptor describes an enumeration type.
type EnumDescriptor struct {
	disc  string
	parse func(string) (any, error)
}

// EnumOf builds the descriptor of enumeration type E. The parse function
// maps a variant name back to its constant; it is typically the ParseX
// function already declared next to the type.
func EnumOf[E Enumeration](parse func(string) (E, error)) *EnumDescriptor {
	return &EnumDescriptor{
		disc: mustDiscriminator[E](),
		parse: func(s string) (any, error) {
			return parse(s)
		},
	}
}

func (d *EnumDescriptor) Discriminator() string { return d.disc }
func (d *EnumDescriptor) Kind() Kind { return KindEnum }
func (d *EnumDescriptor) sealed() {}

// Parse returns the constant named by variant.
func (d *EnumDescriptor) Parse(variant string) (any, error) {
	return d.parse(variant)
}

func enumText(v Codable) (string, error) {
	if m, ok := v.(encoding.TextMarshaler); ok {
		b, err := m.MarshalText()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}
	return "", fmt.Errorf("%T has neither MarshalText nor String", v)
}

// FieldInfo is the read-only view of one aggregate field.
type FieldInfo struct {
	// Name is the field name written into the stream.
	Name string

	// Kind is the field's declared semantic kind.
	Kind Kind

	// Type is the discriminator the field is declared with, when it can be
	// derived from the Go type. It is empty for scalar fields and for fields
	// whose Go type is an interface.
	Type string
}

// AggregateDescriptor describes an aggregate type: an ordered list of
// fields with typed accessors and a way to build the zero value.
type AggregateDescriptor struct {
	disc    string
	fields  []field
	index   map[string]int
	newPtr  func() any
	load    func(p any) any
	pointer func(v any) (p any, isNil bool, ok bool)
}

// AggregateOf builds the descriptor of aggregate type T from its fields,
// listed in the order they are written. T is the value type; values are
// restored as T, and both T and *T are accepted on encode.
//
//	codec.AggregateOf[Card](
//	    codec.Enum("mark", func(c *Card) *Mark { return &c.mark }),
//	    codec.Int32("number", func(c *Card) *int32 { return &c.number }),
//	)
//
// AggregateOf panics if two fields share a name or a field name is empty or
// not valid UTF-8. These are programming errors caught at init time.
func AggregateOf[T Codable](fields ...Field[T]) *AggregateDescriptor {
	d := &AggregateDescriptor{
		disc:   mustDiscriminator[T](),
		fields: make([]field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
		newPtr: func() any { return new(T) },
		load:   func(p any) any { return *p.(*T) },
		pointer: func(v any) (any, bool, bool) {
			switch x := v.(type) {
			case T:
				return &x, false, true
			case *T:
				return x, x == nil, true
			default:
				return nil, false, false
			}
		},
	}
	for _, f := range fields {
		if f.f.name == "" {
			panic(fmt.Sprintf("codec: aggregate %s has a field with an empty name", d.disc))
		}
		if !utf8.ValidString(f.f.name) {
			panic(fmt.Sprintf("codec: aggregate %s has a field name that is not valid UTF-8: %q", d.disc, f.f.name))
		}
		if _, dup := d.index[f.f.name]; dup {
			panic(fmt.Sprintf("codec: aggregate %s declares field %q twice", d.disc, f.f.name))
		}
		d.index[f.f.name] = len(d.fields)
		d.fields = append(d.fields, f.f)
	}
	return d
}

func (d *AggregateDescriptor) Discriminator() string { return d.disc }
func (d *AggregateDescriptor) Kind() Kind { return KindAggregate }
func (d *AggregateDescriptor) sealed() {}

// Fields returns the aggregate's fields in declaration order.
func (d *AggregateDescriptor) Fields() []FieldInfo {
	out := make([]FieldInfo, len(d.fields))
	for i, f := range d.fields {
		out[i] = FieldInfo{Name: f.name, Kind: f.kind, Type: f.typ}
	}
	return out
}

func (d *AggregateDescriptor) field(name string) (field, bool) {
	i, ok := d.index[name]
	if !ok {
		return field{}, false
	}
	return d.fields[i], true
}

// SequenceDescriptor describes a named slice type whose elements are each
// tagged with their own discriminator.
type SequenceDescriptor struct {
	disc  string
	elem  string
	items func(v any) ([]any, bool)
	build func(items []any) (any, int)
}

// SequenceOf builds the descriptor of sequence type S. S must be a named
// slice type implementing Codable:
//
//	type Hand []Card
//
//	func (Hand) Discriminator() string { return "cards.Hand" }
//
//	codec.SequenceOf[Hand]()
//
// The element type E only constrains what a decoded element may be: every
// element is decoded by its own embedded discriminator and must then be
// assignable to E. When E is an interface, a sequence may therefore hold
// mixed concrete types.
func SequenceOf[S interface {
	~[]E
	Codable
}, E any]() *SequenceDescriptor {
	return &SequenceDescriptor{
		disc: mustDiscriminator[S](),
		elem: elementType[E](),
		items: func(v any) ([]any, bool) {
			s, ok := v.(S)
			if !ok {
				return nil, false
			}
			out := make([]any, len(s))
			for i, e := range s {
				out[i] = e
			}
			return out, true
		},
		build: func(items []any) (any, int) {
			out := make(S, 0, len(items))
			for i, it := range items {
				if it == nil {
					var zero E
					out = append(out, zero)
					continue
				}
				e, ok := it.(E)
				if !ok {
					return nil, i
				}
				out = append(out, e)
			}
			return out, -1
		},
	}
}

func (d *SequenceDescriptor) Discriminator() string { return d.disc }
func (d *SequenceDescriptor) Kind() Kind { return KindSequence }
func (d *SequenceDescriptor) sealed() {}

// ElementType returns the discriminator of the declared element type, or an
// empty string when the element type is an interface. It is a hint only:
// decoding always follows each element's own discriminator.
func (d *SequenceDescriptor) ElementType() string { return d.elem }

// List is the builtin heterogeneous sequence. Its elements may be any mix of
// scalars and registered Codable values.
type List []any

// ListDiscriminator is the discriminator of List.
const ListDiscriminator = "list"

// Discriminator implements Codable.
func (List) Discriminator() string { return ListDiscriminator }

// discriminatorOf returns the discriminator of the zero value of C, or an
// empty string when the zero value cannot report one (interfaces, nil
// pointers).
func discriminatorOf[C Codable]() string {
	var zero C
	disc, _ := discriminatorFor(zero)
	return disc
}

func mustDiscriminator[C Codable]() string {
	disc := discriminatorOf[C]()
	if disc == "" {
		var zero C
		panic(fmt.Sprintf("codec: %T does not report a discriminator on its zero value", zero))
	}
	return disc
}

func elementType[E any]() string {
	var zero E
	switch z := any(zero).(type) {
	case nil:
		return ""
	case Codable:
		disc, _ := discriminatorFor(z)
		return disc
	default:
		if k := scalarKindOf(z); k != KindInvalid {
			return k.String()
		}
		return ""
	}
}

// discriminatorFor returns v's discriminator. It reports false when v is
// nil or a nil pointer; those encode as null.
func discriminatorFor(v Codable) (string, bool) {
	if v == nil {
		return "", false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", false
	}
	return v.Discriminator(), true
}
