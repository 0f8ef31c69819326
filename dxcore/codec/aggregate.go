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
	stderrors "errors"
	"fmt"

	"dirpx.dev/dxstate/dxcore/errors"
)

// encodeAggregate writes the fields of v in declaration order. Absent
// nullable fields are skipped; scalar and enum fields are always written.
// A nil *T encodes as a null node.
func (e encoder) encodeAggregate(d *AggregateDescriptor, v any, path string) (Node, error) {
	p, isNil, ok := d.pointer(v)
	if !ok {
		return Node{}, &errors.UnsupportedValueTypeError{
			Path:   path,
			GoType: fmt.Sprintf("%T", v),
			Reason: fmt.Sprintf("discriminator %q belongs to another type", d.disc),
		}
	}
	if isNil {
		return NullNode(), nil
	}

	members := make([]Member, 0, len(d.fields))
	for _, f := range d.fields {
		if f.absent != nil && f.absent(p) {
			continue
		}
		n, err := e.encodeValue(f.get(p), join(path, f.name))
		if err != nil {
			return Node{}, err
		}
		members = append(members, Member{Name: f.name, Value: n})
	}
	return TaggedFields(d.disc, members), nil
}

// decodeAggregate builds a T from a field map payload. The payload may be
// already parsed or still a nested document in text form, which is how
// aggregates arrive from the wire.
//
// Fields missing from the payload keep their zero value and members the
// descriptor does not declare are ignored.
func (d decoder) decodeAggregate(ds *AggregateDescriptor, n Node, path string) (any, error) {
	var members []Member
	switch n.payload {
	case PayloadFields:
		members = n.fields
	case PayloadText:
		m, err := parseDocument([]byte(n.s), path)
		if err != nil {
			var pe *parseError
			if stderrors.As(err, &pe) {
				return nil, &errors.MalformedPayloadError{
					Path:          path,
					Discriminator: ds.disc,
					Reason:        "nested document: " + pe.reason,
					Err:           pe.err,
				}
			}
			return nil, err
		}
		members = m
	default:
		return nil, &errors.MalformedPayloadError{
			Path:          path,
			Discriminator: ds.disc,
			Reason:        "expected field map payload, got " + n.payload.String(),
		}
	}

	p := ds.newPtr()
	for _, m := range members {
		f, ok := ds.field(m.Name)
		if !ok {
			continue
		}
		fp := join(path, m.Name)
		v, err := d.decodeField(f, m.Value, fp)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		if !f.set(p, v) {
			return nil, &errors.MalformedPayloadError{
				Path:          fp,
				Discriminator: ds.disc,
				Reason:        fmt.Sprintf("%T is not assignable to field %q", v, f.name),
			}
		}
	}
	return ds.load(p), nil
}

// decodeField decodes one field node by the field's declared kind. A nil
// result with a nil error means the field was null and stays at its zero
// value.
func (d decoder) decodeField(f field, n Node, path string) (any, error) {
	if f.kind.IsScalar() {
		return decodeScalarAt(n, f.kind, path)
	}
	if n.IsNull() {
		if f.kind == KindEnum {
			return nil, &errors.MalformedPayloadError{Path: path, Discriminator: f.typ, Reason: "enum field cannot be null"}
		}
		return nil, nil
	}

	// Enum fields also accept the bare variant name.
	if f.kind == KindEnum && n.kind == NodeText {
		desc, ok := d.reg.Resolve(f.typ)
		if !ok {
			return nil, &errors.UnknownTypeError{Path: path, Discriminator: f.typ}
		}
		ed, ok := desc.(*EnumDescriptor)
		if !ok {
			return nil, &errors.MalformedPayloadError{Path: path, Discriminator: f.typ, Reason: "field type is not an enum"}
		}
		return decodeEnum(ed, n.s, path)
	}

	if n.kind != NodeTagged {
		return nil, &errors.MalformedPayloadError{
			Path:   path,
			Reason: fmt.Sprintf("expected tagged %s, got %s", f.kind, n.kind),
		}
	}
	desc, ok := d.reg.Resolve(n.disc)
	if !ok {
		return nil, &errors.UnknownTypeError{Path: path, Discriminator: n.disc}
	}
	if !fieldAccepts(f.kind, desc.Kind()) {
		return nil, &errors.MalformedPayloadError{
			Path:          path,
			Discriminator: n.disc,
			Reason:        fmt.Sprintf("%s field cannot hold %s value", f.kind, desc.Kind()),
		}
	}
	return d.decodeWith(desc, n, path)
}

// fieldAccepts reports whether a value of kind got may be stored in a field
// declared with kind want. Aggregate fields may hold any Codable; the setter
// performs the final type check.
func fieldAccepts(want, got Kind) bool {
	if got.IsScalar() {
		return false
	}
	if want == KindAggregate {
		return true
	}
	return want == got
}
