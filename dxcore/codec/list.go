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
	"fmt"

	"dirpx.dev/dxstate/dxcore/errors"
)

// encodeList tags every element with its own discriminator. Scalars use the
// builtin scalar discriminators and nil elements are written as null.
func (e encoder) encodeList(d *SequenceDescriptor, v any, path string) (Node, error) {
	items, ok := d.items(v)
	if !ok {
		return Node{}, &errors.UnsupportedValueTypeError{
			Path:   path,
			GoType: fmt.Sprintf("%T", v),
			Reason: fmt.Sprintf("discriminator %q belongs to another type", d.disc),
		}
	}

	nodes := make([]Node, 0, len(items))
	for i, it := range items {
		n, err := e.encodeValue(it, index(path, i))
		if err != nil {
			return Node{}, err
		}
		if k := scalarKindOf(it); k != KindInvalid {
			n = TaggedScalar(k.String(), n)
		}
		nodes = append(nodes, n)
	}
	return TaggedItems(d.disc, nodes), nil
}

// decodeList decodes every element by its own discriminator, never by the
// sequence's declared element type, and then checks that the result fits
// the sequence. Elements whose discriminator is not registered are dropped
// and the remaining elements keep their order.
func (d decoder) decodeList(ds *SequenceDescriptor, n Node, path string) (any, error) {
	if n.payload != PayloadItems {
		return nil, &errors.MalformedPayloadError{
			Path:          path,
			Discriminator: ds.disc,
			Reason:        "expected list payload, got " + n.payload.String(),
		}
	}

	items := make([]any, 0, len(n.items))
	origin := make([]int, 0, len(n.items))
	for i, it := range n.items {
		ip := index(path, i)
		switch {
		case it.IsNull():
			items = append(items, nil)
			origin = append(origin, i)
			continue
		case it.kind != NodeTagged:
			return nil, &errors.MalformedPayloadError{
				Path:          ip,
				Discriminator: ds.disc,
				Reason:        "list element is an untagged " + it.kind.String(),
			}
		}

		desc, ok := d.reg.Resolve(it.disc)
		if !ok || it.payload == PayloadNone {
			d.drop(ip, it, ok)
			continue
		}
		v, err := d.decodeWith(desc, it, ip)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		origin = append(origin, i)
	}

	out, bad := ds.build(items)
	if bad >= 0 {
		return nil, &errors.MalformedPayloadError{
			Path:          index(path, origin[bad]),
			Discriminator: ds.disc,
			Reason:        fmt.Sprintf("%T is not a valid element", items[bad]),
		}
	}
	return out, nil
}
