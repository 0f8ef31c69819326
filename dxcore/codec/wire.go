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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"dirpx.dev/dxstate/dxcore/errors"
	"github.com/shopspring/decimal"
)

// Member names of a tagged value on the wire.
const (
	TypeMember  = "TypeDiscriminator"
	ValueMember = "ValueObject"
)

// renderDocument writes members as one JSON object.
func renderDocument(members []Member) []byte {
	var buf bytes.Buffer
	writeObject(&buf, members)
	return buf.Bytes()
}

func writeObject(buf *bytes.Buffer, members []Member) {
	buf.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(buf, m.Name)
		buf.WriteByte(':')
		writeNode(buf, m.Value)
	}
	buf.WriteByte('}')
}

func writeNode(buf *bytes.Buffer, n Node) {
	switch n.kind {
	case NodeBool:
		buf.WriteString(strconv.FormatBool(n.b))
	case NodeInt:
		buf.WriteString(strconv.FormatInt(n.i, 10))
	case NodeDecimal:
		buf.WriteString(formatDecimal(n.d))
	case NodeText:
		writeString(buf, n.s)
	case NodeTimestamp:
		writeString(buf, n.t.Format(time.RFC3339Nano))
	case NodeUUID:
		writeString(buf, n.u.String())
	case NodeTagged:
		writeTagged(buf, n)
	default:
		buf.WriteString("null")
	}
}

func writeTagged(buf *bytes.Buffer, n Node) {
	buf.WriteByte('{')
	writeString(buf, TypeMember)
	buf.WriteByte(':')
	writeString(buf, n.disc)
	buf.WriteByte(',')
	writeString(buf, ValueMember)
	buf.WriteByte(':')
	switch n.payload {
	case PayloadText:
		writeString(buf, n.s)
	case PayloadFields:
		// Aggregates travel as a nested serialized document.
		writeString(buf, string(renderDocument(n.fields)))
	case PayloadItems:
		buf.WriteByte('[')
		for i, it := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeNode(buf, it)
		}
		buf.WriteByte(']')
	case PayloadScalar:
		writeNode(buf, n.Scalar())
	default:
		buf.WriteString("null")
	}
	buf.WriteByte('}')
}

func writeString(buf *bytes.Buffer, s string) {
	// Marshaling a string cannot fail.
	b, _ := json.Marshal(s)
	buf.Write(b)
}

// formatDecimal always writes a fractional part so that a decimal holding an
// integral value is not mistaken for an integer when it is inferred back.
func formatDecimal(d decimal.Decimal) string {
	s := d.String()
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// parseDocument reads exactly one JSON object and returns its members sorted
// by name. The error is a plain description; callers wrap it in the error
// type that fits their level.
func parseDocument(data []byte, path string) ([]Member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &parseError{reason: "invalid JSON", err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &parseError{reason: "trailing data after the top-level object"}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &parseError{reason: "top-level value is " + jsonKind(raw) + ", not an object"}
	}
	return membersFromJSON(obj, path)
}

type parseError struct {
	reason string
	err    error
}

func (e *parseError) Error() string { return e.reason }
func (e *parseError) Unwrap() error { return e.err }

func membersFromJSON(obj map[string]any, path string) ([]Member, error) {
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)

	members := make([]Member, 0, len(names))
	for _, name := range names {
		n, err := nodeFromJSON(obj[name], join(path, name))
		if err != nil {
			return nil, err
		}
		members = append(members, Member{Name: name, Value: n})
	}
	return members, nil
}

// nodeFromJSON converts a value produced by encoding/json (with UseNumber)
// into a Node. Strings stay text: whether they are UUIDs, timestamps or
// nested documents is decided later by whoever knows the expected kind.
//
// An object without the tagged members becomes a tagged node with an empty
// discriminator or PayloadNone; the dictionary level drops such entries and
// every other level rejects them.
func nodeFromJSON(v any, path string) (Node, error) {
	switch x := v.(type) {
	case nil:
		return NullNode(), nil
	case bool:
		return BoolNode(x), nil
	case json.Number:
		return numberNode(x, path)
	case string:
		return TextNode(x), nil
	case map[string]any:
		return taggedFromJSON(x, path)
	default:
		return Node{}, &errors.MalformedPayloadError{
			Path:   path,
			Reason: "unexpected " + jsonKind(v) + " outside a tagged value",
		}
	}
}

func taggedFromJSON(obj map[string]any, path string) (Node, error) {
	disc, _ := obj[TypeMember].(string)
	payload, ok := obj[ValueMember]
	if !ok {
		return Node{kind: NodeTagged, disc: disc, payload: PayloadNone}, nil
	}

	switch p := payload.(type) {
	case string:
		return TaggedText(disc, p), nil
	case []any:
		items := make([]Node, 0, len(p))
		for i, raw := range p {
			n, err := nodeFromJSON(raw, index(path, i))
			if err != nil {
				return Node{}, err
			}
			items = append(items, n)
		}
		return TaggedItems(disc, items), nil
	case map[string]any:
		// Tolerated: a field map inlined instead of serialized as text.
		fields, err := membersFromJSON(p, path)
		if err != nil {
			return Node{}, err
		}
		return TaggedFields(disc, fields), nil
	default:
		n, err := nodeFromJSON(p, path)
		if err != nil {
			return Node{}, err
		}
		return TaggedScalar(disc, n), nil
	}
}

func numberNode(num json.Number, path string) (Node, error) {
	s := num.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntNode(i), nil
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Node{}, &errors.MalformedPayloadError{Path: path, Reason: "unreadable number " + s, Err: err}
	}
	return DecimalNode(d), nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case json.Number:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
