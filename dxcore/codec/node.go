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

// NodeKind identifies the variant held by a Node.
type NodeKind uint8

const (
	NodeNull NodeKind = iota
	NodeBool
	NodeInt
	NodeDecimal
	NodeText
	NodeTimestamp
	NodeUUID
	NodeTagged
)

// String returns a short lowercase name used in error messages.
func (k NodeKind) String() string {
	switch k {
	case NodeNull:
		return "null"
	case NodeBool:
		return "bool"
	case NodeInt:
		return "integer"
	case NodeDecimal:
		return "decimal"
	case NodeText:
		return "text"
	case NodeTimestamp:
		return "timestamp"
	case NodeUUID:
		return "uuid"
	case NodeTagged:
		return "tagged value"
	default:
		return "unknown node"
	}
}

// PayloadKind identifies the payload shape of a tagged Node.
type PayloadKind uint8

const (
	// PayloadNone marks a tagged node whose payload member was missing.
	PayloadNone PayloadKind = iota

	// PayloadFields is an ordered field map (aggregates).
	PayloadFields

	// PayloadItems is an ordered list of nodes (sequences).
	PayloadItems

	// PayloadText is a text payload: an enum variant name, or, for
	// aggregates read from the wire, the not yet parsed nested document.
	PayloadText

	// PayloadScalar is a single scalar node (scalars tagged inside a
	// sequence).
	PayloadScalar
)

// String returns a short lowercase name used in error messages.
func (k PayloadKind) String() string {
	switch k {
	case PayloadFields:
		return "field map"
	case PayloadItems:
		return "list"
	case PayloadText:
		return "text"
	case PayloadScalar:
		return "scalar"
	default:
		return "missing"
	}
}

// Member is one named entry of a field map or of the top-level document.
type Member struct {
	Name  string
	Value Node
}

// Node is the transient, self-describing representation of one value while
// it is being encoded or decoded. Nodes are built and discarded within a
// single Persist or Restore call.
//
// The zero Node is a null node.
type Node struct {
	kind NodeKind

	b bool
	i int64
	d decimal.Decimal
	s string
	t time.Time
	u uuid.UUID

	disc    string
	payload PayloadKind
	fields  []Member
	items   []Node
	scalar  *Node
}

func NullNode() Node { return Node{kind: NodeNull} }
func BoolNode(b bool) Node { return Node{kind: NodeBool, b: b} }
func IntNode(i int64) Node { return Node{kind: NodeInt, i: i} }
func DecimalNode(d decimal.Decimal) Node { return Node{kind: NodeDecimal, d: d} }
func TextNode(s string) Node { return Node{kind: NodeText, s: s} }
func TimestampNode(t time.Time) Node { return Node{kind: NodeTimestamp, t: t} }
func UUIDNode(u uuid.UUID) Node { return Node{kind: NodeUUID, u: u} }

// TaggedText returns a tagged node with a text payload.
func TaggedText(disc, text string) Node {
	return Node{kind: NodeTagged, disc: disc, payload: PayloadText, s: text}
}

// TaggedFields returns a tagged node with a field map payload.
func TaggedFields(disc string, fields []Member) Node {
	return Node{kind: NodeTagged, disc: disc, payload: PayloadFields, fields: fields}
}

// TaggedItems returns a tagged node with a list payload. A nil items slice
// is stored as an empty list.
func TaggedItems(disc string, items []Node) Node {
	if items == nil {
		items = []Node{}
	}
	return Node{kind: NodeTagged, disc: disc, payload: PayloadItems, items: items}
}

// TaggedScalar returns a tagged node wrapping a scalar node.
func TaggedScalar(disc string, scalar Node) Node {
	return Node{kind: NodeTagged, disc: disc, payload: PayloadScalar, scalar: &scalar}
}

func (n Node) Kind() NodeKind { return n.kind }
func (n Node) IsNull() bool { return n.kind == NodeNull }
func (n Node) Bool() bool { return n.b }
func (n Node) Int() int64 { return n.i }
func (n Node) Decimal() decimal.Decimal { return n.d }
func (n Node) Text() string { return n.s }
func (n Node) Time() time.Time { return n.t }
func (n Node) UUID() uuid.UUID { return n.u }

// Discriminator returns the type discriminator of a tagged node.
func (n Node) Discriminator() string { return n.disc }

// Payload returns the payload shape of a tagged node.
func (n Node) Payload() PayloadKind { return n.payload }

// Fields returns the field map of a PayloadFields node.
func (n Node) Fields() []Member { return n.fields }

// Items returns the elements of a PayloadItems node.
func (n Node) Items() []Node { return n.items }

// Scalar returns the wrapped scalar of a PayloadScalar node, or a null node.
func (n Node) Scalar() Node {
	if n.scalar == nil {
		return NullNode()
	}
	return *n.scalar
}

// Field returns the member of a field map payload with the given name.
func (n Node) Field(name string) (Node, bool) {
	for _, m := range n.fields {
		if m.Name == name {
			return m.Value, true
		}
	}
	return Node{}, false
}
