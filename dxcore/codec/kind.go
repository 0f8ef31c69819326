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

// Kind is the semantic kind of a value as seen by the codec. Scalar kinds
// name the fixed set of primitive Go types the Scalar Codec understands; the
// remaining kinds name the three shapes an application-defined Codable type
// can take.
type Kind uint8

const (
	// KindInvalid is the zero Kind and never describes a real value.
	KindInvalid Kind = iota

	// KindBool is a Go bool.
	KindBool

	// KindInt32 is a Go int32.
	KindInt32

	// KindInt64 is a Go int64.
	KindInt64

	// KindDecimal is an arbitrary-precision decimal.Decimal.
	KindDecimal

	// KindText is a Go string.
	KindText

	// KindTimestamp is a time.Time.
	KindTimestamp

	// KindUUID is a uuid.UUID.
	KindUUID

	// KindEnum is a registered enumeration, encoded as its variant name.
	KindEnum

	// KindAggregate is a registered aggregate, encoded field by field.
	KindAggregate

	// KindSequence is a registered sequence, encoded element by element.
	KindSequence
)

// String returns the lowercase name of the kind. For scalar kinds the name
// doubles as the builtin discriminator used to tag scalars inside sequences,
// so these strings are part of the wire format and MUST NOT change.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindDecimal:
		return "decimal"
	case KindText:
		return "string"
	case KindTimestamp:
		return "timestamp"
	case KindUUID:
		return "uuid"
	case KindEnum:
		return "enum"
	case KindAggregate:
		return "aggregate"
	case KindSequence:
		return "sequence"
	default:
		return "invalid"
	}
}

// IsScalar reports whether k is one of the primitive kinds handled by the
// Scalar Codec.
func (k Kind) IsScalar() bool {
	return k >= KindBool && k <= KindUUID
}

// scalarKinds lists the scalar kinds in declaration order. It seeds the
// builtin descriptors of every new Registry.
var scalarKinds = []Kind{
	KindBool,
	KindInt32,
	KindInt64,
	KindDecimal,
	KindText,
	KindTimestamp,
	KindUUID,
}
