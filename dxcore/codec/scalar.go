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
	"math"
	"time"
	"unicode/utf8"

	"dirpx.dev/dxstate/dxcore/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// timestampLayouts are tried in order when text is parsed as a timestamp.
// The first layout is the one the encoder writes.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// EncodeScalar converts a Go scalar into its Node. Supported types are nil,
// bool, int32, int64, decimal.Decimal, string, time.Time and uuid.UUID.
// Any other type yields an *errors.UnsupportedValueTypeError.
func EncodeScalar(v any) (Node, error) {
	return encodeScalarAt(v, "")
}

func encodeScalarAt(v any, path string) (Node, error) {
	switch x := v.(type) {
	case nil:
		return NullNode(), nil
	case bool:
		return BoolNode(x), nil
	case int32:
		return IntNode(int64(x)), nil
	case int64:
		return IntNode(x), nil
	case decimal.Decimal:
		return DecimalNode(x), nil
	case string:
		if !utf8.ValidString(x) {
			return Node{}, &errors.UnsupportedValueTypeError{
				Path:   path,
				GoType: "string",
				Reason: "text is not valid UTF-8",
			}
		}
		return TextNode(x), nil
	case time.Time:
		// MarshalText rejects years outside 0-9999 and offsets RFC 3339
		// cannot express; neither would parse back.
		if _, err := x.MarshalText(); err != nil {
			return Node{}, &errors.UnsupportedValueTypeError{
				Path:   path,
				GoType: "time.Time",
				Reason: err.Error(),
			}
		}
		return TimestampNode(x), nil
	case uuid.UUID:
		return UUIDNode(x), nil
	case int:
		return Node{}, &errors.UnsupportedValueTypeError{
			Path:   path,
			GoType: "int",
			Reason: "platform-sized int has no fixed width, use int32 or int64",
		}
	default:
		return Node{}, &errors.UnsupportedValueTypeError{Path: path, GoType: fmt.Sprintf("%T", v)}
	}
}

// scalarKindOf returns the scalar Kind of a Go value, or KindInvalid.
func scalarKindOf(v any) Kind {
	switch v.(type) {
	case bool:
		return KindBool
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case decimal.Decimal:
		return KindDecimal
	case string:
		return KindText
	case time.Time:
		return KindTimestamp
	case uuid.UUID:
		return KindUUID
	default:
		return KindInvalid
	}
}

// DecodeScalar converts a node into a Go value of the given scalar kind.
// The conversion is strict: text is never sniffed, integers are range
// checked, and a null node is rejected because scalar fields cannot be
// absent. Failures are reported as *errors.ScalarMismatchError.
func DecodeScalar(n Node, kind Kind) (any, error) {
	return decodeScalarAt(n, kind, "")
}

func decodeScalarAt(n Node, kind Kind, path string) (any, error) {
	mismatch := func(err error) error {
		return &errors.ScalarMismatchError{Path: path, Want: kind.String(), Got: n.kind.String(), Err: err}
	}

	switch kind {
	case KindBool:
		if n.kind == NodeBool {
			return n.b, nil
		}
	case KindInt32:
		if n.kind == NodeInt {
			if n.i < math.MinInt32 || n.i > math.MaxInt32 {
				return nil, mismatch(fmt.Errorf("%d overflows int32", n.i))
			}
			return int32(n.i), nil
		}
	case KindInt64:
		if n.kind == NodeInt {
			return n.i, nil
		}
	case KindDecimal:
		switch n.kind {
		case NodeInt:
			return decimal.NewFromInt(n.i), nil
		case NodeDecimal:
			return n.d, nil
		}
	case KindText:
		if n.kind == NodeText {
			return n.s, nil
		}
	case KindTimestamp:
		switch n.kind {
		case NodeTimestamp:
			return n.t, nil
		case NodeText:
			t, ok := parseTimestamp(n.s)
			if !ok {
				return nil, mismatch(fmt.Errorf("%q is not a timestamp", n.s))
			}
			return t, nil
		}
	case KindUUID:
		switch n.kind {
		case NodeUUID:
			return n.u, nil
		case NodeText:
			u, err := uuid.Parse(n.s)
			if err != nil {
				return nil, mismatch(err)
			}
			return u, nil
		}
	}
	return nil, mismatch(nil)
}

// InferScalar decodes an untagged node by inspecting its own shape, the way
// bare top-level entries are restored:
//
//   - numbers become int32 when they fit, else int64 when they fit, else
//     decimal.Decimal; numbers written with a fraction or exponent are
//     always decimal.Decimal;
//   - text is sniffed as a canonical UUID first, then as a timestamp, and
//     only then kept as a string.
//
// The sniffing order is a known footgun: a string that happens to be a valid
// UUID or timestamp comes back as uuid.UUID or time.Time, because the wire
// format does not record which of the three a text value was.
func InferScalar(n Node) (any, error) {
	return inferScalarAt(n, "")
}

func inferScalarAt(n Node, path string) (any, error) {
	switch n.kind {
	case NodeNull:
		return nil, nil
	case NodeBool:
		return n.b, nil
	case NodeInt:
		if n.i >= math.MinInt32 && n.i <= math.MaxInt32 {
			return int32(n.i), nil
		}
		return n.i, nil
	case NodeDecimal:
		return n.d, nil
	case NodeText:
		return sniffText(n.s), nil
	case NodeTimestamp:
		return n.t, nil
	case NodeUUID:
		return n.u, nil
	default:
		return nil, &errors.ScalarMismatchError{Path: path, Want: "scalar", Got: n.kind.String()}
	}
}

func sniffText(s string) any {
	if len(s) == 36 {
		if u, err := uuid.Parse(s); err == nil {
			return u
		}
	}
	if t, ok := parseTimestamp(s); ok {
		return t
	}
	return s
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
