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
	"dirpx.dev/dxstate/dxcore/errors"
	"github.com/klauspost/compress/zstd"
)

// StateCodec is implemented by *Codec and by wrappers around it.
type StateCodec interface {
	Persist(state State) ([]byte, error)
	Restore(data []byte) (State, error)
}

// zstdEncoder and zstdDecoder are shared by every Compressed value; both
// are safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("codec: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("codec: zstd decoder initialization failed: " + err.Error())
	}
}

// Compressed wraps a StateCodec and zstd-compresses its output. It keeps
// the inner codec's empty cases: an empty state persists to empty output and
// empty input restores to an empty State.
type Compressed struct {
	codec StateCodec
}

// NewCompressed returns a compressing wrapper around c.
func NewCompressed(c StateCodec) *Compressed {
	return &Compressed{codec: c}
}

// Persist encodes state with the inner codec and compresses the result.
func (c *Compressed) Persist(state State) ([]byte, error) {
	data, err := c.codec.Persist(state)
	if err != nil || len(data) == 0 {
		return data, err
	}
	return zstdEncoder.EncodeAll(data, nil), nil
}

// Restore decompresses data and decodes it with the inner codec. Input that
// is not a zstd frame is reported as an *errors.MalformedStreamError.
func (c *Compressed) Restore(data []byte) (State, error) {
	if len(data) == 0 {
		return State{}, nil
	}
	raw, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, &errors.MalformedStreamError{Reason: "invalid zstd frame", Err: err}
	}
	return c.codec.Restore(raw)
}
