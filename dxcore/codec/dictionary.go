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
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"unicode/utf8"

	"dirpx.dev/dxstate/dxcore/errors"
)

// State is the string-keyed mapping persisted between requests. Values are
// supported scalars, registered Codable values, or nil.
type State map[string]any

// Codec persists and restores State values against one Registry.
//
// A Codec is immutable after New returns and is safe for concurrent use.
type Codec struct {
	registry *Registry
	logger   *slog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithRegistry makes the codec resolve discriminators against r instead of
// the default registry.
func WithRegistry(r *Registry) Option {
	return func(c *Codec) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithLogger sets the logger that receives a Debug record for every entry
// or list element dropped on Restore. The default logger discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *Codec) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a Codec using the default registry unless configured
// otherwise.
func New(opts ...Option) *Codec {
	c := &Codec{
		registry: Default(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the registry the codec resolves against.
func (c *Codec) Registry() *Registry {
	return c.registry
}

// Persist encodes state into a single JSON object. Keys are written in
// sorted order, so equal states always produce equal bytes. An empty or nil
// state produces empty output.
//
// If any value, at any depth, has no encoding path, Persist returns an
// *errors.UnsupportedValueTypeError whose Path starts with the offending key,
// and no bytes.
func (c *Codec) Persist(state State) ([]byte, error) {
	if len(state) == 0 {
		return []byte{}, nil
	}

	keys := make([]string, 0, len(state))
	for k := range state {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	enc := encoder{reg: c.registry}
	members := make([]Member, 0, len(keys))
	for _, k := range keys {
		if !utf8.ValidString(k) {
			return nil, &errors.UnsupportedValueTypeError{
				Path:   strconv.Quote(k),
				GoType: fmt.Sprintf("%T", state[k]),
				Reason: "key is not valid UTF-8",
			}
		}
		n, err := enc.encodeValue(state[k], k)
		if err != nil {
			return nil, err
		}
		members = append(members, Member{Name: k, Value: n})
	}
	return renderDocument(members), nil
}

// Restore decodes bytes produced by Persist. Empty input yields an empty
// State.
//
// Bare entries are inferred with InferScalar. Tagged entries are decoded by
// the descriptor registered under their discriminator. A tagged entry whose
// discriminator is not registered, or which lacks one of its two members, is
// dropped and logged at Debug; every other failure aborts the restore.
func (c *Codec) Restore(data []byte) (State, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return State{}, nil
	}

	members, err := parseDocument(data, "")
	if err != nil {
		var pe *parseError
		if stderrors.As(err, &pe) {
			return nil, &errors.MalformedStreamError{Reason: pe.reason, Err: pe.err}
		}
		return nil, err
	}

	dec := decoder{reg: c.registry, logger: c.logger}
	state := make(State, len(members))
	for _, m := range members {
		n := m.Value
		if n.kind != NodeTagged {
			v, err := inferScalarAt(n, m.Name)
			if err != nil {
				return nil, err
			}
			state[m.Name] = v
			continue
		}

		desc, ok := c.registry.Resolve(n.disc)
		if !ok || n.disc == "" || n.payload == PayloadNone {
			dec.drop(m.Name, n, ok)
			continue
		}
		v, err := dec.decodeWith(desc, n, m.Name)
		if err != nil {
			return nil, err
		}
		state[m.Name] = v
	}
	return state, nil
}

var std = New()

// Persist encodes state with a codec bound to the default registry.
func Persist(state State) ([]byte, error) {
	return std.Persist(state)
}

// Restore decodes data with a codec bound to the default registry.
func Restore(data []byte) (State, error) {
	return std.Restore(data)
}

type encoder struct {
	reg *Registry
}

// encodeValue dispatches on the Go value: Codable values go through the
// descriptor registered under their discriminator, everything else must be
// a supported scalar.
func (e encoder) encodeValue(v any, path string) (Node, error) {
	c, ok := v.(Codable)
	if !ok {
		return encodeScalarAt(v, path)
	}

	disc, ok := discriminatorFor(c)
	if !ok {
		return NullNode(), nil
	}
	desc, ok := e.reg.Resolve(disc)
	if !ok {
		return Node{}, &errors.UnsupportedValueTypeError{
			Path:   path,
			GoType: fmt.Sprintf("%T", v),
			Reason: fmt.Sprintf("discriminator %q is not registered", disc),
		}
	}

	switch d := desc.(type) {
	case *EnumDescriptor:
		text, err := enumText(c)
		if err != nil {
			return Node{}, fmt.Errorf("%s: %w", path, err)
		}
		if !utf8.ValidString(text) {
			return Node{}, &errors.UnsupportedValueTypeError{
				Path:   path,
				GoType: fmt.Sprintf("%T", v),
				Reason: "variant name is not valid UTF-8",
			}
		}
		return TaggedText(d.disc, text), nil
	case *AggregateDescriptor:
		return e.encodeAggregate(d, v, path)
	case *SequenceDescriptor:
		return e.encodeList(d, v, path)
	default:
		return Node{}, &errors.UnsupportedValueTypeError{
			Path:   path,
			GoType: fmt.Sprintf("%T", v),
			Reason: fmt.Sprintf("discriminator %q names a builtin scalar", disc),
		}
	}
}

type decoder struct {
	reg    *Registry
	logger *slog.Logger
}

// decodeWith decodes a tagged node with an already resolved descriptor.
func (d decoder) decodeWith(desc Descriptor, n Node, path string) (any, error) {
	switch ds := desc.(type) {
	case *ScalarDescriptor:
		switch n.payload {
		case PayloadScalar:
			return decodeScalarAt(*n.scalar, ds.kind, path)
		case PayloadText:
			return decodeScalarAt(TextNode(n.s), ds.kind, path)
		}
	case *EnumDescriptor:
		if n.payload == PayloadText {
			return decodeEnum(ds, n.s, path)
		}
	case *AggregateDescriptor:
		return d.decodeAggregate(ds, n, path)
	case *SequenceDescriptor:
		return d.decodeList(ds, n, path)
	}
	return nil, &errors.MalformedPayloadError{
		Path:          path,
		Discriminator: desc.Discriminator(),
		Reason:        fmt.Sprintf("%s payload does not fit kind %s", n.payload, desc.Kind()),
	}
}

func decodeEnum(ds *EnumDescriptor, variant, path string) (any, error) {
	v, err := ds.Parse(variant)
	if err != nil {
		return nil, &errors.MalformedPayloadError{
			Path:          path,
			Discriminator: ds.disc,
			Reason:        fmt.Sprintf("unknown variant %q", variant),
			Err:           err,
		}
	}
	return v, nil
}

// drop logs a tagged value that is skipped instead of failing the restore.
func (d decoder) drop(path string, n Node, resolved bool) {
	reason := "discriminator is not registered"
	switch {
	case n.disc == "":
		reason = "missing " + TypeMember
	case resolved && n.payload == PayloadNone:
		reason = "missing " + ValueMember
	}
	d.logger.Debug("dropping tagged value",
		"path", path,
		"discriminator", n.disc,
		"reason", reason,
	)
}
