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
	"sort"
	"sync"

	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/rxmerr"
)

// Registry maps discriminators to descriptors.
//
// A registry is populated once, typically from package init functions, and
// is only read afterwards. Reads are safe for concurrent use by any number
// of Persist and Restore calls.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Descriptor
}

// NewRegistry returns a registry holding the builtin scalar descriptors and
// the builtin List sequence.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]Descriptor)}
	for _, k := range scalarKinds {
		r.types[k.String()] = &ScalarDescriptor{kind: k}
	}
	list := SequenceOf[List]()
	r.types[list.Discriminator()] = list
	return r
}

// Register adds descriptors to the registry. It fails with an
// *errors.RegistrationError on the first nil descriptor or discriminator
// that is already taken; descriptors before it stay registered.
func (r *Registry) Register(ds ...Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range ds {
		if d == nil {
			return &errors.RegistrationError{Reason: "descriptor is nil"}
		}
		disc := d.Discriminator()
		if disc == "" {
			return &errors.RegistrationError{Reason: "discriminator is empty"}
		}
		if _, exists := r.types[disc]; exists {
			return &errors.RegistrationError{Discriminator: disc, Reason: "already registered"}
		}
		r.types[disc] = d
	}
	return nil
}

// MustRegister is like Register but panics on failure. It is meant for
// package init functions.
func (r *Registry) MustRegister(ds ...Descriptor) {
	if err := r.Register(ds...); err != nil {
		panic(err)
	}
}

// Resolve returns the descriptor registered under disc. An unknown
// discriminator is not an error here; callers decide whether it is fatal.
func (r *Registry) Resolve(disc string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.types[disc]
	return d, ok
}

// Discriminators returns every registered discriminator in sorted order.
func (r *Registry) Discriminators() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked()
}

// Len returns the number of registered descriptors, builtins included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.types)
}

// Validate checks that every type referenced by a registered aggregate field
// or sequence element is itself registered. It reports every dangling
// reference at once. Call it after all init-time registration has run.
func (r *Registry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := rxmerr.NewCollector()
	for _, disc := range r.sortedLocked() {
		switch d := r.types[disc].(type) {
		case *AggregateDescriptor:
			for _, f := range d.fields {
				if f.typ == "" {
					continue
				}
				if _, ok := r.types[f.typ]; !ok {
					c.Append(fmt.Errorf("%s.%s: %w", disc, f.name,
						&errors.UnknownTypeError{Discriminator: f.typ}))
				}
			}
		case *SequenceDescriptor:
			if d.elem == "" {
				continue
			}
			if _, ok := r.types[d.elem]; !ok {
				c.Append(fmt.Errorf("%s element: %w", disc,
					&errors.UnknownTypeError{Discriminator: d.elem}))
			}
		}
	}
	return c.Err()
}

func (r *Registry) sortedLocked() []string {
	out := make([]string, 0, len(r.types))
	for disc := range r.types {
		out = append(out, disc)
	}
	sort.Strings(out)
	return out
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// functions and by codecs built without WithRegistry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds descriptors to the default registry.
func Register(ds ...Descriptor) error {
	return defaultRegistry.Register(ds...)
}

// MustRegister adds descriptors to the default registry and panics on
// failure.
func MustRegister(ds ...Descriptor) {
	defaultRegistry.MustRegister(ds...)
}

// Resolve looks disc up in the default registry.
func Resolve(disc string) (Descriptor, bool) {
	return defaultRegistry.Resolve(disc)
}
