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

package main

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dirpx.dev/dxstate/dxcore/codec"
)

// readState restores the state file at path. A missing file is an empty
// state.
func readState(c codec.StateCodec, path string) (codec.State, error) {
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return codec.State{}, nil
	}
	if err != nil {
		return nil, err
	}

	state, err := c.Restore(data)
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", path, err)
	}
	return state, nil
}

// writeState persists state to path through a temporary file in the same
// directory, so a failed run never leaves a truncated state behind.
func writeState(c codec.StateCodec, path string, state codec.State) error {
	data, err := c.Persist(state)
	if err != nil {
		return fmt.Errorf("persist %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
