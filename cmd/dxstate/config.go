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
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"dirpx.dev/dxstate/dxcore/codec"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config is the content of the optional YAML config file.
type Config struct {
	// StateFile is where the game state is kept between runs.
	StateFile string `yaml:"state_file"`

	// Compress wraps the state in a zstd frame.
	Compress bool `yaml:"compress"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Seed feeds the deck shuffle. Zero picks a seed from the clock.
	Seed int64 `yaml:"seed"`
}

func defaultConfig() Config {
	return Config{
		StateFile: "dxstate.json",
		LogLevel:  "warn",
	}
}

// loadConfig reads path over the defaults. An empty path yields the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// configFlags holds the values of the flags that mirror Config fields.
type configFlags struct {
	path string
	Config
}

func (f *configFlags) register(fs *pflag.FlagSet) {
	d := defaultConfig()
	fs.StringVar(&f.path, "config", "", "path to a YAML config file")
	fs.StringVar(&f.StateFile, "state-file", d.StateFile, "state file to read and write")
	fs.BoolVar(&f.Compress, "compress", d.Compress, "zstd-compress the state file")
	fs.StringVar(&f.LogLevel, "log-level", d.LogLevel, "log level: debug, info, warn or error")
	fs.Int64Var(&f.Seed, "seed", d.Seed, "shuffle seed, 0 for a random one")
}

// resolve loads the config file and applies every flag set on the command
// line on top of it.
func (f *configFlags) resolve(fs *pflag.FlagSet) (Config, error) {
	cfg, err := loadConfig(f.path)
	if err != nil {
		return cfg, err
	}
	if fs.Changed("state-file") {
		cfg.StateFile = f.StateFile
	}
	if fs.Changed("compress") {
		cfg.Compress = f.Compress
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}
	if fs.Changed("seed") {
		cfg.Seed = f.Seed
	}
	return cfg, nil
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func newCodec(cfg Config, logger *slog.Logger) codec.StateCodec {
	var c codec.StateCodec = codec.New(codec.WithLogger(logger))
	if cfg.Compress {
		c = codec.NewCompressed(c)
	}
	return c
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
