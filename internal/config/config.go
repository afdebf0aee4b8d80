// Package config loads the TOML settings of the liteosc example programs.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/chabad360/liteosc/internal/logging"
	"github.com/chabad360/liteosc/osc"
)

// Config holds the settings shared by the example programs.
type Config struct {
	Message  MessageConfig
	Bundle   BundleConfig
	Server   EndpointConfig
	Client   EndpointConfig
	LogLevel zerolog.Level
}

// MessageConfig sizes the Message instances. Zero means grow on demand.
type MessageConfig struct {
	BufferCapacity int
	MaxArgs        int
}

// BundleConfig sizes the Bundle instances. Zero means grow on demand.
type BundleConfig struct {
	BufferCapacity int
}

// EndpointConfig is a UDP host:port.
type EndpointConfig struct {
	Address string
}

type fileConfig struct {
	Message struct {
		BufferCapacity int `toml:"buffer_capacity"`
		MaxArgs        int `toml:"max_args"`
	} `toml:"message"`
	Bundle struct {
		BufferCapacity int `toml:"buffer_capacity"`
	} `toml:"bundle"`
	Server struct {
		Address string `toml:"address"`
	} `toml:"server"`
	Client struct {
		Address string `toml:"address"`
	} `toml:"client"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Default returns fixed-capacity buffers large enough for a UDP datagram
// and the loopback endpoints used by the examples.
func Default() Config {
	return Config{
		Message:  MessageConfig{BufferCapacity: 1024, MaxArgs: 32},
		Bundle:   BundleConfig{BufferCapacity: 8192},
		Server:   EndpointConfig{Address: "127.0.0.1:8765"},
		Client:   EndpointConfig{Address: "127.0.0.1:8765"},
		LogLevel: zerolog.InfoLevel,
	}
}

// Load decodes the file at path over Default. Keys missing from the file
// keep their default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load liteosc config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load liteosc config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("message", "buffer_capacity") {
		cfg.Message.BufferCapacity = raw.Message.BufferCapacity
	}
	if meta.IsDefined("message", "max_args") {
		cfg.Message.MaxArgs = raw.Message.MaxArgs
	}
	if meta.IsDefined("bundle", "buffer_capacity") {
		cfg.Bundle.BufferCapacity = raw.Bundle.BufferCapacity
	}

	if meta.IsDefined("server", "address") {
		addr := strings.TrimSpace(raw.Server.Address)
		if addr == "" {
			return Config{}, fmt.Errorf("parse server.address: empty")
		}
		cfg.Server.Address = addr
	}
	if meta.IsDefined("client", "address") {
		addr := strings.TrimSpace(raw.Client.Address)
		if addr == "" {
			return Config{}, fmt.Errorf("parse client.address: empty")
		}
		cfg.Client.Address = addr
	}

	if meta.IsDefined("log", "level") {
		lvl, ok := logging.ParseLevel(raw.Log.Level)
		if !ok {
			return Config{}, fmt.Errorf("parse log.level: unknown level %q", raw.Log.Level)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// MessageOptions returns the options for a Message built from cfg, logging
// to l.
func (cfg Config) MessageOptions(l zerolog.Logger) []osc.Option {
	return []osc.Option{
		osc.WithBufferCapacity(cfg.Message.BufferCapacity),
		osc.WithMaxArgs(cfg.Message.MaxArgs),
		osc.WithLogger(l),
	}
}

// BundleOptions returns the options for a Bundle built from cfg.
func (cfg Config) BundleOptions(l zerolog.Logger) []osc.Option {
	return []osc.Option{
		osc.WithBufferCapacity(cfg.Bundle.BufferCapacity),
		osc.WithLogger(l),
	}
}
