package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/chabad360/liteosc/osc"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "liteosc.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[message]
max_args = 4

[server]
address = " 0.0.0.0:9000 "

[log]
level = "debug"
`)
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.Message.MaxArgs = 4
	want.Server.Address = "0.0.0.0:9000"
	want.LogLevel = zerolog.DebugLevel
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoad_ZeroMeansDynamic(t *testing.T) {
	got, err := Load(writeConfig(t, "[message]\nbuffer_capacity = 0\n[bundle]\nbuffer_capacity = 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Message.BufferCapacity != 0 || got.Bundle.BufferCapacity != 0 {
		t.Errorf("capacities = %d, %d, want 0", got.Message.BufferCapacity, got.Bundle.BufferCapacity)
	}
	if got.Message.MaxArgs != Default().Message.MaxArgs {
		t.Errorf("MaxArgs = %d, want the default", got.Message.MaxArgs)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[message\n", "load liteosc config"},
		{"unknown_key", "[message]\nsize = 3\n", "unknown key"},
		{"empty_address", "[client]\naddress = \"  \"\n", "client.address"},
		{"bad_level", "[log]\nlevel = \"loud\"\n", "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestLoad_ExampleFile(t *testing.T) {
	got, err := Load(filepath.Join("testdata", "liteosc.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Server.Address != "127.0.0.1:7001" || got.Message.BufferCapacity != 512 {
		t.Errorf("Load() = %+v", got)
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := Default()
	cfg.Message.BufferCapacity = 8
	cfg.Message.MaxArgs = 1

	m := osc.NewMessage(cfg.MessageOptions(zerolog.Nop())...)
	if err := m.Init("/a"); err != nil {
		t.Fatal(err)
	}
	if err := m.AddInt(1); err == nil {
		t.Error("AddInt() fit in an 8 byte buffer")
	}

	cfg.Bundle.BufferCapacity = 16
	b := osc.NewBundle(cfg.BundleOptions(zerolog.Nop())...)
	b.Init(osc.NewImmediateTimetag())
	m.Init("/a")
	if err := b.AddMessage(m); err == nil || !b.MemoryError() {
		t.Errorf("AddMessage() error = %v on a full bundle", err)
	}
}
