package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/waypoint/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	reg, err := cfg.Registry()
	if err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 3 || !reg.Has("Map 1") {
		t.Errorf("floors = %v", reg.Names())
	}
	if cfg.Server.Addr != DefaultAddr || cfg.Server.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Log.Level != log.InfoLevel {
		t.Errorf("level = %v", cfg.Log.Level)
	}
}

func TestParse(t *testing.T) {
	data := `
[[floors]]
name = "Ground"
ordinal = 0
image = "ground.png"

[[floors]]
name = "Level 3"

[policy]
floor_hop_cost = 12.5

[log]
level = "debug"

[server]
addr = "127.0.0.1:9000"
shutdown_timeout = "3s"
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Floors) != 2 {
		t.Fatalf("floors = %+v", cfg.Floors)
	}
	if cfg.Floors[0].Ordinal != 0 || cfg.Floors[0].Image != "ground.png" {
		t.Errorf("floor 0 = %+v", cfg.Floors[0])
	}
	if cfg.Floors[1].Ordinal != 3 {
		t.Errorf("floor 1 ordinal = %d, want 3 from name", cfg.Floors[1].Ordinal)
	}
	if cfg.Policy.FloorHopCost != 12.5 {
		t.Errorf("hop cost = %v", cfg.Policy.FloorHopCost)
	}
	if cfg.Log.Level != log.DebugLevel {
		t.Errorf("level = %v", cfg.Log.Level)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}

	reg, err := cfg.Registry()
	if err != nil {
		t.Fatal(err)
	}
	p := cfg.WeightPolicy(reg)
	if p.HopCost != 12.5 || p.Floors != reg {
		t.Errorf("policy = %+v", p)
	}
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte("[log]\nlevel = \"warn\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Floors) != 3 {
		t.Errorf("floors = %d, want defaults", len(cfg.Floors))
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[[floors]\n"},
		{"unknown key", "[server]\nport = 80\n"},
		{"duplicate floor", "[[floors]]\nname = \"A 1\"\n[[floors]]\nname = \"A 1\"\n"},
		{"no ordinal", "[[floors]]\nname = \"Roof\"\n"},
		{"blank floor", "[[floors]]\nname = \" \"\nordinal = 1\n"},
		{"negative hop", "[policy]\nfloor_hop_cost = -1.0\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"bad duration", "[server]\nshutdown_timeout = \"soon\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waypoint.toml")
	if err := os.WriteFile(path, []byte("[server]\naddr = \":1234\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":1234" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("missing file: err = %v", err)
	}
}
