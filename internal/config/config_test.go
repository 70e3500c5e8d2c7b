package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fx5ctl.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
host: 192.168.1.10:2555
devices:
  - address: D500
    label: line speed
  - address: M1600
  - address: D600
    ascii: true
watch:
  interval_ms: 250
bench:
  device: D500
  operations: 50
  interval_ms: 5
logging:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "192.168.1.10:2555" {
		t.Errorf("Host = %q", cfg.Host)
	}
	if len(cfg.Devices) != 3 {
		t.Fatalf("Devices = %d, want 3", len(cfg.Devices))
	}
	if !cfg.Devices[2].ASCII {
		t.Error("Devices[2].ASCII = false, want true")
	}
	if cfg.Watch.IntervalMs != 250 {
		t.Errorf("Watch.IntervalMs = %d, want 250", cfg.Watch.IntervalMs)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "host: 10.0.0.5:2555\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := DefaultConfig()
	if cfg.Watch.IntervalMs != def.Watch.IntervalMs {
		t.Errorf("Watch.IntervalMs = %d, want default %d", cfg.Watch.IntervalMs, def.Watch.IntervalMs)
	}
	if cfg.Bench.Operations != def.Bench.Operations {
		t.Errorf("Bench.Operations = %d, want default %d", cfg.Bench.Operations, def.Bench.Operations)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadRejectsBadDevice(t *testing.T) {
	path := writeConfig(t, `
host: 10.0.0.5:2555
devices:
  - address: D500
  - address: X100
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unsupported device kind")
	}
	if !strings.Contains(err.Error(), "devices[1]") {
		t.Errorf("error %q does not index the bad entry", err.Error())
	}
}

func TestLoadRejectsBadHost(t *testing.T) {
	path := writeConfig(t, "host: 192.168.1.10\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for host without port")
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	path := writeConfig(t, `
host: 10.0.0.5:2555
logging:
  level: loud
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate(): %v", err)
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx5ctl.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != DefaultConfig().Host {
		t.Errorf("Host = %q, want default", cfg.Host)
	}

	if err := WriteDefault(path); err == nil {
		t.Fatal("WriteDefault overwrote an existing file")
	}
}
