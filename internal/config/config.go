package config

// Configuration loading and validation for fx5ctl.

import (
	"fmt"
	"net"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/freedomikeppp/mitsubishi-fx5/internal/slmp"
)

// DeviceConfig names one device the watch and ui commands poll.
type DeviceConfig struct {
	Address string `yaml:"address"`
	ASCII   bool   `yaml:"ascii,omitempty"`
	Label   string `yaml:"label,omitempty"`
}

// WatchConfig controls the periodic read loop.
type WatchConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// BenchConfig controls the latency benchmark.
type BenchConfig struct {
	Device     string `yaml:"device"`
	Operations int    `yaml:"operations"`
	IntervalMs int    `yaml:"interval_ms"`
}

// LoggingConfig selects the logger built at startup.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Config is the fx5ctl configuration file.
type Config struct {
	Host    string         `yaml:"host"`
	Devices []DeviceConfig `yaml:"devices,omitempty"`
	Watch   WatchConfig    `yaml:"watch"`
	Bench   BenchConfig    `yaml:"bench"`
	Logging LoggingConfig  `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Host: "192.168.1.10:2555",
		Devices: []DeviceConfig{
			{Address: "D500", Label: "line speed"},
			{Address: "M1600"},
		},
		Watch: WatchConfig{IntervalMs: 500},
		Bench: BenchConfig{Device: "D500", Operations: 100, IntervalMs: 10},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads, parses, and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefault writes the default configuration to path. Refuses to
// overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Watch.IntervalMs == 0 {
		c.Watch.IntervalMs = def.Watch.IntervalMs
	}
	if c.Bench.Device == "" {
		c.Bench.Device = def.Bench.Device
	}
	if c.Bench.Operations == 0 {
		c.Bench.Operations = def.Bench.Operations
	}
	if c.Bench.IntervalMs == 0 {
		c.Bench.IntervalMs = def.Bench.IntervalMs
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Host != "" {
		if _, _, err := net.SplitHostPort(c.Host); err != nil {
			return fmt.Errorf("host %q: %w", c.Host, err)
		}
	}

	for i, dev := range c.Devices {
		if _, err := slmp.ParseDevice(dev.Address); err != nil {
			return fmt.Errorf("devices[%d]: %w", i, err)
		}
	}

	if c.Watch.IntervalMs <= 0 {
		return fmt.Errorf("watch.interval_ms must be positive, got %d", c.Watch.IntervalMs)
	}

	if _, err := slmp.ParseDevice(c.Bench.Device); err != nil {
		return fmt.Errorf("bench.device: %w", err)
	}
	if c.Bench.Operations <= 0 {
		return fmt.Errorf("bench.operations must be positive, got %d", c.Bench.Operations)
	}
	if c.Bench.IntervalMs <= 0 {
		return fmt.Errorf("bench.interval_ms must be positive, got %d", c.Bench.IntervalMs)
	}

	switch c.Logging.Level {
	case "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("logging.level %q: want error, warn, info, or debug", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q: want text or json", c.Logging.Format)
	}

	return nil
}
