package main

// Shared flag resolution: host, config, and logger setup for every command.

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/freedomikeppp/mitsubishi-fx5/internal/config"
	uferrors "github.com/freedomikeppp/mitsubishi-fx5/internal/errors"
	"github.com/freedomikeppp/mitsubishi-fx5/internal/fx5"
	"github.com/freedomikeppp/mitsubishi-fx5/internal/logging"
)

type rootFlags struct {
	host       string
	configPath string
	logLevel   string
	logFormat  string
	logFile    string
}

// loadConfig loads --config when given, otherwise the defaults.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	if f.configPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, uferrors.WrapConfigError(err, f.configPath)
	}
	return cfg, nil
}

// logger builds the zap logger; flags override the config.
func (f *rootFlags) logger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Logging.Level
	if f.logLevel != "" {
		level = f.logLevel
	}
	format := cfg.Logging.Format
	if f.logFormat != "" {
		format = f.logFormat
	}
	file := cfg.Logging.File
	if f.logFile != "" {
		file = f.logFile
	}
	return logging.New(level, format, file)
}

// resolveHost picks the controller endpoint: --host wins, then the config.
func (f *rootFlags) resolveHost(cfg *config.Config) (string, error) {
	if f.host != "" {
		return f.host, nil
	}
	if cfg.Host != "" {
		return cfg.Host, nil
	}
	return "", fmt.Errorf("no controller endpoint: pass --host or set host in the config")
}

// clientFor wires up config, logger, and a pooled client for commands that
// talk to one controller.
func (f *rootFlags) clientFor() (*fx5.Client, *config.Config, *zap.Logger, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := f.logger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	host, err := f.resolveHost(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	pool := fx5.NewPool(log)
	client, err := pool.Get(host)
	if err != nil {
		return nil, nil, nil, err
	}
	return client, cfg, log, nil
}
