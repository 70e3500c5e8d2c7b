package main

import (
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommandRegistration(t *testing.T) {
	root := newRootCmd()

	want := []string{
		"read", "write", "exec", "ping", "watch",
		"bench", "report", "pcap", "ui", "config", "version",
	}
	have := map[string]bool{}
	for _, sub := range root.Commands() {
		have[sub.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"host", "config", "log-level", "log-format", "log-file"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s not registered", name)
		}
	}
}

func TestCommandFlags(t *testing.T) {
	root := newRootCmd()
	tests := []struct {
		command string
		flags   []string
	}{
		{"read", []string{"ascii"}},
		{"write", []string{"ascii"}},
		{"watch", []string{"interval", "count", "ascii"}},
		{"bench", []string{"device", "ops", "interval", "write", "csv", "ascii"}},
		{"report", []string{"csv"}},
		{"pcap", []string{"file", "port", "hex"}},
		{"ui", []string{"interval"}},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			cmd := findCommand(t, root, tt.command)
			for _, flag := range tt.flags {
				if cmd.Flags().Lookup(flag) == nil {
					t.Errorf("%s: flag --%s not registered", tt.command, flag)
				}
			}
		})
	}
}

func TestRequiredFlagsErrors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     func() *cobra.Command
		args    []string
		wantErr string
	}{
		{
			name:    "report missing csv",
			cmd:     newReportCmd,
			args:    nil,
			wantErr: "required flag --csv not set",
		},
		{
			name:    "pcap missing file",
			cmd:     newPcapCmd,
			args:    nil,
			wantErr: "required flag --file not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.cmd()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error: got %q want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfigSubcommands(t *testing.T) {
	cmd := newConfigCmd(&rootFlags{})
	have := map[string]bool{}
	for _, sub := range cmd.Commands() {
		have[sub.Name()] = true
	}
	for _, name := range []string{"init", "show"} {
		if !have[name] {
			t.Errorf("config subcommand %q not registered", name)
		}
	}
}

func TestConfigInitWritesFile(t *testing.T) {
	path := t.TempDir() + "/fx5.yaml"
	cmd := newConfigInitCmd(&rootFlags{configPath: path})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}

	// A second init must refuse to clobber the file.
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error on existing file")
	}
}

func findCommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, sub := range root.Commands() {
		if sub.Name() == name {
			return sub
		}
	}
	t.Fatalf("command %q not found", name)
	return nil
}
