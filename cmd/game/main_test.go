package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Garsondee/No-Loose-Threads/internal/config"
)

func parse(t *testing.T, args ...string) (*cobra.Command, options) {
	t.Helper()
	var opts options
	cmd := &cobra.Command{Use: "test"}
	bindFlags(cmd, &opts)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatal(err)
	}
	return cmd, opts
}

func TestResolveConfig_DefaultsWithoutFlags(t *testing.T) {
	cmd, opts := parse(t)
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != config.Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "threads.toml")
	if err := os.WriteFile(path, []byte("seed = 5\nlevel = 1\nvolume = 0.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd, opts := parse(t, "--config", path, "--level", "2", "--no-sfx")
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 5 || cfg.Volume != 0.3 {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.Level != 2 || cfg.SFX {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestResolveConfig_RejectsBadFlag(t *testing.T) {
	cmd, opts := parse(t, "--level", "9")
	_, err := resolveConfig(cmd, opts)
	if err == nil || !strings.Contains(err.Error(), "level 9") {
		t.Fatalf("err = %v, want level range error", err)
	}
}
