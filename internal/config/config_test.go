package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"

	"github.com/goliatone/go-patientview/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := &config.Config{Indent: "    ", BlockSize: 1024, LogLevel: "info"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PATIENTVIEW_BLOCK_SIZE", "64")
	t.Setenv("PATIENTVIEW_COMPACT", "true")

	cfg, err := config.Load(viper.New(), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BlockSize != 64 || !cfg.Compact {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patientview.yaml")
	if err := os.WriteFile(path, []byte("indent: \"  \"\ntable_attrs: class=\"roster\"\nlog_level: debug\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(viper.New(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Indent != "  " || cfg.TableAttrs != `class="roster"` || cfg.LogLevel != "debug" {
		t.Fatalf("file not applied: %+v", cfg)
	}

	if _, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing config file to fail")
	}
}

func TestValidate(t *testing.T) {
	if err := (&config.Config{BlockSize: 0, LogLevel: "info"}).Validate(); err == nil {
		t.Fatalf("expected non-positive block size to fail")
	}
	if err := (&config.Config{BlockSize: 1, LogLevel: "loud"}).Validate(); err == nil {
		t.Fatalf("expected unknown log level to fail")
	}
}
