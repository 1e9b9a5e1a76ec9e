package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_GetResultsPath(t *testing.T) {
	t.Run("not persisted", func(t *testing.T) {
		cfg := &Config{}
		if p := cfg.GetResultsPath(); p != "" {
			t.Errorf("expected empty path, got %s", p)
		}
	})

	t.Run("relative path is made absolute", func(t *testing.T) {
		cfg := &Config{ResultsFile: "out/results.json"}
		p := cfg.GetResultsPath()
		if !filepath.IsAbs(p) {
			t.Errorf("expected absolute path, got %s", p)
		}
		if filepath.Base(p) != "results.json" {
			t.Errorf("expected results.json, got %s", filepath.Base(p))
		}
	})
}

func TestNew(t *testing.T) {
	t.Setenv(EnvExtension, "")
	os.Unsetenv(EnvExtension)
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvStrict, "")

	cfg := New()

	if cfg.BaseDir != DefaultBaseDir {
		t.Errorf("expected BaseDir %s, got %s", DefaultBaseDir, cfg.BaseDir)
	}

	if cfg.Extension != DefaultExtension {
		t.Errorf("expected Extension %s, got %s", DefaultExtension, cfg.Extension)
	}

	if cfg.Timeout != 0 {
		t.Errorf("expected timeout to be disabled, got %s", cfg.Timeout)
	}

	if cfg.Strict {
		t.Error("expected strict mode to be off by default")
	}
}

func TestNew_Environment(t *testing.T) {
	t.Setenv(EnvExtension, ".txt")
	t.Setenv(EnvTimeout, "5s")
	t.Setenv(EnvStrict, "true")

	cfg := New()

	if cfg.Extension != ".txt" {
		t.Errorf("expected extension .txt, got %s", cfg.Extension)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.Timeout)
	}
	if !cfg.Strict || !cfg.Flags.Strict {
		t.Error("expected strict mode from environment")
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("loads variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte("WCT_TEST_LOADED=yes\n"), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		t.Cleanup(func() { os.Unsetenv("WCT_TEST_LOADED") })

		if err := LoadEnvFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := os.Getenv("WCT_TEST_LOADED"); got != "yes" {
			t.Errorf("expected yes, got %q", got)
		}
	})
}
