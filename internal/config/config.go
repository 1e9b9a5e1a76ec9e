package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Fixture settings
	BaseDir   string
	Extension string

	// Execution settings
	Timeout time.Duration
	Strict  bool

	// Output settings
	ResultsFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	BaseDir       string
	Extension     string
	NameFilter    string
	DisplayOutput bool
	Progress      bool
	Strict        bool
	Timeout       time.Duration
	ResultsFile   string
	Format        string
	SchemaFile    string
	DryRun        bool
	Stats         bool
	Job           string
	RootDir       string
}

// New creates a new Config with defaults, letting WCT_* environment
// variables replace the built-in ones
func New() *Config {
	cfg := &Config{
		BaseDir:   DefaultBaseDir,
		Extension: DefaultExtension,
		Timeout:   DefaultTimeout,
	}

	if ext, ok := os.LookupEnv(EnvExtension); ok {
		cfg.Extension = ext
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv(EnvStrict); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Strict = b
		}
	}

	cfg.Flags = Flags{
		BaseDir:   cfg.BaseDir,
		Extension: cfg.Extension,
		Timeout:   cfg.Timeout,
		Strict:    cfg.Strict,
	}
	return cfg
}

// LoadEnvFile loads variables from an env file into the process environment.
// A missing file is not an error; variables already set are kept.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Apply copies parsed flags over the current settings
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	c.Extension = flags.Extension
	if flags.Timeout >= 0 {
		c.Timeout = flags.Timeout
	}
	c.Strict = flags.Strict
	c.ResultsFile = flags.ResultsFile
}

// GetResultsPath returns the absolute path of the results file, or "" when
// results are not persisted
func (c *Config) GetResultsPath() string {
	if c.ResultsFile == "" {
		return ""
	}
	if abs, err := filepath.Abs(c.ResultsFile); err == nil {
		return abs
	}
	return c.ResultsFile
}
