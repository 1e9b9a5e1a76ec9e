package cli

import (
	"time"

	"wct/internal/config"
)

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		BaseDir:       f.BaseDir,
		Extension:     f.Extension,
		NameFilter:    f.NameFilter,
		DisplayOutput: f.DisplayOutput,
		Progress:      f.Progress,
		Strict:        f.Strict,
		Timeout:       f.Timeout,
		ResultsFile:   f.ResultsFile,
		Format:        f.Format,
		SchemaFile:    f.SchemaFile,
		DryRun:        f.DryRun,
		Stats:         f.Stats,
		Job:           f.Job,
		RootDir:       f.RootDir,
	}
}
