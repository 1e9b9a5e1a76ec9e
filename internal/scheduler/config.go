package scheduler

import (
	"os"
	"path/filepath"
	"time"
)

// JobName identifies a scheduled CI job
type JobName string

const (
	// JobBuildDocset builds the doxygen docset, packages it and uploads it
	JobBuildDocset JobName = "build_docset"
)

// Project defaults for the docset job
const (
	DefaultIdentifier  = "com.hackerguild.libwexpr"
	DefaultCMakeTarget = "doxygen"
	DefaultUploadURL   = "http://developer.hackerguild/Documentation/api/documentationUpload.rb"
)

// Environment variables read by ConfigFromEnv
const (
	EnvJob         = "SCHEDULER_JOB"
	EnvHGuild      = "HGUILD"
	EnvProfile     = "HGUILD_PROFILE"
	EnvBuildType   = "HGUILD_BUILDTYPE"
	EnvProjectName = "HGUILD_PROJECT_NAME"
	EnvSourceName  = "HGUILD_SOURCENAME"
)

// Config is everything a job needs. It is assembled once at the program
// edge so Dispatch never reads the process environment.
type Config struct {
	Job         JobName
	HGuild      string // hguild tool used to resolve the build path
	Profile     string
	BuildType   string
	ProjectName string
	SourceName  string // e.g. Wolf@CI

	RootDir     string
	Logo        string // Empty when the project has no logo.png
	Identifier  string
	CMakeTarget string
	UploadURL   string

	Now time.Time
}

// ConfigFromEnv builds a Config from getenv for the project rooted at rootDir
func ConfigFromEnv(getenv func(string) string, rootDir string, now time.Time) Config {
	cfg := Config{
		Job:         JobName(getenv(EnvJob)),
		HGuild:      getenv(EnvHGuild),
		Profile:     getenv(EnvProfile),
		BuildType:   getenv(EnvBuildType),
		ProjectName: getenv(EnvProjectName),
		SourceName:  getenv(EnvSourceName),
		RootDir:     rootDir,
		Identifier:  DefaultIdentifier,
		CMakeTarget: DefaultCMakeTarget,
		UploadURL:   DefaultUploadURL,
		Now:         now,
	}

	logo := filepath.Join(rootDir, "logo.png")
	if _, err := os.Stat(logo); err == nil {
		cfg.Logo = logo
	}

	return cfg
}
