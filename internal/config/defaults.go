package config

import "time"

const (
	// DefaultBaseDir is the directory holding the success/ and fail/ fixture folders
	DefaultBaseDir = "."
	// DefaultExtension is the fixture file extension
	DefaultExtension = ".wexpr"
	// DefaultTimeout disables the per-fixture timeout
	DefaultTimeout time.Duration = 0
	// DefaultEnvFile is loaded before flags are applied, if present
	DefaultEnvFile = ".env"
	// Placeholder marks where the fixture path goes in the command template
	Placeholder = "{}"
	// DisplayOutputToken is accepted anywhere in the run arguments
	DisplayOutputToken = "--displayOutput"
)

// Environment variables that provide defaults for run flags
const (
	EnvExtension = "WCT_EXT"
	EnvTimeout   = "WCT_TIMEOUT"
	EnvStrict    = "WCT_STRICT"
)
