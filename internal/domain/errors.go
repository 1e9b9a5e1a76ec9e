package domain

import (
	"errors"
	"fmt"
)

// ConfigurationError is returned when the runner is started without a usable
// command template. It is fatal and raised before any fixture runs.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// FixtureIOError is returned when fixtures cannot be enumerated or read
type FixtureIOError struct {
	Path string
	Err  error
}

func (e *FixtureIOError) Error() string {
	return fmt.Sprintf("fixture io error: %s: %v", e.Path, e.Err)
}

func (e *FixtureIOError) Unwrap() error {
	return e.Err
}

// ErrAbnormalTermination marks a validator that was killed by a signal,
// timed out, or could not be started. It counts as a failed outcome.
var ErrAbnormalTermination = errors.New("subprocess terminated abnormally")

// IsConfigurationError reports whether err is or wraps a ConfigurationError
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
