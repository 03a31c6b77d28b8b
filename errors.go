package multiregex

import "errors"

// ErrProfilingDisabled is returned by the false-positive report when the
// matcher was constructed without WithProfiling.
var ErrProfilingDisabled = errors.New("prematcher profiling not enabled")

// ConfigurationError indicates invalid construction input, such as a
// caller-supplied prematcher violating the format contract. It is
// surfaced at construction time and never recovered internally.
type ConfigurationError struct {
	Err error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "invalid matcher configuration: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// AutomatonError indicates that the prematcher automaton could not be
// built. Validated prematcher sets always build, so this signals an
// invariant violation rather than a condition calling code should plan
// to recover from.
type AutomatonError struct {
	Err error
}

// Error implements the error interface.
func (e *AutomatonError) Error() string {
	return "prematcher automaton construction failed: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *AutomatonError) Unwrap() error {
	return e.Err
}
