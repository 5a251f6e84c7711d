package uncert

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Error codes for input and configuration failures.
const (
	ErrCodeInvalidInput  = "invalid_input"
	ErrCodeNegativeError = "negative_error"
	ErrCodeEmptySamples  = "empty_samples"
	ErrCodeNotANumber    = "not_a_number"
	ErrCodeUnknownKey    = "unknown_key"
	ErrCodeInvalidConfig = "invalid_configuration"
	ErrCodeUndefinedOp   = "undefined_operation"
)

// InputError reports malformed arguments to a factory or setter.
// The operation aborts and prior state is unchanged.
type InputError struct {
	Code    string // Error code (e.g., "negative_error")
	Message string // Human-readable description
}

func (e *InputError) Error() string {
	return fmt.Sprintf("uncert: invalid input: %s (%s)", e.Message, e.Code)
}

// ConfigError reports an unrecognized enum-like value passed to a settings setter.
type ConfigError struct {
	Field   string // Settings field (e.g., "error_method")
	Message string // Human-readable description
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("uncert: invalid configuration for %s: %s (%s)", e.Field, e.Message, ErrCodeInvalidConfig)
}

// OperationError reports arithmetic that is mathematically undefined for the
// given operand values (e.g., division by exact zero, log of a non-positive
// value). Exact positive infinity is not an error: it flows through and the
// display layer prints it as "inf".
type OperationError struct {
	Op      Op     // Operation that failed
	Message string // Human-readable description
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("uncert: %s: %s (%s)", e.Op, e.Message, ErrCodeUndefinedOp)
}

// KeyError represents a single offending settings key.
type KeyError struct {
	Key     string // Normalized key path (e.g., "sig_figs.value")
	Code    string // Error code (e.g., "unknown_key")
	Message string // Human-readable description
}

// SettingsError aggregates per-key failures from ApplySettings.
type SettingsError struct {
	KeyErrors []KeyError
}

// Error formats settings errors as a multi-line message.
func (e *SettingsError) Error() string {
	if len(e.KeyErrors) == 0 {
		return "settings validation failed: no errors"
	}

	var b strings.Builder
	if len(e.KeyErrors) == 1 {
		b.WriteString("settings validation failed: 1 error\n")
	} else {
		fmt.Fprintf(&b, "settings validation failed: %d errors\n", len(e.KeyErrors))
	}

	for _, ke := range e.KeyErrors {
		fmt.Fprintf(&b, "  - %s: %s (%s)\n", ke.Key, ke.Code, ke.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Warnings are non-fatal conditions, currently only the demotion of a sampled
// measurement whose recorded pair is mutated directly. The default handler
// writes to stderr.

var (
	warnMu      sync.Mutex
	warnHandler = func(msg string) { fmt.Fprintln(os.Stderr, "Warning: "+msg) }
)

// SetWarningHandler replaces the handler invoked for non-fatal warnings.
// A nil handler silences warnings. Returns the previous handler.
func SetWarningHandler(fn func(msg string)) func(msg string) {
	warnMu.Lock()
	defer warnMu.Unlock()
	prev := warnHandler
	warnHandler = fn
	return prev
}

func warn(format string, args ...any) {
	warnMu.Lock()
	fn := warnHandler
	warnMu.Unlock()
	if fn != nil {
		fn(fmt.Sprintf(format, args...))
	}
}
