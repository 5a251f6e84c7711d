package uncert

import "context"

// Method identifies an error-propagation strategy.
type Method string

// Recognized propagation methods. Every operation computes all three; the
// method only selects which result is presented.
const (
	Derivative Method = "derivative"
	MinMax     Method = "min_max"
	MonteCarlo Method = "monte_carlo"
)

// Valid reports whether m is one of the recognized propagation methods.
func (m Method) Valid() bool {
	return m == Derivative || m == MinMax || m == MonteCarlo
}

// Style identifies a print format for value/uncertainty pairs.
type Style string

// Recognized print styles.
const (
	StyleDefault    Style = "default"
	StyleLatex      Style = "latex"
	StyleScientific Style = "scientific"
)

// Valid reports whether s is one of the recognized print styles.
func (s Style) Valid() bool {
	return s == StyleDefault || s == StyleLatex || s == StyleScientific
}

// SigFigMode controls which quantity anchors significant-figure rounding.
type SigFigMode string

// Recognized significant-figure modes.
const (
	SigFigAutomatic SigFigMode = "automatic"
	SigFigValue     SigFigMode = "value"
	SigFigError     SigFigMode = "error"
)

// Valid reports whether m is one of the recognized sig-fig modes.
func (m SigFigMode) Valid() bool {
	return m == SigFigAutomatic || m == SigFigValue || m == SigFigError
}

// Pair is a value with its uncertainty. Err is never negative.
type Pair struct {
	Value float64
	Err   float64
}

// SettingsSource provides settings overrides from backends (env vars, files).
// Keys must be normalized to lowercase dot-separated paths (e.g., "sig_figs.value").
type SettingsSource interface {
	// Load returns overrides as a flat map. Missing optional sources should return empty map.
	Load(ctx context.Context) (map[string]any, error)

	// Name returns a human-readable identifier for error messages.
	Name() string
}

// Optional distinguishes "not set" from "zero value".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Get returns the wrapped value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrDefault returns the wrapped value or the provided default.
func (o Optional[T]) OrDefault(defaultVal T) T {
	if o.Set {
		return o.Value
	}
	return defaultVal
}
