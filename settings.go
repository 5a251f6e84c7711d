package uncert

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Settings defaults.
const (
	DefaultSigFigs          = 1
	DefaultMonteCarloTrials = 10000

	// MaxMonteCarloTrials caps the per-operation sample count so a single
	// propagation cannot take unbounded time.
	MaxMonteCarloTrials = 1000000
)

// Settings is the process-wide store of display and propagation preferences.
// It is read-mostly: all propagation results are computed under every method
// regardless of these settings, which only choose what is presented.
// Safe for concurrent use.
type Settings struct {
	mu          sync.RWMutex
	errorMethod Method
	printStyle  Style
	sigFigMode  SigFigMode
	sigFigValue int
	mcTrials    int
}

// NewSettings creates a settings store with all fields at their defaults.
func NewSettings() *Settings {
	s := &Settings{}
	s.Reset()
	return s
}

var global = NewSettings()

// GlobalSettings returns the store consulted by Value.String and by
// propagation when no explicit store is given.
func GlobalSettings() *Settings {
	return global
}

// Reset restores every field to its documented default: derivative error
// method, default print style, automatic sig-fig mode with 1 significant
// figure, and 10000 Monte Carlo trials.
func (s *Settings) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorMethod = Derivative
	s.printStyle = StyleDefault
	s.sigFigMode = SigFigAutomatic
	s.sigFigValue = DefaultSigFigs
	s.mcTrials = DefaultMonteCarloTrials
}

// SetErrorMethod selects which propagation method derived values present by
// default. Rejects unrecognized methods, leaving state unchanged.
func (s *Settings) SetErrorMethod(m Method) error {
	if !m.Valid() {
		return &ConfigError{
			Field:   "error_method",
			Message: fmt.Sprintf("unknown method %q; supported: %s, %s, %s", string(m), Derivative, MinMax, MonteCarlo),
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorMethod = m
	return nil
}

// SetPrintStyle selects the format of value strings. Rejects unrecognized
// styles, leaving state unchanged.
func (s *Settings) SetPrintStyle(st Style) error {
	if !st.Valid() {
		return &ConfigError{
			Field:   "print_style",
			Message: fmt.Sprintf("unknown style %q; supported: %s, %s, %s", string(st), StyleDefault, StyleLatex, StyleScientific),
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.printStyle = st
	return nil
}

// SetSigFigsForValue sets the number of significant figures shown for values
// and switches the sig-fig mode to SigFigValue. Accepts a positive integer or
// a numeric string; anything else is rejected with no state change.
func (s *Settings) SetSigFigsForValue(n any) error {
	figs, err := coerceSigFigs(n)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sigFigValue = figs
	s.sigFigMode = SigFigValue
	return nil
}

// SetSigFigsForError sets the number of significant figures shown for
// uncertainties and switches the sig-fig mode to SigFigError. Accepts a
// positive integer or a numeric string; anything else is rejected with no
// state change.
func (s *Settings) SetSigFigsForError(n any) error {
	figs, err := coerceSigFigs(n)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sigFigValue = figs
	s.sigFigMode = SigFigError
	return nil
}

// SetMonteCarloTrials sets the per-operation Monte Carlo sample count.
// Rejects non-positive counts and counts above MaxMonteCarloTrials.
func (s *Settings) SetMonteCarloTrials(n int) error {
	if n <= 0 {
		return &ConfigError{Field: "monte_carlo.trials", Message: "trial count must be a positive integer"}
	}
	if n > MaxMonteCarloTrials {
		return &ConfigError{
			Field:   "monte_carlo.trials",
			Message: fmt.Sprintf("trial count %d exceeds cap of %d", n, MaxMonteCarloTrials),
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mcTrials = n
	return nil
}

// ErrorMethod returns the currently selected propagation method.
func (s *Settings) ErrorMethod() Method {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errorMethod
}

// PrintStyle returns the currently selected print style.
func (s *Settings) PrintStyle() Style {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.printStyle
}

// SigFigMode returns the current significant-figure mode.
func (s *Settings) SigFigMode() SigFigMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sigFigMode
}

// SigFigValue returns the current significant-figure count.
func (s *Settings) SigFigValue() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sigFigValue
}

// MonteCarloTrials returns the current Monte Carlo sample count.
func (s *Settings) MonteCarloTrials() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mcTrials
}

// snapshot reads all fields in one lock acquisition for display.
func (s *Settings) snapshot() (Method, Style, SigFigMode, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errorMethod, s.printStyle, s.sigFigMode, s.sigFigValue
}

// coerceSigFigs converts a sig-fig count given as an integer, float, or
// numeric string into a positive int. Floats are truncated.
func coerceSigFigs(v any) (int, error) {
	var n int
	switch t := v.(type) {
	case int:
		n = t
	case int64:
		n = int(t)
	case float64:
		n = int(t)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, &InputError{
				Code:    ErrCodeNotANumber,
				Message: fmt.Sprintf("significant figures must be an integer, got %q", t),
			}
		}
		n = parsed
	default:
		return 0, &InputError{
			Code:    ErrCodeNotANumber,
			Message: fmt.Sprintf("significant figures must be an integer, got %T", v),
		}
	}
	if n <= 0 {
		return 0, &InputError{
			Code:    ErrCodeInvalidInput,
			Message: "significant figures must be greater than 0",
		}
	}
	return n, nil
}
