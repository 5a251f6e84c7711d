package uncert

import (
	"context"
	"fmt"
)

// Settings keys recognized by ApplySettings.
const (
	KeyErrorMethod      = "error_method"
	KeyPrintStyle       = "print_style"
	KeySigFigMode       = "sig_figs.mode"
	KeySigFigValue      = "sig_figs.value"
	KeyMonteCarloTrials = "monte_carlo.trials"
)

// settingsOverrides stages validated values before any store mutation.
type settingsOverrides struct {
	errorMethod Optional[Method]
	printStyle  Optional[Style]
	sigFigMode  Optional[SigFigMode]
	sigFigValue Optional[int]
	mcTrials    Optional[int]
}

// ApplySettings loads overrides from all sources and applies them to the
// store. Sources are processed in order (later override earlier). The merged
// set is validated as a whole first: unknown keys and invalid values are
// collected into a single SettingsError and the store is left untouched.
func ApplySettings(ctx context.Context, s *Settings, sources ...SettingsSource) error {
	merged := make(map[string]any)
	for _, source := range sources {
		data, err := source.Load(ctx)
		if err != nil {
			return fmt.Errorf("load settings source %s: %w", source.Name(), err)
		}
		for key, value := range data {
			merged[key] = value
		}
	}

	var overrides settingsOverrides
	var keyErrors []KeyError
	for key, value := range merged {
		if ke := stageOverride(&overrides, key, value); ke != nil {
			keyErrors = append(keyErrors, *ke)
		}
	}
	if len(keyErrors) > 0 {
		return &SettingsError{KeyErrors: keyErrors}
	}

	s.applyOverrides(overrides)
	return nil
}

// stageOverride validates one key/value and records it in the staged set.
func stageOverride(o *settingsOverrides, key string, value any) *KeyError {
	switch key {
	case KeyErrorMethod:
		m := Method(asString(value))
		if !m.Valid() {
			return &KeyError{Key: key, Code: ErrCodeInvalidConfig,
				Message: fmt.Sprintf("unknown error method %v", value)}
		}
		o.errorMethod = Optional[Method]{Value: m, Set: true}

	case KeyPrintStyle:
		st := Style(asString(value))
		if !st.Valid() {
			return &KeyError{Key: key, Code: ErrCodeInvalidConfig,
				Message: fmt.Sprintf("unknown print style %v", value)}
		}
		o.printStyle = Optional[Style]{Value: st, Set: true}

	case KeySigFigMode:
		m := SigFigMode(asString(value))
		if !m.Valid() {
			return &KeyError{Key: key, Code: ErrCodeInvalidConfig,
				Message: fmt.Sprintf("unknown sig-fig mode %v", value)}
		}
		o.sigFigMode = Optional[SigFigMode]{Value: m, Set: true}

	case KeySigFigValue:
		n, err := coerceSigFigs(value)
		if err != nil {
			return &KeyError{Key: key, Code: ErrCodeInvalidConfig, Message: err.Error()}
		}
		o.sigFigValue = Optional[int]{Value: n, Set: true}

	case KeyMonteCarloTrials:
		n, err := coerceSigFigs(value) // same coercion rules: positive integer
		if err != nil {
			return &KeyError{Key: key, Code: ErrCodeInvalidConfig, Message: err.Error()}
		}
		if n > MaxMonteCarloTrials {
			return &KeyError{Key: key, Code: ErrCodeInvalidConfig,
				Message: fmt.Sprintf("trial count %d exceeds cap of %d", n, MaxMonteCarloTrials)}
		}
		o.mcTrials = Optional[int]{Value: n, Set: true}

	default:
		return &KeyError{Key: key, Code: ErrCodeUnknownKey, Message: "unknown settings key"}
	}
	return nil
}

// applyOverrides writes a validated override set under one lock acquisition.
// Unlike the sig-fig setters, a staged sig-fig count does not flip the mode;
// sources state the mode explicitly if they want it changed.
func (s *Settings) applyOverrides(o settingsOverrides) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := o.errorMethod.Get(); ok {
		s.errorMethod = m
	}
	if st, ok := o.printStyle.Get(); ok {
		s.printStyle = st
	}
	if m, ok := o.sigFigMode.Get(); ok {
		s.sigFigMode = m
	}
	if n, ok := o.sigFigValue.Get(); ok {
		s.sigFigValue = n
	}
	if n, ok := o.mcTrials.Get(); ok {
		s.mcTrials = n
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
