package uncert

import (
	"fmt"

	"github.com/qetlabs/uncert/internal/stats"
)

// MeasureOption configures a measurement using the functional options pattern.
type MeasureOption func(*measureConfig)

// measureConfig holds optional attributes for a new measurement.
type measureConfig struct {
	name string
	unit string
}

// WithName attaches a name to the measurement; named values print as
// "<name> = <value-string>".
func WithName(name string) MeasureOption {
	return func(cfg *measureConfig) {
		cfg.name = name
	}
}

// WithUnit attaches a unit string to the measurement. The text is stored
// verbatim; unit parsing and combination are not implemented.
func WithUnit(unit string) MeasureOption {
	return func(cfg *measureConfig) {
		cfg.unit = unit
	}
}

// Measure records a single reading with no uncertainty.
//
//	uncert.Measure(12) // 12 +/- 0
func Measure(value float64, opts ...MeasureOption) *Measured {
	m, _ := MeasureWithError(value, 0, opts...)
	return m
}

// MeasureWithError records a single reading with its uncertainty.
// The uncertainty must be non-negative.
//
//	uncert.MeasureWithError(12, 1) // 12 +/- 1
func MeasureWithError(value, uncertainty float64, opts ...MeasureOption) (*Measured, error) {
	if uncertainty < 0 {
		return nil, &InputError{
			Code:    ErrCodeNegativeError,
			Message: fmt.Sprintf("uncertainty must be non-negative, got %v", uncertainty),
		}
	}
	cfg := applyMeasureOptions(opts)
	return &Measured{val: value, unc: uncertainty, name: cfg.name, unit: cfg.unit}, nil
}

// MeasureSamples records repeated readings of a single quantity. The recorded
// value is the sample mean and the uncertainty is the population standard
// deviation (divisor N, not N-1). The raw samples are preserved on the result
// until its recorded pair is mutated directly.
//
//	uncert.MeasureSamples([]float64{5.6, 4.8, 6.1, 4.9, 5.1}) // 5.3 +/- 0.5
func MeasureSamples(samples []float64, opts ...MeasureOption) (*Measured, error) {
	if len(samples) == 0 {
		return nil, &InputError{
			Code:    ErrCodeEmptySamples,
			Message: "at least one sample is required",
		}
	}
	cfg := applyMeasureOptions(opts)

	raw := make([]float64, len(samples))
	copy(raw, samples)

	return &Measured{
		val:  stats.Mean(raw),
		unc:  stats.StdDev(raw),
		name: cfg.name,
		unit: cfg.unit,
		raw:  raw,
	}, nil
}

func applyMeasureOptions(opts []MeasureOption) measureConfig {
	cfg := measureConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
