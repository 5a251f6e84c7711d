package uncert

import (
	"errors"
	"math"
	"testing"
)

func TestMeasure(t *testing.T) {
	m := Measure(12)
	if m.Value() != 12 {
		t.Errorf("value = %v, want 12", m.Value())
	}
	if m.Err() != 0 {
		t.Errorf("uncertainty = %v, want 0", m.Err())
	}
	if _, ok := m.RawData(); ok {
		t.Error("single reading claims raw sample data")
	}
}

func TestMeasureWithError(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unc   float64
	}{
		{name: "simple", value: 12, unc: 1},
		{name: "zero uncertainty", value: -3.5, unc: 0},
		{name: "fractional", value: 0.002, unc: 0.0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := MeasureWithError(tt.value, tt.unc)
			if err != nil {
				t.Fatal(err)
			}
			if m.Value() != tt.value {
				t.Errorf("value = %v, want %v", m.Value(), tt.value)
			}
			if m.Err() != tt.unc {
				t.Errorf("uncertainty = %v, want %v", m.Err(), tt.unc)
			}
		})
	}
}

func TestMeasureWithError_RejectsNegativeUncertainty(t *testing.T) {
	_, err := MeasureWithError(12, -1)

	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
	if inputErr.Code != ErrCodeNegativeError {
		t.Errorf("code = %q, want %q", inputErr.Code, ErrCodeNegativeError)
	}
}

func TestMeasureSamples(t *testing.T) {
	// Population standard deviation of this list (divisor N):
	// mean = 5.3, variance = 1.18/5 = 0.236, std = 0.48580
	m, err := MeasureSamples([]float64{5.6, 4.8, 6.1, 4.9, 5.1})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(m.Value()-5.3) > 1e-4 {
		t.Errorf("value = %v, want 5.3000", m.Value())
	}
	if math.Abs(m.Err()-0.4858) > 1e-4 {
		t.Errorf("uncertainty = %v, want 0.4858", m.Err())
	}
	if _, ok := m.RawData(); !ok {
		t.Error("sampled measurement has no raw data")
	}
}

func TestMeasureSamples_SingleSample(t *testing.T) {
	m, err := MeasureSamples([]float64{7.5})
	if err != nil {
		t.Fatal(err)
	}
	if m.Value() != 7.5 || m.Err() != 0 {
		t.Errorf("got %v +/- %v, want 7.5 +/- 0", m.Value(), m.Err())
	}
}

func TestMeasureSamples_Empty(t *testing.T) {
	_, err := MeasureSamples(nil)

	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
	if inputErr.Code != ErrCodeEmptySamples {
		t.Errorf("code = %q, want %q", inputErr.Code, ErrCodeEmptySamples)
	}
}

func TestMeasureSamples_CopiesInput(t *testing.T) {
	samples := []float64{1, 2, 3}
	m, err := MeasureSamples(samples)
	if err != nil {
		t.Fatal(err)
	}

	samples[0] = 99

	raw, _ := m.RawData()
	if raw[0] != 1 {
		t.Error("mutating the input slice leaked into the measurement")
	}
}

func TestMeasureOptions(t *testing.T) {
	m, err := MeasureSamples([]float64{1, 2, 3}, WithName("gap"), WithUnit("mm"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "gap" {
		t.Errorf("name = %q, want gap", m.Name())
	}
	if m.Unit() != "mm" {
		t.Errorf("unit = %q, want mm", m.Unit())
	}
}
