package uncert

import (
	"math"
	"testing"
)

// Monte Carlo results are random; these tests assert convergence bands wide
// enough (>10 standard errors) to be stable across seeds.
func TestMonteCarlo_Convergence(t *testing.T) {
	t.Cleanup(GlobalSettings().Reset)

	a, _ := MeasureWithError(10, 1)
	b, _ := MeasureWithError(5, 0.5)
	wantValue := 15.0
	wantErr := math.Hypot(1, 0.5)

	tests := []struct {
		name     string
		trials   int
		tolValue float64
		tolErr   float64
	}{
		{name: "2000 trials", trials: 2000, tolValue: 0.3, tolErr: 0.2},
		{name: "50000 trials", trials: 50000, tolValue: 0.06, tolErr: 0.04},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := GlobalSettings().SetMonteCarloTrials(tt.trials); err != nil {
				t.Fatal(err)
			}
			d, err := Add(a, b)
			if err != nil {
				t.Fatal(err)
			}

			p, ok := d.Result(MonteCarlo)
			if !ok {
				t.Fatal("no Monte Carlo result")
			}
			if !almostEqual(p.Value, wantValue, tt.tolValue) {
				t.Errorf("value = %v, want %v +/- %v", p.Value, wantValue, tt.tolValue)
			}
			if !almostEqual(p.Err, wantErr, tt.tolErr) {
				t.Errorf("uncertainty = %v, want %v +/- %v", p.Err, wantErr, tt.tolErr)
			}
		})
	}
}

func TestMonteCarlo_BootstrapsRawSamples(t *testing.T) {
	t.Cleanup(GlobalSettings().Reset)
	if err := GlobalSettings().SetMonteCarloTrials(20000); err != nil {
		t.Fatal(err)
	}

	m, err := MeasureSamples([]float64{5.6, 4.8, 6.1, 4.9, 5.1})
	if err != nil {
		t.Fatal(err)
	}

	// Adding an exact zero leaves the distribution alone, so the Monte Carlo
	// pair should reproduce the sample mean and population std.
	d, err := Add(m, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := d.Result(MonteCarlo)
	if !almostEqual(p.Value, 5.3, 0.05) {
		t.Errorf("bootstrap mean = %v, want 5.3 +/- 0.05", p.Value)
	}
	if !almostEqual(p.Err, 0.4858, 0.05) {
		t.Errorf("bootstrap std = %v, want 0.4858 +/- 0.05", p.Err)
	}
}

func TestMonteCarlo_ExactOperands(t *testing.T) {
	t.Cleanup(GlobalSettings().Reset)
	if err := GlobalSettings().SetMonteCarloTrials(1000); err != nil {
		t.Fatal(err)
	}

	// Zero-spread operands draw a constant, so the result is exact.
	d, err := Mul(Measure(3), 4.0)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := d.Result(MonteCarlo)
	if p.Value != 12 || p.Err != 0 {
		t.Errorf("got %v +/- %v, want 12 +/- 0", p.Value, p.Err)
	}
}
