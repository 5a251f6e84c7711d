package uncert

import (
	"math"
	"math/rand"

	"github.com/qetlabs/uncert/internal/sample"
	"github.com/qetlabs/uncert/internal/stats"
)

// mcOperand describes how one operand is sampled during Monte Carlo
// propagation: bootstrap with replacement when raw sample data is available,
// otherwise a normal distribution at (center, spread).
type mcOperand struct {
	center float64
	spread float64
	raw    []float64
}

func mcOperandOf(v Value, m Method) mcOperand {
	p := v.methodPair(m)
	op := mcOperand{center: p.Value, spread: p.Err}
	if mv, ok := v.(*Measured); ok {
		if raw, ok := mv.RawData(); ok {
			op.raw = raw
		}
	}
	return op
}

func (o mcOperand) draw(rng *rand.Rand, n int) []float64 {
	if o.raw != nil {
		return sample.Bootstrap(rng, o.raw, n)
	}
	return sample.Normal(rng, o.center, o.spread, n)
}

// monteCarloPair applies the operation elementwise across sampled operand
// draws and takes the sample mean and standard deviation of the results.
// Draws that land outside the operation's domain (NaN results) are discarded.
func monteCarloPair(rng *rand.Rand, def operation, trials int, a, b mcOperand) (Pair, string) {
	xs := a.draw(rng, trials)
	var ys []float64
	if def.arity == 2 {
		ys = b.draw(rng, trials)
	}

	out := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		y := 0.0
		if ys != nil {
			y = ys[i]
		}
		if v := def.eval(xs[i], y); !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return Pair{}, "every Monte Carlo draw fell outside the operation's domain"
	}

	return Pair{Value: stats.Mean(out), Err: stats.StdDev(out)}, ""
}
