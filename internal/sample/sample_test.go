package sample

import (
	"math"
	"math/rand"
	"testing"
)

func TestNormal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	draws := Normal(rng, 10, 2, 50000)
	if len(draws) != 50000 {
		t.Fatalf("got %d draws, want 50000", len(draws))
	}

	sum := 0.0
	for _, x := range draws {
		sum += x
	}
	mean := sum / float64(len(draws))
	if math.Abs(mean-10) > 0.1 {
		t.Errorf("sample mean = %v, want ~10", mean)
	}

	sumSq := 0.0
	for _, x := range draws {
		d := x - mean
		sumSq += d * d
	}
	std := math.Sqrt(sumSq / float64(len(draws)))
	if math.Abs(std-2) > 0.1 {
		t.Errorf("sample std = %v, want ~2", std)
	}
}

func TestNormal_ZeroSpread(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, x := range Normal(rng, 3.5, 0, 100) {
		if x != 3.5 {
			t.Fatalf("zero-spread draw = %v, want 3.5", x)
		}
	}
}

func TestBootstrap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := []float64{5.6, 4.8, 6.1, 4.9, 5.1}
	members := make(map[float64]bool, len(data))
	for _, x := range data {
		members[x] = true
	}

	draws := Bootstrap(rng, data, 1000)
	if len(draws) != 1000 {
		t.Fatalf("got %d draws, want 1000", len(draws))
	}
	for _, x := range draws {
		if !members[x] {
			t.Fatalf("draw %v is not a member of the source data", x)
		}
	}
}
