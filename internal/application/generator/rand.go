package generator

import "math/rand"

// randBetween devuelve un entero uniforme en [lo, hi], ambos inclusive.
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// uniform devuelve un float uniforme en [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// pick elige un elemento uniforme del slice; panic con slice vacío.
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
