package citygen

import (
	"math"
	"math/rand"
	"time"
)

// Rand is the source of randomness used by every generation step.
// *math/rand.Rand satisfies it; tests can pass a scripted source to replay
// exact sequences.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64

	// Intn returns a value in [0, n)
	Intn(n int) int
}

// newRand returns a seeded rng, picking a seed if none is given
func newRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// randRange returns a float in [min, max)
func randRange(r Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// randInt returns an int in [min, max] given float bounds; the bounds may be
// fractional (placement borders are) in which case they're floored after scaling.
func randInt(r Rand, min, max float64) int {
	return int(math.Floor(r.Float64()*(max-min+1) + min))
}

// randomDirection picks one of the given directions
func randomDirection(r Rand, in []Direction) Direction {
	return in[r.Intn(len(in))]
}

// randomString picks one of the given strings
func randomString(r Rand, in []string) string {
	return in[r.Intn(len(in))]
}
