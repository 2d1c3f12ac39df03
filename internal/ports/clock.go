package ports

import (
	"math/rand/v2"
	"time"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Picker returns a uniformly random index in [0, n).
type Picker interface {
	IntN(n int) int
}

type RandomPicker struct{}

func (RandomPicker) IntN(n int) int {
	return rand.IntN(n)
}
