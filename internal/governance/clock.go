package governance

import "time"

// Readings must never decrease.
type Clock interface {
	Now() uint64
}

type systemClock struct{}

func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}

type FixedClock uint64

func (c FixedClock) Now() uint64 {
	return uint64(c)
}
