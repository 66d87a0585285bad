// Package progress defines producers of loading progress values in the 0..100 range.
package progress

import (
	"context"
	"math/rand/v2"
	"time"
)

const (
	Min = 0
	Max = 100

	DefaultInterval = 300 * time.Millisecond
	DefaultMaxStep  = 15.0
)

// Source produces progress percentages. The channel is closed once Max has
// been sent or ctx is done. Values never decrease.
type Source interface {
	Updates(ctx context.Context) <-chan int
}

// Clamp bounds v to [Min, Max]
func Clamp(v int) int {
	if v < Min {
		return Min
	}
	if v > Max {
		return Max
	}
	return v
}

// JitterSource simulates progress: every Interval it adds a random step in
// [0, MaxStep) to a counter. The counter may overshoot Max; emitted values do not.
type JitterSource struct {
	Interval time.Duration
	MaxStep  float64

	// Float64 returns a value in [0, 1). Defaults to math/rand/v2.Float64.
	Float64 func() float64
}

func NewJitterSource() *JitterSource {
	return &JitterSource{
		Interval: DefaultInterval,
		MaxStep:  DefaultMaxStep,
		Float64:  rand.Float64,
	}
}

func (s *JitterSource) Updates(ctx context.Context) <-chan int {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	maxStep := s.MaxStep
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	float64Fn := s.Float64
	if float64Fn == nil {
		float64Fn = rand.Float64
	}

	out := make(chan int)
	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		counter := 0.0
		last := Min
		if !send(ctx, out, last) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			counter += float64Fn() * maxStep
			value := Clamp(int(counter))
			if value < last {
				value = last
			}
			last = value

			if !send(ctx, out, value) {
				return
			}
			if value == Max {
				return
			}
		}
	}()

	return out
}

func send(ctx context.Context, out chan<- int, v int) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- v:
		return true
	}
}
