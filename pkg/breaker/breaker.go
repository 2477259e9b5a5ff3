package breaker

import (
	"errors"
	"sync"
	"time"
)

type state uint8

const (
	closed state = iota + 1
	open
	halfOpen
)

var ErrOpen = errors.New("circuit breaker is open")

// CircuitBreaker guards calls to a remote collaborator. It trips open once
// the failure share over the last windowSize calls reaches the threshold,
// rejects calls until cooldown has passed, then lets probes through and
// closes again after recoveryCalls consecutive successes.
type CircuitBreaker interface {
	Call(fn func() error) error
	Reset()
}

type circuitBreaker struct {
	mu sync.Mutex

	state           state
	windowSize      int
	cooldown        time.Duration
	threshold       float64
	recoveryCalls   int
	lastAttemptedAt time.Time

	// ring of failure flags for the last windowSize calls
	window []bool
	pos    int

	successCount int
}

func New(windowSize int, cooldown time.Duration, threshold float64, recoveryCalls int) CircuitBreaker {
	return &circuitBreaker{
		state:         closed,
		windowSize:    windowSize,
		cooldown:      cooldown,
		threshold:     threshold,
		window:        make([]bool, windowSize),
		recoveryCalls: recoveryCalls,
	}
}

func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == open {
		if time.Since(cb.lastAttemptedAt) > cb.cooldown {
			cb.state = halfOpen
			cb.successCount = 0
		} else {
			cb.mu.Unlock()
			return ErrOpen
		}
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.window[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % cb.windowSize

	if cb.state == halfOpen {
		if err != nil {
			cb.successCount = 0
			cb.state = open
			cb.lastAttemptedAt = time.Now()
		} else {
			cb.successCount++
			if cb.successCount > cb.recoveryCalls {
				cb.Reset()
			}
		}
		return err
	}

	fails := 0
	for _, failed := range cb.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(cb.windowSize) >= cb.threshold {
		cb.state = open
		cb.successCount = 0
		cb.lastAttemptedAt = time.Now()
	}

	return err
}

func (cb *circuitBreaker) Reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = closed
}
