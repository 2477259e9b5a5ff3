package breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/CutieCat6778/reservation-frontdesk/pkg/breaker"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_Call(t *testing.T) {
	ok := func() error { return nil }
	fail := func() error { return errors.New("service error") }

	cb := breaker.New(10, 50*time.Millisecond, 0.5, 2)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}

	// trip it open
	for i := 0; i < 10; i++ {
		_ = cb.Call(fail)
	}
	err := cb.Call(ok)
	require.ErrorIs(t, err, breaker.ErrOpen)

	// after the cooldown a probe goes through again
	time.Sleep(60 * time.Millisecond)
	require.NoError(t, cb.Call(ok))

	// enough consecutive successes close it for good
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(ok))
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	fail := func() error { return errors.New("service error") }

	cb := breaker.New(4, 50*time.Millisecond, 0.5, 2)
	for i := 0; i < 4; i++ {
		_ = cb.Call(fail)
	}
	require.ErrorIs(t, cb.Call(fail), breaker.ErrOpen)

	time.Sleep(60 * time.Millisecond)
	// probe fails, breaker snaps back open immediately
	require.EqualError(t, cb.Call(fail), "service error")
	require.ErrorIs(t, cb.Call(fail), breaker.ErrOpen)
}
