package services

import (
	"testing"
	"time"

	"ledger-agent/internal/config"
	"ledger-agent/internal/models"

	"github.com/stretchr/testify/assert"
)

type transition struct {
	from, to models.CircuitBreakerState
}

func newTestBreaker(maxFailures, halfOpenSucc int) (*CircuitBreaker, *[]transition, *time.Time) {
	var transitions []transition
	clock := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	cb := NewCircuitBreaker("chat", config.CircuitBreakerConfig{
		MaxFailures:     maxFailures,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: halfOpenSucc,
	}, func(name string, from, to models.CircuitBreakerState) {
		transitions = append(transitions, transition{from, to})
	}).(*CircuitBreaker)
	cb.now = func() time.Time { return clock }

	return cb, &transitions, &clock
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb, transitions, _ := newTestBreaker(3, 1)

	cb.RecordFailure()
	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 2, cb.GetFailureCount())

	cb.RecordFailure()

	assert.True(t, cb.IsOpen())
	assert.Equal(t, StateOpen, cb.GetState())
	assert.Equal(t, []transition{{StateClosed, StateOpen}}, *transitions)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb, _, _ := newTestBreaker(2, 1)

	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()

	assert.False(t, cb.IsOpen())
	assert.Equal(t, 1, cb.GetFailureCount())
}

func TestCircuitBreaker_HalfOpenAfterResetTimeout(t *testing.T) {
	cb, transitions, clock := newTestBreaker(1, 2)

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	*clock = clock.Add(31 * time.Second)

	assert.False(t, cb.IsOpen())
	assert.Equal(t, StateHalfOpen, cb.GetState())

	cb.RecordSuccess()
	assert.Equal(t, StateHalfOpen, cb.GetState())
	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.GetState())

	assert.Equal(t, []transition{
		{StateClosed, StateOpen},
		{StateOpen, StateHalfOpen},
		{StateHalfOpen, StateClosed},
	}, *transitions)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, _, clock := newTestBreaker(1, 1)

	cb.RecordFailure()
	*clock = clock.Add(time.Minute)
	assert.False(t, cb.IsOpen())

	cb.RecordFailure()

	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb, transitions, _ := newTestBreaker(1, 1)

	cb.RecordFailure()
	cb.Reset()

	assert.Equal(t, StateClosed, cb.GetState())
	assert.Equal(t, 0, cb.GetFailureCount())
	assert.Len(t, *transitions, 2)
}

func TestCircuitBreaker_StateNames(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half_open", StateHalfOpen.String())
}
