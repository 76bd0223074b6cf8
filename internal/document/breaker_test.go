package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-desk/pkg/circuitbreaker"
)

type countingConverter struct {
	calls int
	err   error
}

func (c *countingConverter) Convert(context.Context, []byte) ([]byte, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return []byte("%PDF"), nil
}

func TestBreakerConverterFailsFast(t *testing.T) {
	next := &countingConverter{err: errors.New("connection refused")}
	c := NewBreakerConverter(next, circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
		Name:        "gotenberg",
		MaxFailures: 2,
		Timeout:     time.Hour,
	}))
	ctx := context.Background()

	_, err := c.Convert(ctx, []byte("<html></html>"))
	assert.EqualError(t, err, "connection refused")
	_, err = c.Convert(ctx, []byte("<html></html>"))
	assert.EqualError(t, err, "connection refused")

	_, err = c.Convert(ctx, []byte("<html></html>"))
	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, 2, next.calls)
}

func TestBreakerConverterIgnoresCancelledRequests(t *testing.T) {
	next := &countingConverter{err: context.Canceled}
	breaker := circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{Name: "gotenberg", MaxFailures: 1, Timeout: time.Hour})
	c := NewBreakerConverter(next, breaker)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Convert(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, circuitbreaker.StateClosed, breaker.State())

	next.err = nil
	pdf, err := c.Convert(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), pdf)
}

func TestBreakerConverterCancelDoesNotResetFailures(t *testing.T) {
	next := &countingConverter{}
	breaker := circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{Name: "gotenberg", MaxFailures: 2, Timeout: time.Hour})
	c := NewBreakerConverter(next, breaker)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	next.err = errors.New("connection refused")
	_, _ = c.Convert(context.Background(), nil)

	next.err = context.Canceled
	_, _ = c.Convert(cancelled, nil)

	next.err = errors.New("connection refused")
	_, _ = c.Convert(context.Background(), nil)

	assert.Equal(t, circuitbreaker.StateOpen, breaker.State())
}

func TestBreakerConverterCancelledTrialStaysHalfOpen(t *testing.T) {
	next := &countingConverter{err: errors.New("connection refused")}
	breaker := circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{Name: "gotenberg", MaxFailures: 1, Timeout: time.Millisecond})
	c := NewBreakerConverter(next, breaker)

	_, _ = c.Convert(context.Background(), nil)
	require.Equal(t, circuitbreaker.StateOpen, breaker.State())
	time.Sleep(5 * time.Millisecond)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	next.err = context.Canceled
	_, err := c.Convert(cancelled, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, circuitbreaker.StateHalfOpen, breaker.State())
}
