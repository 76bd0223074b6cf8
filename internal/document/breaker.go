package document

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-desk/pkg/circuitbreaker"
)

// BreakerConverter stops calling an unhealthy converter for a while so
// print requests fail fast instead of waiting for every timeout.
type BreakerConverter struct {
	next    Converter
	breaker *circuitbreaker.CircuitBreaker
}

func NewBreakerConverter(next Converter, breaker *circuitbreaker.CircuitBreaker) *BreakerConverter {
	return &BreakerConverter{
		next:    next,
		breaker: breaker,
	}
}

func (c *BreakerConverter) Convert(ctx context.Context, html []byte) ([]byte, error) {
	var pdf []byte
	err := c.breaker.Execute(func() error {
		var err error
		pdf, err = c.next.Convert(ctx, html)
		// A request the client abandoned says nothing about the converter.
		if err != nil && ctx.Err() != nil {
			return circuitbreaker.Ignore(err)
		}
		return err
	})
	if errors.Is(err, circuitbreaker.ErrOpen) {
		log.Warn().Str("breaker", c.breaker.Name()).Msg("document converter unavailable, breaker open")
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
