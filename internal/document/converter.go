package document

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-desk/internal/config"
	"github.com/jwalitptl/clinic-desk/pkg/circuitbreaker"
)

// Converter turns an HTML page into a PDF.
type Converter interface {
	Convert(ctx context.Context, html []byte) ([]byte, error)
}

// NewConverter picks the converter named in cfg. The remote converter sits
// behind a circuit breaker unless BreakerFailures is zero.
func NewConverter(cfg config.DocumentConfig) (Converter, error) {
	switch cfg.Converter {
	case "gotenberg":
		gotenberg := NewGotenbergConverter(cfg.GotenbergURL, cfg.Timeout)
		if cfg.BreakerFailures <= 0 {
			return gotenberg, nil
		}
		return NewBreakerConverter(gotenberg, circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "gotenberg",
			MaxFailures: cfg.BreakerFailures,
			Timeout:     cfg.BreakerCooldown,
		})), nil
	case "wkhtmltopdf":
		return NewWkhtmltopdfConverter(cfg.Wkhtmltopdf, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported document converter %q", cfg.Converter)
	}
}
