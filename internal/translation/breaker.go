package translation

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/babelbot/internal/language"
)

// BreakerProvider wraps a Provider with a circuit breaker so a dead upstream
// fails fast instead of stalling every button press for the full request
// timeout. It does not retry; an open breaker is just another failed call.
type BreakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps inner with a circuit breaker that opens after five
// consecutive failures and probes again after 30 seconds.
func NewBreakerProvider(inner Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:    inner.Name() + "-translation",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &BreakerProvider{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate forwards to the wrapped provider through the breaker.
func (p *BreakerProvider) Translate(ctx context.Context, text string, target language.Option) (string, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.inner.Translate(ctx, text, target)
	})
	if err != nil {
		return "", fmt.Errorf("translation via %s failed: %w", p.inner.Name(), err)
	}
	return result.(string), nil
}

// Name returns the wrapped provider name
func (p *BreakerProvider) Name() string {
	return p.inner.Name()
}

// IsAvailable checks the wrapped provider and the breaker state
func (p *BreakerProvider) IsAvailable() error {
	if p.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("translation provider %s is temporarily unavailable", p.inner.Name())
	}
	return p.inner.IsAvailable()
}
