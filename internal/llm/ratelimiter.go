package llm

import (
	"context"
	"sync"
	"time"
)

// RateLimitedProvider caps the request rate of a Provider with a token
// bucket refilled continuously at rpm tokens per minute.
type RateLimitedProvider struct {
	provider Provider
	rpm      int

	mu       sync.Mutex
	tokens   float64
	lastFill time.Time
}

// NewRateLimitedProvider wraps provider so that at most rpm requests per
// minute are sent. rpm <= 0 disables limiting.
func NewRateLimitedProvider(provider Provider, rpm int) Provider {
	if rpm <= 0 {
		return provider
	}
	return &RateLimitedProvider{
		provider: provider,
		rpm:      rpm,
		tokens:   float64(rpm),
		lastFill: time.Now(),
	}
}

func (r *RateLimitedProvider) Name() string { return r.provider.Name() }

func (r *RateLimitedProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	for !r.take() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
	return r.provider.Complete(ctx, req)
}

func (r *RateLimitedProvider) take() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.tokens += now.Sub(r.lastFill).Minutes() * float64(r.rpm)
	if limit := float64(r.rpm); r.tokens > limit {
		r.tokens = limit
	}
	r.lastFill = now

	if r.tokens < 1 {
		return false
	}
	r.tokens--
	return true
}
