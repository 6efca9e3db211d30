package ai

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// NewLimiter создает общий лимитер запросов к провайдеру
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// ThrottledGenerator ждет токен лимитера перед каждым вызовом модели
type ThrottledGenerator struct {
	next    Generator
	limiter *rate.Limiter
}

func NewThrottledGenerator(next Generator, limiter *rate.Limiter) *ThrottledGenerator {
	return &ThrottledGenerator{next: next, limiter: limiter}
}

func (t *ThrottledGenerator) GenerateJSON(ctx context.Context, req Request) ([]byte, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("ai: rate limiter: %w", err)
	}
	return t.next.GenerateJSON(ctx, req)
}

type ThrottledEmbedder struct {
	next    Embedder
	limiter *rate.Limiter
}

func NewThrottledEmbedder(next Embedder, limiter *rate.Limiter) *ThrottledEmbedder {
	return &ThrottledEmbedder{next: next, limiter: limiter}
}

func (t *ThrottledEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("ai: rate limiter: %w", err)
	}
	return t.next.Embed(ctx, text)
}
