package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CachedEmbedder хранит эмбеддинги описаний в Redis.
// Ошибки Redis только логируются: кэш не должен ломать дедупликацию.
type CachedEmbedder struct {
	next        Embedder
	redisClient *redis.Client
	model       string
	ttl         time.Duration
	logger      *logrus.Logger
}

func NewCachedEmbedder(next Embedder, redisClient *redis.Client, model string, ttl time.Duration, logger *logrus.Logger) *CachedEmbedder {
	return &CachedEmbedder{
		next:        next,
		redisClient: redisClient,
		model:       model,
		ttl:         ttl,
		logger:      logger,
	}
}

func (c *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	key := embeddingCacheKey(c.model, text)
	log := c.logger.WithField("cache_key", key)

	if val, err := c.redisClient.Get(ctx, key).Bytes(); err == nil {
		var vec []float32
		if err := json.Unmarshal(val, &vec); err == nil && len(vec) > 0 {
			return vec, nil
		}
		log.Warn("Discarding malformed cached embedding")
	} else if !errors.Is(err, redis.Nil) {
		log.WithError(err).Warn("Failed to read embedding from cache")
	}

	vec, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(vec); err == nil {
		if err := c.redisClient.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			log.WithError(err).Warn("Failed to store embedding in cache")
		}
	}
	return vec, nil
}

func embeddingCacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(text))
	return "embedding:" + model + ":" + hex.EncodeToString(sum[:])
}
