// Package triage классифицирует новые жалобы, оценивает их приоритет и ищет дубликаты поблизости.
package triage

import (
	"context"

	"github.com/shenikar/cityfix_backend/internal/ai"
	"github.com/shenikar/cityfix_backend/internal/geo"
	"github.com/shenikar/cityfix_backend/internal/models"
)

//go:generate mockgen -source=triage.go -destination=mocks/mock_triage.go -package=mocks

// Store - операции хранилища жалоб, нужные конвейеру
type Store interface {
	GetByID(ctx context.Context, id string) (*models.Complaint, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	FindInBox(ctx context.Context, box geo.Box) ([]*models.Complaint, error)
}

// Analyzer - обращения к модели. Classify и AssessSeverity всегда возвращают значение.
type Analyzer interface {
	Classify(ctx context.Context, img models.Image, description string) models.Classification
	AssessSeverity(ctx context.Context, description string, category models.Category) models.SeverityAssessment
	CompareImages(ctx context.Context, first, second models.Image) ai.Result[float64]
	Embed(ctx context.Context, text string) ai.Result[[]float32]
}

// ImageFetcher скачивает фото по URL
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (models.Image, error)
}

type Config struct {
	Threshold     float64 // дубликат только при оценке строго выше порога
	MaxCandidates int
	RadiusMeters  float64
}

func DefaultConfig() Config {
	return Config{
		Threshold:     0.8,
		MaxCandidates: 8,
		RadiusMeters:  100,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Threshold <= 0 {
		c.Threshold = def.Threshold
	}
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = def.MaxCandidates
	}
	if c.RadiusMeters <= 0 {
		c.RadiusMeters = def.RadiusMeters
	}
	return c
}
