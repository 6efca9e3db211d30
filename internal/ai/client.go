// Package ai оборачивает внешние генеративные модели.
//
// Провайдеры (Gemini, Anthropic) реализуют узкие интерфейсы Generator и Embedder.
// Analyzer поверх них превращает любой сбой модели в документированное значение по умолчанию,
// поэтому вызывающему коду не нужно разбирать ошибки провайдера.
package ai

import (
	"context"
	"errors"

	"github.com/shenikar/cityfix_backend/internal/models"
)

// ErrEmptyResponse - модель вернула пустой ответ
var ErrEmptyResponse = errors.New("ai: empty response")

// Request - запрос на структурированную генерацию
type Request struct {
	System string
	Prompt string
	Images []models.Image
	Schema *Schema
}

// Generator возвращает JSON-документ, соответствующий Request.Schema
type Generator interface {
	GenerateJSON(ctx context.Context, req Request) ([]byte, error)
}

// Embedder возвращает вектор признаков текста
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Unavailable используется, когда провайдер не настроен
type Unavailable struct{}

func (Unavailable) GenerateJSON(context.Context, Request) ([]byte, error) {
	return nil, models.ErrAIUnavailable
}

func (Unavailable) Embed(context.Context, string) ([]float32, error) {
	return nil, models.ErrAIUnavailable
}
