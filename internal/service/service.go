// Package service содержит бизнес-логику CityFix: доступ, жалобы, модерацию, ИИ-обработку и сводки.
package service

import (
	"context"
	"time"

	"github.com/shenikar/cityfix_backend/internal/ai"
	"github.com/shenikar/cityfix_backend/internal/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// TokenVerifier проверяет токен провайдера аутентификации
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*models.Identity, error)
}

// UserRepository определяет контракт хранилища профилей
type UserRepository interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
}

// ComplaintRepository определяет контракт для работы с бд жалоб
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id string) (*models.Complaint, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	List(ctx context.Context, filter models.ComplaintFilter) ([]*models.Complaint, error)
	Stats(ctx context.Context, since time.Time) (*models.ComplaintStats, error)
	GetFromCache(ctx context.Context, id string) (*models.Complaint, error)
	SetCache(ctx context.Context, complaint *models.Complaint) error
}

type SummaryRepository interface {
	SaveSummary(ctx context.Context, summary *models.WeeklySummary) error
	GetSummary(ctx context.Context) (*models.WeeklySummary, error)
}

// ObjectStore - хранилище загруженных фото
type ObjectStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Exists(ctx context.Context) (bool, error)
}

type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (models.Image, error)
}

// Limiter - суточный лимит жалоб на пользователя
type Limiter interface {
	Allow(ctx context.Context, userID string) (bool, time.Duration, error)
}

// Triage - конвейер обработки жалобы и поиск по координатам
type Triage interface {
	ProcessIssue(ctx context.Context, id string) (*models.TriageResult, error)
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]models.NearbyComplaint, error)
}

// Analyzer - обращения к модели, которые нужны сервисам вне конвейера
type Analyzer interface {
	Classify(ctx context.Context, img models.Image, description string) models.Classification
	AssessSeverity(ctx context.Context, description string, category models.Category) models.SeverityAssessment
	VerifyResolution(ctx context.Context, before, after models.Image, category models.Category) models.ResolutionVerification
	SummaryBullets(ctx context.Context, stats models.ComplaintStats, samples []*models.Complaint) []string
	ActionPlan(ctx context.Context, complaint *models.Complaint) ai.Result[models.ActionPlan]
	Summarize(ctx context.Context, description string, category models.Category) ai.Result[string]
	Chat(ctx context.Context, query, contextData string) ai.Result[string]
}

// Pinger - зависимость, доступность которой показывает /system/health
type Pinger interface {
	Ping(ctx context.Context) error
}
