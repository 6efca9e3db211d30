package v1

import (
	"time"

	"github.com/shenikar/cityfix_backend/internal/models"
)

// LocationDTO - координаты места проблемы
// @Description Координаты места проблемы
type LocationDTO struct {
	Lat     float64 `json:"lat" validate:"latitude"`
	Lng     float64 `json:"lng" validate:"longitude"`
	Address string  `json:"address,omitempty" validate:"max=500"`
}

// CreateComplaintRequest DTO для создания жалобы
// @Description DTO для создания жалобы
type CreateComplaintRequest struct {
	Description string       `json:"description" validate:"required,min=3,max=2000"`
	PhotoURL    string       `json:"photo_url" validate:"required,url"`
	Location    *LocationDTO `json:"location" validate:"required"`
	Category    string       `json:"category,omitempty"`
}

// ComplaintResponse DTO для ответа с информацией о жалобе
// @Description DTO для ответа с информацией о жалобе
type ComplaintResponse struct {
	ID                     string       `json:"id"`
	UserID                 string       `json:"user_id"`
	Description            string       `json:"description"`
	PhotoURL               string       `json:"photo_url"`
	Location               *LocationDTO `json:"location,omitempty"`
	Category               string       `json:"category,omitempty"`
	CategoryConfidence     float64      `json:"category_confidence"`
	Priority               string       `json:"priority,omitempty"`
	PriorityReason         string       `json:"priority_reason,omitempty"`
	Status                 string       `json:"status"`
	DuplicateOf            *string      `json:"duplicate_of,omitempty"`
	DuplicateSimilarity    *float64     `json:"duplicate_similarity,omitempty"`
	AISummary              string       `json:"ai_summary,omitempty"`
	AdminRemarks           string       `json:"admin_remarks,omitempty"`
	ResolutionPhotoURL     string       `json:"resolution_photo_url,omitempty"`
	ResolutionVerification string       `json:"resolution_verification,omitempty"`
	ResolutionConfidence   *float64     `json:"resolution_confidence,omitempty"`
	CreatedAt              time.Time    `json:"created_at"`
	UpdatedAt              time.Time    `json:"updated_at"`
	TriagedAt              *time.Time   `json:"triaged_at,omitempty"`
}

// NearbyComplaintResponse - жалоба рядом с точкой и расстояние до нее
type NearbyComplaintResponse struct {
	Complaint  *ComplaintResponse `json:"complaint"`
	DistanceKm float64            `json:"distance_km"`
}

// UpdateComplaintRequest DTO для изменения жалобы администратором
// @Description DTO для изменения жалобы администратором. Отсутствующие поля не меняются.
type UpdateComplaintRequest struct {
	Status               *string  `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress resolved closed"`
	Priority             *string  `json:"priority,omitempty"`
	AdminRemarks         *string  `json:"admin_remarks,omitempty" validate:"omitempty,max=2000"`
	ResolutionPhotoURL   *string  `json:"resolution_photo_url,omitempty" validate:"omitempty,url"`
	ResolutionConfidence *float64 `json:"resolution_confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
}

type VerifyResolutionRequest struct {
	AfterPhotoURL string `json:"after_photo_url" validate:"required,url"`
}

// UploadResponse - публичная ссылка на загруженное фото
type UploadResponse struct {
	URL string `json:"url"`
}

// UpdateProfileRequest DTO для изменения профиля
// @Description DTO для изменения профиля
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UserResponse DTO профиля пользователя
type UserResponse struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ProcessIssueRequest DTO для запуска конвейера обработки жалобы
type ProcessIssueRequest struct {
	ComplaintID string `json:"complaint_id" validate:"required"`
}

// ChatbotRequest DTO вопроса к ассистенту
type ChatbotRequest struct {
	Query   string         `json:"query" validate:"required,max=2000"`
	Context map[string]any `json:"context"`
}

type ChatbotResponse struct {
	Response string `json:"response"`
}

// ClassifyRequest DTO для классификации фото
type ClassifyRequest struct {
	PhotoURL    string `json:"photo_url" validate:"required,url"`
	Description string `json:"description" validate:"max=2000"`
}

// AssessSeverityRequest DTO для оценки серьезности
type AssessSeverityRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
	Category    string `json:"category"`
}

// AssessSeverityResponse - оценка серьезности и вытекающий приоритет
type AssessSeverityResponse struct {
	Severity string `json:"severity"`
	Reason   string `json:"reason"`
	Priority string `json:"priority"`
}

// HealthResponse - статус зависимостей сервиса
type HealthResponse struct {
	Status     string                   `json:"status"`
	Components []models.ComponentStatus `json:"components"`
}
