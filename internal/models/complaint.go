package models

import (
	"strings"
	"time"
)

// Category - категория городской проблемы
type Category string

const (
	CategoryPothole     Category = "Pothole"
	CategoryGarbage     Category = "Garbage"
	CategoryStreetlight Category = "Streetlight"
	CategoryDrainage    Category = "Drainage"
	CategoryWaterSupply Category = "Water Supply"
	CategoryRoadDamage  Category = "Road Damage"
	CategoryGraffiti    Category = "Graffiti"
	CategoryRoadSign    Category = "Road Sign"
	CategoryTree        Category = "Tree"
	CategoryOther       Category = "Other"
)

// Categories - закрытый список категорий в порядке, в котором он передается модели
var Categories = []Category{
	CategoryPothole,
	CategoryGarbage,
	CategoryStreetlight,
	CategoryDrainage,
	CategoryWaterSupply,
	CategoryRoadDamage,
	CategoryGraffiti,
	CategoryRoadSign,
	CategoryTree,
	CategoryOther,
}

// ParseCategory приводит произвольную строку к категории.
// Регистр, подчеркивания и лишние пробелы игнорируются, неизвестные значения становятся Other.
func ParseCategory(s string) Category {
	norm := strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(s, "_", " ")), " "))
	for _, c := range Categories {
		if strings.ToLower(string(c)) == norm {
			return c
		}
	}
	return CategoryOther
}

// Severity - оценка серьезности проблемы
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// ParseSeverity возвращает false для всего, что не входит в {High, Medium, Low}
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(s) {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return Severity(s), true
	}
	return "", false
}

// Priority - приоритет обработки жалобы
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// ParsePriority принимает канонические значения и старые варианты написания (low, normal, critical)
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, true
	case "medium", "normal":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	case "critical":
		return PriorityCritical, true
	}
	return "", false
}

// Status - состояние жалобы в рабочем процессе администратора
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Имена полей документа жалобы
const (
	FieldUserID                 = "user_id"
	FieldDescription            = "description"
	FieldPhotoURL               = "photo_url"
	FieldLocation               = "location"
	FieldCategory               = "category"
	FieldLegacyType             = "type"
	FieldCategoryConfidence     = "category_confidence"
	FieldPriority               = "priority"
	FieldPriorityReason         = "priority_reason"
	FieldStatus                 = "status"
	FieldDuplicateOf            = "duplicate_of"
	FieldDuplicateSimilarity    = "duplicate_similarity"
	FieldAISummary              = "ai_summary"
	FieldAdminRemarks           = "admin_remarks"
	FieldResolutionPhotoURL     = "resolution_photo_url"
	FieldResolutionVerification = "resolution_verification"
	FieldResolutionConfidence   = "resolution_confidence"
	FieldCreatedAt              = "created_at"
	FieldUpdatedAt              = "updated_at"
	FieldTriagedAt              = "triaged_at"
)

// Location - координаты места проблемы
type Location struct {
	Lat     float64 `json:"lat" bson:"lat"`
	Lng     float64 `json:"lng" bson:"lng"`
	Address string  `json:"address,omitempty" bson:"address,omitempty"`
}

// Complaint - жалоба жителя
type Complaint struct {
	ID                     string     `json:"id" bson:"-"`
	UserID                 string     `json:"user_id" bson:"user_id"`
	Description            string     `json:"description" bson:"description"`
	PhotoURL               string     `json:"photo_url" bson:"photo_url"`
	Location               *Location  `json:"location,omitempty" bson:"location,omitempty"`
	Category               Category   `json:"category,omitempty" bson:"category,omitempty"`
	CategoryConfidence     float64    `json:"category_confidence" bson:"category_confidence"`
	Priority               Priority   `json:"priority,omitempty" bson:"priority,omitempty"`
	PriorityReason         string     `json:"priority_reason,omitempty" bson:"priority_reason,omitempty"`
	Status                 Status     `json:"status" bson:"status"`
	DuplicateOf            *string    `json:"duplicate_of,omitempty" bson:"duplicate_of,omitempty"`
	DuplicateSimilarity    *float64   `json:"duplicate_similarity,omitempty" bson:"duplicate_similarity,omitempty"`
	AISummary              string     `json:"ai_summary,omitempty" bson:"ai_summary,omitempty"`
	AdminRemarks           string     `json:"admin_remarks,omitempty" bson:"admin_remarks,omitempty"`
	ResolutionPhotoURL     string     `json:"resolution_photo_url,omitempty" bson:"resolution_photo_url,omitempty"`
	ResolutionVerification string     `json:"resolution_verification,omitempty" bson:"resolution_verification,omitempty"`
	ResolutionConfidence   *float64   `json:"resolution_confidence,omitempty" bson:"resolution_confidence,omitempty"`
	CreatedAt              time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at" bson:"updated_at"`
	TriagedAt              *time.Time `json:"triaged_at,omitempty" bson:"triaged_at,omitempty"`
}

// NearbyComplaint - жалоба, найденная рядом с точкой, и расстояние до нее
type NearbyComplaint struct {
	Complaint  *Complaint `json:"complaint"`
	DistanceKm float64    `json:"distance_km"`
}

// ComplaintFilter - фильтр списка жалоб. Пустые поля не участвуют в запросе.
type ComplaintFilter struct {
	UserID   string
	Status   Status
	Category Category
	Priority Priority
	Limit    int64
}

// ComplaintUpdate - изменения, которые администратор вносит в жалобу
type ComplaintUpdate struct {
	Status               *Status
	Priority             *Priority
	AdminRemarks         *string
	ResolutionPhotoURL   *string
	ResolutionConfidence *float64
}

// ComplaintStats - агрегированная статистика по жалобам
type ComplaintStats struct {
	Total      int64            `json:"total" bson:"total"`
	Pending    int64            `json:"pending" bson:"pending"`
	InProgress int64            `json:"in_progress" bson:"in_progress"`
	Resolved   int64            `json:"resolved" bson:"resolved"`
	ByCategory map[string]int64 `json:"by_category" bson:"by_category"`
	ByPriority map[string]int64 `json:"by_priority" bson:"by_priority"`
}
