package models

// Image - загруженное изображение для передачи в модель
type Image struct {
	Data     []byte
	MIMEType string
}

// Classification - результат классификации фото и описания.
// Error заполняется, если модель недоступна и возвращены значения по умолчанию.
type Classification struct {
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
	Error      string   `json:"error,omitempty"`
}

// SeverityAssessment - оценка серьезности с кратким обоснованием
type SeverityAssessment struct {
	Severity Severity `json:"severity"`
	Reason   string   `json:"reason"`
}

// FusionResult - лучший кандидат в дубликаты, если он прошел порог
type FusionResult struct {
	DuplicateOf *string
	Score       *float64
}

// TriageResult - итог обработки жалобы конвейером
type TriageResult struct {
	Category            Category `json:"category"`
	Confidence          float64  `json:"confidence"`
	Priority            Priority `json:"priority"`
	Reason              string   `json:"reason"`
	DuplicateOf         *string  `json:"duplicateOf,omitempty"`
	DuplicateSimilarity *float64 `json:"duplicateSimilarity,omitempty"`
}

// ResolutionVerification - сравнение фото до и после устранения проблемы
type ResolutionVerification struct {
	Status      string  `json:"status"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

const (
	ResolutionResolved          = "resolved"
	ResolutionPartiallyResolved = "partially_resolved"
	ResolutionNotResolved       = "not_resolved"
	ResolutionUnclear           = "unclear"
)

// ActionPlan - предложенный план работ для бригады
type ActionPlan struct {
	Steps          []string `json:"steps"`
	Crew           string   `json:"crew"`
	EstimatedHours float64  `json:"estimatedHours"`
}
