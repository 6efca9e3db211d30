package ai

import "github.com/shenikar/cityfix_backend/internal/models"

var severityToPriority = map[models.Severity]models.Priority{
	models.SeverityHigh:   models.PriorityHigh,
	models.SeverityMedium: models.PriorityMedium,
	models.SeverityLow:    models.PriorityLow,
}

// PriorityFromSeverity - фиксированная таблица соответствия. Critical назначает только администратор.
func PriorityFromSeverity(s models.Severity) models.Priority {
	if p, ok := severityToPriority[s]; ok {
		return p
	}
	return models.PriorityMedium
}
