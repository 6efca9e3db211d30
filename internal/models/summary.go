package models

import "time"

// WeeklySummaryID - единственный документ со сводкой за неделю
const WeeklySummaryID = "weekly"

// WeeklySummary - сводка по жалобам за последние семь дней
type WeeklySummary struct {
	PeriodStart time.Time      `json:"period_start" bson:"period_start"`
	PeriodEnd   time.Time      `json:"period_end" bson:"period_end"`
	Stats       ComplaintStats `json:"stats" bson:"stats"`
	Bullets     []string       `json:"bullets" bson:"bullets"`
	GeneratedAt time.Time      `json:"generated_at" bson:"generated_at"`
}
