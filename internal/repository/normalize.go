package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shenikar/cityfix_backend/internal/models"
)

// decodeComplaint собирает жалобу из сырого документа.
// Старые документы хранят долготу в lon, категорию в type, а даты строками.
func decodeComplaint(doc bson.M) *models.Complaint {
	c := &models.Complaint{
		ID:                     idString(doc["_id"]),
		UserID:                 stringField(doc, models.FieldUserID),
		Description:            stringField(doc, models.FieldDescription),
		PhotoURL:               stringField(doc, models.FieldPhotoURL),
		Location:               decodeLocation(doc[models.FieldLocation]),
		PriorityReason:         stringField(doc, models.FieldPriorityReason),
		Status:                 models.Status(stringField(doc, models.FieldStatus)),
		AISummary:              stringField(doc, models.FieldAISummary),
		AdminRemarks:           stringField(doc, models.FieldAdminRemarks),
		ResolutionPhotoURL:     stringField(doc, models.FieldResolutionPhotoURL),
		ResolutionVerification: stringField(doc, models.FieldResolutionVerification),
		CreatedAt:              timeField(doc[models.FieldCreatedAt]),
		UpdatedAt:              timeField(doc[models.FieldUpdatedAt]),
	}

	if c.Status == "" {
		c.Status = models.StatusPending
	}

	category := stringField(doc, models.FieldCategory)
	if category == "" {
		category = stringField(doc, models.FieldLegacyType)
	}
	if category != "" {
		c.Category = models.ParseCategory(category)
	}

	if p, ok := models.ParsePriority(stringField(doc, models.FieldPriority)); ok {
		c.Priority = p
	}

	if f, ok := toFloat(doc[models.FieldCategoryConfidence]); ok {
		c.CategoryConfidence = f
	}
	if dup := stringField(doc, models.FieldDuplicateOf); dup != "" {
		c.DuplicateOf = &dup
	}
	if f, ok := toFloat(doc[models.FieldDuplicateSimilarity]); ok {
		c.DuplicateSimilarity = &f
	}
	if f, ok := toFloat(doc[models.FieldResolutionConfidence]); ok {
		c.ResolutionConfidence = &f
	}
	if t := timeField(doc[models.FieldTriagedAt]); !t.IsZero() {
		c.TriagedAt = &t
	}
	return c
}

// decodeLocation возвращает nil, если координаты не приводятся к числам
func decodeLocation(v any) *models.Location {
	var loc map[string]any
	switch m := v.(type) {
	case bson.M:
		loc = m
	case map[string]any:
		loc = m
	case bson.D:
		loc = m.Map()
	default:
		return nil
	}

	lat, ok := toFloat(loc["lat"])
	if !ok {
		return nil
	}
	lng, ok := toFloat(loc["lng"])
	if !ok {
		if lng, ok = toFloat(loc["lon"]); !ok {
			return nil
		}
	}
	address, _ := loc["address"].(string)
	return &models.Location{Lat: lat, Lng: lng, Address: address}
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

func stringField(doc bson.M, key string) string {
	s, _ := doc[key].(string)
	return s
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// timeField понимает BSON-дату, time.Time, RFC3339-строку и миллисекунды эпохи
func timeField(v any) time.Time {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case time.Time:
		return t.UTC()
	case int64:
		return time.UnixMilli(t).UTC()
	case float64:
		return time.UnixMilli(int64(t)).UTC()
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC()
			}
		}
	}
	return time.Time{}
}
