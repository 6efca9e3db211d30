package triage

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/cityfix_backend/internal/ai"
	"github.com/shenikar/cityfix_backend/internal/models"
)

// Orchestrator проводит жалобу через этапы: классификация, серьезность, поиск дубликатов, запись.
// Повторный запуск перезаписывает результаты предыдущего.
type Orchestrator struct {
	store    Store
	analyzer Analyzer
	fetcher  ImageFetcher
	geo      *GeoIndex
	fuser    *Fuser
	radius   float64
	logger   *logrus.Logger
	now      func() time.Time
}

func NewOrchestrator(store Store, analyzer Analyzer, fetcher ImageFetcher, cfg Config, logger *logrus.Logger) *Orchestrator {
	cfg = cfg.withDefaults()
	return &Orchestrator{
		store:    store,
		analyzer: analyzer,
		fetcher:  fetcher,
		geo:      NewGeoIndex(store),
		fuser:    NewFuser(analyzer, fetcher, cfg, logger),
		radius:   cfg.RadiusMeters,
		logger:   logger,
		now:      time.Now,
	}
}

// ProcessIssue классифицирует жалобу и сохраняет результат одним обновлением.
// Возвращает models.ErrNotFound и models.ErrInvalidIssue без обращения к модели.
func (o *Orchestrator) ProcessIssue(ctx context.Context, id string) (*models.TriageResult, error) {
	log := o.logger.WithFields(logrus.Fields{
		"service":      "triage",
		"method":       "ProcessIssue",
		"complaint_id": id,
	})
	log.Info("Processing complaint")

	complaint, err := o.store.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to load complaint")
		return nil, fmt.Errorf("triage: could not load complaint: %w", err)
	}
	if complaint.PhotoURL == "" || complaint.Location == nil {
		log.Warn("Complaint has no photo or location")
		return nil, fmt.Errorf("triage: complaint %s lacks photo or location: %w", id, models.ErrInvalidIssue)
	}

	// Classified
	var classification models.Classification
	img, err := o.fetcher.Fetch(ctx, complaint.PhotoURL)
	if err != nil {
		log.WithError(err).Warn("Photo fetch failed, using default classification")
		classification = models.Classification{
			Category:   models.CategoryOther,
			Confidence: 0,
			Error:      err.Error(),
		}
		img = models.Image{}
	} else {
		classification = o.analyzer.Classify(ctx, img, complaint.Description)
	}

	// SeverityAssessed
	severity := o.analyzer.AssessSeverity(ctx, complaint.Description, classification.Category)
	priority := ai.PriorityFromSeverity(severity.Severity)

	// DuplicateChecked
	fusion := models.FusionResult{}
	nearby, err := o.geo.FindNearby(ctx, complaint.Location.Lat, complaint.Location.Lng, o.radius)
	if err != nil {
		log.WithError(err).Warn("Nearby search failed, skipping duplicate check")
	} else {
		fusion = o.fuser.Fuse(ctx, img, complaint.Description, excludeID(nearby, id))
	}

	// Updated
	fields := map[string]any{
		models.FieldCategory:            classification.Category,
		models.FieldCategoryConfidence:  classification.Confidence,
		models.FieldPriority:            priority,
		models.FieldPriorityReason:      severity.Reason,
		models.FieldTriagedAt:           o.now().UTC(),
		models.FieldDuplicateOf:         fusion.DuplicateOf,
		models.FieldDuplicateSimilarity: fusion.Score,
	}
	if err := o.store.UpdateFields(ctx, id, fields); err != nil {
		log.WithError(err).Error("Failed to store triage result")
		return nil, fmt.Errorf("triage: could not update complaint: %w", err)
	}

	result := &models.TriageResult{
		Category:            classification.Category,
		Confidence:          classification.Confidence,
		Priority:            priority,
		Reason:              severity.Reason,
		DuplicateOf:         fusion.DuplicateOf,
		DuplicateSimilarity: fusion.Score,
	}
	log.WithFields(logrus.Fields{
		"category":  result.Category,
		"priority":  result.Priority,
		"duplicate": result.DuplicateOf != nil,
	}).Info("Complaint processed")
	return result, nil
}

// FindNearby - поиск жалоб рядом с точкой в радиусе radiusMeters
func (o *Orchestrator) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]models.NearbyComplaint, error) {
	return o.geo.FindNearby(ctx, lat, lng, radiusMeters)
}

func excludeID(list []models.NearbyComplaint, id string) []models.NearbyComplaint {
	out := make([]models.NearbyComplaint, 0, len(list))
	for _, n := range list {
		if n.Complaint.ID == id {
			continue
		}
		out = append(out, n)
	}
	return out
}
