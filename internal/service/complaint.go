package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/cityfix_backend/internal/models"
	"github.com/shenikar/cityfix_backend/internal/storage"
	"github.com/shenikar/cityfix_backend/internal/webhook"
)

//go:generate mockgen -source=complaint.go -destination=mocks/mock_complaint.go -package=mocks

const (
	uploadFolder     = "complaints"
	defaultListLimit = 50
	maxListLimit     = 200
	// радиус по умолчанию для /complaints/nearby
	defaultNearbyRadiusMeters = 500
	maxNearbyRadiusMeters     = 10000
)

// ComplaintService определяет контракт для бизнес-логики жалоб жителей
type ComplaintService interface {
	UploadPhoto(ctx context.Context, uid string, data []byte) (string, error)
	CreateComplaint(ctx context.Context, complaint *models.Complaint) error
	GetComplaint(ctx context.Context, id string) (*models.Complaint, error)
	ListComplaints(ctx context.Context, filter models.ComplaintFilter) ([]*models.Complaint, error)
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]models.NearbyComplaint, error)
}

type complaintService struct {
	repo           ComplaintRepository
	store          ObjectStore
	limiter        Limiter
	analyzer       Analyzer
	triage         Triage
	publisher      webhook.Publisher
	logger         *logrus.Logger
	maxUploadBytes int64
	now            func() time.Time
}

func NewComplaintService(
	repo ComplaintRepository,
	store ObjectStore,
	limiter Limiter,
	analyzer Analyzer,
	triage Triage,
	publisher webhook.Publisher,
	logger *logrus.Logger,
	maxUploadBytes int64,
) ComplaintService {
	return &complaintService{
		repo:           repo,
		store:          store,
		limiter:        limiter,
		analyzer:       analyzer,
		triage:         triage,
		publisher:      publisher,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}
}

// UploadPhoto проверяет изображение и кладет его в complaints/<uid>/<uuid>.<ext>
func (s *complaintService) UploadPhoto(ctx context.Context, uid string, data []byte) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "complaint",
		"method":  "UploadPhoto",
		"uid":     uid,
		"size":    len(data),
	})

	contentType, ext, err := storage.ValidateImage(data, s.maxUploadBytes)
	if err != nil {
		log.WithError(err).Warn("Rejected upload")
		return "", err
	}

	url, err := s.store.Put(ctx, storage.ObjectPath(uploadFolder, uid, ext), data, contentType)
	if err != nil {
		log.WithError(err).Error("Failed to store photo")
		return "", fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	log.WithField("url", url).Info("Photo uploaded")
	return url, nil
}

// CreateComplaint сохраняет новую жалобу со статусом pending.
// Краткое описание от модели добавляется, если она доступна.
func (s *complaintService) CreateComplaint(ctx context.Context, complaint *models.Complaint) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "complaint",
		"method":  "CreateComplaint",
		"uid":     complaint.UserID,
	})
	log.Info("Attempting to create a new complaint")

	complaint.Description = strings.TrimSpace(complaint.Description)
	if complaint.Description == "" {
		return fmt.Errorf("description is required: %w", models.ErrInvalidIssue)
	}

	allowed, retryAfter, err := s.limiter.Allow(ctx, complaint.UserID)
	if err != nil {
		// без Redis лимит не проверяется
		log.WithError(err).Warn("Rate limiter unavailable")
	} else if !allowed {
		log.WithField("retry_after", retryAfter).Warn("Daily complaint limit reached")
		return fmt.Errorf("%w: retry after %s", models.ErrRateLimited, retryAfter.Round(time.Minute))
	}

	now := s.now().UTC()
	complaint.ID = ""
	complaint.Status = models.StatusPending
	complaint.CreatedAt = now
	complaint.UpdatedAt = now
	complaint.DuplicateOf = nil
	complaint.DuplicateSimilarity = nil
	complaint.TriagedAt = nil

	if summary := s.analyzer.Summarize(ctx, complaint.Description, complaint.Category); summary.IsOk() {
		complaint.AISummary = summary.Value
	} else {
		log.WithError(summary.Err).Warn("AI summary skipped")
	}

	if err := s.repo.Create(ctx, complaint); err != nil {
		log.WithError(err).Error("Failed to create complaint in repository")
		return fmt.Errorf("service: could not create complaint: %w", err)
	}

	if err := s.publisher.Publish(ctx, webhook.NewEvent(webhook.EventComplaintCreated, complaint)); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}

	log.WithField("complaint_id", complaint.ID).Info("Complaint created successfully")
	return nil
}

// GetComplaint читает жалобу через кэш
func (s *complaintService) GetComplaint(ctx context.Context, id string) (*models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "complaint",
		"method":       "GetComplaint",
		"complaint_id": id,
	})

	cached, err := s.repo.GetFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read complaint cache")
	}
	if cached != nil {
		log.Debug("Complaint served from cache")
		return cached, nil
	}

	complaint, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get complaint in repository")
		return nil, fmt.Errorf("service: could not get complaint: %w", err)
	}

	if err := s.repo.SetCache(ctx, complaint); err != nil {
		log.WithError(err).Warn("Failed to cache complaint")
	}
	return complaint, nil
}

// ListComplaints возвращает жалобы по фильтру, новые первыми
func (s *complaintService) ListComplaints(ctx context.Context, filter models.ComplaintFilter) ([]*models.Complaint, error) {
	filter.Limit = clampLimit(filter.Limit)

	complaints, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "complaint",
			"method":  "ListComplaints",
		}).WithError(err).Error("Failed to list complaints")
		return nil, fmt.Errorf("service: could not list complaints: %w", err)
	}
	return complaints, nil
}

func (s *complaintService) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]models.NearbyComplaint, error) {
	if radiusMeters <= 0 {
		radiusMeters = defaultNearbyRadiusMeters
	}
	radiusMeters = min(radiusMeters, maxNearbyRadiusMeters)

	nearby, err := s.triage.FindNearby(ctx, lat, lng, radiusMeters)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "complaint",
			"method":  "FindNearby",
		}).WithError(err).Error("Nearby search failed")
		return nil, fmt.Errorf("service: could not find nearby complaints: %w", err)
	}
	return nearby, nil
}

func clampLimit(limit int64) int64 {
	if limit < 1 {
		return defaultListLimit
	}
	return min(limit, maxListLimit)
}
