package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/cityfix_backend/internal/models"
	"github.com/shenikar/cityfix_backend/internal/webhook"
)

//go:generate mockgen -source=admin.go -destination=mocks/mock_admin.go -package=mocks

// AdminService определяет контракт модерации жалоб
type AdminService interface {
	ListComplaints(ctx context.Context, filter models.ComplaintFilter) ([]*models.Complaint, error)
	UpdateComplaint(ctx context.Context, id string, update models.ComplaintUpdate) (*models.Complaint, error)
	Stats(ctx context.Context) (*models.ComplaintStats, error)
	VerifyResolution(ctx context.Context, id, afterPhotoURL string) (*models.ResolutionVerification, error)
	ActionPlan(ctx context.Context, id string) (*models.ActionPlan, error)
}

type adminService struct {
	repo      ComplaintRepository
	analyzer  Analyzer
	fetcher   ImageFetcher
	publisher webhook.Publisher
	logger    *logrus.Logger
}

func NewAdminService(repo ComplaintRepository, analyzer Analyzer, fetcher ImageFetcher, publisher webhook.Publisher, logger *logrus.Logger) AdminService {
	return &adminService{
		repo:      repo,
		analyzer:  analyzer,
		fetcher:   fetcher,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *adminService) ListComplaints(ctx context.Context, filter models.ComplaintFilter) ([]*models.Complaint, error) {
	filter.Limit = clampLimit(filter.Limit)
	complaints, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: could not list complaints: %w", err)
	}
	return complaints, nil
}

// UpdateComplaint применяет изменения администратора и возвращает обновленную жалобу
func (s *adminService) UpdateComplaint(ctx context.Context, id string, update models.ComplaintUpdate) (*models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "admin",
		"method":       "UpdateComplaint",
		"complaint_id": id,
	})
	log.Info("Attempting to update complaint")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent complaint")
		return nil, fmt.Errorf("service: complaint %s not found for update: %w", id, err)
	}

	fields, err := updateFields(update)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			log.WithError(err).Error("Failed to update complaint in repository")
			return nil, fmt.Errorf("service: could not update complaint: %w", err)
		}
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not reload complaint: %w", err)
	}

	if len(fields) > 0 {
		if err := s.publisher.Publish(ctx, webhook.NewEvent(webhook.EventComplaintUpdated, updated)); err != nil {
			log.WithError(err).Warn("Failed to publish webhook event")
		}
	}

	log.WithField("fields", len(fields)).Info("Complaint updated successfully")
	return updated, nil
}

func updateFields(u models.ComplaintUpdate) (map[string]any, error) {
	fields := make(map[string]any)
	if u.Status != nil {
		if !u.Status.Valid() {
			return nil, fmt.Errorf("invalid status %q: %w", *u.Status, models.ErrInvalidIssue)
		}
		fields[models.FieldStatus] = *u.Status
	}
	if u.Priority != nil {
		fields[models.FieldPriority] = *u.Priority
	}
	if u.AdminRemarks != nil {
		fields[models.FieldAdminRemarks] = strings.TrimSpace(*u.AdminRemarks)
	}
	if u.ResolutionPhotoURL != nil {
		fields[models.FieldResolutionPhotoURL] = *u.ResolutionPhotoURL
	}
	if u.ResolutionConfidence != nil {
		c := *u.ResolutionConfidence
		if c < 0 || c > 1 {
			return nil, fmt.Errorf("resolution confidence %v out of range: %w", c, models.ErrInvalidIssue)
		}
		fields[models.FieldResolutionConfidence] = c
	}
	return fields, nil
}

// Stats - статистика за все время для панели администратора
func (s *adminService) Stats(ctx context.Context) (*models.ComplaintStats, error) {
	stats, err := s.repo.Stats(ctx, time.Time{})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "admin",
			"method":  "Stats",
		}).WithError(err).Error("Failed to compute stats")
		return nil, fmt.Errorf("service: could not compute stats: %w", err)
	}
	return stats, nil
}

// VerifyResolution сравнивает исходное фото с фото после работ и сохраняет вердикт
func (s *adminService) VerifyResolution(ctx context.Context, id, afterPhotoURL string) (*models.ResolutionVerification, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "admin",
		"method":       "VerifyResolution",
		"complaint_id": id,
	})

	complaint, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get complaint: %w", err)
	}
	if complaint.PhotoURL == "" {
		return nil, fmt.Errorf("complaint %s has no photo: %w", id, models.ErrInvalidIssue)
	}

	before, err := s.fetcher.Fetch(ctx, complaint.PhotoURL)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch original photo")
		return nil, err
	}
	after, err := s.fetcher.Fetch(ctx, afterPhotoURL)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch resolution photo")
		return nil, err
	}

	verification := s.analyzer.VerifyResolution(ctx, before, after, complaint.Category)
	fields := map[string]any{
		models.FieldResolutionPhotoURL:     afterPhotoURL,
		models.FieldResolutionVerification: verification.Status,
		models.FieldResolutionConfidence:   verification.Confidence,
	}
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		log.WithError(err).Error("Failed to store verification")
		return nil, fmt.Errorf("service: could not store verification: %w", err)
	}

	log.WithFields(logrus.Fields{
		"status":     verification.Status,
		"confidence": verification.Confidence,
	}).Info("Resolution verified")
	return &verification, nil
}

// ActionPlan предлагает план работ. Недоступность модели возвращается как models.ErrAIUnavailable.
func (s *adminService) ActionPlan(ctx context.Context, id string) (*models.ActionPlan, error) {
	complaint, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get complaint: %w", err)
	}

	res := s.analyzer.ActionPlan(ctx, complaint)
	if !res.IsOk() {
		s.logger.WithFields(logrus.Fields{
			"service":      "admin",
			"method":       "ActionPlan",
			"complaint_id": id,
		}).WithError(res.Err).Warn("Action plan unavailable")
		return nil, res.Err
	}
	return &res.Value, nil
}
