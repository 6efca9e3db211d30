package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/cityfix_backend/internal/ai"
	"github.com/shenikar/cityfix_backend/internal/models"
	"github.com/shenikar/cityfix_backend/internal/webhook"
)

//go:generate mockgen -source=ai.go -destination=mocks/mock_ai.go -package=mocks

// AIService определяет контракт ИИ-обработки жалоб
type AIService interface {
	ProcessIssue(ctx context.Context, id string, caller *models.User) (*models.TriageResult, error)
	Classify(ctx context.Context, photoURL, description string) models.Classification
	AssessSeverity(ctx context.Context, description string, category models.Category) (models.SeverityAssessment, models.Priority)
	Chat(ctx context.Context, query string, contextData map[string]any) (string, error)
}

type aiService struct {
	triage     Triage
	complaints ComplaintRepository
	analyzer   Analyzer
	fetcher    ImageFetcher
	publisher  webhook.Publisher
	logger     *logrus.Logger
}

func NewAIService(triage Triage, complaints ComplaintRepository, analyzer Analyzer, fetcher ImageFetcher, publisher webhook.Publisher, logger *logrus.Logger) AIService {
	return &aiService{
		triage:     triage,
		complaints: complaints,
		analyzer:   analyzer,
		fetcher:    fetcher,
		publisher:  publisher,
		logger:     logger,
	}
}

// ProcessIssue запускает конвейер и сообщает о результате вебхуком.
// Повторно обработать жалобу может только ее автор или администратор.
func (s *aiService) ProcessIssue(ctx context.Context, id string, caller *models.User) (*models.TriageResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "ai",
		"method":       "ProcessIssue",
		"complaint_id": id,
	})

	if err := s.checkOwner(ctx, id, caller); err != nil {
		return nil, err
	}

	result, err := s.triage.ProcessIssue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not process complaint: %w", err)
	}

	event := webhook.NewEvent(webhook.EventComplaintTriaged, &models.Complaint{
		ID:                  id,
		Category:            result.Category,
		Priority:            result.Priority,
		DuplicateOf:         result.DuplicateOf,
		DuplicateSimilarity: result.DuplicateSimilarity,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}
	return result, nil
}

func (s *aiService) checkOwner(ctx context.Context, id string, caller *models.User) error {
	if caller == nil {
		return fmt.Errorf("service: no caller for complaint %s: %w", id, models.ErrForbidden)
	}
	if caller.IsAdmin() {
		return nil
	}

	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: could not get complaint: %w", err)
	}
	if complaint.UserID != caller.UID {
		return fmt.Errorf("service: complaint %s belongs to another user: %w", id, models.ErrForbidden)
	}
	return nil
}

// Classify скачивает фото и классифицирует его. Всегда возвращает результат.
func (s *aiService) Classify(ctx context.Context, photoURL, description string) models.Classification {
	img, err := s.fetcher.Fetch(ctx, photoURL)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "ai",
			"method":  "Classify",
		}).WithError(err).Warn("Photo fetch failed, using default classification")
		return models.Classification{Category: models.CategoryOther, Confidence: 0, Error: err.Error()}
	}
	return s.analyzer.Classify(ctx, img, description)
}

func (s *aiService) AssessSeverity(ctx context.Context, description string, category models.Category) (models.SeverityAssessment, models.Priority) {
	assessment := s.analyzer.AssessSeverity(ctx, description, category)
	return assessment, ai.PriorityFromSeverity(assessment.Severity)
}

// Chat отвечает на вопрос жителя. Без модели возвращается ErrAIUnavailable.
func (s *aiService) Chat(ctx context.Context, query string, contextData map[string]any) (string, error) {
	var raw string
	if len(contextData) > 0 {
		b, err := json.Marshal(contextData)
		if err != nil {
			return "", fmt.Errorf("service: could not encode chat context: %w", err)
		}
		raw = string(b)
	}

	res := s.analyzer.Chat(ctx, query, raw)
	if res.Err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "ai",
			"method":  "Chat",
		}).WithError(res.Err).Warn("Chat response failed")
		return "", fmt.Errorf("service: could not answer: %w", res.Err)
	}
	return res.Value, nil
}
