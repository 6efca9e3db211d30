package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/cityfix_backend/internal/models"
)

//go:generate mockgen -source=summary.go -destination=mocks/mock_summary.go -package=mocks

const (
	summaryPeriod  = 7 * 24 * time.Hour
	summarySamples = 20
)

// SummaryService определяет контракт недельной сводки
type SummaryService interface {
	Generate(ctx context.Context) (*models.WeeklySummary, error)
	Latest(ctx context.Context) (*models.WeeklySummary, error)
	Start(ctx context.Context, interval time.Duration)
}

type summaryService struct {
	complaints ComplaintRepository
	summaries  SummaryRepository
	analyzer   Analyzer
	logger     *logrus.Logger
	now        func() time.Time
}

func NewSummaryService(complaints ComplaintRepository, summaries SummaryRepository, analyzer Analyzer, logger *logrus.Logger) SummaryService {
	return &summaryService{
		complaints: complaints,
		summaries:  summaries,
		analyzer:   analyzer,
		logger:     logger,
		now:        time.Now,
	}
}

// Generate считает статистику за последние 7 дней и перезаписывает сводку
func (s *summaryService) Generate(ctx context.Context) (*models.WeeklySummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "summary",
		"method":  "Generate",
	})
	log.Info("Generating weekly summary")

	end := s.now().UTC()
	start := end.Add(-summaryPeriod)

	stats, err := s.complaints.Stats(ctx, start)
	if err != nil {
		log.WithError(err).Error("Failed to compute weekly stats")
		return nil, fmt.Errorf("service: could not compute weekly stats: %w", err)
	}

	samples, err := s.complaints.List(ctx, models.ComplaintFilter{Limit: summarySamples})
	if err != nil {
		// пункты можно построить и без примеров
		log.WithError(err).Warn("Failed to load sample complaints")
		samples = nil
	}

	summary := &models.WeeklySummary{
		PeriodStart: start,
		PeriodEnd:   end,
		Stats:       *stats,
		Bullets:     s.analyzer.SummaryBullets(ctx, *stats, recentOnly(samples, start)),
		GeneratedAt: end,
	}
	if err := s.summaries.SaveSummary(ctx, summary); err != nil {
		log.WithError(err).Error("Failed to save weekly summary")
		return nil, fmt.Errorf("service: could not save weekly summary: %w", err)
	}

	log.WithField("total", stats.Total).Info("Weekly summary saved")
	return summary, nil
}

func (s *summaryService) Latest(ctx context.Context) (*models.WeeklySummary, error) {
	summary, err := s.summaries.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get weekly summary: %w", err)
	}
	return summary, nil
}

// Start запускает горутину, которая пересчитывает сводку каждые interval
func (s *summaryService) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		s.logger.Warn("Summary interval is not positive, summary job disabled")
		return
	}
	s.logger.WithField("interval", interval).Info("Starting summary job...")

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping summary job.")
				return
			case <-ticker.C:
				if _, err := s.Generate(ctx); err != nil {
					s.logger.WithError(err).Error("Scheduled summary failed")
				}
			}
		}
	}()
}

func recentOnly(complaints []*models.Complaint, since time.Time) []*models.Complaint {
	out := make([]*models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if !c.CreatedAt.Before(since) {
			out = append(out, c)
		}
	}
	return out
}
