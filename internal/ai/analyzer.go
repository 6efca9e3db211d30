package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/cityfix_backend/internal/models"
	"github.com/sirupsen/logrus"
)

// ReasonAIUnavailable - обоснование оценки серьезности по умолчанию
const ReasonAIUnavailable = "AI unavailable"

// Analyzer - адаптер классификации, оценки серьезности и сравнения изображений.
// Методы без Result в сигнатуре никогда не возвращают ошибку.
type Analyzer struct {
	gen    Generator
	emb    Embedder
	logger *logrus.Logger
}

func NewAnalyzer(gen Generator, emb Embedder, logger *logrus.Logger) *Analyzer {
	return &Analyzer{
		gen:    gen,
		emb:    emb,
		logger: logger,
	}
}

func generate[T any](ctx context.Context, gen Generator, req Request) Result[T] {
	raw, err := gen.GenerateJSON(ctx, req)
	if err != nil {
		return Fail[T](err)
	}
	var v T
	if err := decodeJSON(raw, &v); err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

type classifyResponse struct {
	Category   string `json:"category"`
	Confidence score  `json:"confidence"`
}

// Classify определяет категорию по фото и описанию
func (a *Analyzer) Classify(ctx context.Context, img models.Image, description string) models.Classification {
	res := generate[classifyResponse](ctx, a.gen, Request{
		System: systemCivic,
		Prompt: classifyPrompt(description),
		Images: []models.Image{img},
		Schema: classifySchema,
	})
	if res.Err != nil {
		a.logger.WithError(res.Err).WithField("method", "Classify").Warn("Classification failed, using defaults")
		return models.Classification{
			Category:   models.CategoryOther,
			Confidence: 0,
			Error:      res.Err.Error(),
		}
	}
	return models.Classification{
		Category:   models.ParseCategory(res.Value.Category),
		Confidence: clamp01(float64(res.Value.Confidence)),
	}
}

type severityResponse struct {
	Severity string `json:"severity"`
	Reason   string `json:"reason"`
}

// AssessSeverity оценивает серьезность по тексту. Значения вне {High, Medium, Low} становятся Medium.
func (a *Analyzer) AssessSeverity(ctx context.Context, description string, category models.Category) models.SeverityAssessment {
	res := generate[severityResponse](ctx, a.gen, Request{
		System: systemCivic,
		Prompt: severityPrompt(description, category),
		Schema: severitySchema,
	})
	if res.Err != nil {
		a.logger.WithError(res.Err).WithField("method", "AssessSeverity").Warn("Severity assessment failed, using defaults")
		return models.SeverityAssessment{Severity: models.SeverityMedium, Reason: ReasonAIUnavailable}
	}
	sev, ok := models.ParseSeverity(strings.TrimSpace(res.Value.Severity))
	if !ok {
		sev = models.SeverityMedium
	}
	return models.SeverityAssessment{Severity: sev, Reason: res.Value.Reason}
}

type similarityResponse struct {
	Similarity score `json:"similarity"`
}

// CompareImages оценивает, изображена ли на двух фото одна и та же проблема
func (a *Analyzer) CompareImages(ctx context.Context, first, second models.Image) Result[float64] {
	res := generate[similarityResponse](ctx, a.gen, Request{
		System: systemCivic,
		Prompt: similarityPrompt,
		Images: []models.Image{first, second},
		Schema: similaritySchema,
	})
	if res.Err != nil {
		return Fail[float64](res.Err)
	}
	return Ok(clamp01(float64(res.Value.Similarity)))
}

func (a *Analyzer) Embed(ctx context.Context, text string) Result[[]float32] {
	vec, err := a.emb.Embed(ctx, text)
	if err != nil {
		return Fail[[]float32](err)
	}
	return Ok(vec)
}

type verificationResponse struct {
	Status      string `json:"status"`
	Confidence  score  `json:"confidence"`
	Explanation string `json:"explanation"`
}

// VerifyResolution сравнивает фото до и после работ
func (a *Analyzer) VerifyResolution(ctx context.Context, before, after models.Image, category models.Category) models.ResolutionVerification {
	res := generate[verificationResponse](ctx, a.gen, Request{
		System: systemCivic,
		Prompt: verificationPrompt(category),
		Images: []models.Image{before, after},
		Schema: verificationSchema,
	})
	if res.Err != nil {
		a.logger.WithError(res.Err).WithField("method", "VerifyResolution").Warn("Resolution verification failed")
		return models.ResolutionVerification{Status: models.ResolutionUnclear, Confidence: 0, Explanation: ReasonAIUnavailable}
	}

	status := strings.ToLower(strings.TrimSpace(res.Value.Status))
	switch status {
	case models.ResolutionResolved, models.ResolutionPartiallyResolved, models.ResolutionNotResolved:
	default:
		status = models.ResolutionUnclear
	}
	conf := float64(res.Value.Confidence)
	if conf > 1 {
		// некоторые модели отвечают в процентах
		conf /= 100
	}
	return models.ResolutionVerification{
		Status:      status,
		Confidence:  clamp01(conf),
		Explanation: res.Value.Explanation,
	}
}

type bulletsResponse struct {
	Bullets []string `json:"bullets"`
}

// SummaryBullets возвращает три пункта недельной сводки. Без модели пункты строятся из статистики.
func (a *Analyzer) SummaryBullets(ctx context.Context, stats models.ComplaintStats, samples []*models.Complaint) []string {
	res := generate[bulletsResponse](ctx, a.gen, Request{
		System: systemCivic,
		Prompt: bulletsPrompt(stats, samples),
		Schema: bulletsSchema,
	})
	if res.Err != nil || len(res.Value.Bullets) == 0 {
		if res.Err != nil {
			a.logger.WithError(res.Err).WithField("method", "SummaryBullets").Warn("Summary generation failed, using statistics")
		}
		return fallbackBullets(stats)
	}
	bullets := res.Value.Bullets
	if len(bullets) > 3 {
		bullets = bullets[:3]
	}
	return bullets
}

func fallbackBullets(stats models.ComplaintStats) []string {
	top, topCount := "", int64(0)
	for cat, n := range stats.ByCategory {
		if n > topCount || (n == topCount && cat < top) {
			top, topCount = cat, n
		}
	}
	bullets := []string{fmt.Sprintf("%d new complaints this week", stats.Total)}
	if top != "" {
		bullets = append(bullets, fmt.Sprintf("Most frequent issue type: %s (%d)", top, topCount))
	}
	resolvedPct := 0.0
	if stats.Total > 0 {
		resolvedPct = float64(stats.Resolved) * 100 / float64(stats.Total)
	}
	bullets = append(bullets, fmt.Sprintf("%.0f%% resolved, %d pending, %d in progress", resolvedPct, stats.Pending, stats.InProgress))
	return bullets
}

type actionPlanResponse struct {
	Steps          []string `json:"steps"`
	Crew           string   `json:"crew"`
	EstimatedHours score    `json:"estimatedHours"`
}

// ActionPlan предлагает план работ. Ошибка модели возвращается вызывающему.
func (a *Analyzer) ActionPlan(ctx context.Context, c *models.Complaint) Result[models.ActionPlan] {
	res := generate[actionPlanResponse](ctx, a.gen, Request{
		System: systemCivic,
		Prompt: actionPlanPrompt(c),
		Schema: actionPlanSchema,
	})
	if res.Err != nil {
		return Fail[models.ActionPlan](fmt.Errorf("%w: %v", models.ErrAIUnavailable, res.Err))
	}
	hours := float64(res.Value.EstimatedHours)
	if hours < 0 {
		hours = 0
	}
	return Ok(models.ActionPlan{
		Steps:          res.Value.Steps,
		Crew:           res.Value.Crew,
		EstimatedHours: hours,
	})
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// Summarize - краткое описание жалобы для диспетчера
func (a *Analyzer) Summarize(ctx context.Context, description string, category models.Category) Result[string] {
	res := generate[summaryResponse](ctx, a.gen, Request{
		System: systemCivic,
		Prompt: summaryPrompt(description, category),
		Schema: summarySchema,
	})
	if res.Err != nil {
		return Fail[string](res.Err)
	}
	return Ok(strings.TrimSpace(res.Value.Summary))
}

type chatResponse struct {
	Response string `json:"response"`
}

// Chat отвечает на вопрос жителя. contextData - произвольные данные от клиента, например статус жалобы.
func (a *Analyzer) Chat(ctx context.Context, query, contextData string) Result[string] {
	res := generate[chatResponse](ctx, a.gen, Request{
		System: systemCivic,
		Prompt: chatPrompt(query, contextData),
		Schema: chatSchema,
	})
	if res.Err != nil {
		return Fail[string](fmt.Errorf("%w: %v", models.ErrAIUnavailable, res.Err))
	}
	answer := strings.TrimSpace(res.Value.Response)
	if answer == "" {
		return Fail[string](fmt.Errorf("%w: %v", models.ErrAIUnavailable, ErrEmptyResponse))
	}
	return Ok(answer)
}
