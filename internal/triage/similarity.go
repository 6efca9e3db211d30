package triage

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/cityfix_backend/internal/models"
)

// CosineSimilarity - dot(a,b) / (|a|*|b|). Для пустых векторов и нулевой нормы 0.
// Векторы разной длины сравниваются по общему префиксу.
func CosineSimilarity(a, b []float32) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Fuser сравнивает жалобу с ближайшими кандидатами по тексту и фото
type Fuser struct {
	analyzer      Analyzer
	fetcher       ImageFetcher
	threshold     float64
	maxCandidates int
	logger        *logrus.Logger
}

func NewFuser(analyzer Analyzer, fetcher ImageFetcher, cfg Config, logger *logrus.Logger) *Fuser {
	cfg = cfg.withDefaults()
	return &Fuser{
		analyzer:      analyzer,
		fetcher:       fetcher,
		threshold:     cfg.Threshold,
		maxCandidates: cfg.MaxCandidates,
		logger:        logger,
	}
}

// Fuse выбирает лучшего кандидата в дубликаты. candidates должны быть отсортированы по расстоянию.
// Итоговая оценка - среднее текстовой и визуальной похожести.
// Пустой targetImage.Data означает, что фото жалобы недоступно и визуальная похожесть равна 0.
func (f *Fuser) Fuse(ctx context.Context, targetImage models.Image, targetText string, candidates []models.NearbyComplaint) models.FusionResult {
	log := f.logger.WithFields(logrus.Fields{
		"service":    "triage",
		"method":     "Fuse",
		"candidates": len(candidates),
	})

	if len(candidates) > f.maxCandidates {
		candidates = candidates[:f.maxCandidates]
	}
	if len(candidates) == 0 {
		return models.FusionResult{}
	}

	var targetVec []float32
	if res := f.analyzer.Embed(ctx, targetText); res.IsOk() {
		targetVec = res.Value
	} else {
		log.WithError(res.Err).Warn("Target embedding failed, text similarity disabled")
	}

	var result models.FusionResult
	best := 0.0
	for _, cand := range candidates {
		c := cand.Complaint
		if c == nil {
			continue
		}
		clog := log.WithField("candidate_id", c.ID)

		textSim := 0.0
		if targetVec != nil {
			if res := f.analyzer.Embed(ctx, c.Description); res.IsOk() {
				textSim = CosineSimilarity(targetVec, res.Value)
			} else {
				clog.WithError(res.Err).Warn("Candidate embedding failed, skipping")
				continue
			}
		}

		imageSim, ok := f.imageSimilarity(ctx, targetImage, c, clog)
		if !ok {
			continue
		}

		fused := (textSim + imageSim) / 2
		clog.WithFields(logrus.Fields{
			"text":  textSim,
			"image": imageSim,
			"fused": fused,
		}).Debug("Candidate scored")

		if fused > f.threshold && fused > best {
			best = fused
			id, score := c.ID, fused
			result = models.FusionResult{DuplicateOf: &id, Score: &score}
		}
	}
	return result
}

// imageSimilarity возвращает false, если кандидата нужно пропустить
func (f *Fuser) imageSimilarity(ctx context.Context, target models.Image, c *models.Complaint, log *logrus.Entry) (float64, bool) {
	if len(target.Data) == 0 || c.PhotoURL == "" {
		return 0, true
	}

	img, err := f.fetcher.Fetch(ctx, c.PhotoURL)
	if err != nil {
		log.WithError(err).Warn("Candidate photo fetch failed, skipping")
		return 0, false
	}

	res := f.analyzer.CompareImages(ctx, target, img)
	if !res.IsOk() {
		log.WithError(res.Err).Warn("Image comparison failed, skipping")
		return 0, false
	}
	return res.Value, true
}
