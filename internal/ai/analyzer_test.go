package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/shenikar/cityfix_backend/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator возвращает заранее заданный ответ и запоминает последний запрос
type fakeGenerator struct {
	response string
	err      error
	last     Request
	calls    int
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, req Request) ([]byte, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.response), nil
}

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) Embed(context.Context, string) ([]float32, error) {
	return f.vec, f.err
}

func newTestAnalyzer(gen Generator) *Analyzer {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewAnalyzer(gen, &fakeEmbedder{vec: []float32{1, 0}}, logger)
}

var testImage = models.Image{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"}

func TestClassify_Success(t *testing.T) {
	gen := &fakeGenerator{response: `{"category": "pothole", "confidence": 0.92}`}
	a := newTestAnalyzer(gen)

	got := a.Classify(context.Background(), testImage, "Large pothole near the bus stop")

	assert.Equal(t, models.CategoryPothole, got.Category)
	assert.InDelta(t, 0.92, got.Confidence, 1e-9)
	assert.Empty(t, got.Error)
	require.Len(t, gen.last.Images, 1)
	assert.Equal(t, classifySchema, gen.last.Schema)
	assert.Contains(t, gen.last.Prompt, "Large pothole near the bus stop")
}

func TestClassify_ClampsConfidenceAndNormalizesCategory(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n{\"category\": \"water_supply\", \"confidence\": \"1.7\"}\n```"}
	a := newTestAnalyzer(gen)

	got := a.Classify(context.Background(), testImage, "pipe burst")

	assert.Equal(t, models.CategoryWaterSupply, got.Category)
	assert.Equal(t, 1.0, got.Confidence)
}

func TestClassify_UnknownCategory(t *testing.T) {
	gen := &fakeGenerator{response: `{"category": "Volcano", "confidence": 0.5}`}
	a := newTestAnalyzer(gen)

	got := a.Classify(context.Background(), testImage, "smoke")

	assert.Equal(t, models.CategoryOther, got.Category)
	assert.Equal(t, 0.5, got.Confidence)
}

func TestClassify_ProviderError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	a := newTestAnalyzer(gen)

	got := a.Classify(context.Background(), testImage, "anything")

	assert.Equal(t, models.CategoryOther, got.Category)
	assert.Equal(t, 0.0, got.Confidence)
	assert.Contains(t, got.Error, "quota exceeded")
}

func TestClassify_MalformedJSON(t *testing.T) {
	gen := &fakeGenerator{response: "I think this is a pothole"}
	a := newTestAnalyzer(gen)

	got := a.Classify(context.Background(), testImage, "anything")

	assert.Equal(t, models.CategoryOther, got.Category)
	assert.Equal(t, 0.0, got.Confidence)
	assert.NotEmpty(t, got.Error)
}

func TestClassify_NonFiniteConfidence(t *testing.T) {
	for _, value := range []string{"NaN", "Inf", "-Infinity"} {
		t.Run(value, func(t *testing.T) {
			gen := &fakeGenerator{response: `{"category": "Pothole", "confidence": "` + value + `"}`}
			a := newTestAnalyzer(gen)

			got := a.Classify(context.Background(), testImage, "pothole")

			assert.Equal(t, models.CategoryOther, got.Category)
			assert.Equal(t, 0.0, got.Confidence)
			assert.NotEmpty(t, got.Error)
			_, err := json.Marshal(got)
			assert.NoError(t, err)
		})
	}
}

func TestCompareImages_NaNSimilarity(t *testing.T) {
	a := newTestAnalyzer(&fakeGenerator{response: `{"similarity": "nan"}`})

	res := a.CompareImages(context.Background(), testImage, testImage)

	assert.Error(t, res.Err)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(math.NaN()))
	assert.Equal(t, 1.0, clamp01(math.Inf(1)))
	assert.Equal(t, 0.0, clamp01(math.Inf(-1)))
	assert.Equal(t, 0.4, clamp01(0.4))
}

func TestAssessSeverity_Success(t *testing.T) {
	gen := &fakeGenerator{response: `{"severity": "High", "reason": "Blocks traffic"}`}
	a := newTestAnalyzer(gen)

	got := a.AssessSeverity(context.Background(), "Tree fell on the road", models.CategoryTree)

	assert.Equal(t, models.SeverityHigh, got.Severity)
	assert.Equal(t, "Blocks traffic", got.Reason)
	assert.Contains(t, gen.last.Prompt, "Category: Tree")
	assert.Empty(t, gen.last.Images)
}

func TestAssessSeverity_UnknownSeverityKeepsReason(t *testing.T) {
	gen := &fakeGenerator{response: `{"severity": "Urgent", "reason": "x"}`}
	a := newTestAnalyzer(gen)

	got := a.AssessSeverity(context.Background(), "desc", models.CategoryOther)

	assert.Equal(t, models.SeverityMedium, got.Severity)
	assert.Equal(t, "x", got.Reason)
}

func TestAssessSeverity_ProviderError(t *testing.T) {
	gen := &fakeGenerator{err: models.ErrAIUnavailable}
	a := newTestAnalyzer(gen)

	got := a.AssessSeverity(context.Background(), "desc", "")

	assert.Equal(t, models.SeverityAssessment{Severity: models.SeverityMedium, Reason: "AI unavailable"}, got)
}

func TestCompareImages(t *testing.T) {
	gen := &fakeGenerator{response: `Sure! {"similarity": 0.87}`}
	a := newTestAnalyzer(gen)

	res := a.CompareImages(context.Background(), testImage, testImage)

	require.True(t, res.IsOk())
	assert.InDelta(t, 0.87, res.Value, 1e-9)
	assert.Len(t, gen.last.Images, 2)
}

func TestCompareImages_Clamped(t *testing.T) {
	a := newTestAnalyzer(&fakeGenerator{response: `{"similarity": -0.3}`})

	res := a.CompareImages(context.Background(), testImage, testImage)

	require.NoError(t, res.Err)
	assert.Equal(t, 0.0, res.Value)
}

func TestCompareImages_Error(t *testing.T) {
	a := newTestAnalyzer(&fakeGenerator{err: errors.New("timeout")})

	res := a.CompareImages(context.Background(), testImage, testImage)

	assert.Error(t, res.Err)
	assert.Equal(t, 0.0, res.OrElse(0))
}

func TestEmbed_Error(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	a := NewAnalyzer(&fakeGenerator{}, &fakeEmbedder{err: models.ErrAIUnavailable}, logger)

	res := a.Embed(context.Background(), "text")

	assert.ErrorIs(t, res.Err, models.ErrAIUnavailable)
}

func TestVerifyResolution_PercentConfidence(t *testing.T) {
	a := newTestAnalyzer(&fakeGenerator{response: `{"status": "Resolved", "confidence": 85, "explanation": "road repaved"}`})

	got := a.VerifyResolution(context.Background(), testImage, testImage, models.CategoryPothole)

	assert.Equal(t, models.ResolutionResolved, got.Status)
	assert.InDelta(t, 0.85, got.Confidence, 1e-9)
	assert.Equal(t, "road repaved", got.Explanation)
}

func TestVerifyResolution_Error(t *testing.T) {
	a := newTestAnalyzer(&fakeGenerator{err: errors.New("boom")})

	got := a.VerifyResolution(context.Background(), testImage, testImage, models.CategoryPothole)

	assert.Equal(t, models.ResolutionUnclear, got.Status)
	assert.Equal(t, 0.0, got.Confidence)
}

func TestSummaryBullets_TruncatesToThree(t *testing.T) {
	a := newTestAnalyzer(&fakeGenerator{response: `{"bullets": ["a", "b", "c", "d"]}`})

	got := a.SummaryBullets(context.Background(), models.ComplaintStats{Total: 4}, nil)

	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSummaryBullets_FallbackFromStats(t *testing.T) {
	a := newTestAnalyzer(&fakeGenerator{err: errors.New("down")})
	stats := models.ComplaintStats{
		Total:      10,
		Pending:    4,
		InProgress: 1,
		Resolved:   5,
		ByCategory: map[string]int64{"Pothole": 6, "Garbage": 4},
	}

	got := a.SummaryBullets(context.Background(), stats, nil)

	require.Len(t, got, 3)
	assert.Equal(t, "10 new complaints this week", got[0])
	assert.Equal(t, "Most frequent issue type: Pothole (6)", got[1])
	assert.Equal(t, "50% resolved, 4 pending, 1 in progress", got[2])
}

func TestActionPlan(t *testing.T) {
	a := newTestAnalyzer(&fakeGenerator{response: `{"steps": ["cone off area", "fill pothole"], "crew": "road crew", "estimatedHours": 3}`})

	res := a.ActionPlan(context.Background(), &models.Complaint{Description: "pothole", Category: models.CategoryPothole})

	require.NoError(t, res.Err)
	assert.Equal(t, "road crew", res.Value.Crew)
	assert.Equal(t, 3.0, res.Value.EstimatedHours)
	assert.Len(t, res.Value.Steps, 2)
}

func TestActionPlan_Error(t *testing.T) {
	a := newTestAnalyzer(&fakeGenerator{err: errors.New("down")})

	res := a.ActionPlan(context.Background(), &models.Complaint{})

	assert.ErrorIs(t, res.Err, models.ErrAIUnavailable)
}

func TestPriorityFromSeverity(t *testing.T) {
	tests := []struct {
		severity models.Severity
		want     models.Priority
	}{
		{models.SeverityHigh, models.PriorityHigh},
		{models.SeverityMedium, models.PriorityMedium},
		{models.SeverityLow, models.PriorityLow},
		{models.Severity("Urgent"), models.PriorityMedium},
		{models.Severity(""), models.PriorityMedium},
	}
	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityFromSeverity(tt.severity))
		})
	}
}

func TestDecodeJSON_Array(t *testing.T) {
	var out []string
	require.NoError(t, decodeJSON([]byte(`Here you go: ["x", "y"] done`), &out))
	assert.Equal(t, []string{"x", "y"}, out)
}

func TestChat(t *testing.T) {
	gen := &fakeGenerator{response: `{"response": "  Your complaint is in progress.  "}`}
	a := newTestAnalyzer(gen)

	res := a.Chat(context.Background(), "What is the status of my complaint?", `{"status":"in_progress"}`)

	require.NoError(t, res.Err)
	assert.Equal(t, "Your complaint is in progress.", res.Value)
	assert.Equal(t, chatSchema, gen.last.Schema)
	assert.Contains(t, gen.last.Prompt, "What is the status of my complaint?")
	assert.Contains(t, gen.last.Prompt, `{"status":"in_progress"}`)
}

func TestChat_Errors(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"provider error", &fakeGenerator{err: errors.New("quota exceeded")}},
		{"empty answer", &fakeGenerator{response: `{"response": "   "}`}},
		{"not json", &fakeGenerator{response: "hello"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestAnalyzer(tt.gen).Chat(context.Background(), "hi", "")

			assert.ErrorIs(t, res.Err, models.ErrAIUnavailable)
		})
	}
}
