package triage

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/cityfix_backend/internal/ai"
	"github.com/shenikar/cityfix_backend/internal/models"
	"github.com/shenikar/cityfix_backend/internal/triage/mocks"
)

type orchestratorMocks struct {
	store    *mocks.MockStore
	analyzer *mocks.MockAnalyzer
	fetcher  *mocks.MockImageFetcher
}

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestOrchestrator(t *testing.T) (*Orchestrator, orchestratorMocks) {
	ctrl := gomock.NewController(t)
	m := orchestratorMocks{
		store:    mocks.NewMockStore(ctrl),
		analyzer: mocks.NewMockAnalyzer(ctrl),
		fetcher:  mocks.NewMockImageFetcher(ctrl),
	}
	o := NewOrchestrator(m.store, m.analyzer, m.fetcher, DefaultConfig(), newTestLogger())
	o.now = func() time.Time { return fixedNow }
	return o, m
}

func TestProcessIssue_MarksDuplicate(t *testing.T) {
	o, m := newTestOrchestrator(t)
	ctx := context.Background()

	issueA := &models.Complaint{
		ID:          "A",
		Description: "large pothole on main road",
		PhotoURL:    "http://photos/a.jpg",
		Location:    &models.Location{Lat: 12.9716, Lng: 77.5946},
	}
	issueB := &models.Complaint{
		ID:          "B",
		Description: "deep pothole in street",
		PhotoURL:    "http://photos/b.jpg",
		Location:    &models.Location{Lat: 12.9717, Lng: 77.5947},
	}
	imgA := models.Image{Data: []byte("a"), MIMEType: "image/jpeg"}
	imgB := models.Image{Data: []byte("b"), MIMEType: "image/jpeg"}

	var stored map[string]any
	gomock.InOrder(
		m.store.EXPECT().GetByID(ctx, "B").Return(issueB, nil),
		m.fetcher.EXPECT().Fetch(ctx, issueB.PhotoURL).Return(imgB, nil),
		m.analyzer.EXPECT().
			Classify(ctx, imgB, issueB.Description).
			Return(models.Classification{Category: models.CategoryPothole, Confidence: 0.92}),
		m.analyzer.EXPECT().
			AssessSeverity(ctx, issueB.Description, models.CategoryPothole).
			Return(models.SeverityAssessment{Severity: models.SeverityHigh, Reason: "traffic hazard"}),
		m.store.EXPECT().FindInBox(ctx, gomock.Any()).Return([]*models.Complaint{issueA, issueB}, nil),
		m.analyzer.EXPECT().Embed(ctx, issueB.Description).Return(ai.Ok([]float32{1, 0})),
		m.analyzer.EXPECT().Embed(ctx, issueA.Description).Return(ai.Ok([]float32{0.9, float32(math.Sqrt(0.19))})),
		m.fetcher.EXPECT().Fetch(ctx, issueA.PhotoURL).Return(imgA, nil),
		m.analyzer.EXPECT().CompareImages(ctx, imgB, imgA).Return(ai.Ok(0.9)),
		m.store.EXPECT().
			UpdateFields(ctx, "B", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fields map[string]any) error {
				stored = fields
				return nil
			}),
	)

	res, err := o.ProcessIssue(ctx, "B")

	require.NoError(t, err)
	assert.Equal(t, models.CategoryPothole, res.Category)
	assert.Equal(t, models.PriorityHigh, res.Priority)
	assert.Equal(t, "traffic hazard", res.Reason)
	require.NotNil(t, res.DuplicateOf)
	assert.Equal(t, "A", *res.DuplicateOf)
	assert.InDelta(t, 0.9, *res.DuplicateSimilarity, 1e-6)

	assert.Equal(t, models.CategoryPothole, stored[models.FieldCategory])
	assert.Equal(t, 0.92, stored[models.FieldCategoryConfidence])
	assert.Equal(t, models.PriorityHigh, stored[models.FieldPriority])
	assert.Equal(t, fixedNow, stored[models.FieldTriagedAt])
	assert.Equal(t, res.DuplicateOf, stored[models.FieldDuplicateOf])
}

func TestProcessIssue_NoNeighbours(t *testing.T) {
	o, m := newTestOrchestrator(t)
	ctx := context.Background()

	issueC := &models.Complaint{
		ID:          "C",
		Description: "graffiti on wall",
		PhotoURL:    "http://photos/c.jpg",
		Location:    &models.Location{Lat: 13.0166, Lng: 77.5946},
	}
	img := models.Image{Data: []byte("c")}

	m.store.EXPECT().GetByID(ctx, "C").Return(issueC, nil)
	m.fetcher.EXPECT().Fetch(ctx, issueC.PhotoURL).Return(img, nil)
	m.analyzer.EXPECT().Classify(ctx, img, issueC.Description).
		Return(models.Classification{Category: models.CategoryGraffiti, Confidence: 0.8})
	m.analyzer.EXPECT().AssessSeverity(ctx, issueC.Description, models.CategoryGraffiti).
		Return(models.SeverityAssessment{Severity: models.SeverityLow, Reason: "cosmetic"})
	m.store.EXPECT().FindInBox(ctx, gomock.Any()).Return([]*models.Complaint{issueC}, nil)
	m.store.EXPECT().
		UpdateFields(ctx, "C", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields map[string]any) error {
			// устаревшая ссылка на дубликат должна быть снята
			assert.Contains(t, fields, models.FieldDuplicateOf)
			assert.Nil(t, fields[models.FieldDuplicateOf])
			return nil
		})

	res, err := o.ProcessIssue(ctx, "C")

	require.NoError(t, err)
	assert.Equal(t, models.PriorityLow, res.Priority)
	assert.Nil(t, res.DuplicateOf)
	assert.Nil(t, res.DuplicateSimilarity)
}

func TestProcessIssue_InvalidIssue(t *testing.T) {
	tests := []struct {
		name      string
		complaint *models.Complaint
	}{
		{name: "no photo", complaint: &models.Complaint{ID: "x", Location: &models.Location{Lat: 1, Lng: 1}}},
		{name: "no location", complaint: &models.Complaint{ID: "x", PhotoURL: "http://p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, m := newTestOrchestrator(t)
			ctx := context.Background()

			// Никаких вызовов модели и обновлений
			m.store.EXPECT().GetByID(ctx, "x").Return(tt.complaint, nil)

			res, err := o.ProcessIssue(ctx, "x")

			assert.Nil(t, res)
			assert.ErrorIs(t, err, models.ErrInvalidIssue)
		})
	}
}

func TestProcessIssue_NotFound(t *testing.T) {
	o, m := newTestOrchestrator(t)
	ctx := context.Background()

	m.store.EXPECT().GetByID(ctx, "missing").Return(nil, models.ErrNotFound)

	_, err := o.ProcessIssue(ctx, "missing")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProcessIssue_PhotoFetchFailureUsesDefaultClassification(t *testing.T) {
	o, m := newTestOrchestrator(t)
	ctx := context.Background()

	issue := &models.Complaint{
		ID:          "D",
		Description: "broken street light",
		PhotoURL:    "http://photos/gone.jpg",
		Location:    &models.Location{Lat: 10, Lng: 10},
	}

	m.store.EXPECT().GetByID(ctx, "D").Return(issue, nil)
	m.fetcher.EXPECT().Fetch(ctx, issue.PhotoURL).Return(models.Image{}, models.ErrFetchFailed)
	m.analyzer.EXPECT().AssessSeverity(ctx, issue.Description, models.CategoryOther).
		Return(models.SeverityAssessment{Severity: models.SeverityMedium, Reason: ai.ReasonAIUnavailable})
	m.store.EXPECT().FindInBox(ctx, gomock.Any()).Return(nil, nil)
	m.store.EXPECT().UpdateFields(ctx, "D", gomock.Any()).Return(nil)

	res, err := o.ProcessIssue(ctx, "D")

	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, res.Category)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Equal(t, models.PriorityMedium, res.Priority)
}

func TestProcessIssue_UpdateFailure(t *testing.T) {
	o, m := newTestOrchestrator(t)
	ctx := context.Background()

	issue := &models.Complaint{ID: "E", PhotoURL: "http://p", Location: &models.Location{Lat: 1, Lng: 1}}
	img := models.Image{Data: []byte("e")}

	m.store.EXPECT().GetByID(ctx, "E").Return(issue, nil)
	m.fetcher.EXPECT().Fetch(ctx, "http://p").Return(img, nil)
	m.analyzer.EXPECT().Classify(ctx, img, "").Return(models.Classification{Category: models.CategoryOther})
	m.analyzer.EXPECT().AssessSeverity(ctx, "", models.CategoryOther).
		Return(models.SeverityAssessment{Severity: models.SeverityLow})
	m.store.EXPECT().FindInBox(ctx, gomock.Any()).Return(nil, nil)
	m.store.EXPECT().UpdateFields(ctx, "E", gomock.Any()).Return(models.ErrStorageUnavailable)

	_, err := o.ProcessIssue(ctx, "E")

	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
}
