package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/cityfix_backend/internal/ai"
	"github.com/shenikar/cityfix_backend/internal/models"
	"github.com/shenikar/cityfix_backend/internal/service/mocks"
	"github.com/shenikar/cityfix_backend/internal/webhook"
	webhook_mocks "github.com/shenikar/cityfix_backend/internal/webhook/mocks"
)

type aiMocks struct {
	triage    *mocks.MockTriage
	repo      *mocks.MockComplaintRepository
	analyzer  *mocks.MockAnalyzer
	fetcher   *mocks.MockImageFetcher
	publisher *webhook_mocks.MockPublisher
}

func newTestAIService(t *testing.T) (AIService, aiMocks) {
	ctrl := gomock.NewController(t)
	m := aiMocks{
		triage:    mocks.NewMockTriage(ctrl),
		repo:      mocks.NewMockComplaintRepository(ctrl),
		analyzer:  mocks.NewMockAnalyzer(ctrl),
		fetcher:   mocks.NewMockImageFetcher(ctrl),
		publisher: webhook_mocks.NewMockPublisher(ctrl),
	}
	return NewAIService(m.triage, m.repo, m.analyzer, m.fetcher, m.publisher, newTestLogger()), m
}

var (
	testAdmin    = &models.User{UID: "admin-1", Role: models.RoleAdmin}
	testReporter = &models.User{UID: "uid-1", Role: models.RoleUser}
)

func TestProcessIssue_PublishesTriagedEvent(t *testing.T) {
	service, m := newTestAIService(t)
	ctx := context.Background()
	dup := "A"
	score := 0.9
	result := &models.TriageResult{
		Category:            models.CategoryPothole,
		Priority:            models.PriorityHigh,
		DuplicateOf:         &dup,
		DuplicateSimilarity: &score,
	}

	m.triage.EXPECT().ProcessIssue(ctx, "B").Return(result, nil)
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e webhook.Event) error {
			assert.Equal(t, webhook.EventComplaintTriaged, e.Type)
			assert.Equal(t, "B", e.ComplaintID)
			assert.Equal(t, &dup, e.DuplicateOf)
			return nil
		})

	got, err := service.ProcessIssue(ctx, "B", testAdmin)

	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestProcessIssue_ReporterMayRerun(t *testing.T) {
	service, m := newTestAIService(t)
	ctx := context.Background()
	result := &models.TriageResult{Category: models.CategoryGarbage, Priority: models.PriorityLow}

	m.repo.EXPECT().GetByID(ctx, "B").Return(&models.Complaint{ID: "B", UserID: "uid-1"}, nil)
	m.triage.EXPECT().ProcessIssue(ctx, "B").Return(result, nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	got, err := service.ProcessIssue(ctx, "B", testReporter)

	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestProcessIssue_OtherUserForbidden(t *testing.T) {
	service, m := newTestAIService(t)
	ctx := context.Background()

	m.repo.EXPECT().GetByID(ctx, "B").Return(&models.Complaint{ID: "B", UserID: "someone-else"}, nil)
	m.triage.EXPECT().ProcessIssue(gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.ProcessIssue(ctx, "B", testReporter)

	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestProcessIssue_NoCallerForbidden(t *testing.T) {
	service, m := newTestAIService(t)

	m.triage.EXPECT().ProcessIssue(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.ProcessIssue(context.Background(), "B", nil)

	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestProcessIssue_OwnerLookupNotFound(t *testing.T) {
	service, m := newTestAIService(t)
	ctx := context.Background()

	m.repo.EXPECT().GetByID(ctx, "missing").Return(nil, models.ErrNotFound)

	_, err := service.ProcessIssue(ctx, "missing", testReporter)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProcessIssue_ErrorsPassThrough(t *testing.T) {
	for _, wantErr := range []error{models.ErrNotFound, models.ErrInvalidIssue} {
		service, m := newTestAIService(t)
		ctx := context.Background()

		m.triage.EXPECT().ProcessIssue(ctx, "x").Return(nil, wantErr)

		_, err := service.ProcessIssue(ctx, "x", testAdmin)

		assert.ErrorIs(t, err, wantErr)
	}
}

func TestClassify(t *testing.T) {
	service, m := newTestAIService(t)
	ctx := context.Background()
	img := models.Image{Data: []byte("img")}
	expected := models.Classification{Category: models.CategoryTree, Confidence: 0.7}

	m.fetcher.EXPECT().Fetch(ctx, "http://p").Return(img, nil)
	m.analyzer.EXPECT().Classify(ctx, img, "fallen tree").Return(expected)

	assert.Equal(t, expected, service.Classify(ctx, "http://p", "fallen tree"))
}

func TestClassify_FetchFailureReturnsDefault(t *testing.T) {
	service, m := newTestAIService(t)
	ctx := context.Background()

	m.fetcher.EXPECT().Fetch(ctx, "http://p").Return(models.Image{}, models.ErrFetchFailed)

	got := service.Classify(ctx, "http://p", "x")

	assert.Equal(t, models.CategoryOther, got.Category)
	assert.Equal(t, 0.0, got.Confidence)
	assert.NotEmpty(t, got.Error)
}

func TestAssessSeverity_MapsPriority(t *testing.T) {
	service, m := newTestAIService(t)
	ctx := context.Background()

	m.analyzer.EXPECT().
		AssessSeverity(ctx, "deep pothole", models.CategoryPothole).
		Return(models.SeverityAssessment{Severity: models.SeverityHigh, Reason: "hazard"})

	assessment, priority := service.AssessSeverity(ctx, "deep pothole", models.CategoryPothole)

	assert.Equal(t, "hazard", assessment.Reason)
	assert.Equal(t, models.PriorityHigh, priority)
}

func TestChat(t *testing.T) {
	service, m := newTestAIService(t)
	ctx := context.Background()

	m.analyzer.EXPECT().
		Chat(ctx, "Where is my complaint?", `{"status":"pending"}`).
		Return(ai.Ok("It is pending review."))

	answer, err := service.Chat(ctx, "Where is my complaint?", map[string]any{"status": "pending"})

	require.NoError(t, err)
	assert.Equal(t, "It is pending review.", answer)
}

func TestChat_NoContext(t *testing.T) {
	service, m := newTestAIService(t)
	ctx := context.Background()

	m.analyzer.EXPECT().Chat(ctx, "hello", "").Return(ai.Ok("Hi!"))

	answer, err := service.Chat(ctx, "hello", nil)

	require.NoError(t, err)
	assert.Equal(t, "Hi!", answer)
}

func TestChat_AIUnavailable(t *testing.T) {
	service, m := newTestAIService(t)
	ctx := context.Background()

	m.analyzer.EXPECT().Chat(ctx, "hello", "").Return(ai.Fail[string](models.ErrAIUnavailable))

	_, err := service.Chat(ctx, "hello", nil)

	assert.ErrorIs(t, err, models.ErrAIUnavailable)
}
