package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/cityfix_backend/internal/config"
	"github.com/shenikar/cityfix_backend/internal/models"
	"github.com/shenikar/cityfix_backend/internal/service/mocks"
)

const testToken = "Bearer test-token"

type handlerMocks struct {
	auth       *mocks.MockAuthService
	complaints *mocks.MockComplaintService
	admin      *mocks.MockAdminService
	ai         *mocks.MockAIService
	summary    *mocks.MockSummaryService
	health     *mocks.MockHealthService
}

var (
	testIdentity = &models.Identity{Subject: "uid-1", Email: "citizen@example.com"}
	testProfile  = &models.User{UID: "uid-1", Email: "citizen@example.com", Role: models.RoleUser}
)

// newTestHandler создает роутер с мокированными сервисами
func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		auth:       mocks.NewMockAuthService(ctrl),
		complaints: mocks.NewMockComplaintService(ctrl),
		admin:      mocks.NewMockAdminService(ctrl),
		ai:         mocks.NewMockAIService(ctrl),
		summary:    mocks.NewMockSummaryService(ctrl),
		health:     mocks.NewMockHealthService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{MaxUploadBytes: 1 << 20}

	handler := NewHandler(Services{
		Auth:       m.auth,
		Complaints: m.complaints,
		Admin:      m.admin,
		AI:         m.ai,
		Summary:    m.summary,
		Health:     m.health,
	}, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"Authorization": testToken}
}

func expectAuthenticated(m handlerMocks) {
	m.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(testIdentity, nil)
}

func jsonBody(t *testing.T, v any) io.Reader {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	m, router := newTestHandler(t)

	m.auth.EXPECT().Authenticate(gomock.Any(), "").Return(nil, models.ErrUnauthenticated)
	m.complaints.EXPECT().CreateComplaint(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/complaints", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or missing token")
}

func TestRequireAdmin(t *testing.T) {
	testCases := []struct {
		name       string
		adminErr   error
		wantStatus int
		wantBody   string
	}{
		{"not admin", fmt.Errorf("user uid-1 is not admin: %w", models.ErrForbidden), http.StatusForbidden, "admin access required"},
		{"no profile", fmt.Errorf("service: could not load profile: %w", models.ErrNotFound), http.StatusNotFound, "user not found"},
		{"profile store down", errors.New("connection refused"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, router := newTestHandler(t)

			expectAuthenticated(m)
			m.auth.EXPECT().RequireAdmin(gomock.Any(), testIdentity).Return(nil, tc.adminErr)
			m.admin.EXPECT().Stats(gomock.Any()).Times(0)

			w := makeRequest(router, "GET", "/api/admin/stats", nil, authHeader())

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestAdminStats_Success(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.auth.EXPECT().RequireAdmin(gomock.Any(), testIdentity).Return(&models.User{UID: "uid-1", Role: models.RoleAdmin}, nil)
	m.admin.EXPECT().Stats(gomock.Any()).Return(&models.ComplaintStats{Total: 7, Pending: 5}, nil)

	w := makeRequest(router, "GET", "/api/admin/stats", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var stats models.ComplaintStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(7), stats.Total)
}

func TestVerifyToken_SyncsProfile(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.auth.EXPECT().
		SyncProfile(gomock.Any(), testIdentity).
		Return(&models.User{UID: "uid-1", Email: "citizen@example.com", Role: models.RoleUser}, nil)

	w := makeRequest(router, "POST", "/api/auth/verify", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "uid-1", resp.UID)
	assert.Equal(t, "user", resp.Role)
}

func TestUpdateProfile_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.auth.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/auth/profile", bytes.NewBufferString(`{"name": ""}`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateComplaint_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateComplaintRequest{
		Description: "Streetlight is out",
		PhotoURL:    "https://cdn.example.com/complaints/uid-1/a.png",
		Location:    &LocationDTO{Lat: 12.97, Lng: 77.59, Address: "MG Road"},
	}
	createdAt := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

	expectAuthenticated(m)
	m.complaints.EXPECT().
		CreateComplaint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Complaint) error {
			assert.Equal(t, "uid-1", c.UserID)
			assert.Equal(t, 12.97, c.Location.Lat)
			c.ID = "new-id"
			c.Status = models.StatusPending
			c.CreatedAt = createdAt
			return nil
		})

	w := makeRequest(router, "POST", "/api/complaints", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ComplaintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "new-id", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "MG Road", resp.Location.Address)
}

func TestCreateComplaint_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.complaints.EXPECT().CreateComplaint(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/complaints", bytes.NewBufferString(`{"description": "x"`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateComplaint_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateComplaintRequest{ // Нет фото и координат
		Description: "Broken bench",
	}

	expectAuthenticated(m)
	m.complaints.EXPECT().CreateComplaint(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/complaints", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateComplaint_RateLimited(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateComplaintRequest{
		Description: "Garbage not collected",
		PhotoURL:    "https://cdn.example.com/a.png",
		Location:    &LocationDTO{Lat: 1, Lng: 2},
	}

	expectAuthenticated(m)
	m.complaints.EXPECT().
		CreateComplaint(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: retry after 3h0m0s", models.ErrRateLimited))

	w := makeRequest(router, "POST", "/api/complaints", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestGetComplaint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.complaints.EXPECT().
			GetComplaint(gomock.Any(), "c1").
			Return(&models.Complaint{ID: "c1", Category: models.CategoryPothole}, nil)

		w := makeRequest(router, "GET", "/api/complaints/c1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"category":"Pothole"`)
	})

	t.Run("not found", func(t *testing.T) {
		m, router := newTestHandler(t)
		m.complaints.EXPECT().
			GetComplaint(gomock.Any(), "missing").
			Return(nil, fmt.Errorf("repository: %w", models.ErrNotFound))

		w := makeRequest(router, "GET", "/api/complaints/missing", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListComplaints_Filters(t *testing.T) {
	m, router := newTestHandler(t)

	m.complaints.EXPECT().
		ListComplaints(gomock.Any(), models.ComplaintFilter{
			Status:   models.StatusPending,
			Category: models.CategoryWaterSupply,
			Limit:    20,
		}).
		Return([]*models.Complaint{{ID: "a"}, {ID: "b"}}, nil)

	w := makeRequest(router, "GET", "/api/complaints?status=pending&category=water_supply&limit=20", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ComplaintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestListComplaints_UnknownStatus(t *testing.T) {
	m, router := newTestHandler(t)
	m.complaints.EXPECT().ListComplaints(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/complaints?status=archived", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUserComplaints_ScopedToCaller(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.complaints.EXPECT().
		ListComplaints(gomock.Any(), models.ComplaintFilter{UserID: "uid-1"}).
		Return([]*models.Complaint{}, nil)

	w := makeRequest(router, "GET", "/api/complaints/user", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNearbyComplaints(t *testing.T) {
	m, router := newTestHandler(t)

	m.complaints.EXPECT().
		FindNearby(gomock.Any(), 12.97, 77.59, 250.0).
		Return([]models.NearbyComplaint{{Complaint: &models.Complaint{ID: "a"}, DistanceKm: 0.05}}, nil)

	w := makeRequest(router, "GET", "/api/complaints/nearby?lat=12.97&lng=77.59&radius=250", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []NearbyComplaintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "a", resp[0].Complaint.ID)
	assert.Equal(t, 0.05, resp[0].DistanceKm)
}

func TestNearbyComplaints_InvalidCoordinates(t *testing.T) {
	m, router := newTestHandler(t)
	m.complaints.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, query := range []string{"", "?lat=abc&lng=1", "?lat=91&lng=0", "?lat=0&lng=-181"} {
		w := makeRequest(router, "GET", "/api/complaints/nearby"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestUploadPhoto(t *testing.T) {
	m, router := newTestHandler(t)
	image := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "pothole.png")
	require.NoError(t, err)
	_, err = part.Write(image)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	expectAuthenticated(m)
	m.complaints.EXPECT().
		UploadPhoto(gomock.Any(), "uid-1", image).
		Return("https://cdn.example.com/complaints/uid-1/x.png", nil)

	req := httptest.NewRequest("POST", "/api/complaints/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", testToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "https://cdn.example.com/complaints/uid-1/x.png")
}

func TestUploadPhoto_NoFile(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.complaints.EXPECT().UploadPhoto(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/complaints/upload", bytes.NewBufferString(`{}`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminUpdateComplaint(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.auth.EXPECT().RequireAdmin(gomock.Any(), testIdentity).Return(&models.User{Role: models.RoleAdmin}, nil)
	m.admin.EXPECT().
		UpdateComplaint(gomock.Any(), "c1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, u models.ComplaintUpdate) (*models.Complaint, error) {
			require.NotNil(t, u.Priority)
			assert.Equal(t, models.PriorityMedium, *u.Priority) // normal - старое написание
			require.NotNil(t, u.Status)
			assert.Equal(t, models.StatusInProgress, *u.Status)
			return &models.Complaint{ID: "c1", Status: *u.Status, Priority: *u.Priority}, nil
		})

	w := makeRequest(router, "PUT", "/api/admin/complaints/c1",
		bytes.NewBufferString(`{"status": "in_progress", "priority": "normal"}`), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"priority":"Medium"`)
}

func TestAdminUpdateComplaint_UnknownPriority(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.auth.EXPECT().RequireAdmin(gomock.Any(), testIdentity).Return(&models.User{Role: models.RoleAdmin}, nil)
	m.admin.EXPECT().UpdateComplaint(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/admin/complaints/c1", bytes.NewBufferString(`{"priority": "urgent"}`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminActionPlan_AIUnavailable(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.auth.EXPECT().RequireAdmin(gomock.Any(), testIdentity).Return(&models.User{Role: models.RoleAdmin}, nil)
	m.admin.EXPECT().ActionPlan(gomock.Any(), "c1").Return(nil, models.ErrAIUnavailable)

	w := makeRequest(router, "POST", "/api/admin/complaints/c1/action-plan", nil, authHeader())

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAdminGetSummary_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.auth.EXPECT().RequireAdmin(gomock.Any(), testIdentity).Return(&models.User{Role: models.RoleAdmin}, nil)
	m.summary.EXPECT().Latest(gomock.Any()).Return(nil, models.ErrNotFound)

	w := makeRequest(router, "GET", "/api/admin/summary", nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProcessIssue(t *testing.T) {
	dup := "A"
	score := 0.9

	testCases := []struct {
		name       string
		result     *models.TriageResult
		err        error
		wantStatus int
	}{
		{
			name: "duplicate found",
			result: &models.TriageResult{
				Category:            models.CategoryPothole,
				Priority:            models.PriorityHigh,
				DuplicateOf:         &dup,
				DuplicateSimilarity: &score,
			},
			wantStatus: http.StatusOK,
		},
		{name: "missing photo", err: fmt.Errorf("complaint B has no photo: %w", models.ErrInvalidIssue), wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown complaint", err: fmt.Errorf("triage: %w", models.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "someone else's complaint", err: fmt.Errorf("complaint B belongs to another user: %w", models.ErrForbidden), wantStatus: http.StatusForbidden},
		{name: "database down", err: errors.New("server selection timeout"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, router := newTestHandler(t)

			expectAuthenticated(m)
			m.auth.EXPECT().GetProfile(gomock.Any(), "uid-1").Return(testProfile, nil)
			m.ai.EXPECT().ProcessIssue(gomock.Any(), "B", testProfile).Return(tc.result, tc.err)

			w := makeRequest(router, "POST", "/api/ai/process-issue", bytes.NewBufferString(`{"complaint_id": "B"}`), authHeader())

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.result != nil {
				assert.Contains(t, w.Body.String(), `"duplicateOf":"A"`)
			}
		})
	}
}

func TestProcessIssue_CallerWithoutProfile(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.auth.EXPECT().GetProfile(gomock.Any(), "uid-1").Return(nil, models.ErrNotFound)
	m.ai.EXPECT().
		ProcessIssue(gomock.Any(), "B", &models.User{UID: "uid-1", Role: models.RoleUser}).
		Return(nil, models.ErrForbidden)

	w := makeRequest(router, "POST", "/api/ai/process-issue", bytes.NewBufferString(`{"complaint_id": "B"}`), authHeader())

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "access denied")
}

func TestChatbot(t *testing.T) {
	testCases := []struct {
		name       string
		answer     string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "answered", answer: "Your complaint is being handled.", wantStatus: http.StatusOK, wantBody: `"response":"Your complaint is being handled."`},
		{name: "model down", err: fmt.Errorf("could not answer: %w", models.ErrAIUnavailable), wantStatus: http.StatusServiceUnavailable, wantBody: "ai service unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, router := newTestHandler(t)

			expectAuthenticated(m)
			m.ai.EXPECT().
				Chat(gomock.Any(), "status of my complaint?", map[string]any{"complaint_id": "B"}).
				Return(tc.answer, tc.err)

			w := makeRequest(router, "POST", "/api/ai/chatbot",
				bytes.NewBufferString(`{"query": "status of my complaint?", "context": {"complaint_id": "B"}}`), authHeader())

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestChatbot_EmptyQuery(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.ai.EXPECT().Chat(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/ai/chatbot", bytes.NewBufferString(`{"query": ""}`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassify_ReturnsDefaultOnFailure(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.ai.EXPECT().
		Classify(gomock.Any(), "https://cdn.example.com/a.png", "tree fell").
		Return(models.Classification{Category: models.CategoryOther, Error: "ai unavailable"})

	w := makeRequest(router, "POST", "/api/ai/classify",
		bytes.NewBufferString(`{"photo_url": "https://cdn.example.com/a.png", "description": "tree fell"}`), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"Other"`)
}

func TestAssessSeverity(t *testing.T) {
	m, router := newTestHandler(t)

	expectAuthenticated(m)
	m.ai.EXPECT().
		AssessSeverity(gomock.Any(), "deep pothole on highway", models.CategoryPothole).
		Return(models.SeverityAssessment{Severity: models.SeverityHigh, Reason: "traffic hazard"}, models.PriorityHigh)

	w := makeRequest(router, "POST", "/api/ai/assess-severity",
		bytes.NewBufferString(`{"description": "deep pothole on highway", "category": "pothole"}`), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AssessSeverityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, AssessSeverityResponse{Severity: "High", Reason: "traffic hazard", Priority: "High"}, resp)
}

func TestSystemHealth(t *testing.T) {
	m, router := newTestHandler(t)

	m.health.EXPECT().Check(gomock.Any()).Return([]models.ComponentStatus{
		{Name: "mongodb", Status: "ok"},
		{Name: "redis", Status: "unavailable", Error: "connection refused"},
	}, false)

	w := makeRequest(router, "GET", "/api/system/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Len(t, resp.Components, 2)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
