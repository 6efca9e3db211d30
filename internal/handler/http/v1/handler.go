package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/cityfix_backend/internal/config"
	"github.com/shenikar/cityfix_backend/internal/models"
	"github.com/shenikar/cityfix_backend/internal/service"
)

// Services - набор сервисов, которые обслуживает HTTP-слой
type Services struct {
	Auth       service.AuthService
	Complaints service.ComplaintService
	Admin      service.AdminService
	AI         service.AIService
	Summary    service.SummaryService
	Health     service.HealthService
}

type Handler struct {
	auth       service.AuthService
	complaints service.ComplaintService
	admin      service.AdminService
	ai         service.AIService
	summary    service.SummaryService
	health     service.HealthService
	logger     *logrus.Logger
	validate   *validator.Validate
	cfg        *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		auth:       services.Auth,
		complaints: services.Complaints,
		admin:      services.Admin,
		ai:         services.AI,
		summary:    services.Summary,
		health:     services.Health,
		logger:     logger,
		validate:   validator.New(),
		cfg:        cfg,
	}
}

// bindJSON разбирает и валидирует тело запроса. При ошибке ответ уже записан.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// fail переводит доменную ошибку в HTTP-статус
func (h *Handler) fail(c *gin.Context, log *logrus.Entry, err error) {
	status, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, gin.H{"error": message})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized, "invalid or missing token"
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden, "access denied"
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, models.ErrInvalidFile):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrInvalidIssue):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, models.ErrFetchFailed):
		return http.StatusUnprocessableEntity, "could not fetch photo"
	case errors.Is(err, models.ErrRateLimited):
		return http.StatusTooManyRequests, "daily complaint limit reached"
	case errors.Is(err, models.ErrAIUnavailable):
		return http.StatusServiceUnavailable, "ai service unavailable"
	case errors.Is(err, models.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "storage unavailable"
	}
	return http.StatusInternalServerError, "internal server error"
}

// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Get dependency health status
// @Description Pings MongoDB, PostgreSQL, Redis and object storage
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) systemHealth(c *gin.Context) {
	components, healthy := h.health.Check(c.Request.Context())
	resp := HealthResponse{Status: "ok", Components: components}
	status := http.StatusOK
	if !healthy {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
