package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/cityfix_backend/internal/models"
)

// @Summary Run the triage pipeline for a complaint
// @Description Classifies the photo, assesses severity, looks for duplicates nearby and stores the result
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProcessIssueRequest true "Complaint to process"
// @Success 200 {object} models.TriageResult
// @Failure 403 {object} map[string]string "Complaint belongs to another user"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 422 {object} map[string]string "Complaint has no photo or location"
// @Router /ai/process-issue [post]
func (h *Handler) processIssue(c *gin.Context) {
	identity, _ := identityFrom(c)
	log := h.logger.WithField("method", "processIssue").WithField("uid", identity.Subject)

	var input ProcessIssueRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	log = log.WithField("id", input.ComplaintID)

	// без профиля вызывающий считается обычным пользователем
	caller, err := h.auth.GetProfile(c.Request.Context(), identity.Subject)
	if errors.Is(err, models.ErrNotFound) {
		caller, err = &models.User{UID: identity.Subject, Role: models.RoleUser}, nil
	}
	if err != nil {
		h.fail(c, log, err)
		return
	}

	result, err := h.ai.ProcessIssue(c.Request.Context(), input.ComplaintID, caller)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Classify a photo
// @Description Always answers. When the model is unavailable the category is Other and error is set.
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ClassifyRequest true "Photo and description"
// @Success 200 {object} models.Classification
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /ai/classify [post]
func (h *Handler) classify(c *gin.Context) {
	log := h.logger.WithField("method", "classify")

	var input ClassifyRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	c.JSON(http.StatusOK, h.ai.Classify(c.Request.Context(), input.PhotoURL, input.Description))
}

// @Summary Assess severity of a description
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AssessSeverityRequest true "Description and category"
// @Success 200 {object} AssessSeverityResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /ai/assess-severity [post]
func (h *Handler) assessSeverity(c *gin.Context) {
	log := h.logger.WithField("method", "assessSeverity")

	var input AssessSeverityRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	category := models.CategoryOther
	if input.Category != "" {
		category = models.ParseCategory(input.Category)
	}

	assessment, priority := h.ai.AssessSeverity(c.Request.Context(), input.Description, category)
	c.JSON(http.StatusOK, AssessSeverityResponse{
		Severity: string(assessment.Severity),
		Reason:   assessment.Reason,
		Priority: string(priority),
	})
}

// @Summary Ask the assistant
// @Description Answers questions about the platform. Context is passed to the model as is.
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChatbotRequest true "Question and optional context"
// @Success 200 {object} ChatbotResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 503 {object} map[string]string "AI unavailable"
// @Router /ai/chatbot [post]
func (h *Handler) chatbot(c *gin.Context) {
	log := h.logger.WithField("method", "chatbot")

	var input ChatbotRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	answer, err := h.ai.Chat(c.Request.Context(), input.Query, input.Context)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ChatbotResponse{Response: answer})
}
