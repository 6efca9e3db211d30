package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List complaints for moderation
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Param priority query string false "Priority filter"
// @Param limit query int false "Max items" default(50)
// @Success 200 {array} ComplaintResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /admin/complaints [get]
func (h *Handler) adminListComplaints(c *gin.Context) {
	log := h.logger.WithField("method", "adminListComplaints")

	filter, ok := h.parseFilter(c, log)
	if !ok {
		return
	}
	complaints, err := h.admin.ListComplaints(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToComplaintResponses(complaints))
}

// @Summary Update a complaint
// @Description Changes status, priority, remarks or resolution fields. Absent fields are kept.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param complaint body UpdateComplaintRequest true "Complaint update request"
// @Success 200 {object} ComplaintResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} map[string]string "Admin access required"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Router /admin/complaints/{id} [put]
func (h *Handler) adminUpdateComplaint(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "adminUpdateComplaint").WithField("id", id)

	var input UpdateComplaintRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	update, err := DTOToComplaintUpdate(input)
	if err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.admin.UpdateComplaint(c.Request.Context(), id, update)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToComplaintResponse(complaint))
}

// @Summary Dashboard statistics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ComplaintStats
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /admin/stats [get]
func (h *Handler) adminStats(c *gin.Context) {
	log := h.logger.WithField("method", "adminStats")

	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Verify a resolution photo
// @Description Compares the original photo with the after photo and stores the verdict
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body VerifyResolutionRequest true "After photo"
// @Success 200 {object} models.ResolutionVerification
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 422 {object} map[string]string "Photo could not be fetched"
// @Router /admin/complaints/{id}/verify-resolution [post]
func (h *Handler) adminVerifyResolution(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "adminVerifyResolution").WithField("id", id)

	var input VerifyResolutionRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	verification, err := h.admin.VerifyResolution(c.Request.Context(), id, input.AfterPhotoURL)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, verification)
}

// @Summary Suggest an action plan
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} models.ActionPlan
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 503 {object} map[string]string "AI unavailable"
// @Router /admin/complaints/{id}/action-plan [post]
func (h *Handler) adminActionPlan(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "adminActionPlan").WithField("id", id)

	plan, err := h.admin.ActionPlan(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// @Summary Recompute the weekly summary now
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.WeeklySummary
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/summary/run [post]
func (h *Handler) adminRunSummary(c *gin.Context) {
	log := h.logger.WithField("method", "adminRunSummary")

	summary, err := h.summary.Generate(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Get the latest weekly summary
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.WeeklySummary
// @Failure 404 {object} map[string]string "No summary yet"
// @Router /admin/summary [get]
func (h *Handler) adminGetSummary(c *gin.Context) {
	log := h.logger.WithField("method", "adminGetSummary")

	summary, err := h.summary.Latest(c.Request.Context())
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
