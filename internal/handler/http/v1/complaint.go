package v1

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/cityfix_backend/internal/models"
)

// @Summary Upload a complaint photo
// @Description Accepts png, jpeg, gif or webp up to the configured size. Returns the public URL.
// @Tags Complaints
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Photo"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} map[string]string "No file or unsupported file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /complaints/upload [post]
func (h *Handler) uploadPhoto(c *gin.Context) {
	identity, _ := identityFrom(c)
	log := h.logger.WithField("method", "uploadPhoto").WithField("uid", identity.Subject)

	header, err := c.FormFile("image")
	if err != nil {
		log.WithError(err).Warn("No image in multipart form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image file provided"})
		return
	}
	file, err := header.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	// лишний байт нужен, чтобы сервис увидел превышение размера
	data, err := io.ReadAll(io.LimitReader(file, h.cfg.MaxUploadBytes+1))
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	url, err := h.complaints.UploadPhoto(c.Request.Context(), identity.Subject, data)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, UploadResponse{URL: url})
}

// @Summary Create a new complaint
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param complaint body CreateComplaintRequest true "Complaint creation request"
// @Success 201 {object} ComplaintResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Daily limit reached"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints [post]
func (h *Handler) createComplaint(c *gin.Context) {
	identity, _ := identityFrom(c)
	log := h.logger.WithField("method", "createComplaint").WithField("uid", identity.Subject)

	var input CreateComplaintRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToComplaintModel(input, identity.Subject)
	if err := h.complaints.CreateComplaint(c.Request.Context(), model); err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToComplaintResponse(model))
}

// @Summary List complaints
// @Description Newest first. Filters are optional.
// @Tags Complaints
// @Produce json
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Param limit query int false "Max items" default(50)
// @Success 200 {array} ComplaintResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints [get]
func (h *Handler) listComplaints(c *gin.Context) {
	log := h.logger.WithField("method", "listComplaints")

	filter, ok := h.parseFilter(c, log)
	if !ok {
		return
	}
	complaints, err := h.complaints.ListComplaints(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToComplaintResponses(complaints))
}

// @Summary List own complaints
// @Tags Complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ComplaintResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /complaints/user [get]
func (h *Handler) listUserComplaints(c *gin.Context) {
	identity, _ := identityFrom(c)
	log := h.logger.WithField("method", "listUserComplaints").WithField("uid", identity.Subject)

	filter, ok := h.parseFilter(c, log)
	if !ok {
		return
	}
	filter.UserID = identity.Subject

	complaints, err := h.complaints.ListComplaints(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToComplaintResponses(complaints))
}

// @Summary Get complaint by ID
// @Tags Complaints
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} ComplaintResponse
// @Failure 404 {object} map[string]string "Complaint not found"
// @Router /complaints/{id} [get]
func (h *Handler) getComplaint(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getComplaint").WithField("id", id)

	complaint, err := h.complaints.GetComplaint(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToComplaintResponse(complaint))
}

// @Summary Find complaints near a point
// @Description Sorted by distance. Radius defaults to 500 m.
// @Tags Complaints
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in meters"
// @Success 200 {array} NearbyComplaintResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /complaints/nearby [get]
func (h *Handler) nearbyComplaints(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyComplaints")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required and must be valid coordinates"})
		return
	}
	radius, _ := strconv.ParseFloat(c.DefaultQuery("radius", "0"), 64)

	nearby, err := h.complaints.FindNearby(c.Request.Context(), lat, lng, radius)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNearbyResponses(nearby))
}

func (h *Handler) parseFilter(c *gin.Context, log *logrus.Entry) (models.ComplaintFilter, bool) {
	filter := models.ComplaintFilter{}
	if s := c.Query("status"); s != "" {
		filter.Status = models.Status(s)
		if !filter.Status.Valid() {
			log.WithField("status", s).Warn("Unknown status filter")
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return filter, false
		}
	}
	if s := c.Query("category"); s != "" {
		filter.Category = models.ParseCategory(s)
	}
	if s := c.Query("priority"); s != "" {
		p, ok := models.ParsePriority(s)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown priority"})
			return filter, false
		}
		filter.Priority = p
	}
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	filter.Limit = limit
	return filter, true
}
