package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/cityfix_backend/internal/models"
	"github.com/shenikar/cityfix_backend/internal/service"
)

const (
	identityKey = "identity"
	profileKey  = "profile"
)

// RequireAuth - middleware проверки токена из заголовка Authorization
func RequireAuth(auth service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			log.WithError(err).WithField("path", c.FullPath()).Warn("Authentication failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin - middleware проверки роли. Ставится после RequireAuth.
func RequireAdmin(auth service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}

		user, err := auth.RequireAdmin(c.Request.Context(), identity)
		if err != nil {
			status, message := errorStatus(err)
			switch status {
			case http.StatusNotFound:
				message = "user not found"
			case http.StatusForbidden:
				message = "admin access required"
			}
			log.WithError(err).WithField("uid", identity.Subject).Warn("Admin check failed")
			c.AbortWithStatusJSON(status, gin.H{"error": message})
			return
		}
		c.Set(profileKey, user)
		c.Next()
	}
}

func identityFrom(c *gin.Context) (*models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*models.Identity)
	return identity, ok && identity != nil
}

// @Summary Verify token and sync profile
// @Description Creates the profile on first sign-in. The role of an existing profile is kept.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/verify [post]
func (h *Handler) verifyToken(c *gin.Context) {
	identity, _ := identityFrom(c)
	log := h.logger.WithField("method", "verifyToken").WithField("uid", identity.Subject)

	user, err := h.auth.SyncProfile(c.Request.Context(), identity)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Get own profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Router /auth/profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	identity, _ := identityFrom(c)
	log := h.logger.WithField("method", "getProfile").WithField("uid", identity.Subject)

	user, err := h.auth.GetProfile(c.Request.Context(), identity.Subject)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Update own profile
// @Description Only the display name can be changed
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Profile update"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Router /auth/profile [put]
func (h *Handler) updateProfile(c *gin.Context) {
	identity, _ := identityFrom(c)
	log := h.logger.WithField("method", "updateProfile").WithField("uid", identity.Subject)

	var input UpdateProfileRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), identity.Subject, input.Name)
	if err != nil {
		h.fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}
