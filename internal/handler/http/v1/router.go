package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	requireAuth := RequireAuth(h.auth, h.logger)
	requireAdmin := RequireAdmin(h.auth, h.logger)

	// Health-check
	api.GET("/health", h.healthCheck)
	api.GET("/system/health", h.systemHealth)

	auth := api.Group("/auth", requireAuth)
	{
		auth.POST("/verify", h.verifyToken)
		auth.GET("/profile", h.getProfile)
		auth.PUT("/profile", h.updateProfile)
	}

	// Чтение жалоб открыто, запись требует токена
	complaints := api.Group("/complaints")
	{
		complaints.GET("", h.listComplaints)
		complaints.GET("/nearby", h.nearbyComplaints)
		complaints.GET("/user", requireAuth, h.listUserComplaints)
		complaints.GET("/:id", h.getComplaint)
		complaints.POST("", requireAuth, h.createComplaint)
		complaints.POST("/upload", requireAuth, h.uploadPhoto)
	}

	admin := api.Group("/admin", requireAuth, requireAdmin)
	{
		admin.GET("/complaints", h.adminListComplaints)
		admin.PUT("/complaints/:id", h.adminUpdateComplaint)
		admin.POST("/complaints/:id/verify-resolution", h.adminVerifyResolution)
		admin.POST("/complaints/:id/action-plan", h.adminActionPlan)
		admin.GET("/stats", h.adminStats)
		admin.GET("/summary", h.adminGetSummary)
		admin.POST("/summary/run", h.adminRunSummary)
	}

	ai := api.Group("/ai", requireAuth)
	{
		ai.POST("/process-issue", h.processIssue)
		ai.POST("/classify", h.classify)
		ai.POST("/assess-severity", h.assessSeverity)
		ai.POST("/chatbot", h.chatbot)
	}
}
