package routes

import (
	"net/http"

	"github.com/01moynul/studybuddy-golang/internal/handlers"
	"github.com/01moynul/studybuddy-golang/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(h *handlers.Handlers, jwtSecret []byte, jwtIssuer string, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(log), gin.Recovery())

	// Uploaded files are served back at <base_url>/uploads/<name>
	router.Static("/uploads", h.UploadDir)

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Protected Routes (Login Required) ---
		auth := v1.Group("/")
		auth.Use(middleware.AuthMiddleware(jwtSecret, jwtIssuer))
		{
			auth.GET("/dashboard", h.GetDashboard)
			auth.GET("/profile/me", h.GetMyProfile)
			auth.GET("/subscription", h.GetMySubscription)

			// --- Study Materials ---
			auth.POST("/materials", h.UploadMaterial)
			auth.GET("/materials", h.GetMyMaterials)
			auth.GET("/materials/:id", h.GetMaterial)
			auth.DELETE("/materials/:id", h.DeleteMaterial)

			// --- Flashcards ---
			auth.POST("/materials/:id/generate", h.GenerateFlashcards)
			auth.GET("/materials/:id/flashcards", h.GetMaterialFlashcards)
			auth.POST("/flashcards/:id/review", h.ReviewFlashcard)

			// --- Notification Routes ---
			auth.GET("/notifications", h.GetMyNotifications)
			auth.PATCH("/notifications/:id/read", h.MarkNotificationAsRead)
		}
	}

	return router
}
