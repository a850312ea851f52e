package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/01moynul/studybuddy-golang/internal/dashboard"
	"github.com/01moynul/studybuddy-golang/internal/models"
	"github.com/01moynul/studybuddy-golang/internal/repository"
	"github.com/01moynul/studybuddy-golang/internal/study"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardService interface {
	Load(ctx context.Context, userID string) (dashboard.View, error)
}

type StudyService interface {
	CreateMaterial(ctx context.Context, userID string, in study.NewMaterial) (study.MaterialResult, error)
	Materials(ctx context.Context, userID string) ([]models.MaterialSummary, error)
	Material(ctx context.Context, userID, materialID string) (models.StudyMaterial, error)
	DeleteMaterial(ctx context.Context, userID, materialID string) (models.StudyMaterial, error)
	Generate(ctx context.Context, userID, materialID string) (study.GenerateResult, error)
	Flashcards(ctx context.Context, userID, materialID string) ([]models.Flashcard, error)
	Review(ctx context.Context, userID, flashcardID string, correct bool) (study.ReviewResult, error)
}

// AccountStore reads the per-user rows that need no business logic.
type AccountStore interface {
	Profile(ctx context.Context, userID string) (models.Optional[models.Profile], error)
	Subscription(ctx context.Context, userID string) (models.Optional[models.Subscription], error)
	Notifications(ctx context.Context, userID string) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
}

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Dashboard DashboardService
	Study     StudyService
	Accounts  AccountStore
	Log       *zap.Logger

	UploadDir      string // where uploaded files are written
	BaseURL        string // public origin used to build file URLs
	MaxUploadBytes int64
}

// userID returns the caller's ID set by AuthMiddleware. It writes a 401 and
// returns false when the middleware did not run.
func userID(c *gin.Context) (string, bool) {
	raw, exists := c.Get("userID")
	id, ok := raw.(string)
	if !exists || !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// respondError maps service errors to status codes. Anything unknown is
// logged and answered with a 500 carrying fallback.
func (h *Handlers) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, study.ErrNoCredits):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "You have no flashcard credits left this month. Upgrade to Premium for unlimited credits."})
	case errors.Is(err, study.ErrUnsupportedFile):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Unsupported file type. Upload a .txt, .md or .xlsx file."})
	case errors.Is(err, study.ErrEmptyMaterial):
		c.JSON(http.StatusBadRequest, gin.H{"error": "The file has no usable content"})
	case errors.Is(err, dashboard.ErrMissingUser):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	default:
		h.Log.Error(fallback, zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
