// Package study holds the write paths around study materials: uploads,
// flashcard generation and reviews.
package study

import (
	"context"
	"errors"
	"time"

	"github.com/01moynul/studybuddy-golang/internal/importer"
	"github.com/01moynul/studybuddy-golang/internal/models"
	"go.uber.org/zap"
)

var (
	ErrNoCredits       = errors.New("no flashcard credits remaining")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrEmptyMaterial   = errors.New("material has no usable content")
)

type Repository interface {
	ProfileSummary(ctx context.Context, userID string) (models.Optional[models.ProfileSummary], error)
	ConsumeCredit(ctx context.Context, userID string) (bool, error)
	RefundCredit(ctx context.Context, userID string) error
	IncrementUploads(ctx context.Context, userID string) error

	MaterialSummaries(ctx context.Context, userID string) ([]models.MaterialSummary, error)
	Material(ctx context.Context, userID, materialID string) (models.StudyMaterial, error)
	CreateMaterial(ctx context.Context, material models.StudyMaterial) error
	DeleteMaterial(ctx context.Context, userID, materialID string) error

	CreateFlashcards(ctx context.Context, cards []models.Flashcard) error
	FlashcardsByMaterial(ctx context.Context, userID, materialID string) ([]models.Flashcard, error)
	Flashcard(ctx context.Context, userID, flashcardID string) (models.Flashcard, error)
	UpdateFlashcardReview(ctx context.Context, card models.Flashcard) error
	DeleteFlashcardsByMaterial(ctx context.Context, userID, materialID string) error

	Progress(ctx context.Context, userID string) (models.Optional[models.Progress], error)
	SaveProgress(ctx context.Context, progress models.Progress) error

	AddNotification(ctx context.Context, userID, message, link string) error
}

// Transactor runs fn against a Repository bound to one transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(Repository) error) error
}

// Generator writes flashcards from a material's text.
type Generator interface {
	Generate(ctx context.Context, title, content string) ([]importer.Card, error)
}

type Service struct {
	repo Repository
	tx   Transactor
	gen  Generator
	log  *zap.Logger
	now  func() time.Time
}

func NewService(repo Repository, tx Transactor, gen Generator, log *zap.Logger) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
		gen:  gen,
		log:  log,
		now:  func() time.Time { return time.Now().UTC() },
	}
}
