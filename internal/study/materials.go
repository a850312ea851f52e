package study

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/01moynul/studybuddy-golang/internal/importer"
	"github.com/01moynul/studybuddy-golang/internal/models"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

// NewMaterial is an uploaded file on its way to becoming a study material.
type NewMaterial struct {
	Title    string
	FileName string
	FileURL  string
	Data     []byte
}

type MaterialResult struct {
	Material   models.StudyMaterial `json:"material"`
	Flashcards int                  `json:"flashcardsImported"`
}

// SupportedFileType reports whether an upload named name can be imported.
func SupportedFileType(name string) bool {
	return importer.Kind(name) != ""
}

// CreateMaterial stores an uploaded file. Cards written in the file itself
// (Q:/A: markdown or a spreadsheet) are imported right away at no credit cost.
func (s *Service) CreateMaterial(ctx context.Context, userID string, in NewMaterial) (MaterialResult, error) {
	kind := importer.Kind(in.FileName)
	if kind == "" {
		return MaterialResult{}, ErrUnsupportedFile
	}

	var (
		content string
		cards   []importer.Card
		err     error
	)
	switch kind {
	case importer.KindSpreadsheet:
		cards, err = importer.ParseSpreadsheet(bytes.NewReader(in.Data))
		if err != nil {
			return MaterialResult{}, fmt.Errorf("%w: %v", ErrEmptyMaterial, err)
		}
		content = renderCards(cards)
	case importer.KindMarkdown:
		content = strings.TrimSpace(string(in.Data))
		cards, err = importer.ParseMarkdown(strings.NewReader(content))
		if err != nil {
			return MaterialResult{}, fmt.Errorf("failed to parse markdown: %w", err)
		}
	default:
		content = strings.TrimSpace(string(in.Data))
	}
	if content == "" {
		return MaterialResult{}, ErrEmptyMaterial
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(in.FileName), filepath.Ext(in.FileName))
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return MaterialResult{}, fmt.Errorf("failed to generate public id: %w", err)
	}

	now := s.now()
	material := models.StudyMaterial{
		ID:        uuid.NewString(),
		UserID:    userID,
		PublicID:  publicID,
		Title:     title,
		Slug:      slug.Make(title),
		Content:   content,
		FileType:  &kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.FileURL != "" {
		material.FileURL = &in.FileURL
	}

	flashcards := s.newFlashcards(userID, material.ID, cards)

	err = s.tx.InTx(ctx, func(r Repository) error {
		if err := r.CreateMaterial(ctx, material); err != nil {
			return err
		}
		if err := r.CreateFlashcards(ctx, flashcards); err != nil {
			return err
		}
		return r.IncrementUploads(ctx, userID)
	})
	if err != nil {
		return MaterialResult{}, err
	}

	s.log.Info("material created",
		zap.String("user_id", userID),
		zap.String("material_id", material.ID),
		zap.String("file_type", kind),
		zap.Int("flashcards", len(flashcards)),
	)

	return MaterialResult{Material: material, Flashcards: len(flashcards)}, nil
}

func (s *Service) Materials(ctx context.Context, userID string) ([]models.MaterialSummary, error) {
	return s.repo.MaterialSummaries(ctx, userID)
}

func (s *Service) Material(ctx context.Context, userID, materialID string) (models.StudyMaterial, error) {
	return s.repo.Material(ctx, userID, materialID)
}

// DeleteMaterial removes the material and its flashcards and returns the
// deleted row so the caller can clean up the stored file.
func (s *Service) DeleteMaterial(ctx context.Context, userID, materialID string) (models.StudyMaterial, error) {
	material, err := s.repo.Material(ctx, userID, materialID)
	if err != nil {
		return models.StudyMaterial{}, err
	}

	err = s.tx.InTx(ctx, func(r Repository) error {
		if err := r.DeleteFlashcardsByMaterial(ctx, userID, materialID); err != nil {
			return err
		}
		return r.DeleteMaterial(ctx, userID, materialID)
	})
	if err != nil {
		return models.StudyMaterial{}, err
	}

	return material, nil
}

// Flashcards lists the cards of a material the user owns.
func (s *Service) Flashcards(ctx context.Context, userID, materialID string) ([]models.Flashcard, error) {
	if _, err := s.repo.Material(ctx, userID, materialID); err != nil {
		return nil, err
	}
	return s.repo.FlashcardsByMaterial(ctx, userID, materialID)
}

func (s *Service) newFlashcards(userID, materialID string, cards []importer.Card) []models.Flashcard {
	now := s.now()
	out := make([]models.Flashcard, 0, len(cards))
	for _, c := range cards {
		difficulty := c.Difficulty
		if difficulty == "" {
			difficulty = models.DifficultyMedium
		}
		zero := 0
		out = append(out, models.Flashcard{
			ID:              uuid.NewString(),
			UserID:          userID,
			StudyMaterialID: &materialID,
			Question:        c.Question,
			Answer:          c.Answer,
			Difficulty:      &difficulty,
			TimesReviewed:   &zero,
			TimesCorrect:    &zero,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	return out
}

func renderCards(cards []importer.Card) string {
	var b strings.Builder
	for i, c := range cards {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Q: %s\nA: %s", c.Question, c.Answer)
	}
	return b.String()
}
