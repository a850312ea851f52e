package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/studybuddy-golang/internal/models"
)

type FlashcardsR struct {
	db QueryI
}

func NewFlashcardsRepository(db QueryI) *FlashcardsR {
	return &FlashcardsR{
		db: db,
	}
}

func (f *FlashcardsR) CreateFlashcards(ctx context.Context, cards []models.Flashcard) error {
	query := `
		INSERT INTO flashcards
			(id, user_id, study_material_id, question, answer, difficulty,
			times_reviewed, times_correct, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, card := range cards {
		_, err := f.db.ExecContext(ctx, query,
			card.ID, card.UserID, card.StudyMaterialID, card.Question, card.Answer, card.Difficulty,
			card.TimesReviewed, card.TimesCorrect, card.CreatedAt, card.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create flashcard: %w", err)
		}
	}

	return nil
}

func (f *FlashcardsR) FlashcardsByMaterial(ctx context.Context, userID, materialID string) ([]models.Flashcard, error) {
	query := `
		SELECT id, user_id, study_material_id, question, answer, difficulty,
			times_reviewed, times_correct, last_reviewed, created_at, updated_at
		FROM flashcards
		WHERE user_id = ? AND study_material_id = ?
		ORDER BY created_at ASC`

	cards := []models.Flashcard{}
	if err := f.db.SelectContext(ctx, &cards, query, userID, materialID); err != nil {
		return nil, fmt.Errorf("failed to list flashcards: %w", err)
	}

	return cards, nil
}

func (f *FlashcardsR) Flashcard(ctx context.Context, userID, flashcardID string) (models.Flashcard, error) {
	query := `
		SELECT id, user_id, study_material_id, question, answer, difficulty,
			times_reviewed, times_correct, last_reviewed, created_at, updated_at
		FROM flashcards
		WHERE id = ? AND user_id = ?`

	var card models.Flashcard
	err := f.db.GetContext(ctx, &card, query, flashcardID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Flashcard{}, ErrNotFound
	}
	if err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to get flashcard: %w", err)
	}

	return card, nil
}

// UpdateFlashcardReview writes back the review counters of a card.
func (f *FlashcardsR) UpdateFlashcardReview(ctx context.Context, card models.Flashcard) error {
	query := `
		UPDATE flashcards
		SET times_reviewed = ?, times_correct = ?, difficulty = ?, last_reviewed = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	res, err := f.db.ExecContext(ctx, query,
		card.TimesReviewed, card.TimesCorrect, card.Difficulty, card.LastReviewed, card.UpdatedAt,
		card.ID, card.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update flashcard: %w", err)
	}

	return affectedOne(res)
}

func (f *FlashcardsR) DeleteFlashcardsByMaterial(ctx context.Context, userID, materialID string) error {
	query := `DELETE FROM flashcards WHERE user_id = ? AND study_material_id = ?`

	if _, err := f.db.ExecContext(ctx, query, userID, materialID); err != nil {
		return fmt.Errorf("failed to delete flashcards: %w", err)
	}

	return nil
}
