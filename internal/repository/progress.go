package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/studybuddy-golang/internal/models"
)

type ProgressR struct {
	db QueryI
}

func NewProgressRepository(db QueryI) *ProgressR {
	return &ProgressR{
		db: db,
	}
}

func (p *ProgressR) ProgressSummary(ctx context.Context, userID string) (models.Optional[models.ProgressSummary], error) {
	query := `
		SELECT study_streak, total_flashcards_reviewed, total_correct_answers, xp_points
		FROM user_progress
		WHERE user_id = ?`

	var summary models.ProgressSummary
	err := p.db.GetContext(ctx, &summary, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.None[models.ProgressSummary](), nil
	}
	if err != nil {
		return models.None[models.ProgressSummary](), fmt.Errorf("failed to get progress summary: %w", err)
	}

	return models.Some(summary), nil
}

func (p *ProgressR) Progress(ctx context.Context, userID string) (models.Optional[models.Progress], error) {
	query := `
		SELECT id, user_id, study_streak, total_flashcards_reviewed, total_correct_answers,
			xp_points, last_study_date, created_at, updated_at
		FROM user_progress
		WHERE user_id = ?`

	var progress models.Progress
	err := p.db.GetContext(ctx, &progress, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.None[models.Progress](), nil
	}
	if err != nil {
		return models.None[models.Progress](), fmt.Errorf("failed to get progress: %w", err)
	}

	return models.Some(progress), nil
}

// SaveProgress inserts the row or overwrites the counters of the existing one.
func (p *ProgressR) SaveProgress(ctx context.Context, progress models.Progress) error {
	query := `
		INSERT INTO user_progress
			(id, user_id, study_streak, total_flashcards_reviewed, total_correct_answers,
			xp_points, last_study_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			study_streak = VALUES(study_streak),
			total_flashcards_reviewed = VALUES(total_flashcards_reviewed),
			total_correct_answers = VALUES(total_correct_answers),
			xp_points = VALUES(xp_points),
			last_study_date = VALUES(last_study_date),
			updated_at = VALUES(updated_at)`

	_, err := p.db.ExecContext(ctx, query,
		progress.ID, progress.UserID, progress.StudyStreak, progress.TotalFlashcardsReviewed,
		progress.TotalCorrectAnswers, progress.XPPoints, progress.LastStudyDate,
		progress.CreatedAt, progress.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	return nil
}
