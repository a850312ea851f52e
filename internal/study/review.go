package study

import (
	"context"
	"time"

	"github.com/01moynul/studybuddy-golang/internal/models"
	"github.com/google/uuid"
)

const (
	xpCorrect   = 10
	xpIncorrect = 2

	// A card's difficulty is only re-rated once it has this many reviews.
	minReviewsForDifficulty = 3
)

type ReviewResult struct {
	Flashcard models.Flashcard `json:"flashcard"`
	Progress  models.Progress  `json:"progress"`
}

// Review records one answer to a flashcard. The card counters and the
// user's progress row change in the same transaction.
func (s *Service) Review(ctx context.Context, userID, flashcardID string, correct bool) (ReviewResult, error) {
	now := s.now()
	var result ReviewResult

	err := s.tx.InTx(ctx, func(r Repository) error {
		card, err := r.Flashcard(ctx, userID, flashcardID)
		if err != nil {
			return err
		}

		card = applyCardReview(card, correct, now)
		if err := r.UpdateFlashcardReview(ctx, card); err != nil {
			return err
		}

		progress, err := r.Progress(ctx, userID)
		if err != nil {
			return err
		}

		updated := applyReview(progress, userID, correct, now)
		if err := r.SaveProgress(ctx, updated); err != nil {
			return err
		}

		result = ReviewResult{Flashcard: card, Progress: updated}
		return nil
	})
	if err != nil {
		return ReviewResult{}, err
	}

	return result, nil
}

func applyCardReview(card models.Flashcard, correct bool, now time.Time) models.Flashcard {
	reviewed := card.Reviewed() + 1
	right := card.Correct()
	if correct {
		right++
	}

	card.TimesReviewed = &reviewed
	card.TimesCorrect = &right
	card.Difficulty = nextDifficulty(reviewed, right, card.Difficulty)
	card.LastReviewed = &now
	card.UpdatedAt = now
	return card
}

// nextDifficulty rates a card from its own accuracy: easy at 80% or more,
// hard below 50%, medium otherwise.
func nextDifficulty(reviewed, correct int, current *string) *string {
	if reviewed < minReviewsForDifficulty {
		return current
	}

	d := models.DifficultyMedium
	switch accuracy := 100 * float64(correct) / float64(reviewed); {
	case accuracy >= 80:
		d = models.DifficultyEasy
	case accuracy < 50:
		d = models.DifficultyHard
	}
	return &d
}

// applyReview folds one answer into the user's progress, creating the row
// when the user has none yet.
func applyReview(progress models.Optional[models.Progress], userID string, correct bool, now time.Time) models.Progress {
	p, ok := progress.Get()
	if !ok {
		p = models.Progress{
			ID:        uuid.NewString(),
			UserID:    userID,
			CreatedAt: now,
		}
	}

	summary := p.Summary()
	reviewed := summary.Reviewed() + 1
	right := summary.Correct()
	xp := summary.XP()
	if correct {
		right++
		xp += xpCorrect
	} else {
		xp += xpIncorrect
	}
	streak := nextStreak(summary.Streak(), p.LastStudyDate, now)

	today := truncateDay(now)
	p.TotalFlashcardsReviewed = &reviewed
	p.TotalCorrectAnswers = &right
	p.XPPoints = &xp
	p.StudyStreak = &streak
	p.LastStudyDate = &today
	p.UpdatedAt = now
	return p
}

// nextStreak keeps the streak on a second study session the same day,
// extends it after studying yesterday and restarts it otherwise.
func nextStreak(streak int, last *time.Time, now time.Time) int {
	if last == nil {
		return 1
	}

	today := truncateDay(now)
	lastDay := truncateDay(*last)
	switch {
	case lastDay.Equal(today):
		if streak < 1 {
			return 1
		}
		return streak
	case lastDay.Equal(today.AddDate(0, 0, -1)):
		return streak + 1
	default:
		return 1
	}
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
