package study

import (
	"testing"
	"time"

	"github.com/01moynul/studybuddy-golang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int              { return &v }
func strPtr(v string) *string        { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func TestNextStreak(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		streak int
		last   *time.Time
		want   int
	}{
		{name: "first session", streak: 0, last: nil, want: 1},
		{name: "again today", streak: 4, last: timePtr(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)), want: 4},
		{name: "again today with empty streak", streak: 0, last: timePtr(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)), want: 1},
		{name: "studied yesterday", streak: 4, last: timePtr(time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)), want: 5},
		{name: "gap of two days", streak: 4, last: timePtr(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)), want: 1},
		{name: "across month boundary", streak: 2, last: timePtr(time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)), want: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, nextStreak(tt.streak, tt.last, now))
		})
	}

	firstOfMonth := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, nextStreak(2, timePtr(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)), firstOfMonth))
}

func TestNextDifficulty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		reviewed int
		correct  int
		current  *string
		want     *string
	}{
		{name: "too few reviews keeps current", reviewed: 2, correct: 0, current: strPtr(models.DifficultyMedium), want: strPtr(models.DifficultyMedium)},
		{name: "too few reviews keeps null", reviewed: 1, correct: 1, current: nil, want: nil},
		{name: "eighty percent is easy", reviewed: 5, correct: 4, current: nil, want: strPtr(models.DifficultyEasy)},
		{name: "fifty percent is medium", reviewed: 4, correct: 2, current: nil, want: strPtr(models.DifficultyMedium)},
		{name: "below half is hard", reviewed: 3, correct: 1, current: strPtr(models.DifficultyEasy), want: strPtr(models.DifficultyHard)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, nextDifficulty(tt.reviewed, tt.correct, tt.current))
		})
	}
}

func TestApplyReview(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("creates progress on first review", func(t *testing.T) {
		t.Parallel()

		p := applyReview(models.None[models.Progress](), "user-1", true, now)

		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "user-1", p.UserID)
		assert.Equal(t, now, p.CreatedAt)
		assert.Equal(t, 1, *p.TotalFlashcardsReviewed)
		assert.Equal(t, 1, *p.TotalCorrectAnswers)
		assert.Equal(t, 10, *p.XPPoints)
		assert.Equal(t, 1, *p.StudyStreak)
		require.NotNil(t, p.LastStudyDate)
		assert.Equal(t, today, *p.LastStudyDate)
	})

	t.Run("wrong answer on an existing row", func(t *testing.T) {
		t.Parallel()

		existing := models.Progress{
			ID:                      "p1",
			UserID:                  "user-1",
			StudyStreak:             intPtr(6),
			TotalFlashcardsReviewed: intPtr(10),
			TotalCorrectAnswers:     intPtr(7),
			XPPoints:                intPtr(100),
			LastStudyDate:           timePtr(today.AddDate(0, 0, -1)),
		}

		p := applyReview(models.Some(existing), "user-1", false, now)

		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, 11, *p.TotalFlashcardsReviewed)
		assert.Equal(t, 7, *p.TotalCorrectAnswers)
		assert.Equal(t, 102, *p.XPPoints)
		assert.Equal(t, 7, *p.StudyStreak)
	})
}

func TestApplyCardReview(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	card := models.Flashcard{
		ID:            "f1",
		TimesReviewed: intPtr(2),
		TimesCorrect:  intPtr(2),
		Difficulty:    strPtr(models.DifficultyMedium),
	}

	got := applyCardReview(card, true, now)

	assert.Equal(t, 3, *got.TimesReviewed)
	assert.Equal(t, 3, *got.TimesCorrect)
	assert.Equal(t, models.DifficultyEasy, *got.Difficulty)
	assert.Equal(t, now, *got.LastReviewed)
	assert.Equal(t, 2, *card.TimesReviewed, "input card must not change")
}
