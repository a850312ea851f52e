package models

import "time"

// Progress defines the model for the 'user_progress' table
type Progress struct {
	ID                      string     `json:"id" db:"id"`
	UserID                  string     `json:"userId" db:"user_id"`
	StudyStreak             *int       `json:"studyStreak" db:"study_streak"`
	TotalFlashcardsReviewed *int       `json:"totalFlashcardsReviewed" db:"total_flashcards_reviewed"`
	TotalCorrectAnswers     *int       `json:"totalCorrectAnswers" db:"total_correct_answers"`
	XPPoints                *int       `json:"xpPoints" db:"xp_points"`
	LastStudyDate           *time.Time `json:"lastStudyDate,omitempty" db:"last_study_date"`
	CreatedAt               time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt               time.Time  `json:"updatedAt" db:"updated_at"`
}

// Summary projects the row down to the dashboard columns.
func (p Progress) Summary() ProgressSummary {
	return ProgressSummary{
		StudyStreak:             p.StudyStreak,
		TotalFlashcardsReviewed: p.TotalFlashcardsReviewed,
		TotalCorrectAnswers:     p.TotalCorrectAnswers,
		XPPoints:                p.XPPoints,
	}
}

// ProgressSummary is the dashboard projection of a progress row.
type ProgressSummary struct {
	StudyStreak             *int `json:"studyStreak" db:"study_streak"`
	TotalFlashcardsReviewed *int `json:"totalFlashcardsReviewed" db:"total_flashcards_reviewed"`
	TotalCorrectAnswers     *int `json:"totalCorrectAnswers" db:"total_correct_answers"`
	XPPoints                *int `json:"xpPoints" db:"xp_points"`
}

func (p ProgressSummary) Streak() int   { return intOrZero(p.StudyStreak) }
func (p ProgressSummary) Reviewed() int { return intOrZero(p.TotalFlashcardsReviewed) }
func (p ProgressSummary) Correct() int  { return intOrZero(p.TotalCorrectAnswers) }
func (p ProgressSummary) XP() int       { return intOrZero(p.XPPoints) }
