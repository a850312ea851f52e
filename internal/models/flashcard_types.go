package models

import "time"

// Flashcard difficulty labels
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Flashcard defines the model for the 'flashcards' table
type Flashcard struct {
	ID              string     `json:"id" db:"id"`
	UserID          string     `json:"userId" db:"user_id"`
	StudyMaterialID *string    `json:"studyMaterialId,omitempty" db:"study_material_id"`
	Question        string     `json:"question" db:"question"`
	Answer          string     `json:"answer" db:"answer"`
	Difficulty      *string    `json:"difficulty,omitempty" db:"difficulty"`
	TimesReviewed   *int       `json:"timesReviewed" db:"times_reviewed"`
	TimesCorrect    *int       `json:"timesCorrect" db:"times_correct"`
	LastReviewed    *time.Time `json:"lastReviewed,omitempty" db:"last_reviewed"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

func (f Flashcard) Reviewed() int { return intOrZero(f.TimesReviewed) }
func (f Flashcard) Correct() int  { return intOrZero(f.TimesCorrect) }
