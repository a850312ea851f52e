package models

import "time"

// StudyMaterial defines the model for the 'study_materials' table
type StudyMaterial struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	PublicID  string    `json:"publicId" db:"public_id"`
	Title     string    `json:"title" db:"title"`
	Slug      string    `json:"slug" db:"slug"`
	Content   string    `json:"content" db:"content"`
	FileType  *string   `json:"fileType,omitempty" db:"file_type"`
	FileURL   *string   `json:"fileUrl,omitempty" db:"file_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// MaterialSummary is a study material with the number of flashcards attached to it.
type MaterialSummary struct {
	ID             string    `json:"id" db:"id"`
	PublicID       string    `json:"publicId" db:"public_id"`
	Title          string    `json:"title" db:"title"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	FlashcardCount int       `json:"flashcardCount" db:"flashcard_count"`
}
