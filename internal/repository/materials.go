package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/studybuddy-golang/internal/models"
)

type MaterialsR struct {
	db QueryI
}

func NewMaterialsRepository(db QueryI) *MaterialsR {
	return &MaterialsR{
		db: db,
	}
}

// MaterialSummaries lists the user's materials newest first, each with the
// number of flashcards generated from it. The result is never nil.
func (m *MaterialsR) MaterialSummaries(ctx context.Context, userID string) ([]models.MaterialSummary, error) {
	query := `
		SELECT sm.id, sm.public_id, sm.title, sm.created_at, COUNT(f.id) AS flashcard_count
		FROM study_materials sm
		LEFT JOIN flashcards f ON f.study_material_id = sm.id
		WHERE sm.user_id = ?
		GROUP BY sm.id, sm.public_id, sm.title, sm.created_at
		ORDER BY sm.created_at DESC`

	materials := []models.MaterialSummary{}
	if err := m.db.SelectContext(ctx, &materials, query, userID); err != nil {
		return []models.MaterialSummary{}, fmt.Errorf("failed to list materials: %w", err)
	}

	return materials, nil
}

func (m *MaterialsR) Material(ctx context.Context, userID, materialID string) (models.StudyMaterial, error) {
	query := `
		SELECT id, user_id, public_id, title, slug, content, file_type, file_url, created_at, updated_at
		FROM study_materials
		WHERE id = ? AND user_id = ?`

	var material models.StudyMaterial
	err := m.db.GetContext(ctx, &material, query, materialID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StudyMaterial{}, ErrNotFound
	}
	if err != nil {
		return models.StudyMaterial{}, fmt.Errorf("failed to get material: %w", err)
	}

	return material, nil
}

func (m *MaterialsR) CreateMaterial(ctx context.Context, material models.StudyMaterial) error {
	query := `
		INSERT INTO study_materials
			(id, user_id, public_id, title, slug, content, file_type, file_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := m.db.ExecContext(ctx, query,
		material.ID, material.UserID, material.PublicID, material.Title, material.Slug,
		material.Content, material.FileType, material.FileURL, material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create material: %w", err)
	}

	return nil
}

func (m *MaterialsR) DeleteMaterial(ctx context.Context, userID, materialID string) error {
	query := `DELETE FROM study_materials WHERE id = ? AND user_id = ?`

	res, err := m.db.ExecContext(ctx, query, materialID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}

	return affectedOne(res)
}
