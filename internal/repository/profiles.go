package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/studybuddy-golang/internal/models"
)

type ProfilesR struct {
	db QueryI
}

func NewProfilesRepository(db QueryI) *ProfilesR {
	return &ProfilesR{
		db: db,
	}
}

// ProfileSummary returns the tier and credit columns of the user's profile.
// A user without a profile row gets None and a nil error.
func (p *ProfilesR) ProfileSummary(ctx context.Context, userID string) (models.Optional[models.ProfileSummary], error) {
	query := `
		SELECT subscription_tier, credits_remaining, uploads_this_month
		FROM profiles
		WHERE user_id = ?`

	var summary models.ProfileSummary
	err := p.db.GetContext(ctx, &summary, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.None[models.ProfileSummary](), nil
	}
	if err != nil {
		return models.None[models.ProfileSummary](), fmt.Errorf("failed to get profile summary: %w", err)
	}

	return models.Some(summary), nil
}

func (p *ProfilesR) Profile(ctx context.Context, userID string) (models.Optional[models.Profile], error) {
	query := `
		SELECT id, user_id, email, full_name, avatar_url, subscription_tier,
			credits_remaining, uploads_this_month, created_at, updated_at
		FROM profiles
		WHERE user_id = ?`

	var profile models.Profile
	err := p.db.GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.None[models.Profile](), nil
	}
	if err != nil {
		return models.None[models.Profile](), fmt.Errorf("failed to get profile: %w", err)
	}

	return models.Some(profile), nil
}

// ConsumeCredit takes one credit from the user if any are left.
// It reports false when the balance was already zero.
func (p *ProfilesR) ConsumeCredit(ctx context.Context, userID string) (bool, error) {
	query := `
		UPDATE profiles
		SET credits_remaining = credits_remaining - 1
		WHERE user_id = ? AND credits_remaining > 0`

	res, err := p.db.ExecContext(ctx, query, userID)
	if err != nil {
		return false, fmt.Errorf("failed to consume credit: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check affected rows: %w", err)
	}

	return n == 1, nil
}

func (p *ProfilesR) RefundCredit(ctx context.Context, userID string) error {
	query := `
		UPDATE profiles
		SET credits_remaining = COALESCE(credits_remaining, 0) + 1
		WHERE user_id = ?`

	if _, err := p.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to refund credit: %w", err)
	}

	return nil
}

func (p *ProfilesR) IncrementUploads(ctx context.Context, userID string) error {
	query := `
		UPDATE profiles
		SET uploads_this_month = COALESCE(uploads_this_month, 0) + 1
		WHERE user_id = ?`

	if _, err := p.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to increment uploads: %w", err)
	}

	return nil
}

// ResetMonthlyCredits refills free-tier balances to allotment and clears
// every upload counter. It returns the number of profiles touched.
func (p *ProfilesR) ResetMonthlyCredits(ctx context.Context, allotment int) (int64, error) {
	query := `
		UPDATE profiles
		SET credits_remaining = CASE
				WHEN COALESCE(NULLIF(subscription_tier, ''), 'free') = 'free' THEN ?
				ELSE credits_remaining
			END,
			uploads_this_month = 0`

	res, err := p.db.ExecContext(ctx, query, allotment)
	if err != nil {
		return 0, fmt.Errorf("failed to reset monthly credits: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}

	return n, nil
}
