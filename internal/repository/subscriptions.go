package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/studybuddy-golang/internal/models"
)

type SubscriptionsR struct {
	db QueryI
}

func NewSubscriptionsRepository(db QueryI) *SubscriptionsR {
	return &SubscriptionsR{
		db: db,
	}
}

// Subscription returns the most recent billing mirror row for the user.
func (s *SubscriptionsR) Subscription(ctx context.Context, userID string) (models.Optional[models.Subscription], error) {
	query := `
		SELECT id, user_id, stripe_customer_id, stripe_subscription_id, plan_type, status,
			current_period_start, current_period_end, created_at, updated_at
		FROM subscriptions
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT 1`

	var sub models.Subscription
	err := s.db.GetContext(ctx, &sub, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.None[models.Subscription](), nil
	}
	if err != nil {
		return models.None[models.Subscription](), fmt.Errorf("failed to get subscription: %w", err)
	}

	return models.Some(sub), nil
}
