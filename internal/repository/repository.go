package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a row the caller asked for by id does not
// exist or belongs to another user.
var ErrNotFound = errors.New("record not found")

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*ProfilesR
	*ProgressR
	*MaterialsR
	*FlashcardsR
	*SubscriptionsR
	*NotificationsR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		ProfilesR:      NewProfilesRepository(db),
		ProgressR:      NewProgressRepository(db),
		MaterialsR:     NewMaterialsRepository(db),
		FlashcardsR:    NewFlashcardsRepository(db),
		SubscriptionsR: NewSubscriptionsRepository(db),
		NotificationsR: NewNotificationsRepository(db),
	}
}

// Store is a Repository bound to the connection pool that can also open
// transactions.
type Store struct {
	Repository
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		Repository: NewRepository(db),
		db:         db,
	}
}

// InTx runs fn against a Repository bound to a single transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
func (s *Store) InTx(ctx context.Context, fn func(Repository) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(NewRepository(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
