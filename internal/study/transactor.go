package study

import (
	"context"

	"github.com/01moynul/studybuddy-golang/internal/repository"
)

type storeTransactor struct {
	store *repository.Store
}

// NewStoreTransactor adapts a repository.Store to Transactor.
func NewStoreTransactor(store *repository.Store) Transactor {
	return storeTransactor{store: store}
}

func (t storeTransactor) InTx(ctx context.Context, fn func(Repository) error) error {
	return t.store.InTx(ctx, func(r repository.Repository) error {
		return fn(r)
	})
}
