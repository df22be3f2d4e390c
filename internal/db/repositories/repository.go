package repositories

//go:generate mockgen -destination=mocks/repositories.go -package=mock_repositories . SuggestionRepository,VoteRepository,Transactor

import (
	"context"
	"course_suggestions_system/internal/domainerrors"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Tx is a store handle. It is either the connection pool or a single
// transaction; repositories work the same way on both.
type Tx = orm.DB

type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(tx Tx) error) error
}

type repository struct {
	db orm.DB
}

type transactor struct {
	db *pg.DB
}

func NewTransactor(db *pg.DB) Transactor {
	return &transactor{db: db}
}

func (t *transactor) RunInTransaction(ctx context.Context, fn func(tx Tx) error) error {
	return t.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(tx)
	})
}

func sqlState(err error) string {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C')
	}
	return ""
}

func storeError(err error) error {
	return fmt.Errorf("%w: %w", domainerrors.ErrStoreUnavailable, err)
}
