package repositories

import (
	"context"
	"course_suggestions_system/internal/db/models"
	"course_suggestions_system/internal/domainerrors"
	"errors"
	"time"

	"github.com/go-pg/pg/v10"
)

type suggestionRepository struct {
	repository
}

type SuggestionRepository interface {
	WithTx(tx Tx) SuggestionRepository
	Create(ctx context.Context, request *models.Suggestion) (*models.Suggestion, error)
	GetOne(ctx context.Context, suggestionID int64) (*models.Suggestion, error)
	GetManyByNameAndStatus(ctx context.Context, name string, status models.SuggestionStatus) ([]*models.Suggestion, error)
	GetMany(ctx context.Context, status ...models.SuggestionStatus) ([]*models.Suggestion, error)
	UpdateStatus(ctx context.Context, suggestionID int64, from, to models.SuggestionStatus, updatedAt time.Time) (*models.Suggestion, error)
	IncrementVotes(ctx context.Context, suggestionID int64, updatedAt time.Time) (int, error)
	ReconcileVotes(ctx context.Context, updatedAt time.Time) ([]int64, error)
}

func NewSuggestionRepository(db Tx) SuggestionRepository {
	return &suggestionRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *suggestionRepository) WithTx(tx Tx) SuggestionRepository {
	return NewSuggestionRepository(tx)
}

// Create inserts a suggestion. The partial unique index on pending names turns
// a concurrent duplicate into ErrDuplicatePending.
func (r *suggestionRepository) Create(ctx context.Context, request *models.Suggestion) (*models.Suggestion, error) {
	_, err := r.db.ModelContext(ctx, request).
		Returning("*").
		Insert()
	if err != nil {
		if sqlState(err) == uniqueViolation {
			return nil, domainerrors.ErrDuplicatePending
		}
		return nil, storeError(err)
	}

	return request, nil
}

func (r *suggestionRepository) GetOne(ctx context.Context, suggestionID int64) (*models.Suggestion, error) {
	suggestion := &models.Suggestion{}

	err := r.db.ModelContext(ctx, suggestion).
		Where("id = ?", suggestionID).
		Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storeError(err)
	}

	return suggestion, nil
}

func (r *suggestionRepository) GetManyByNameAndStatus(ctx context.Context, name string, status models.SuggestionStatus) ([]*models.Suggestion, error) {
	suggestions := make([]*models.Suggestion, 0)

	err := r.db.ModelContext(ctx, &suggestions).
		Where("name = ?", name).
		Where("status = ?", status).
		Select()
	if err != nil {
		return nil, storeError(err)
	}

	return suggestions, nil
}

// GetMany returns suggestions newest first, restricted to the given statuses
// when any are passed.
func (r *suggestionRepository) GetMany(ctx context.Context, status ...models.SuggestionStatus) ([]*models.Suggestion, error) {
	suggestions := make([]*models.Suggestion, 0)

	query := r.db.ModelContext(ctx, &suggestions)
	if len(status) > 0 {
		query = query.Where("status IN (?)", pg.In(status))
	}

	err := query.
		OrderExpr("created_at DESC, id DESC").
		Select()
	if err != nil {
		return nil, storeError(err)
	}

	return suggestions, nil
}

// UpdateStatus moves a suggestion from one status to another. The update only
// applies while the row is still in the from status, so of two racing
// moderators exactly one wins and the other gets ErrAlreadyProcessed.
func (r *suggestionRepository) UpdateStatus(
	ctx context.Context,
	suggestionID int64,
	from, to models.SuggestionStatus,
	updatedAt time.Time,
) (*models.Suggestion, error) {
	suggestion := &models.Suggestion{}

	result, err := r.db.ModelContext(ctx, suggestion).
		Set("status = ?", to).
		Set("updated_at = ?", updatedAt).
		Where("id = ?", suggestionID).
		Where("status = ?", from).
		Returning("*").
		Update()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, domainerrors.ErrAlreadyProcessed
		}
		return nil, storeError(err)
	}

	if result.RowsAffected() == 0 {
		return nil, domainerrors.ErrAlreadyProcessed
	}

	return suggestion, nil
}

// IncrementVotes adds one vote in a single statement and returns the new count.
func (r *suggestionRepository) IncrementVotes(ctx context.Context, suggestionID int64, updatedAt time.Time) (int, error) {
	var votes int

	result, err := r.db.ModelContext(ctx, (*models.Suggestion)(nil)).
		Set("votes = votes + 1").
		Set("updated_at = ?", updatedAt).
		Where("id = ?", suggestionID).
		Returning("votes").
		Update(pg.Scan(&votes))
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return 0, domainerrors.ErrNotFound
		}
		return 0, storeError(err)
	}

	if result.RowsAffected() == 0 {
		return 0, domainerrors.ErrNotFound
	}

	return votes, nil
}

// ReconcileVotes resets every counter that drifted from its ledger and returns
// the ids it touched.
func (r *suggestionRepository) ReconcileVotes(ctx context.Context, updatedAt time.Time) ([]int64, error) {
	ids := make([]int64, 0)

	_, err := r.db.QueryContext(ctx, &ids, `
		UPDATE courses_suggestions AS s
		SET votes = c.total, updated_at = ?
		FROM (
			SELECT cs.id, COUNT(v.id) AS total
			FROM courses_suggestions AS cs
			LEFT JOIN votes AS v ON v.suggestion_id = cs.id
			GROUP BY cs.id
		) AS c
		WHERE s.id = c.id AND s.votes <> c.total
		RETURNING s.id
	`, updatedAt)
	if err != nil {
		return nil, storeError(err)
	}

	return ids, nil
}
