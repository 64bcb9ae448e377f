package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/spot-rental/internal/model"
)

type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

// Create inserts a review authored by the current user.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO reviews (spot_id, user_id, body) VALUES (?,?,?)",
		rv.SpotID, rv.Author.ID, rv.Body)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM reviews WHERE id=?", rv.ID).Scan(&rv.CreatedAt)
}
