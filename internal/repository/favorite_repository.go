package repository

import (
	"context"
	"database/sql"
	"strings"
)

type FavoriteRepo struct{ DB *sql.DB }

func NewFavoriteRepo(db *sql.DB) *FavoriteRepo { return &FavoriteRepo{DB: db} }

// Add marks a spot as a favorite of the user. Re-adding an existing
// favorite is a no-op so the operation stays idempotent.
func (r *FavoriteRepo) Add(ctx context.Context, userID, spotID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO favorites (user_id, spot_id) VALUES (?,?)", userID, spotID)
	if err != nil && strings.Contains(err.Error(), "1062") {
		return nil
	}
	return err
}

// Remove unmarks the favorite. Removing a non-existent pair succeeds.
func (r *FavoriteRepo) Remove(ctx context.Context, userID, spotID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id=? AND spot_id=?", userID, spotID)
	return err
}
