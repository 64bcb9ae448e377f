package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/spot-rental/internal/model"
)

type ImageRepo struct{ DB *sql.DB }

func NewImageRepo(db *sql.DB) *ImageRepo { return &ImageRepo{DB: db} }

// Create registers an already-uploaded image URL against a spot.
func (r *ImageRepo) Create(ctx context.Context, img *model.Image) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO images (spot_id, url) VALUES (?,?)", img.SpotID, img.URL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	img.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM images WHERE id=?", img.ID).Scan(&img.CreatedAt)
}

// ListBySpot returns the spot's images ordered by id.
func (r *ImageRepo) ListBySpot(ctx context.Context, spotID uint64) ([]model.Image, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, spot_id, url, created_at FROM images WHERE spot_id=? ORDER BY id", spotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Image{}
	for rows.Next() {
		var im model.Image
		if err := rows.Scan(&im.ID, &im.SpotID, &im.URL, &im.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, im)
	}
	return out, rows.Err()
}

// SpotOf returns the id of the spot the image belongs to so the handler can
// run the ownership gate against the spot's owner.
func (r *ImageRepo) SpotOf(ctx context.Context, id uint64) (uint64, error) {
	var spotID uint64
	err := r.DB.QueryRowContext(ctx, "SELECT spot_id FROM images WHERE id=?", id).Scan(&spotID)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	return spotID, err
}

// Delete removes one image row.
func (r *ImageRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM images WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
