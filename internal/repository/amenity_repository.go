package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/spot-rental/internal/model"
)

type AmenityRepo struct{ DB *sql.DB }

func NewAmenityRepo(db *sql.DB) *AmenityRepo { return &AmenityRepo{DB: db} }

// ListAll returns the amenity reference list ordered by id.
func (r *AmenityRepo) ListAll(ctx context.Context) ([]model.Amenity, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, icon FROM amenities ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Amenity{}
	for rows.Next() {
		var a model.Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.Icon); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
