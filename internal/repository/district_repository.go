package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/spot-rental/internal/model"
)

type DistrictRepo struct{ DB *sql.DB }

func NewDistrictRepo(db *sql.DB) *DistrictRepo { return &DistrictRepo{DB: db} }

// ListAll returns every district ordered by name. The list is a static
// reference set seeded out of band, so there are no mutation methods.
func (r *DistrictRepo) ListAll(ctx context.Context) ([]model.District, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name FROM districts ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.District{}
	for rows.Next() {
		var d model.District
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
