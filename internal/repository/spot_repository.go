package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/spot-rental/internal/model"
)

type SpotRepo struct{ DB *sql.DB }

func NewSpotRepo(db *sql.DB) *SpotRepo { return &SpotRepo{DB: db} }

// selectSummary is the base projection shared by every list query: the spot
// row joined with its owner and optional district name.
const selectSummary = `SELECT s.id, s.user_id, s.district_id, s.address, s.city, s.state, s.country,
 s.name, s.description, s.price, s.visible, s.created_at, s.updated_at,
 u.username, COALESCE(d.name, '')
 FROM spots s
 JOIN users u ON u.id = s.user_id
 LEFT JOIN districts d ON d.id = s.district_id`

// Create inserts the spot and then its amenity links. The two steps are
// separate statements, so a failure between them can leave a spot without
// links; the client re-submits amenities on edit which heals the set.
func (r *SpotRepo) Create(ctx context.Context, s *model.Spot, amenityIDs []uint64) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO spots (user_id, district_id, address, city, state, country, name, description, price, visible)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		s.UserID, s.DistrictID, s.Address, s.City, s.State, s.Country, s.Name, s.Description, s.Price, s.Visible)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	if err := r.ReplaceAmenities(ctx, s.ID, amenityIDs); err != nil {
		return err
	}
	// Follow-up SELECT to populate the timestamp defaults.
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM spots WHERE id = ?", s.ID).
		Scan(&s.CreatedAt, &s.UpdatedAt)
}

// Update rewrites every mutable column of the spot and replaces its amenity
// set. Ownership is checked by the handler before this is called.
func (r *SpotRepo) Update(ctx context.Context, s *model.Spot, amenityIDs []uint64) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE spots SET district_id=?, address=?, city=?, state=?, country=?, name=?, description=?, price=?, visible=?
		 WHERE id=?`,
		s.DistrictID, s.Address, s.City, s.State, s.Country, s.Name, s.Description, s.Price, s.Visible, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// MySQL also reports 0 when nothing changed; confirm existence.
		var one int
		if err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM spots WHERE id=?", s.ID).Scan(&one); err != nil {
			if err == sql.ErrNoRows {
				return ErrNotFound
			}
			return err
		}
	}
	return r.ReplaceAmenities(ctx, s.ID, amenityIDs)
}

// Delete removes the spot. Images, reviews, bookings, amenity links and
// favorites go with it through the FK cascade rules.
func (r *SpotRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM spots WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// OwnerOf returns the owning user id, backing the ownership gate.
func (r *SpotRepo) OwnerOf(ctx context.Context, id uint64) (uint64, error) {
	var owner uint64
	err := r.DB.QueryRowContext(ctx, "SELECT user_id FROM spots WHERE id=?", id).Scan(&owner)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	return owner, err
}

// ReplaceAmenities swaps the spot's amenity link set for the given ids.
func (r *SpotRepo) ReplaceAmenities(ctx context.Context, spotID uint64, ids []uint64) error {
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM spot_amenities WHERE spot_id=?", spotID); err != nil {
		return err
	}
	for _, aid := range ids {
		if _, err := r.DB.ExecContext(ctx,
			"INSERT INTO spot_amenities (spot_id, amenity_id) VALUES (?,?)", spotID, aid); err != nil {
			return err
		}
	}
	return nil
}

// List returns all visible spots in summary form.
func (r *SpotRepo) List(ctx context.Context) ([]model.SpotSummary, error) {
	return r.listSummaries(ctx, selectSummary+" WHERE s.visible = 1 ORDER BY s.id")
}

// ListByOwner returns every spot of one owner, hidden ones included, so
// owners can manage listings they have taken offline.
func (r *SpotRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.SpotSummary, error) {
	return r.listSummaries(ctx, selectSummary+" WHERE s.user_id = ? ORDER BY s.id", ownerID)
}

// ListFavorites returns the visible spots the user has favorited.
func (r *SpotRepo) ListFavorites(ctx context.Context, userID uint64) ([]model.SpotSummary, error) {
	return r.listSummaries(ctx,
		selectSummary+" JOIN favorites f ON f.spot_id = s.id WHERE f.user_id = ? AND s.visible = 1 ORDER BY s.id",
		userID)
}

// GetDetail loads one spot with its full child collections.
func (r *SpotRepo) GetDetail(ctx context.Context, id uint64) (model.SpotDetail, error) {
	rows, err := r.listSummaries(ctx, selectSummary+" WHERE s.id = ?", id)
	if err != nil {
		return model.SpotDetail{}, err
	}
	if len(rows) == 0 {
		return model.SpotDetail{}, ErrNotFound
	}
	d := model.SpotDetail{SpotSummary: rows[0]}
	if d.Images, err = r.imagesOf(ctx, id); err != nil {
		return model.SpotDetail{}, err
	}
	if d.Reviews, err = r.reviewsOf(ctx, id); err != nil {
		return model.SpotDetail{}, err
	}
	if d.Bookings, err = r.bookingsOf(ctx, id); err != nil {
		return model.SpotDetail{}, err
	}
	return d, nil
}

// listSummaries runs a summary query and decorates each row with amenity
// ids, review count and preview image. One extra round trip per spot keeps
// the SQL simple; the lists involved are small.
func (r *SpotRepo) listSummaries(ctx context.Context, query string, args ...any) ([]model.SpotSummary, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.SpotSummary{}
	for rows.Next() {
		var s model.SpotSummary
		if err := rows.Scan(&s.ID, &s.UserID, &s.DistrictID, &s.Address, &s.City, &s.State, &s.Country,
			&s.Name, &s.Description, &s.Price, &s.Visible, &s.CreatedAt, &s.UpdatedAt,
			&s.Owner.Username, &s.DistrictName); err != nil {
			return nil, err
		}
		s.Owner.ID = s.UserID
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].AmenityIDs, err = r.amenityIDsOf(ctx, out[i].ID); err != nil {
			return nil, err
		}
		if out[i].ReviewCount, err = r.reviewCountOf(ctx, out[i].ID); err != nil {
			return nil, err
		}
		if out[i].PreviewImage, err = r.previewImageOf(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *SpotRepo) amenityIDsOf(ctx context.Context, spotID uint64) ([]uint64, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT amenity_id FROM spot_amenities WHERE spot_id=? ORDER BY amenity_id", spotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []uint64{}
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *SpotRepo) reviewCountOf(ctx context.Context, spotID uint64) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM reviews WHERE spot_id=?", spotID).Scan(&n)
	return n, err
}

// previewImageOf returns the oldest image URL, or empty when the spot has
// no images yet.
func (r *SpotRepo) previewImageOf(ctx context.Context, spotID uint64) (string, error) {
	var url string
	err := r.DB.QueryRowContext(ctx,
		"SELECT url FROM images WHERE spot_id=? ORDER BY id LIMIT 1", spotID).Scan(&url)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return url, err
}

func (r *SpotRepo) imagesOf(ctx context.Context, spotID uint64) ([]model.Image, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, spot_id, url, created_at FROM images WHERE spot_id=? ORDER BY id", spotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	imgs := []model.Image{}
	for rows.Next() {
		var im model.Image
		if err := rows.Scan(&im.ID, &im.SpotID, &im.URL, &im.CreatedAt); err != nil {
			return nil, err
		}
		imgs = append(imgs, im)
	}
	return imgs, rows.Err()
}

func (r *SpotRepo) reviewsOf(ctx context.Context, spotID uint64) ([]model.Review, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT rv.id, rv.spot_id, rv.user_id, u.username, rv.body, rv.created_at
		 FROM reviews rv JOIN users u ON u.id = rv.user_id
		 WHERE rv.spot_id=? ORDER BY rv.id`, spotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	revs := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.SpotID, &rv.Author.ID, &rv.Author.Username, &rv.Body, &rv.CreatedAt); err != nil {
			return nil, err
		}
		revs = append(revs, rv)
	}
	return revs, rows.Err()
}

func (r *SpotRepo) bookingsOf(ctx context.Context, spotID uint64) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, spot_id, user_id, start_date, end_date, created_at FROM bookings WHERE spot_id=? ORDER BY start_date", spotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bks := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		var start, end time.Time
		if err := rows.Scan(&b.ID, &b.SpotID, &b.UserID, &start, &end, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.StartDate = start.Format("2006-01-02")
		b.EndDate = end.Format("2006-01-02")
		bks = append(bks, b)
	}
	return bks, rows.Err()
}
