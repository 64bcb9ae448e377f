package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/iliyamo/spot-rental/internal/model"
)

func TestSpotCreateWritesAmenityLinks(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()
	repo := NewSpotRepo(db)

	spot := model.Spot{
		UserID:      9,
		Address:     "1 Main St",
		City:        "Lisbon",
		State:       "Lisboa",
		Country:     "Portugal",
		Name:        "Cozy loft",
		Description: "bright and quiet",
		Price:       "120.00",
		Visible:     true,
	}

	mock.ExpectExec("INSERT INTO spots").
		WithArgs(uint64(9), nil, "1 Main St", "Lisbon", "Lisboa", "Portugal", "Cozy loft", "bright and quiet", "120.00", true).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("DELETE FROM spot_amenities").
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO spot_amenities").
		WithArgs(uint64(7), uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO spot_amenities").
		WithArgs(uint64(7), uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT created_at, updated_at FROM spots").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow(time.Now(), time.Now()))

	if err := repo.Create(context.Background(), &spot, []uint64{1, 3}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if spot.ID != 7 {
		t.Fatalf("spot id = %d, want 7", spot.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSpotDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()
	repo := NewSpotRepo(db)

	mock.ExpectExec("DELETE FROM spots").
		WithArgs(uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 99); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSpotOwnerOf(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()
	repo := NewSpotRepo(db)

	mock.ExpectQuery("SELECT user_id FROM spots").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(9))

	owner, err := repo.OwnerOf(context.Background(), 7)
	if err != nil {
		t.Fatalf("owner: %v", err)
	}
	if owner != 9 {
		t.Fatalf("owner = %d, want 9", owner)
	}
}
