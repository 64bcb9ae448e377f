package database

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrateExecutesAllStatements(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	for range migrations {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

// The cascade rules are load-bearing: deleting a user must remove their
// spots, and deleting a spot must remove its images.
func TestSchemaCascades(t *testing.T) {
	var spots, images string
	for _, stmt := range migrations {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS spots ") || strings.Contains(stmt, "EXISTS spots (") {
			spots = stmt
		}
		if strings.Contains(stmt, "EXISTS images (") {
			images = stmt
		}
	}
	if spots == "" || images == "" {
		t.Fatal("spots or images DDL missing")
	}
	if !strings.Contains(spots, "REFERENCES users (id) ON DELETE CASCADE") {
		t.Fatal("spots.user_id does not cascade on user delete")
	}
	if !strings.Contains(images, "REFERENCES spots (id) ON DELETE CASCADE") {
		t.Fatal("images.spot_id does not cascade on spot delete")
	}
}

func TestSchemaUniqueConstraints(t *testing.T) {
	joined := strings.Join(migrations, "\n")
	for _, idx := range []string{"uq_users_username", "uq_users_email", "uq_districts_name", "uq_amenities_name"} {
		if !strings.Contains(joined, idx) {
			t.Fatalf("missing unique index %s", idx)
		}
	}
}
