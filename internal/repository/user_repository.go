package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/spot-rental/internal/model"
	"github.com/iliyamo/spot-rental/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts the user, returning the new id.
// Unique index collisions are mapped to ErrUsernameExists / ErrEmailExists
// so the handler can report them per field.
func (r *UserRepo) Create(ctx context.Context, username, email, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, hashed_password) VALUES (?,?,?)",
		username, email, hash)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "1062") {
			if strings.Contains(msg, "uq_users_email") {
				return 0, ErrEmailExists
			}
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByCredential fetches the full user row, hash included, by username OR
// email. It backs the login path only; everything else should use
// GetAuthenticatedByID.
func (r *UserRepo) GetByCredential(ctx context.Context, credential string) (model.User, error) {
	credential = strings.TrimSpace(credential)
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,hashed_password,created_at,updated_at FROM users WHERE username=? OR email=? LIMIT 1",
		credential, strings.ToLower(credential)).
		Scan(&u.ID, &u.Username, &u.Email, &u.HashedPassword, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// GetAuthenticatedByID loads the safe session representation of a user. The
// query never selects the hashed password column.
func (r *UserRepo) GetAuthenticatedByID(ctx context.Context, id uint64) (model.AuthenticatedUser, error) {
	var u model.AuthenticatedUser
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email FROM users WHERE id=? LIMIT 1", id).
		Scan(&u.ID, &u.Username, &u.Email)
	if err == sql.ErrNoRows {
		return model.AuthenticatedUser{}, ErrNotFound
	}
	return u, err
}
