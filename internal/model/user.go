package model

import "time"

// User mirrors a full row of the `users` table including the bcrypt hash.
// It is only handled inside the repository layer during signup and login;
// everything above works with PublicUser or AuthenticatedUser so the hash
// cannot leak into a response by accident.
//
// Fields:
//
//	ID             – primary key identifier of the user.
//	Username       – unique display name (4–30 chars, never an email address).
//	Email          – unique email address (3–256 chars).
//	HashedPassword – bcrypt hash, always exactly 60 characters.
//	CreatedAt      – timestamp of creation.
//	UpdatedAt      – timestamp of last update.
type User struct {
	ID             uint64    // users.id
	Username       string    // users.username
	Email          string    // users.email
	HashedPassword string    // users.hashed_password
	CreatedAt      time.Time // users.created_at
	UpdatedAt      time.Time // users.updated_at
}

// PublicUser is the representation embedded in spot listings and reviews.
// It exposes nothing beyond the id and username.
type PublicUser struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// AuthenticatedUser is the representation returned to the session owner
// after signup, login and session restore. It adds the email but still has
// no field that could carry the password hash.
type AuthenticatedUser struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public narrows an authenticated user down to its public projection.
func (u AuthenticatedUser) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
