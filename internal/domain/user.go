package domain

import "github.com/google/uuid"

type Users struct {
	ID       uuid.UUID `db:"id"`
	UserName string    `db:"user_name"`
	Email    *string   `db:"email"`
	IsGuest  bool      `db:"-"`
}

// GuestUser returns the sentinel identity for an unauthenticated visitor.
// Guests carry a zero ID and are rejected by every mutating operation.
func GuestUser() *Users {
	return &Users{IsGuest: true}
}

func (u *Users) Guest() bool {
	return u == nil || u.IsGuest
}

type UsersTable struct {
	ID       string
	UserName string
	Email    string
}

func GetUserTable() UsersTable {
	return UsersTable{
		ID:       "id",
		UserName: "user_name",
		Email:    "email",
	}
}

func (t UsersTable) GetTableName() string {
	return "users"
}
