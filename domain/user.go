package domain

import "time"

// User represents a registered account. The password digest is never
// serialized into API responses.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) CanAdminister() bool {
	return u != nil && u.IsAdmin
}
