package domain

import "time"

// User is a registered account. PasswordHash never leaves the service layer.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile is the public view of a user
type Profile struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Profile returns the public view of the user
func (u User) Profile() Profile {
	return Profile{Username: u.Username, IsAdmin: u.IsAdmin}
}

// Session is returned on successful login
type Session struct {
	Profile
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
