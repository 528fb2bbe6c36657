package models

import "time"

// VenueRecord is a row of the venues table.
type VenueRecord struct {
	RowID    int64
	StableID string

	Name     string
	Location string
	Rating   *float64
	Hours    string

	// Favorites holds the stable ids of users who favorited the venue.
	Favorites []string
	Visits    []Visit

	CreatedAt   time.Time
	UpdatedAt   time.Time
	SyncVersion int64
}

type Visit struct {
	UserID string    `json:"userId"`
	At     time.Time `json:"at"`
}

// User is a row of the users table. PasswordHash is an encoded Argon2id
// hash, never the plain password.
type User struct {
	RowID    int64
	StableID string

	Name         string
	Email        string
	PasswordHash string
	ProfileImage *string

	CreatedAt time.Time
}

// Session is the signed-in user projection kept in the key-value store.
type Session struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profileImage"`
}

// SessionOf projects u into a Session.
func SessionOf(u User) Session {
	return Session{
		ID:           u.StableID,
		Name:         u.Name,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}

// Location is the saved search-center preference.
type Location struct {
	State     string    `json:"state"`
	City      string    `json:"city"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updatedAt"`
}
