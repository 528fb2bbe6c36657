// Package models defines the records shared by the repositories, the
// key-value collections and the services: the canonical venue shape, stored
// entity rows, the session projection and the location preference.
package models

import "time"

// Venue is the canonical museum record. Remote search results, entries
// built from encyclopedia articles and manual entries are all converted to
// this shape before they reach a collection.
type Venue struct {
	ID        string  `json:"id,omitempty"`
	PlaceID   *string `json:"place_id"`
	Reference string  `json:"reference,omitempty"`

	Title            string `json:"title,omitempty"`
	Name             string `json:"name,omitempty"`
	Subtitle         string `json:"subtitle,omitempty"`
	FormattedAddress string `json:"formatted_address,omitempty"`
	Description      string `json:"description,omitempty"`

	// Rating is on a 0 to 5 scale; nil when the source has none.
	Rating           *float64      `json:"rating"`
	UserRatingsTotal *int          `json:"user_ratings_total"`
	Types            []string      `json:"types,omitempty"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Image  *Image  `json:"image,omitempty"`
	Photos []Photo `json:"photos,omitempty"`

	IsCustom  bool       `json:"isCustom,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	WikipediaURL     string `json:"wikipedia_url,omitempty"`
	WikipediaExtract string `json:"wikipedia_extract,omitempty"`
}

type OpeningHours struct {
	OpenNow *bool `json:"open_now"`
}

// Image is a remote URL or a local file URI.
type Image struct {
	URI string `json:"uri"`
}

type Photo struct {
	PhotoReference string `json:"photo_reference,omitempty"`
	URI            string `json:"uri,omitempty"`
}

// DisplayTitle returns Title, falling back to Name.
func (v Venue) DisplayTitle() string {
	if v.Title != "" {
		return v.Title
	}
	return v.Name
}

// DisplaySubtitle returns Subtitle, falling back to FormattedAddress.
func (v Venue) DisplaySubtitle() string {
	if v.Subtitle != "" {
		return v.Subtitle
	}
	return v.FormattedAddress
}
