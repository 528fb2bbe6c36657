package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
)

// ManualEntry is what a user types in to register a venue by hand.
type ManualEntry struct {
	Title       string
	Address     string
	Description string
	Rating      *float64
	Latitude    *float64
	Longitude   *float64
	ImageURI    string
	Types       []string
}

func (e ManualEntry) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if e.Rating != nil && (*e.Rating < 0 || *e.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 0 and 5", common.ErrorValidation)
	}
	if (e.Latitude == nil) != (e.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude go together", common.ErrorValidation)
	}
	if e.Latitude != nil && (*e.Latitude < -90 || *e.Latitude > 90) {
		return fmt.Errorf("%w: latitude out of range", common.ErrorValidation)
	}
	if e.Longitude != nil && (*e.Longitude < -180 || *e.Longitude > 180) {
		return fmt.Errorf("%w: longitude out of range", common.ErrorValidation)
	}
	return nil
}

// Venue converts the entry into the canonical shape. The address falls
// back to the title and the description to "Museum".
func (e ManualEntry) Venue() models.Venue {
	title := strings.TrimSpace(e.Title)
	address := strings.TrimSpace(e.Address)
	if address == "" {
		address = title
	}
	description := strings.TrimSpace(e.Description)
	if description == "" {
		description = "Museum"
	}
	types := e.Types
	if len(types) == 0 {
		types = []string{"museum"}
	}
	rating := common.DefaultRating
	if e.Rating != nil {
		rating = *e.Rating
	}

	v := models.Venue{
		Title:            title,
		Name:             title,
		Subtitle:         address,
		FormattedAddress: address,
		Description:      description,
		Rating:           &rating,
		Types:            types,
		Latitude:         e.Latitude,
		Longitude:        e.Longitude,
	}
	if e.ImageURI != "" {
		v.Image = &models.Image{URI: e.ImageURI}
		v.Photos = []models.Photo{{URI: e.ImageURI}}
	}
	return v
}
