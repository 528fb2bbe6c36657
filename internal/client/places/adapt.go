package places

import (
	"strings"

	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
)

const fallbackText = "Museum"

// Adapt converts raw results into venues. The address comes from vicinity,
// then formatted_address; the description lists up to three types; a
// missing or zero rating becomes common.DefaultRating.
func (c *Client) Adapt(results []Place) []models.Venue {
	venues := make([]models.Venue, 0, len(results))
	for _, p := range results {
		venues = append(venues, c.adaptOne(p))
	}
	return venues
}

func (c *Client) adaptOne(p Place) models.Venue {
	v := models.Venue{
		ID:               p.PlaceID,
		Reference:        p.Reference,
		Title:            p.Name,
		Name:             p.Name,
		Subtitle:         firstNonEmpty(p.Vicinity, p.FormattedAddress, fallbackText),
		FormattedAddress: firstNonEmpty(p.FormattedAddress, p.Vicinity),
		Description:      fallbackText,
		Rating:           common.Ptr(common.DefaultRating),
		UserRatingsTotal: p.UserRatingsTotal,
		Types:            p.Types,
	}
	if p.PlaceID != "" {
		v.PlaceID = common.Ptr(p.PlaceID)
	}
	if len(p.Types) > 0 {
		v.Description = strings.Join(p.Types[:min(3, len(p.Types))], ", ")
	}
	if p.Rating != nil && *p.Rating > 0 {
		v.Rating = common.Ptr(*p.Rating)
	}
	if p.OpeningHours != nil {
		v.OpeningHours = &models.OpeningHours{OpenNow: p.OpeningHours.OpenNow}
	}
	if p.Geometry != nil {
		v.Latitude = common.Ptr(p.Geometry.Location.Lat)
		v.Longitude = common.Ptr(p.Geometry.Location.Lng)
	}

	for _, ph := range p.Photos {
		if ph.PhotoReference == "" {
			continue
		}
		v.Photos = append(v.Photos, models.Photo{
			PhotoReference: ph.PhotoReference,
			URI:            c.PhotoURL(ph.PhotoReference, c.photoMaxWidth),
		})
	}
	if len(v.Photos) > 0 {
		v.Image = &models.Image{URI: v.Photos[0].URI}
	}

	return v
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
