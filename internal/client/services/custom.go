package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/client/scoped"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
)

// CustomVenueService manages venues the user created, either by hand or by
// importing an article. Entries are kept newest first.
type CustomVenueService interface {
	List(ctx context.Context) ([]models.Venue, error)
	// Add stores v as a custom venue and returns the stored record.
	Add(ctx context.Context, v models.Venue) (models.Venue, error)
	CreateManual(ctx context.Context, e ManualEntry) (models.Venue, error)
	Update(ctx context.Context, id string, patch CustomPatch) (models.Venue, error)
	RemoveByID(ctx context.Context, id string) (bool, error)
}

// CustomPatch lists the editable fields of a custom venue. Nil fields are
// left untouched.
type CustomPatch struct {
	Title       *string
	Address     *string
	Description *string
	Rating      *float64
	Latitude    *float64
	Longitude   *float64
	ImageURI    *string
}

const customIDPrefix = "custom_"

type customVenueService struct {
	list *scoped.Collection[models.Venue]
	log  logging.Logger
	now  func() time.Time
}

func NewCustomVenueService(store *scoped.Store, log logging.Logger) CustomVenueService {
	return &customVenueService{
		list: scoped.NewCollection[models.Venue](store, common.CollectionCustomMuseums),
		log:  log.With("service", "custom"),
		now:  time.Now,
	}
}

func (s *customVenueService) List(ctx context.Context) ([]models.Venue, error) {
	return readLenient(ctx, s.list, s.log)
}

// Add stores v as a custom venue. An id without the "custom_" prefix is
// replaced with a fresh "custom_<unixms>_<rand>" one so a custom record never
// shares an identity with a remote place. Adding an id that is already
// stored is a no-op and returns the stored record.
func (s *customVenueService) Add(ctx context.Context, v models.Venue) (models.Venue, error) {
	if strings.TrimSpace(v.DisplayTitle()) == "" {
		return models.Venue{}, fmt.Errorf("%w: venue title is required", common.ErrorValidation)
	}

	now := s.now().UTC()
	if !strings.HasPrefix(v.ID, customIDPrefix) {
		v.ID = common.LocalID("custom", now)
	}
	v.IsCustom = true
	v.PlaceID = nil
	v.CreatedAt = &now

	stored, added := v, false
	_, err := s.list.Modify(ctx, func(items []models.Venue) ([]models.Venue, error) {
		if i := indexOf(items, v.ID); i >= 0 {
			stored = items[i]
			return items, nil
		}
		added = true
		return append([]models.Venue{v}, items...), nil
	})
	if err != nil {
		return models.Venue{}, fmt.Errorf("failed to add custom venue: %w", err)
	}

	if added {
		s.log.Info(ctx, "custom venue added", "id", v.ID, "title", v.DisplayTitle())
	}
	return stored, nil
}

func (s *customVenueService) CreateManual(ctx context.Context, e ManualEntry) (models.Venue, error) {
	if err := e.Validate(); err != nil {
		return models.Venue{}, err
	}
	return s.Add(ctx, e.Venue())
}

func (s *customVenueService) Update(ctx context.Context, id string, patch CustomPatch) (models.Venue, error) {
	if err := patch.validate(); err != nil {
		return models.Venue{}, err
	}

	var updated models.Venue
	found := false
	_, err := s.list.Modify(ctx, func(items []models.Venue) ([]models.Venue, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			now := s.now().UTC()
			patch.apply(&items[i])
			items[i].UpdatedAt = &now
			updated, found = items[i], true
			return items, nil
		}
		return nil, fmt.Errorf("custom venue %s: %w", id, common.ErrorNotFound)
	})
	if err != nil {
		return models.Venue{}, err
	}
	if !found {
		return models.Venue{}, fmt.Errorf("custom venue %s: %w", id, common.ErrorNotFound)
	}
	return updated, nil
}

func (s *customVenueService) RemoveByID(ctx context.Context, id string) (bool, error) {
	removed := false
	_, err := s.list.Modify(ctx, func(items []models.Venue) ([]models.Venue, error) {
		out := items[:0]
		for _, item := range items {
			if item.ID == id {
				removed = true
				continue
			}
			out = append(out, item)
		}
		return out, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (p CustomPatch) validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 0 and 5", common.ErrorValidation)
	}
	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
		return fmt.Errorf("%w: latitude out of range", common.ErrorValidation)
	}
	if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
		return fmt.Errorf("%w: longitude out of range", common.ErrorValidation)
	}
	return nil
}

func (p CustomPatch) apply(v *models.Venue) {
	if p.Title != nil {
		v.Title = strings.TrimSpace(*p.Title)
		v.Name = v.Title
	}
	if p.Address != nil {
		v.Subtitle = strings.TrimSpace(*p.Address)
		v.FormattedAddress = v.Subtitle
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.Rating != nil {
		v.Rating = common.Ptr(*p.Rating)
	}
	if p.Latitude != nil {
		v.Latitude = common.Ptr(*p.Latitude)
	}
	if p.Longitude != nil {
		v.Longitude = common.Ptr(*p.Longitude)
	}
	if p.ImageURI != nil {
		if *p.ImageURI == "" {
			v.Image, v.Photos = nil, nil
		} else {
			v.Image = &models.Image{URI: *p.ImageURI}
			v.Photos = []models.Photo{{URI: *p.ImageURI}}
		}
	}
}
