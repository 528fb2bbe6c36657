package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/museumkeeper/internal/client/geo"
	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/client/scoped"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
)

// LocationService keeps the search-center preference. The value is stored
// under a global key and shared by every user of the device.
type LocationService interface {
	Save(ctx context.Context, state, city string) (models.Location, error)
	// Get returns the saved location, or the default city when none is
	// saved or the stored value is unreadable.
	Get(ctx context.Context) (models.Location, error)
	Clear(ctx context.Context) error
}

type locationService struct {
	store *scoped.Store
	log   logging.Logger
	now   func() time.Time
}

func NewLocationService(store *scoped.Store, log logging.Logger) LocationService {
	return &locationService{store: store, log: log.With("service", "location"), now: time.Now}
}

func (s *locationService) Save(ctx context.Context, state, city string) (models.Location, error) {
	c, err := geo.Lookup(state, city)
	if err != nil {
		return models.Location{}, fmt.Errorf("%s/%s: %w", state, city, err)
	}

	loc := models.Location{
		State:     strings.ToUpper(strings.TrimSpace(state)),
		City:      c.Name,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		UpdatedAt: s.now().UTC(),
	}
	data, err := json.Marshal(loc)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to encode location: %w", err)
	}
	if err := s.store.Set(ctx, common.LocationKey, data); err != nil {
		return models.Location{}, fmt.Errorf("failed to save location: %w", err)
	}
	return loc, nil
}

func (s *locationService) Get(ctx context.Context) (models.Location, error) {
	raw, err := s.store.Get(ctx, common.LocationKey)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to read location: %w", err)
	}
	if raw == nil {
		return defaultLocation(), nil
	}

	var loc models.Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		s.log.Warn(ctx, "ignoring corrupted location", "error", err)
		return defaultLocation(), nil
	}
	return loc, nil
}

func (s *locationService) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, common.LocationKey)
}

func defaultLocation() models.Location {
	c := geo.Default()
	return models.Location{
		State:     geo.DefaultState,
		City:      c.Name,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}
