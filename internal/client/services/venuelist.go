package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/museumkeeper/internal/client/identity"
	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/client/scoped"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
)

// VenueListService is a per-user set of venues keyed by identity.Of and
// kept newest first. Adding a venue that is already present is a no-op.
type VenueListService interface {
	List(ctx context.Context) ([]models.Venue, error)
	// Add reports whether v was inserted.
	Add(ctx context.Context, v models.Venue) (bool, error)
	// Remove reports whether a venue with the identity of v was removed.
	Remove(ctx context.Context, v models.Venue) (bool, error)
	RemoveKey(ctx context.Context, key string) (bool, error)
	Contains(ctx context.Context, v models.Venue) (bool, error)
	// Keys returns the identities of the stored venues.
	Keys(ctx context.Context) (map[string]struct{}, error)
}

type venueListService struct {
	list *scoped.Collection[models.Venue]
	log  logging.Logger
}

// NewVenueListService returns the list stored under collection, e.g.
// common.CollectionFavorites.
func NewVenueListService(store *scoped.Store, collection string, log logging.Logger) VenueListService {
	return &venueListService{
		list: scoped.NewCollection[models.Venue](store, collection),
		log:  log.With("service", "venuelist", "collection", collection),
	}
}

func NewFavoritesService(store *scoped.Store, log logging.Logger) VenueListService {
	return NewVenueListService(store, common.CollectionFavorites, log)
}

func (s *venueListService) List(ctx context.Context) ([]models.Venue, error) {
	return readLenient(ctx, s.list, s.log)
}

func (s *venueListService) Add(ctx context.Context, v models.Venue) (bool, error) {
	key, ok := identity.Of(v)
	if !ok {
		return false, fmt.Errorf("%w: venue has no identity", common.ErrorValidation)
	}

	added := false
	_, err := s.list.Modify(ctx, func(items []models.Venue) ([]models.Venue, error) {
		if indexOf(items, key) >= 0 {
			return items, nil
		}
		added = true
		return append([]models.Venue{v}, items...), nil
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (s *venueListService) Remove(ctx context.Context, v models.Venue) (bool, error) {
	key, ok := identity.Of(v)
	if !ok {
		return false, nil
	}
	return s.RemoveKey(ctx, key)
}

func (s *venueListService) RemoveKey(ctx context.Context, key string) (bool, error) {
	removed := false
	_, err := s.list.Modify(ctx, func(items []models.Venue) ([]models.Venue, error) {
		out := items[:0]
		for _, item := range items {
			if k, ok := identity.Of(item); ok && k == key {
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

func (s *venueListService) Contains(ctx context.Context, v models.Venue) (bool, error) {
	key, ok := identity.Of(v)
	if !ok {
		return false, nil
	}
	items, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return indexOf(items, key) >= 0, nil
}

func (s *venueListService) Keys(ctx context.Context) (map[string]struct{}, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	keys := make(map[string]struct{}, len(items))
	for _, item := range items {
		if k, ok := identity.Of(item); ok {
			keys[k] = struct{}{}
		}
	}
	return keys, nil
}

func indexOf(items []models.Venue, key string) int {
	for i, item := range items {
		if k, ok := identity.Of(item); ok && k == key {
			return i
		}
	}
	return -1
}

// readLenient reads c, turning a corrupted value into an empty list.
func readLenient[T any](ctx context.Context, c *scoped.Collection[T], log logging.Logger) ([]T, error) {
	items, err := c.Read(ctx)
	var perr *scoped.ParseError
	if errors.As(err, &perr) {
		log.Warn(ctx, "corrupted collection read as empty", "key", perr.Key, "error", perr.Err)
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}
