package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/museumkeeper/internal/client/identity"
	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/client/places"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
	"golang.org/x/sync/errgroup"
)

// DefaultExploreRadius is the search radius in meters when a query sets none.
const DefaultExploreRadius = 10000

// NearbySource is the remote side of the catalog.
type NearbySource interface {
	Search(ctx context.Context, q places.Query) (*places.SearchResponse, error)
	Adapt(results []places.Place) []models.Venue
}

// ExploreQuery selects one page of the catalog. A nil Center means the
// saved location preference.
type ExploreQuery struct {
	PageToken string
	Radius    int
	Center    *Center
}

type Center struct {
	Latitude  float64
	Longitude float64
}

type CatalogEntry struct {
	Venue    models.Venue
	Favorite bool
}

type ExplorePage struct {
	Entries       []CatalogEntry
	NextPageToken string
}

// CatalogService merges custom venues with nearby remote ones.
type CatalogService interface {
	// Explore returns custom venues first, then remote results, without
	// duplicates. Custom venues are only part of the first page.
	Explore(ctx context.Context, q ExploreQuery) (*ExplorePage, error)
}

type catalogService struct {
	source    NearbySource
	custom    CustomVenueService
	favorites VenueListService
	location  LocationService
	log       logging.Logger

	pageTokenDelay time.Duration
}

// NewCatalogService builds the catalog. pageTokenDelay is the wait before
// retrying a page token the source does not accept yet; zero means
// places.DefaultPageTokenDelay.
func NewCatalogService(source NearbySource, custom CustomVenueService, favorites VenueListService,
	location LocationService, pageTokenDelay time.Duration, log logging.Logger) CatalogService {
	return &catalogService{
		source:         source,
		custom:         custom,
		favorites:      favorites,
		location:       location,
		log:            log.With("service", "catalog"),
		pageTokenDelay: pageTokenDelay,
	}
}

func (s *catalogService) Explore(ctx context.Context, q ExploreQuery) (*ExplorePage, error) {
	center, err := s.center(ctx, q.Center)
	if err != nil {
		return nil, err
	}
	radius := q.Radius
	if radius <= 0 {
		radius = DefaultExploreRadius
	}

	var (
		custom []models.Venue
		remote *places.SearchResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	if q.PageToken == "" {
		g.Go(func() error {
			var err error
			custom, err = s.custom.List(gctx)
			return err
		})
	}
	g.Go(func() error {
		var err error
		remote, err = places.SearchWithTokenRetry(gctx, s.source.Search, places.Query{
			Latitude:  center.Latitude,
			Longitude: center.Longitude,
			Radius:    radius,
			PageToken: q.PageToken,
		}, s.pageTokenDelay, s.log)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	favs, err := s.favorites.Keys(ctx)
	if err != nil {
		return nil, err
	}

	merged := append(custom, s.source.Adapt(remote.Results)...)
	page := &ExplorePage{
		Entries:       make([]CatalogEntry, 0, len(merged)),
		NextPageToken: remote.NextPageToken,
	}
	seen := make(map[string]struct{}, len(merged))
	for _, v := range merged {
		key, ok := identity.Of(v)
		if !ok {
			s.log.Debug(ctx, "skipping venue without identity", "title", v.DisplayTitle())
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		_, fav := favs[key]
		page.Entries = append(page.Entries, CatalogEntry{Venue: v, Favorite: fav})
	}
	return page, nil
}

func (s *catalogService) center(ctx context.Context, c *Center) (Center, error) {
	if c != nil {
		return *c, nil
	}
	loc, err := s.location.Get(ctx)
	if err != nil {
		return Center{}, err
	}
	return Center{Latitude: loc.Latitude, Longitude: loc.Longitude}, nil
}

// Filter keeps venues whose title or subtitle contains text, ignoring case.
// An empty text keeps everything.
func Filter(venues []models.Venue, text string) []models.Venue {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return venues
	}
	out := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if strings.Contains(strings.ToLower(v.DisplayTitle()), needle) ||
			strings.Contains(strings.ToLower(v.DisplaySubtitle()), needle) {
			out = append(out, v)
		}
	}
	return out
}
