package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/client/wiki"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
)

const descriptionExcerptLen = 200

// WikiFetcher resolves an article URL to its summary.
type WikiFetcher interface {
	Fetch(ctx context.Context, articleURL string) (*wiki.Summary, error)
}

// EnrichmentService turns encyclopedia articles into custom venues.
type EnrichmentService interface {
	// Preview builds the venue for articleURL without storing it.
	Preview(ctx context.Context, articleURL string) (models.Venue, error)
	ImportFromWikipedia(ctx context.Context, articleURL string) (models.Venue, error)
}

type enrichmentService struct {
	fetcher WikiFetcher
	custom  CustomVenueService
	log     logging.Logger
}

func NewEnrichmentService(fetcher WikiFetcher, custom CustomVenueService, log logging.Logger) EnrichmentService {
	return &enrichmentService{fetcher: fetcher, custom: custom, log: log.With("service", "enrichment")}
}

func (s *enrichmentService) Preview(ctx context.Context, articleURL string) (models.Venue, error) {
	article, err := wiki.ParseArticleURL(articleURL)
	if err != nil {
		return models.Venue{}, fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}

	summary, err := s.fetcher.Fetch(ctx, article.URL)
	if err != nil {
		return models.Venue{}, fmt.Errorf("could not load article %q: %w", readableTitle(article), err)
	}

	return assemble(article, summary), nil
}

func (s *enrichmentService) ImportFromWikipedia(ctx context.Context, articleURL string) (models.Venue, error) {
	v, err := s.Preview(ctx, articleURL)
	if err != nil {
		return models.Venue{}, err
	}

	stored, err := s.custom.Add(ctx, v)
	if err != nil {
		return models.Venue{}, err
	}
	s.log.Info(ctx, "venue imported", "id", stored.ID, "url", stored.WikipediaURL)
	return stored, nil
}

func assemble(article wiki.Article, summary *wiki.Summary) models.Venue {
	title := strings.TrimSpace(summary.Title)
	if title == "" {
		title = readableTitle(article)
	}
	extract := strings.TrimSpace(summary.Extract)
	address := wiki.InferAddress(extract, title)

	description := excerpt(extract, descriptionExcerptLen)
	if description == "" {
		description = "Museum"
	}

	v := models.Venue{
		Title:            title,
		Name:             title,
		Subtitle:         address,
		FormattedAddress: address,
		Description:      description,
		Rating:           common.Ptr(common.DefaultRating),
		OpeningHours:     &models.OpeningHours{},
		Types:            []string{"museum"},
		Latitude:         summary.Latitude,
		Longitude:        summary.Longitude,
		WikipediaURL:     article.URL,
		WikipediaExtract: extract,
	}
	if summary.ThumbnailURL != "" {
		v.Image = &models.Image{URI: summary.ThumbnailURL}
		v.Photos = []models.Photo{{URI: summary.ThumbnailURL}}
	}
	return v
}

func readableTitle(a wiki.Article) string {
	return strings.ReplaceAll(a.Title, "_", " ")
}

// excerpt returns the first n runes of s.
func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
