package places

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
	"github.com/dmitrijs2005/museumkeeper/internal/netx"
	"github.com/sethvargo/go-retry"
)

const (
	DefaultBaseURL        = "https://maps.googleapis.com/maps/api/place"
	DefaultRadius         = 3000
	DefaultPhotoMaxWidth  = 600
	DefaultPageTokenDelay = 2 * time.Second

	pageTokenRetries = 3
)

var (
	ErrMissingAPIKey = fmt.Errorf("%w: missing places API key", common.ErrorValidation)

	// ErrInvalidPageToken matches an *APIError for a paged request that the
	// API rejected, usually because the token is not valid yet.
	ErrInvalidPageToken = errors.New("invalid page token")
)

// APIError carries a non-OK status returned by the API.
type APIError struct {
	Status  string
	Message string
	// Paged is set when the request carried a page token.
	Paged bool
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("places: %s: %s", e.Status, e.Message)
	}
	return "places: " + e.Status
}

func (e *APIError) Is(target error) bool {
	return target == ErrInvalidPageToken && e.Paged && e.Status == "INVALID_REQUEST"
}

type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	PageTokenDelay time.Duration
	PhotoMaxWidth  int
}

type Client struct {
	baseURL        string
	apiKey         string
	pageTokenDelay time.Duration
	photoMaxWidth  int
	httpClient     *http.Client
	log            logging.Logger
}

func NewClient(cfg Config, log logging.Logger) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		pageTokenDelay: cfg.PageTokenDelay,
		photoMaxWidth:  cfg.PhotoMaxWidth,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		log:            log.With("adapter", "places"),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.pageTokenDelay <= 0 {
		c.pageTokenDelay = DefaultPageTokenDelay
	}
	if c.photoMaxWidth <= 0 {
		c.photoMaxWidth = DefaultPhotoMaxWidth
	}
	if cfg.Timeout <= 0 {
		c.httpClient.Timeout = 10 * time.Second
	}
	return c
}

// Query describes one nearby search. Radius is in meters; zero means
// DefaultRadius.
type Query struct {
	Latitude  float64
	Longitude float64
	Radius    int
	PageToken string
}

type Place struct {
	PlaceID          string        `json:"place_id"`
	Reference        string        `json:"reference"`
	Name             string        `json:"name"`
	Vicinity         string        `json:"vicinity"`
	FormattedAddress string        `json:"formatted_address"`
	Rating           *float64      `json:"rating"`
	UserRatingsTotal *int          `json:"user_ratings_total"`
	Types            []string      `json:"types"`
	OpeningHours     *OpeningHours `json:"opening_hours"`
	Photos           []Photo       `json:"photos"`
	Geometry         *Geometry     `json:"geometry"`
}

type OpeningHours struct {
	OpenNow *bool `json:"open_now"`
}

type Photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type Geometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type SearchResponse struct {
	Status        string  `json:"status"`
	ErrorMessage  string  `json:"error_message"`
	Results       []Place `json:"results"`
	NextPageToken string  `json:"next_page_token"`
}

// Search runs one nearby search. Statuses other than OK and ZERO_RESULTS
// are returned as *APIError.
func (c *Client) Search(ctx context.Context, q Query) (*SearchResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	radius := q.Radius
	if radius <= 0 {
		radius = DefaultRadius
	}

	params := url.Values{}
	params.Set("location", formatCoord(q.Latitude)+","+formatCoord(q.Longitude))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("type", "museum")
	params.Set("key", c.apiKey)
	if q.PageToken != "" {
		params.Set("pagetoken", q.PageToken)
	}

	var out SearchResponse
	if err := netx.GetJSON(ctx, c.httpClient, c.baseURL+"/nearbysearch/json?"+params.Encode(), &out); err != nil {
		return nil, fmt.Errorf("places: %w", err)
	}

	if out.Status != "OK" && out.Status != "ZERO_RESULTS" {
		return nil, &APIError{Status: out.Status, Message: out.ErrorMessage, Paged: q.PageToken != ""}
	}
	if out.Results == nil {
		out.Results = []Place{}
	}

	c.log.Debug(ctx, "places response", "status", out.Status, "results", len(out.Results), "paged", q.PageToken != "")
	return &out, nil
}

// SearchPages runs q and follows next-page tokens until there are none or
// maxPages pages were read (maxPages <= 0 means no limit). A token the API
// does not accept yet is retried after PageTokenDelay.
func (c *Client) SearchPages(ctx context.Context, q Query, maxPages int) ([]Place, error) {
	var all []Place

	for page := 0; maxPages <= 0 || page < maxPages; page++ {
		resp, err := SearchWithTokenRetry(ctx, c.Search, q, c.pageTokenDelay, c.log)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Results...)
		if resp.NextPageToken == "" {
			break
		}
		q.PageToken = resp.NextPageToken
	}

	if all == nil {
		all = []Place{}
	}
	return all, nil
}

// SearchFunc runs a single nearby search.
type SearchFunc func(ctx context.Context, q Query) (*SearchResponse, error)

// SearchWithTokenRetry calls search once, and again after delay (up to
// three more times) while the API rejects the page token as not valid yet.
// Other errors are returned right away.
func SearchWithTokenRetry(ctx context.Context, search SearchFunc, q Query, delay time.Duration, log logging.Logger) (*SearchResponse, error) {
	if delay <= 0 {
		delay = DefaultPageTokenDelay
	}

	var resp *SearchResponse
	backoff := retry.WithMaxRetries(pageTokenRetries, retry.NewConstant(delay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		resp, err = search(ctx, q)
		if errors.Is(err, ErrInvalidPageToken) {
			log.Info(ctx, "page token not ready, retrying", "delay", delay)
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// PhotoURL builds the photo endpoint URL for ref. It returns "" for an
// empty reference.
func (c *Client) PhotoURL(ref string, maxWidth int) string {
	if ref == "" {
		return ""
	}
	if maxWidth <= 0 {
		maxWidth = c.photoMaxWidth
	}
	params := url.Values{}
	params.Set("photoreference", ref)
	params.Set("maxwidth", strconv.Itoa(maxWidth))
	params.Set("key", c.apiKey)
	return c.baseURL + "/photo?" + params.Encode()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
