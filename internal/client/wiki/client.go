package wiki

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/museumkeeper/internal/logging"
	"github.com/dmitrijs2005/museumkeeper/internal/netx"
)

var (
	ErrInvalidArticleURL = errors.New("invalid wikipedia article url")
	ErrArticleNotFound   = errors.New("wikipedia article not found")
)

const defaultTimeout = 10 * time.Second

var articlePattern = regexp.MustCompile(`(?i)((?:[a-z0-9-]+\.)*wikipedia\.org)/wiki/([^?#]+)`)

// Article is a parsed article reference.
type Article struct {
	URL   string
	Host  string
	Title string
}

// ParseArticleURL validates raw and extracts the host and decoded title.
// Titles that fail percent-decoding fall back to replacing underscores
// with spaces.
func ParseArticleURL(raw string) (Article, error) {
	raw = strings.TrimSpace(raw)
	m := articlePattern.FindStringSubmatch(raw)
	if m == nil {
		return Article{}, fmt.Errorf("%w: %q (expected https://<lang>.wikipedia.org/wiki/<title>)", ErrInvalidArticleURL, raw)
	}

	title, err := url.PathUnescape(m[2])
	if err != nil {
		title = strings.ReplaceAll(m[2], "_", " ")
	}

	return Article{URL: raw, Host: strings.ToLower(m[1]), Title: title}, nil
}

// Summary is the part of an article used to build a venue.
type Summary struct {
	Title        string
	Extract      string
	ThumbnailURL string
	Latitude     *float64
	Longitude    *float64
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// NewClient creates a Client. An empty baseURL sends requests to the host
// of each article; a non-empty one (tests, mirrors) is used for all of them.
func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("adapter", "wiki"),
	}
}

// Fetch resolves the article at articleURL. Not-found surfaces as
// ErrArticleNotFound, transport failures as wrapped errors.
func (c *Client) Fetch(ctx context.Context, articleURL string) (*Summary, error) {
	article, err := ParseArticleURL(articleURL)
	if err != nil {
		return nil, err
	}
	base := c.baseFor(article)

	summary, err := c.restSummary(ctx, base, article.Title)
	if err == nil {
		return summary, nil
	}
	c.log.Warn(ctx, "rest summary unavailable, using legacy api", "title", article.Title, "error", err)

	return c.legacySummary(ctx, base, article.Title)
}

func (c *Client) baseFor(a Article) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return "https://" + a.Host
}

type restResponse struct {
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	Coordinates *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coordinates"`
}

func (c *Client) restSummary(ctx context.Context, base, title string) (*Summary, error) {
	resp, err := c.getRest(ctx, base, title)
	if errors.Is(err, ErrArticleNotFound) {
		underscored := strings.Join(strings.Fields(title), "_")
		c.log.Debug(ctx, "summary not found, retrying with underscores", "title", underscored)
		resp, err = c.getRest(ctx, base, underscored)
	}
	if err != nil {
		return nil, err
	}

	s := &Summary{Title: resp.Title, Extract: resp.Extract}
	if s.Title == "" {
		s.Title = title
	}
	if resp.Thumbnail != nil {
		s.ThumbnailURL = resp.Thumbnail.Source
	}
	if resp.Coordinates != nil {
		s.Latitude, s.Longitude = &resp.Coordinates.Lat, &resp.Coordinates.Lon
	}
	return s, nil
}

func (c *Client) getRest(ctx context.Context, base, title string) (*restResponse, error) {
	reqURL := base + "/api/rest_v1/page/summary/" + url.PathEscape(title)

	var out restResponse
	if err := c.getJSON(ctx, reqURL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type legacyResponse struct {
	Query *struct {
		Pages map[string]struct {
			Title     string `json:"title"`
			Extract   string `json:"extract"`
			Thumbnail *struct {
				Source string `json:"source"`
			} `json:"thumbnail"`
			Coordinates []struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"coordinates"`
		} `json:"pages"`
	} `json:"query"`
}

func (c *Client) legacySummary(ctx context.Context, base, title string) (*Summary, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("prop", "extracts|pageimages|coordinates")
	q.Set("exintro", "true")
	q.Set("explaintext", "true")
	q.Set("piprop", "thumbnail")
	q.Set("pithumbsize", "600")
	q.Set("titles", title)
	q.Set("format", "json")
	q.Set("origin", "*")

	var out legacyResponse
	if err := c.getJSON(ctx, base+"/w/api.php?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	if out.Query == nil || len(out.Query.Pages) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrArticleNotFound, title)
	}

	for id, page := range out.Query.Pages {
		if id == "-1" {
			return nil, fmt.Errorf("%w: %q", ErrArticleNotFound, title)
		}
		s := &Summary{Title: page.Title, Extract: page.Extract}
		if s.Title == "" {
			s.Title = title
		}
		if page.Thumbnail != nil {
			s.ThumbnailURL = page.Thumbnail.Source
		}
		if len(page.Coordinates) > 0 {
			lat, lon := page.Coordinates[0].Lat, page.Coordinates[0].Lon
			s.Latitude, s.Longitude = &lat, &lon
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrArticleNotFound, title)
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	err := netx.GetJSON(ctx, c.httpClient, reqURL, out)
	var se *netx.StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return ErrArticleNotFound
	}
	if err != nil {
		return fmt.Errorf("wiki: %w", err)
	}
	return nil
}
