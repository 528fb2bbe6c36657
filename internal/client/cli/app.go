package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/museumkeeper/internal/client/config"
	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/client/places"
	"github.com/dmitrijs2005/museumkeeper/internal/client/scoped"
	"github.com/dmitrijs2005/museumkeeper/internal/client/services"
	"github.com/dmitrijs2005/museumkeeper/internal/client/storage"
	"github.com/dmitrijs2005/museumkeeper/internal/client/wiki"
	"github.com/dmitrijs2005/museumkeeper/internal/filex"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
)

// Services bundles what the commands need.
type Services struct {
	Auth       services.AuthService
	Session    services.SessionService
	Favorites  services.VenueListService
	Custom     services.CustomVenueService
	Enrichment services.EnrichmentService
	Catalog    services.CatalogService
	Location   services.LocationService
}

type App struct {
	svc    Services
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	closer io.Closer
	radius int

	// listing is the last list printed; commands refer to its entries by
	// 1-based index.
	listing       []models.Venue
	nextPageToken string
}

// NewApp opens the database named in c, applies migrations and builds the
// services on top of it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogLevel, c.LogFormat, os.Stderr)

	if err := filex.EnsureParentDir(c.DBPath); err != nil {
		return nil, err
	}
	st, err := storage.Open(ctx, c.DBPath)
	if err != nil {
		return nil, err
	}
	if err := st.Init(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := scoped.NewStore(st.KV, log)
	session := services.NewSessionService(store, log)
	favorites := services.NewFavoritesService(store, log)
	custom := services.NewCustomVenueService(store, log)
	location := services.NewLocationService(store, log)
	nearby := places.NewClient(c.Places(), log)
	wikiClient := wiki.NewClient(c.WikiBaseURL, c.HTTPTimeout, log)

	svc := Services{
		Auth:       services.NewAuthService(st.Users, session, log),
		Session:    session,
		Favorites:  favorites,
		Custom:     custom,
		Enrichment: services.NewEnrichmentService(wikiClient, custom, log),
		Catalog:    services.NewCatalogService(nearby, custom, favorites, location, c.PageTokenDelay, log),
		Location:   location,
	}

	a := newApp(svc, bufio.NewReader(os.Stdin), os.Stdout, log)
	a.closer = st
	a.radius = c.SearchRadius
	return a, nil
}

func newApp(svc Services, reader *bufio.Reader, out io.Writer, log logging.Logger) *App {
	return &App{svc: svc, log: log, reader: reader, out: out}
}

// Run starts the REPL and releases the database when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *App) currentUser(ctx context.Context) *models.Session {
	s, err := a.svc.Session.Current(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to read session", "error", err)
		return nil
	}
	return s
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.currentUser(ctx) != nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
