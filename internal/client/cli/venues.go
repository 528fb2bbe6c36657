package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/museumkeeper/internal/client/identity"
	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/client/services"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
)

// Nearby lists the first catalog page around the saved location. Extra
// args are used as a text filter.
func (a *App) Nearby(ctx context.Context, args []string) error {
	return a.explore(ctx, "", strings.Join(args, " "))
}

// More lists the next catalog page of the last Nearby call.
func (a *App) More(ctx context.Context) error {
	if a.nextPageToken == "" {
		return errors.New("no more results")
	}
	return a.explore(ctx, a.nextPageToken, "")
}

func (a *App) explore(ctx context.Context, token, filter string) error {
	page, err := a.svc.Catalog.Explore(ctx, services.ExploreQuery{PageToken: token, Radius: a.radius})
	if err != nil {
		return err
	}
	a.nextPageToken = page.NextPageToken

	favKeys := make(map[string]bool)
	venues := make([]models.Venue, 0, len(page.Entries))
	for _, e := range page.Entries {
		venues = append(venues, e.Venue)
		if k, ok := identity.Of(e.Venue); ok && e.Favorite {
			favKeys[k] = true
		}
	}
	venues = services.Filter(venues, filter)

	favorite := make(map[int]bool, len(venues))
	for i, v := range venues {
		if k, ok := identity.Of(v); ok && favKeys[k] {
			favorite[i] = true
		}
	}

	a.showListing(venues, favorite)
	if a.nextPageToken != "" {
		a.println("(type 'more' for the next page)")
	}
	return nil
}

func (a *App) Favorites(ctx context.Context) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	venues, err := a.svc.Favorites.List(ctx)
	if err != nil {
		return err
	}
	fav := make(map[int]bool, len(venues))
	for i := range venues {
		fav[i] = true
	}
	a.showListing(venues, fav)
	return nil
}

// Favorite adds the listed venue with the given index to the favorites.
func (a *App) Favorite(ctx context.Context, args []string) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	v, err := a.pick(args)
	if err != nil {
		return err
	}
	added, err := a.svc.Favorites.Add(ctx, v)
	if err != nil {
		return err
	}
	if added {
		a.printf("Added %s to favorites\n", v.DisplayTitle())
	} else {
		a.printf("%s is already a favorite\n", v.DisplayTitle())
	}
	return nil
}

func (a *App) Unfavorite(ctx context.Context, args []string) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	v, err := a.pick(args)
	if err != nil {
		return err
	}
	removed, err := a.svc.Favorites.Remove(ctx, v)
	if err != nil {
		return err
	}
	if removed {
		a.printf("Removed %s from favorites\n", v.DisplayTitle())
	} else {
		a.printf("%s is not a favorite\n", v.DisplayTitle())
	}
	return nil
}

// Import creates a custom venue from a Wikipedia article URL.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: import <wikipedia url>")
	}
	v, err := a.svc.Enrichment.ImportFromWikipedia(ctx, args[0])
	if err != nil {
		return err
	}
	a.printf("Imported %s (%s)\n", v.DisplayTitle(), v.DisplaySubtitle())
	return nil
}

// Custom handles "custom add", "custom list" and "custom rm <id>".
func (a *App) Custom(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		venues, err := a.svc.Custom.List(ctx)
		if err != nil {
			return err
		}
		a.showListing(venues, nil)
		return nil

	case "add":
		entry, err := a.readManualEntry()
		if err != nil {
			return err
		}
		v, err := a.svc.Custom.CreateManual(ctx, entry)
		if err != nil {
			return err
		}
		a.printf("Created %s (id %s)\n", v.DisplayTitle(), v.ID)
		return nil

	case "rm":
		if len(args) != 2 {
			return errors.New("usage: custom rm <id>")
		}
		removed, err := a.svc.Custom.RemoveByID(ctx, args[1])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("custom venue %s: %w", args[1], common.ErrorNotFound)
		}
		a.println("Removed")
		return nil
	}
	return fmt.Errorf("unknown subcommand %q", sub)
}

func (a *App) readManualEntry() (services.ManualEntry, error) {
	var e services.ManualEntry
	var err error

	if e.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return e, err
	}
	if e.Address, err = getSimpleText(a.reader, "Address (optional)", a.out); err != nil {
		return e, err
	}
	if e.Description, err = GetMultiline(a.reader, "Description (optional)", a.out); err != nil {
		return e, err
	}
	if e.Rating, err = GetOptionalFloat(a.reader, "Rating 0-5", a.out); err != nil {
		return e, err
	}
	if e.Latitude, err = GetOptionalFloat(a.reader, "Latitude", a.out); err != nil {
		return e, err
	}
	if e.Longitude, err = GetOptionalFloat(a.reader, "Longitude", a.out); err != nil {
		return e, err
	}
	if e.ImageURI, err = getSimpleText(a.reader, "Image URI (optional)", a.out); err != nil {
		return e, err
	}
	return e, nil
}

func (a *App) showListing(venues []models.Venue, favorite map[int]bool) {
	a.listing = venues
	if len(venues) == 0 {
		a.println("Nothing found")
		return
	}
	for i, v := range venues {
		a.println(venueLine(i+1, v, favorite[i]))
	}
}

// pick returns the venue of the last listing addressed by args[0].
func (a *App) pick(args []string) (models.Venue, error) {
	if len(args) != 1 {
		return models.Venue{}, errors.New("expected the number of a listed venue")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.listing) {
		return models.Venue{}, fmt.Errorf("no listed venue number %q", args[0])
	}
	return a.listing[n-1], nil
}

func (a *App) requireLogin(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		return common.ErrorNotSignedIn
	}
	return nil
}
