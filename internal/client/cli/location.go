package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/museumkeeper/internal/client/geo"
)

// Location handles "location show", "location set <UF> <city>",
// "location states" and "location cities <UF>".
func (a *App) Location(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		loc, err := a.svc.Location.Get(ctx)
		if err != nil {
			return err
		}
		a.printf("%s, %s (%.5f, %.5f)\n", loc.City, loc.State, loc.Latitude, loc.Longitude)
		return nil

	case "set":
		if len(args) < 3 {
			return errors.New("usage: location set <UF> <city>")
		}
		loc, err := a.svc.Location.Save(ctx, args[1], strings.Join(args[2:], " "))
		if err != nil {
			return err
		}
		a.printf("Location set to %s, %s\n", loc.City, loc.State)
		return nil

	case "clear":
		return a.svc.Location.Clear(ctx)

	case "states":
		for _, st := range geo.States() {
			a.printf("%s  %s\n", st.Code, st.Name)
		}
		return nil

	case "cities":
		if len(args) != 2 {
			return errors.New("usage: location cities <UF>")
		}
		cities := geo.Cities(args[1])
		if len(cities) == 0 {
			return fmt.Errorf("unknown state %q", args[1])
		}
		for _, c := range cities {
			a.println(c.Name)
		}
		return nil
	}
	return fmt.Errorf("unknown subcommand %q", sub)
}
