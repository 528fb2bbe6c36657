package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/museumkeeper/internal/client/services"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates the account.
// The new account is not signed in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	u, err := a.svc.Auth.Register(ctx, services.RegisterInput{Name: name, Email: email, Password: password})
	if err != nil {
		return err
	}

	a.printf("Registered %s, you can login now\n", u.Email)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	s, err := a.svc.Auth.Login(ctx, email, password)
	if errors.Is(err, common.ErrorUnauthorized) {
		return errors.New("invalid email or password")
	}
	if err != nil {
		return err
	}

	a.listing = nil
	a.printf("Welcome, %s\n", s.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.svc.Auth.Logout(ctx); err != nil {
		return err
	}
	a.listing = nil
	a.println("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	s := a.currentUser(ctx)
	if s == nil {
		a.println("Not logged in")
		return nil
	}
	a.printf("%s <%s> id=%s\n", s.Name, s.Email, s.ID)
	return nil
}
