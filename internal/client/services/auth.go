package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/client/repositories/users"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/cryptox"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// AuthService defines account operations.
//
// Contract:
//   - Register: validate input, hash the password and create the user.
//     The new user is not signed in.
//   - Login: verify credentials and start a session.
//   - Logout: end the current session.
//   - UpdateProfile: patch the user row; when the user is the one signed
//     in, the session projection is refreshed as well.
//
// Unknown emails and wrong passwords both fail with common.ErrorUnauthorized.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (models.User, error)
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (models.User, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ProfilePatch lists the editable profile fields. Nil fields are left
// untouched; an empty ProfileImage removes the image.
type ProfilePatch struct {
	Name         *string
	Email        *string
	Password     *string
	ProfileImage *string
}

type authService struct {
	users   users.Repository
	session SessionService
	log     logging.Logger
}

func NewAuthService(repo users.Repository, session SessionService, log logging.Logger) AuthService {
	return &authService{users: repo, session: session, log: log.With("service", "auth")}
}

func (a *authService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.User{}, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if err := validateEmail(in.Email); err != nil {
		return models.User{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return models.User{}, err
	}

	u := models.User{
		Name:         name,
		Email:        in.Email,
		PasswordHash: cryptox.HashPassword(in.Password),
	}
	created, err := a.users.Create(ctx, u)
	if err != nil {
		return models.User{}, err
	}

	stored, err := a.users.Get(ctx, models.ByRowID(created.RowID))
	if err != nil {
		return models.User{}, fmt.Errorf("failed to load registered user: %w", err)
	}
	a.log.Info(ctx, "user registered", "user_id", stored.StableID)
	return *stored, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	u, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		return models.Session{}, common.ErrorUnauthorized
	}
	if err != nil {
		return models.Session{}, err
	}

	ok, err := cryptox.VerifyPassword(u.PasswordHash, password)
	if err != nil {
		a.log.Error(ctx, "stored password hash is unreadable", "user_id", u.StableID, "error", err)
		return models.Session{}, common.ErrorUnauthorized
	}
	if !ok {
		return models.Session{}, common.ErrorUnauthorized
	}

	return a.session.Login(ctx, *u)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

func (a *authService) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (models.User, error) {
	var p users.Patch
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return models.User{}, fmt.Errorf("%w: name must not be empty", common.ErrorValidation)
		}
		p.Name = &name
	}
	if patch.Email != nil {
		if err := validateEmail(*patch.Email); err != nil {
			return models.User{}, err
		}
		p.Email = patch.Email
	}
	if patch.Password != nil {
		if err := validatePassword(*patch.Password); err != nil {
			return models.User{}, err
		}
		p.PasswordHash = common.Ptr(cryptox.HashPassword(*patch.Password))
	}
	p.ProfileImage = patch.ProfileImage

	key := models.ByStableID(userID)
	n, err := a.users.Update(ctx, key, p)
	if err != nil {
		return models.User{}, err
	}

	if n == 0 && !p.IsEmpty() {
		return models.User{}, fmt.Errorf("user %s: %w", userID, common.ErrorNotFound)
	}

	u, err := a.users.Get(ctx, key)
	if err != nil {
		return models.User{}, err
	}

	current, err := a.session.Current(ctx)
	if err != nil {
		return models.User{}, err
	}
	if current != nil && current.ID == u.StableID {
		if _, err := a.session.Login(ctx, *u); err != nil {
			return models.User{}, fmt.Errorf("failed to refresh session: %w", err)
		}
	}
	return *u, nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("%w: invalid email %q", common.ErrorValidation, email)
	}
	return nil
}

func validatePassword(pw string) error {
	if len(pw) < minPasswordLen {
		return fmt.Errorf("%w: password must have at least %d characters", common.ErrorValidation, minPasswordLen)
	}
	return nil
}
