package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
)

// ErrEmailTaken is returned when another account already uses the email.
var ErrEmailTaken = errors.New("email already registered")

type Repository interface {
	Create(ctx context.Context, u models.User) (models.Created, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, key models.Key) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, key models.Key, patch Patch) (int64, error)
	Delete(ctx context.Context, key models.Key) (int64, error)
}

// Patch lists the writable columns. Nil fields are left untouched; a
// ProfileImage pointing at "" clears the image.
type Patch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	ProfileImage *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.PasswordHash == nil && p.ProfileImage == nil
}
