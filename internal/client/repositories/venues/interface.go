package venues

import (
	"context"

	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
)

type Repository interface {
	Create(ctx context.Context, rec models.VenueRecord) (models.Created, error)
	// GetAll returns every row, newest first.
	GetAll(ctx context.Context) ([]models.VenueRecord, error)
	Get(ctx context.Context, key models.Key) (*models.VenueRecord, error)
	Update(ctx context.Context, key models.Key, patch Patch) (int64, error)
	Delete(ctx context.Context, key models.Key) (int64, error)
}

// Patch lists the writable columns. Nil fields are left untouched.
type Patch struct {
	Name        *string
	Location    *string
	Rating      *float64
	Hours       *string
	Favorites   *[]string
	Visits      *[]models.Visit
	SyncVersion *int64
}
