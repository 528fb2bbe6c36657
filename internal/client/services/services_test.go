package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/client/scoped"
	"github.com/dmitrijs2005/museumkeeper/internal/client/storage"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

type testEnv struct {
	st      *storage.Storage
	store   *scoped.Store
	session SessionService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	st, err := storage.Open(ctx, filepath.Join(t.TempDir(), "museums.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Init(ctx))

	store := scoped.NewStore(st.KV, logging.Discard())
	return &testEnv{
		st:      st,
		store:   store,
		session: NewSessionService(store, logging.Discard()),
	}
}

func (e *testEnv) signIn(t *testing.T, id string) {
	t.Helper()
	_, err := e.session.Login(context.Background(), models.User{StableID: id, Name: "User " + id, Email: id + "@example.com"})
	require.NoError(t, err)
}

func (e *testEnv) rawKV(t *testing.T, key string) string {
	t.Helper()
	v, err := e.st.KV.Get(context.Background(), key)
	require.NoError(t, err)
	return string(v)
}

func remoteVenue(placeID, name string) models.Venue {
	return models.Venue{
		PlaceID: common.Ptr(placeID),
		Name:    name,
		Title:   name,
		Rating:  common.Ptr(4.0),
		Types:   []string{"museum"},
	}
}
