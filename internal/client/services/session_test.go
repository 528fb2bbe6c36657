package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_LoginCurrentLogout(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	cur, err := env.session.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	img := "file:///avatar.png"
	s, err := env.session.Login(ctx, models.User{StableID: "u-1", Name: "Ana", Email: "ana@example.com", ProfileImage: &img, PasswordHash: "secret"})
	require.NoError(t, err)
	assert.Equal(t, models.Session{ID: "u-1", Name: "Ana", Email: "ana@example.com", ProfileImage: &img}, s)
	assert.NotContains(t, env.rawKV(t, common.SessionKey), "secret")

	cur, err = env.session.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, s, *cur)

	require.NoError(t, env.session.Logout(ctx))
	cur, err = env.session.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestSession_LoginRequiresStableID(t *testing.T) {
	env := setupEnv(t)

	_, err := env.session.Login(context.Background(), models.User{Name: "nobody"})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestSession_CorruptedIsNoSession(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	require.NoError(t, env.st.KV.Set(ctx, common.SessionKey, []byte("{broken")))

	cur, err := env.session.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestSession_LogoutWithoutSession(t *testing.T) {
	env := setupEnv(t)
	assert.NoError(t, env.session.Logout(context.Background()))
}
