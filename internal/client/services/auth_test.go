package services

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/client/repositories/users"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(env *testEnv) AuthService {
	return NewAuthService(env.st.Users, env.session, logging.Discard())
}

func register(t *testing.T, a AuthService, name, email, password string) models.User {
	t.Helper()
	u, err := a.Register(context.Background(), RegisterInput{Name: name, Email: email, Password: password})
	require.NoError(t, err)
	return u
}

func TestRegister_HashesAndNormalizes(t *testing.T) {
	env := setupEnv(t)
	a := newAuth(env)

	u := register(t, a, " Ana ", "  Ana@Example.COM ", "hunter22")
	assert.NotEmpty(t, u.StableID)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.True(t, strings.HasPrefix(u.PasswordHash, "argon2id$"))
	assert.NotContains(t, u.PasswordHash, "hunter22")

	cur, err := env.session.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestRegister_Validation(t *testing.T) {
	env := setupEnv(t)
	a := newAuth(env)
	ctx := context.Background()

	cases := []RegisterInput{
		{Name: "", Email: "a@b.co", Password: "123456"},
		{Name: "A", Email: "not-an-email", Password: "123456"},
		{Name: "A", Email: "a@b", Password: "123456"},
		{Name: "A", Email: "a@b.co", Password: "12345"},
	}
	for _, in := range cases {
		_, err := a.Register(ctx, in)
		assert.ErrorIs(t, err, common.ErrorValidation, "%+v", in)
	}

	all, err := env.st.Users.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := setupEnv(t)
	a := newAuth(env)

	register(t, a, "Ana", "ana@example.com", "hunter22")
	_, err := a.Register(context.Background(), RegisterInput{Name: "Other", Email: "ANA@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	env := setupEnv(t)
	a := newAuth(env)
	ctx := context.Background()
	u := register(t, a, "Ana", "ana@example.com", "hunter22")

	_, err := a.Login(ctx, "ana@example.com", "wrong-pass")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = a.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	s, err := a.Login(ctx, " ANA@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, u.StableID, s.ID)

	cur, err := env.session.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "Ana", cur.Name)

	require.NoError(t, a.Logout(ctx))
	cur, err = env.session.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestLogin_UnreadableHashIsUnauthorized(t *testing.T) {
	env := setupEnv(t)
	a := newAuth(env)
	ctx := context.Background()

	_, err := env.st.Users.Create(ctx, models.User{Name: "Legacy", Email: "legacy@example.com", PasswordHash: "plain"})
	require.NoError(t, err)

	_, err = a.Login(ctx, "legacy@example.com", "plain")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUpdateProfile_RefreshesOwnSession(t *testing.T) {
	env := setupEnv(t)
	a := newAuth(env)
	ctx := context.Background()
	u := register(t, a, "Ana", "ana@example.com", "hunter22")
	_, err := a.Login(ctx, "ana@example.com", "hunter22")
	require.NoError(t, err)

	updated, err := a.UpdateProfile(ctx, u.StableID, ProfilePatch{
		Name:         common.Ptr("Ana Maria"),
		ProfileImage: common.Ptr("file:///me.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, "ana@example.com", updated.Email)

	cur, err := env.session.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "Ana Maria", cur.Name)
	require.NotNil(t, cur.ProfileImage)
	assert.Equal(t, "file:///me.png", *cur.ProfileImage)
}

func TestUpdateProfile_OtherUserLeavesSession(t *testing.T) {
	env := setupEnv(t)
	a := newAuth(env)
	ctx := context.Background()
	register(t, a, "Ana", "ana@example.com", "hunter22")
	bob := register(t, a, "Bob", "bob@example.com", "hunter22")
	_, err := a.Login(ctx, "ana@example.com", "hunter22")
	require.NoError(t, err)

	_, err = a.UpdateProfile(ctx, bob.StableID, ProfilePatch{Name: common.Ptr("Robert")})
	require.NoError(t, err)

	cur, err := env.session.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", cur.Name)
}

func TestUpdateProfile_PasswordAndEmail(t *testing.T) {
	env := setupEnv(t)
	a := newAuth(env)
	ctx := context.Background()
	u := register(t, a, "Ana", "ana@example.com", "hunter22")
	register(t, a, "Bob", "bob@example.com", "hunter22")

	_, err := a.UpdateProfile(ctx, u.StableID, ProfilePatch{Email: common.Ptr("bob@example.com")})
	assert.ErrorIs(t, err, users.ErrEmailTaken)

	_, err = a.UpdateProfile(ctx, u.StableID, ProfilePatch{Password: common.Ptr("123")})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = a.UpdateProfile(ctx, u.StableID, ProfilePatch{Email: common.Ptr("ana2@example.com"), Password: common.Ptr("newpass1")})
	require.NoError(t, err)

	_, err = a.Login(ctx, "ana@example.com", "hunter22")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = a.Login(ctx, "ana2@example.com", "newpass1")
	assert.NoError(t, err)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	env := setupEnv(t)
	a := newAuth(env)

	_, err := a.UpdateProfile(context.Background(), "missing", ProfilePatch{Name: common.Ptr("x")})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
