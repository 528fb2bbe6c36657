package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error  { return f.record("register", nil) }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) WhoAmI(context.Context) error                { return f.record("whoami", nil) }
func (f *fakeExec) Nearby(_ context.Context, a []string) error   { return f.record("nearby", a) }
func (f *fakeExec) More(context.Context) error                  { return f.record("more", nil) }
func (f *fakeExec) Favorites(context.Context) error             { return f.record("favs", nil) }
func (f *fakeExec) Favorite(_ context.Context, a []string) error { return f.record("fav", a) }
func (f *fakeExec) Unfavorite(_ context.Context, a []string) error {
	return f.record("unfav", a)
}
func (f *fakeExec) Import(_ context.Context, a []string) error   { return f.record("import", a) }
func (f *fakeExec) Custom(_ context.Context, a []string) error   { return f.record("custom", a) }
func (f *fakeExec) Location(_ context.Context, a []string) error { return f.record("location", a) }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"nearby art museum",
		"fav 2",
		"unfav 2",
		"favs",
		"import https://en.wikipedia.org/wiki/MASP",
		"custom rm custom_1",
		"location set SP São Paulo",
		"whoami",
		"foobar",
		"logout",
		"exit",
		"register",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input), &out)

	assert.Equal(t, []string{"login", "nearby", "fav", "unfav", "favs", "import", "custom", "location", "whoami", "logout"}, exec.calls)
	assert.Equal(t, []string{"art", "museum"}, exec.args[1])
	assert.Equal(t, []string{"set", "SP", "São", "Paulo"}, exec.args[7])

	s := out.String()
	assert.Contains(t, s, helpLoggedOut)
	assert.Contains(t, s, helpLoggedIn)
	assert.Contains(t, s, "Unknown command: foobar")
	assert.Contains(t, s, "museums status> ")
	assert.True(t, strings.HasSuffix(s, "Bye!\n"))
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	exec := &fakeExec{err: errors.New("boom")}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, rdr("more\nmore"), &out)

	assert.Equal(t, []string{"more", "more"}, exec.calls)
	assert.Equal(t, 2, strings.Count(out.String(), "error: boom"))
}

func TestRunREPL_EOFEnds(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, rdr(""), &out)
	assert.Empty(t, exec.calls)
}
