package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Nearby(ctx context.Context, args []string) error
	More(ctx context.Context) error
	Favorites(ctx context.Context) error
	Favorite(ctx context.Context, args []string) error
	Unfavorite(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Custom(ctx context.Context, args []string) error
	Location(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, nearby [filter], more, location, import <url>, custom, exit"
	helpLoggedIn  = "Available commands: nearby [filter], more, favs, fav <n>, unfav <n>, import <url>, " +
		"custom [add|list|rm <id>], location [show|set <UF> <city>|states|cities <UF>], whoami, logout, exit"
)

// runREPL reads lines from reader, treats the first token as the command
// and dispatches to a. Command errors are printed and the loop goes on. It
// returns on EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "museums %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "n", "nearby":
			cmdErr = a.Nearby(ctx, args)
		case "more":
			cmdErr = a.More(ctx)

		case "favs":
			cmdErr = a.Favorites(ctx)
		case "fav":
			cmdErr = a.Favorite(ctx, args)
		case "unfav":
			cmdErr = a.Unfavorite(ctx, args)

		case "import":
			cmdErr = a.Import(ctx, args)
		case "custom":
			cmdErr = a.Custom(ctx, args)
		case "location":
			cmdErr = a.Location(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "error:", cmdErr)
		}
	}
}

func (a *App) getStatus(ctx context.Context) string {
	if s := a.currentUser(ctx); s != nil {
		return fmt.Sprintf("(%s)", s.Email)
	}
	return ""
}

// Root prints the welcome line and runs the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	a.println("Welcome to the museums CLI (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader, a.out)
}
