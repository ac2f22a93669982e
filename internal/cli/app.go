// Package cli is the terminal front end: a read-eval-print loop standing in
// for the original app's screens and navigation stack. Each command maps 1:1
// onto a service operation; the auth and main menus are the two navigation
// roots, and a successful login "resets" navigation by switching menus.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/faveomobile/helpdesk-client/internal/core/ports"
)

// App wires the four services to the terminal.
type App struct {
	auth      ports.AuthService
	directory ports.DirectoryService
	local     ports.LocalUserService
	cart      ports.CartService
	log       zerolog.Logger

	reader *bufio.Reader
	out    io.Writer

	// settle is how long to wait after search input before rendering, so the
	// debounced lookup has a chance to fire.
	settle time.Duration
}

func NewApp(
	auth ports.AuthService,
	directory ports.DirectoryService,
	local ports.LocalUserService,
	cart ports.CartService,
	in io.Reader,
	out io.Writer,
	debounce time.Duration,
	log zerolog.Logger,
) *App {
	return &App{
		auth:      auth,
		directory: directory,
		local:     local,
		cart:      cart,
		log:       log,
		reader:    bufio.NewReader(in),
		out:       out,
		settle:    debounce + 100*time.Millisecond,
	}
}

// Run restores any persisted session and enters the REPL. It returns on EOF
// or the quit command.
func (a *App) Run(ctx context.Context) error {
	if err := a.auth.Restore(ctx); err != nil {
		a.log.Warn().Err(err).Msg("could not restore session")
	}
	if a.auth.Session().Authenticated() {
		fmt.Fprintln(a.out, "Welcome back.")
	}

	for {
		var prompt string
		if a.auth.Session().Authenticated() {
			prompt = "helpdesk> "
		} else {
			prompt = "helpdesk (signed out)> "
		}
		fmt.Fprint(a.out, prompt)

		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil // EOF ends the session cleanly
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		if done := a.dispatch(ctx, args); done {
			return nil
		}
	}
}

func (a *App) dispatch(ctx context.Context, args []string) (quit bool) {
	cmd, rest := args[0], args[1:]

	if !a.auth.Session().Authenticated() {
		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Commands: login, signup, forgot, quit")
		case "login":
			a.loginScreen(ctx)
		case "signup":
			a.signupScreen(ctx)
		case "forgot":
			a.forgotScreen(ctx)
		case "quit", "exit":
			return true
		default:
			fmt.Fprintln(a.out, "Unknown command. Type help.")
		}
		return false
	}

	switch cmd {
	case "help":
		fmt.Fprintln(a.out, "Commands: users, more, search <id>, clear, local, add, update <id>, del <id>, shop, cart, buy <n>, drop <name>, logout, quit")
	case "users":
		a.usersScreen(ctx)
	case "more":
		a.moreScreen(ctx)
	case "search":
		a.searchScreen(ctx, strings.Join(rest, " "))
	case "clear":
		a.searchScreen(ctx, "")
	case "local":
		a.localListScreen(ctx)
	case "add":
		a.localAddScreen(ctx)
	case "update":
		a.localUpdateScreen(ctx, rest)
	case "del":
		a.localDeleteScreen(ctx, rest)
	case "shop":
		a.shopScreen()
	case "cart":
		a.cartScreen()
	case "buy":
		a.buyScreen(rest)
	case "drop":
		a.dropScreen(rest)
	case "logout":
		if err := a.auth.Logout(ctx); err != nil {
			fmt.Fprintln(a.out, userMessage(err))
		} else {
			fmt.Fprintln(a.out, "Signed out.")
		}
	case "quit", "exit":
		return true
	default:
		fmt.Fprintln(a.out, "Unknown command. Type help.")
	}
	return false
}
