package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
)

// usersScreen loads page 1 of the remote directory and renders it.
func (a *App) usersScreen(ctx context.Context) {
	if err := a.directory.LoadPage(ctx, 1); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return
	}
	a.renderDirectory()
}

// moreScreen is the infinite-scroll trigger: fetch the next page and append.
func (a *App) moreScreen(ctx context.Context) {
	if err := a.directory.LoadMore(ctx); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return
	}
	a.renderDirectory()
}

// searchScreen feeds the input through the debounced search. The REPL
// delivers the whole line as one "keystroke", then waits out the debounce
// window before rendering whatever the lookup produced. An empty input
// clears search mode and restores the page-1 listing.
func (a *App) searchScreen(ctx context.Context, raw string) {
	a.directory.SearchByIdentifier(ctx, raw)
	time.Sleep(a.settle)
	a.renderDirectory()
}

func (a *App) renderDirectory() {
	snap := a.directory.Snapshot()

	if snap.State == domain.FetchError && snap.Err != nil {
		fmt.Fprintln(a.out, userMessage(snap.Err))
		return
	}
	if len(snap.Page.Items) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return
	}

	for _, u := range snap.Page.Items {
		fmt.Fprintf(a.out, "%8d  %-28s %s\n", u.ID, u.FullName(), u.Email)
	}
	if snap.Search.Mode == domain.SearchModeByID {
		fmt.Fprintln(a.out, "(search result — type clear to go back)")
	} else if snap.Page.HasMore {
		fmt.Fprintf(a.out, "(page %d — type more for the next page)\n", snap.Page.PageNumber)
	} else {
		fmt.Fprintf(a.out, "(page %d — end of list)\n", snap.Page.PageNumber)
	}
}
