package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
)

// localListScreen renders the locally stored user records.
func (a *App) localListScreen(ctx context.Context) {
	users, err := a.local.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No local users yet. Type add to create one.")
		return
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%13d  %-24s @%-16s %d followers\n", u.ID, u.FullName(), u.Username, u.Followers)
	}
}

// localAddScreen collects a record, stages it, and asks for the explicit
// confirmation required before anything is written.
func (a *App) localAddScreen(ctx context.Context) {
	record, err := a.promptRecord()
	if err != nil {
		return
	}

	staged, err := a.local.StageCreate(record)
	if err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return
	}

	if !a.confirm(fmt.Sprintf("Are you sure you want to add %s?", staged.FullName())) {
		a.local.Discard()
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	if err := a.local.ConfirmCreate(ctx); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return
	}
	fmt.Fprintf(a.out, "Added %s (id %d).\n", staged.FullName(), staged.ID)
}

// localUpdateScreen re-prompts every field for the given id and overwrites
// the stored record.
func (a *App) localUpdateScreen(ctx context.Context, args []string) {
	id, ok := a.parseID(args)
	if !ok {
		return
	}
	record, err := a.promptRecord()
	if err != nil {
		return
	}
	if err := a.local.Update(ctx, id, record); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return
	}
	fmt.Fprintln(a.out, "Updated.")
}

// localDeleteScreen stages a delete and commits only after confirmation.
func (a *App) localDeleteScreen(ctx context.Context, args []string) {
	id, ok := a.parseID(args)
	if !ok {
		return
	}

	a.local.StageDelete(id)
	if !a.confirm(fmt.Sprintf("Are you sure you want to delete %d?", id)) {
		a.local.Discard()
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	if err := a.local.ConfirmDelete(ctx); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return
	}
	fmt.Fprintln(a.out, "Deleted.")
}

func (a *App) promptRecord() (domain.UserRecord, error) {
	var rec domain.UserRecord
	var err error
	if rec.FirstName, err = promptText(a.reader, "First name", a.out); err != nil {
		return rec, err
	}
	if rec.LastName, err = promptText(a.reader, "Last name", a.out); err != nil {
		return rec, err
	}
	if rec.Username, err = promptText(a.reader, "Username", a.out); err != nil {
		return rec, err
	}
	if rec.Email, err = promptText(a.reader, "Email (optional)", a.out); err != nil {
		return rec, err
	}
	if rec.Description, err = promptText(a.reader, "Short description", a.out); err != nil {
		return rec, err
	}
	return rec, nil
}

func (a *App) confirm(question string) bool {
	answer, err := promptText(a.reader, question+" [y/N]", a.out)
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func (a *App) parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: update|del <id>")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Record ids are numeric.")
		return 0, false
	}
	return id, true
}
