package cli

import (
	"context"
	"fmt"
)

// loginScreen prompts for credentials and attempts a single login. On
// success the prompt switches to the signed-in menu, mirroring the original
// navigation reset to the post-login screen.
func (a *App) loginScreen(ctx context.Context) {
	email, err := promptText(a.reader, "Email", a.out)
	if err != nil {
		return
	}
	password, err := promptPassword(a.reader, "Password", a.out)
	if err != nil {
		return
	}

	if _, err := a.auth.Login(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return
	}
	fmt.Fprintln(a.out, "Signed in.")
}

// signupScreen collects the registration fields and submits once.
func (a *App) signupScreen(ctx context.Context) {
	first, err := promptText(a.reader, "First name", a.out)
	if err != nil {
		return
	}
	last, err := promptText(a.reader, "Last name", a.out)
	if err != nil {
		return
	}
	email, err := promptText(a.reader, "Email", a.out)
	if err != nil {
		return
	}
	password, err := promptPassword(a.reader, "Password", a.out)
	if err != nil {
		return
	}
	confirm, err := promptPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return
	}

	if err := a.auth.Register(ctx, first, last, email, password, confirm); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return
	}
	fmt.Fprintln(a.out, "Account created. You can log in now.")
}

// forgotScreen requests a password-reset email.
func (a *App) forgotScreen(ctx context.Context) {
	email, err := promptText(a.reader, "Email", a.out)
	if err != nil {
		return
	}
	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return
	}
	fmt.Fprintln(a.out, "If the address exists, a reset link is on its way.")
}
