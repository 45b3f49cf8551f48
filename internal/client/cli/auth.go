package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// Register creates a new account. No session is established; the user is
// asked to log in afterwards.
func (a *App) Register(ctx context.Context) {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in, use 'logout' first")
		return
	}

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	switch err := a.session.Register(ctx, username, email, password); {
	case errors.Is(err, common.ErrMissingField):
		a.notifier.Show("All fields are required", models.NotificationError)
	case errors.Is(err, common.ErrDuplicateIdentity):
		a.notifier.Show("Email already exists", models.NotificationError)
	case err != nil:
		a.log.Error(ctx, "registration failed", "error", err)
		a.notifier.Show("Registration failed", models.NotificationError)
	default:
		a.notifier.Show("Registration successful! Please login.", models.NotificationSuccess)
	}
}

// Login authenticates and establishes the session. An unknown email is
// reported differently from a wrong password so the user knows to register.
func (a *App) Login(ctx context.Context) {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in")
		return
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	switch err := a.session.Login(ctx, email, password); {
	case errors.Is(err, common.ErrUserNotFound):
		a.notifier.Show("Email not found, please register.", models.NotificationError)
	case errors.Is(err, common.ErrInvalidPassword):
		a.notifier.Show("Invalid email or password", models.NotificationError)
	case err != nil:
		a.log.Error(ctx, "login failed", "error", err)
		a.notifier.Show("Login failed", models.NotificationError)
	default:
		a.notifier.Show("Login successful!", models.NotificationSuccess)
	}
}

// Logout clears the session. Always succeeds.
func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
}

// ToggleNotifications flips the persisted mute flag.
func (a *App) ToggleNotifications(ctx context.Context) {
	if err := a.session.ToggleNotifications(ctx); err != nil {
		a.log.Error(ctx, "failed to toggle notifications", "error", err)
		return
	}
	if a.session.NotificationsEnabled() {
		fmt.Fprintln(a.out, "Notifications enabled")
	} else {
		fmt.Fprintln(a.out, "Notifications disabled")
	}
}

// ToggleTheme flips light/dark.
func (a *App) ToggleTheme(ctx context.Context) {
	if err := a.theme.Toggle(ctx); err != nil {
		a.log.Error(ctx, "failed to toggle theme", "error", err)
		return
	}
	fmt.Fprintf(a.out, "Theme: %s\n", a.theme.Current())
}
