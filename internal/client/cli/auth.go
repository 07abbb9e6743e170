package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/puisi/internal/client/session"
)

// getPassword is swapped out in tests; the terminal is not available there.
var getPassword = readPasswordPrompt

func (a *App) credentials() (string, string, error) {
	userName, err := readLine(a.reader, "Enter username", a.out)
	if err != nil {
		return "", "", err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	defer wipe(password)

	return userName, string(password), nil
}

func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return err
	}

	u, err := a.api.Register(ctx, userName, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s, you can log in now\n", u.UserName)
	return nil
}

// Login authenticates and saves the session for the next run.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, userName, password)
	if err != nil {
		return err
	}
	a.user = resp.User

	if err := a.sessions.Save(ctx, &session.Session{Token: resp.Token, User: resp.User}); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", resp.User.UserName)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.forget(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
