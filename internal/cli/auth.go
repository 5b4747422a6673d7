package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates an account.
// Registration does not log the user in; they log in explicitly after.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.client.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	fmt.Printf("Account created for %s. Use 'login' to sign in.\n", user.Email)
	return nil
}

// Login prompts for credentials, authenticates against the backend and
// persists the returned token in the session file.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	token, user, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	if err := a.session.Set(token, user.ID, user.Email); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", user.Email)
	if exp, ok := a.session.ExpiresAt(); ok {
		fmt.Printf("Session valid until %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// Logout clears the persisted session and closes any open resume.
func (a *App) Logout(ctx context.Context) error {
	a.resume = nil
	a.store = nil
	if err := a.session.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
