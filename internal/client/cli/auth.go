package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eventplanner/internal/client/client"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates a new account.
// On success the returned token is already stored in the session, so the
// user is logged in immediately.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.Signup(ctx, email, password); err != nil {
		fmt.Println(client.Message(err))
		return err
	}

	fmt.Println("Registered and logged in as", email)
	return nil
}

// Login prompts for credentials and authenticates against the server.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.Login(ctx, email, password); err != nil {
		fmt.Println(client.Message(err))
		return err
	}

	fmt.Println("Logged in as", email)
	return nil
}

// Logout clears the session. Nothing is sent to the server; the token is
// simply forgotten.
func (a *App) Logout(ctx context.Context) error {
	a.session.Clear()
	fmt.Println("Logged out")
	return nil
}
