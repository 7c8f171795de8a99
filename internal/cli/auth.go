package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fun2learn/satvocab/internal/common"
	"github.com/fun2learn/satvocab/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for a name, email and password and attempts to create a new
// account. On success the new session becomes the active one.
//
// Typed failures (bad format, duplicate email, hashing unavailable) are
// printed as short user-facing messages; I/O errors are returned unchanged.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
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
	defer common.WipeByteArray(password)

	s, err := a.auth.Authenticate(ctx, services.AuthRequest{
		Mode:     services.ModeSignup,
		Name:     name,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		fmt.Println(common.UserMessage(err))
		return nil
	}

	a.session = &s
	fmt.Printf("Welcome, %s!\n", s.Name)
	return nil
}

// Login prompts for credentials and tries to authenticate against the local
// store. Unknown email and wrong password produce the same message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.auth.Authenticate(ctx, services.AuthRequest{
		Mode:     services.ModeLogin,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		fmt.Println(common.UserMessage(err))
		return nil
	}

	a.session = &s
	fmt.Printf("Welcome back, %s!\n", s.Name)
	return nil
}

// Logout drops the persisted session and the in-memory one.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.session = nil
	fmt.Println("Logged out.")
	return nil
}
