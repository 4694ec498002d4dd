package main

import (
	"context"
	"fmt"

	"github.com/subtrackhq/subtrack/internal/cli"
)

func registerCommand(args []string) error {
	cmd := &Command{Name: "register", Usage: "subtrackctl register --name NAME --email EMAIL --password PASSWORD"}
	fs := cmd.NewFlagSet()
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password, at least 8 characters")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cli.ValidateName(*name); err != nil {
		return err
	}
	if err := cli.ValidateCredentialsForm(*email, *password); err != nil {
		return err
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	payload, err := c.Register(context.Background(), *name, *email, *password)
	if err != nil {
		return err
	}
	if err := cli.SaveToken(payload.Session.Token); err != nil {
		return err
	}
	fmt.Printf("Signed up as %s\n", payload.User.Email)
	return nil
}

func loginCommand(args []string) error {
	cmd := &Command{Name: "login", Usage: "subtrackctl login --email EMAIL --password PASSWORD"}
	fs := cmd.NewFlagSet()
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cli.ValidateCredentialsForm(*email, *password); err != nil {
		return err
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	payload, err := c.Login(context.Background(), *email, *password)
	if err != nil {
		return err
	}
	if err := cli.SaveToken(payload.Session.Token); err != nil {
		return err
	}
	fmt.Printf("Signed in as %s\n", payload.User.Email)
	return nil
}

func logoutCommand(_ []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	if err := c.Logout(context.Background()); err != nil {
		return err
	}
	if err := cli.ClearToken(); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}
