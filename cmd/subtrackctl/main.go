// Package main — терминальный клиент SubTrack API.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/subtrackhq/subtrack/internal/cli"
	"github.com/subtrackhq/subtrack/internal/client"
)

func main() {
	registry := NewCommandRegistry()
	registerCommands(registry)

	if err := registry.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newClient собирает клиент API с токеном из файла состояния.
func newClient() (*client.Client, error) {
	baseURL := os.Getenv("SUBTRACK_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	c := client.New(baseURL, client.NewListCache(), logger)

	token, err := cli.LoadToken()
	if err != nil {
		return nil, err
	}
	c.SetToken(token)
	return c, nil
}

func registerCommands(r *CommandRegistry) {
	r.Register(&Command{
		Name:        "register",
		Description: "Create an account and sign in",
		Usage:       "subtrackctl register --name NAME --email EMAIL --password PASSWORD",
		Run:         registerCommand,
	})
	r.Register(&Command{
		Name:        "login",
		Description: "Sign in with email and password",
		Usage:       "subtrackctl login --email EMAIL --password PASSWORD",
		Run:         loginCommand,
	})
	r.Register(&Command{
		Name:        "logout",
		Description: "Destroy the current session",
		Usage:       "subtrackctl logout",
		Run:         logoutCommand,
	})
	r.Register(&Command{
		Name:        "list",
		Description: "List subscriptions",
		Usage:       "subtrackctl list",
		Run:         listCommand,
	})
	r.Register(&Command{
		Name:        "add",
		Description: "Add a subscription",
		Usage:       "subtrackctl add --name NAME --price PRICE [--currency CUR] [--category CAT] [--inactive]",
		Run:         addCommand,
	})
	r.Register(&Command{
		Name:        "update",
		Description: "Update fields of a subscription",
		Usage:       "subtrackctl update ID [--name NAME] [--price PRICE] [--currency CUR] [--category CAT] [--active=BOOL]",
		Run:         updateCommand,
	})
	r.Register(&Command{
		Name:        "rm",
		Description: "Remove a subscription",
		Usage:       "subtrackctl rm ID",
		Run:         rmCommand,
	})
	r.Register(&Command{
		Name:        "summary",
		Description: "Show monthly spending summary",
		Usage:       "subtrackctl summary",
		Run:         summaryCommand,
	})
	r.Register(&Command{
		Name:        "export",
		Description: "Export subscriptions to a JSON file",
		Usage:       "subtrackctl export [--out FILE]",
		Run:         exportCommand,
	})
	r.Register(&Command{
		Name:        "import",
		Description: "Import subscriptions from a JSON file",
		Usage:       "subtrackctl import FILE",
		Run:         importCommand,
	})
}
