package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/subtrackhq/subtrack/internal/cli"
	"github.com/subtrackhq/subtrack/internal/models"
)

func listCommand(_ []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	subs, err := c.Subscriptions(context.Background())
	if err != nil {
		return err
	}
	fmt.Print(cli.RenderList(subs))
	return nil
}

func addCommand(args []string) error {
	cmd := &Command{Name: "add", Usage: "subtrackctl add --name NAME --price PRICE [--currency CUR] [--category CAT] [--inactive]"}
	fs := cmd.NewFlagSet()
	name := fs.String("name", "", "service name")
	price := fs.String("price", "", "monthly price, decimal")
	currency := fs.String("currency", "USD", "three-letter currency code")
	category := fs.String("category", "", "category label")
	inactive := fs.Bool("inactive", false, "create as inactive")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cli.ValidateSubscriptionForm(*name, *price); err != nil {
		return err
	}

	input := models.SubscriptionInput{
		Name:         *name,
		PriceMonthly: *price,
		Currency:     *currency,
	}
	if *category != "" {
		input.Category = category
	}
	if *inactive {
		active := false
		input.Active = &active
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	sub, err := c.CreateSubscription(context.Background(), input)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s (%s)\n", sub.Name, sub.ID)
	return nil
}

func updateCommand(args []string) error {
	cmd := &Command{Name: "update", Usage: "subtrackctl update ID [--name NAME] [--price PRICE] [--currency CUR] [--category CAT] [--active=BOOL]"}
	if len(args) < 1 {
		cmd.PrintUsage()
		return fmt.Errorf("subscription id is required")
	}
	id := args[0]

	fs := cmd.NewFlagSet()
	name := fs.String("name", "", "service name")
	price := fs.String("price", "", "monthly price, decimal")
	currency := fs.String("currency", "", "three-letter currency code")
	category := fs.String("category", "", "category label")
	active := fs.Bool("active", false, "active flag")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var patch models.SubscriptionPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "price":
			patch.PriceMonthly = price
		case "currency":
			patch.Currency = currency
		case "category":
			patch.Category = category
		case "active":
			patch.Active = active
		}
	})
	if patch.IsEmpty() {
		return fmt.Errorf("nothing to update")
	}
	if patch.PriceMonthly != nil {
		if err := cli.ValidatePrice(*patch.PriceMonthly); err != nil {
			return err
		}
	}
	if patch.Name != nil {
		if err := cli.ValidateName(*patch.Name); err != nil {
			return err
		}
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	sub, err := c.UpdateSubscription(context.Background(), id, patch)
	if err != nil {
		return err
	}
	if sub == nil {
		fmt.Println("Subscription not found")
		return nil
	}
	fmt.Printf("Updated %s\n", sub.ID)
	return nil
}

func rmCommand(args []string) error {
	cmd := &Command{Name: "rm", Usage: "subtrackctl rm ID"}
	if len(args) < 1 {
		cmd.PrintUsage()
		return fmt.Errorf("subscription id is required")
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	if err := c.RemoveSubscription(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Println("Removed")
	return nil
}

func summaryCommand(_ []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	result, err := c.Summary(context.Background())
	if err != nil {
		return err
	}
	fmt.Print(cli.RenderSummary(result))
	return nil
}

func exportCommand(args []string) error {
	cmd := &Command{Name: "export", Usage: "subtrackctl export [--out FILE]"}
	fs := cmd.NewFlagSet()
	out := fs.String("out", "", "output file, defaults to subtrack-export-<date>.json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	subs, err := c.Export(context.Background())
	if err != nil {
		return err
	}

	filename := *out
	if filename == "" {
		filename = fmt.Sprintf("subtrack-export-%s.json", time.Now().Format("2006-01-02"))
	}
	raw, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, raw, 0o644); err != nil {
		return err
	}
	fmt.Printf("Exported %d subscription(s) to %s\n", len(subs), filename)
	return nil
}

func importCommand(args []string) error {
	cmd := &Command{Name: "import", Usage: "subtrackctl import FILE"}
	if len(args) < 1 {
		cmd.PrintUsage()
		return fmt.Errorf("file path is required")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var records []models.SubscriptionInput
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("invalid JSON file: %w", err)
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	result, err := c.Import(context.Background(), records)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d, failed %d\n", result.Imported, result.Failed)
	return nil
}
