package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
)

// Command описывает подкоманду CLI.
type Command struct {
	Name        string
	Description string
	Usage       string
	Run         func(args []string) error
}

// NewFlagSet создает набор флагов подкоманды со стандартным usage.
func (c *Command) NewFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(c.Name, flag.ExitOnError)
	fs.Usage = func() { c.PrintUsage() }
	return fs
}

// PrintUsage печатает описание и формат вызова подкоманды.
func (c *Command) PrintUsage() {
	fmt.Fprintf(os.Stderr, "%s\n\n", c.Description)
	fmt.Fprintf(os.Stderr, "USAGE:\n    %s\n", c.Usage)
}

// CommandRegistry хранит все подкоманды CLI.
type CommandRegistry struct {
	commands map[string]*Command
}

// NewCommandRegistry создает пустой реестр подкоманд.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: make(map[string]*Command)}
}

// Register добавляет подкоманду в реестр.
func (r *CommandRegistry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
}

// Execute запускает подкоманду по первому аргументу.
func (r *CommandRegistry) Execute(args []string) error {
	if len(args) < 1 {
		r.PrintHelp(os.Stdout)
		return fmt.Errorf("no command specified")
	}

	name := args[0]
	switch name {
	case "help", "-h", "--help":
		r.PrintHelp(os.Stdout)
		return nil
	}

	cmd, ok := r.commands[name]
	if !ok {
		r.PrintHelp(os.Stderr)
		return fmt.Errorf("unknown command: %s", name)
	}
	return cmd.Run(args[1:])
}

// PrintHelp печатает список всех подкоманд.
func (r *CommandRegistry) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "subtrackctl — personal subscription tracker\n\nCOMMANDS:\n")
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "    %-10s %s\n", name, r.commands[name].Description)
	}
}
