package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/urfave/cli/v2"
)

const (
	appName    = "riftstats"
	confirmYes = "yes"
)

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	Flags() []cli.Flag
	Run(c *cli.Context) error
}

// Registry holds commands by name
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd; a name may only be registered once
func (r *Registry) Register(cmd Command) {
	if _, dup := r.commands[cmd.Name()]; dup {
		panic(fmt.Sprintf("devtool: command %q registered twice", cmd.Name()))
	}
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns commands ordered by name
func (r *Registry) List() []Command {
	names := slices.Sorted(maps.Keys(r.commands))
	cmds := make([]Command, len(names))
	for i, name := range names {
		cmds[i] = r.commands[name]
	}
	return cmds
}

// CLICommands adapts the registry for urfave/cli
func (r *Registry) CLICommands() []*cli.Command {
	var cmds []*cli.Command
	for _, cmd := range r.List() {
		cmds = append(cmds, &cli.Command{
			Name:   cmd.Name(),
			Usage:  cmd.Description(),
			Flags:  cmd.Flags(),
			Action: cmd.Run,
		})
	}
	return cmds
}
