package clitest

import (
	"src.autocli.sh/pkg/cli"
	"src.autocli.sh/pkg/cli/complete"
)

// FakeExecutor is an implementation of cli.Executor that records the commands
// it executes. Commands without an action do nothing.
type FakeExecutor struct {
	catalog *complete.Catalog
	actions map[string]func(tty cli.TTY) error
	// Names of the executed commands, in order.
	Executed []string
}

var _ cli.Executor = (*FakeExecutor)(nil)

// NewFakeExecutor creates a FakeExecutor whose catalog has the given names.
func NewFakeExecutor(names ...string) *FakeExecutor {
	return &FakeExecutor{
		catalog: complete.NewCatalogFromNames(names...),
		actions: make(map[string]func(cli.TTY) error),
	}
}

// NewFakeExecutorWithCatalog creates a FakeExecutor with the given catalog.
func NewFakeExecutorWithCatalog(c *complete.Catalog) *FakeExecutor {
	return &FakeExecutor{catalog: c, actions: make(map[string]func(cli.TTY) error)}
}

// On sets the action of the named command.
func (e *FakeExecutor) On(name string, f func(tty cli.TTY) error) {
	e.actions[name] = f
}

func (e *FakeExecutor) Catalog() *complete.Catalog { return e.catalog }

func (e *FakeExecutor) Execute(tty cli.TTY, name string) error {
	e.Executed = append(e.Executed, name)
	if f, ok := e.actions[name]; ok {
		return f(tty)
	}
	return nil
}
