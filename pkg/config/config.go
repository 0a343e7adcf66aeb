// Package config loads the configuration of the shell from a YAML file.
//
// A configuration file looks like this; every field is optional:
//
//	prompt: "auto_cli:$"
//	display-chars: "abcdefghijklmnopqrstuvwxyz0123456789 "
//	display-quit: x
//	commands:
//	  - name: hello
//	    help: Print a greeting
//	  - name: deploy
//	    help: Pretend to deploy
//	    say: Deploying
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"src.autocli.sh/pkg/cli"
	"src.autocli.sh/pkg/cli/complete"
	"src.autocli.sh/pkg/errutil"
	"src.autocli.sh/pkg/ui"
)

// DefaultPrompt is the prompt used when the configuration doesn't set one.
const DefaultPrompt = "auto_cli:$"

// Config is the configuration of the shell.
type Config struct {
	Prompt       string `yaml:"prompt"`
	DisplayChars string `yaml:"display-chars"`
	// The key that ends the display command, in the syntax of ui.ParseKey.
	DisplayQuit string    `yaml:"display-quit"`
	Commands    []Command `yaml:"commands"`
}

// Command is the configuration of a command.
type Command struct {
	Name string `yaml:"name"`
	Help string `yaml:"help,omitempty"`
	// Text printed when the command is run. If empty, the builtin action of
	// the command is run, if there is one.
	Say string `yaml:"say,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Prompt:       DefaultPrompt,
		DisplayChars: cli.DefaultDisplayChars,
		DisplayQuit:  "x",
		Commands: []Command{
			{Name: "hello", Help: "Print a greeting"},
			{Name: "display", Help: "Show the keys pressed until the quit key"},
			{Name: "foo"},
			{Name: "bar"},
			{Name: "baz"},
			{Name: "barbaz"},
			{Name: "exit", Help: "Quit"},
			{Name: "x", Help: "Quit"},
		},
	}
}

// Load reads the configuration from the named file. Fields missing from the
// file keep their default values; unknown fields are an error. If the name is
// empty, the default configuration is returned.
func Load(fname string) (*Config, error) {
	cfg := Default()
	if fname == "" {
		return cfg, nil
	}
	file, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer file.Close()
	if err := decode(file, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", fname, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", fname, err)
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err == io.EOF {
		// Empty file.
		return nil
	}
	return err
}

// Validate checks that the configuration is usable. All the problems found are
// reported together.
func (cfg *Config) Validate() error {
	var errs []error
	for i := 0; i < len(cfg.DisplayChars); i++ {
		if c := cfg.DisplayChars[i]; c < 0x20 || c >= 0x7f {
			errs = append(errs, fmt.Errorf("display-chars: %q is not a printable ASCII character", c))
		}
	}
	if cfg.DisplayQuit != "" {
		if _, err := ui.ParseKey(cfg.DisplayQuit); err != nil {
			errs = append(errs, fmt.Errorf("display-quit: %w", err))
		}
	}
	if len(cfg.Commands) == 0 {
		errs = append(errs, errors.New("commands: no command defined"))
	}
	seen := make(map[string]bool)
	for i, cmd := range cfg.Commands {
		switch {
		case cmd.Name == "":
			errs = append(errs, fmt.Errorf("commands[%d]: empty name", i))
		case strings.ContainsAny(cmd.Name, " \t"):
			errs = append(errs, fmt.Errorf("commands[%d]: name %q contains whitespace", i, cmd.Name))
		case seen[cmd.Name]:
			errs = append(errs, fmt.Errorf("commands[%d]: duplicate name %q", i, cmd.Name))
		case !cfg.typeable(cmd.Name):
			errs = append(errs, fmt.Errorf("commands[%d]: name %q cannot be typed with display-chars", i, cmd.Name))
		}
		seen[cmd.Name] = true
	}
	return errutil.Multi(errs...)
}

func (cfg *Config) typeable(s string) bool {
	chars := cfg.DisplayChars
	if chars == "" {
		chars = cli.DefaultDisplayChars
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(chars, s[i]) == -1 {
			return false
		}
	}
	return true
}

// QuitKey returns the key that ends the display command.
func (cfg *Config) QuitKey() ui.Key {
	if k, err := ui.ParseKey(cfg.DisplayQuit); err == nil {
		return k
	}
	return ui.K('x')
}

// Catalog returns the catalog of the configured commands.
func (cfg *Config) Catalog() *complete.Catalog {
	cmds := make([]complete.Command, len(cfg.Commands))
	for i, cmd := range cfg.Commands {
		cmds[i] = complete.Command{Name: cmd.Name, Help: cmd.Help}
	}
	return complete.NewCatalog(cmds...)
}

// Command returns the configuration of the named command.
func (cfg *Config) Command(name string) (Command, bool) {
	for _, cmd := range cfg.Commands {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return Command{}, false
}
