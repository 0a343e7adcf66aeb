// Package complete implements the command catalog and prefix completion.
package complete

import "strings"

// Command is an entry of a Catalog.
type Command struct {
	Name string
	// Help is a one-line description shown when listing commands. It may be
	// empty.
	Help string
}

// Catalog is a fixed, ordered set of commands. It is not modified after
// construction, so it may be shared freely.
type Catalog struct {
	cmds []Command
}

// NewCatalog returns a Catalog with the given commands. Commands whose names
// are duplicates of an earlier command are dropped.
func NewCatalog(cmds ...Command) *Catalog {
	seen := make(map[string]bool, len(cmds))
	deduped := make([]Command, 0, len(cmds))
	for _, cmd := range cmds {
		if seen[cmd.Name] {
			continue
		}
		seen[cmd.Name] = true
		deduped = append(deduped, cmd)
	}
	return &Catalog{deduped}
}

// NewCatalogFromNames is like NewCatalog, but takes command names only.
func NewCatalogFromNames(names ...string) *Catalog {
	cmds := make([]Command, len(names))
	for i, name := range names {
		cmds[i] = Command{Name: name}
	}
	return NewCatalog(cmds...)
}

// Commands returns all the commands in the catalog.
func (c *Catalog) Commands() []Command {
	return append([]Command(nil), c.cmds...)
}

// Match returns the commands whose names start with prefix, in catalog order.
func (c *Catalog) Match(prefix string) []Command {
	var matches []Command
	for _, cmd := range c.cmds {
		if strings.HasPrefix(cmd.Name, prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// MatchNames is like Match, but returns only the names.
func (c *Catalog) MatchNames(prefix string) []string {
	matches := c.Match(prefix)
	names := make([]string, len(matches))
	for i, cmd := range matches {
		names[i] = cmd.Name
	}
	return names
}

// Has reports whether name is exactly the name of a command.
func (c *Catalog) Has(name string) bool {
	for _, cmd := range c.cmds {
		if cmd.Name == name {
			return true
		}
	}
	return false
}

// Outcome classifies some typed text against a Catalog.
type Outcome int

// Possible values of Outcome.
const (
	// No command starts with the text.
	NoMatch Outcome = iota
	// Exactly one command starts with the text, or the text is exactly the
	// name of a command.
	Unique
	// Several commands start with the text and it is not the name of any of
	// them.
	Ambiguous
)

func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "no match"
	case Unique:
		return "unique"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Resolve classifies text and, when the outcome is Unique, returns the name of
// the command it designates: text itself if it is a command name, or else the
// only command it is a prefix of.
func (c *Catalog) Resolve(text string) (string, Outcome) {
	matches := c.Match(text)
	switch {
	case len(matches) == 0:
		return "", NoMatch
	case c.Has(text):
		return text, Unique
	case len(matches) == 1:
		return matches[0].Name, Unique
	default:
		return "", Ambiguous
	}
}
