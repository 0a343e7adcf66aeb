package cli

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"src.autocli.sh/pkg/cli/complete"
)

const helpSeparator = "  "

// Lists the commands starting with prefix, or reports an invalid command if
// there is none. It returns whether any command was listed.
func (ed *Editor) list(prefix string) bool {
	matches := ed.catalog.Match(prefix)
	if len(matches) == 0 {
		fmt.Fprint(ed.writer, "Invalid command\n")
		return false
	}
	width := DefaultListingWidth
	if ed.width != nil {
		if w := ed.width(); w > 0 {
			width = w
		}
	}
	fmt.Fprint(ed.writer, formatListing(matches, width))
	return true
}

// Formats commands one per line. Help texts are aligned in a column after the
// names and truncated to fit in width.
func formatListing(cmds []complete.Command, width int) string {
	nameWidth := 0
	for _, cmd := range cmds {
		if cmd.Help != "" {
			nameWidth = max(nameWidth, runewidth.StringWidth(cmd.Name))
		}
	}
	var sb strings.Builder
	for _, cmd := range cmds {
		if cmd.Help == "" {
			sb.WriteString(cmd.Name + "\n")
			continue
		}
		line := runewidth.FillRight(cmd.Name, nameWidth) + helpSeparator + cmd.Help
		sb.WriteString(runewidth.Truncate(line, width, "...") + "\n")
	}
	return sb.String()
}
