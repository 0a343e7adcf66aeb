package complete

// Complete computes the longest extension of prefix that is unambiguous
// against the catalog, i.e. the longest string ext such that prefix+ext is a
// prefix of every command matching prefix.
//
// The second return value is false iff no command starts with prefix. The
// extension may be empty even when it is true, for instance when prefix is
// the name of a command that is also a prefix of another command.
func Complete(prefix string, c *Catalog) (string, bool) {
	matches := c.MatchNames(prefix)
	if len(matches) == 0 {
		return "", false
	}
	first := matches[0]
	i := len(prefix)
	for ; i < len(first); i++ {
		if !allHaveByteAt(matches[1:], i, first[i]) {
			break
		}
	}
	return first[len(prefix):i], true
}

func allHaveByteAt(names []string, i int, b byte) bool {
	for _, name := range names {
		if i >= len(name) || name[i] != b {
			return false
		}
	}
	return true
}
