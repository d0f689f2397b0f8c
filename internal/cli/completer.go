package cli

import (
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/agueijo/pathkit/internal/cmd"
)

// NewCompleter creates a tab completer for the REPL.
func NewCompleter(router *cmd.Router) *Completer {
	return &Completer{
		router: router,
	}
}

// Completer provides tab completion for the REPL: command names first, then
// host-filesystem paths resolved against the session cwd.
type Completer struct {
	router *cmd.Router
}

// Do implements readline.AutoCompleter.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	lineStr := string(line[:pos])
	parts := strings.Fields(lineStr)

	// Complete command name
	if len(parts) == 0 || (len(parts) == 1 && !strings.HasSuffix(lineStr, " ")) {
		prefix := ""
		if len(parts) == 1 {
			prefix = parts[0]
		}
		return c.completeCommand(prefix), len(prefix)
	}

	// Complete path argument
	partial := ""
	if !strings.HasSuffix(lineStr, " ") {
		partial = parts[len(parts)-1]
	}

	// Skip flag-like args
	if strings.HasPrefix(partial, "-") {
		return nil, 0
	}

	return c.completePath(partial), len(partial)
}

func (c *Completer) completeCommand(prefix string) [][]rune {
	var candidates []string
	for _, name := range c.router.CommandNames() {
		if strings.HasPrefix(name, strings.ToLower(prefix)) {
			candidates = append(candidates, name)
		}
	}
	sort.Strings(candidates)

	result := make([][]rune, len(candidates))
	for i, cand := range candidates {
		suffix := cand[len(prefix):]
		result[i] = []rune(suffix + " ")
	}
	return result
}

func (c *Completer) completePath(partial string) [][]rune {
	// Determine the directory to list and the prefix to match
	dir := c.router.State.Cwd
	prefix := partial

	if strings.Contains(partial, "/") {
		lastSlash := strings.LastIndex(partial, "/")
		dirPart := partial[:lastSlash+1]
		prefix = partial[lastSlash+1:]
		dir = c.router.ResolvePath(dirPart)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var candidates [][]rune
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, prefix) {
			suffix := name[len(prefix):]
			if entry.IsDir() {
				suffix += "/"
			} else {
				suffix += " "
			}
			candidates = append(candidates, []rune(suffix))
		}
	}
	return candidates
}

// Ensure Completer satisfies the readline.AutoCompleter interface.
var _ readline.AutoCompleter = (*Completer)(nil)
