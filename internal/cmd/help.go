package cmd

import (
	"context"
	"fmt"
)

var commandHelp = map[string]string{
	"split":    "split path                Show the component sequence of a path",
	"join":     "join comp...              Join components ('' is the root marker)",
	"norm":     "norm path...              Normalize a path ('..', '.', extra slashes)",
	"rel":      "rel path start            Relative path that reaches path from start",
	"cmp":      "cmp path1 path2           Compare two paths after normalization",
	"resolve":  "resolve path...           Resolve a path against the session cwd",
	"cd":       "cd [path]                 Change session directory (cd - for previous)",
	"pwd":      "pwd                       Print session working directory",
	"basename": "basename path...          Final component of a path",
	"dirname":  "dirname path...           Directory portion of a path",
	"exists":   "exists [-L] path...       Check whether an entry exists on disk",
	"readlink": "readlink path...          Print a symlink's target",
	"wait":     "wait [-t dur] path        Wait until an entry appears on disk",
	"stat":     "stat path...              Display entry metadata",
	"help":     "help [command]            Show this help",
	"clear":    "clear                     Clear the terminal",
	"exit":     "exit / quit               Exit the REPL",
}

func (r *Router) handleHelp(ctx context.Context, args []string) error {
	if len(args) > 0 {
		cmd := args[0]
		if help, ok := commandHelp[cmd]; ok {
			fmt.Fprintln(r.Formatter.Writer, help)
		} else {
			fmt.Fprintf(r.Formatter.Writer, "No help available for '%s'\n", cmd)
		}
		return nil
	}

	fmt.Fprintln(r.Formatter.Writer, "pathkit — path-string algebra workbench")
	fmt.Fprintln(r.Formatter.Writer, "")
	fmt.Fprintln(r.Formatter.Writer, "Path commands (purely lexical, never touch the filesystem):")
	for _, cmd := range []string{"split", "join", "norm", "rel", "cmp", "resolve",
		"cd", "pwd", "basename", "dirname"} {
		fmt.Fprintf(r.Formatter.Writer, "  %s\n", commandHelp[cmd])
	}
	fmt.Fprintln(r.Formatter.Writer, "")
	fmt.Fprintln(r.Formatter.Writer, "Filesystem commands (thin wrappers over the host filesystem):")
	for _, cmd := range []string{"exists", "readlink", "wait", "stat"} {
		fmt.Fprintf(r.Formatter.Writer, "  %s\n", commandHelp[cmd])
	}
	fmt.Fprintln(r.Formatter.Writer, "")
	fmt.Fprintln(r.Formatter.Writer, "Other:")
	for _, cmd := range []string{"help", "clear", "exit"} {
		fmt.Fprintf(r.Formatter.Writer, "  %s\n", commandHelp[cmd])
	}
	return nil
}
