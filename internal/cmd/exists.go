package cmd

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/agueijo/pathkit/internal/fsops"
)

func (r *Router) handleExists(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("exists", flag.ContinueOnError)
	follow := fs.BoolP("follow", "L", false, "Follow a final symlink")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("exists: missing operand")
	}

	for _, arg := range fs.Args() {
		path := r.ResolvePath(arg)
		r.Formatter.PrintBool(fsops.Exists(path, *follow))
	}
	return nil
}
