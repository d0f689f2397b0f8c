package cmd

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/agueijo/pathkit/internal/fsops"
)

func (r *Router) handleWait(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("wait", flag.ContinueOnError)
	timeout := fs.DurationP("timeout", "t", r.Config.WaitTimeout, "How long to wait")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("wait: expected exactly one path")
	}

	path := r.ResolvePath(fs.Arg(0))
	if err := fsops.WaitForPath(ctx, path, *timeout); err != nil {
		return fmt.Errorf("wait: %w", err)
	}
	r.Formatter.PrintBool(true)
	return nil
}
