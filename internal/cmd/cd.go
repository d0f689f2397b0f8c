package cmd

import (
	"context"
	"fmt"
)

// cd changes the session working directory. It is purely lexical: the target
// is resolved and normalized as a string and need not exist on disk.
func (r *Router) handleCd(ctx context.Context, args []string) error {
	var target string
	if len(args) == 0 {
		target = "/"
	} else if args[0] == "-" {
		if r.State.PrevDir == "" {
			return fmt.Errorf("cd: OLDPWD not set")
		}
		target = r.State.PrevDir
	} else {
		target = r.ResolvePath(args[0])
	}

	r.State.PrevDir = r.State.Cwd
	r.State.Cwd = target
	return nil
}

func (r *Router) handlePwd(ctx context.Context, args []string) error {
	r.Formatter.PrintPath(r.State.Cwd)
	return nil
}
