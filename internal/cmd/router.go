package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/agueijo/pathkit/internal/config"
	"github.com/agueijo/pathkit/internal/fsops"
	"github.com/agueijo/pathkit/internal/output"
	"github.com/agueijo/pathkit/internal/pathutil"
)

// State holds the current session state.
type State struct {
	Cwd     string
	PrevDir string
}

// Router dispatches commands to the appropriate handler.
type Router struct {
	Config    *config.Config
	Formatter *output.Formatter
	State     *State
	handlers  map[string]Handler
}

// Handler is a function that handles a command.
type Handler func(ctx context.Context, args []string) error

// NewRouter creates a command router with all registered handlers. The session
// working directory is seeded from cfg.Start, falling back to the process cwd.
func NewRouter(cfg *config.Config, formatter *output.Formatter) *Router {
	r := &Router{
		Config:    cfg,
		Formatter: formatter,
		State: &State{
			Cwd: startDir(cfg.Start),
		},
		handlers: make(map[string]Handler),
	}
	r.registerHandlers()
	return r
}

func startDir(start string) string {
	cwd := start
	if cwd == "" || !strings.HasPrefix(cwd, "/") {
		wd, err := fsops.Cwd()
		if err != nil {
			wd = "/"
		}
		if cwd == "" {
			cwd = wd
		} else {
			cwd = wd + "/" + cwd
		}
	}
	cwd = pathutil.Join(pathutil.Normalize(pathutil.Split(cwd)))
	if cwd == "" {
		cwd = "/"
	}
	return cwd
}

func (r *Router) registerHandlers() {
	r.handlers["split"] = r.handleSplit
	r.handlers["join"] = r.handleJoin
	r.handlers["norm"] = r.handleNorm
	r.handlers["rel"] = r.handleRel
	r.handlers["cmp"] = r.handleCmp
	r.handlers["resolve"] = r.handleResolve
	r.handlers["cd"] = r.handleCd
	r.handlers["pwd"] = r.handlePwd
	r.handlers["basename"] = r.handleBasename
	r.handlers["dirname"] = r.handleDirname
	r.handlers["exists"] = r.handleExists
	r.handlers["readlink"] = r.handleReadlink
	r.handlers["wait"] = r.handleWait
	r.handlers["stat"] = r.handleStat
	r.handlers["help"] = r.handleHelp
	r.handlers["clear"] = r.handleClear
}

// Execute runs a parsed command line.
func (r *Router) Execute(ctx context.Context, line string) error {
	tokens, err := Tokenize(line)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]

	handler, ok := r.handlers[cmd]
	if !ok {
		return fmt.Errorf("unknown command: %s (try 'help')", cmd)
	}
	return handler(ctx, args)
}

// IsBuiltin returns true if the command is a registered command.
func (r *Router) IsBuiltin(cmd string) bool {
	_, ok := r.handlers[strings.ToLower(cmd)]
	return ok
}

// CommandNames returns all registered command names.
func (r *Router) CommandNames() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

// ResolvePath resolves a path against the session cwd and normalizes it.
// The computation is lexical; the result need not exist on disk.
func (r *Router) ResolvePath(path string) string {
	if path == "" {
		return r.State.Cwd
	}
	if !strings.HasPrefix(path, "/") {
		path = r.State.Cwd + "/" + path
	}
	resolved := pathutil.Join(pathutil.Normalize(pathutil.Split(path)))
	if resolved == "" {
		return "/"
	}
	return resolved
}
