package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	"github.com/agueijo/pathkit/internal/cli"
	"github.com/agueijo/pathkit/internal/cmd"
	"github.com/agueijo/pathkit/internal/config"
	"github.com/agueijo/pathkit/internal/output"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()

	// Custom flag set to avoid os.Exit on parse error
	flags := flag.NewFlagSet("pathkit", flag.ContinueOnError)
	flags.SetInterspersed(false) // Stop parsing at first non-flag arg (the command)
	cfg.RegisterFlags(flags)
	showVersion := flags.Bool("version", false, "Show version and exit")

	// Parse flags; remaining args are the single-command
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 2
	}
	cfg.Args = flags.Args()

	if *showVersion {
		fmt.Printf("pathkit %s\n", version)
		return 0
	}

	// Set up color
	if !cfg.ShouldColor() {
		color.NoColor = true
	}

	formatter := output.NewFormatter(cfg.JSON, cfg.ShouldColor())

	ctx := context.Background()

	// Create router
	router := cmd.NewRouter(cfg, formatter)

	// Single-command mode
	if len(cfg.Args) > 0 {
		line := strings.Join(quoteArgs(cfg.Args), " ")
		if err := router.Execute(ctx, line); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		return 0
	}

	// Interactive REPL mode
	repl := cli.NewREPL(router, cfg, formatter)
	if err := repl.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// quoteArgs re-quotes shell-provided args so the REPL tokenizer sees each one
// as a single token, empty strings and spaces included.
func quoteArgs(args []string) []string {
	quoted := make([]string, len(args))
	for i, a := range args {
		a = strings.ReplaceAll(a, `\`, `\\`)
		a = strings.ReplaceAll(a, `"`, `\"`)
		quoted[i] = `"` + a + `"`
	}
	return quoted
}
