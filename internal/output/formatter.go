package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/agueijo/pathkit/internal/fsops"
)

// Formatter handles text/JSON/colored output.
type Formatter struct {
	Writer    io.Writer
	ErrWriter io.Writer
	JSON      bool
	Color     bool
}

// NewFormatter creates a new output formatter.
func NewFormatter(jsonMode, colorMode bool) *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		JSON:      jsonMode,
		Color:     colorMode,
	}
}

// Printf prints formatted text to stdout.
func (f *Formatter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(f.Writer, format, args...)
}

// Println prints a line to stdout.
func (f *Formatter) Println(args ...interface{}) {
	fmt.Fprintln(f.Writer, args...)
}

// Errorf prints a formatted error message to stderr.
func (f *Formatter) Errorf(format string, args ...interface{}) {
	if f.Color {
		c := color.New(color.FgRed)
		c.Fprintf(f.ErrWriter, format, args...)
	} else {
		fmt.Fprintf(f.ErrWriter, format, args...)
	}
}

// PrintJSON outputs a value as JSON.
func (f *Formatter) PrintJSON(v interface{}) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintPath prints a single path result.
func (f *Formatter) PrintPath(path string) {
	if f.JSON {
		f.PrintJSON(map[string]string{"path": path})
		return
	}
	fmt.Fprintln(f.Writer, path)
}

// PrintComponents prints a component sequence, one element per line. Elements
// are quoted so the empty root marker stays visible.
func (f *Formatter) PrintComponents(components []string) {
	if f.JSON {
		if components == nil {
			components = []string{}
		}
		f.PrintJSON(components)
		return
	}
	for _, c := range components {
		fmt.Fprintf(f.Writer, "%q\n", c)
	}
}

// PrintComparison prints the three-way comparison outcome.
func (f *Formatter) PrintComparison(path1, path2 string, result int) {
	var word string
	switch {
	case result < 0:
		word = "less"
	case result > 0:
		word = "greater"
	default:
		word = "equal"
	}

	if f.JSON {
		f.PrintJSON(map[string]interface{}{
			"path1":  path1,
			"path2":  path2,
			"result": result,
			"order":  word,
		})
		return
	}

	if f.Color && result == 0 {
		word = color.New(color.FgGreen).Sprint(word)
	}
	fmt.Fprintln(f.Writer, word)
}

// PrintBool prints a boolean result (exists checks).
func (f *Formatter) PrintBool(v bool) {
	if f.JSON {
		f.PrintJSON(map[string]bool{"result": v})
		return
	}
	fmt.Fprintln(f.Writer, v)
}

// FormatDirName formats a directory name with color.
func (f *Formatter) FormatDirName(name string) string {
	if f.Color {
		return color.New(color.FgBlue, color.Bold).Sprint(name)
	}
	return name
}

// FormatSymlinkName formats a symlink name with color.
func (f *Formatter) FormatSymlinkName(name string) string {
	if f.Color {
		return color.New(color.FgCyan).Sprint(name)
	}
	return name
}

func entryType(info *fsops.Info) string {
	switch {
	case info.IsDir():
		return "dir"
	case info.IsSymlink():
		return "symlink"
	default:
		return "file"
	}
}

// PrintStat prints entry metadata.
func (f *Formatter) PrintStat(info *fsops.Info) {
	if f.JSON {
		result := map[string]interface{}{
			"path":  info.Path,
			"type":  entryType(info),
			"mode":  info.Mode.String(),
			"size":  info.Size,
			"mtime": info.ModTime.Unix(),
		}
		if info.LinkTarget != "" {
			result["link_target"] = info.LinkTarget
		}
		f.PrintJSON(result)
		return
	}

	name := info.Path
	switch {
	case info.IsDir():
		name = f.FormatDirName(name)
	case info.IsSymlink():
		name = f.FormatSymlinkName(name)
	}

	fmt.Fprintf(f.Writer, "  File: %s\n", name)
	fmt.Fprintf(f.Writer, "  Type: %s\n", entryType(info))
	fmt.Fprintf(f.Writer, "  Mode: %s\n", info.Mode)
	fmt.Fprintf(f.Writer, "  Size: %d (%s)\n", info.Size, humanize.IBytes(uint64(info.Size)))
	fmt.Fprintf(f.Writer, " MTime: %s (%s)\n",
		info.ModTime.Format("2006-01-02 15:04:05"), humanize.Time(info.ModTime))
	if info.LinkTarget != "" {
		fmt.Fprintf(f.Writer, "  Link: %s\n", info.LinkTarget)
	}
}
