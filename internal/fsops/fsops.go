// Package fsops holds the filesystem-facing collaborators of the path core:
// thin wrappers over os calls (cwd, readlink, stat) plus the lexical
// dirname/basename helpers built on the core split/join.
package fsops

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/agueijo/pathkit/internal/pathutil"
)

// ErrWaitTimeout is returned by WaitForPath when the path does not appear
// before the timeout elapses.
var ErrWaitTimeout = errors.New("timed out waiting for path")

const waitPollInterval = 10 * time.Millisecond

// Cwd returns the current working directory of the process.
func Cwd() (string, error) {
	return os.Getwd()
}

// DirName returns the directory portion of a path, with POSIX dirname
// semantics: DirName("/usr/bin") is "/usr", DirName("a") is ".", DirName("/")
// is "/". Purely lexical; "." segments and redundant separators are dropped
// by the underlying split.
func DirName(path string) string {
	components := pathutil.Split(path)
	switch len(components) {
	case 0:
		return "."
	case 1:
		if components[0] == "" {
			return "/"
		}
		return "."
	default:
		return pathutil.Join(components[:len(components)-1])
	}
}

// BaseName returns the final component of a path, with POSIX basename
// semantics: BaseName("/usr/bin") is "bin", BaseName("a/b/") is "b",
// BaseName("/") is "/". Purely lexical.
func BaseName(path string) string {
	components := pathutil.Split(path)
	if len(components) == 0 {
		return "."
	}
	last := components[len(components)-1]
	if last == "" {
		return "/"
	}
	return last
}

// ReadLink returns the target of a symbolic link.
func ReadLink(path string) (string, error) {
	return os.Readlink(path)
}

// Exists reports whether a filesystem entry exists at path. With
// followSymlinks a dangling symlink does not exist; without it the link
// itself counts.
func Exists(path string, followSymlinks bool) bool {
	var err error
	if followSymlinks {
		_, err = os.Stat(path)
	} else {
		_, err = os.Lstat(path)
	}
	return err == nil
}

// WaitForPath polls every 10ms until a filesystem entry appears at path, the
// timeout elapses, or ctx is canceled.
func WaitForPath(ctx context.Context, path string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(waitPollInterval)
	defer ticker.Stop()

	for {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
		if !time.Now().Before(deadline) {
			return fmt.Errorf("%s: %w", path, ErrWaitTimeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Info holds the metadata the stat command displays.
type Info struct {
	Path       string
	Size       int64
	Mode       fs.FileMode
	ModTime    time.Time
	LinkTarget string
}

// IsDir reports whether the entry is a directory.
func (i *Info) IsDir() bool {
	return i.Mode.IsDir()
}

// IsSymlink reports whether the entry is a symbolic link.
func (i *Info) IsSymlink() bool {
	return i.Mode&fs.ModeSymlink != 0
}

// Stat returns metadata for the entry at path without following a final
// symlink. For symlinks the link target is included when readable.
func Stat(path string) (*Info, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Path:    path,
		Size:    fi.Size(),
		Mode:    fi.Mode(),
		ModTime: fi.ModTime(),
	}
	if info.IsSymlink() {
		if target, err := os.Readlink(path); err == nil {
			info.LinkTarget = target
		}
	}
	return info, nil
}
