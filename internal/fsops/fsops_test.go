package fsops

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDirName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/bin", "/usr"},
		{"/usr/bin/", "/usr"},
		{"/usr", "/"},
		{"/", "/"},
		{"a/b", "a"},
		{"a", "."},
		{"", "."},
		{"..", "."},
		{"a//b", "a"},
	}

	for _, tt := range tests {
		if got := DirName(tt.path); got != tt.want {
			t.Errorf("DirName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/bin", "bin"},
		{"/usr/bin/", "bin"},
		{"/", "/"},
		{"a/b", "b"},
		{"a", "a"},
		{"", "."},
		{"..", ".."},
	}

	for _, tt := range tests {
		if got := BaseName(tt.path); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if !Exists(file, true) {
		t.Errorf("Exists(%q, true) = false, want true", file)
	}
	if !Exists(file, false) {
		t.Errorf("Exists(%q, false) = false, want true", file)
	}

	missing := filepath.Join(dir, "missing")
	if Exists(missing, true) {
		t.Errorf("Exists(%q, true) = true, want false", missing)
	}

	// A dangling symlink exists only when the link itself counts.
	dangling := filepath.Join(dir, "dangling")
	if err := os.Symlink(missing, dangling); err != nil {
		t.Skipf("symlink: %v", err)
	}
	if Exists(dangling, true) {
		t.Errorf("Exists(%q, true) = true, want false for dangling symlink", dangling)
	}
	if !Exists(dangling, false) {
		t.Errorf("Exists(%q, false) = false, want true for dangling symlink", dangling)
	}
}

func TestReadLink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	if err := os.Symlink("/usr/bin", link); err != nil {
		t.Skipf("symlink: %v", err)
	}

	target, err := ReadLink(link)
	if err != nil {
		t.Fatalf("ReadLink(%q): %v", link, err)
	}
	if target != "/usr/bin" {
		t.Errorf("ReadLink(%q) = %q, want %q", link, target, "/usr/bin")
	}

	if _, err := ReadLink(filepath.Join(dir, "nolink")); err == nil {
		t.Error("ReadLink on missing path did not fail")
	}
}

func TestWaitForPath(t *testing.T) {
	dir := t.TempDir()

	// Already present: returns immediately.
	if err := WaitForPath(context.Background(), dir, time.Second); err != nil {
		t.Errorf("WaitForPath on existing path: %v", err)
	}

	// Never appears: times out.
	missing := filepath.Join(dir, "missing")
	err := WaitForPath(context.Background(), missing, 50*time.Millisecond)
	if !errors.Is(err, ErrWaitTimeout) {
		t.Errorf("WaitForPath on missing path: err = %v, want ErrWaitTimeout", err)
	}

	// Appears while waiting.
	late := filepath.Join(dir, "late")
	done := make(chan error, 1)
	go func() {
		done <- WaitForPath(context.Background(), late, 2*time.Second)
	}()
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(late, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := <-done; err != nil {
		t.Errorf("WaitForPath on late-created path: %v", err)
	}

	// Canceled context wins over the timeout.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := WaitForPath(ctx, missing, time.Second); !errors.Is(err, context.Canceled) {
		t.Errorf("WaitForPath with canceled ctx: err = %v, want context.Canceled", err)
	}
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	info, err := Stat(file)
	if err != nil {
		t.Fatalf("Stat(%q): %v", file, err)
	}
	if info.Size != 5 {
		t.Errorf("Stat size = %d, want 5", info.Size)
	}
	if info.IsDir() || info.IsSymlink() {
		t.Errorf("Stat on regular file reports dir=%v symlink=%v", info.IsDir(), info.IsSymlink())
	}

	dirInfo, err := Stat(dir)
	if err != nil {
		t.Fatalf("Stat(%q): %v", dir, err)
	}
	if !dirInfo.IsDir() {
		t.Error("Stat on directory: IsDir() = false")
	}

	link := filepath.Join(dir, "link")
	if err := os.Symlink(file, link); err != nil {
		t.Skipf("symlink: %v", err)
	}
	linkInfo, err := Stat(link)
	if err != nil {
		t.Fatalf("Stat(%q): %v", link, err)
	}
	if !linkInfo.IsSymlink() {
		t.Error("Stat on symlink: IsSymlink() = false")
	}
	if linkInfo.LinkTarget != file {
		t.Errorf("Stat link target = %q, want %q", linkInfo.LinkTarget, file)
	}
}
