package cli

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("/work/project", false)
	if got != "pathkit:/work/project> " {
		t.Errorf("BuildPrompt = %q", got)
	}

	colored := BuildPrompt("/work/project", true)
	if !strings.Contains(colored, "pathkit:/work/project>") {
		t.Errorf("colored prompt missing path: %q", colored)
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/short", "/short"},
		{"/a/very/long/deeply/nested/path", "/.../nested/path"},
		{"/components/are/individually-very-long-here", "/.../individually-very-long-here"},
	}

	for _, tt := range tests {
		if got := truncatePath(tt.path, maxPromptPathLen); got != tt.want {
			t.Errorf("truncatePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
