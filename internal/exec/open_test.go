package exec

import (
	"testing"

	"github.com/lanternhq/lantern/internal/tracker"
)

func TestExpandTemplate(t *testing.T) {
	issue := &tracker.Issue{
		Number: 42,
		URL:    "https://github.com/acme/widget/issues/42",
	}

	tests := []struct {
		name    string
		command string
		want    string
	}{
		{
			name:    "url variable",
			command: "open {url}",
			want:    "open https://github.com/acme/widget/issues/42",
		},
		{
			name:    "number and repo variables",
			command: "gh issue view {number} --repo {repo} --web",
			want:    "gh issue view 42 --repo acme/widget --web",
		},
		{
			name:    "no variables",
			command: "true",
			want:    "true",
		},
		{
			name:    "repeated variable",
			command: "echo {number} {number}",
			want:    "echo 42 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandTemplate(tt.command, issue, "acme/widget")
			if got != tt.want {
				t.Errorf("expandTemplate(%q) = %q, want %q", tt.command, got, tt.want)
			}
		})
	}
}

func TestOpenDetachedUsesDefaultForEmptyCommand(t *testing.T) {
	got := expandTemplate(DefaultOpenCommand, &tracker.Issue{Number: 7}, "acme/widget")
	want := "gh issue view 7 --repo acme/widget --web"
	if got != want {
		t.Errorf("Default command expanded to %q, want %q", got, want)
	}
}
