package matcher_test

import (
	"errors"
	"testing"

	"github.com/mydehq/r3name/internal/matcher"
	"github.com/mydehq/r3name/internal/types"
)

func TestCompile_Invalid(t *testing.T) {
	for _, expr := range []string{"(", "[a-", `\`, "a{2,1}"} {
		_, err := matcher.Compile(expr)
		if err == nil {
			t.Errorf("Compile(%q) succeeded; want error", expr)
			continue
		}
		var invalid types.ErrInvalidPattern
		if !errors.As(err, &invalid) {
			t.Errorf("Compile(%q) error = %T; want ErrInvalidPattern", expr, err)
		} else if invalid.Pattern != expr {
			t.Errorf("ErrInvalidPattern.Pattern = %q; want %q", invalid.Pattern, expr)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"Anchored Extension", `^(.*)\.jpeg$`, "photo.jpeg", true},
		{"Anchored Miss", `^(.*)\.jpeg$`, "notes.txt", false},
		{"Substring", `draft`, "docs/draft.md", true},
		{"Directory Component", `^old/`, "old/file.txt", true},
		{"Empty Pattern", ``, "anything", true},
		{"Case Sensitive", `JPEG`, "photo.jpeg", false},
		{"Case Insensitive Flag", `(?i)JPEG`, "photo.jpeg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := matcher.MustCompile(tt.pattern)
			if got := p.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) = %v; want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestReplaceFirst(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		replacement string
		path        string
		want        string
	}{
		{
			name:        "Numbered Group",
			pattern:     `^(.*)\.jpeg$`,
			replacement: "$1.jpg",
			path:        "photo.jpeg",
			want:        "photo.jpg",
		},
		{
			name:        "Braced Group",
			pattern:     `(\d+)`,
			replacement: "${1}x",
			path:        "ep01.mkv",
			want:        "ep01x.mkv",
		},
		{
			name:        "Unbraced Group Swallows Suffix",
			pattern:     `(\d+)`,
			replacement: "$1x",
			path:        "ep01.mkv",
			want:        "ep.mkv",
		},
		{
			name:        "Named Group",
			pattern:     `(?P<stem>\w+)\.md$`,
			replacement: "${stem}.txt",
			path:        "notes/draft.md",
			want:        "notes/draft.txt",
		},
		{
			name:        "First Match Only",
			pattern:     `a`,
			replacement: "b",
			path:        "banana",
			want:        "bbnana",
		},
		{
			name:        "Literal Dollar",
			pattern:     `price`,
			replacement: "$$5",
			path:        "price.txt",
			want:        "$5.txt",
		},
		{
			name:        "Empty Replacement",
			pattern:     `_draft`,
			replacement: "",
			path:        "essay_draft.md",
			want:        "essay.md",
		},
		{
			name:        "Matches Directory",
			pattern:     `^old/`,
			replacement: "new/",
			path:        "old/old/file.txt",
			want:        "new/old/file.txt",
		},
		{
			name:        "No Match Unchanged",
			pattern:     `zzz`,
			replacement: "y",
			path:        "file.txt",
			want:        "file.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := matcher.MustCompile(tt.pattern)
			if got := p.ReplaceFirst(tt.path, tt.replacement); got != tt.want {
				t.Errorf("ReplaceFirst(%q, %q) = %q; want %q", tt.path, tt.replacement, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	expr := `^(.*)\.jpeg$`
	if got := matcher.MustCompile(expr).String(); got != expr {
		t.Errorf("String() = %q; want %q", got, expr)
	}
}
