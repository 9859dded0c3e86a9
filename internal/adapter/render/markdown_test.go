package render

import (
	"strings"
	"testing"

	"overview/internal/adapter/tree"
	"overview/internal/domain"
)

func TestWriteTreeBlock(t *testing.T) {
	var sb strings.Builder
	m := NewMarkdown(tree.NewRenderer(), "auto", "Directory tree:")

	entries := []domain.FileEntry{{RelPath: "a.txt"}}
	if err := m.WriteTreeBlock(&sb, "src", entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := sb.String()
	if !strings.HasPrefix(out, "Directory tree:\n```\n") {
		t.Errorf("missing header and opening fence: %q", out)
	}
	if !strings.Contains(out, "src\n") {
		t.Errorf("missing root line: %q", out)
	}
	if !strings.Contains(out, "└── a.txt\n") {
		t.Errorf("missing entry line: %q", out)
	}
	if !strings.HasSuffix(out, "```\n\n\n") {
		t.Errorf("missing closing fence and separator: %q", out)
	}
	if strings.Count(out, "```") != 2 {
		t.Errorf("expected exactly one fence pair, got %d markers", strings.Count(out, "```"))
	}
}

func TestDumpFile_Framing(t *testing.T) {
	var sb strings.Builder
	m := NewMarkdown(tree.NewRenderer(), "auto", "Directory tree:")

	n, err := m.DumpFile(&sb, "src/main.go", "package main\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "src/main.go:\n```go\npackage main\n```\n\n"
	if sb.String() != expected {
		t.Errorf("got %q, want %q", sb.String(), expected)
	}
	if n != int64(len(expected)) {
		t.Errorf("expected %d bytes written, got %d", len(expected), n)
	}
}

func TestDumpFile_RoundTrip(t *testing.T) {
	content := "fn main() {\n    println!(\"hi\");\n}\n"

	var sb strings.Builder
	m := NewMarkdown(tree.NewRenderer(), "rust", "Directory tree:")
	if _, err := m.DumpFile(&sb, "src/main.rs", content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := sb.String()
	start := strings.Index(out, "```rust\n") + len("```rust\n")
	end := strings.LastIndex(out, "```\n")
	if out[start:end] != content {
		t.Errorf("fenced content not byte-identical:\n%q\nwant:\n%q", out[start:end], content)
	}
}

func TestDumpFile_NoTrailingNewline(t *testing.T) {
	var sb strings.Builder
	m := NewMarkdown(tree.NewRenderer(), "auto", "Directory tree:")

	if _, err := m.DumpFile(&sb, "src/note.txt", "no newline"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "no newline\n```\n") {
		t.Errorf("closing fence must start its own line: %q", sb.String())
	}
}

func TestDumpFile_FixedTag(t *testing.T) {
	var sb strings.Builder
	m := NewMarkdown(tree.NewRenderer(), "rust", "Directory tree:")

	if _, err := m.DumpFile(&sb, "src/utils.py", "x = 1\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "```rust\n") {
		t.Errorf("fixed tag not applied: %q", sb.String())
	}
}

func TestLanguageTag(t *testing.T) {
	cases := map[string]string{
		"src/main.rs":  "rust",
		"pkg/db.go":    "go",
		"scripts/x.py": "python",
		"README.md":    "markdown",
		"data.bin":     "",
	}
	for p, want := range cases {
		if got := LanguageTag(p); got != want {
			t.Errorf("LanguageTag(%s) = %q, want %q", p, got, want)
		}
	}
}
