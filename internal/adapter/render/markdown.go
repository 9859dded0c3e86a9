package render

import (
	"fmt"
	"io"
	"path"
	"strings"

	"overview/internal/domain"
	"overview/internal/port"
)

const fence = "```"

// Markdown writes the overview document: a fenced directory tree followed
// by one fenced code block per file.
type Markdown struct {
	tree     port.TreeRenderer
	fenceTag string
	header   string
}

func NewMarkdown(tree port.TreeRenderer, fenceTag, header string) *Markdown {
	return &Markdown{
		tree:     tree,
		fenceTag: fenceTag,
		header:   header,
	}
}

// WriteTreeBlock writes the header line and the tree bounded by its fence
// pair. It appears exactly once, before any file dump.
func (m *Markdown) WriteTreeBlock(w io.Writer, root string, entries []domain.FileEntry) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", m.header, fence); err != nil {
		return err
	}
	if err := m.tree.Render(w, root, entries); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n\n\n", fence)
	return err
}

// DumpFile writes one file's path header and its content between fence
// markers. Content is written verbatim; a newline is appended only when
// the file does not end with one, so the closing fence starts a line.
func (m *Markdown) DumpFile(w io.Writer, displayPath, content string) (int64, error) {
	tag := m.fenceTag
	if tag == "auto" {
		tag = LanguageTag(displayPath)
	}

	var written int64
	n, err := fmt.Fprintf(w, "%s:\n%s%s\n", displayPath, fence, tag)
	written += int64(n)
	if err != nil {
		return written, err
	}

	n, err = io.WriteString(w, content)
	written += int64(n)
	if err != nil {
		return written, err
	}
	if !strings.HasSuffix(content, "\n") {
		n, err = io.WriteString(w, "\n")
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	n, err = fmt.Fprintf(w, "%s\n\n", fence)
	written += int64(n)
	return written, err
}

// LanguageTag maps a file extension to a fence language tag. Unknown
// extensions produce an untagged fence.
func LanguageTag(p string) string {
	ext := strings.ToLower(path.Ext(p))
	switch ext {
	case ".go":
		return "go"
	case ".rs":
		return "rust"
	case ".py":
		return "python"
	case ".js", ".mjs":
		return "javascript"
	case ".ts":
		return "typescript"
	case ".c", ".h":
		return "c"
	case ".cpp", ".cc", ".hpp":
		return "cpp"
	case ".java":
		return "java"
	case ".rb":
		return "ruby"
	case ".sh", ".bash":
		return "bash"
	case ".md":
		return "markdown"
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	case ".html":
		return "html"
	case ".css":
		return "css"
	case ".sql":
		return "sql"
	case ".proto":
		return "proto"
	default:
		return ""
	}
}
