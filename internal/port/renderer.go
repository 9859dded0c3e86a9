package port

import (
	"io"

	"overview/internal/domain"
)

// TreeRenderer renders a visual listing of the walked directory structure.
type TreeRenderer interface {
	Render(w io.Writer, root string, entries []domain.FileEntry) error
}

// Dumper writes one file's content as a fenced block.
type Dumper interface {
	DumpFile(w io.Writer, relPath, content string) (int64, error)
	WriteTreeBlock(w io.Writer, root string, entries []domain.FileEntry) error
}
