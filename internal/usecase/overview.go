package usecase

import (
	"fmt"
	"io"
	"path"
	"path/filepath"

	"overview/config"
	"overview/internal/adapter/fs"
	"overview/internal/domain"
	"overview/internal/port"
)

// ProgressFunc reports per-file progress during generation.
type ProgressFunc func(processed, total int, currentFile string)

// OverviewUseCase generates the overview document: directory tree first,
// then every file's content as a fenced block.
type OverviewUseCase struct {
	walker port.Walker
	dumper port.Dumper
	binary string
}

// NewOverviewUseCase creates a new overview use case.
func NewOverviewUseCase(walker port.Walker, dumper port.Dumper, binary string) *OverviewUseCase {
	return &OverviewUseCase{
		walker: walker,
		dumper: dumper,
		binary: binary,
	}
}

// Generate walks root, writes the tree block, then dumps each file in
// walk order. With binary mode "fail" the first unreadable or binary file
// aborts the run; output written so far is not rolled back.
func (u *OverviewUseCase) Generate(root string, w io.Writer, progress ProgressFunc) (*domain.Report, error) {
	report := &domain.Report{}

	entries, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	if err := u.dumper.WriteTreeBlock(w, root, entries); err != nil {
		return nil, fmt.Errorf("failed to render tree: %w", err)
	}

	displayRoot := filepath.ToSlash(filepath.Clean(root))

	for i, entry := range entries {
		if progress != nil {
			progress(i+1, len(entries), entry.RelPath)
		}

		content, err := fs.ReadFile(entry.Path)
		if err != nil {
			if u.binary == config.BinarySkip {
				report.Skipped++
				report.Notes = append(report.Notes, fmt.Sprintf("skipped %s: %v", entry.RelPath, err))
				continue
			}
			return report, fmt.Errorf("failed to read %s: %w", entry.RelPath, err)
		}

		if fs.IsBinary([]byte(content)) {
			if u.binary == config.BinarySkip {
				report.Skipped++
				report.Notes = append(report.Notes, fmt.Sprintf("skipped %s: binary content", entry.RelPath))
				continue
			}
			return report, fmt.Errorf("binary content in %s", entry.RelPath)
		}

		written, err := u.dumper.DumpFile(w, path.Join(displayRoot, entry.RelPath), content)
		report.BytesWritten += written
		if err != nil {
			return report, fmt.Errorf("failed to dump %s: %w", entry.RelPath, err)
		}
		report.FilesDumped++
	}

	return report, nil
}

// Tree writes only the fenced tree block for root.
func (u *OverviewUseCase) Tree(root string, w io.Writer) error {
	entries, err := u.walker.Walk(root)
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}
	return u.dumper.WriteTreeBlock(w, root, entries)
}
