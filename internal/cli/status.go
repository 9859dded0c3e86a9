package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"overview/config"
	"overview/internal/adapter/fs"
	"overview/internal/adapter/store"
	"overview/internal/usecase"
)

var statusCmd = &cobra.Command{
	Use:   "status [path]",
	Short: "Show what changed since the last snapshot",
	Long: `Compare the current source tree against the last recorded snapshot
and list added, modified, and deleted files.

Examples:
  overview status
  overview status lib`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	root := scanRoot(args)
	projectDir := GetRootDir()

	dbPath := config.SnapshotDBPath(projectDir)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no snapshot found. Run 'overview snapshot' first")
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}
	defer st.Close()

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	snapshotUC := usecase.NewSnapshotUseCase(st, walker)

	diff, err := snapshotUC.Diff(root)
	if err != nil {
		return fmt.Errorf("diff failed: %w", err)
	}

	if at, err := st.GeneratedAt(); err == nil && !at.IsZero() {
		fmt.Printf("Last snapshot: %s\n\n", at.Local().Format("2006-01-02 15:04:05"))
	}

	if diff.Empty() {
		fmt.Printf("No changes (%d files unchanged).\n", diff.Unchanged)
		return nil
	}

	for _, p := range diff.Added {
		fmt.Printf("  added:    %s\n", p)
	}
	for _, p := range diff.Modified {
		fmt.Printf("  modified: %s\n", p)
	}
	for _, p := range diff.Deleted {
		fmt.Printf("  deleted:  %s\n", p)
	}
	fmt.Printf("\n%d added, %d modified, %d deleted, %d unchanged\n",
		len(diff.Added), len(diff.Modified), len(diff.Deleted), diff.Unchanged)

	return nil
}
