package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"overview/config"
	"overview/internal/adapter/fs"
	"overview/internal/adapter/store"
	"overview/internal/usecase"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [path]",
	Short: "Record the current state of the source tree",
	Long: `Hash every file under the given directory and store the result in
.overview/snapshot.db, so 'overview status' can report what changed.

Examples:
  overview snapshot
  overview snapshot lib`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	root := scanRoot(args)
	projectDir := GetRootDir()

	if err := config.EnsureStateDir(projectDir); err != nil {
		return fmt.Errorf("failed to create .overview directory: %w", err)
	}

	dbPath := config.SnapshotDBPath(projectDir)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}
	defer st.Close()

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	snapshotUC := usecase.NewSnapshotUseCase(st, walker)

	count, err := snapshotUC.Snapshot(root)
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}

	fmt.Printf("Snapshot complete:\n")
	fmt.Printf("  Files recorded: %d\n", count)
	fmt.Printf("\nSnapshot stored at: %s\n", dbPath)
	return nil
}
