package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"overview/internal/adapter/fs"
	"overview/internal/adapter/render"
	"overview/internal/adapter/tree"
	"overview/internal/usecase"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Print only the directory tree block",
	Long: `Print the fenced directory tree for the given directory without
dumping any file contents.

Examples:
  overview tree
  overview tree lib`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	root := scanRoot(args)

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	dumper := render.NewMarkdown(tree.NewRenderer(), cfg.Render.FenceTag, cfg.Render.Header)
	overviewUC := usecase.NewOverviewUseCase(walker, dumper, cfg.Render.Binary)

	if err := overviewUC.Tree(root, os.Stdout); err != nil {
		return fmt.Errorf("tree rendering failed: %w", err)
	}
	return nil
}
