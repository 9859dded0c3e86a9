package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"overview/config"
	"overview/internal/adapter/fs"
	"overview/internal/adapter/render"
	"overview/internal/adapter/store"
	"overview/internal/adapter/tree"
	"overview/internal/usecase"
)

var (
	generateOutput     string
	generateTag        string
	generateSkipBinary bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate the overview document",
	Long: `Walk the given directory (default: the configured root, "src"),
print its tree, then dump every file as a fenced code block.

Examples:
  overview generate                   # Dump ./src to stdout
  overview generate lib -o context.md # Dump ./lib to a file
  overview generate --tag rust        # Force a fixed fence tag`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file (default: stdout)")
	generateCmd.Flags().StringVarP(&generateTag, "tag", "t", "", "fence language tag: 'auto' or a literal tag (default from config)")
	generateCmd.Flags().BoolVar(&generateSkipBinary, "skip-binary", false, "skip binary files instead of aborting")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	root := scanRoot(args)

	fenceTag := cfg.Render.FenceTag
	if generateTag != "" {
		fenceTag = generateTag
	}

	binary := cfg.Render.Binary
	if generateSkipBinary {
		binary = config.BinarySkip
	}

	output := cfg.Render.Output
	if generateOutput != "" {
		output = generateOutput
	}

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes)
	dumper := render.NewMarkdown(tree.NewRenderer(), fenceTag, cfg.Render.Header)
	overviewUC := usecase.NewOverviewUseCase(walker, dumper, binary)

	var w io.Writer = os.Stdout
	var progress usecase.ProgressFunc

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
		progress = newProgressBar()
	}

	report, err := overviewUC.Generate(root, w, progress)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if cfg.Snapshot.Enabled {
		if err := recordSnapshot(root, walker); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: snapshot update failed: %v\n", err)
		}
	}

	if output != "" {
		fmt.Printf("\nOverview written to: %s\n", output)
		fmt.Printf("  Files dumped:   %d\n", report.FilesDumped)
		fmt.Printf("  Bytes written:  %d\n", report.BytesWritten)
		if report.Skipped > 0 {
			fmt.Printf("  Files skipped:  %d\n", report.Skipped)
		}
		if len(report.Notes) > 0 {
			fmt.Printf("\nWarnings:\n")
			for _, n := range report.Notes {
				fmt.Printf("  - %s\n", n)
			}
		}
	} else if len(report.Notes) > 0 && cfg.Logging.Verbose {
		for _, n := range report.Notes {
			fmt.Fprintf(os.Stderr, "%s\n", n)
		}
	}

	return nil
}

// newProgressBar returns a progress callback that lazily builds the bar
// once the file total is known.
func newProgressBar() usecase.ProgressFunc {
	var bar *progressbar.ProgressBar
	var mu sync.Mutex
	var initialized bool

	return func(processed, total int, currentFile string) {
		mu.Lock()
		defer mu.Unlock()

		if !initialized {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Dumping[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
			initialized = true
		}

		bar.Set(processed)
	}
}

func recordSnapshot(root string, walker *fs.Walker) error {
	projectDir := GetRootDir()
	if err := config.EnsureStateDir(projectDir); err != nil {
		return err
	}

	st, err := store.NewBoltStore(config.SnapshotDBPath(projectDir))
	if err != nil {
		return err
	}
	defer st.Close()

	snapshotUC := usecase.NewSnapshotUseCase(st, walker)
	_, err = snapshotUC.Snapshot(root)
	return err
}
