package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"overview/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	dirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "overview",
	Short: "Project overview generator - directory tree plus full file dump",
	Long: `overview walks a source directory, prints a visual tree of its
structure, then dumps every file's content as a fenced code block. The
result is a single document suitable for project documentation or LLM
context.

Example usage:
  overview                      # Tree + dump of ./src to stdout
  overview generate lib -o overview.md
  overview tree                 # Tree block only
  overview status               # What changed since the last snapshot`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		rootDir = dirFlag
		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
	// Bare invocation performs the default generate run.
	RunE: runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./overview.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "project directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// scanRoot resolves the directory to scan: positional argument first,
// then the configured root. Relative paths stay relative so dumped file
// headers match what the user typed, unless --dir relocates the project.
func scanRoot(args []string) string {
	root := cfg.Scan.Root
	if len(args) > 0 {
		root = args[0]
	}
	if dirFlag != "" && !filepath.IsAbs(root) {
		root = filepath.Join(dirFlag, root)
	}
	return root
}
