package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/codemill/javacorpus/internal/config"
	"github.com/codemill/javacorpus/internal/output"
	"github.com/codemill/javacorpus/internal/walker"
)

var (
	outputFlag       string
	formatFlag       string
	excludeDirsFlag  []string
	excludeFilesFlag []string
	ignoreFlag       []string
	quietFlag        bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [root]",
	Short: "Extract method records from a Java source tree",
	Long: `Extract walks the given root directory (default: current directory),
parses every matching Java file and writes one corpus record per method
declared inside a class or interface.

Configuration is read from <root>/.javacorpus/config.yml when present;
flags override the file, and JAVACORPUS_* environment variables override
both.

Examples:
  # Extract the current directory to java-code.csv
  javacorpus extract

  # Extract a module to a spreadsheet
  javacorpus extract ./lt-tran --output lt-tran-java-code --format excel

  # Additional exclusions
  javacorpus extract . --exclude-dir generated --exclude-file Stub.java
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output path stem (extension is appended per format)")
	extractCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format: csv or excel")
	extractCmd.Flags().StringSliceVar(&excludeDirsFlag, "exclude-dir", nil, "directory name to prune from the walk (repeatable)")
	extractCmd.Flags().StringSliceVar(&excludeFilesFlag, "exclude-file", nil, "file name to skip (repeatable)")
	extractCmd.Flags().StringSliceVar(&ignoreFlag, "ignore", nil, "glob pattern to ignore, relative to root (repeatable)")
	extractCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress bars and non-error output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling extraction...")
		cancel()
	}()

	rootDir := "."
	if len(args) == 1 {
		rootDir = args[0]
	}

	cfg, err := config.NewLoader(rootDir).Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	w, err := walker.New(walker.Options{
		Root:           rootDir,
		Extension:      cfg.Filter.Extension,
		ExcludeDirs:    cfg.Filter.ExcludeDirs,
		ExcludeFiles:   cfg.Filter.ExcludeFiles,
		IgnorePatterns: cfg.Filter.Ignore,
	})
	if err != nil {
		return fmt.Errorf("failed to create walker: %w", err)
	}
	w.SetProgress(NewCLIProgressReporter(quietFlag))

	res, err := w.Run(ctx)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	path, err := output.Write(cfg.Output.Format, cfg.Output.Stem, res.Blocks)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !quietFlag {
		log.Printf("Extracted %d methods from %d files (%d skipped) -> %s\n",
			len(res.Records), res.FilesVisited, res.FilesFailed, path)
		if len(res.Diagnostics) > 0 {
			log.Printf("%d diagnostics recorded\n", len(res.Diagnostics))
		}
	}
	return nil
}

// applyFlags overlays changed command-line flags on the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("output") {
		cfg.Output.Stem = outputFlag
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = formatFlag
	}
	if cmd.Flags().Changed("exclude-dir") {
		cfg.Filter.ExcludeDirs = append(cfg.Filter.ExcludeDirs, excludeDirsFlag...)
	}
	if cmd.Flags().Changed("exclude-file") {
		cfg.Filter.ExcludeFiles = append(cfg.Filter.ExcludeFiles, excludeFilesFlag...)
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Filter.Ignore = append(cfg.Filter.Ignore, ignoreFlag...)
	}
}
