package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "javacorpus",
	Short: "Extract method-level text corpora from Java source trees",
	Long: `javacorpus walks a tree of Java source files, extracts one flat text
record per method (declaration, class comment, method comment, body) and
writes the records to a CSV file or spreadsheet for downstream corpus use.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
