package cli

import (
	"github.com/spf13/cobra"

	"github.com/codemill/javacorpus/internal/output"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <dir>",
	Short: "Convert every spreadsheet in a directory to CSV",
	Long: `Convert reads every .xlsx file in the given directory and writes a CSV
file of the same base name into a csv subdirectory. Files that fail to
convert are reported and the remaining files are still attempted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.ConvertDir(args[0])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
