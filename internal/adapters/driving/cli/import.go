package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maele-app/maele-cli/internal/core/ports/driving"
)

var importStrict bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Bulk-import proverbs from a JSON file",
	Long: `Import reads a JSON array of proverb objects (text, meaning,
translation, category) and adds each one unless a proverb with the same
text already exists. The comparison trims whitespace and ignores case.

Candidates with empty text are skipped silently. By default the duplicate
check only considers proverbs that existed before the run; pass --strict
to also reject duplicates within the batch itself.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := importService.ImportFile(cmd.Context(), args[0], driving.ImportOptions{
			CatchBatchDuplicates: importStrict,
		})
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		cmd.Printf("Import complete: %d new proverb(s) added.\n", report.Admitted)
		if report.SkippedDuplicate > 0 {
			cmd.Printf("Skipped %d duplicate(s).\n", report.SkippedDuplicate)
		}
		if report.SkippedEmpty > 0 {
			cmd.Printf("Skipped %d record(s) with empty text.\n", report.SkippedEmpty)
		}
		if report.Failed > 0 {
			cmd.Printf("Failed to add %d record(s); re-run with --verbose for details.\n", report.Failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importStrict, "strict", false, "also reject duplicates within the batch")
}
