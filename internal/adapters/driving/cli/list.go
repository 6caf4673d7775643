package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the whole proverb collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		proverbs, err := catalogService.All(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing proverbs: %w", err)
		}

		if listJSON {
			return printJSON(cmd, proverbs)
		}

		if len(proverbs) == 0 {
			cmd.Println("The collection is empty.")
			return nil
		}

		cmd.Printf("%d proverb(s):\n\n", len(proverbs))
		for _, p := range proverbs {
			printProverb(cmd, p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}
