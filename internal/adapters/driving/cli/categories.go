package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoryJSON bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		categories, err := catalogService.Categories(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing categories: %w", err)
		}

		for _, c := range categories {
			cmd.Println(c)
		}
		return nil
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category [name]",
	Short: "List proverbs in a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proverbs, err := catalogService.ByCategory(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("listing category %q: %w", args[0], err)
		}

		if categoryJSON {
			return printJSON(cmd, proverbs)
		}

		if len(proverbs) == 0 {
			cmd.Printf("No proverbs in category %q.\n", args[0])
			return nil
		}

		cmd.Printf("%d proverb(s) in %q:\n\n", len(proverbs), args[0])
		for _, p := range proverbs {
			printProverb(cmd, p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.Flags().BoolVar(&categoryJSON, "json", false, "output as JSON")
}
