package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maele-app/maele-cli/internal/core/domain"
)

var (
	searchMeanings bool
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search proverbs by keyword",
	Long: `Search matches the keyword case-insensitively against proverb text,
and by default against meanings as well. An empty keyword matches nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := catalogService.Search(cmd.Context(), args[0], domain.SearchOptions{
			InMeanings: searchMeanings,
		})
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if searchJSON {
			return printJSON(cmd, matches)
		}

		if len(matches) == 0 {
			cmd.Printf("No proverbs found for %q.\n", args[0])
			return nil
		}

		cmd.Printf("Found %d proverb(s):\n\n", len(matches))
		for _, p := range matches {
			printProverb(cmd, p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchMeanings, "meanings", true, "also match against meanings")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
}

// printJSON renders v as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}
