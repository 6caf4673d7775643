package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maele-app/maele-cli/internal/core/domain"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random proverb",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := catalogService.Random(cmd.Context())
		if errors.Is(err, domain.ErrEmptyCollection) {
			cmd.Println("The collection is empty.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("picking a random proverb: %w", err)
		}

		printProverb(cmd, p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
}
