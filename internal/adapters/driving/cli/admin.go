package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/maele-app/maele-cli/internal/core/domain"
)

var (
	adminPassword string

	proverbText        string
	proverbMeaning     string
	proverbTranslation string
	proverbCategory    string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the proverb collection (password required)",
	Long: `Admin commands add, edit and delete proverbs. They require the admin
password from the secrets file, supplied via --password or an interactive
prompt.`,
}

var adminAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new proverb",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := authenticate(cmd); err != nil {
			return err
		}

		p, err := adminService.Add(cmd.Context(), domain.Input{
			Text:        proverbText,
			Meaning:     proverbMeaning,
			Translation: proverbTranslation,
			Category:    proverbCategory,
		})
		if err != nil {
			return fmt.Errorf("adding proverb: %w", err)
		}

		cmd.Println("Proverb added.")
		printProverb(cmd, p)
		return nil
	},
}

var adminEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Overwrite an existing proverb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authenticate(cmd); err != nil {
			return err
		}

		p, err := adminService.Update(cmd.Context(), args[0], domain.Input{
			Text:        proverbText,
			Meaning:     proverbMeaning,
			Translation: proverbTranslation,
			Category:    proverbCategory,
		})
		if err != nil {
			return fmt.Errorf("updating proverb %s: %w", args[0], err)
		}

		cmd.Println("Proverb updated.")
		printProverb(cmd, p)
		return nil
	},
}

var adminDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a proverb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authenticate(cmd); err != nil {
			return err
		}

		if err := adminService.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("deleting proverb %s: %w", args[0], err)
		}

		cmd.Println("Proverb deleted.")
		return nil
	},
}

// authenticate resolves the admin password from --password or an
// interactive no-echo prompt, then checks it against the secrets file.
func authenticate(cmd *cobra.Command) error {
	password := adminPassword
	if password == "" {
		p, err := promptPassword(cmd)
		if err != nil {
			return err
		}
		password = p
	}
	return adminService.Authenticate(password)
}

func promptPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no password supplied; use --password or run interactively")
	}

	cmd.Print("Admin password: ")
	raw, err := term.ReadPassword(fd)
	cmd.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}

func addProverbFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&proverbText, "text", "", "proverb text in Sesotho (required)")
	cmd.Flags().StringVar(&proverbMeaning, "meaning", "", "meaning in Sesotho (required)")
	cmd.Flags().StringVar(&proverbTranslation, "translation", "", "English translation")
	cmd.Flags().StringVar(&proverbCategory, "category", "", "category (default "+domain.DefaultCategory+")")
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminAddCmd)
	adminCmd.AddCommand(adminEditCmd)
	adminCmd.AddCommand(adminDeleteCmd)

	adminCmd.PersistentFlags().StringVar(&adminPassword, "password", "", "admin password (prompted if omitted)")
	addProverbFlags(adminAddCmd)
	addProverbFlags(adminEditCmd)
}
