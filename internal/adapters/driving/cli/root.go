// Package cli implements the maele command-line interface.
// It is a driving adapter: commands talk to core services through the
// driving ports and decide how results and errors are rendered.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maele-app/maele-cli/internal/adapters/driven/config/file"
	"github.com/maele-app/maele-cli/internal/adapters/driven/storage/firestore"
	"github.com/maele-app/maele-cli/internal/adapters/driven/storage/memory"
	"github.com/maele-app/maele-cli/internal/core/domain"
	"github.com/maele-app/maele-cli/internal/core/ports/driving"
	"github.com/maele-app/maele-cli/internal/core/services"
	"github.com/maele-app/maele-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	configDir  string
	collection string
	demoMode   bool
)

// Services wired by initServices, or injected via SetServices in tests.
var (
	catalogService driving.CatalogService
	adminService   driving.AdminService
	importService  driving.ImportService
)

var rootCmd = &cobra.Command{
	Use:   "maele",
	Short: "Maele a Basotho - Basotho proverbs explorer",
	Long: `Maele is a browser and admin tool for a curated collection of
Basotho proverbs held in a remote Firestore collection.

Search by keyword, filter by category, pick a random proverb, or manage
the collection through the password-gated admin commands. The secrets
file (~/.maele/secrets.toml) carries the admin password and either an
inline [firebase] service-account mapping or the path to a key file.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.maele)")
	rootCmd.PersistentFlags().StringVar(&collection, "collection", "", "Firestore collection name (default proverbs)")
	rootCmd.PersistentFlags().BoolVar(&demoMode, "demo", false, "use an empty in-memory store instead of Firestore")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetServices injects core services, bypassing store construction.
// Used by tests and by embedders that wire their own store.
func SetServices(catalog driving.CatalogService, admin driving.AdminService, importer driving.ImportService) {
	catalogService = catalog
	adminService = admin
	importService = importer
}

// initServices builds the service graph from the secrets file and the
// Firestore store. A missing credential is fatal for every command that
// touches the store, so it surfaces here.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if catalogService != nil {
		return nil
	}

	// Commands that never touch the store.
	switch cmd.Name() {
	case "version", "help", "completion":
		return nil
	}

	secrets, err := file.NewSecretsStore(configDir)
	if err != nil {
		return fmt.Errorf("loading secrets: %w", err)
	}

	// Demo mode runs against a transient in-memory store; useful for
	// trying the TUI without credentials.
	if demoMode {
		store := memory.NewProverbStore()
		catalogService = services.NewCatalogService(store)
		adminService = services.NewAdminService(store, secrets.AdminPassword())
		importService = services.NewImportService(store)
		return nil
	}

	credJSON, err := secrets.ServiceAccountJSON()
	if err != nil {
		return fmt.Errorf("firebase initialisation failed: %w", err)
	}

	store, err := firestore.New(cmd.Context(), firestore.Config{
		CredentialsJSON: credJSON,
		Collection:      collection,
	})
	if err != nil {
		return fmt.Errorf("firebase initialisation failed: %w", err)
	}

	catalogService = services.NewCatalogService(store)
	adminService = services.NewAdminService(store, secrets.AdminPassword())
	importService = services.NewImportService(store)
	return nil
}

// printProverb renders a single proverb card.
func printProverb(cmd *cobra.Command, p domain.Proverb) {
	cmd.Printf("%s\n", p.Text)
	cmd.Printf("  Tlhaloso (Sesotho): %s\n", p.Meaning)
	if p.Translation != "" {
		cmd.Printf("  English translation: %s\n", p.Translation)
	}
	cmd.Printf("  Category: %s    ID: %s\n", p.Category, p.ID)
	cmd.Println()
}
