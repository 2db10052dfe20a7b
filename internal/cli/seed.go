package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Akhsuna07/contentdeck/internal/database"
	"github.com/Akhsuna07/contentdeck/internal/database/repository"
)

func init() {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed demo graphs and content",
		Long:  "Seed the demo extraction graphs and sample content into an empty database. Does nothing if content already exists.",
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}

	RootCmd.AddCommand(cmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.SeedDefaults(cmd.Context(), db); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	n, err := repository.NewContentRepo(db).Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	fmt.Printf("database ready: %d content records\n", n)
	return nil
}
