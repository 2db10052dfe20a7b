// Package cli implements the contentdeck CLI commands.
package cli

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Akhsuna07/contentdeck/internal/config"
	"github.com/Akhsuna07/contentdeck/internal/database"
	"github.com/Akhsuna07/contentdeck/internal/database/repository"
	"github.com/Akhsuna07/contentdeck/internal/service"
	"github.com/Akhsuna07/contentdeck/internal/tui"
)

var (
	dbPathFlag   string
	graphFlag    string
	debugLogFlag string
)

// RootCmd is the top-level command. Running it with no subcommand starts
// the TUI.
var RootCmd = &cobra.Command{
	Use:          "contentdeck",
	Short:        "Browse ingested content by extraction graph",
	Long:         "A terminal browser for extraction-graph content: pick a graph, page through its records, and search ids. SQLite-backed, single binary.",
	RunE:         runTUI,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPathFlag, "db", "d", "", "Database path (default from config)")
	RootCmd.PersistentFlags().StringVarP(&graphFlag, "graph", "g", "", "Extraction graph to open")
	RootCmd.PersistentFlags().StringVar(&debugLogFlag, "debug-log", "", "Append derivation diagnostics to this file")
}

// loadConfig reads the config file and applies flag overrides on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if dbPathFlag != "" {
		cfg.Database.Path = dbPathFlag
	}
	if graphFlag != "" {
		cfg.UI.Graph = graphFlag
	}
	if debugLogFlag != "" {
		cfg.Log.DebugPath = debugLogFlag
	}
	return cfg, nil
}

// openDatabase migrates then opens the configured database, creating its
// directory on first run.
func openDatabase(cfg config.Config) (*sql.DB, error) {
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return database.Open(cfg.Database.Path)
}

func uiLocation(cfg config.Config) *time.Location {
	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		return time.Local
	}
	return loc
}

// diagLogger opens the debug sink named by the config. A nil logger means
// diagnostics are off.
func diagLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.Log.DebugPath == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.DebugPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	return log.New(f, "contentdeck ", log.LstdFlags), func() { _ = f.Close() }, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	contentRepo := repository.NewContentRepo(db)
	graphRepo := repository.NewGraphRepo(db)

	ingester := &service.IngestService{Content: contentRepo, Graphs: graphRepo}
	maintenance := &service.MaintenanceService{DB: db}

	diag, closeDiag, err := diagLogger(cfg)
	if err != nil {
		return err
	}
	defer closeDiag()

	app := tui.New(ctx, cfg,
		tui.Repos{Content: contentRepo, Graphs: graphRepo},
		tui.Services{Ingest: ingester, Maintenance: maintenance},
		uiLocation(cfg), diag,
	)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
