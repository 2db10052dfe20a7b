package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Akhsuna07/contentdeck/internal/database/repository"
	"github.com/Akhsuna07/contentdeck/internal/service"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import content records from JSON",
		Long:  "Import a JSON array of content records from a file or stdin. Records without graph memberships land in the graph named by --graph.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ingester := &service.IngestService{
		Content: repository.NewContentRepo(db),
		Graphs:  repository.NewGraphRepo(db),
	}
	res, err := ingester.ImportJSON(cmd.Context(), in, cfg.UI.Graph)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Printf("imported %d records, skipped %d duplicates\n", res.Imported, res.Skipped)
	for _, e := range res.Errors {
		fmt.Fprintf(os.Stderr, "warn: %v\n", e)
	}
	if len(res.Errors) > 0 {
		return fmt.Errorf("%d records failed", len(res.Errors))
	}
	return nil
}
