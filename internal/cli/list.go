package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Akhsuna07/contentdeck/internal/content"
	"github.com/Akhsuna07/contentdeck/internal/database/repository"
)

var (
	listIDContains string
	listLimit      int
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content records",
		Long:  "List content records without starting the TUI. --graph narrows to one graph; --id-contains matches ids case-sensitively.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().StringVar(&listIDContains, "id-contains", "", "Only ids containing this substring")
	cmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Maximum records to print (0 = all)")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := repository.NewContentRepo(db).List(cmd.Context(), repository.ContentFilters{
		Graph:      cfg.UI.Graph,
		IDContains: listIDContains,
		Limit:      listLimit,
	})
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	fmtr := content.RowFormatter{Layout: cfg.UI.DateFormat, Location: uiLocation(cfg)}
	for _, r := range records {
		row := content.ProjectRow(r, fmtr)
		fmt.Printf("%s  %s  %-24s  %s\n", row.ID, row.CreatedAt, strings.Join(r.GraphNames, ","), row.Labels)
	}
	fmt.Printf("%d records\n", len(records))
	return nil
}
