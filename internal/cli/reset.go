package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Akhsuna07/contentdeck/internal/service"
)

var forceReset bool

func init() {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all ingested content",
		Long:  "Delete every content record and its graph memberships. Graphs and policies survive; the next import lands in known graphs.",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}
	cmd.Flags().BoolVar(&forceReset, "force", false, "Skip the confirmation prompt")

	RootCmd.AddCommand(cmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !forceReset {
		fmt.Print("delete all content? [y/N] ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("aborted")
			return nil
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	maintenance := &service.MaintenanceService{DB: db}
	if err := maintenance.Reset(cmd.Context()); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	fmt.Println("content cleared")
	return nil
}
