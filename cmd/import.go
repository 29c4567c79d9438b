package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriMap/internal/models"
)

var importCmd = &cobra.Command{
	Use:   "import [file|-]",
	Short: "Import exported map data",
	Long:  `Import data exported from the map website or copied by the bookmarklet. Reads stdin when no file or "-" is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, source, err := readImport(args)
		if err != nil {
			return fmt.Errorf("failed to read import: %w", err)
		}

		services, err := openServices()
		if err != nil {
			return err
		}
		defer services.Close()

		batch, err := services.Importer.Import(text, source)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d locations and %d route settings (batch %s)\n", len(batch.Found), len(batch.Routes), batch.ID)
		return nil
	},
}

var importHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent imports",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		services, err := openServices()
		if err != nil {
			return err
		}
		defer services.Close()

		records, err := services.DB.Imports(limit)
		if err != nil {
			return fmt.Errorf("failed to list imports: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No imports yet")
			return nil
		}
		for _, rec := range records {
			fmt.Printf("%s  %-11s %4d locations %3d routes  %s\n",
				rec.ImportedAt.Local().Format("2006-01-02 15:04"), rec.Source, rec.MarkerCount, rec.RouteCount, rec.ID)
		}
		return nil
	},
}

// readImport returns the import text; source is empty unless it came from a
// file, letting the importer detect paste vs bookmarklet data.
func readImport(args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), "", err
	}
	data, err := os.ReadFile(args[0])
	return string(data), models.SourceFile, err
}

func init() {
	importHistoryCmd.Flags().Int("limit", 20, "number of imports to show")
	importCmd.AddCommand(importHistoryCmd)
}
