package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/standards-cli/internal/fetcher"
	"github.com/sells-group/standards-cli/internal/model"
)

var (
	tablesModule string
	tablesSheet  string
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage user-contributed tables",
}

var tablesImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an XLSX or CSV file as a contributing table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path := args[0]

		if tablesModule == "" {
			return eris.New("tables: --module is required")
		}

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		var table *model.Table
		switch strings.ToLower(filepath.Ext(path)) {
		case ".xlsx", ".xls":
			table, err = fetcher.ReadXLSXTable(path, tablesModule, fetcher.XLSXOptions{SheetName: tablesSheet})
		case ".csv":
			f, openErr := os.Open(path)
			if openErr != nil {
				return eris.Wrapf(openErr, "tables: open %s", path)
			}
			defer f.Close()
			table, err = fetcher.ReadCSVTable(f, filepath.Base(path), tablesModule, fetcher.CSVOptions{})
		default:
			return eris.Errorf("tables: unsupported file type %q", filepath.Ext(path))
		}
		if err != nil {
			return err
		}

		id, err := env.Store.SaveTable(ctx, table)
		if err != nil {
			return err
		}

		zap.L().Info("table imported",
			zap.String("id", id),
			zap.String("module", tablesModule),
			zap.Int("rows", len(table.Rows)),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d rows) as %s\n", table.Name, len(table.Rows), id)

		return nil
	},
}

var tablesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		infos, err := env.Store.ListTables(ctx, tablesModule)
		if err != nil {
			return err
		}

		if len(infos) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no tables stored")
			return nil
		}

		for _, info := range infos {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-20s %-30s %5d rows  %s\n",
				info.ID, info.Module, info.Name, info.RowCount, info.CreatedAt.Format("2006-01-02 15:04"))
		}

		return nil
	},
}

var tablesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.Store.DeleteTable(ctx, args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

func init() {
	tablesCmd.PersistentFlags().StringVar(&tablesModule, "module", "", "module the table contributes to")
	tablesImportCmd.Flags().StringVar(&tablesSheet, "sheet", "", "sheet name (default first sheet)")
	tablesCmd.AddCommand(tablesImportCmd, tablesListCmd, tablesDeleteCmd)
	rootCmd.AddCommand(tablesCmd)
}
