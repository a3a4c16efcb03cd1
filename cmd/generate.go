package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/standards-cli/internal/export"
	"github.com/sells-group/standards-cli/internal/model"
	"github.com/sells-group/standards-cli/internal/pipeline"
)

var (
	genIndustries   []string
	genProjectTypes []string
	genModules      []string
	genManual       []string
	genFormat       string
	genOutDir       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assemble standards for a project profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		profile := model.Profile{
			Industries:   genIndustries,
			ProjectTypes: genProjectTypes,
			Modules:      genModules,
		}

		manual := make([]model.MatchResult, 0, len(genManual))
		for _, id := range genManual {
			manual = append(manual, model.MatchResult{
				StandardID: id,
				Source:     model.SourceManual,
				Reason:     "manually selected",
			})
		}

		result, err := env.Pipeline.Run(ctx, profile, manual)
		if err != nil {
			return err
		}

		if len(result.Matches) == 0 && len(result.Modules) == 0 {
			// Zero results is an informational state, not an error.
			fmt.Fprintln(cmd.OutOrStdout(), "no standards matched the given profile")
			return nil
		}

		switch genFormat {
		case "markdown":
			if err := export.WriteMarkdown(cmd.OutOrStdout(), result); err != nil {
				return err
			}
		case "csv":
			if err := export.WriteMatchesCSV(cmd.OutOrStdout(), result.Matches); err != nil {
				return err
			}
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return eris.Wrap(err, "generate: encode result")
			}
		default:
			return eris.Errorf("generate: unknown format %q", genFormat)
		}

		if genOutDir != "" {
			if err := writeModuleFiles(result.Modules, genOutDir); err != nil {
				return err
			}
		}

		return nil
	},
}

// writeModuleFiles writes one CSV per generated module into dir.
func writeModuleFiles(modules []pipeline.ModuleContent, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrap(err, "generate: create output dir")
	}

	for _, mod := range modules {
		path := filepath.Join(dir, mod.Module+".csv")
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrapf(err, "generate: create %s", path)
		}
		if err := export.WriteModuleCSV(f, mod); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return eris.Wrapf(err, "generate: close %s", path)
		}
		zap.L().Info("module content written",
			zap.String("module", mod.Module),
			zap.String("path", path),
			zap.Int("rows", len(mod.Table.Rows)),
		)
	}

	return nil
}

func init() {
	generateCmd.Flags().StringSliceVar(&genIndustries, "industry", nil, "profile industries")
	generateCmd.Flags().StringSliceVar(&genProjectTypes, "project-type", nil, "profile project types")
	generateCmd.Flags().StringSliceVar(&genModules, "module", nil, "target modules for content generation")
	generateCmd.Flags().StringSliceVar(&genManual, "manual", nil, "manually selected standard ids")
	generateCmd.Flags().StringVar(&genFormat, "format", "markdown", "output format: markdown, csv, json")
	generateCmd.Flags().StringVar(&genOutDir, "out-dir", "", "directory for per-module CSV files")
	rootCmd.AddCommand(generateCmd)
}
