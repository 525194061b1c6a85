package cmd

import (
	"context"

	"path-mapper/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the identification inputs",
	Long:  `Checks the game folder structure in storage, the path list and BNpc link sources, and the catalog schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check the game folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// sourcesCmd represents the integrity sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Check the path list and BNpc link sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// catalogCmd represents the integrity catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check the catalog database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, sourcesCmd, catalogCmd)
}

func runIntegrityChecks(ctx context.Context, runStructure, runSources, runCatalog bool) error {
	env, err := setup()
	if err != nil {
		return err
	}
	defer env.close()

	logg := env.logger
	svc := integrity.NewService(env.store, env.cfg.Storage.Bucket, env.cfg.Identify.GamePrefix, env.sources(), env.db, logg)

	if runStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		switch {
		case err != nil:
			logg.Error("Structure check failed", zap.Error(err))
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		default:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
		}
	}

	if runSources {
		logg.Info("Checking identification sources...")
		missing, err := svc.CheckSources(ctx)
		switch {
		case err != nil:
			logg.Error("Sources check failed", zap.Error(err))
		case len(missing) == 0:
			logg.Info("Sources are present.")
		default:
			logg.Warn("Missing sources detected", zap.Strings("missing", missing))
		}
	}

	if runCatalog {
		logg.Info("Checking catalog schema...")
		report, err := svc.CheckCatalog()
		if err != nil {
			logg.Error("Catalog schema check failed", zap.Error(err))
			return nil
		}
		if report.Matched {
			logg.Info("Catalog schema matches expected definition.")
		} else {
			logg.Warn("Catalog schema mismatches found")
		}
		for table, tbl := range report.Tables {
			switch tbl.Status {
			case "error":
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
			case "empty":
				logg.Warn("Empty table", zap.String("table", table))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}

	return nil
}
