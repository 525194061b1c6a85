package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"path-mapper/feature/identify"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// identifyCmd represents the identify command
var identifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "Identify every path of a path list",
	Long: `Loads the path list (plain, CSV with a "path" column, optionally gzipped),
identifies every path and writes a JSON object mapping each path to its labels.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		cfg := env.cfg.Identify
		if v, _ := cmd.Flags().GetString("paths"); v != "" {
			cfg.Paths = v
		}
		if v, _ := cmd.Flags().GetString("output"); v != "" {
			cfg.Output = v
		}
		if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
			cfg.Workers = v
		}

		identifier, err := env.identifier(ctx)
		if err != nil {
			return err
		}

		paths, err := env.opener().LoadPaths(ctx, cfg.Paths)
		if err != nil {
			return err
		}
		env.logger.Info("Loaded path list", zap.String("location", cfg.Paths), zap.Int("paths", len(paths)))

		results, err := identify.RunBatch(ctx, identifier, paths, identify.BatchOptions{
			Workers:          cfg.Workers,
			ProgressInterval: time.Duration(cfg.ProgressSeconds) * time.Second,
			Logger:           env.logger,
		})
		if err != nil {
			return fmt.Errorf("identification failed: %w", err)
		}

		data, err := json.MarshalIndent(identify.Affects(results), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(cfg.Output, data, 0644); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}

		env.logger.Info("Identification completed",
			zap.String("file", cfg.Output),
			zap.Int("paths", len(results)),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(identifyCmd)
	identifyCmd.Flags().String("paths", "", "Path list location, overrides IDENTIFY_PATHS")
	identifyCmd.Flags().String("output", "", "Output file, overrides IDENTIFY_OUTPUT")
	identifyCmd.Flags().Int("workers", 0, "Concurrent identifications, overrides IDENTIFY_WORKERS")
}
