package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"path-mapper/core/loader"
	"path-mapper/core/logger"
	"path-mapper/core/middleware/auth"
	"path-mapper/core/middleware/rayid"
	"path-mapper/feature/identify"
	"path-mapper/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "path-mapper/docs/swagger"
)

// @title Path Mapper API
// @version 1.0
// @description API for identifying what game file paths affect.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the path mapper server",
	Long:  `Builds the catalog index, starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Configuration, logger, database and storage
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()
		logg := env.logger
		zap.ReplaceGlobals(logg)

		if err := env.cfg.Server.Validate(); err != nil {
			return err
		}

		// 2. Catalog index (optional, identify stays disabled without it)
		identifier, err := env.identifier(cmd.Context())
		if err != nil {
			logg.Warn("Identification disabled", zap.Error(err))
		}

		// 3. Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             env.cfg.Server.BodyLimit(),
		})

		// 4. Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(identify.NewFeature(identifier, env.cfg.Identify.Workers, logg))
		mgr.Register(integrity.NewFeature(env.store, env.cfg.Storage.Bucket, env.cfg.Identify.GamePrefix, env.sources(), env.db, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: env.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// 5. Start Server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", env.cfg.Server.Port))
			errCh <- app.Listen(":" + env.cfg.Server.Port)
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case <-c:
			logg.Info("Shutting down server...")
			return app.Shutdown()
		case err := <-errCh:
			return err
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
