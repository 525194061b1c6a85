// Package config provides configuration management for the path mapper.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: catalog database connection (mysql or a sqlite export)
//   - Storage: S3/MinIO credentials and the bucket holding game files
//   - Log: Logging level and format
//   - Identify: batch workers, path corpus and bnpc link locations, output file
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Identify.Workers)
package config
