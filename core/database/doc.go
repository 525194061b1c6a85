// Package database opens the catalog database and inspects its schema.
//
// It wraps GORM with the mysql and sqlite drivers. mysql serves a shared catalog
// database; sqlite serves local catalog exports and tests.
//
// # Schema Inspection
//
// GetTableColumns reads the live columns of a table and MissingColumns compares them
// with the columns a gorm model expects. The integrity check uses this to validate the
// catalog sheets before an index is built.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	table, missing, err := database.MissingColumns(db, &catalog.Item{})
package database
