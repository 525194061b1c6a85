package checks

import (
	"fmt"

	"path-mapper/core/database"
	"path-mapper/feature/catalog"

	"gorm.io/gorm"
)

// CatalogReport strictly types the result of a catalog schema check.
type CatalogReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Rows           int64    `json:"rows"`
	Status         string   `json:"status"` // "ok", "empty", "error"
}

// CheckCatalog verifies every catalog sheet table against its gorm model.
// An empty table is reported but does not fail the check.
func CheckCatalog(db *gorm.DB) (*CatalogReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &CatalogReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
	}

	for _, model := range catalog.Models() {
		table, missing, err := database.MissingColumns(db, model)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect %T: %v", model, err))
			report.Matched = false
			continue
		}

		tbl := TableReport{
			MissingColumns: []string{},
			Status:         "ok",
		}
		if len(missing) > 0 {
			tbl.MissingColumns = missing
			tbl.Status = "error"
			report.Matched = false
			report.Tables[table] = tbl
			continue
		}

		if err := db.Table(table).Count(&tbl.Rows).Error; err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to count %s: %v", table, err))
			report.Matched = false
			tbl.Status = "error"
		} else if tbl.Rows == 0 {
			tbl.Status = "empty"
		}
		report.Tables[table] = tbl
	}

	return report, nil
}
