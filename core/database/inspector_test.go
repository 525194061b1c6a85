package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSheet struct {
	RowID uint32 `gorm:"column:row_id;primaryKey"`
	Name  string `gorm:"column:name"`
	Extra string `gorm:"column:extra"`
}

func (testSheet) TableName() string { return "test_sheets" }

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT, description TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_items")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["name"])
	assert.Equal(t, "text", colMap["description"])

	// PRAGMA table_info returns an empty result for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	t.Run("Model Table", func(t *testing.T) {
		table, columns, err := ModelTable(db, &testSheet{})
		require.NoError(t, err)
		assert.Equal(t, "test_sheets", table)
		assert.ElementsMatch(t, []string{"row_id", "name", "extra"}, columns)
	})

	t.Run("Missing Table", func(t *testing.T) {
		table, missing, err := MissingColumns(db, &testSheet{})
		require.NoError(t, err)
		assert.Equal(t, "test_sheets", table)
		assert.ElementsMatch(t, []string{"row_id", "name", "extra"}, missing)
	})

	t.Run("Partial Table", func(t *testing.T) {
		require.NoError(t, db.Exec("CREATE TABLE test_sheets (row_id INTEGER PRIMARY KEY, name TEXT)").Error)

		_, missing, err := MissingColumns(db, &testSheet{})
		require.NoError(t, err)
		assert.Equal(t, []string{"extra"}, missing)
	})
}
