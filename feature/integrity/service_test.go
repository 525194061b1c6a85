package integrity

import (
	"context"
	"testing"

	"path-mapper/core/database"
	"path-mapper/core/storage/mocks"
	"path-mapper/feature/catalog"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupDB creates an in-memory catalog database with every sheet table.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(catalog.Models()...))
	return db
}

func emptyListing() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", "game", nil, nil, nil)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyListing())

	missing, err := svc.CheckStructure(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, missing)
}

func TestService_Sources(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", "game", []string{"s3://bnpc.json"}, nil, nil)

	mockClient.On("StatObject", mock.Anything, "test-bucket", "bnpc.json", mock.Anything).Return(minio.ObjectInfo{}, nil)

	missing, err := svc.CheckSources(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, missing)
}

func TestService_Catalog(t *testing.T) {
	svc := NewService(nil, "", "", nil, setupDB(t), nil)

	report, err := svc.CheckCatalog()
	require.NoError(t, err)
	assert.True(t, report.Matched)
}

func TestService_Unconfigured(t *testing.T) {
	svc := NewService(nil, "", "", nil, nil, nil)

	_, err := svc.CheckStructure(context.Background())
	assert.ErrorIs(t, err, errNoStorage)
	_, err = svc.CheckSources(context.Background())
	assert.ErrorIs(t, err, errNoStorage)
	_, err = svc.CheckCatalog()
	assert.ErrorIs(t, err, errNoDatabase)
}
