package integrity

import (
	"context"
	"errors"

	"path-mapper/core/storage"
	"path-mapper/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	errNoStorage  = errors.New("storage is not configured")
	errNoDatabase = errors.New("database is not configured")
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	prefix  string
	sources []string
	db      *gorm.DB
	logger  *zap.Logger
}

// NewService creates a new integrity service. sources are the identification
// input locations verified by CheckSources.
func NewService(client storage.Client, bucket, prefix string, sources []string, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		sources: sources,
		db:      db,
		logger:  logger,
	}
}

// CheckStructure returns the game folders missing from the bucket.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, errNoStorage
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, s.prefix)
}

// CheckSources returns the identification inputs missing from the bucket.
func (s *Service) CheckSources(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, errNoStorage
	}
	return checks.CheckSources(ctx, s.client, s.bucket, s.sources)
}

// CheckCatalog validates the catalog tables.
func (s *Service) CheckCatalog() (*checks.CatalogReport, error) {
	if s.db == nil {
		return nil, errNoDatabase
	}
	return checks.CheckCatalog(s.db)
}
