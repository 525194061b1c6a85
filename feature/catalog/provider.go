package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"path-mapper/core/storage"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a variant table does not exist.
var ErrNotFound = errors.New("not found")

// Provider supplies raw catalog data.
type Provider interface {
	// Enumerate loads every row of the sheet dst points to (a pointer to a slice of models).
	Enumerate(ctx context.Context, dst any) error
	// RowByKey loads the row with the given key into dst. It reports false when absent.
	RowByKey(ctx context.Context, dst any, key uint32) (bool, error)
	// VariantTable fetches and decodes the variant table at a game path.
	// A missing table yields ErrNotFound.
	VariantTable(ctx context.Context, path string) (*VariantTable, error)
}

// Source is a Provider reading sheets from the catalog database and variant tables from storage.
type Source struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	prefix string
}

// NewSource creates a Source. Game paths are looked up in the bucket under prefix.
func NewSource(db *gorm.DB, client storage.Client, bucket, prefix string) *Source {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Source{
		db:     db,
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Enumerate implements Provider.
func (s *Source) Enumerate(ctx context.Context, dst any) error {
	if err := s.db.WithContext(ctx).Find(dst).Error; err != nil {
		return fmt.Errorf("failed to enumerate %T: %w", dst, err)
	}
	return nil
}

// RowByKey implements Provider.
func (s *Source) RowByKey(ctx context.Context, dst any, key uint32) (bool, error) {
	err := s.db.WithContext(ctx).First(dst, key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to fetch %T %d: %w", dst, key, err)
	}
	return true, nil
}

// VariantTable implements Provider.
func (s *Source) VariantTable(ctx context.Context, path string) (*VariantTable, error) {
	if s.client == nil {
		return nil, ErrNotFound
	}

	objectName := s.prefix + path
	reader, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectError(objectName, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, objectError(objectName, err)
	}

	table, err := ParseVariantTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", objectName, err)
	}
	return table, nil
}

func objectError(objectName string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%s: %w", objectName, ErrNotFound)
	}
	return fmt.Errorf("failed to read %s: %w", objectName, err)
}
