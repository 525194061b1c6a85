package checks

import (
	"context"
	"fmt"
	"path"

	"path-mapper/core/storage"

	"github.com/minio/minio-go/v7"
)

// RequiredFolders lists the game folders that must exist under the game prefix.
var RequiredFolders = []string{
	"bg", "chara", "common", "ui", "vfx",
}

// CheckStructure returns the required game folders missing from the bucket.
func CheckStructure(ctx context.Context, client storage.Client, bucket, prefix string) ([]string, error) {
	missing := []string{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, folder := range RequiredFolders {
		opts := minio.ListObjectsOptions{
			Prefix:    path.Join(prefix, folder) + "/",
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			found = obj.Err == nil
			break
		}

		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}
