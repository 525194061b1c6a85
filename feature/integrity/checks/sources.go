package checks

import (
	"context"
	"fmt"
	"strings"

	"path-mapper/core/storage"

	"github.com/minio/minio-go/v7"
)

// CheckSources returns the identification inputs missing from the bucket.
// Only s3:// locations are checked; local files are skipped.
func CheckSources(ctx context.Context, client storage.Client, bucket string, locations []string) ([]string, error) {
	missing := []string{}

	for _, location := range locations {
		object, ok := strings.CutPrefix(location, "s3://")
		if !ok {
			continue
		}

		_, err := client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
		if err == nil {
			continue
		}
		if minio.ToErrorResponse(err).Code != "NoSuchKey" {
			return nil, fmt.Errorf("failed to stat %s: %w", location, err)
		}
		missing = append(missing, location)
	}

	return missing, nil
}
