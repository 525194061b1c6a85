package identify

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"path-mapper/core/storage"
	"path-mapper/feature/catalog"

	"github.com/minio/minio-go/v7"
)

// storageScheme marks a location as an object key in the configured bucket,
// e.g. "s3://paths/CurrentPathList.gz".
const storageScheme = "s3://"

// Opener opens path corpus and battle NPC link locations: local files, or objects
// when the location starts with s3://.
type Opener struct {
	client storage.Client
	bucket string
}

// NewOpener creates an Opener. client may be nil when only local files are used.
func NewOpener(client storage.Client, bucket string) *Opener {
	return &Opener{client: client, bucket: bucket}
}

// Open opens a location for reading.
func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	object, ok := strings.CutPrefix(location, storageScheme)
	if !ok {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", location, err)
		}
		return f, nil
	}

	if o.client == nil {
		return nil, fmt.Errorf("failed to open %s: storage is not configured", location)
	}
	reader, err := o.client.GetObject(ctx, o.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return reader, nil
}

// LoadPaths opens location and reads a path corpus from it.
func (o *Opener) LoadPaths(ctx context.Context, location string) ([]string, error) {
	r, err := o.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadPaths(r)
}

// LoadLinks opens location and reads battle NPC links from it.
func (o *Opener) LoadLinks(ctx context.Context, location string) ([]catalog.BNpcLink, error) {
	r, err := o.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read bnpc links: %w", err)
	}
	return catalog.ParseBNpcLinks(data)
}

// ReadPaths reads a path corpus: a CSV export with a "path" column, or one path
// per line, optionally gzip compressed. The result is sorted and free of duplicates.
func ReadPaths(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	if magic, _ := br.Peek(2); bytes.Equal(magic, []byte{0x1f, 0x8b}) {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip path list: %w", err)
		}
		defer gz.Close()
		br = bufio.NewReader(gz)
	}

	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read path list: %w", err)
	}

	var paths []string
	if column := csvPathColumn(header); column >= 0 {
		paths, err = readCSVPaths(br, column)
	} else {
		paths, err = readLines(io.MultiReader(strings.NewReader(header), br))
	}
	if err != nil {
		return nil, err
	}

	slices.Sort(paths)
	return slices.Compact(paths), nil
}

// csvPathColumn returns the index of the "path" column when header is a CSV header.
func csvPathColumn(header string) int {
	header = strings.TrimSpace(header)
	if !strings.Contains(header, ",") {
		return -1
	}
	for i, name := range strings.Split(header, ",") {
		if strings.EqualFold(strings.Trim(strings.TrimSpace(name), `"`), "path") {
			return i
		}
	}
	return -1
}

func readCSVPaths(r io.Reader, column int) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var paths []string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return paths, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read path csv: %w", err)
		}
		if column >= len(record) {
			continue
		}
		if p := strings.TrimSpace(record[column]); p != "" {
			paths = append(paths, p)
		}
	}
}

func readLines(r io.Reader) ([]string, error) {
	var paths []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if p := strings.TrimSpace(sc.Text()); p != "" {
			paths = append(paths, p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read path list: %w", err)
	}
	return paths, nil
}
