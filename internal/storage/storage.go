// Package storage uploads user files (avatar images) to object storage.
package storage

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
)

// Uploader stores a file under a path and returns a publicly resolvable
// URL. Uploading to an existing path overwrites the object.
type Uploader interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// GCSUploader uploads to a Google Cloud Storage bucket.
type GCSUploader struct {
	Bucket string
}

func (u GCSUploader) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("storage: create client: %w", err)
	}
	defer client.Close()

	writer := client.Bucket(u.Bucket).Object(path).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("storage: write object %s: %w", path, err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("storage: close object %s: %w", path, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.Bucket, path), nil
}
