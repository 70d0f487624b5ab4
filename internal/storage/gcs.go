package storage

import (
	"context"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSSink stores uploads as private objects in a GCS bucket.
type GCSSink struct {
	client *gcs.Client
	bucket string
}

func NewGCSSink(ctx context.Context, bucket string) (*GCSSink, error) {
	c, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSSink{client: c, bucket: bucket}, nil
}

func (s *GCSSink) Close() error { return s.client.Close() }

func (s *GCSSink) Save(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	obj := s.client.Bucket(s.bucket).Object(objectName)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return objectName, nil
}

func (s *GCSSink) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	err := s.client.Bucket(s.bucket).Object(ref).Delete(ctx)
	if err == gcs.ErrObjectNotExist {
		return nil
	}
	return err
}
