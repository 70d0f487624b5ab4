package storage

import (
	"context"
	"io"
)

// BlobSink receives uploaded CV files. Save returns an opaque reference to
// the stored object, or "" when the sink keeps nothing durable. Delete is
// best-effort cleanup and tolerates unknown references.
type BlobSink interface {
	Save(ctx context.Context, objectName string, contentType string, r io.Reader) (ref string, err error)
	Delete(ctx context.Context, ref string) error
}
