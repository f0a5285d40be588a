package ports

import "context"

// ImageStore abstracts the external image host. Upload returns the public URL
// of the stored object; Delete takes that URL back and removes the object.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, filename, folder string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}
