package v1

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mocks/uploader.go -package=mocks . Uploader

// Uploader pushes an image to the external image host and returns the
// publicly served URL.
type Uploader interface {
	Upload(ctx context.Context, folder, publicID, filename string, r io.Reader) (string, error)
}
