package images

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Store removes hosted assets by public id.
type Store interface {
	Destroy(ctx context.Context, publicID string) (string, error)
}

// CloudinaryStore backs Store with a Cloudinary account configured from a
// cloudinary:// URL.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(url string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Destroy deletes the asset and returns the provider's result string
// ("ok", "not found", ...).
func (c *CloudinaryStore) Destroy(ctx context.Context, publicID string) (string, error) {
	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return "", fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	return resp.Result, nil
}
