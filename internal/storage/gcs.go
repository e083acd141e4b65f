package storage

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"saral-shop/internal/config"
)

// GCSResolver issues V4 signed GET URLs for objects in a private
// bucket. References are object keys within the configured bucket.
type GCSResolver struct {
	bucket     string
	accessID   string
	privateKey []byte
	expiry     time.Duration
}

// NewGCSResolver creates a resolver signing with the configured
// service account key.
func NewGCSResolver(cfg config.ImagesConfig) (*GCSResolver, error) {
	key, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read signing key: %w", err)
	}

	expiry := time.Duration(cfg.URLExpiry) * time.Minute
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	return &GCSResolver{
		bucket:     cfg.Bucket,
		accessID:   cfg.GoogleAccessID,
		privateKey: key,
		expiry:     expiry,
	}, nil
}

// Resolve signs a time-limited GET URL for the object
func (r *GCSResolver) Resolve(_ context.Context, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}

	object := strings.TrimLeft(strings.ReplaceAll(ref, "\\", "/"), "/")

	u, err := storage.SignedURL(r.bucket, object, &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         "GET",
		GoogleAccessID: r.accessID,
		PrivateKey:     r.privateKey,
		Expires:        time.Now().UTC().Add(r.expiry),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign object URL: %w", err)
	}

	return u, nil
}
