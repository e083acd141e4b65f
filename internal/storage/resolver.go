// Package storage resolves stored image references into displayable
// URLs. The catalog never learns which storage medium backs a reference;
// it depends only on the Resolver contract, with the concrete strategy
// chosen once at startup from configuration.
package storage

import (
	"context"
	"fmt"

	"saral-shop/internal/config"
)

// Resolver turns a stored image reference (path, object key, or binary
// locator) into a string a client can display directly.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// NewFromConfig constructs the resolver named by cfg.Strategy
func NewFromConfig(cfg config.ImagesConfig) (Resolver, error) {
	switch cfg.Strategy {
	case "file":
		return NewFileResolver(cfg.BaseURL), nil
	case "inline":
		return NewInlineResolver(cfg.Dir), nil
	case "gcs":
		return NewGCSResolver(cfg)
	default:
		return nil, fmt.Errorf("unknown image strategy %q", cfg.Strategy)
	}
}
