package storage

import (
	"context"
	"strings"
)

// FileResolver rewrites stored filesystem paths into public URLs served
// by the static file route. Stored paths may carry Windows separators
// from the upload host; they are normalized to forward slashes.
type FileResolver struct {
	baseURL string
}

// NewFileResolver creates a resolver rooted at the public base URL
func NewFileResolver(baseURL string) *FileResolver {
	return &FileResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// Resolve prepends the base URL to the normalized stored path
func (r *FileResolver) Resolve(_ context.Context, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}

	path := strings.ReplaceAll(ref, "\\", "/")
	path = strings.TrimLeft(path, "/")

	return r.baseURL + "/" + path, nil
}
