package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// InlineResolver reads the stored binary and returns it as a base64
// data URL, for deployments with no public file host at all.
type InlineResolver struct {
	dir string
}

// NewInlineResolver creates a resolver reading binaries under dir
func NewInlineResolver(dir string) *InlineResolver {
	return &InlineResolver{dir: dir}
}

// Resolve loads the referenced binary and encodes it inline
func (r *InlineResolver) Resolve(_ context.Context, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}

	name := filepath.Base(strings.ReplaceAll(ref, "\\", "/"))

	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to read image %q: %w", name, err)
	}

	contentType := http.DetectContentType(data)

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
