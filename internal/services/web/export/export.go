// Package export writes the recommendation page as a static HTML file.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/studypicks/internal/page"
	"github.com/louisbranch/studypicks/internal/services/web/platform/pagerender"
)

// IndexFile is the name of the exported document.
const IndexFile = "index.html"

// Export renders p into dir/index.html, creating dir when needed, and
// returns the written path. The markup matches what the web host serves.
func Export(ctx context.Context, dir string, p page.Page) (string, error) {
	if ctx == nil {
		return "", errors.New("context is required")
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", errors.New("output directory is required")
	}

	var buf bytes.Buffer
	if err := pagerender.Render(ctx, &buf, p); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	target := filepath.Join(dir, IndexFile)
	tmp, err := os.CreateTemp(dir, ".index-*.html")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write %s: %w", IndexFile, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", IndexFile, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("chmod %s: %w", IndexFile, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("rename %s: %w", IndexFile, err)
	}
	return target, nil
}
