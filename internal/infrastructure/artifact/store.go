package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"debate-crew/internal/application/port/output"
)

var _ output.ArtifactStorePort = (*FileStore)(nil)

// FileStore persists task outputs below a base directory. Writes create
// missing parent directories and overwrite any previous artifact at the same
// path, so outputs are idempotent per run.
type FileStore struct {
	baseDir string
}

func NewFileStore(baseDir string) *FileStore {
	if baseDir == "" {
		baseDir = "."
	}
	return &FileStore{baseDir: baseDir}
}

func (s *FileStore) Write(path string, content string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create artifact dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open artifact %q: %w", path, err)
	}

	// Close runs on every exit path so a failed write never leaves the file
	// handle open or the content silently unflushed.
	_, werr := f.WriteString(content)
	serr := f.Sync()
	cerr := f.Close()

	if werr != nil {
		return "", fmt.Errorf("write artifact %q: %w", path, werr)
	}
	if serr != nil {
		return "", fmt.Errorf("flush artifact %q: %w", path, serr)
	}
	if cerr != nil {
		return "", fmt.Errorf("close artifact %q: %w", path, cerr)
	}

	return path, nil
}
