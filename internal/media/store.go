package media

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const imagesDir = "images"

// Store persists uploaded media files under a static root directory.
type Store struct {
	root string
	now  func() time.Time
}

// NewStore creates a media store rooted at the given static path,
// creating the images directory if needed.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, imagesDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &Store{root: root, now: time.Now}, nil
}

// Save writes the uploaded bytes under a timestamp-prefixed unique name
// and returns the link path to record in the attachment row, relative
// to the static root (e.g. "images/20240101_120000_cat.png"). The file
// is created exclusively; when two uploads of the same filename land
// in the same second, the later ones get a numbered suffix instead of
// overwriting the first.
func (s *Store) Save(filename string, data []byte) (string, error) {
	base := s.now().Format("20060102_150405_") + sanitize(filename)

	for attempt := 0; ; attempt++ {
		name := base
		if attempt > 0 {
			name = numbered(base, attempt)
		}
		path := filepath.Join(s.root, imagesDir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create media file: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", fmt.Errorf("failed to write media file: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("failed to write media file: %w", err)
		}
		return filepath.ToSlash(filepath.Join(imagesDir, name)), nil
	}
}

// numbered inserts a collision counter before the extension, e.g.
// "cat.png" -> "cat_1.png".
func numbered(name string, n int) string {
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), n, ext)
}

// sanitize strips any directory components so a crafted filename can't
// escape the images directory.
func sanitize(filename string) string {
	name := filepath.Base(filepath.Clean(strings.ReplaceAll(filename, "\\", "/")))
	if name == "." || name == string(filepath.Separator) {
		return "file"
	}
	return name
}
