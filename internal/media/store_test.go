package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSave(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	store.now = func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	}

	link, err := store.Save("cat.png", []byte("pixels"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if link != "images/20240102_030405_cat.png" {
		t.Errorf("unexpected link: %s", link)
	}

	data, err := os.ReadFile(filepath.Join(root, "images", "20240102_030405_cat.png"))
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if string(data) != "pixels" {
		t.Errorf("unexpected file content: %s", data)
	}
}

func TestSaveSameSecondUploadsGetDistinctPaths(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	// Freeze the clock so every save shares one timestamp prefix
	store.now = func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	}

	first, err := store.Save("cat.png", []byte("first"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	second, err := store.Save("cat.png", []byte("second"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	third, err := store.Save("cat.png", []byte("third"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if first == second || second == third || first == third {
		t.Fatalf("colliding uploads share a path: %s, %s, %s", first, second, third)
	}

	// Each file keeps its own bytes
	for link, want := range map[string]string{first: "first", second: "second", third: "third"} {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(link)))
		if err != nil {
			t.Fatalf("read %s: %v", link, err)
		}
		if string(data) != want {
			t.Errorf("%s content = %s, want %s", link, data, want)
		}
	}
}

func TestSaveStripsDirectories(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}

	tests := []struct {
		name     string
		filename string
		wantBase string
	}{
		{"plain name", "photo.jpg", "photo.jpg"},
		{"path traversal", "../../etc/passwd", "passwd"},
		{"windows separators", "..\\..\\evil.exe", "evil.exe"},
		{"dot only", ".", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, err := store.Save(tt.filename, []byte("x"))
			if err != nil {
				t.Fatalf("Save() error: %v", err)
			}
			if !strings.HasPrefix(link, "images/") {
				t.Errorf("link escaped images dir: %s", link)
			}
			if !strings.HasSuffix(link, tt.wantBase) {
				t.Errorf("link = %s, want suffix %s", link, tt.wantBase)
			}
		})
	}
}
