package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "tiles/grass.png", want: "tiles/grass.png"},
		{in: "./ui/speech_bubble.png", want: "ui/speech_bubble.png"},
		{in: "/items/sword.png", want: "items/sword.png"},
		{in: `ui\action_icons\eating.png`, want: "ui/action_icons/eating.png"},
		{in: "tiles/../buildings/inn.png", want: "buildings/inn.png"},
		{in: "../escape.png", wantErr: true},
		{in: "..", wantErr: true},
		{in: "   ", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := sanitizeKey(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("sanitizeKey(%q) = %q, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("sanitizeKey(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("sanitizeKey(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFileStoreWriteAndExists(t *testing.T) {
	root := filepath.Join(t.TempDir(), "assets")
	store, err := NewFileStore(root)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Fatalf("root should not be created before the first write, stat err = %v", err)
	}

	exists, err := store.Exists("tiles/grass_plains.png")
	if err != nil || exists {
		t.Fatalf("Exists before write = %v, %v; want false, nil", exists, err)
	}

	key, err := store.Write(context.Background(), "tiles/grass_plains.png", []byte("png"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "tiles/grass_plains.png" {
		t.Fatalf("key = %q, want tiles/grass_plains.png", key)
	}
	exists, err = store.Exists(key)
	if err != nil || !exists {
		t.Fatalf("Exists after write = %v, %v; want true, nil", exists, err)
	}

	full, _ := store.Path(key)
	data, err := os.ReadFile(full)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "png" {
		t.Fatalf("content = %q, want png", data)
	}

	entries, err := os.ReadDir(filepath.Dir(full))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected no leftover temp files, got %d entries", len(entries))
	}
}

func TestFileStoreExistsIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "ui", "minimap_icons"), 0o755); err != nil {
		t.Fatal(err)
	}
	store, _ := NewFileStore(root)
	exists, err := store.Exists("ui/minimap_icons")
	if err != nil || exists {
		t.Fatalf("Exists(dir) = %v, %v; want false, nil", exists, err)
	}
}

func TestFileStoreWriteHonoursCancelledContext(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Write(ctx, "tiles/x.png", []byte("x")); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
