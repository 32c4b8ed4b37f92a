package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"assetgen/internal/domain"
)

const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
)

// Store resolves provider secrets from the process environment first and
// then from dotenv files, in order.
type Store struct {
	lookup func(string) (string, bool)
	files  []string
}

// NewStore searches files after the environment. Relative paths are
// resolved against the working directory.
func NewStore(files ...string) *Store {
	return &Store{lookup: os.LookupEnv, files: files}
}

// GeminiAPIKey returns the key or an error wrapping domain.ErrMissingCredential.
func (s *Store) GeminiAPIKey() (string, error) {
	return s.Token(EnvGeminiAPIKey)
}

// Token returns the trimmed, unquoted value for key.
func (s *Store) Token(key string) (string, error) {
	if v, ok := s.lookup(key); ok {
		if v = clean(v); v != "" {
			return v, nil
		}
	}
	for _, f := range s.files {
		values, err := godotenv.Read(filepath.Clean(f))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("credentials: read %s: %w", f, err)
		}
		if v := clean(values[key]); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("credentials: %w: %s not set in environment or %s", domain.ErrMissingCredential, key, strings.Join(s.files, ", "))
}

func clean(v string) string {
	v = strings.TrimSpace(v)
	v = strings.Trim(v, `"'`)
	return strings.TrimSpace(v)
}
