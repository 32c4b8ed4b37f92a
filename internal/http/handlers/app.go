package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"assetgen/internal/catalog"
	"assetgen/internal/infra"
)

// AssetStore is the read side of the assets root.
type AssetStore interface {
	catalog.Exister
	Path(key string) (string, error)
}

// App serves read-only views of the catalog and of generated files.
type App struct {
	Catalog *catalog.Catalog
	Store   AssetStore
	Logger  *infra.Logger
}

func NewApp(cat *catalog.Catalog, store AssetStore, logger *infra.Logger) *App {
	if logger == nil {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}
	return &App{Catalog: cat, Store: store, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]any{"error": map[string]string{"code": kind, "message": message}})
}
