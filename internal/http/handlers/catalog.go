package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"assetgen/internal/catalog"
	"assetgen/internal/domain"
	"assetgen/internal/domain/jsoncfg"
	"assetgen/internal/providers/image"
)

// filtered applies the optional ?category= filter and writes the error
// response itself when the name is unknown.
func (a *App) filtered(w http.ResponseWriter, r *http.Request) (*catalog.Catalog, bool) {
	cat, err := a.Catalog.Filter(strings.TrimSpace(r.URL.Query().Get("category")))
	if err != nil {
		var uce *domain.UnknownCategoryError
		if errors.As(err, &uce) {
			a.json(w, http.StatusBadRequest, map[string]any{
				"error": map[string]any{
					"code":       "unknown_category",
					"message":    uce.Error(),
					"available":  uce.Available,
					"suggestion": uce.Suggestion,
				},
			})
			return nil, false
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to filter catalog")
		return nil, false
	}
	return cat, true
}

func (a *App) ListCatalog(w http.ResponseWriter, r *http.Request) {
	cat, ok := a.filtered(w, r)
	if !ok {
		return
	}
	report, err := catalog.List(cat, a.Store)
	if err != nil {
		a.Logger.Error().Err(err).Msg("http: list catalog failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to inspect assets")
		return
	}
	a.json(w, http.StatusOK, report)
}

func (a *App) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups := a.Catalog.Groups()
	items := make([]map[string]any, 0, len(groups))
	for _, g := range groups {
		items = append(items, map[string]any{"name": g.Name, "assets": len(g.Specs)})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) lookup(w http.ResponseWriter, r *http.Request) (domain.AssetSpec, bool) {
	path := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	spec, _, ok := a.Catalog.Lookup(path)
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", fmt.Sprintf("no asset declared at %q", path))
		return domain.AssetSpec{}, false
	}
	return spec, true
}

func (a *App) SpecDocument(w http.ResponseWriter, r *http.Request) {
	spec, ok := a.lookup(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, jsoncfg.FromAssetSpec(spec))
}

func (a *App) Prompt(w http.ResponseWriter, r *http.Request) {
	spec, ok := a.lookup(w, r)
	if !ok {
		return
	}
	prompt, err := image.BuildAssetPrompt(spec)
	if err != nil {
		a.error(w, http.StatusUnprocessableEntity, "invalid_spec", err.Error())
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"output_path": spec.OutputPath,
		"dimensions":  spec.Dimensions,
		"prompt":      prompt,
	})
}

func (a *App) ExportZip(w http.ResponseWriter, r *http.Request) {
	cat, ok := a.filtered(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename=asset-specs.zip")
	w.WriteHeader(http.StatusOK)
	if _, err := catalog.ExportArchive(cat, w); err != nil {
		a.Logger.Error().Err(err).Msg("http: export archive failed")
	}
}

// Asset streams a generated file when it exists on disk.
func (a *App) Asset(w http.ResponseWriter, r *http.Request) {
	spec, ok := a.lookup(w, r)
	if !ok {
		return
	}
	exists, err := a.Store.Exists(spec.OutputPath)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to inspect asset")
		return
	}
	if !exists {
		a.error(w, http.StatusNotFound, "not_generated", fmt.Sprintf("%s has not been generated yet", spec.OutputPath))
		return
	}
	full, err := a.Store.Path(spec.OutputPath)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, full)
}
