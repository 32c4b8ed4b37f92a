package httpapi

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"assetgen/internal/catalog"
	"assetgen/internal/http/handlers"
	"assetgen/internal/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *storage.FileStore) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	logger := zerolog.New(io.Discard)
	app := handlers.NewApp(catalog.Default(), store, &logger)
	srv := httptest.NewServer(NewRouter(app, RouterOptions{}))
	t.Cleanup(srv.Close)
	return srv, store
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := get(t, srv.URL+"/v1/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}
	var payload struct {
		Status string `json:"status"`
		Assets int    `json:"assets"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Status != "ok" || payload.Assets != 111 {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestListCatalogReportsExisting(t *testing.T) {
	srv, store := newTestServer(t)
	if _, err := store.Write(t.Context(), "tiles/grass_plains.png", []byte("png")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	resp, body := get(t, srv.URL+"/v1/catalog/?category=tiles")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	var rep catalog.Report
	if err := json.Unmarshal(body, &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.Total != 20 || rep.Existing != 1 || rep.Missing != 19 {
		t.Fatalf("totals = %d/%d/%d, want 20/1/19", rep.Total, rep.Existing, rep.Missing)
	}
	if len(rep.Groups) != 1 || !rep.Groups[0].Entries[0].Exists {
		t.Fatalf("groups = %+v", rep.Groups)
	}
}

func TestListCatalogUnknownCategory(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := get(t, srv.URL+"/v1/catalog/?category=tile")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var payload struct {
		Error struct {
			Code       string   `json:"code"`
			Available  []string `json:"available"`
			Suggestion string   `json:"suggestion"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error.Code != "unknown_category" || payload.Error.Suggestion != "tiles" || len(payload.Error.Available) != 6 {
		t.Fatalf("error = %+v", payload.Error)
	}
}

func TestListGroups(t *testing.T) {
	srv, _ := newTestServer(t)
	_, body := get(t, srv.URL+"/v1/catalog/groups")
	var payload struct {
		Items []struct {
			Name   string `json:"name"`
			Assets int    `json:"assets"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Items) != 6 || payload.Items[0].Name != "tiles" || payload.Items[0].Assets != 20 {
		t.Fatalf("items = %+v", payload.Items)
	}
}

func TestSpecDocument(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := get(t, srv.URL+"/v1/specs/ui/speech_bubble.png")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	var doc struct {
		Image struct {
			OutputPath string `json:"output_path"`
			Subject    struct {
				Variant            string `json:"variant"`
				PhysicalProperties struct {
					WidthPx  int `json:"width_px"`
					HeightPx int `json:"height_px"`
				} `json:"physical_properties"`
			} `json:"subject"`
		} `json:"marketing_image"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Image.OutputPath != "ui/speech_bubble.png" || doc.Image.Subject.Variant != "ui_bubble" {
		t.Fatalf("doc = %+v", doc.Image)
	}
	if got := doc.Image.Subject.PhysicalProperties; got.WidthPx != 64 || got.HeightPx != 48 {
		t.Fatalf("dimensions = %+v, want 64x48", got)
	}

	resp, _ = get(t, srv.URL+"/v1/specs/ui/nope.png")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing spec status = %d, want 404", resp.StatusCode)
	}
}

func TestPrompt(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := get(t, srv.URL+"/v1/prompts/tiles/grass_plains.png")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	var payload struct {
		Prompt string `json:"prompt"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(payload.Prompt, "Generate a single game asset image.") || !strings.Contains(payload.Prompt, "Subject: Grass Plains.") {
		t.Fatalf("prompt = %q", payload.Prompt)
	}
}

func TestAssetServesGeneratedFile(t *testing.T) {
	srv, store := newTestServer(t)

	resp, _ := get(t, srv.URL+"/v1/assets/items/sword.png")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status before generation = %d, want 404", resp.StatusCode)
	}

	if _, err := store.Write(t.Context(), "items/sword.png", []byte("sprite-bytes")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	resp, body := get(t, srv.URL+"/v1/assets/items/sword.png")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if string(body) != "sprite-bytes" {
		t.Fatalf("body = %q", body)
	}
}

func TestExportZip(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := get(t, srv.URL+"/v1/catalog/export.zip?category=characters")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/zip" {
		t.Fatalf("Content-Type = %q", ct)
	}
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	if len(zr.File) != 8 {
		t.Fatalf("entries = %d, want 8", len(zr.File))
	}
}

func TestUnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := get(t, srv.URL+"/v2/anything")
	if resp.StatusCode != http.StatusNotFound || !strings.Contains(string(body), "not_found") {
		t.Fatalf("status = %d body = %s", resp.StatusCode, body)
	}
}
