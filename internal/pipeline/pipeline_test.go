package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"assetgen/internal/catalog"
	"assetgen/internal/domain"
	imgprov "assetgen/internal/providers/image"
	"assetgen/internal/postprocess"
	"assetgen/internal/storage"
)

type fakeGenerator struct {
	calls    int
	failures int
	data     []byte
	prompts  []string
	onCall   func(n int)
}

func (f *fakeGenerator) Generate(ctx context.Context, req imgprov.GenerateRequest) (*imgprov.Asset, error) {
	f.calls++
	f.prompts = append(f.prompts, req.Prompt)
	if f.onCall != nil {
		f.onCall(f.calls)
	}
	if f.calls <= f.failures {
		return nil, errors.New("upstream unavailable")
	}
	return &imgprov.Asset{Format: "image/png", Data: f.data}, nil
}

type sleepRecorder struct {
	waits []time.Duration
}

func (s *sleepRecorder) sleep(d time.Duration) { s.waits = append(s.waits, d) }

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func testSpec(path, title string, dims domain.Dimensions) domain.AssetSpec {
	return domain.AssetSpec{
		Title:       title,
		Description: title + " sprite.",
		Category:    domain.CategoryTerrain,
		Dimensions:  dims,
		Style:       domain.StyleFields{ArtDirection: catalog.ArtDirection, Extra: "terrain tile"},
		OutputPath:  path,
	}
}

func testCatalog(t *testing.T, specs ...domain.AssetSpec) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Group{{Name: "tiles", Specs: specs}})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

type harness struct {
	root  string
	store *storage.FileStore
	gen   *fakeGenerator
	sleep *sleepRecorder
	p     *Pipeline
}

func newHarness(t *testing.T, gen *fakeGenerator, retry RetryPolicy) *harness {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewFileStore(root)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	rec := &sleepRecorder{}
	cfg := Config{
		Store:         store,
		PostProcessor: postprocess.New(),
		Retry:         retry,
		Sleep:         rec.sleep,
	}
	if gen != nil {
		cfg.Generator = gen
	}
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &harness{root: root, store: store, gen: gen, sleep: rec, p: p}
}

func (h *harness) seed(t *testing.T, rel string) {
	t.Helper()
	full := filepath.Join(h.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunGeneratesAndPostProcesses(t *testing.T) {
	gen := &fakeGenerator{data: pngBytes(t, 192, 192)}
	h := newHarness(t, gen, DefaultRetryPolicy())
	cat := testCatalog(t, testSpec("tiles/grass_plains.png", "Grass Plains", domain.Dimensions{Width: 48, Height: 48}))

	summary, err := h.p.Run(context.Background(), cat, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Generated() != 1 || summary.Total() != 1 {
		t.Fatalf("generated = %d of %d, want 1 of 1", summary.Generated(), summary.Total())
	}
	out := summary.Outcomes[0]
	if !out.PostProcessed || out.Attempts != 1 || out.Bytes != int64(len(gen.data)) {
		t.Fatalf("outcome = %+v", out)
	}
	if summary.RunID == "" {
		t.Fatalf("RunID should be set")
	}

	data, err := os.ReadFile(filepath.Join(h.root, "tiles", "grass_plains.png"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if cfg.Width != 48 || cfg.Height != 48 {
		t.Fatalf("output size = %dx%d, want 48x48", cfg.Width, cfg.Height)
	}
	if !strings.Contains(gen.prompts[0], "Subject: Grass Plains.") || !strings.Contains(gen.prompts[0], "Dimensions: 48x48 pixels.") {
		t.Fatalf("prompt = %q", gen.prompts[0])
	}
}

func TestRunSkipsExistingWithoutCalls(t *testing.T) {
	gen := &fakeGenerator{data: pngBytes(t, 4, 4)}
	h := newHarness(t, gen, DefaultRetryPolicy())
	h.seed(t, "tiles/grass_plains.png")
	cat := testCatalog(t, testSpec("tiles/grass_plains.png", "Grass Plains", domain.Dimensions{Width: 48, Height: 48}))

	summary, err := h.p.Run(context.Background(), cat, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Skipped() != 1 || gen.calls != 0 {
		t.Fatalf("skipped = %d, calls = %d; want 1, 0", summary.Skipped(), gen.calls)
	}
	data, _ := os.ReadFile(filepath.Join(h.root, "tiles", "grass_plains.png"))
	if string(data) != "existing" {
		t.Fatalf("existing file was modified")
	}
}

func TestRunForceRegeneratesExisting(t *testing.T) {
	gen := &fakeGenerator{data: pngBytes(t, 4, 4)}
	h := newHarness(t, gen, DefaultRetryPolicy())
	h.seed(t, "tiles/grass_plains.png")
	cat := testCatalog(t, testSpec("tiles/grass_plains.png", "Grass Plains", domain.Dimensions{Width: 4, Height: 4}))

	summary, err := h.p.Run(context.Background(), cat, Options{Force: true, SkipPostProcess: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Generated() != 1 || gen.calls != 1 {
		t.Fatalf("generated = %d, calls = %d; want 1, 1", summary.Generated(), gen.calls)
	}
	if summary.Outcomes[0].PostProcessed {
		t.Fatalf("post-processing should be skipped")
	}
}

func TestRunUnknownCategoryIsFatal(t *testing.T) {
	gen := &fakeGenerator{data: pngBytes(t, 4, 4)}
	h := newHarness(t, gen, DefaultRetryPolicy())
	cat := testCatalog(t, testSpec("tiles/grass_plains.png", "Grass Plains", domain.Dimensions{Width: 48, Height: 48}))

	summary, err := h.p.Run(context.Background(), cat, Options{Category: "foo"})
	if !errors.Is(err, domain.ErrUnknownCategory) {
		t.Fatalf("Run() error = %v, want ErrUnknownCategory", err)
	}
	if summary != nil || gen.calls != 0 {
		t.Fatalf("summary = %v, calls = %d; want nil, 0", summary, gen.calls)
	}
	entries, _ := os.ReadDir(h.root)
	if len(entries) != 0 {
		t.Fatalf("unknown category wrote %d entries", len(entries))
	}
}

func TestRunRetryLimit(t *testing.T) {
	tests := []struct {
		name       string
		retries    int
		wantStatus domain.OutcomeStatus
		wantCalls  int
		wantWaits  []time.Duration
	}{
		{name: "two retries succeed", retries: 2, wantStatus: domain.OutcomeGenerated, wantCalls: 3, wantWaits: []time.Duration{2 * time.Second, 4 * time.Second}},
		{name: "one retry fails", retries: 1, wantStatus: domain.OutcomeFailed, wantCalls: 2, wantWaits: []time.Duration{2 * time.Second}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{failures: 2, data: pngBytes(t, 4, 4)}
			retry := DefaultRetryPolicy()
			retry.MaxRetries = tc.retries
			h := newHarness(t, gen, retry)
			cat := testCatalog(t, testSpec("tiles/grass_plains.png", "Grass Plains", domain.Dimensions{Width: 4, Height: 4}))

			summary, err := h.p.Run(context.Background(), cat, Options{})
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			out := summary.Outcomes[0]
			if out.Status != tc.wantStatus {
				t.Fatalf("status = %q, want %q (reason %q)", out.Status, tc.wantStatus, out.Reason)
			}
			if gen.calls != tc.wantCalls || out.Attempts != tc.wantCalls {
				t.Fatalf("calls = %d, attempts = %d, want %d", gen.calls, out.Attempts, tc.wantCalls)
			}
			if len(h.sleep.waits) != len(tc.wantWaits) {
				t.Fatalf("waits = %v, want %v", h.sleep.waits, tc.wantWaits)
			}
			for i := range tc.wantWaits {
				if h.sleep.waits[i] != tc.wantWaits[i] {
					t.Fatalf("waits = %v, want %v", h.sleep.waits, tc.wantWaits)
				}
			}
			if tc.wantStatus == domain.OutcomeFailed {
				if !strings.Contains(out.Reason, "upstream unavailable") {
					t.Fatalf("reason = %q, want last error", out.Reason)
				}
				exists, _ := h.store.Exists("tiles/grass_plains.png")
				if exists {
					t.Fatalf("failed asset should leave no file")
				}
			}
		})
	}
}

func TestRunEmptyPayloadIsRetried(t *testing.T) {
	gen := &fakeGenerator{}
	retry := DefaultRetryPolicy()
	h := newHarness(t, gen, retry)
	cat := testCatalog(t, testSpec("tiles/grass_plains.png", "Grass Plains", domain.Dimensions{Width: 4, Height: 4}))

	summary, err := h.p.Run(context.Background(), cat, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Failed() != 1 || gen.calls != 3 {
		t.Fatalf("failed = %d, calls = %d; want 1, 3", summary.Failed(), gen.calls)
	}
	if !strings.Contains(summary.Outcomes[0].Reason, domain.ErrNoImagePayload.Error()) {
		t.Fatalf("reason = %q", summary.Outcomes[0].Reason)
	}
}

func TestRunDryRunPlansMissingOnly(t *testing.T) {
	h := newHarness(t, nil, DefaultRetryPolicy())
	h.seed(t, "tiles/b.png")
	cat := testCatalog(t,
		testSpec("tiles/a.png", "A", domain.Dimensions{Width: 4, Height: 4}),
		testSpec("tiles/b.png", "B", domain.Dimensions{Width: 4, Height: 4}),
		testSpec("tiles/c.png", "C", domain.Dimensions{Width: 4, Height: 4}),
	)

	summary, err := h.p.Run(context.Background(), cat, Options{DryRun: true, InterCallDelay: time.Second})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	planned := summary.PlannedPaths()
	if len(planned) != 2 || planned[0] != "tiles/a.png" || planned[1] != "tiles/c.png" {
		t.Fatalf("PlannedPaths() = %v, want [tiles/a.png tiles/c.png]", planned)
	}
	if summary.Skipped() != 1 {
		t.Fatalf("skipped = %d, want 1", summary.Skipped())
	}
	if len(h.sleep.waits) != 0 {
		t.Fatalf("dry run waited %v", h.sleep.waits)
	}
	if exists, _ := h.store.Exists("tiles/a.png"); exists {
		t.Fatalf("dry run wrote a file")
	}

	forced, err := h.p.Run(context.Background(), cat, Options{DryRun: true, Force: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if forced.Planned() != 3 {
		t.Fatalf("forced dry run planned = %d, want 3", forced.Planned())
	}
}

func TestRunMissingGeneratorIsFatal(t *testing.T) {
	h := newHarness(t, nil, DefaultRetryPolicy())
	cat := testCatalog(t, testSpec("tiles/a.png", "A", domain.Dimensions{Width: 4, Height: 4}))
	if _, err := h.p.Run(context.Background(), cat, Options{}); !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("Run() error = %v, want ErrMissingCredential", err)
	}
}

func TestRunPacesExternalCalls(t *testing.T) {
	gen := &fakeGenerator{data: pngBytes(t, 4, 4)}
	h := newHarness(t, gen, DefaultRetryPolicy())
	h.seed(t, "tiles/b.png")
	cat := testCatalog(t,
		testSpec("tiles/a.png", "A", domain.Dimensions{Width: 4, Height: 4}),
		testSpec("tiles/b.png", "B", domain.Dimensions{Width: 4, Height: 4}),
		testSpec("tiles/c.png", "C", domain.Dimensions{Width: 4, Height: 4}),
		testSpec("tiles/d.png", "D", domain.Dimensions{Width: 4, Height: 4}),
	)

	summary, err := h.p.Run(context.Background(), cat, Options{InterCallDelay: 1500 * time.Millisecond})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Generated() != 3 || summary.Skipped() != 1 {
		t.Fatalf("generated = %d, skipped = %d", summary.Generated(), summary.Skipped())
	}
	want := []time.Duration{1500 * time.Millisecond, 1500 * time.Millisecond}
	if len(h.sleep.waits) != len(want) || h.sleep.waits[0] != want[0] || h.sleep.waits[1] != want[1] {
		t.Fatalf("waits = %v, want %v", h.sleep.waits, want)
	}
}

func TestRunKeepsRawOutputWhenPostProcessFails(t *testing.T) {
	gen := &fakeGenerator{data: []byte("not an image")}
	h := newHarness(t, gen, DefaultRetryPolicy())
	cat := testCatalog(t, testSpec("tiles/a.png", "A", domain.Dimensions{Width: 4, Height: 4}))

	summary, err := h.p.Run(context.Background(), cat, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := summary.Outcomes[0]
	if out.Status != domain.OutcomeGenerated || out.PostProcessed {
		t.Fatalf("outcome = %+v, want generated without post-processing", out)
	}
	data, _ := os.ReadFile(filepath.Join(h.root, "tiles", "a.png"))
	if string(data) != "not an image" {
		t.Fatalf("raw output not kept: %q", data)
	}
}

func TestRunStopsBetweenRecordsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gen := &fakeGenerator{data: pngBytes(t, 4, 4), onCall: func(int) { cancel() }}
	h := newHarness(t, gen, DefaultRetryPolicy())
	cat := testCatalog(t,
		testSpec("tiles/a.png", "A", domain.Dimensions{Width: 4, Height: 4}),
		testSpec("tiles/b.png", "B", domain.Dimensions{Width: 4, Height: 4}),
	)

	summary, err := h.p.Run(ctx, cat, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if summary == nil || !summary.Interrupted {
		t.Fatalf("summary = %+v, want interrupted", summary)
	}
	if summary.Total() != 1 || summary.Generated() != 1 {
		t.Fatalf("in-flight record should complete: %+v", summary.Outcomes)
	}
	if gen.calls != 1 {
		t.Fatalf("calls = %d, want 1", gen.calls)
	}
}

func TestRejectsNegativeDelay(t *testing.T) {
	h := newHarness(t, nil, DefaultRetryPolicy())
	cat := testCatalog(t, testSpec("tiles/a.png", "A", domain.Dimensions{Width: 4, Height: 4}))
	if _, err := h.p.Run(context.Background(), cat, Options{DryRun: true, InterCallDelay: -time.Second}); err == nil {
		t.Fatalf("expected error for negative delay")
	}
}

func TestRetryPolicyDelay(t *testing.T) {
	p := RetryPolicy{Backoff: 2 * time.Second, MaxBackoff: 10 * time.Second}
	tests := []struct {
		n    int
		want time.Duration
	}{
		{0, 0},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 10 * time.Second},
		{12, 10 * time.Second},
	}
	for _, tc := range tests {
		if got := p.Delay(tc.n); got != tc.want {
			t.Fatalf("Delay(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}
