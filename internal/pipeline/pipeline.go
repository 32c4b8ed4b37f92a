// Package pipeline walks the catalog and turns every missing asset into a
// sprite on disk: prompt, generate with retry, persist, post-process.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"assetgen/internal/catalog"
	"assetgen/internal/domain"
	"assetgen/internal/infra"
	"assetgen/internal/providers/image"
)

// Store is the file-presence backed persistence the pipeline relies on.
type Store interface {
	Exists(key string) (bool, error)
	Write(ctx context.Context, key string, data []byte) (string, error)
	Path(key string) (string, error)
}

// PostProcessor normalizes a freshly written file in place.
type PostProcessor interface {
	ProcessFile(path string, target domain.Dimensions) error
}

// Config wires the pipeline's collaborators. Generator may be nil for dry
// runs.
type Config struct {
	Generator     image.Generator
	Store         Store
	PostProcessor PostProcessor
	Retry         RetryPolicy
	Logger        *infra.Logger
	Sleep         func(time.Duration)
	Now           func() time.Time
}

// Options control a single run.
type Options struct {
	Category        string
	Force           bool
	DryRun          bool
	SkipPostProcess bool
	InterCallDelay  time.Duration
}

// Pipeline is sequential and holds no per-run state between calls to Run.
type Pipeline struct {
	generator image.Generator
	store     Store
	post      PostProcessor
	retry     RetryPolicy
	logger    *infra.Logger
	sleep     func(time.Duration)
	now       func() time.Time
}

// New validates cfg and fills defaults.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Store == nil {
		return nil, errors.New("pipeline: store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		generator: cfg.Generator,
		store:     cfg.Store,
		post:      cfg.PostProcessor,
		retry:     cfg.Retry,
		logger:    logger,
		sleep:     sleep,
		now:       now,
	}, nil
}

type runState struct {
	runID    string
	opts     Options
	total    int
	index    int
	calls    int
	progress string
}

// Run processes the catalog in group then record order. Failures of single
// assets are recorded in the summary and never abort the run. The context is
// only checked between records; an in-flight generation always completes.
func (p *Pipeline) Run(ctx context.Context, cat *catalog.Catalog, opts Options) (*domain.RunSummary, error) {
	if opts.InterCallDelay < 0 {
		return nil, fmt.Errorf("pipeline: inter-call delay must not be negative")
	}
	filtered, err := cat.Filter(opts.Category)
	if err != nil {
		return nil, err
	}
	if !opts.DryRun && p.generator == nil {
		return nil, fmt.Errorf("pipeline: %w: no image generator configured", domain.ErrMissingCredential)
	}

	summary := &domain.RunSummary{RunID: uuid.NewString(), StartedAt: p.now()}
	st := &runState{runID: summary.RunID, opts: opts, total: filtered.Len()}
	log := p.logger.With().Str("run_id", st.runID).Logger()
	log.Info().
		Int("total", st.total).
		Str("category", opts.Category).
		Bool("dry_run", opts.DryRun).
		Bool("force", opts.Force).
		Msg("pipeline: run started")

	for _, g := range filtered.Groups() {
		log.Info().Str("group", g.Name).Int("assets", len(g.Specs)).Msg("pipeline: group started")
		for _, spec := range g.Specs {
			if err := ctx.Err(); err != nil {
				summary.Interrupted = true
				summary.FinishedAt = p.now()
				log.Warn().Int("processed", st.index).Int("total", st.total).Msg("pipeline: run interrupted")
				return summary, err
			}
			st.index++
			st.progress = fmt.Sprintf("[%d/%d]", st.index, st.total)
			outcome := p.processOne(ctx, &log, st, g.Name, spec)
			summary.Outcomes = append(summary.Outcomes, outcome)
		}
	}

	summary.FinishedAt = p.now()
	log.Info().
		Int("generated", summary.Generated()).
		Int("skipped", summary.Skipped()).
		Int("failed", summary.Failed()).
		Int("planned", summary.Planned()).
		Dur("elapsed", summary.FinishedAt.Sub(summary.StartedAt)).
		Msg("pipeline: run finished")
	return summary, nil
}

func (p *Pipeline) processOne(ctx context.Context, log *zerolog.Logger, st *runState, group string, spec domain.AssetSpec) domain.Outcome {
	out := domain.Outcome{Group: group, OutputPath: spec.OutputPath}
	rec := log.With().Str("path", spec.OutputPath).Str("progress", st.progress).Logger()

	exists, err := p.store.Exists(spec.OutputPath)
	if err != nil {
		out.Status = domain.OutcomeFailed
		out.Reason = err.Error()
		rec.Error().Err(err).Msg("pipeline: existence check failed")
		return out
	}
	if exists && !st.opts.Force {
		out.Status = domain.OutcomeSkipped
		rec.Info().Msg("pipeline: skip, output exists")
		return out
	}
	if st.opts.DryRun {
		out.Status = domain.OutcomePlanned
		rec.Info().Msg("pipeline: would generate")
		return out
	}

	prompt, err := image.BuildAssetPrompt(spec)
	if err != nil {
		out.Status = domain.OutcomeFailed
		out.Reason = err.Error()
		rec.Error().Err(err).Msg("pipeline: invalid spec")
		return out
	}

	if st.calls > 0 && st.opts.InterCallDelay > 0 {
		p.sleep(st.opts.InterCallDelay)
	}
	st.calls++

	rec.Info().Str("category", string(spec.Category)).Msg("pipeline: generating")
	callCtx := context.WithoutCancel(ctx)
	res := p.retry.do(callCtx, p.sleep, func(ctx context.Context, attempt int) (*image.Asset, error) {
		return p.generator.Generate(ctx, image.GenerateRequest{
			Prompt:    prompt,
			Width:     spec.Dimensions.Width,
			Height:    spec.Dimensions.Height,
			RequestID: fmt.Sprintf("%s/%d/%d", st.runID, st.index, attempt),
		})
	}, func(retry int, wait time.Duration, err error) {
		rec.Warn().Err(err).Int("attempt", retry).Int("retries", p.retry.MaxRetries).Dur("backoff", wait).Msg("pipeline: retrying")
	})
	out.Attempts = res.Attempts
	if !res.OK() {
		out.Status = domain.OutcomeFailed
		out.Reason = res.Err.Error()
		rec.Error().Err(res.Err).Int("attempts", res.Attempts).Msg("pipeline: generation failed")
		return out
	}

	if _, err := p.store.Write(callCtx, spec.OutputPath, res.Asset.Data); err != nil {
		out.Status = domain.OutcomeFailed
		out.Reason = err.Error()
		rec.Error().Err(err).Msg("pipeline: persist failed")
		return out
	}
	out.Status = domain.OutcomeGenerated
	out.Bytes = int64(len(res.Asset.Data))
	rec.Info().Int64("bytes", out.Bytes).Int("attempts", res.Attempts).Msg("pipeline: generated")

	if st.opts.SkipPostProcess || p.post == nil {
		return out
	}
	path, err := p.store.Path(spec.OutputPath)
	if err == nil {
		err = p.post.ProcessFile(path, spec.Dimensions)
	}
	if err != nil {
		rec.Warn().Err(err).Msg("pipeline: post-processing skipped, raw output kept")
		return out
	}
	out.PostProcessed = true
	rec.Debug().Str("size", spec.Dimensions.String()).Msg("pipeline: post-processed")
	return out
}
