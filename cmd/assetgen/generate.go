package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"assetgen/internal/domain"
	"assetgen/internal/infra"
	"assetgen/internal/pipeline"
	"assetgen/internal/postprocess"
	"assetgen/internal/providers/genai"
	"assetgen/internal/providers/image"
	"assetgen/internal/storage"
)

func (c *cli) generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate missing assets (the default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd)
		},
	}
	c.bindGenerateFlags(cmd)
	return cmd
}

func (c *cli) bindGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&c.flags.force, "force", false, "Regenerate assets that already exist")
	f.BoolVar(&c.flags.dryRun, "dry-run", false, "Show what would be generated without calling the service")
	f.BoolVar(&c.flags.noPost, "no-post", false, "Skip resizing and background cleanup")
	f.Float64Var(&c.flags.delay, "delay", 1.0, "Delay between generation calls in seconds")
	f.IntVar(&c.flags.retries, "retries", 2, "Retries per asset after the first attempt")
	f.StringVar(&c.flags.backend, "backend", "", "Image backend: rest, sdk or synthetic (default from GEMINI_TRANSPORT)")
}

func (c *cli) runGenerate(cmd *cobra.Command) error {
	cfg := c.cfg
	flags := cmd.Flags()
	if flags.Changed("delay") {
		if c.flags.delay < 0 || math.IsNaN(c.flags.delay) || math.IsInf(c.flags.delay, 0) {
			return fmt.Errorf("invalid --delay %v: must be a non-negative number of seconds", c.flags.delay)
		}
		cfg.GenerationDelay = time.Duration(c.flags.delay * float64(time.Second))
	}
	if flags.Changed("retries") {
		if c.flags.retries < 0 {
			return fmt.Errorf("invalid --retries %d: must not be negative", c.flags.retries)
		}
		cfg.GenerationRetries = c.flags.retries
	}
	if c.flags.backend != "" {
		switch c.flags.backend {
		case infra.TransportREST, infra.TransportSDK, infra.TransportSynthetic:
			cfg.GeminiTransport = c.flags.backend
		default:
			return fmt.Errorf("invalid --backend %q: want rest, sdk or synthetic", c.flags.backend)
		}
	}

	cat, err := c.filtered()
	if err != nil {
		return err
	}
	store, err := storage.NewFileStore(cfg.AssetsDir)
	if err != nil {
		return err
	}

	var gen image.Generator
	if !c.flags.dryRun {
		gen, err = c.generator(cmd.Context(), cfg)
		if err != nil {
			return err
		}
	}

	p, err := pipeline.New(pipeline.Config{
		Generator:     gen,
		Store:         store,
		PostProcessor: postprocess.New(),
		Retry: pipeline.RetryPolicy{
			MaxRetries: cfg.GenerationRetries,
			Backoff:    cfg.GenerationBackoff,
			MaxBackoff: pipeline.DefaultMaxBackoff,
		},
		Logger: &c.logger,
		Sleep:  c.sleep,
	})
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Force:           c.flags.force,
		DryRun:          c.flags.dryRun,
		SkipPostProcess: c.flags.noPost,
		InterCallDelay:  cfg.GenerationDelay,
	}
	if !c.flags.dryRun {
		printBanner(c.stdout, gen)
	}
	summary, err := p.Run(cmd.Context(), cat, opts)
	if summary != nil {
		if c.flags.dryRun {
			printDryRun(c.stdout, summary)
		} else {
			printSummary(c.stdout, summary)
		}
	}
	if err != nil {
		if summary != nil && summary.Interrupted {
			return &exitError{code: exitInterrupted, err: fmt.Errorf("run interrupted: %w", err)}
		}
		return err
	}
	return nil
}

// generator builds the image backend selected by GEMINI_TRANSPORT or
// --backend. Only the synthetic backend works without a key.
func (c *cli) generator(ctx context.Context, cfg *infra.Config) (image.Generator, error) {
	logger := &c.logger
	if cfg.GeminiTransport == infra.TransportSynthetic {
		return image.NewGeminiGenerator(genai.NewSyntheticClient(logger)), nil
	}

	key := cfg.GeminiAPIKey
	if key == "" {
		var err error
		if key, err = c.creds.GeminiAPIKey(); err != nil {
			return nil, err
		}
	}
	opts := genai.Options{
		APIKey:     key,
		BaseURL:    cfg.GeminiBaseURL,
		Model:      cfg.GeminiModel,
		HTTPClient: &http.Client{Timeout: cfg.GeminiHTTPTimeout},
		Logger:     logger,
	}

	var (
		client genai.ImageClient
		err    error
	)
	switch cfg.GeminiTransport {
	case infra.TransportSDK:
		client, err = genai.NewSDKClient(ctx, opts)
	default:
		client, err = genai.NewClient(opts)
	}
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredential) {
			return nil, err
		}
		return nil, fmt.Errorf("assetgen: init %s backend: %w", cfg.GeminiTransport, err)
	}
	return image.NewGeminiGenerator(client), nil
}
