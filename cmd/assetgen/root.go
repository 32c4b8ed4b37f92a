package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"assetgen/internal/catalog"
	"assetgen/internal/domain"
	"assetgen/internal/infra"
	"assetgen/internal/infra/credentials"
)

const exitInterrupted = 130

// exitError carries a non-default exit status.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type credentialSource interface {
	GeminiAPIKey() (string, error)
}

type cli struct {
	stdout io.Writer
	stderr io.Writer

	loadConfig func() (*infra.Config, error)
	newLogger  func(cfg *infra.Config) infra.Logger
	creds      credentialSource
	sleep      func(time.Duration)
	catalog    *catalog.Catalog

	cfg    *infra.Config
	logger infra.Logger
	flags  flagValues
}

type flagValues struct {
	category  string
	assetsDir string
	list      bool
	exportDir string
	force     bool
	dryRun    bool
	noPost    bool
	delay     float64
	retries   int
	backend   string
	zipPath   string
	port      string
}

func newCLI(stdout, stderr io.Writer) *cli {
	return &cli{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: infra.LoadConfig,
		newLogger: func(cfg *infra.Config) infra.Logger {
			return infra.NewLogger(cfg.AppEnv, cfg.LogFile)
		},
		creds:   credentials.NewStore(infra.EnvFiles...),
		catalog: catalog.Default(),
	}
}

func run(ctx context.Context, args []string, c *cli) int {
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(c.stderr, "ERROR: %v\n", err)
		var uce *domain.UnknownCategoryError
		if errors.As(err, &uce) {
			fmt.Fprintf(c.stderr, "Available: %s\n", strings.Join(uce.Available, ", "))
		}
		if errors.Is(err, domain.ErrMissingCredential) {
			fmt.Fprintln(c.stderr, "Set GEMINI_API_KEY in the environment or in .env / .env.local, or use --backend synthetic")
		}
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		return 1
	}
	return 0
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "assetgen",
		Short: "Generate the game's pixel-art sprites from the asset catalog",
		Long: `assetgen walks the built-in asset catalog and generates every sprite that is
missing under the assets directory. Existing files are skipped unless --force
is given, so re-running the same command only retries what is still missing.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case c.flags.list:
				return c.runList(cmd)
			case c.flags.exportDir != "":
				return c.runExport(cmd, c.flags.exportDir, "")
			default:
				return c.runGenerate(cmd)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.category, "category", "", "Only process this catalog group")
	pf.StringVar(&c.flags.assetsDir, "assets-dir", "", "Assets root directory (default from ASSETS_DIR)")

	root.Flags().BoolVar(&c.flags.list, "list", false, "List all assets and whether they exist")
	root.Flags().StringVar(&c.flags.exportDir, "export-specs", "", "Export JSON specs to this directory")
	c.bindGenerateFlags(root)

	root.AddCommand(c.generateCommand(), c.listCommand(), c.exportCommand(), c.serveCommand())
	return root
}

// setup loads configuration once per invocation and applies flag overrides.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if c.flags.assetsDir != "" {
		cfg.AssetsDir = c.flags.assetsDir
	}
	c.cfg = cfg
	c.logger = c.newLogger(cfg)
	return nil
}

// filtered resolves --category before any work starts.
func (c *cli) filtered() (*catalog.Catalog, error) {
	return c.catalog.Filter(strings.TrimSpace(c.flags.category))
}
