// Package cli implements the plantlayout command-line interface.
package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lacima/plantlayout/internal/config"
	"github.com/lacima/plantlayout/pkg/advisor"
	"github.com/lacima/plantlayout/pkg/buildinfo"
	"github.com/lacima/plantlayout/pkg/cache"
	"github.com/lacima/plantlayout/pkg/errors"
	"github.com/lacima/plantlayout/pkg/pipeline"
	"github.com/lacima/plantlayout/pkg/study"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = config.AppName

	// redisDialTimeout bounds the initial PING to a Redis cache.
	redisDialTimeout = 5 * time.Second
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	studyPath  string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Plantlayout ranks plant departments by closeness for layout planning",
		Long: `Plantlayout applies Systematic Layout Planning to a plant study: it scores
every department by its Total Closeness Rating (TCR), orders departments for
placement, compares areas before and after optimization, draws charts and asks
a text-generation service for a written layout study.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/plantlayout/config.toml)")
	root.PersistentFlags().StringVar(&c.studyPath, "study", "", "study file: .toml, .json, .yaml (default: built-in Lacima study)")

	// Register all subcommands
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.tcrCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.adviseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config and Study Loading
// =============================================================================

func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded config", "backend", cfg.Cache.Backend, "model", cfg.Advisor.Model)
	return cfg, nil
}

// loadStudy reads the study named by --study, then the config, falling back
// to the built-in seed study. Check warnings are logged, not returned.
func (c *CLI) loadStudy(cfg *config.Config) (*study.Study, error) {
	path := c.studyPath
	if path == "" {
		path = cfg.Study
	}
	if path == "" {
		c.Logger.Debug("using built-in study")
		return study.Seed(), nil
	}

	s, err := study.ReadFile(path)
	if err != nil {
		return nil, err
	}
	for _, w := range s.Check().Warnings {
		c.Logger.Warn(w, "study", filepath.Base(path))
	}
	c.Logger.Debug("loaded study", "path", path, "departments", len(s.Departments), "adjacencies", len(s.Adjacencies))
	return s, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The advisor is attached
// only when withAdvisor is set; a missing API key is logged, not returned,
// so callers can still show the fallback text.
func (c *CLI) newRunner(ctx context.Context, cfg *config.Config, noCache, withAdvisor bool) (*pipeline.Runner, error) {
	backend := cfg.Cache.Backend
	if noCache {
		backend = config.CacheNone
	}
	store, keyer, err := c.newCache(ctx, cfg, backend)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(store, keyer, c.Logger)

	if withAdvisor {
		gen, err := advisor.NewGemini(ctx, advisor.GeminiOptions{
			APIKey: cfg.Advisor.APIKey,
			Model:  cfg.Advisor.Model,
		})
		if err != nil {
			c.Logger.Warn("text generation disabled", "reason", errors.UserMessage(err))
		} else {
			runner.Advisor = advisor.New(gen, advisor.Options{Language: cfg.Advisor.Language})
		}
	}
	return runner, nil
}

func (c *CLI) newCache(ctx context.Context, cfg *config.Config, backend string) (cache.Cache, cache.Keyer, error) {
	switch backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil, nil

	case config.CacheRedis:
		dialCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
		defer cancel()
		rc, err := cache.NewRedisCache(dialCtx, cache.RedisOptions{
			Addr:     cfg.Cache.Redis.Addr,
			Username: cfg.Cache.Redis.Username,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Debug("using redis cache", "addr", cfg.Cache.Redis.Addr, "prefix", cfg.Cache.Redis.Prefix)
		return rc, cache.NewScopedKeyer(nil, cfg.Cache.Redis.Prefix), nil
	}

	dir, err := cfg.CacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, nil, err
	}
	return fc, nil, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseCharts parses a comma-separated chart list.
func parseCharts(s string) []string {
	if s == "" {
		return []string{pipeline.ChartArea}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
