// Package pipeline runs the study operations shared by the CLI and the HTTP
// dashboard: ranking, area analysis, chart rendering and recommendations.
//
// By centralizing this logic, both entry points get the same caching,
// logging and observability hooks.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	runner.Advisor = advisor.New(gen, advisor.Options{})
//
//	ranking, err := runner.Rank(ctx, s)
//	svg, err := runner.Render(ctx, s, pipeline.Options{Chart: pipeline.ChartAdjacency})
//	rec, err := runner.Recommend(ctx, s, false)
//
// Rendered artifacts that are slow to produce (Graphviz layouts, PNG and PDF
// conversion) and generated recommendations are cached under keys derived
// from a content hash of the study, so editing the study never returns a
// stale result.
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lacima/plantlayout/pkg/cache"
	"github.com/lacima/plantlayout/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default area chart width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default area chart height in pixels.
	DefaultHeight = 380

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// TTLArtifact is how long rendered artifacts stay cached.
	TTLArtifact = 7 * 24 * time.Hour

	// TTLRecommendation is how long a generated recommendation is reused.
	TTLRecommendation = 24 * time.Hour
)

// Chart kinds.
const (
	ChartArea      = "area"
	ChartPlan      = "plan"
	ChartAdjacency = "adjacency"
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// Charts lists the supported chart kinds.
var Charts = []string{ChartArea, ChartPlan, ChartAdjacency}

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateChart checks that a chart kind is supported.
func ValidateChart(chart string) error {
	if err := errors.ValidateChartName(chart); err != nil {
		return err
	}
	if !slices.Contains(Charts, chart) {
		return errors.New(errors.ErrCodeInvalidChart, "unknown chart %q (must be one of: %s)", chart, strings.Join(Charts, ", "))
	}
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// =============================================================================
// Options - Render Configuration
// =============================================================================

// Options configures one rendered artifact.
type Options struct {
	Chart  string `json:"chart"`
	Format string `json:"format,omitempty"`

	// Area chart size.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// PNG scale factor.
	Scale float64 `json:"scale,omitempty"`

	// ShowUnimportant draws U-rated pairs on the adjacency chart.
	ShowUnimportant bool `json:"show_unimportant,omitempty"`

	// Legend adds the importance legend to the floor plan.
	Legend bool `json:"legend,omitempty"`

	// Refresh bypasses the cache for reads; the result is still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks the chart and format and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Chart == "" {
		o.Chart = ChartArea
	}
	if o.Format == "" {
		o.Format = FormatSVG
	}
	o.Format = strings.ToLower(o.Format)
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if err := ValidateChart(o.Chart); err != nil {
		return err
	}
	return ValidateFormat(o.Format)
}

// Cacheable reports whether the artifact is worth caching. Area charts and
// floor plans are cheap to draw as SVG; Graphviz layouts and conversions are not.
func (o *Options) Cacheable() bool {
	return o.Chart == ChartAdjacency || o.Format != FormatSVG
}

// ArtifactKeyOpts returns cache key options for the artifact.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Chart:  o.Chart,
		Format: o.Format,
	}
	switch o.Chart {
	case ChartArea:
		opts.Width, opts.Height = o.Width, o.Height
	case ChartPlan:
		opts.Legend = o.Legend
	case ChartAdjacency:
		opts.ShowUnimportant = o.ShowUnimportant
	}
	if o.Format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

// ContentType returns the MIME type of the artifact.
func (o *Options) ContentType() string {
	switch o.Format {
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	}
	return "image/svg+xml"
}
