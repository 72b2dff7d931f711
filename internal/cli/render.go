package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lacima/plantlayout/pkg/pipeline"
)

const defaultOutputBase = "plantlayout"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file (single chart) or base path
	charts      []string // area, plan, adjacency
	format      string   // svg, png, pdf
	width       int      // area chart width in pixels
	height      int      // area chart height in pixels
	scale       float64  // PNG scale factor
	legend      bool     // closeness legend on the floor plan
	unimportant bool     // draw U edges on the REL chart
	noCache     bool
	refresh     bool
}

// renderCommand creates the render command for writing charts to files.
func (c *CLI) renderCommand() *cobra.Command {
	var chartsStr string
	opts := renderOpts{
		format: pipeline.FormatSVG,
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
		scale:  pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render study charts to SVG, PNG or PDF",
		Long: `Render draws charts of the study:

  area       grouped bars of current and needed area per department
  plan       the proposed floor plan, cells colored by importance
  adjacency  the REL chart as a graph, edges styled by closeness rating

PNG and PDF output require rsvg-convert (librsvg) on the PATH.`,
		Example: `  plantlayout render
  plantlayout render -c area,plan,adjacency -f png
  plantlayout render -c plan --legend -o floor.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.charts = parseCharts(chartsStr)
			if len(opts.charts) == 1 && opts.charts[0] == "all" {
				opts.charts = pipeline.Charts
			}
			for _, ch := range opts.charts {
				if err := pipeline.ValidateChart(ch); err != nil {
					return err
				}
			}
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single chart) or base path (several)")
	cmd.Flags().StringVarP(&chartsStr, "chart", "c", "", "chart(s): area (default), plan, adjacency, all (comma-separated)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, pdf")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "area chart width")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "area chart height")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "draw the closeness legend on the floor plan")
	cmd.Flags().BoolVar(&opts.unimportant, "unimportant", false, "draw U (unimportant) relationships on the REL chart")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOpts) error {
	ctx := cmd.Context()
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	s, err := c.loadStudy(cfg)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, cfg, opts.noCache, false)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	var written []string
	for _, chart := range opts.charts {
		popts := pipeline.Options{
			Chart:           chart,
			Format:          opts.format,
			Width:           opts.width,
			Height:          opts.height,
			Scale:           opts.scale,
			Legend:          opts.legend,
			ShowUnimportant: opts.unimportant,
			Refresh:         opts.refresh,
			Logger:          c.Logger,
		}
		data, cached, err := runner.RenderWithCacheInfo(ctx, s, popts)
		if err != nil {
			return fmt.Errorf("render %s: %w", chart, err)
		}

		path := outputPath(opts.output, chart, opts.format, len(opts.charts) > 1)
		if err := writeOutput(path, data); err != nil {
			return err
		}
		c.Logger.Debug("wrote chart", "chart", chart, "path", path, "bytes", len(data), "cached", cached)
		written = append(written, path)
	}

	prog.done(fmt.Sprintf("Rendered %d chart(s)", len(written)))
	for _, p := range written {
		printFile(p)
	}
	return nil
}

// outputPath picks the file for one chart. With a single chart an explicit
// output is used as is; otherwise charts are written as <base>-<chart>.<format>.
func outputPath(output, chart, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := defaultOutputBase
	if output != "" {
		base = strings.TrimSuffix(output, filepath.Ext(output))
	}
	return fmt.Sprintf("%s-%s.%s", base, chart, format)
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
