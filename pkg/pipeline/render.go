package pipeline

import (
	"context"
	"fmt"

	"github.com/lacima/plantlayout/pkg/render"
	"github.com/lacima/plantlayout/pkg/study"
)

// RenderStudy draws one chart of s without caching. opts must already be
// validated.
func RenderStudy(ctx context.Context, s *study.Study, opts Options) ([]byte, error) {
	svg, err := renderSVG(ctx, s, opts)
	if err != nil {
		return nil, err
	}
	return convert(svg, opts)
}

func renderSVG(ctx context.Context, s *study.Study, opts Options) ([]byte, error) {
	switch opts.Chart {
	case ChartArea:
		return render.AreaChart(s.Analyze(), render.ChartOptions{
			Width:  float64(opts.Width),
			Height: float64(opts.Height),
		}), nil
	case ChartPlan:
		return render.FloorPlan(s, render.PlanOptions{Legend: opts.Legend})
	case ChartAdjacency:
		dot, err := render.AdjacencyDOT(s.Departments, s.Adjacencies, render.AdjacencyOptions{
			ShowUnimportant: opts.ShowUnimportant,
		})
		if err != nil {
			return nil, err
		}
		return render.RenderDOT(ctx, dot)
	}
	return nil, fmt.Errorf("unsupported chart: %s", opts.Chart)
}

func convert(svg []byte, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatSVG:
		return svg, nil
	case FormatPNG:
		return render.ToPNG(svg, opts.Scale)
	case FormatPDF:
		return render.ToPDF(svg)
	}
	return nil, fmt.Errorf("unsupported format: %s", opts.Format)
}
