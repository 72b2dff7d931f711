package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/lacima/plantlayout/pkg/study"
)

// Bar colours for the area comparison.
const (
	colorBefore = "#94a3b8"
	colorAfter  = "#10b981"
	colorGrid   = "#f1f5f9"
	colorAxis   = "#64748b"
)

// ChartOptions configures [AreaChart]. Zero values select the defaults.
type ChartOptions struct {
	Width       float64 // default 800
	Height      float64 // default 380
	BarWidth    float64 // default 20
	Ticks       int     // y-axis intervals, default 5
	BeforeLabel string  // default "Before"
	AfterLabel  string  // default "After"
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 380
	}
	if o.BarWidth <= 0 {
		o.BarWidth = 20
	}
	if o.Ticks <= 0 {
		o.Ticks = 5
	}
	if o.BeforeLabel == "" {
		o.BeforeLabel = "Before"
	}
	if o.AfterLabel == "" {
		o.AfterLabel = "After"
	}
	return o
}

const (
	chartMarginTop    = 40.0
	chartMarginRight  = 20.0
	chartMarginBottom = 40.0
	chartMarginLeft   = 56.0
)

// AreaChart draws one pair of bars per department: current area and needed
// area, labelled with the department code. Departments appear in analysis
// order. An empty analysis produces an empty chart with axes only.
func AreaChart(a study.Analysis, opts ChartOptions) []byte {
	o := opts.withDefaults()

	plotW := o.Width - chartMarginLeft - chartMarginRight
	plotH := o.Height - chartMarginTop - chartMarginBottom
	baseY := chartMarginTop + plotH

	maxV := 0.0
	for _, r := range a.Rows {
		maxV = max(maxV, r.Department.CurrentArea, r.Department.NeededArea)
	}
	top := niceCeil(maxV, o.Ticks)
	yOf := func(v float64) float64 { return baseY - v/top*plotH }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		o.Width, o.Height, o.Width, o.Height, escapeXML(fontFamily))

	// Grid and y-axis labels.
	for i := 0; i <= o.Ticks; i++ {
		v := top / float64(o.Ticks) * float64(i)
		y := yOf(v)
		fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="3 3"/>`+"\n",
			chartMarginLeft, y, chartMarginLeft+plotW, y, colorGrid)
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="12" text-anchor="end" fill="%s">%s</text>`+"\n",
			chartMarginLeft-8, y+4, colorAxis, formatArea(v))
	}
	fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
		chartMarginLeft, baseY, chartMarginLeft+plotW, baseY, colorAxis)

	if n := len(a.Rows); n > 0 {
		groupW := plotW / float64(n)
		barW := min(o.BarWidth, groupW/2-2)
		for i, r := range a.Rows {
			cx := chartMarginLeft + groupW*(float64(i)+0.5)
			d := r.Department
			writeBar(&buf, cx-barW-1, barW, yOf(d.CurrentArea), baseY, colorBefore,
				fmt.Sprintf("%s %s: %s m²", d.Name, o.BeforeLabel, formatArea(d.CurrentArea)))
			writeBar(&buf, cx+1, barW, yOf(d.NeededArea), baseY, colorAfter,
				fmt.Sprintf("%s %s: %s m²", d.Name, o.AfterLabel, formatArea(d.NeededArea)))
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="12" font-weight="600" text-anchor="middle">%s</text>`+"\n",
				cx, baseY+18, escapeXML(d.Code))
		}
	}

	// Legend.
	lx := o.Width - chartMarginRight - 150
	writeLegend(&buf, lx, 16, colorBefore, o.BeforeLabel)
	writeLegend(&buf, lx+75, 16, colorAfter, o.AfterLabel)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeBar(buf *bytes.Buffer, x, w, y, baseY float64, fill, title string) {
	h := baseY - y
	if h <= 0 {
		return
	}
	fmt.Fprintf(buf, `  <rect class="bar" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="%s"><title>%s</title></rect>`+"\n",
		x, y, w, h, fill, escapeXML(title))
}

func writeLegend(buf *bytes.Buffer, x, y float64, fill, label string) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="12" height="12" rx="2" fill="%s"/>`+"\n", x, y-10, fill)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="12" font-weight="700">%s</text>`+"\n", x+16, y, escapeXML(label))
}

// niceCeil rounds v up to a value that divides into ticks steps of 1, 2, 2.5
// or 5 times a power of ten. Zero and negative values give ticks.
func niceCeil(v float64, ticks int) float64 {
	if v <= 0 {
		return float64(ticks)
	}
	raw := v / float64(ticks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if step := m * mag; step >= raw {
			return step * float64(ticks)
		}
	}
	return 10 * mag * float64(ticks)
}

func formatArea(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
