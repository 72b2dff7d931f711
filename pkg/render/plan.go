package render

import (
	"bytes"
	"fmt"

	"github.com/lacima/plantlayout/pkg/errors"
	"github.com/lacima/plantlayout/pkg/slp"
	"github.com/lacima/plantlayout/pkg/study"
)

// PlanOptions configures [FloorPlan].
type PlanOptions struct {
	CellSize float64 // default 90
	Gap      float64 // default 6
	Legend   bool    // list the importance colours (A to U) below the grid
}

const (
	planMargin = 16.0
	legendRowH = 18.0
)

// FloorPlan draws the study's plan grid. Each cell is filled with the colour
// of its department's importance rating and labelled with the department code
// and name. It fails with NOT_FOUND when the study has no plan.
func FloorPlan(s *study.Study, opts PlanOptions) ([]byte, error) {
	if s.Plan == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "study %q has no floor plan", s.Name)
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 90
	}
	if opts.Gap <= 0 {
		opts.Gap = 6
	}

	p := s.Plan
	step := opts.CellSize + opts.Gap
	gridW := float64(p.Cols)*step - opts.Gap
	gridH := float64(p.Rows)*step - opts.Gap
	width := gridW + 2*planMargin
	height := gridH + 2*planMargin
	if opts.Legend {
		height += legendRowH*5 + 8
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		width, height, width, height, escapeXML(fontFamily))
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="8" fill="#f8fafc" stroke="#e2e8f0"/>`+"\n",
		planMargin/2, planMargin/2, gridW+planMargin, gridH+planMargin)

	for _, c := range p.Cells {
		cols, rows := c.Spans()
		x := planMargin + float64(c.Col-1)*step
		y := planMargin + float64(c.Row-1)*step
		w := float64(cols)*step - opts.Gap
		h := float64(rows)*step - opts.Gap

		d, ok := s.Department(c.DeptID)
		fill := d.Importance.Color()
		code, name := c.DeptID, c.Label
		if ok {
			code = d.Code
			if name == "" {
				name = d.Name
			}
		}
		fmt.Fprintf(&buf, `  <g class="cell" data-dept="%s">`+"\n", escapeXML(c.DeptID))
		fmt.Fprintf(&buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="%s" fill-opacity="0.85" stroke="#334155" stroke-width="1"><title>%s</title></rect>`+"\n",
			x, y, w, h, fill, escapeXML(cellTitle(d, ok, name)))
		cx, cy := x+w/2, y+h/2
		fmt.Fprintf(&buf, `    <text x="%.1f" y="%.1f" font-size="16" font-weight="700" text-anchor="middle" fill="#ffffff">%s</text>`+"\n",
			cx, cy-2, escapeXML(code))
		if name != "" {
			fmt.Fprintf(&buf, `    <text x="%.1f" y="%.1f" font-size="11" text-anchor="middle" fill="#ffffff">%s</text>`+"\n",
				cx, cy+14, escapeXML(name))
		}
		buf.WriteString("  </g>\n")
	}

	if opts.Legend {
		writeImportanceLegend(&buf, planMargin, gridH+2*planMargin+12)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func cellTitle(d slp.Department, known bool, name string) string {
	if !known {
		return name
	}
	return fmt.Sprintf("%s (%+.0f m²)", name, d.AreaDelta())
}

func writeImportanceLegend(buf *bytes.Buffer, x, y float64) {
	for _, r := range slp.Ratings[:5] {
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="12" height="12" rx="2" fill="%s"/>`+"\n", x, y-10, r.Color())
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="11">%s</text>`+"\n", x+16, y, escapeXML(string(r)+" "+r.Label()))
		y += legendRowH
	}
}
