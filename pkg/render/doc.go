// Package render draws the dashboard's charts.
//
// # Overview
//
// All charts are produced as standalone SVG documents:
//
//   - [AreaChart]: grouped bars comparing each department's area before and
//     after optimization
//   - [FloorPlan]: the floor-plan grid with departments coloured by their
//     planning importance
//   - [AdjacencyDOT] and [RenderDOT]: the REL chart as an undirected
//     Graphviz diagram, edges coloured by closeness rating
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := render.AreaChart(s.Analyze(), render.ChartOptions{})
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
package render

import (
	"bytes"
	"encoding/xml"
)

// fontFamily is used for every text element.
const fontFamily = `system-ui, -apple-system, 'Segoe UI', sans-serif`

// escapeXML escapes s for use in SVG text and attribute values.
func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
