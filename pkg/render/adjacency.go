package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/lacima/plantlayout/pkg/slp"
)

// AdjacencyOptions configures [AdjacencyDOT].
type AdjacencyOptions struct {
	// ShowUnimportant draws U-rated pairs. They carry no weight and are
	// hidden by default.
	ShowUnimportant bool
}

// AdjacencyDOT converts a REL chart to an undirected Graphviz graph. Each
// department becomes a node labelled with its code, name and Total Closeness
// Rating; each adjacency record becomes an edge coloured and labelled by its
// rating, with X edges dashed. Records naming unknown departments still
// produce nodes so the chart shows what the data says.
//
// The adjacencies must be valid; an invalid rating is returned as the
// *slp.InvalidRatingError from scoring.
func AdjacencyDOT(departments []slp.Department, adjacencies []slp.AdjacencyScore, opts AdjacencyOptions) (string, error) {
	scores, err := slp.Scores(departments, adjacencies)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("graph REL {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=12, penwidth=2];\n")
	buf.WriteString("\n")

	seen := make(map[string]bool, len(departments))
	for _, d := range departments {
		if seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		label := fmt.Sprintf("%s\n%s\nTCR %d", d.Code, d.Name, scores[d.ID])
		fmt.Fprintf(&buf, "  %q [%s];\n", d.ID, strings.Join(deptAttrs(d, label), ", "))
	}
	for _, a := range adjacencies {
		for _, id := range []string{a.FromID, a.ToID} {
			if !seen[id] {
				seen[id] = true
				fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,dashed\"];\n", id, id)
			}
		}
	}

	buf.WriteString("\n")
	for _, a := range adjacencies {
		if a.Rating == slp.RatingU && !opts.ShowUnimportant {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", a.FromID, a.ToID, strings.Join(edgeAttrs(a.Rating), ", "))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func deptAttrs(d slp.Department, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if d.Importance.Valid() {
		attrs = append(attrs, fmt.Sprintf("color=%q", d.Importance.Color()))
	}
	return attrs
}

func edgeAttrs(r slp.Rating) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", string(r)),
		fmt.Sprintf("color=%q", r.Color()),
		fmt.Sprintf("fontcolor=%q", r.Color()),
	}
	if r == slp.RatingX {
		attrs = append(attrs, "style=dashed")
	}
	if r == slp.RatingA {
		attrs = append(attrs, "penwidth=4")
	}
	return attrs
}

// RenderDOT renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [ToPDF] or [ToPNG].
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's root element (point units, offset
// viewBox) with one sized in pixels so the SVG embeds cleanly in HTML.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
