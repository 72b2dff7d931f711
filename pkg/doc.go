// Package pkg provides the libraries behind plantlayout, a Systematic Layout
// Planning (SLP) tool for food-plant departments.
//
// # Overview
//
// A study lists a plant's departments with their areas before and after
// optimization, and a REL chart rating how close each pair of departments
// should be (A, E, I, O, U, X). Each department's Total Closeness Rating is
// the sum of the weights of the ratings that touch it; departments are placed
// in descending TCR order.
//
//  1. [slp] - Rating scale, TCR scoring and placement order
//  2. [study] - Study dataset, built-in seed study, file I/O and area analysis
//  3. [render] - Area chart, floor plan and REL chart drawing
//  4. [advisor] - Prompt construction and text generation
//  5. [pipeline] - Orchestration with caching (rank, render, recommend)
//  6. [server] - HTTP dashboard
//
// # Architecture
//
//	Study file or seed
//	       ↓
//	slp.Rank ──→ placement order ──→ advisor prompt ──→ generated study
//	       ↓
//	render (area, plan, adjacency) ──→ SVG / PNG / PDF
//
// Supporting packages: [cache] (file, Redis and null backends), [errors]
// (coded errors), [observability] (hooks) and [buildinfo].
package pkg
