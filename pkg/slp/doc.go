// Package slp scores and orders plant departments using the closeness
// ratings of Systematic Layout Planning.
//
// # Rating Scale
//
// Relationships between two departments are rated on a closed six-symbol
// scale, from "absolutely necessary" to "undesirable":
//
//	A  absolutely necessary   10000
//	E  especially important    1000
//	I  important                100
//	O  ordinary closeness        10
//	U  unimportant                0
//	X  undesirable           -10000
//
// Ratings arrive from files and HTTP bodies as plain strings, so a [Rating]
// can hold any value. [Rating.Valid] and [Rating.Weight] check membership in
// the scale; scoring fails with an [*InvalidRatingError] instead of treating
// an unknown symbol as zero.
//
// # Total Closeness Rating
//
// [Rate] computes the Total Closeness Rating (TCR) of one department: the
// summed weight of every adjacency record in which it appears at either
// end. Records are directional in shape but undirected for scoring.
//
//	tcr, err := slp.Rate("q", adjacencies)
//
// # Placement Order
//
// [Order] rates every department once and returns them by descending TCR,
// the sequence in which a CORELAP-style planner would place them. Ties keep
// the order the departments were given in. [Rank] returns the same sequence
// with the scores attached.
//
//	ordered, err := slp.Order(departments, adjacencies)
//
// All functions are pure: they never modify their arguments and keep no
// state between calls, so they are safe for concurrent use.
package slp
