// Package nodelink renders a pedigree as a node-link kinship diagram.
//
// # Overview
//
// This is a debugging view of the kinship graph itself, not of a computed
// layout: Graphviz places the nodes. Individuals are drawn with the usual
// pedigree shapes (box for male, ellipse for female, diamond for unknown,
// triangle for a terminated pregnancy). Each couple with children gets a
// small union node that the children hang from.
//
// # Usage
//
//	dot, err := nodelink.ToDOT(ped, nodelink.Options{Hints: hints})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: labels include generation depth and, with hints, the order
//     value of each individual
//   - Hints: individuals of one generation are pinned to one rank and
//     listed in hint order; spouse hints are drawn as dotted links
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
