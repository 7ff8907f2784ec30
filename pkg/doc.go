// Package pkg provides the libraries behind kintree pedigree layout hints.
//
// # Overview
//
// Kintree decides the left-to-right order of every generation of a family
// pedigree and which remarried partners must be drawn next to each other,
// so that a layout engine needs as few duplicated individuals as possible.
// The pkg directory is organized into these areas:
//
//  1. [pedigree] - The kinship graph, its builder and file formats
//  2. [autohint] - Hint generation (seed, twins, duplicate resolution)
//  3. [layout] - The slot table contract and the [layout/basic] engine
//  4. [pipeline] - Orchestration with caching (parse → hints → layout)
//  5. [cache], [observability], [errors] - Infrastructure
//
// # Architecture
//
//	pedigree.toml / pedigree.json
//	         ↓
//	    [pedigree] (validate, depths)
//	         ↓
//	    [autohint] ⇄ [layout] engine (repeated layouts)
//	         ↓
//	    Hints{Order, Spouse}
//	         ↓
//	    [layout] table, [render/nodelink] DOT/SVG
//
// # Quick Start
//
//	p, _ := pedigree.ReadFile("family.toml")
//	hints, err := autohint.Generate(p, basic.Layout, autohint.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	lay, _ := basic.Layout(p, layout.Options{Packed: true, Hints: hints})
//	fmt.Println(lay.Crossings(), lay.Duplicates())
//
// The [pipeline] package wraps the same steps with caching and hooks; the
// kintree CLI is built on it.
package pkg
