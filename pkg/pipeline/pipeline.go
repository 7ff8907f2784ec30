// Package pipeline runs hint generation and layout with caching.
//
// This package wires the pure [autohint] algorithm to the outside world:
// pedigree files, a layout engine, a cache backend, observability hooks and
// logging. The CLI and any service embedding kintree go through it so
// caching and defaults stay consistent.
//
// # Stages
//
//  1. Parse: read a JSON or TOML pedigree file
//  2. Hints: generate order and spouse hints (cached)
//  3. Layout: lay the pedigree out under those hints (cached)
//  4. Graph: optionally render the kinship graph as DOT or SVG
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	ped, err := pipeline.Parse(ctx, "family.toml")
//	result, err := runner.Execute(ctx, ped, pipeline.Options{})
//	fmt.Println(result.Hints.Order)
//
// [autohint]: github.com/matzehuels/kintree/pkg/autohint
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kintree/pkg/cache"
	"github.com/matzehuels/kintree/pkg/errors"
	"github.com/matzehuels/kintree/pkg/layout"
	"github.com/matzehuels/kintree/pkg/pedigree"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultEngine is the layout engine used when none is named.
const DefaultEngine = EngineBasic

// Format constants for graph output.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// discard marks options without a caller-supplied logger.
var discard = log.NewWithOptions(io.Discard, log.Options{})

// ValidFormats is the set of supported graph output formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. It supports JSON serialization so a
// service can accept it as a request body.
type Options struct {
	// Engine names the layout engine (see Engines).
	Engine string `json:"engine,omitempty"`
	// Loose disables the packed layout. The zero value packs, which is the
	// hint generator's default.
	Loose bool `json:"loose,omitempty"`
	// Align enables alignment with layout.DefaultAlign weights.
	Align bool `json:"align,omitempty"`
	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs.
	RunID string

	// PedigreeHash is the content hash of the canonical pedigree.
	PedigreeHash string

	Hints  *pedigree.Hints
	Layout *layout.Layout

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains run statistics.
type Stats struct {
	Individuals int
	Levels      int
	Slots       int
	Duplicates  int
	Crossings   int
	SpouseHints int
	LayoutCalls int
	HintTime    time.Duration
	LayoutTime  time.Duration
}

// CacheInfo tracks cache hits for each stage.
type CacheInfo struct {
	HintsHit  bool
	LayoutHit bool
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a graph format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: dot, svg)", format)
	}
	return nil
}

// ValidateEngine checks that a layout engine is registered.
func ValidateEngine(engine string) error {
	if _, ok := Engines[engine]; !ok {
		return errors.New(errors.ErrCodeInvalidInput, "unknown layout engine: %q", engine)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Logger == nil {
		o.Logger = discard
	}
}

// Validate applies defaults and checks the options.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := ValidateEngine(o.Engine); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// Packed reports whether the layout should be packed.
func (o *Options) Packed() bool { return !o.Loose }

// AlignWeights returns the alignment weights for the layout engine, nil
// when alignment is off.
func (o *Options) AlignWeights() []float64 {
	if !o.Align {
		return nil
	}
	return layout.DefaultAlign
}

// HintsKeyOpts returns cache key options for hint generation.
func (o *Options) HintsKeyOpts() cache.HintsKeyOpts {
	return cache.HintsKeyOpts{
		Packed: o.Packed(),
		Align:  o.AlignWeights(),
		Engine: o.Engine,
	}
}

// LayoutKeyOpts returns cache key options for a layout under hints with
// the given hash.
func (o *Options) LayoutKeyOpts(hintsHash string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Packed:    o.Packed(),
		Align:     o.AlignWeights(),
		Engine:    o.Engine,
		HintsHash: hintsHash,
	}
}
