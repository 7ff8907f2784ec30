package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/kintree/pkg/layout"
	"github.com/matzehuels/kintree/pkg/layout/basic"
	"github.com/matzehuels/kintree/pkg/observability"
	"github.com/matzehuels/kintree/pkg/pedigree"
)

// EngineBasic names the reference layout engine.
const EngineBasic = "basic"

// Engines maps engine names to layout functions.
var Engines = map[string]layout.Func{
	EngineBasic: basic.Layout,
}

// instrument wraps an engine so every call is counted and reported to the
// layout hooks.
func instrument(ctx context.Context, engine string, fn layout.Func, calls *int) layout.Func {
	return func(p *pedigree.Pedigree, opts layout.Options) (*layout.Layout, error) {
		start := time.Now()
		lay, err := fn(p, opts)
		*calls++

		slots := 0
		if lay != nil {
			for _, n := range lay.N {
				slots += n
			}
		}
		observability.Layout().OnLayoutCall(ctx, engine, slots, time.Since(start), err)
		return lay, err
	}
}

// layoutOptions builds engine options from pipeline options.
func layoutOptions(opts Options, hints *pedigree.Hints) layout.Options {
	return layout.Options{
		Packed: opts.Packed(),
		Align:  opts.AlignWeights(),
		Hints:  hints,
	}
}
