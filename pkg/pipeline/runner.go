package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/kintree/pkg/autohint"
	"github.com/matzehuels/kintree/pkg/cache"
	"github.com/matzehuels/kintree/pkg/layout"
	"github.com/matzehuels/kintree/pkg/observability"
	"github.com/matzehuels/kintree/pkg/pedigree"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute generates hints for p and lays it out under them.
func (r *Runner) Execute(ctx context.Context, p *pedigree.Pedigree, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run", result.RunID)
	opts.Logger = logger

	pedHash, err := pedigreeHash(p)
	if err != nil {
		return nil, err
	}
	result.PedigreeHash = pedHash
	result.Stats.Individuals = p.Len()

	// Stage 1: Hints
	hintStart := time.Now()
	hints, calls, hintsHit, err := r.hints(ctx, p, pedHash, opts)
	if err != nil {
		return nil, fmt.Errorf("hints: %w", err)
	}
	result.Hints = hints
	result.Stats.HintTime = time.Since(hintStart)
	result.Stats.LayoutCalls = calls
	result.Stats.SpouseHints = len(hints.Spouse)
	result.CacheInfo.HintsHit = hintsHit

	logger.Info("generated hints",
		"individuals", p.Len(),
		"spouse_hints", len(hints.Spouse),
		"cached", hintsHit,
		"duration", result.Stats.HintTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	lay, layoutHit, err := r.LayoutWithCacheInfo(ctx, p, pedHash, hints, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = lay
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Levels = lay.Levels()
	for _, n := range lay.N {
		result.Stats.Slots += n
	}
	result.Stats.Duplicates = lay.Duplicates()
	result.Stats.Crossings = lay.Crossings()
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"levels", result.Stats.Levels,
		"slots", result.Stats.Slots,
		"crossings", result.Stats.Crossings,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	return result, nil
}

// HintsWithCacheInfo generates hints for p with caching and reports whether
// the result came from the cache. A pedigree that already carries hints is
// returned as-is without touching the cache.
func (r *Runner) HintsWithCacheInfo(ctx context.Context, p *pedigree.Pedigree, opts Options) (*pedigree.Hints, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	pedHash, err := pedigreeHash(p)
	if err != nil {
		return nil, false, err
	}
	hints, _, hit, err := r.hints(ctx, p, pedHash, opts)
	return hints, hit, err
}

// Hints is a convenience wrapper that calls HintsWithCacheInfo and discards the cache hit info.
func (r *Runner) Hints(ctx context.Context, p *pedigree.Pedigree, opts Options) (*pedigree.Hints, error) {
	h, _, err := r.HintsWithCacheInfo(ctx, p, opts)
	return h, err
}

func (r *Runner) hints(ctx context.Context, p *pedigree.Pedigree, pedHash string, opts Options) (*pedigree.Hints, int, bool, error) {
	if p.Hints != nil {
		return p.Hints, 0, false, nil
	}

	cacheKey := r.Keyer.HintsKey(pedHash, opts.HintsKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if h, err := pedigree.UnmarshalHints(data); err == nil {
				observability.Cache().OnCacheHit(ctx, cacheKey)
				return h, 0, true, nil
			}
			// Undecodable entries fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, cacheKey)
	}

	hooks := observability.Pipeline()
	hooks.OnHintStart(ctx, p.Len())
	start := time.Now()

	calls := 0
	fn := instrument(ctx, opts.Engine, Engines[opts.Engine], &calls)
	h, err := autohint.Generate(p, fn, autohint.Options{
		Packed: opts.Packed(),
		Align:  opts.AlignWeights(),
		Logger: opts.Logger,
	})
	spouses := 0
	if h != nil {
		spouses = len(h.Spouse)
	}
	hooks.OnHintComplete(ctx, spouses, time.Since(start), err)
	if err != nil {
		return nil, calls, false, err
	}

	if data, err := pedigree.MarshalHints(h); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLHints); err != nil {
			opts.Logger.Warn("cache write failed", "key", cacheKey, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, cacheKey, len(data))
		}
	}
	return h, calls, false, nil
}

// LayoutWithCacheInfo lays p out under hints with caching and reports
// whether the result came from the cache.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, p *pedigree.Pedigree, pedHash string, hints *pedigree.Hints, opts Options) (*layout.Layout, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hintsData, err := pedigree.MarshalHints(hints)
	if err != nil {
		return nil, false, fmt.Errorf("serialize hints for cache key: %w", err)
	}
	cacheKey := r.Keyer.LayoutKey(pedHash, opts.LayoutKeyOpts(cache.Hash(hintsData)))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.Layout
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, cacheKey)
				return &cached, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, cacheKey)
	}

	calls := 0
	fn := instrument(ctx, opts.Engine, Engines[opts.Engine], &calls)
	lay, err := fn(p, layoutOptions(opts, hints.Clone()))
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(lay); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err != nil {
			opts.Logger.Warn("cache write failed", "key", cacheKey, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, cacheKey, len(data))
		}
	}
	return lay, false, nil
}

// Close releases the underlying cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// applyLogger uses the runner's logger when the options carry the default
// discard logger.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil || opts.Logger == discard {
		opts.Logger = r.Logger
	}
}

// pedigreeHash hashes the canonical encoding of p without its hints, so a
// pedigree hashes the same before and after hints are attached.
func pedigreeHash(p *pedigree.Pedigree) (string, error) {
	bare := *p
	bare.Hints = nil
	data, err := pedigree.Marshal(&bare)
	if err != nil {
		return "", fmt.Errorf("serialize pedigree for cache key: %w", err)
	}
	return cache.Hash(data), nil
}
