package autohint

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/kintree/pkg/pedigree"
)

// Options configures [Generate].
type Options struct {
	// Hints seeds the computation. Non-zero Order values are kept as the
	// starting rank of their individual; Spouse hints are passed on to
	// every layout call and kept in the result.
	Hints *pedigree.Hints
	// Packed is forwarded to the layout function.
	Packed bool
	// Align is forwarded to the layout function; nil disables alignment.
	Align []float64
	// Logger receives per-generation progress at debug level and the
	// refinement fallback at warn level. Nil disables logging.
	Logger *log.Logger
}

// DefaultOptions returns options with a packed layout and no alignment.
func DefaultOptions() Options {
	return Options{Packed: true}
}
