package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/kintree/pkg/observability"
	"github.com/matzehuels/kintree/pkg/pedigree"
)

// Parse reads and validates a pedigree file. The format follows the file
// extension: .toml for TOML, anything else for JSON.
func Parse(ctx context.Context, path string) (*pedigree.Pedigree, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	p, err := pedigree.ReadFile(path)
	n := 0
	if p != nil {
		n = p.Len()
	}
	hooks.OnLoadComplete(ctx, path, n, time.Since(start), err)
	return p, err
}
