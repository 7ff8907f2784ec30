package pipeline

import (
	"context"

	"github.com/matzehuels/kintree/pkg/pedigree"
	"github.com/matzehuels/kintree/pkg/render/nodelink"
)

// RenderGraph draws the kinship graph of p in format (dot or svg). When
// hints are given, generations are pinned in hint order.
func RenderGraph(ctx context.Context, p *pedigree.Pedigree, hints *pedigree.Hints, format string, detailed bool) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	dot, err := nodelink.ToDOT(p, nodelink.Options{Detailed: detailed, Hints: hints})
	if err != nil {
		return nil, err
	}
	if format == FormatDOT {
		return []byte(dot), nil
	}
	return nodelink.RenderSVG(ctx, dot)
}
