package nodelink

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/kintree/pkg/pedigree"
	"github.com/matzehuels/kintree/pkg/pedigree/transform"
)

// Options configures kinship diagram rendering.
type Options struct {
	// Detailed includes depth and order in node labels.
	Detailed bool
	// Hints, when set, fixes the left-to-right order inside each generation.
	Hints *pedigree.Hints
}

// ToDOT converts a pedigree to Graphviz DOT source. It fails only when the
// pedigree has no valid generation assignment.
func ToDOT(p *pedigree.Pedigree, opts Options) (string, error) {
	depth, err := transform.Depths(p)
	if err != nil {
		return "", err
	}
	hints := opts.Hints
	if hints == nil {
		hints = p.Hints
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for i, ind := range p.Individuals {
		label := ind.ID
		if opts.Detailed {
			label += fmt.Sprintf("\ndepth: %d", depth[i])
			if hints != nil && i < len(hints.Order) {
				label += fmt.Sprintf("\norder: %d", hints.Order[i])
			}
		}
		fmt.Fprintf(&buf, "  %s [label=%q, shape=%s];\n", node(i), label, shape(ind.Sex))
	}

	buf.WriteString("\n")
	for _, u := range unions(p) {
		fmt.Fprintf(&buf, "  %s [shape=point, width=0.08];\n", u.name)
		fmt.Fprintf(&buf, "  %s -> %s;\n", node(u.father), u.name)
		fmt.Fprintf(&buf, "  %s -> %s;\n", node(u.mother), u.name)
		for _, k := range u.children {
			fmt.Fprintf(&buf, "  %s -> %s;\n", u.name, node(k))
		}
	}

	for _, r := range p.Relations {
		switch {
		case r.Code == pedigree.RelationSpouse:
			fmt.Fprintf(&buf, "  %s -> %s [style=bold, constraint=false];\n", node(r.ID1), node(r.ID2))
		case r.Code.IsTwin():
			style := "dashed"
			if r.Code == pedigree.RelationMZTwin {
				style = "solid"
			}
			fmt.Fprintf(&buf, "  %s -> %s [style=%s, color=grey40, constraint=false];\n", node(r.ID1), node(r.ID2), style)
		}
	}

	if hints != nil {
		for _, s := range hints.Spouse {
			fmt.Fprintf(&buf, "  %s -> %s [style=dotted, color=steelblue, constraint=false];\n", node(s.Left), node(s.Right))
		}
		writeRanks(&buf, depth, hints.Order)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func node(i int) string { return "i" + strconv.Itoa(i) }

func shape(s pedigree.Sex) string {
	switch s {
	case pedigree.SexMale:
		return "box"
	case pedigree.SexFemale:
		return "ellipse"
	case pedigree.SexTerminated:
		return "triangle"
	default:
		return "diamond"
	}
}

type union struct {
	name           string
	mother, father int
	children       []int
}

// unions groups children by parent couple, in order of first child.
func unions(p *pedigree.Pedigree) []union {
	var out []union
	at := make(map[[2]int]int)
	for i, ind := range p.Individuals {
		if !ind.HasParents() {
			continue
		}
		key := [2]int{ind.Mother, ind.Father}
		k, ok := at[key]
		if !ok {
			k = len(out)
			at[key] = k
			out = append(out, union{
				name:   fmt.Sprintf("u%d_%d", ind.Mother, ind.Father),
				mother: ind.Mother,
				father: ind.Father,
			})
		}
		out[k].children = append(out[k].children, i)
	}
	return out
}

// writeRanks pins each generation to one rank, listed in hint order and
// chained by invisible edges so Graphviz keeps that order.
func writeRanks(buf *bytes.Buffer, depth, order []int) {
	for _, members := range transform.GroupByDepth(depth) {
		if len(members) == 0 {
			continue
		}
		members = slices.Clone(members)
		slices.SortStableFunc(members, func(a, b int) int { return cmp.Compare(order[a], order[b]) })

		names := make([]string, len(members))
		for k, m := range members {
			names[k] = node(m)
		}
		fmt.Fprintf(buf, "  { rank=same; %s; }\n", strings.Join(names, "; "))
		if len(names) > 1 {
			fmt.Fprintf(buf, "  %s [style=invis];\n", strings.Join(names, " -> "))
		}
	}
}

// RenderSVG renders DOT source to SVG using the embedded Graphviz build.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz svg header with one sized in
// user units, so the drawing scales when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
