package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kintree/pkg/pipeline"
)

// graphCommand creates the graph command for rendering kinship graphs.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		detailed bool
		hinted   bool
		flags    pipelineFlags
	)

	cmd := &cobra.Command{
		Use:   "graph [pedigree.json|pedigree.toml]",
		Short: "Render the kinship graph as DOT or SVG",
		Long: `Render the kinship graph of a pedigree with Graphviz.

The format follows the output extension (.dot or .svg, default svg).
With --hints each generation is drawn on one rank in hint order and the
spouse hints are shown as dotted edges.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args[0], output, detailed, hinted, &flags)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with sex and index")
	cmd.Flags().BoolVar(&hinted, "hints", false, "pin generations in hint order")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, input, output string, detailed, hinted bool, flags *pipelineFlags) error {
	ctx := cmd.Context()
	p, err := loadPedigree(ctx, input)
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + pipeline.FormatSVG
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	if err := pipeline.ValidateFormat(format); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	hints := p.Hints
	if hinted && hints == nil {
		cfg, err := c.loadConfig()
		if err != nil {
			return err
		}
		runner, err := c.newRunner(ctx, cfg, flags.noCache)
		if err != nil {
			return fmt.Errorf("initialize runner: %w", err)
		}
		defer runner.Close()
		if hints, err = runner.Hints(ctx, p, flags.options(cmd, cfg, c.Logger)); err != nil {
			return fmt.Errorf("generate hints: %w", err)
		}
	}

	data, err := pipeline.RenderGraph(ctx, p, hints, format, detailed)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	prog.done("Rendered " + output)

	out := cmd.OutOrStdout()
	printSuccess(out, "Graph rendered")
	printFile(out, output)
	return nil
}
