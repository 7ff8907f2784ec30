package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kintree/pkg/pedigree"
	"github.com/matzehuels/kintree/pkg/pipeline"
)

// hintCommand creates the hint command.
func (c *CLI) hintCommand() *cobra.Command {
	var (
		output string
		flags  pipelineFlags
	)

	cmd := &cobra.Command{
		Use:   "hint [pedigree.json|pedigree.toml]",
		Short: "Generate layout hints for a pedigree",
		Long: `Generate layout hints for a pedigree.

The hints order every generation and pin remarried partners next to each
other. Without -o the hints are printed as JSON. With -o the pedigree is
written back with the hints attached, as TOML or JSON by file extension.

A pedigree that already carries hints is passed through unchanged.
Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHint(cmd, args[0], output, &flags)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the hinted pedigree to this file")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runHint(cmd *cobra.Command, input, output string, flags *pipelineFlags) error {
	ctx := cmd.Context()
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	p, err := loadPedigree(ctx, input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := flags.options(cmd, cfg, c.Logger)
	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Generating hints...")
	spinner.Start()

	hints, cacheHit, err := runner.HintsWithCacheInfo(ctx, p, opts)
	if err != nil {
		spinner.StopWithError("Hint generation failed")
		return fmt.Errorf("generate hints: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	out := cmd.OutOrStdout()
	if output == "" {
		data, err := pedigree.MarshalHints(hints)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	hinted := *p
	hinted.Hints = hints
	if err := writePedigree(&hinted, output); err != nil {
		return err
	}

	printSuccess(out, "Hints generated")
	printFile(out, output)
	printStats(out, cacheHit,
		fmt.Sprintf("%d individuals", p.Len()),
		fmt.Sprintf("%d spouse hints", len(hints.Spouse)))
	printNextStep(out, "Inspect", appName+" layout "+output)
	return nil
}

// loadPedigree parses a pedigree file through the pipeline so load hooks fire.
func loadPedigree(ctx context.Context, path string) (*pedigree.Pedigree, error) {
	p, err := pipeline.Parse(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load pedigree %s: %w", path, err)
	}
	return p, nil
}

// writePedigree writes p as TOML or JSON depending on the extension.
func writePedigree(p *pedigree.Pedigree, path string) error {
	var buf bytes.Buffer
	write := pedigree.WriteJSON
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		write = pedigree.WriteTOML
	}
	if err := write(p, &buf); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
