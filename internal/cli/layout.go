package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kintree/pkg/layout"
	"github.com/matzehuels/kintree/pkg/pedigree"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		asJSON bool
		flags  pipelineFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [pedigree.json|pedigree.toml]",
		Short: "Show the slot table of a hinted layout",
		Long: `Lay a pedigree out under its hints and show the resulting slot table.

Hints are generated first when the file carries none. Each row is one slot:
the individual placed there, its parent family (the left slot of the
parent couple above, 0 if unattached), whether it is joined to its right
neighbour, and its horizontal position.

The summary counts duplicated individuals and crossing parent lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args[0], asJSON, &flags)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the slot table as JSON")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, input string, asJSON bool, flags *pipelineFlags) error {
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

	spinner := newSpinner(ctx, cmd.ErrOrStderr(), "Computing layout...")
	spinner.Start()

	opts := flags.options(cmd, cfg, c.Logger)
	result, err := runner.Execute(ctx, p, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Layout)
	}

	fmt.Fprintln(out, styleTitle.Render("Layout of "+input))
	fmt.Fprintln(out, slotTable(p, result.Layout))
	printKeyValue(out, "Run", result.RunID)
	printKeyValue(out, "Engine", opts.Engine)
	printKeyValue(out, "Layout calls", strconv.Itoa(result.Stats.LayoutCalls))
	if result.Stats.Duplicates > 0 {
		printWarning(out, "%d duplicated individuals", result.Stats.Duplicates)
	}
	printStats(out, result.CacheInfo.HintsHit && result.CacheInfo.LayoutHit,
		fmt.Sprintf("%d levels", result.Stats.Levels),
		fmt.Sprintf("%d slots", result.Stats.Slots),
		fmt.Sprintf("%d crossings", result.Stats.Crossings),
		(result.Stats.HintTime + result.Stats.LayoutTime).Round(time.Millisecond).String())
	return nil
}

// slotTable renders the layout as a bordered table, one row per slot.
func slotTable(p *pedigree.Pedigree, lay *layout.Layout) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Level", "Slot", "Individual", "Family", "Joined", "Pos").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
			case col == 2:
				return lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
			default:
				return lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
			}
		})

	for lev := range lay.Levels() {
		for s, id := range lay.Occupants(lev) {
			joined := ""
			if lay.Joined(lev, s) {
				joined = iconSuccess
			}
			t.Row(
				strconv.Itoa(lev+1),
				strconv.Itoa(s+1),
				p.Individuals[id].ID,
				strconv.Itoa(lay.Fam[lev][s]),
				joined,
				position(lay, lev, s),
			)
		}
	}
	return t.String()
}

func position(lay *layout.Layout, lev, s int) string {
	if lev >= len(lay.Pos) || s >= len(lay.Pos[lev]) {
		return ""
	}
	return strconv.FormatFloat(lay.Pos[lev][s], 'f', -1, 64)
}
