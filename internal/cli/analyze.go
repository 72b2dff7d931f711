package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lacima/plantlayout/pkg/study"
)

// analyzeCommand creates the analyze command, which compares department areas
// before and after optimization.
func (c *CLI) analyzeCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compare department areas before and after optimization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			s, err := c.loadStudy(cfg)
			if err != nil {
				return err
			}

			a := s.Analyze()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(a)
			}

			fmt.Fprintln(out, StyleTitle.Render("Department areas (m²)"))
			fmt.Fprintln(out, analysisTable(a))
			if g := a.LargestGrowth; g != nil {
				fmt.Fprintf(out, "%s %s %s\n", StyleDim.Render("Largest growth:   "), g.Department.Code, styleGrow.Render(formatDelta(g.Delta)))
			}
			if r := a.LargestReduction; r != nil {
				fmt.Fprintf(out, "%s %s %s\n", StyleDim.Render("Largest reduction:"), r.Department.Code, styleShrink.Render(formatDelta(r.Delta)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")
	return cmd
}

// analysisTable renders the per-department areas with a totals row.
func analysisTable(a study.Analysis) string {
	rows := make([][]string, 0, len(a.Rows)+1)
	for _, r := range a.Rows {
		d := r.Department
		rows = append(rows, []string{
			d.Code, d.Name,
			formatArea(d.CurrentArea), formatArea(d.NeededArea),
			formatArea(d.AislesArea), formatArea(d.WorkstationsArea),
			formatDelta(r.Delta),
		})
	}
	rows = append(rows, []string{
		"", "Total",
		formatArea(a.TotalCurrent), formatArea(a.TotalNeeded),
		formatArea(a.TotalAisles), formatArea(a.TotalWorkstations),
		formatDelta(a.TotalDelta),
	})
	totalRow := len(a.Rows)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Code", "Department", "Current", "Needed", "Aisles", "Workstations", "Change").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == totalRow {
				base = base.Bold(true)
			}
			if col >= 2 {
				base = base.Align(lipgloss.Right)
			}
			if col == 6 && row < totalRow {
				switch a.Rows[row].Trend {
				case study.TrendGrow:
					return base.Inherit(styleGrow)
				case study.TrendShrink:
					return base.Inherit(styleShrink)
				}
				return base.Foreground(colorDim)
			}
			return base
		}).
		Render()
}

func formatArea(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatDelta renders a signed area change, e.g. "+25" or "-65".
func formatDelta(v float64) string {
	if v > 0 {
		return "+" + formatArea(v)
	}
	return formatArea(v)
}
