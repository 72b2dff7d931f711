package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lacima/plantlayout/pkg/errors"
	"github.com/lacima/plantlayout/pkg/slp"
	"github.com/lacima/plantlayout/pkg/study"
)

// rankCommand creates the rank command, which prints the placement order.
func (c *CLI) rankCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Order departments for placement by Total Closeness Rating",
		Long: `Rank scores every department by its Total Closeness Rating (the sum of the
weights of all adjacency records touching it) and prints them in placement
order, highest first. Departments with equal TCR keep their input order.

Any invalid rating in the study fails the whole command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			s, err := c.loadStudy(cfg)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context(), cfg, true, false)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			ranking, err := runner.Rank(cmd.Context(), s)
			if err != nil {
				return err
			}
			c.Logger.Debug("ranking complete", "departments", len(ranking))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ranking)
			}

			fmt.Fprintln(cmd.OutOrStdout(), StyleTitle.Render(s.Name))
			fmt.Fprintln(cmd.OutOrStdout(), rankingTable(ranking))
			prog.done(fmt.Sprintf("Ranked %d departments", len(ranking)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the placement order as JSON")
	return cmd
}

// rankingTable renders a placement order.
func rankingTable(ranking []slp.Placement) string {
	rows := make([][]string, len(ranking))
	for i, p := range ranking {
		rows[i] = []string{
			strconv.Itoa(p.Position),
			p.Department.Code,
			p.Department.Name,
			string(p.Department.Importance),
			strconv.Itoa(p.TCR),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("#", "Code", "Department", "Importance", "TCR").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 0, 4:
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			case 3:
				return base.Inherit(ratingStyle(ranking[row].Department.Importance))
			}
			return base
		}).
		Render()
}

// tcrCommand creates the tcr command, which explains one department's score.
func (c *CLI) tcrCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tcr <department>",
		Short: "Show the Total Closeness Rating of one department",
		Long: `TCR prints the Total Closeness Rating of a department, given by id or code,
and the adjacency records that contribute to it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			s, err := c.loadStudy(cfg)
			if err != nil {
				return err
			}

			dept, err := resolveDepartment(s, args[0])
			if err != nil {
				return err
			}
			tcr, err := slp.Rate(dept.ID, s.Adjacencies)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", StyleTitle.Render(dept.Code), StyleValue.Render(dept.Name))
			fmt.Fprintln(out, contributionTable(s, dept.ID))
			fmt.Fprintf(out, "%s %s\n", StyleDim.Render("TCR"), StyleNumber.Render(strconv.Itoa(tcr)))
			return nil
		},
	}
}

// resolveDepartment finds a department by id, then by case-insensitive code.
func resolveDepartment(s *study.Study, ref string) (slp.Department, error) {
	if d, ok := s.Department(ref); ok {
		return d, nil
	}
	for _, d := range s.Departments {
		if strings.EqualFold(d.Code, ref) {
			return d, nil
		}
	}
	return slp.Department{}, errors.New(errors.ErrCodeNotFound, "no department with id or code %q", ref)
}

// contributionTable lists the adjacency records touching id. Records are
// already validated by the time this runs.
func contributionTable(s *study.Study, id string) string {
	var rows [][]string
	var ratings []slp.Rating
	for _, a := range s.Adjacencies {
		if !a.Touches(id) {
			continue
		}
		other := a.ToID
		if other == id {
			other = a.FromID
		}
		name := other
		if d, ok := s.Department(other); ok {
			name = d.Code + " " + d.Name
		}
		w, _ := a.Rating.Weight()
		rows = append(rows, []string{name, string(a.Rating), a.Rating.Label(), strconv.Itoa(w)})
		ratings = append(ratings, a.Rating)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("With", "Rating", "Meaning", "Weight").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 1:
				return base.Inherit(ratingStyle(ratings[row]))
			case 3:
				return base.Align(lipgloss.Right)
			}
			return base
		}).
		Render()
}
