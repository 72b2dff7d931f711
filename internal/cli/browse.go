package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lacima/plantlayout/pkg/slp"
	"github.com/lacima/plantlayout/pkg/study"
)

// List styles
var (
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// browseCommand creates the browse command, an interactive view of the
// placement order.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse departments in placement order interactively",
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
			ranking, err := s.Rank()
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewDepartmentListModel(s, ranking), tea.WithContext(cmd.Context()), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// DepartmentListModel - Interactive placement order
// =============================================================================

// DepartmentListModel is the bubbletea model for browsing a placement order.
// Enter toggles a detail pane with the records behind the selected TCR.
type DepartmentListModel struct {
	Study      *study.Study
	Placements []slp.Placement
	Cursor     int
	Height     int
	Offset     int
	Detail     bool
}

// NewDepartmentListModel creates a new department list model.
func NewDepartmentListModel(s *study.Study, ranking []slp.Placement) DepartmentListModel {
	return DepartmentListModel{
		Study:      s,
		Placements: ranking,
		Height:     12,
	}
}

func (m DepartmentListModel) Init() tea.Cmd {
	return nil
}

func (m DepartmentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Placements)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			m.Detail = !m.Detail
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DepartmentListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Study.Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if len(m.Placements) == 0 {
		b.WriteString(listDimStyle.Render("  no departments"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Placements))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Placements[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, strconv.Itoa(p.Position), p.Department.Code, p.Department.Name, strconv.Itoa(p.TCR)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("", "#", "Code", "Department", "TCR").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			base := lipgloss.NewStyle()
			if col == 4 {
				base = base.Align(lipgloss.Right)
			}
			if m.Offset+row == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Placements))))

	if m.Detail {
		b.WriteString("\n")
		b.WriteString(detailBoxStyle.Render(m.detailView()))
	}

	return b.String()
}

// detailView describes the selected department.
func (m DepartmentListModel) detailView() string {
	p := m.Placements[m.Cursor]
	d := p.Department

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleTitle.Render(d.Code), d.Name)
	fmt.Fprintf(&b, "%s %s %s %s m²\n",
		StyleDim.Render("area"), formatArea(d.CurrentArea), iconArrow, formatArea(d.NeededArea))
	fmt.Fprintf(&b, "%s %s\n\n", StyleDim.Render("importance"), ratingStyle(d.Importance).Render(string(d.Importance)))
	b.WriteString(contributionTable(m.Study, d.ID))
	fmt.Fprintf(&b, "\n%s %s", StyleDim.Render("TCR"), StyleNumber.Render(strconv.Itoa(p.TCR)))
	return b.String()
}
