package advisor

import (
	"fmt"
	"strings"

	"github.com/lacima/plantlayout/pkg/slp"
	"github.com/lacima/plantlayout/pkg/study"
)

// BuildPrompt writes the request for a layout study of s. ranking is the
// placement order from Total Closeness Rating; an empty ranking omits that
// section. The response is requested in language.
func BuildPrompt(s *study.Study, ranking []slp.Placement, language string) string {
	if language == "" {
		language = DefaultLanguage
	}
	plant := s.Plant
	if plant == "" {
		plant = s.Name
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Role: Industrial engineer reviewing a facility layout improvement project (%s).\n", plant)
	sb.WriteString("The data below compares each department's current area (before) with the area needed after optimization (after).\n")

	sb.WriteString("\n### Departments\n")
	a := s.Analyze()
	for _, r := range a.Rows {
		d := r.Department
		fmt.Fprintf(&sb, "- %s (%s): Current=%sm2, Needed=%sm2, Change=%+.1fm2 (%s)",
			d.Code, d.Name, formatArea(d.CurrentArea), formatArea(d.NeededArea), r.Delta, r.Trend)
		if d.AislesArea > 0 || d.WorkstationsArea > 0 {
			fmt.Fprintf(&sb, ", Aisles=%sm2, Workstations=%sm2", formatArea(d.AislesArea), formatArea(d.WorkstationsArea))
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Total: Current=%sm2, Needed=%sm2, Change=%+.1fm2\n",
		formatArea(a.TotalCurrent), formatArea(a.TotalNeeded), a.TotalDelta)

	if flow := flowNames(s); len(flow) > 0 {
		sb.WriteString("\n### Material flow\n")
		sb.WriteString(strings.Join(flow, " -> "))
		sb.WriteString("\n")
	}

	if len(ranking) > 0 {
		sb.WriteString("\n### Placement order (Total Closeness Rating, strongest first)\n")
		for _, p := range ranking {
			fmt.Fprintf(&sb, "%d. %s (%s): TCR %d\n", p.Position, p.Department.Code, p.Department.Name, p.TCR)
		}
	}

	if len(s.Notes) > 0 {
		sb.WriteString("\n### Observations\n")
		for _, n := range s.Notes {
			fmt.Fprintf(&sb, "- %s\n", n)
		}
	}

	fmt.Fprintf(&sb, "\n**INSTRUCTION**: Write a professional analytical study in %s covering:\n", language)
	sb.WriteString("1. Gap analysis for the departments that suffer from congestion")
	if a.LargestGrowth != nil {
		fmt.Fprintf(&sb, " (such as %s)", a.LargestGrowth.Department.Name)
	}
	sb.WriteString(".\n")
	sb.WriteString("2. An engineering explanation of why some departments shrink")
	if a.LargestReduction != nil {
		fmt.Fprintf(&sb, " (such as %s)", a.LargestReduction.Department.Name)
	}
	sb.WriteString(" while others grow.\n")
	sb.WriteString("3. Material-flow recommendations following the sequence above.\n")
	sb.WriteString("4. A comment on the importance of improving aisles for worker safety.\n")
	if len(ranking) > 0 {
		sb.WriteString("5. Whether the placement order supports the flow, and which departments should be placed first.\n")
	}
	return sb.String()
}

// flowNames maps the study's flow to department names, keeping unknown IDs as-is.
func flowNames(s *study.Study) []string {
	names := make([]string, 0, len(s.Flow))
	for _, id := range s.Flow {
		if d, ok := s.Department(id); ok {
			names = append(names, d.Name)
			continue
		}
		names = append(names, id)
	}
	return names
}

func formatArea(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
