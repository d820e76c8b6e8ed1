package inspect

import (
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"uicss/css"
	"uicss/utils/debug"
)

// renderText produces the human oriented dump of command results. Machine
// formats are handled by output directly.
func renderText(v any) (string, error) {
	tw := debug.NewTreeWriter()
	switch r := v.(type) {
	case sheetSummary:
		tw.Field(0, "source", r.Source)
		tw.Line(0, "selectors (%d):", len(r.Selectors))
		for _, s := range r.Selectors {
			tw.Line(1, "%s", s)
		}
		tw.List(0, "animations", r.Animations)
		warnings(tw, r.Warnings)
	case resolveSummary:
		tw.Field(0, "source", r.Source)
		tw.Line(0, "matches (%d):", len(r.Matches))
		for _, m := range r.Matches {
			tw.Line(1, "%s (tier %d)", m.Selector, m.Tier)
		}
		tw.Line(0, "effective:")
		if err := styleBlock(tw, r.Effective); err != nil {
			return "", err
		}
	case scanSummary:
		tw.Field(0, "source", r.Source)
		tw.Field(0, "sheets", r.Sheets)
		warnings(tw, r.Warnings)
		tw.Line(0, "nodes (%d):", len(r.Nodes))
		for _, n := range r.Nodes {
			tw.Line(1, "%s", nodeLabel(n))
			tw.List(2, "selectors", n.Selectors)
		}
	default:
		return "", fmt.Errorf("no text renderer for %T", v)
	}
	return tw.String(), nil
}

func warnings(tw *debug.TreeWriter, ws []string) {
	if len(ws) == 0 {
		return
	}
	tw.Line(0, "warnings (%d):", len(ws))
	for _, w := range ws {
		tw.Field(1, "warning", w)
	}
}

func nodeLabel(n nodeSummary) string {
	var b strings.Builder
	b.WriteString(n.Tag)
	if len(n.ID) > 0 {
		b.WriteByte('#')
		b.WriteString(n.ID)
	}
	for _, c := range n.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}

func styleBlock(tw *debug.TreeWriter, s css.Style) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	for line := range strings.Lines(string(data)) {
		tw.Line(1, "%s", strings.TrimRight(line, "\n"))
	}
	return nil
}
