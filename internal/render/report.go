package render

import (
	"strings"

	"liuyao/internal/engine"
)

// View selects the line layout inside a report.
type View string

const (
	ViewDesktop View = "desktop"
	ViewMobile  View = "mobile"
)

// ReportOptions control the full report wrapper.
type ReportOptions struct {
	Options
	View View
	// Persona appends the grandmaster analysis prompt after the table.
	Persona bool
}

// DefaultReportOptions matches the terminal defaults: desktop view with
// spirit tags and the persona block.
var DefaultReportOptions = ReportOptions{
	Options: DefaultOptions,
	View:    ViewDesktop,
	Persona: true,
}

// Report renders the complete reading: the calendar header, hexagram names,
// voids and spirit summary, the line table, and optionally the persona
// block, closed by the school footer.
func Report(chart *engine.Chart, opts ReportOptions) string {
	var b strings.Builder

	b.WriteString("天干地支曆: " + chart.BaZi.String() + "\n")
	b.WriteString("本卦: " + chart.Main.DetailedName() + "\n")
	if chart.Changed != nil {
		b.WriteString("變卦: " + chart.Changed.DetailedName() + "\n")
	}
	if chart.BaZi.Void1 != "" || chart.BaZi.Void2 != "" {
		b.WriteString("旬空: " + string(chart.BaZi.Void1) + string(chart.BaZi.Void2) + "\n")
	}

	for _, cat := range engine.AuxiliarySpirits {
		branches := chart.ShenSha[cat]
		if len(branches) == 0 {
			continue
		}
		parts := make([]string, len(branches))
		for i, br := range branches {
			parts[i] = string(br)
		}
		b.WriteString(cat + ": " + strings.Join(parts, "、") + "\n")
	}

	if chart.SanHeJu != "" {
		b.WriteString("\n三合局: " + chart.SanHeJu + "\n")
	}

	b.WriteString(strings.Repeat("=", 70) + "\n")
	switch opts.View {
	case ViewMobile:
		b.WriteString(Mobile(chart, opts.Options) + "\n")
	default:
		b.WriteString(Desktop(chart, opts.Options) + "\n")
	}

	if opts.Persona {
		b.WriteString(personaBlock)
	}
	b.WriteString("金錢起卦:\n")
	b.WriteString("流派: 卜筮正宗 增刪卜易:\n")
	return b.String()
}
