// Package render turns a Chart into terminal text: a wide aligned table for
// desktop use, a vertical compact layout for narrow screens, and the full
// report wrapper with the calendar header and shen sha summary. Rendering
// never mutates the chart.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"liuyao/internal/engine"
)

// Options tune the line views.
type Options struct {
	// ShowShenSha includes the auxiliary spirit tags (羊刃, 桃花, 驛馬,
	// 貴人).
	ShowShenSha bool
	// Compact narrows the yang glyph from ▇▇▇▇▇▇ to ▇▇▇ for embedding in
	// constrained panes.
	Compact bool
}

// DefaultOptions matches the terminal defaults.
var DefaultOptions = Options{ShowShenSha: true}

// lineNumbers from the top line down.
var lineNumbers = [6]string{"六", "五", "四", "三", "二", "初"}

func lineGlyph(yang, compact bool) string {
	if yang {
		if compact {
			return "▇▇▇"
		}
		return "▇▇▇▇▇▇"
	}
	return "▇  ▇"
}

// changedGlyph draws the line as it stands after the change.
func changedGlyph(y *engine.Yao, compact bool) string {
	if y.IsChanging {
		return lineGlyph(!y.MainYang, compact)
	}
	return lineGlyph(y.MainYang, compact)
}

func changeMark(y *engine.Yao) string {
	if !y.IsChanging {
		return ""
	}
	if y.MainYang {
		return "○"
	}
	return "×"
}

// allKinshipsVisible reports whether every one of the five roles appears on
// the visible lines; when it does the hidden column is suppressed.
func allKinshipsVisible(chart *engine.Chart) bool {
	present := map[engine.Kinship]bool{}
	for _, y := range chart.Yaos {
		if y.MainKinship != "" {
			present[y.MainKinship] = true
		}
	}
	return len(present) == len(engine.Kinships)
}

func mainColumn(y *engine.Yao, compact bool) string {
	var parts []string
	if y.MainKinship != "" {
		parts = append(parts, string(y.MainKinship))
	}
	if !y.MainPillar.IsZero() {
		parts = append(parts, y.MainPillar.String()+string(y.MainElement))
	}
	parts = append(parts, lineGlyph(y.MainYang, compact))
	if m := changeMark(y); m != "" {
		parts = append(parts, m)
	}
	if markers := mainMarkers(y); len(markers) > 0 {
		parts = append(parts, "["+strings.Join(markers, "/")+"]")
	}
	return strings.Join(parts, " ")
}

func changedColumn(y *engine.Yao, compact bool) string {
	if y.ChangedPillar.IsZero() {
		return ""
	}
	var parts []string
	if y.ChangedKinship != "" {
		parts = append(parts, string(y.ChangedKinship))
	}
	parts = append(parts, y.ChangedPillar.String()+string(y.ChangedElement))
	parts = append(parts, changedGlyph(y, compact))
	if markers := changedMarkers(y, false); len(markers) > 0 {
		parts = append(parts, "["+strings.Join(markers, "/")+"]")
	}
	return strings.Join(parts, " ")
}

func hiddenColumn(y *engine.Yao) string {
	if !y.HasHidden() {
		return ""
	}
	return "(" + string(y.HiddenKinship) + y.HiddenPillar.String() + string(y.HiddenElement) + ")"
}

// padWidth right-pads s to the target display width. Cell content mixes
// full-width CJK with single-width marks ("/", brackets), so the shortfall
// can be odd and must be padded column by column.
func padWidth(s string, target int) string {
	current := runewidth.StringWidth(s)
	if current >= target {
		return s
	}
	return s + strings.Repeat(" ", target-current)
}

// Desktop renders the six lines as an aligned table, top line first. Columns
// are the six spirits, the hidden gods (when any role is missing), the main
// hexagram, the changed hexagram, and the auxiliary spirit tags.
func Desktop(chart *engine.Chart, opts Options) string {
	showHidden := !allKinshipsVisible(chart)

	var spiritCols, hiddenCols, mainCols, changedCols, shenShaCols [6]string
	for row := 0; row < 6; row++ {
		y := chart.Yaos[5-row]

		if y.Spirit != "" {
			spiritCols[row] = strings.Join(strings.Split(y.Spirit, ""), "  ")
		} else {
			spiritCols[row] = "   "
		}
		if showHidden {
			hiddenCols[row] = hiddenColumn(y)
		}
		mainCols[row] = mainColumn(y, opts.Compact)
		changedCols[row] = changedColumn(y, opts.Compact)
		if opts.ShowShenSha {
			shenShaCols[row] = strings.Join(y.Spirits, " ")
		}
	}

	maxWidth := func(cols [6]string) int {
		max := 0
		for _, s := range cols {
			if w := runewidth.StringWidth(s); w > max {
				max = w
			}
		}
		return max
	}
	spiritW := maxWidth(spiritCols)
	hiddenW := maxWidth(hiddenCols)
	mainW := maxWidth(mainCols)

	var b strings.Builder
	b.WriteString("        六獸    伏  神              本  卦                                       變  卦                           神 煞\n")
	b.WriteString(strings.Repeat("─", 61) + "\n")

	for row := 0; row < 6; row++ {
		b.WriteString("[" + lineNumbers[row] + "]    " + padWidth(spiritCols[row], spiritW))
		if hiddenW > 0 {
			b.WriteString("  " + padWidth(hiddenCols[row], hiddenW))
		}
		b.WriteString("  " + padWidth(mainCols[row], mainW))
		if changedCols[row] != "" {
			b.WriteString("  ➔  " + changedCols[row])
		}
		if shenShaCols[row] != "" {
			b.WriteString("  " + shenShaCols[row])
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", 59))
	return b.String()
}

// Mobile renders each line as a short stanza: the main line, then indented
// 變 and 伏 rows where applicable.
func Mobile(chart *engine.Chart, opts Options) string {
	showHidden := !allKinshipsVisible(chart)

	var lines []string
	for row := 0; row < 6; row++ {
		y := chart.Yaos[5-row]

		main := "\n【" + lineNumbers[row] + "】" + y.Spirit + " " + mainColumn(y, true)
		if opts.ShowShenSha && len(y.Spirits) > 0 {
			main += " " + strings.Join(y.Spirits, " ")
		}
		lines = append(lines, main)

		if !y.ChangedPillar.IsZero() {
			var content []string
			if y.ChangedKinship != "" {
				content = append(content, string(y.ChangedKinship))
			}
			content = append(content, y.ChangedPillar.String()+string(y.ChangedElement))

			glyph := changedGlyph(y, true)
			var changed string
			if markers := changedMarkers(y, true); len(markers) > 0 {
				changed = strings.Join(content, " ") + " " + glyph + "[" + strings.Join(markers, "/") + "]"
			} else {
				changed = strings.Join(append(content, glyph), " ")
			}
			lines = append(lines, "    ➔ 變: "+changed)
		}

		if showHidden && y.HasHidden() {
			lines = append(lines, "    ➔ 伏: "+string(y.HiddenKinship)+y.HiddenPillar.String()+string(y.HiddenElement))
		}
	}
	return strings.Join(lines, "\n")
}
