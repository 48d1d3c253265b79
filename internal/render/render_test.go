package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"liuyao/internal/engine"
	"liuyao/internal/ganzhi"
)

func chartFor(t *testing.T, code string, bazi [4]string, changing []int) *engine.Chart {
	t.Helper()
	parse := func(s string) ganzhi.Pillar {
		p, err := ganzhi.ParsePillar(s)
		if err != nil {
			t.Fatalf("ParsePillar(%q): %v", s, err)
		}
		return p
	}
	bz := ganzhi.NewBaZi(parse(bazi[0]), parse(bazi[1]), parse(bazi[2]), parse(bazi[3]))
	chart, err := engine.New(nil).Divine(code, bz, changing)
	if err != nil {
		t.Fatalf("Divine: %v", err)
	}
	return chart
}

func TestDesktopStaticChart(t *testing.T) {
	chart := chartFor(t, "111111", [4]string{"乙巳", "丁亥", "甲子", "甲戌"}, nil)
	out := Desktop(chart, DefaultOptions)

	for _, want := range []string{
		"六獸", "本  卦",
		"[六]", "[初]",
		"青  龍", "玄  武",
		"甲子水", "壬戌土",
		"▇▇▇▇▇▇",
		"[世/", "[應/",
		"旬空", // 壬戌 is void on a 甲子 day
	} {
		if !strings.Contains(out, want) {
			t.Errorf("desktop output missing %q\n%s", want, out)
		}
	}

	// All five roles are visible: no hidden column, no changed column.
	if strings.Contains(out, "(") || strings.Contains(out, "➔") {
		t.Errorf("static all-roles chart should have no hidden or changed cells\n%s", out)
	}
}

func TestDesktopChangingLine(t *testing.T) {
	chart := chartFor(t, "111111", [4]string{"乙巳", "丁亥", "甲子", "甲戌"}, []int{1})
	out := Desktop(chart, DefaultOptions)

	// The bottom line changes: yang mark ○, the changed column shows 天風姤's
	// bottom line 辛丑土 as a yin glyph, and 丑土 strikes back at 子水.
	for _, want := range []string{"○", "➔", "辛丑土", "回頭克", "▇  ▇"} {
		if !strings.Contains(out, want) {
			t.Errorf("desktop output missing %q\n%s", want, out)
		}
	}
}

func TestDesktopHiddenColumn(t *testing.T) {
	// 天風姤 lacks 妻財: line 2 carries the hidden 甲寅.
	chart := chartFor(t, "011111", [4]string{"乙巳", "丁亥", "甲子", "甲戌"}, nil)
	out := Desktop(chart, DefaultOptions)

	if !strings.Contains(out, "(妻財甲寅木)") {
		t.Errorf("desktop output missing hidden god cell\n%s", out)
	}
	if !strings.Contains(out, "伏  神") {
		t.Errorf("desktop output missing hidden header\n%s", out)
	}
}

func TestDesktopAnDongMark(t *testing.T) {
	// 兌為澤, 午 month, 丑 day: line 6 (未) is day-clashed but month-strong.
	chart := chartFor(t, "110110", [4]string{"乙巳", "庚午", "己丑", "甲戌"}, nil)
	out := Desktop(chart, DefaultOptions)

	if !strings.Contains(out, "暗動") {
		t.Errorf("desktop output missing 暗動\n%s", out)
	}
	if strings.Contains(out, "/日沖") || strings.Contains(out, "[日沖") {
		t.Errorf("暗動 should replace the plain 日沖 tag\n%s", out)
	}
	// 月生合 on the same line: 午 month combines with and generates 未.
	if !strings.Contains(out, "月生合") {
		t.Errorf("desktop output missing 月生合\n%s", out)
	}
}

func TestMobileLayout(t *testing.T) {
	chart := chartFor(t, "011111", [4]string{"乙巳", "丁亥", "甲子", "甲戌"}, []int{1, 4})
	out := Mobile(chart, DefaultOptions)

	for _, want := range []string{
		"【六】", "【初】",
		"➔ 變:",
		"➔ 伏:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("mobile output missing %q\n%s", want, out)
		}
	}
	// Mobile always uses the narrow yang glyph.
	if strings.Contains(out, "▇▇▇▇▇▇") {
		t.Errorf("mobile output should use the narrow glyph\n%s", out)
	}
}

func TestMarkerSuppression(t *testing.T) {
	// 兌為澤 on a 辛卯 month, 己丑 day: line 6 (未) is 月克 and day-clashed
	// without month support, so it breaks (日破) and the weak strength tag
	// stays visible only while no month combination hides it.
	chart := chartFor(t, "110110", [4]string{"乙巳", "辛卯", "己丑", "甲戌"}, nil)
	out := Desktop(chart, DefaultOptions)

	if !strings.Contains(out, "日破") {
		t.Errorf("desktop output missing 日破\n%s", out)
	}

	// Line 3 is 丑: the day branch itself.
	if !strings.Contains(out, "臨日") {
		t.Errorf("desktop output missing 臨日\n%s", out)
	}
}

func TestReport(t *testing.T) {
	chart := chartFor(t, "110110", [4]string{"乙巳", "辛巳", "己丑", "甲戌"}, []int{5})
	out := Report(chart, DefaultReportOptions)

	for _, want := range []string{
		"天干地支曆: 乙巳年 辛巳月 己丑日 甲戌時",
		"本卦: 兌宮: 兌為澤",
		"變卦: 兌宮: 雷澤歸妹 歸魂卦",
		"旬空: 午未",
		"羊刃: 未",
		"桃花: 午",
		"驛馬: 亥",
		"貴人: 子、申",
		"三合局: 巳酉丑三合局",
		strings.Repeat("=", 70),
		"傳統六爻宗師",
		"金錢起卦:",
		"流派: 卜筮正宗 增刪卜易:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestReportWithoutPersona(t *testing.T) {
	chart := chartFor(t, "111111", [4]string{"乙巳", "丁亥", "甲子", "甲戌"}, nil)
	opts := DefaultReportOptions
	opts.Persona = false
	out := Report(chart, opts)

	if strings.Contains(out, "傳統六爻宗師") {
		t.Error("persona block should be omitted")
	}
	if !strings.HasSuffix(out, "金錢起卦:\n流派: 卜筮正宗 增刪卜易:\n") {
		t.Errorf("report should end with the school footer\n%q", out[len(out)-80:])
	}
}

func TestRenderDoesNotMutateChart(t *testing.T) {
	chart := chartFor(t, "011111", [4]string{"乙巳", "丁亥", "甲子", "甲戌"}, []int{1})
	before, err := json.Marshal(chart)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	Desktop(chart, DefaultOptions)
	Mobile(chart, DefaultOptions)
	Report(chart, DefaultReportOptions)

	after, err := json.Marshal(chart)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(before) != string(after) {
		t.Error("rendering mutated the chart")
	}
}

func TestPadWidth(t *testing.T) {
	cases := []struct {
		in     string
		target int
	}{
		{"青龍", 4},        // already at target
		{"世", 5},          // odd shortfall over CJK
		{"[世/臨日]", 11},  // mixed-width cell, odd shortfall
		{"abc", 4},
	}
	for _, c := range cases {
		got := runewidth.StringWidth(padWidth(c.in, c.target))
		if got != c.target {
			t.Errorf("padWidth(%q, %d) width = %d, want %d", c.in, c.target, got, c.target)
		}
	}
}

func TestDesktopArrowAlignment(t *testing.T) {
	// Marker cells mix full-width CJK with single-width brackets and slashes,
	// so per-row widths differ by odd amounts; the arrows must still line up.
	c := chartFor(t, "111111", [4]string{"乙巳", "丁亥", "甲子", "甲戌"}, []int{1, 4})
	out := Desktop(c, DefaultOptions)

	col := -1
	for _, line := range strings.Split(out, "\n") {
		i := strings.Index(line, "➔")
		if i < 0 {
			continue
		}
		w := runewidth.StringWidth(line[:i])
		if col == -1 {
			col = w
		} else if w != col {
			t.Errorf("arrow at width %d, want %d:\n%s", w, col, out)
		}
	}
	if col == -1 {
		t.Fatal("no changed-line arrows rendered")
	}
}
