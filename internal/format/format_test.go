package format_test

import (
	"strings"
	"testing"
	"time"

	"liuyao/internal/format"
)

func TestASCII_BasicTable(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Code", "Name", "Palace")
	tb.Row("111111", "乾為天", "乾")
	tb.Row("000000", "坤為地", "坤")
	out := tb.String()

	if !strings.Contains(out, "Code") {
		t.Errorf("expected header 'Code' in output:\n%s", out)
	}
	if strings.Contains(out, "CODE") {
		t.Errorf("header should not be upper-cased:\n%s", out)
	}
	if !strings.Contains(out, "乾為天") {
		t.Errorf("expected '乾為天' in output:\n%s", out)
	}
	// ASCII uses box-drawing characters from StyleLight
	if strings.Contains(out, "───") == false {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_BasicTable(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("ID", "Question", "Date")
	tb.Row(1, "問財運", "2026-01-02 10:30")
	tb.Row(2, "問事業", "2026-01-03 18:00")
	out := tb.String()

	// Markdown tables have | delimiters and --- separator
	if !strings.Contains(out, "| ID") {
		t.Errorf("expected markdown header with '| ID':\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator '---':\n%s", out)
	}
	if !strings.Contains(out, "問財運") {
		t.Errorf("expected '問財運' in output:\n%s", out)
	}
}

func TestMarkdown_WithFooter(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Palace", "Hexagrams")
	tb.Row("乾", 8)
	tb.Row("坎", 8)
	tb.Footer("TOTAL", 16)
	out := tb.String()

	if !strings.Contains(out, "TOTAL") {
		t.Errorf("expected footer 'TOTAL' in output:\n%s", out)
	}
	if !strings.Contains(out, "16") {
		t.Errorf("expected footer value '16' in output:\n%s", out)
	}
}

func TestColumns_RightAlign(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("Name", "Value")
	tb.Row("readings", 12345)
	tb.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})
	out := tb.String()

	if !strings.Contains(out, "12345") {
		t.Errorf("expected '12345' in output:\n%s", out)
	}
}

func TestSameData_DualFormat(t *testing.T) {
	build := func(m format.Mode) string {
		tb := format.NewTable(m)
		tb.Header("A", "B")
		tb.Row("x", "y")
		return tb.String()
	}

	ascii := build(format.ASCII)
	md := build(format.Markdown)

	if ascii == md {
		t.Error("ASCII and Markdown output should differ")
	}
	for _, out := range []string{ascii, md} {
		if !strings.Contains(out, "x") || !strings.Contains(out, "y") {
			t.Errorf("expected data in output:\n%s", out)
		}
	}
}

// --- Helper tests ---

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"ab", 3, "ab"},
		{"abcdef", 3, "abc"},
		{"問今年財運如何", 7, "問今年財運如何"},
		{"問今年財運如何可得否", 7, "問今年財..."},
	}
	for _, tc := range tests {
		got := format.Truncate(tc.in, tc.max)
		if got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestFmtLines(t *testing.T) {
	tests := []struct {
		in   []int
		want string
	}{
		{nil, "-"},
		{[]int{3}, "3"},
		{[]int{1, 4, 6}, "1,4,6"},
	}
	for _, tc := range tests {
		if got := format.FmtLines(tc.in); got != tc.want {
			t.Errorf("FmtLines(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFmtTime(t *testing.T) {
	ts := time.Date(2026, 1, 2, 10, 30, 0, 0, time.Local)
	if got := format.FmtTime(ts); got != "2026-01-02 10:30" {
		t.Errorf("FmtTime = %q", got)
	}
}
