package wuxing_test

import (
	"testing"

	"liuyao/internal/ganzhi"
	"liuyao/internal/wuxing"
)

func TestBranchElement_AllBranchesCovered(t *testing.T) {
	for _, b := range ganzhi.Branches {
		if _, ok := wuxing.BranchElement(b); !ok {
			t.Errorf("no element for branch %s", b)
		}
	}
}

func TestGenerativeCycle(t *testing.T) {
	cycle := []wuxing.Element{wuxing.Metal, wuxing.Water, wuxing.Wood, wuxing.Fire, wuxing.Earth}
	for i, e := range cycle {
		next := cycle[(i+1)%5]
		if !wuxing.Generates(e, next) {
			t.Errorf("%s should generate %s", e, next)
		}
		ctrl := cycle[(i+2)%5]
		if !wuxing.Controls(e, ctrl) {
			t.Errorf("%s should control %s", e, ctrl)
		}
	}
}

func TestMonthStrength(t *testing.T) {
	cases := []struct {
		name        string
		element     wuxing.Element
		monthBranch ganzhi.Branch
		lineBranch  ganzhi.Branch
		want        wuxing.Strength
	}{
		{"same branch is lin yue", wuxing.Wood, "寅", "寅", wuxing.StrengthLinYue},
		{"same element different branch is yue fu", wuxing.Wood, "寅", "卯", wuxing.StrengthYueFu},
		{"same element no branch is yue fu", wuxing.Wood, "寅", "", wuxing.StrengthYueFu},
		{"month generates line", wuxing.Fire, "寅", "", wuxing.StrengthYueSheng}, // wood month, fire line
		{"month controls line", wuxing.Earth, "寅", "", wuxing.StrengthYueKe},    // wood controls earth
		{"line controls month", wuxing.Metal, "寅", "", wuxing.StrengthQiu},      // metal controls wood
		{"line generates month", wuxing.Water, "寅", "", wuxing.StrengthXiu},     // water generates wood
		{"invalid month", wuxing.Wood, "X", "", wuxing.StrengthUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := wuxing.MonthStrength(c.element, c.monthBranch, c.lineBranch)
			if got != c.want {
				t.Errorf("MonthStrength(%s, %s, %q) = %s, want %s",
					c.element, c.monthBranch, c.lineBranch, got, c.want)
			}
		})
	}
}

func TestDayProximity(t *testing.T) {
	if lin, fu := wuxing.DayProximity("寅", "寅"); !lin || fu {
		t.Errorf("same branch: got (%v,%v), want (true,false)", lin, fu)
	}
	if lin, fu := wuxing.DayProximity("卯", "寅"); lin || !fu {
		t.Errorf("same element: got (%v,%v), want (false,true)", lin, fu)
	}
	if lin, fu := wuxing.DayProximity("申", "寅"); lin || fu {
		t.Errorf("unrelated: got (%v,%v), want (false,false)", lin, fu)
	}
}

func TestDayShengKe(t *testing.T) {
	// 寅 is wood: wood generates fire, wood controls earth.
	if sheng, ke := wuxing.DayShengKe(wuxing.Fire, "寅"); !sheng || ke {
		t.Errorf("wood day vs fire line: got (%v,%v), want (true,false)", sheng, ke)
	}
	if sheng, ke := wuxing.DayShengKe(wuxing.Earth, "寅"); sheng || !ke {
		t.Errorf("wood day vs earth line: got (%v,%v), want (false,true)", sheng, ke)
	}
	if sheng, ke := wuxing.DayShengKe(wuxing.Water, "寅"); sheng || ke {
		t.Errorf("wood day vs water line: got (%v,%v), want (false,false)", sheng, ke)
	}
}
