package engine

import "liuyao/internal/ganzhi"

// The four triads and their center branch. Order matters: the first complete
// triad wins.
var sanHeGroups = []struct {
	branches [3]ganzhi.Branch
	center   ganzhi.Branch
}{
	{[3]ganzhi.Branch{"巳", "酉", "丑"}, "酉"},
	{[3]ganzhi.Branch{"申", "子", "辰"}, "子"},
	{[3]ganzhi.Branch{"亥", "卯", "未"}, "卯"},
	{[3]ganzhi.Branch{"寅", "午", "戌"}, "午"},
}

type branchSource struct {
	kind     string // "main", "changed", "day", "month"
	changing bool
	yaoIndex int
}

// detectSanHeJu looks for a complete three-branch combination (三合局) among
// the active participants: changing or dark-moving main lines, the changed
// pillars of changing lines, and the day and month branches. Static lines do
// not participate, and the center branch of the triad must come from a truly
// changing source. Returns "" when no triad forms.
func detectSanHeJu(yaos [6]*Yao, bz ganzhi.BaZi) string {
	dayBranch := bz.Day.Branch()
	monthBranch := bz.Month.Branch()

	for _, g := range sanHeGroups {
		inGroup := func(b ganzhi.Branch) bool {
			return b == g.branches[0] || b == g.branches[1] || b == g.branches[2]
		}

		sources := map[ganzhi.Branch]branchSource{}

		for i, y := range yaos {
			b := y.MainPillar.Branch()
			if !inGroup(b) {
				continue
			}
			if !y.IsChanging && !y.Marks.AnDong {
				continue
			}
			if _, seen := sources[b]; !seen {
				sources[b] = branchSource{kind: "main", changing: y.IsChanging, yaoIndex: i}
			}
		}

		for i, y := range yaos {
			if !y.IsChanging || y.ChangedPillar.IsZero() {
				continue
			}
			b := y.ChangedPillar.Branch()
			if !inGroup(b) {
				continue
			}
			if _, seen := sources[b]; !seen {
				sources[b] = branchSource{kind: "changed", changing: true, yaoIndex: i}
			}
		}

		// The day and month are always in motion and displace any line
		// source for the same branch.
		if inGroup(dayBranch) {
			sources[dayBranch] = branchSource{kind: "day", changing: true, yaoIndex: -1}
		}
		if inGroup(monthBranch) {
			sources[monthBranch] = branchSource{kind: "month", changing: true, yaoIndex: -1}
		}

		if len(sources) != 3 {
			continue
		}

		center, ok := sources[g.center]
		if !ok || !center.changing {
			continue
		}
		// A center drawn from the lines must be a genuinely changing line;
		// dark movement (暗動) is not enough.
		if center.kind == "main" || center.kind == "changed" {
			if !yaos[center.yaoIndex].IsChanging {
				continue
			}
		}

		return string(g.branches[0]) + string(g.branches[1]) + string(g.branches[2]) + "三合局"
	}
	return ""
}
