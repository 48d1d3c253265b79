package engine

import "liuyao/internal/ganzhi"

// Combination tables keyed by the month/day branch, giving the line branches
// it forms a 合 with and the resulting type. The 生合 and 克合 rows cover the
// six classical pairs; the 平合 rows and the 辰/未 special cases apply to
// month combinations only.
var (
	shengHe = map[ganzhi.Branch]ganzhi.Branch{
		"午": "未",
		"辰": "酉",
		"亥": "寅",
	}
	keHe = map[ganzhi.Branch]ganzhi.Branch{
		"巳": "申",
		"卯": "戌",
		"丑": "子",
	}
	pingHe = map[ganzhi.Branch]ganzhi.Branch{
		"未": "午",
		"酉": "辰",
		"寅": "亥",
		"申": "巳",
		"戌": "卯",
		"子": "丑",
	}
)

// combinationType classifies the 合 between a month or day branch and a line
// branch. month selects the wider month rules: 平合 pairs, plus the 辰月
// (寅/卯 lines) and 未月 (巳/午 lines) special cases, count only against the
// month. The false return means no combination.
func combinationType(ref, line ganzhi.Branch, month bool) (HeType, bool) {
	if shengHe[ref] == line {
		return HeSheng, true
	}
	if keHe[ref] == line {
		return HeKe, true
	}
	if !month {
		return "", false
	}
	if pingHe[ref] == line {
		return HePing, true
	}
	switch {
	case ref == "辰" && (line == "寅" || line == "卯"):
		return HePing, true
	case ref == "未" && (line == "巳" || line == "午"):
		return HePing, true
	}
	return "", false
}
