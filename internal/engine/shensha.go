package engine

import (
	"sort"

	"liuyao/internal/ganzhi"
)

// ShenShaMap aggregates, per category, the branches that trigger that spirit
// for a given set of four pillars. Category names are the Chinese labels used
// in output.
type ShenShaMap map[string][]ganzhi.Branch

// Shen sha categories. The first six describe the month/day context itself;
// the last four are auxiliary spirits tagged on matching lines.
const (
	ShenShaYueJian = "月建"
	ShenShaRiChen  = "日辰"
	ShenShaYuePeng = "月破"
	ShenShaYueHe   = "月合"
	ShenShaRiChong = "日沖"
	ShenShaRiHe    = "日合"
	ShenShaYangRen = "羊刃"
	ShenShaTaoHua  = "桃花"
	ShenShaYiMa    = "驛馬"
	ShenShaGuiRen  = "貴人"
)

// AuxiliarySpirits lists the categories tagged on individual lines, in
// display order.
var AuxiliarySpirits = [4]string{ShenShaYangRen, ShenShaTaoHua, ShenShaYiMa, ShenShaGuiRen}

// ShenShaCategories is the full category order for listings.
var ShenShaCategories = [10]string{
	ShenShaYueJian, ShenShaRiChen,
	ShenShaYuePeng, ShenShaYueHe, ShenShaRiChong, ShenShaRiHe,
	ShenShaYangRen, ShenShaTaoHua, ShenShaYiMa, ShenShaGuiRen,
}

// contextCategories are consumed by the rule cascade directly and never
// appear as line tags.
var contextCategories = map[string]bool{
	ShenShaYueJian: true,
	ShenShaRiChen:  true,
	ShenShaYuePeng: true,
	ShenShaYueHe:   true,
	ShenShaRiChong: true,
	ShenShaRiHe:    true,
}

// 羊刃 by day stem.
var yangRen = map[ganzhi.Stem]ganzhi.Branch{
	"甲": "卯", "乙": "辰", "丙": "午", "丁": "未", "戊": "午",
	"己": "未", "庚": "酉", "辛": "戌", "壬": "子", "癸": "丑",
}

// 桃花 by day branch: each triad shares the bath branch of its leader.
var taoHua = map[ganzhi.Branch]ganzhi.Branch{
	"寅": "卯", "午": "卯", "戌": "卯",
	"申": "酉", "子": "酉", "辰": "酉",
	"亥": "子", "卯": "子", "未": "子",
	"巳": "午", "酉": "午", "丑": "午",
}

// 驛馬 by day branch: the clash of the triad leader.
var yiMa = map[ganzhi.Branch]ganzhi.Branch{
	"寅": "申", "午": "申", "戌": "申",
	"申": "寅", "子": "寅", "辰": "寅",
	"亥": "巳", "卯": "巳", "未": "巳",
	"巳": "亥", "酉": "亥", "丑": "亥",
}

// 天乙貴人 by day stem, two branches each.
var guiRen = map[ganzhi.Stem][2]ganzhi.Branch{
	"甲": {"丑", "未"}, "戊": {"丑", "未"}, "庚": {"丑", "未"},
	"乙": {"子", "申"}, "己": {"子", "申"},
	"丙": {"亥", "酉"}, "丁": {"亥", "酉"},
	"壬": {"巳", "卯"}, "癸": {"巳", "卯"},
	"辛": {"午", "寅"},
}

// BuildShenSha derives the spirit map for one set of pillars. The result is
// deterministic; 貴人 branches are sorted for stable output.
func BuildShenSha(bz ganzhi.BaZi) ShenShaMap {
	m := ShenShaMap{}

	monthBranch := bz.Month.Branch()
	dayStem := bz.Day.Stem()
	dayBranch := bz.Day.Branch()

	m[ShenShaYueJian] = []ganzhi.Branch{monthBranch}
	m[ShenShaRiChen] = []ganzhi.Branch{dayBranch}

	if c, ok := ganzhi.ClashPartner(monthBranch); ok {
		m[ShenShaYuePeng] = []ganzhi.Branch{c}
	}
	if h, ok := ganzhi.CombinePartner(monthBranch); ok {
		m[ShenShaYueHe] = []ganzhi.Branch{h}
	}
	if c, ok := ganzhi.ClashPartner(dayBranch); ok {
		m[ShenShaRiChong] = []ganzhi.Branch{c}
	}
	if h, ok := ganzhi.CombinePartner(dayBranch); ok {
		m[ShenShaRiHe] = []ganzhi.Branch{h}
	}

	if b, ok := yangRen[dayStem]; ok {
		m[ShenShaYangRen] = []ganzhi.Branch{b}
	}
	if b, ok := taoHua[dayBranch]; ok {
		m[ShenShaTaoHua] = []ganzhi.Branch{b}
	}
	if b, ok := yiMa[dayBranch]; ok {
		m[ShenShaYiMa] = []ganzhi.Branch{b}
	}
	if pair, ok := guiRen[dayStem]; ok {
		nobles := []ganzhi.Branch{pair[0], pair[1]}
		sort.Slice(nobles, func(i, j int) bool { return nobles[i] < nobles[j] })
		m[ShenShaGuiRen] = nobles
	}

	return m
}

// Contains reports whether branch appears under category.
func (m ShenShaMap) Contains(category string, branch ganzhi.Branch) bool {
	for _, b := range m[category] {
		if b == branch {
			return true
		}
	}
	return false
}

// clone returns an independent copy so cached maps stay immutable.
func (m ShenShaMap) clone() ShenShaMap {
	out := make(ShenShaMap, len(m))
	for k, v := range m {
		out[k] = append([]ganzhi.Branch(nil), v...)
	}
	return out
}
