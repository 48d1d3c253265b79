package render

import (
	"liuyao/internal/engine"
	"liuyao/internal/wuxing"
)

// strengthSuppressed lists the strength values hidden when the line is also
// month-broken or month-combined: the stronger month relation speaks for
// itself.
var strengthSuppressed = map[wuxing.Strength]bool{
	wuxing.StrengthXiu:      true,
	wuxing.StrengthQiu:      true,
	wuxing.StrengthYueSheng: true,
	wuxing.StrengthYueKe:    true,
}

// mainMarkers assembles the bracket tags of a line's main pillar in display
// priority order: shi/ying, strength, 月破, 旬空, the day-clash family
// (暗動/日破/日沖), month and day combinations, 臨日, then the plain day
// relations with their suppression rules.
func mainMarkers(y *engine.Yao) []string {
	var parts []string
	if y.ShiYing != "" {
		parts = append(parts, y.ShiYing)
	}
	if y.Strength != "" && y.Strength != wuxing.StrengthUnknown {
		show := true
		if (y.Marks.YuePeng || y.Marks.YueHe != "") && strengthSuppressed[y.Strength] {
			show = false
		}
		if show {
			parts = append(parts, string(y.Strength))
		}
	}
	if y.Marks.YuePeng {
		parts = append(parts, "月破")
	}
	if y.Marks.XunKong {
		parts = append(parts, "旬空")
	}
	if y.Marks.RiChong {
		switch {
		case y.Marks.AnDong:
			parts = append(parts, "暗動")
		case y.Marks.RiPeng:
			parts = append(parts, "日破")
		default:
			parts = append(parts, "日沖")
		}
	}
	if y.Marks.YueHe != "" {
		parts = append(parts, "月"+string(y.Marks.YueHe))
	}
	if y.Marks.RiHe != "" {
		parts = append(parts, "日"+string(y.Marks.RiHe))
	}
	if y.Marks.LinRi {
		parts = append(parts, "臨日")
	}
	// 日沖 outranks 日扶 and 日克; a combination outranks the bare relation.
	if y.Marks.RiFu && !y.Marks.RiChong {
		parts = append(parts, "日扶")
	}
	if y.Marks.RiSheng && y.Marks.RiHe != engine.HeSheng {
		parts = append(parts, "日生")
	}
	if y.Marks.RiKe && y.Marks.RiHe != engine.HeKe && !y.Marks.RiChong {
		parts = append(parts, "日克")
	}
	return parts
}

// changedMarkers assembles the bracket tags of a changing line's changed
// pillar: the transform tags first, then the same day/month cascade against
// the changed branch. compact shortens the combination tags for the mobile
// view (生合 instead of 月生合).
func changedMarkers(y *engine.Yao, compact bool) []string {
	var parts []string
	parts = append(parts, y.Transforms...)

	if !y.IsChanging {
		return parts
	}
	m := y.ChangedMarks

	if m.YuePeng {
		parts = append(parts, "月破")
	}
	if m.XunKong {
		parts = append(parts, "旬空")
	}
	if m.RiChong {
		switch {
		case m.AnDong:
			parts = append(parts, "暗動")
		case m.RiPeng:
			parts = append(parts, "日破")
		default:
			parts = append(parts, "日沖")
		}
	}
	if m.YueHe != "" {
		if compact {
			parts = append(parts, string(m.YueHe))
		} else {
			parts = append(parts, "月"+string(m.YueHe))
		}
	}
	if m.RiHe != "" {
		if compact {
			parts = append(parts, string(m.RiHe))
		} else {
			parts = append(parts, "日"+string(m.RiHe))
		}
	}
	if m.LinRi {
		parts = append(parts, "臨日")
	}
	if m.RiFu && !m.RiChong {
		parts = append(parts, "日扶")
	}
	if m.RiSheng && m.RiHe != engine.HeSheng {
		parts = append(parts, "日生")
	}
	if m.RiKe && m.RiHe != engine.HeKe && !m.RiChong {
		parts = append(parts, "日克")
	}
	return parts
}
