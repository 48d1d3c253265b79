// Package engine evaluates a Liu Yao (六爻) divination reading: naigap pillar
// generation, kinship and hidden-god completion, the day/month rule cascade,
// and triad (三合局) detection. A single Divine call is pure computation over
// the static tables in liuyao/internal/hexagram and liuyao/internal/ganzhi.
package engine

import (
	"liuyao/internal/ganzhi"
	"liuyao/internal/wuxing"
)

// Kinship is one of the five relative roles (六親) a line holds toward the
// hexagram's palace element.
type Kinship string

const (
	KinBrother  Kinship = "兄弟"
	KinChild    Kinship = "子孫"
	KinWealth   Kinship = "妻財"
	KinOfficial Kinship = "官鬼"
	KinParent   Kinship = "父母"
)

// Kinships lists the five roles in generative-cycle order: index equals the
// element distance from the palace element.
var Kinships = [5]Kinship{KinBrother, KinChild, KinWealth, KinOfficial, KinParent}

func (k Kinship) String() string { return string(k) }

// KinshipOf derives a line's kinship role from the palace element and the
// line element: (line - palace + 5) % 5 over the generative ordering indexes
// straight into Kinships.
func KinshipOf(palace, line wuxing.Element) (Kinship, bool) {
	d, ok := wuxing.Distance(palace, line)
	if !ok {
		return "", false
	}
	return Kinships[d], true
}

// HeType classifies a combination (合) by the direction of the elemental
// relation between the month/day branch and the line branch.
type HeType string

const (
	HeSheng HeType = "生合" // month/day generates the line
	HeKe    HeType = "克合" // month/day controls the line
	HePing  HeType = "平合" // neutral; month combinations only
)

func (h HeType) String() string { return string(h) }

// Marks holds the day/month relationship flags of one pillar. The same shape
// serves a line's main pillar and, for changing lines, its changed pillar.
type Marks struct {
	XunKong bool   `json:"xunKong"` // 旬空
	YuePeng bool   `json:"yuePeng"` // 月破
	RiChong bool   `json:"riChong"` // 日沖
	YueHe   HeType `json:"yueHe,omitempty"`
	RiHe    HeType `json:"riHe,omitempty"`
	LinRi   bool   `json:"linRi"`   // 臨日
	RiFu    bool   `json:"riFu"`    // 日扶
	RiSheng bool   `json:"riSheng"` // 日生
	RiKe    bool   `json:"riKe"`    // 日克
	AnDong  bool   `json:"anDong"`  // 暗動: day clash wakes a month-strong static line
	RiPeng  bool   `json:"riPeng"`  // 日破: day clash breaks a weak static line
}

// Transform tags for changing lines, shown in the changed-hexagram column.
const (
	TransformJinShen    = "化進神"
	TransformTuiShen    = "化退神"
	TransformHuiTouShen = "回頭生"
	TransformHuiTouKe   = "回頭克"
)

// Yao is one fully annotated line of a reading. A fresh set of six is built
// per Divine call and never mutated after return.
type Yao struct {
	Position int    `json:"position"` // 1-6, bottom first
	ShiYing  string `json:"shiYingMark,omitempty"`
	Spirit   string `json:"spirit"` // 六獸

	MainPillar  ganzhi.Pillar  `json:"mainPillar"`
	MainElement wuxing.Element `json:"mainElement"`
	MainKinship Kinship        `json:"mainRelative"`
	MainYang    bool           `json:"mainYang"`
	IsChanging  bool           `json:"isChanging"`
	ChangeMark  string         `json:"changeMark,omitempty"` // "O" yang moving, "X" yin moving

	// Hidden (伏神) data, set only when this line's home-palace role is
	// absent from the six visible lines.
	HiddenPillar  ganzhi.Pillar  `json:"hiddenPillar,omitzero"`
	HiddenElement wuxing.Element `json:"hiddenElement,omitempty"`
	HiddenKinship Kinship        `json:"hiddenRelative,omitempty"`

	// Changed (變卦) data, set only when IsChanging.
	ChangedPillar  ganzhi.Pillar  `json:"changedPillar,omitzero"`
	ChangedElement wuxing.Element `json:"changedElement,omitempty"`
	ChangedKinship Kinship        `json:"changedRelative,omitempty"`

	Strength wuxing.Strength `json:"wangShuai"`
	Marks    Marks           `json:"marks"`

	// ChangedMarks mirrors Marks for the changed pillar; zero unless
	// IsChanging.
	ChangedMarks Marks `json:"changedMarks,omitzero"`

	// Spirits collects auxiliary spirit tags (羊刃, 桃花, 驛馬, 貴人) whose
	// trigger branch matches this line.
	Spirits []string `json:"shenShaMarkers,omitempty"`

	// Transforms collects 化進神/化退神/回頭生/回頭克 for changing lines.
	Transforms []string `json:"transforms,omitempty"`
}

// HasHidden reports whether the line carries a hidden pillar.
func (y *Yao) HasHidden() bool { return !y.HiddenPillar.IsZero() }
