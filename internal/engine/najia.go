package engine

import (
	"liuyao/internal/ganzhi"
	"liuyao/internal/hexagram"
	"liuyao/internal/wuxing"
)

// najiaPillars assigns the stem-branch pillar of each of the six lines from
// the hexagram's trigrams: the inner trigram's pattern covers positions 1-3,
// the outer trigram's pattern covers positions 4-6. Index 0 is the bottom
// line.
func najiaPillars(h hexagram.Info) [6]ganzhi.Pillar {
	innerStems := hexagram.StemPattern(h.Inner)
	innerBranches := hexagram.BranchPattern(h.Inner)
	outerStems := hexagram.StemPattern(h.Outer)
	outerBranches := hexagram.BranchPattern(h.Outer)

	var out [6]ganzhi.Pillar
	for i := 0; i < 3; i++ {
		out[i] = ganzhi.MustPillar(innerStems[i], innerBranches[i])
	}
	for i := 3; i < 6; i++ {
		out[i] = ganzhi.MustPillar(outerStems[i], outerBranches[i])
	}
	return out
}

// fillHiddenGods attaches hidden (伏神) pillars: for each line of the palace
// base hexagram whose kinship role is missing from the visible six lines,
// the base line's pillar is recorded on the same position as a hidden god.
func fillHiddenGods(yaos *[6]*Yao, main hexagram.Info) {
	base, ok := hexagram.PalaceBase(main.Palace)
	if !ok {
		return
	}

	present := map[Kinship]bool{}
	for _, y := range yaos {
		if y.MainKinship != "" {
			present[y.MainKinship] = true
		}
	}

	basePillars := najiaPillars(base)
	for i, y := range yaos {
		p := basePillars[i]
		elem, ok := wuxing.BranchElement(p.Branch())
		if !ok {
			continue
		}
		kin, ok := KinshipOf(main.Element, elem)
		if !ok || present[kin] {
			continue
		}
		y.HiddenPillar = p
		y.HiddenElement = elem
		y.HiddenKinship = kin
	}
}

// SixSpirits cycles through the six guardian spirits; the day stem picks the
// spirit of the bottom line.
var SixSpirits = [6]string{"青龍", "朱雀", "勾陳", "螣蛇", "白虎", "玄武"}

var spiritStart = map[ganzhi.Stem]int{
	"甲": 0, "乙": 0,
	"丙": 1, "丁": 1,
	"戊": 2,
	"己": 3,
	"庚": 4, "辛": 4,
	"壬": 5, "癸": 5,
}

func fillSixSpirits(yaos *[6]*Yao, dayStem ganzhi.Stem) {
	start, ok := spiritStart[dayStem]
	if !ok {
		for _, y := range yaos {
			y.Spirit = "未知"
		}
		return
	}
	for i, y := range yaos {
		y.Spirit = SixSpirits[(start+i)%6]
	}
}
