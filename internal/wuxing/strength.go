package wuxing

import "liuyao/internal/ganzhi"

// Strength is a line's vigor classification relative to the month branch.
type Strength string

const (
	StrengthLinYue   Strength = "臨月" // line branch equals month branch
	StrengthYueFu    Strength = "月扶" // same element as the month
	StrengthYueSheng Strength = "月生" // month generates the line
	StrengthYueKe    Strength = "月克" // month controls the line
	StrengthQiu      Strength = "囚"  // line controls the month
	StrengthXiu      Strength = "休"  // line generates the month
	StrengthUnknown  Strength = "未知"
)

func (s Strength) String() string { return string(s) }

// MonthStrength classifies a line's element against the month branch.
// If lineBranch is non-empty the proximity overrides apply first: identical
// branch → 臨月; same element, different branch → 月扶. Otherwise the generic
// five-phase partition decides.
func MonthStrength(lineElement Element, monthBranch, lineBranch ganzhi.Branch) Strength {
	monthElement, ok := branchElements[monthBranch]
	if !ok || !lineElement.Valid() {
		return StrengthUnknown
	}

	if lineBranch != "" {
		if lineBranchElement, ok := branchElements[lineBranch]; ok {
			if monthBranch == lineBranch {
				return StrengthLinYue
			}
			if lineBranchElement == monthElement {
				return StrengthYueFu
			}
		}
	}

	d, _ := Distance(monthElement, lineElement)
	switch d {
	case 0:
		return StrengthYueFu
	case 1:
		return StrengthYueSheng
	case 2:
		return StrengthYueKe
	case 3:
		return StrengthQiu
	case 4:
		return StrengthXiu
	}
	return StrengthUnknown
}

// DayProximity reports 臨日 (identical branch) and 日扶 (same element,
// different branch) for a line branch against the day branch. The two are
// mutually exclusive.
func DayProximity(lineBranch, dayBranch ganzhi.Branch) (linRi, riFu bool) {
	le, ok := branchElements[lineBranch]
	if !ok {
		return false, false
	}
	de, ok := branchElements[dayBranch]
	if !ok {
		return false, false
	}
	if lineBranch == dayBranch {
		return true, false
	}
	if le == de {
		return false, true
	}
	return false, false
}

// DayShengKe reports whether the day branch's element generates (日生) or
// controls (日克) the line's element.
func DayShengKe(lineElement Element, dayBranch ganzhi.Branch) (riSheng, riKe bool) {
	de, ok := branchElements[dayBranch]
	if !ok || !lineElement.Valid() {
		return false, false
	}
	d, _ := Distance(de, lineElement)
	switch d {
	case 1:
		return true, false
	case 2:
		return false, true
	}
	return false, false
}
