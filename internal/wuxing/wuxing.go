// Package wuxing implements the five-element (五行) cycle: element lookup for
// earthly branches, the generative-order distance arithmetic that drives
// kinship and strength calculations, and the line-versus-day checks.
//
// All distances are computed over the fixed generative ordering
// 金(0) 水(1) 木(2) 火(3) 土(4): distance 1 means "source generates target",
// distance 2 "source controls target".
package wuxing

import "liuyao/internal/ganzhi"

// Element is one of the five phases (金水木火土).
type Element string

const (
	Metal Element = "金"
	Water Element = "水"
	Wood  Element = "木"
	Fire  Element = "火"
	Earth Element = "土"
)

var elementIndex = map[Element]int{
	Metal: 0, Water: 1, Wood: 2, Fire: 3, Earth: 4,
}

// Index returns the element's position in the generative ordering.
func Index(e Element) (int, bool) {
	i, ok := elementIndex[e]
	return i, ok
}

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool { _, ok := elementIndex[e]; return ok }

func (e Element) String() string { return string(e) }

var branchElements = map[ganzhi.Branch]Element{
	"子": Water, "丑": Earth, "寅": Wood, "卯": Wood,
	"辰": Earth, "巳": Fire, "午": Fire, "未": Earth,
	"申": Metal, "酉": Metal, "戌": Earth, "亥": Water,
}

// BranchElement returns the element of an earthly branch.
func BranchElement(b ganzhi.Branch) (Element, bool) {
	e, ok := branchElements[b]
	return e, ok
}

// Distance returns (to - from + 5) % 5 over the generative ordering:
// 0 same, 1 from-generates-to, 2 from-controls-to, 3 to-controls-from,
// 4 to-generates-from. The second result is false for invalid elements.
func Distance(from, to Element) (int, bool) {
	fi, ok := elementIndex[from]
	if !ok {
		return 0, false
	}
	ti, ok := elementIndex[to]
	if !ok {
		return 0, false
	}
	return (ti - fi + 5) % 5, true
}

// Generates reports whether a generates b (metal→water→wood→fire→earth→metal).
func Generates(a, b Element) bool {
	d, ok := Distance(a, b)
	return ok && d == 1
}

// Controls reports whether a controls b (metal→wood, wood→earth, …).
func Controls(a, b Element) bool {
	d, ok := Distance(a, b)
	return ok && d == 2
}
