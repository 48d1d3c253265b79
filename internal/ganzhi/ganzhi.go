// Package ganzhi provides the Gan-Zhi (干支) calendrical symbol system:
// the ten heavenly stems, the twelve earthly branches, stem/branch pillars,
// the four-pillar BaZi, and the fixed branch relations (沖, 合, 旬空).
//
// Everything here is a value type over small fixed tables. Lookups that can
// miss return (T, bool); constructors that validate return (T, error).
package ganzhi

// Stem is one of the ten heavenly stems (天干).
type Stem string

// Branch is one of the twelve earthly branches (地支).
type Branch string

// Stems lists the heavenly stems in cycle order.
var Stems = [10]Stem{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Branches lists the earthly branches in cycle order, 子 first.
var Branches = [12]Branch{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var stemIndex = func() map[Stem]int {
	m := make(map[Stem]int, len(Stems))
	for i, s := range Stems {
		m[s] = i
	}
	return m
}()

var branchIndex = func() map[Branch]int {
	m := make(map[Branch]int, len(Branches))
	for i, b := range Branches {
		m[b] = i
	}
	return m
}()

// ParseStem returns the stem for a single Chinese character.
func ParseStem(s string) (Stem, bool) {
	_, ok := stemIndex[Stem(s)]
	return Stem(s), ok
}

// ParseBranch returns the branch for a single Chinese character.
func ParseBranch(s string) (Branch, bool) {
	_, ok := branchIndex[Branch(s)]
	return Branch(s), ok
}

// StemIndex returns the stem's position in the ten-stem cycle (甲=0).
func StemIndex(s Stem) (int, bool) {
	i, ok := stemIndex[s]
	return i, ok
}

// BranchIndex returns the branch's position in the twelve-branch cycle (子=0).
func BranchIndex(b Branch) (int, bool) {
	i, ok := branchIndex[b]
	return i, ok
}

// Valid reports whether s is one of the ten stems.
func (s Stem) Valid() bool { _, ok := stemIndex[s]; return ok }

// Valid reports whether b is one of the twelve branches.
func (b Branch) Valid() bool { _, ok := branchIndex[b]; return ok }

func (s Stem) String() string   { return string(s) }
func (b Branch) String() string { return string(b) }

// ClashPartner returns the branch's unique clash (沖) partner: the branch
// six positions away in the cycle. The relation is symmetric.
func ClashPartner(b Branch) (Branch, bool) {
	i, ok := branchIndex[b]
	if !ok {
		return "", false
	}
	return Branches[(i+6)%12], true
}

// combinePairs holds the six-combination (六合) pairing. Not the same pairing
// as clash: 子丑, 寅亥, 卯戌, 辰酉, 巳申, 午未.
var combinePairs = map[Branch]Branch{
	"子": "丑", "丑": "子",
	"寅": "亥", "亥": "寅",
	"卯": "戌", "戌": "卯",
	"辰": "酉", "酉": "辰",
	"巳": "申", "申": "巳",
	"午": "未", "未": "午",
}

// CombinePartner returns the branch's unique combination (合) partner.
func CombinePartner(b Branch) (Branch, bool) {
	p, ok := combinePairs[b]
	return p, ok
}

// IsHe reports whether two branches are in the six-combination relation.
func IsHe(a, b Branch) bool {
	p, ok := combinePairs[a]
	return ok && p == b
}
