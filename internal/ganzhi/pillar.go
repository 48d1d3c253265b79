package ganzhi

import "fmt"

// Pillar is an immutable stem/branch pair such as 甲子. The zero value is not
// a valid pillar; construct through NewPillar or ParsePillar.
type Pillar struct {
	stem   Stem
	branch Branch
}

// NewPillar validates both halves and returns the pillar.
func NewPillar(stem Stem, branch Branch) (Pillar, error) {
	if !stem.Valid() {
		return Pillar{}, fmt.Errorf("invalid heavenly stem %q", stem)
	}
	if !branch.Valid() {
		return Pillar{}, fmt.Errorf("invalid earthly branch %q", branch)
	}
	return Pillar{stem: stem, branch: branch}, nil
}

// MustPillar is NewPillar for static tables; invalid input is a programming
// error and panics.
func MustPillar(stem Stem, branch Branch) Pillar {
	p, err := NewPillar(stem, branch)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePillar parses a two-character Gan-Zhi string such as "甲子".
func ParsePillar(s string) (Pillar, error) {
	r := []rune(s)
	if len(r) != 2 {
		return Pillar{}, fmt.Errorf("invalid gan-zhi pillar %q: want 2 characters", s)
	}
	return NewPillar(Stem(r[0]), Branch(r[1]))
}

// Stem returns the heavenly stem.
func (p Pillar) Stem() Stem { return p.stem }

// Branch returns the earthly branch.
func (p Pillar) Branch() Branch { return p.branch }

// IsZero reports whether p is the unset zero value.
func (p Pillar) IsZero() bool { return p.stem == "" && p.branch == "" }

func (p Pillar) String() string { return string(p.stem) + string(p.branch) }

// BaZi is the four-pillar date (年/月/日/時) plus the day pillar's two void
// branches (旬空). Immutable after construction.
type BaZi struct {
	Year  Pillar
	Month Pillar
	Day   Pillar
	Hour  Pillar

	// Void1 and Void2 are the two excluded branches of the day pillar's
	// decan, in cycle order.
	Void1 Branch
	Void2 Branch
}

// NewBaZi builds a BaZi and derives the void branches from the day pillar.
func NewBaZi(year, month, day, hour Pillar) BaZi {
	v1, v2 := VoidBranches(day)
	return BaZi{Year: year, Month: month, Day: day, Hour: hour, Void1: v1, Void2: v2}
}

// VoidBranches computes the day pillar's decan voids (空亡). Each decan of
// the sexagenary cycle starts at 甲X and leaves two branches uncovered:
// the decan-lead branch offset by 10 and 11.
//
//	甲子旬 → 戌亥, 甲戌旬 → 申酉, 甲申旬 → 午未,
//	甲午旬 → 辰巳, 甲辰旬 → 寅卯, 甲寅旬 → 子丑.
func VoidBranches(day Pillar) (Branch, Branch) {
	si, _ := StemIndex(day.stem)
	bi, _ := BranchIndex(day.branch)
	lead := ((bi-si)%12 + 12) % 12
	return Branches[(lead+10)%12], Branches[(lead+11)%12]
}

// IsVoid reports whether b is one of the BaZi's void branches.
func (bz BaZi) IsVoid(b Branch) bool {
	return b != "" && (b == bz.Void1 || b == bz.Void2)
}

// Key is the BaZi's canonical string form, usable as a cache key.
func (bz BaZi) Key() string {
	return bz.Year.String() + "_" + bz.Month.String() + "_" + bz.Day.String() + "_" + bz.Hour.String()
}

func (bz BaZi) String() string {
	return fmt.Sprintf("%s年 %s月 %s日 %s時", bz.Year, bz.Month, bz.Day, bz.Hour)
}
