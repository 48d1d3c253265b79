package engine

import (
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"liuyao/internal/calendar"
	"liuyao/internal/ganzhi"
	"liuyao/internal/hexagram"
	"liuyao/internal/wuxing"
)

// ErrChangingLine reports an out-of-range or duplicated changing-line
// position.
var ErrChangingLine = errors.New("changing line position out of range")

// Chart is the complete result of one reading.
type Chart struct {
	BaZi ganzhi.BaZi `json:"bazi"`

	Code string        `json:"benGuaCode"`
	Main hexagram.Info `json:"-"`

	ChangedCode string         `json:"bianGuaCode,omitempty"`
	Changed     *hexagram.Info `json:"-"`

	ChangingLines []int `json:"changingLines,omitempty"`

	SanHeJu string     `json:"sanHeJu,omitempty"`
	ShenSha ShenShaMap `json:"shenSha"`

	Yaos [6]*Yao `json:"yao"`
}

// IsStatic reports whether the reading has no changing lines.
func (c *Chart) IsStatic() bool { return len(c.ChangingLines) == 0 }

// Cache stores shen sha maps keyed by the four-pillar key. Implementations
// must be safe for concurrent use. Values handed out are owned by the cache;
// the engine clones before returning them to callers.
type Cache interface {
	Get(key string) (ShenShaMap, bool)
	Put(key string, m ShenShaMap)
}

// noCache disables caching; every Divine recomputes.
type noCache struct{}

func (noCache) Get(string) (ShenShaMap, bool) { return nil, false }
func (noCache) Put(string, ShenShaMap)        {}

// Diviner runs readings and owns the shen sha cache. The zero value is not
// usable; construct with New.
type Diviner struct {
	cache Cache
	group singleflight.Group
}

// New returns a Diviner backed by cache. A nil cache disables caching.
func New(cache Cache) *Diviner {
	if cache == nil {
		cache = noCache{}
	}
	return &Diviner{cache: cache}
}

// shenSha returns the spirit map for bz, building it at most once per key
// across concurrent callers.
func (d *Diviner) shenSha(bz ganzhi.BaZi) ShenShaMap {
	key := bz.Key()
	v, _, _ := d.group.Do(key, func() (any, error) {
		if m, ok := d.cache.Get(key); ok {
			return m, nil
		}
		m := BuildShenSha(bz)
		d.cache.Put(key, m)
		return m, nil
	})
	return v.(ShenShaMap).clone()
}

// DivineFromDate converts a civil date-time string through conv and casts the
// hexagram for that moment. The accepted date layouts are those of
// calendar.ParseDateTime.
func (d *Diviner) DivineFromDate(code, date string, conv calendar.Converter, changing []int) (*Chart, error) {
	bz, err := calendar.BaZiFromString(conv, date)
	if err != nil {
		return nil, err
	}
	return d.Divine(code, bz, changing)
}

// Divine evaluates one reading: code is the 6-bit main hexagram (bottom line
// first), bz the four pillars of the moment, and changing the 1-based
// changing-line positions. The returned Chart is independent of all internal
// state.
func (d *Diviner) Divine(code string, bz ganzhi.BaZi, changing []int) (*Chart, error) {
	main, ok := hexagram.Lookup(code)
	if !ok {
		if err := hexagram.ValidateCode(code); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unknown hexagram code %q", code)
	}

	seen := map[int]bool{}
	for _, n := range changing {
		if n < 1 || n > 6 || seen[n] {
			return nil, fmt.Errorf("%w: %d", ErrChangingLine, n)
		}
		seen[n] = true
	}

	chart := &Chart{
		BaZi:          bz,
		Code:          code,
		Main:          main,
		ChangingLines: append([]int(nil), changing...),
		ShenSha:       d.shenSha(bz),
	}

	// Skeleton lines: position, yin/yang, shi/ying, change marks.
	for i := 0; i < 6; i++ {
		y := &Yao{
			Position: i + 1,
			MainYang: code[i] == '1',
		}
		switch y.Position {
		case main.Shi:
			y.ShiYing = "世"
		case main.Ying:
			y.ShiYing = "應"
		}
		if seen[y.Position] {
			y.IsChanging = true
			if y.MainYang {
				y.ChangeMark = "O"
			} else {
				y.ChangeMark = "X"
			}
		}
		chart.Yaos[i] = y
	}

	// Main pillars, elements, kinship against the palace element.
	mainPillars := najiaPillars(main)
	for i, y := range chart.Yaos {
		y.MainPillar = mainPillars[i]
		if elem, ok := wuxing.BranchElement(y.MainPillar.Branch()); ok {
			y.MainElement = elem
			if kin, ok := KinshipOf(main.Element, elem); ok {
				y.MainKinship = kin
			}
		}
	}

	// Changed hexagram and per-line changed pillars. Kinship stays relative
	// to the main palace element.
	if !chart.IsStatic() {
		changedCode, err := hexagram.Flip(code, changing)
		if err != nil {
			return nil, err
		}
		changed, ok := hexagram.Lookup(changedCode)
		if !ok {
			return nil, fmt.Errorf("unknown changed hexagram code %q", changedCode)
		}
		chart.ChangedCode = changedCode
		chart.Changed = &changed

		changedPillars := najiaPillars(changed)
		for i, y := range chart.Yaos {
			if !y.IsChanging {
				continue
			}
			y.ChangedPillar = changedPillars[i]
			if elem, ok := wuxing.BranchElement(y.ChangedPillar.Branch()); ok {
				y.ChangedElement = elem
				if kin, ok := KinshipOf(main.Element, elem); ok {
					y.ChangedKinship = kin
				}
			}
		}
	}

	fillHiddenGods(&chart.Yaos, main)
	fillSixSpirits(&chart.Yaos, bz.Day.Stem())

	// Strength and the day/month rule cascade.
	monthBranch := bz.Month.Branch()
	for _, y := range chart.Yaos {
		y.Strength = wuxing.MonthStrength(y.MainElement, monthBranch, y.MainPillar.Branch())
		y.Marks = evalMarks(y.MainPillar.Branch(), y.MainElement, bz, chart.ShenSha)

		// A static line struck by the day clash is either woken (暗動) when
		// the month leaves it strong, or broken (日破) when not.
		if y.Marks.RiChong && !y.IsChanging {
			monthStrong := y.Strength == wuxing.StrengthYueSheng ||
				y.Strength == wuxing.StrengthYueFu ||
				y.Strength == wuxing.StrengthLinYue ||
				y.Marks.YueHe == HeSheng || y.Marks.YueHe == HePing
			if monthStrong {
				y.Marks.AnDong = true
			} else {
				y.Marks.RiPeng = true
			}
		}

		for _, cat := range AuxiliarySpirits {
			if chart.ShenSha.Contains(cat, y.MainPillar.Branch()) {
				y.Spirits = appendUnique(y.Spirits, cat)
			}
		}
	}

	// Changed pillars get the same day/month marks, minus the 暗動/日破
	// split: a changed line is already in motion.
	for _, y := range chart.Yaos {
		if !y.IsChanging || y.ChangedPillar.IsZero() {
			continue
		}
		y.ChangedMarks = evalMarks(y.ChangedPillar.Branch(), y.ChangedElement, bz, chart.ShenSha)

		if t := transformOf(y.MainPillar.Branch(), y.ChangedPillar.Branch()); t != "" {
			y.Transforms = appendUnique(y.Transforms, t)
		}
		if t := huiTouOf(y.MainElement, y.ChangedElement); t != "" {
			y.Transforms = appendUnique(y.Transforms, t)
		}
	}

	chart.SanHeJu = detectSanHeJu(chart.Yaos, bz)
	return chart, nil
}

// evalMarks computes the day/month relationship flags of one pillar.
func evalMarks(branch ganzhi.Branch, elem wuxing.Element, bz ganzhi.BaZi, ss ShenShaMap) Marks {
	var m Marks

	m.XunKong = bz.IsVoid(branch)
	m.YuePeng = ss.Contains(ShenShaYuePeng, branch)
	m.RiChong = ss.Contains(ShenShaRiChong, branch)

	if t, ok := combinationType(bz.Month.Branch(), branch, true); ok {
		m.YueHe = t
	}
	if t, ok := combinationType(bz.Day.Branch(), branch, false); ok {
		m.RiHe = t
	}

	m.LinRi, m.RiFu = wuxing.DayProximity(branch, bz.Day.Branch())
	m.RiSheng, m.RiKe = wuxing.DayShengKe(elem, bz.Day.Branch())
	return m
}

// 化進神 pairs; 化退神 is the inverse direction.
var huaJin = map[ganzhi.Branch]ganzhi.Branch{
	"寅": "卯",
	"申": "酉",
	"未": "戌",
	"丑": "辰",
}

func transformOf(mainBranch, changedBranch ganzhi.Branch) string {
	if huaJin[mainBranch] == changedBranch {
		return TransformJinShen
	}
	if huaJin[changedBranch] == mainBranch {
		return TransformTuiShen
	}
	return ""
}

func huiTouOf(mainElem, changedElem wuxing.Element) string {
	d, ok := wuxing.Distance(changedElem, mainElem)
	if !ok {
		return ""
	}
	switch d {
	case 1:
		return TransformHuiTouShen
	case 2:
		return TransformHuiTouKe
	}
	return ""
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
