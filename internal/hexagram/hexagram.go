// Package hexagram holds the static 64-hexagram catalog and the palace
// (纳甲) stem/branch sequences. Codes are 6-character binary strings, bit i
// is line i+1 counted from the bottom, '1' yang and '0' yin.
package hexagram

import (
	"fmt"
	"strings"

	"liuyao/internal/ganzhi"
	"liuyao/internal/wuxing"
)

// Trigram is one of the eight palace trigrams.
type Trigram string

const (
	Qian Trigram = "乾"
	Kan  Trigram = "坎"
	Gen  Trigram = "艮"
	Zhen Trigram = "震"
	Xun  Trigram = "巽"
	Li   Trigram = "離"
	Kun  Trigram = "坤"
	Dui  Trigram = "兌"
)

// Trigrams lists the eight palaces in the catalog's traditional order.
var Trigrams = [8]Trigram{Qian, Kan, Gen, Zhen, Xun, Li, Kun, Dui}

func (t Trigram) String() string { return string(t) }

// Info is the static metadata of one hexagram. Instances are read-only after
// package load.
type Info struct {
	Code      string         // 6-char binary, bottom line first
	Name      string         // e.g. 乾為天
	Meaning   string         // one-line gloss
	Element   wuxing.Element // the palace element
	Shi       int            // 世 line position, 1-6
	Ying      int            // 應 line position, 1-6
	Yang      bool           // yang or yin hexagram
	Palace    Trigram        // owning palace
	Inner     Trigram        // inner (lower) trigram
	Outer     Trigram        // outer (upper) trigram
	Structure string         // 本宮(六沖), 六合, 六沖, 游魂, 歸魂 or ""
}

// DetailedName formats the palace-qualified name, e.g.
// "乾宮: 火天大有 歸魂卦".
func (h Info) DetailedName() string {
	var b strings.Builder
	b.WriteString(string(h.Palace))
	b.WriteString("宮: ")
	b.WriteString(h.Name)
	if h.Structure != "" {
		b.WriteString(" ")
		b.WriteString(h.Structure)
		b.WriteString("卦")
	}
	return b.String()
}

// ValidateCode checks the 6-bit binary shape of a hexagram code.
func ValidateCode(code string) error {
	if len(code) != 6 {
		return fmt.Errorf("hexagram code %q: want 6 characters, got %d", code, len(code))
	}
	for i := 0; i < 6; i++ {
		if code[i] != '0' && code[i] != '1' {
			return fmt.Errorf("hexagram code %q: position %d is %q, want '0' or '1'", code, i+1, code[i])
		}
	}
	return nil
}

// Lookup returns the catalog entry for a code. Every syntactically valid
// 6-bit code has an entry; a miss for a valid code is a programming error.
func Lookup(code string) (Info, bool) {
	h, ok := catalog[code]
	return h, ok
}

// Flip applies changing-line positions (1-6, validated) to a code and
// returns the changed hexagram's code.
func Flip(code string, changing []int) (string, error) {
	if err := ValidateCode(code); err != nil {
		return "", err
	}
	bits := []byte(code)
	for _, pos := range changing {
		if pos < 1 || pos > 6 {
			return "", fmt.Errorf("changing line %d out of range 1-6", pos)
		}
		i := pos - 1
		if bits[i] == '0' {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	return string(bits), nil
}

// PalaceBase returns the palace's own pure hexagram (the 本宮卦).
func PalaceBase(t Trigram) (Info, bool) {
	code, ok := palaceCodes[t]
	if !ok {
		return Info{}, false
	}
	return catalog[code], true
}

var palaceCodes = map[Trigram]string{
	Qian: "111111", Kan: "010010", Gen: "001001", Zhen: "100100",
	Xun: "011011", Li: "101101", Kun: "000000", Dui: "110110",
}

// BranchPattern returns a trigram's fixed six-branch naigap sequence,
// bottom line first. Hardcoded domain constants, never derived.
func BranchPattern(t Trigram) [6]ganzhi.Branch { return branchPatterns[t] }

// StemPattern returns a trigram's fixed six-stem naigap sequence.
func StemPattern(t Trigram) [6]ganzhi.Stem { return stemPatterns[t] }

var branchPatterns = map[Trigram][6]ganzhi.Branch{
	Qian: {"子", "寅", "辰", "午", "申", "戌"},
	Kan:  {"寅", "辰", "午", "申", "戌", "子"},
	Gen:  {"辰", "午", "申", "戌", "子", "寅"},
	Zhen: {"子", "寅", "辰", "午", "申", "戌"},
	Xun:  {"丑", "亥", "酉", "未", "巳", "卯"}, // yin palaces run the cycle backwards
	Li:   {"卯", "丑", "亥", "酉", "未", "巳"},
	Kun:  {"未", "巳", "卯", "丑", "亥", "酉"},
	Dui:  {"巳", "卯", "丑", "亥", "酉", "未"},
}

var stemPatterns = map[Trigram][6]ganzhi.Stem{
	Qian: {"甲", "甲", "甲", "壬", "壬", "壬"}, // inner 甲, outer 壬
	Kan:  {"戊", "戊", "戊", "戊", "戊", "戊"},
	Gen:  {"丙", "丙", "丙", "丙", "丙", "丙"},
	Zhen: {"庚", "庚", "庚", "庚", "庚", "庚"},
	Xun:  {"辛", "辛", "辛", "辛", "辛", "辛"},
	Li:   {"己", "己", "己", "己", "己", "己"},
	Kun:  {"乙", "乙", "乙", "癸", "癸", "癸"}, // inner 乙, outer 癸
	Dui:  {"丁", "丁", "丁", "丁", "丁", "丁"},
}

// All returns the catalog codes in a stable palace-then-sequence order.
func All() []Info {
	out := make([]Info, 0, len(catalog))
	for _, t := range Trigrams {
		for _, code := range palaceOrder[t] {
			out = append(out, catalog[code])
		}
	}
	return out
}
