package hexagram_test

import (
	"strconv"
	"testing"

	"liuyao/internal/hexagram"
)

// All 64 permutations of 6 bits must resolve, and codes must round-trip
// through the stored Info.
func TestLookup_All64CodesExist(t *testing.T) {
	for n := 0; n < 64; n++ {
		code := ""
		for i := 0; i < 6; i++ {
			code += strconv.Itoa((n >> i) & 1)
		}
		h, ok := hexagram.Lookup(code)
		if !ok {
			t.Fatalf("code %s missing from catalog", code)
		}
		if h.Code != code {
			t.Errorf("code %s: entry carries code %s", code, h.Code)
		}
		if h.Name == "" || h.Palace == "" || h.Inner == "" || h.Outer == "" {
			t.Errorf("code %s: incomplete entry %+v", code, h)
		}
		if h.Shi < 1 || h.Shi > 6 || h.Ying < 1 || h.Ying > 6 || h.Shi == h.Ying {
			t.Errorf("code %s: bad shi/ying %d/%d", code, h.Shi, h.Ying)
		}
	}
}

func TestLookup_NamesUnique(t *testing.T) {
	seen := map[string]string{}
	for _, h := range hexagram.All() {
		if prev, dup := seen[h.Name]; dup {
			t.Errorf("name %s shared by %s and %s", h.Name, prev, h.Code)
		}
		seen[h.Name] = h.Code
	}
	if len(seen) != 64 {
		t.Errorf("All() returned %d entries, want 64", len(seen))
	}
}

func TestValidateCode(t *testing.T) {
	if err := hexagram.ValidateCode("111111"); err != nil {
		t.Errorf("valid code rejected: %v", err)
	}
	for _, bad := range []string{"", "11111", "1111111", "111112", "yinyan"} {
		if err := hexagram.ValidateCode(bad); err == nil {
			t.Errorf("ValidateCode(%q): want error", bad)
		}
	}
}

func TestFlip(t *testing.T) {
	got, err := hexagram.Flip("111111", []int{1})
	if err != nil {
		t.Fatalf("Flip: %v", err)
	}
	if got != "011111" {
		t.Errorf("Flip(111111, [1]) = %s, want 011111", got)
	}

	// Flipping twice restores the original.
	back, err := hexagram.Flip(got, []int{1})
	if err != nil {
		t.Fatalf("Flip back: %v", err)
	}
	if back != "111111" {
		t.Errorf("double flip = %s, want 111111", back)
	}

	if _, err := hexagram.Flip("111111", []int{0}); err == nil {
		t.Error("changing line 0 accepted")
	}
	if _, err := hexagram.Flip("111111", []int{7}); err == nil {
		t.Error("changing line 7 accepted")
	}
}

func TestDetailedName(t *testing.T) {
	h, _ := hexagram.Lookup("111101")
	if got, want := h.DetailedName(), "乾宮: 火天大有 歸魂卦"; got != want {
		t.Errorf("DetailedName: got %q, want %q", got, want)
	}
	plain, _ := hexagram.Lookup("011111")
	if got, want := plain.DetailedName(), "乾宮: 天風姤"; got != want {
		t.Errorf("DetailedName: got %q, want %q", got, want)
	}
}

func TestShiYingPositions_QianWei(t *testing.T) {
	h, _ := hexagram.Lookup("111111")
	if h.Shi != 6 || h.Ying != 3 {
		t.Errorf("乾為天 shi/ying = %d/%d, want 6/3", h.Shi, h.Ying)
	}
}

func TestPalaceBase(t *testing.T) {
	for _, tr := range hexagram.Trigrams {
		base, ok := hexagram.PalaceBase(tr)
		if !ok {
			t.Fatalf("PalaceBase(%s) missing", tr)
		}
		if base.Palace != tr || base.Inner != tr || base.Outer != tr {
			t.Errorf("PalaceBase(%s): got %+v", tr, base)
		}
	}
}

func TestPatterns_CompleteAndShaped(t *testing.T) {
	for _, tr := range hexagram.Trigrams {
		bp := hexagram.BranchPattern(tr)
		sp := hexagram.StemPattern(tr)
		for i := 0; i < 6; i++ {
			if !bp[i].Valid() {
				t.Errorf("%s branch pattern[%d] invalid: %s", tr, i, bp[i])
			}
			if !sp[i].Valid() {
				t.Errorf("%s stem pattern[%d] invalid: %s", tr, i, sp[i])
			}
		}
	}
}
