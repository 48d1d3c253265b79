package chart

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"liuyao/internal/calendar"
)

func testdataPath(name string) string {
	_, f, _, _ := runtime.Caller(0)
	dir := filepath.Dir(f)
	return filepath.Join(dir, "testdata", name)
}

func TestLoadFromPath_YAML(t *testing.T) {
	r, err := LoadFromPath(testdataPath("request.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if r.Question != "問財運" || r.Code != "111111" {
		t.Errorf("got %+v", r)
	}
	if len(r.Lines) != 1 || r.Lines[0] != 1 {
		t.Errorf("lines: got %v", r.Lines)
	}
	if r.Date != "2025/12/01 19:00" {
		t.Errorf("date: got %q", r.Date)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	r, err := LoadFromPath(testdataPath("request.json"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if r.Code != "010010" || len(r.Pillars) != 4 {
		t.Errorf("got %+v", r)
	}
	if r.Pillars[2] != "戊申" {
		t.Errorf("day pillar: got %q", r.Pillars[2])
	}
}

func TestLoad_DetectJSON(t *testing.T) {
	data := []byte(`{"code":"000000","pillars":["乙巳","甲申","戊申","壬戌"]}`)
	r, err := Load(data, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.Code != "000000" {
		t.Errorf("got %+v", r)
	}
}

func TestLoad_DetectYAML(t *testing.T) {
	data := []byte("code: \"101011\"\ndate: 2025/12/01 19:00\n")
	r, err := Load(data, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.Code != "101011" || r.Date != "2025/12/01 19:00" {
		t.Errorf("got %+v", r)
	}
}

func TestLoad_SameRequestBothFormats(t *testing.T) {
	yamlBody := []byte("question: 問財運\ncode: \"111111\"\nlines: [1, 4]\ndate: \"2025/12/01 19:00\"\n")
	jsonBody := []byte(`{"question":"問財運","code":"111111","lines":[1,4],"date":"2025/12/01 19:00"}`)

	fromYAML, err := Load(yamlBody, ".yaml")
	if err != nil {
		t.Fatalf("Load yaml: %v", err)
	}
	fromJSON, err := Load(jsonBody, ".json")
	if err != nil {
		t.Fatalf("Load json: %v", err)
	}
	if diff := cmp.Diff(fromYAML, fromJSON); diff != "" {
		t.Errorf("formats disagree (-yaml +json):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		ok   bool
	}{
		{"date", Request{Code: "111111", Date: "2025/12/01 19:00"}, true},
		{"pillars", Request{Code: "111111", Pillars: []string{"乙巳", "甲申", "戊申", "壬戌"}}, true},
		{"short code", Request{Code: "111", Date: "2025/12/01 19:00"}, false},
		{"non-binary code", Request{Code: "11211a", Date: "2025/12/01 19:00"}, false},
		{"line out of range", Request{Code: "111111", Lines: []int{7}, Date: "2025/12/01 19:00"}, false},
		{"no moment", Request{Code: "111111"}, false},
		{"both moments", Request{Code: "111111", Date: "2025/12/01 19:00", Pillars: []string{"乙巳", "甲申", "戊申", "壬戌"}}, false},
		{"three pillars", Request{Code: "111111", Pillars: []string{"乙巳", "甲申", "戊申"}}, false},
	}
	for _, tc := range cases {
		err := tc.req.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: want error", tc.name)
		}
	}
}

func TestValidate_NoMoment(t *testing.T) {
	err := (&Request{Code: "111111"}).Validate()
	if !errors.Is(err, ErrNoMoment) {
		t.Errorf("want ErrNoMoment, got %v", err)
	}
}

func TestMoment_Pillars(t *testing.T) {
	r := Request{Code: "010010", Pillars: []string{"乙巳", "甲申", "戊申", "壬戌"}}
	bz, err := r.Moment(calendar.Unavailable{})
	if err != nil {
		t.Fatalf("Moment: %v", err)
	}
	if got := bz.String(); got != "乙巳年 甲申月 戊申日 壬戌時" {
		t.Errorf("pillars: got %q", got)
	}
	if bz.Void1.String() != "寅" || bz.Void2.String() != "卯" {
		t.Errorf("voids: got %v %v", bz.Void1, bz.Void2)
	}
}

func TestMoment_BadPillar(t *testing.T) {
	r := Request{Code: "010010", Pillars: []string{"乙巳", "甲申", "戊戊", "壬戌"}}
	if _, err := r.Moment(calendar.Unavailable{}); err == nil {
		t.Error("want parse error for bad pillar")
	}
}

func TestMoment_Date(t *testing.T) {
	r := Request{Code: "111111", Date: "2025/12/01 19:00"}
	bz, err := r.Moment(calendar.LunarConverter{})
	if err != nil {
		t.Fatalf("Moment: %v", err)
	}
	if got := bz.String(); got != "乙巳年 丁亥月 甲辰日 甲戌時" {
		t.Errorf("date: got %q", got)
	}
}
