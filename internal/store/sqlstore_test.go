package store

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SqlStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "liuyao.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSqlStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)

	payload := json.RawMessage(`{"benGuaCode":"111111"}`)
	r := &Reading{
		Question:  "求財",
		DateInput: "2025/12/01 19:00",
		Code:      "111111",
		Changed:   "011111",
		Lines:     []int{1},
		BaZiKey:   "乙巳_丁亥_甲子_甲戌",
		SanHeJu:   "",
		Chart:     payload,
	}
	id, err := s.SaveReading(r)
	if err != nil {
		t.Fatalf("SaveReading: %v", err)
	}
	if id == 0 || r.ID != id || r.CreatedAt == "" {
		t.Fatalf("save did not fill ID/CreatedAt: id=%d r=%+v", id, r)
	}

	got, err := s.GetReading(id)
	if err != nil {
		t.Fatalf("GetReading: %v", err)
	}
	if got == nil {
		t.Fatal("GetReading returned nil for existing id")
	}
	if got.Question != "求財" || got.Code != "111111" || got.Changed != "011111" {
		t.Errorf("reading fields lost: %+v", got)
	}
	if len(got.Lines) != 1 || got.Lines[0] != 1 {
		t.Errorf("changing lines = %v, want [1]", got.Lines)
	}
	if string(got.Chart) != string(payload) {
		t.Errorf("chart payload = %s", got.Chart)
	}
}

func TestSqlStoreGetMissing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.GetReading(42)
	if err != nil {
		t.Fatalf("GetReading: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing id, got %+v", got)
	}
}

func TestSqlStoreListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	for i, q := range []string{"first", "second", "third"} {
		_, err := s.SaveReading(&Reading{
			Question: q,
			Code:     "111111",
			BaZiKey:  "key",
			Chart:    json.RawMessage(`{}`),
			// Identical timestamps: insertion order must break the tie.
			CreatedAt: "2026-01-01T00:00:00Z",
		})
		if err != nil {
			t.Fatalf("SaveReading %d: %v", i, err)
		}
	}

	list, err := s.ListReadings(2)
	if err != nil {
		t.Fatalf("ListReadings: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d readings, want 2", len(list))
	}
	if list[0].Question != "third" || list[1].Question != "second" {
		t.Errorf("order wrong: %s, %s", list[0].Question, list[1].Question)
	}
	if list[0].Chart != nil {
		t.Error("list entries should not carry the chart payload")
	}
}

func TestSqlStoreDelete(t *testing.T) {
	s := openTestStore(t)
	id, err := s.SaveReading(&Reading{Code: "000000", BaZiKey: "k", Chart: json.RawMessage(`{}`)})
	if err != nil {
		t.Fatalf("SaveReading: %v", err)
	}
	if err := s.DeleteReading(id); err != nil {
		t.Fatalf("DeleteReading: %v", err)
	}
	got, err := s.GetReading(id)
	if err != nil || got != nil {
		t.Errorf("after delete: got=%v err=%v", got, err)
	}
	// Deleting again is fine.
	if err := s.DeleteReading(id); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestSqlStoreReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "liuyao.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	id, err := s.SaveReading(&Reading{Code: "110110", BaZiKey: "k", Chart: json.RawMessage(`{}`)})
	if err != nil {
		t.Fatalf("SaveReading: %v", err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	got, err := s2.GetReading(id)
	if err != nil || got == nil {
		t.Fatalf("after reopen: got=%v err=%v", got, err)
	}
}

func TestMemStoreMatchesInterface(t *testing.T) {
	var _ Store = NewMemStore()
	var _ Store = &SqlStore{}

	m := NewMemStore()
	id, err := m.SaveReading(&Reading{Code: "111111", BaZiKey: "k", Chart: json.RawMessage(`{}`)})
	if err != nil {
		t.Fatalf("SaveReading: %v", err)
	}
	got, err := m.GetReading(id)
	if err != nil || got == nil || got.Code != "111111" {
		t.Fatalf("GetReading: got=%+v err=%v", got, err)
	}
}
