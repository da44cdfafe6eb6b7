package collection_test

import (
	"testing"

	"stockpilot/pkg/collection"
)

func TestMap(t *testing.T) {
	got := collection.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	want := []int{2, 4, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Map: got %v, want %v", got, want)
		}
	}
}

func TestFilterAndCount(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	got := collection.Filter([]int{1, 2, 3, 4, 5}, even)
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("Filter: got %v", got)
	}
	if n := collection.Count([]int{1, 2, 3, 4, 5}, even); n != 2 {
		t.Errorf("Count: got %d, want 2", n)
	}
}

func TestFirst(t *testing.T) {
	v, ok := collection.First([]string{"a", "bb", "ccc"}, func(s string) bool { return len(s) == 2 })
	if !ok || v != "bb" {
		t.Errorf("First: got (%q, %v)", v, ok)
	}
	_, ok = collection.First([]string{"a"}, func(s string) bool { return len(s) == 9 })
	if ok {
		t.Error("First: expected no match")
	}
}

func TestKeyBy(t *testing.T) {
	type rec struct{ id, name string }
	m := collection.KeyBy([]rec{{"1", "a"}, {"2", "b"}, {"1", "c"}}, func(r rec) string { return r.id })
	if len(m) != 2 {
		t.Fatalf("KeyBy: got %d keys, want 2", len(m))
	}
	if m["1"].name != "c" {
		t.Errorf("KeyBy: last element should win, got %q", m["1"].name)
	}
}

func TestUnique(t *testing.T) {
	got := collection.Unique([]int{3, 1, 3, 2, 1})
	want := []int{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("Unique: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Unique: got %v, want %v (first occurrence order)", got, want)
		}
	}
}

func TestSum(t *testing.T) {
	if s := collection.Sum([]float64{1.5, 2.5}, func(f float64) float64 { return f }); s != 4.0 {
		t.Errorf("Sum: got %v, want 4.0", s)
	}
}
