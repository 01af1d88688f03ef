package domain

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", s, time.UTC)
	return t
}

func TestGroupByDate(t *testing.T) {
	records := []ActivityRecord{
		{ID: "c3", Date: day("2026-03-02").Add(9 * time.Hour), Magnitude: 5},
		{ID: "c1", Date: day("2026-03-01").Add(10 * time.Hour), Magnitude: 10},
		{ID: "c2", Date: day("2026-03-01").Add(15 * time.Hour), Magnitude: 20},
	}

	groups := GroupByDate(records)

	if len(groups) != 2 {
		t.Fatalf("Expected 2 day groups, got %d", len(groups))
	}

	// Groups come out in ascending date order regardless of input order.
	if !groups[0].Date.Equal(day("2026-03-01")) {
		t.Errorf("First group should be 2026-03-01, got %v", groups[0].Date)
	}
	if !groups[1].Date.Equal(day("2026-03-02")) {
		t.Errorf("Second group should be 2026-03-02, got %v", groups[1].Date)
	}

	// Intra-day order follows input order.
	first := groups[0].Records
	if len(first) != 2 || first[0].ID != "c1" || first[1].ID != "c2" {
		t.Errorf("Expected stable [c1, c2] within day, got %v", first)
	}

	if groups[0].TotalMagnitude() != 30 {
		t.Errorf("Expected day magnitude 30, got %d", groups[0].TotalMagnitude())
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	if got := GroupByDate(nil); len(got) != 0 {
		t.Errorf("Expected no groups for empty input, got %d", len(got))
	}
}

func TestActivityRecord_MessageContains(t *testing.T) {
	r := ActivityRecord{Message: "Fix flaky TESTS in CI config"}

	if !r.MessageContains("test") {
		t.Error("Keyword match should ignore case")
	}
	if !r.MessageContains("nope", "config") {
		t.Error("Any keyword should match")
	}
	if r.MessageContains("refactor") {
		t.Error("Absent keyword should not match")
	}
}

func TestCategoryCounts_Total(t *testing.T) {
	var nilCounts *CategoryCounts
	if nilCounts.Total() != 0 {
		t.Error("Nil counts should total 0")
	}

	c := &CategoryCounts{Test: 3, Config: 1, Doc: 2, Other: 4}
	if c.Total() != 10 {
		t.Errorf("Expected total 10, got %d", c.Total())
	}
}
