package review

import (
	"testing"
	"time"
)

func TestPrioritize(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []QueueEntry{
		{ID: "reviewed-weak", MemoryStrength: 1.5, TimesReviewed: 3, NextReviewDate: now},
		{ID: "never-reviewed", MemoryStrength: 2.5, TimesReviewed: 0, NextReviewDate: now},
		{ID: "reviewed-strong-early", MemoryStrength: 2.8, TimesReviewed: 5, NextReviewDate: now.AddDate(0, 0, -4)},
		{ID: "reviewed-strong-late", MemoryStrength: 2.8, TimesReviewed: 5, NextReviewDate: now.AddDate(0, 0, -1)},
	}

	got := Prioritize(entries)

	want := []string{"never-reviewed", "reviewed-weak", "reviewed-strong-early", "reviewed-strong-late"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}

	// Input order untouched.
	if entries[0].ID != "reviewed-weak" {
		t.Error("Prioritize must not reorder its input")
	}
}
