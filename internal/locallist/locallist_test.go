package locallist

import (
	"os"
	"path/filepath"
	"testing"

	"promptlink/internal/models"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "published.json")
	store := NewStore[models.PublishedItem](path)

	items := []models.PublishedItem{
		{ID: "1700000000000", Timestamp: 1700000000000, Transcript: "build a CLI", Prompt: "## Task...", Modes: "cli", URL: "https://example.com/s/abc1234"},
		{ID: "1600000000000", Timestamp: 1600000000000, Transcript: "older", Prompt: "older prompt", Modes: "", URL: "https://example.com/s/zzz9999"},
	}
	store.Save(items)

	loaded := store.Load()
	if len(loaded) != len(items) {
		t.Fatalf("Load() returned %d items, want %d", len(loaded), len(items))
	}
	for i := range items {
		if loaded[i] != items[i] {
			t.Errorf("Load()[%d] = %+v, want %+v", i, loaded[i], items[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore[models.PublishedItem](filepath.Join(t.TempDir(), "does-not-exist.json"))

	items := store.Load()
	if items == nil {
		t.Fatal("Load() = nil, want empty slice")
	}
	if len(items) != 0 {
		t.Errorf("Load() returned %d items, want 0", len(items))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "this is not json{{{"},
		{"wrong shape", `{"an": "object, not an array"}`},
		{"json null", "null"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "list.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			items := NewStore[models.PublishedItem](path).Load()
			if items == nil {
				t.Fatal("Load() = nil, want empty slice")
			}
			if len(items) != 0 {
				t.Errorf("Load() returned %d items, want 0", len(items))
			}
		})
	}
}

func TestSaveNeverFails(t *testing.T) {
	// Parent "directory" is a regular file; the write cannot succeed and
	// must be swallowed, not panic.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := NewStore[models.PublishedItem](filepath.Join(blocker, "nested", "list.json"))
	store.Save([]models.PublishedItem{{ID: "1", Timestamp: 1}})
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "list.json")
	store := NewStore[models.HistoryItem](path)

	store.Save([]models.HistoryItem{{ID: "1", Timestamp: 1, Prompt: "p"}})

	if got := store.Load(); len(got) != 1 {
		t.Errorf("Load() after Save into new directory returned %d items, want 1", len(got))
	}
}

func TestPrependCapsAtMaxItems(t *testing.T) {
	var items []models.HistoryItem
	for i := 0; i < MaxItems+10; i++ {
		items = Prepend(items, models.HistoryItem{
			ID:        models.ItemID(int64(i)),
			Timestamp: int64(i),
		})
	}

	if len(items) != MaxItems {
		t.Fatalf("list has %d items, want %d", len(items), MaxItems)
	}
	// Newest first; the oldest entries were evicted.
	if items[0].Timestamp != int64(MaxItems+9) {
		t.Errorf("head timestamp = %d, want %d", items[0].Timestamp, MaxItems+9)
	}
	if items[len(items)-1].Timestamp != 10 {
		t.Errorf("tail timestamp = %d, want 10", items[len(items)-1].Timestamp)
	}
}
