package store

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"mcc/internal/campaign"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func ptr(s string) *string { return &s }

func testCampaign(id, title string) campaign.Campaign {
	return campaign.Campaign{
		ID:              id,
		Topic:           "Email automation",
		ContentType:     "Blog",
		ArticleTitle:    title,
		ArticleContent:  "# " + title,
		MetaDescription: "About " + title,
		SEOScore:        74,
		SEOScorecard:    campaign.EmptyScorecard(74),
		CreatedAt:       time.Date(2026, 2, 18, 14, 30, 0, 0, time.UTC),
	}
}

func TestEmptyStore(t *testing.T) {
	s := openTestStore(t)
	if got := s.Campaigns(); len(got) != 0 {
		t.Errorf("expected empty sequence, got %d campaigns", len(got))
	}
}

func TestPrependLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	c := testCampaign("c1", "First Article")
	if err := s.Prepend(c); err != nil {
		t.Fatalf("prepending: %v", err)
	}
	s.Close()

	// Simulate a fresh process.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer s2.Close()

	got := s2.Campaigns()
	if len(got) != 1 {
		t.Fatalf("expected 1 campaign after reload, got %d", len(got))
	}
	want, _ := json.Marshal(c)
	have, _ := json.Marshal(got[0])
	if string(want) != string(have) {
		t.Errorf("round-trip mismatch:\nwant %s\nhave %s", want, have)
	}
}

func TestPrependOrder(t *testing.T) {
	s := openTestStore(t)
	s.Prepend(testCampaign("old", "Old"))
	s.Prepend(testCampaign("new", "New"))

	got := s.Campaigns()
	if got[0].ID != "new" || got[1].ID != "old" {
		t.Errorf("expected newest first, got %q then %q", got[0].ID, got[1].ID)
	}
}

func TestCorruptSlotLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	writeSlot(t, s.conn, "not-json")
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopening store with corrupt slot: %v", err)
	}
	defer s2.Close()
	if got := s2.Campaigns(); len(got) != 0 {
		t.Errorf("expected empty sequence for corrupt slot, got %d", len(got))
	}
}

func TestNonArraySlotLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	writeSlot(t, s.conn, `{"id":"c1"}`)
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer s2.Close()
	if got := s2.Campaigns(); len(got) != 0 {
		t.Errorf("expected empty sequence for non-array slot, got %d", len(got))
	}
}

func TestPatchGraphic(t *testing.T) {
	s := openTestStore(t)
	s.Prepend(testCampaign("a", "Article A"))
	s.Prepend(testCampaign("b", "Article B"))

	beforeA, _ := json.Marshal(s.Get("a"))

	patch := campaign.GraphicPatch{
		URL:            ptr("https://cdn.example.com/b.png"),
		Description:    ptr("A bold hero image"),
		DesignNotes:    ptr("Warm palette"),
		SuggestedUsage: ptr("Blog header"),
	}
	if err := s.PatchGraphic("b", patch); err != nil {
		t.Fatalf("patching: %v", err)
	}

	b := s.Get("b")
	if b.GraphicURL == nil || *b.GraphicURL != "https://cdn.example.com/b.png" {
		t.Error("expected graphic URL to be patched")
	}
	if b.GraphicDescription == nil || *b.GraphicDescription != "A bold hero image" {
		t.Error("expected graphic description to be patched")
	}
	if b.ArticleTitle != "Article B" {
		t.Error("expected content fields to be untouched by graphic patch")
	}

	afterA, _ := json.Marshal(s.Get("a"))
	if string(beforeA) != string(afterA) {
		t.Errorf("campaign a changed by patching b:\nbefore %s\nafter  %s", beforeA, afterA)
	}
}

func TestPatchUnknownIDStillPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	s.Prepend(testCampaign("a", "Article A"))
	if err := s.PatchGraphic("missing", campaign.GraphicPatch{URL: ptr("x")}); err != nil {
		t.Fatalf("patching unknown id: %v", err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer s2.Close()
	got := s2.Campaigns()
	if len(got) != 1 || got[0].ID != "a" || got[0].GraphicURL != nil {
		t.Error("expected sequence unchanged after patching unknown id")
	}
}

func TestGetStats(t *testing.T) {
	s := openTestStore(t)
	s.Prepend(testCampaign("a", "A"))
	withGraphic := testCampaign("b", "B")
	withGraphic.GraphicURL = ptr("https://cdn.example.com/b.png")
	s.Prepend(withGraphic)

	st := s.GetStats()
	if st.Campaigns != 2 {
		t.Errorf("expected 2 campaigns, got %d", st.Campaigns)
	}
	if st.WithGraphic != 1 {
		t.Errorf("expected 1 campaign with graphic, got %d", st.WithGraphic)
	}
}

func writeSlot(t *testing.T, conn *sql.DB, value string) {
	t.Helper()
	_, err := conn.Exec(
		`INSERT INTO slots (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		campaignsSlot, value,
	)
	if err != nil {
		t.Fatalf("writing slot: %v", err)
	}
}
