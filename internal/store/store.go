// Package store persists the campaign history. The history is a single
// newest-first sequence held in memory and mirrored into one named slot of a
// local SQLite database; every mutation re-serializes the whole sequence into
// that slot. There is no per-campaign row and no delete operation.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"mcc/internal/campaign"
)

const campaignsSlot = "mcc_campaigns"

// Store wraps the campaign sequence and its SQLite-backed slot.
type Store struct {
	conn *sql.DB
	path string

	mu        sync.Mutex
	campaigns []campaign.Campaign
}

// Open creates or opens the store at the given database path and loads the
// campaign slot once. Missing, corrupt, or non-array slot data yields an
// empty sequence without error.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	s := &Store{conn: conn, path: dbPath}
	s.campaigns = s.loadSlot()
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Campaigns returns a copy of the sequence, newest first.
func (s *Store) Campaigns() []campaign.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]campaign.Campaign, len(s.campaigns))
	copy(out, s.campaigns)
	return out
}

// Get returns the campaign with the given id, or nil.
func (s *Store) Get(id string) *campaign.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			c := s.campaigns[i]
			return &c
		}
	}
	return nil
}

// Prepend puts c first in the sequence and persists the whole sequence.
func (s *Store) Prepend(c campaign.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns = append([]campaign.Campaign{c}, s.campaigns...)
	return s.persist()
}

// PatchGraphic applies the atomic graphic-field group to the campaign with
// the given id, leaving every other campaign and field untouched, and
// persists the whole sequence. An unknown id leaves the sequence unchanged
// but still persists.
func (s *Store) PatchGraphic(id string, patch campaign.GraphicPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.campaigns {
		if s.campaigns[i].ID != id {
			continue
		}
		s.campaigns[i].GraphicURL = patch.URL
		s.campaigns[i].GraphicDescription = patch.Description
		s.campaigns[i].GraphicDesignNotes = patch.DesignNotes
		s.campaigns[i].GraphicSuggestedUsage = patch.SuggestedUsage
		break
	}
	return s.persist()
}

// Stats contains aggregate store statistics.
type Stats struct {
	Campaigns     int
	WithGraphic   int
	WithScorecard int
}

// GetStats returns aggregate statistics over the sequence.
func (s *Store) GetStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Campaigns: len(s.campaigns)}
	for i := range s.campaigns {
		if s.campaigns[i].GraphicURL != nil {
			st.WithGraphic++
		}
		if s.campaigns[i].SEOScorecard != nil {
			st.WithScorecard++
		}
	}
	return st
}

// loadSlot reads and decodes the campaign slot. Any failure degrades to an
// empty sequence: a half-written or hand-edited slot must never prevent
// startup.
func (s *Store) loadSlot() []campaign.Campaign {
	var value string
	err := s.conn.QueryRow(
		"SELECT value FROM slots WHERE name = ?", campaignsSlot,
	).Scan(&value)
	if err != nil {
		return nil
	}

	var campaigns []campaign.Campaign
	if err := json.Unmarshal([]byte(value), &campaigns); err != nil {
		return nil
	}
	for i := range campaigns {
		if campaigns[i].SEOScorecard != nil {
			campaigns[i].SEOScorecard.Normalize()
		}
	}
	return campaigns
}

// persist rewrites the slot with the full serialized sequence.
// Callers must hold s.mu.
func (s *Store) persist() error {
	data, err := json.Marshal(s.campaigns)
	if err != nil {
		return fmt.Errorf("encoding campaigns: %w", err)
	}
	_, err = s.conn.Exec(
		`INSERT INTO slots (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = datetime('now')`,
		campaignsSlot, string(data),
	)
	if err != nil {
		return fmt.Errorf("writing campaign slot: %w", err)
	}
	return nil
}
