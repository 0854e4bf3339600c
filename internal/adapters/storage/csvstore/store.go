// Package csvstore persists the journal and the plan as flat CSV files,
// matching the original Mind Flow data layout:
//
//	mind_flow_db.csv:    Timestamp,Mood,Energy,Note
//	plans_database.csv:  timestamp,vision,system
//
// Appends rewrite nothing; the plan file is truncated on save (latest row
// wins on read either way).
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/mindflow-labs/mindflow-agent/internal/domain"
)

const (
	JournalFile = "mind_flow_db.csv"
	PlansFile   = "plans_database.csv"

	timeLayout = "2006-01-02 15:04"
)

var journalHeader = []string{"Timestamp", "Mood", "Energy", "Note"}
var plansHeader = []string{"timestamp", "vision", "system"}

// Store implements domain.JournalStore and domain.ProfileStore over two CSV
// files in a data directory.
type Store struct {
	mu          sync.Mutex
	journalPath string
	plansPath   string
}

func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{
		journalPath: filepath.Join(dataDir, JournalFile),
		plansPath:   filepath.Join(dataDir, PlansFile),
	}, nil
}

// ─────────────────────────────────────────
// JournalStore implementation
// ─────────────────────────────────────────

func (s *Store) AppendEntry(entry *domain.JournalEntry) error {
	if entry == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writeHeader := false
	if _, err := os.Stat(s.journalPath); os.IsNotExist(err) {
		writeHeader = true
	}

	f, err := os.OpenFile(s.journalPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening journal csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(journalHeader); err != nil {
			return fmt.Errorf("writing journal header: %w", err)
		}
	}
	record := []string{
		entry.Timestamp.Format(timeLayout),
		entry.Mood,
		strconv.Itoa(entry.Energy),
		entry.Note,
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("writing journal row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func (s *Store) ListEntries(limit int) ([]*domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := readAll(s.journalPath)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return []*domain.JournalEntry{}, nil
	}

	rows = rows[1:] // skip header
	if limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}

	out := make([]*domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		ts, _ := time.ParseInLocation(timeLayout, row[0], time.Local)
		energy, _ := strconv.Atoi(row[2])
		out = append(out, &domain.JournalEntry{
			Timestamp: ts,
			Mood:      row[1],
			Energy:    energy,
			Note:      row[3],
		})
	}
	return out, nil
}

// ─────────────────────────────────────────
// ProfileStore implementation
// ─────────────────────────────────────────

func (s *Store) LoadProfile() (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := readAll(s.plansPath)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return &domain.Profile{}, nil
	}

	last := rows[len(rows)-1]
	if len(last) < 3 {
		return &domain.Profile{}, nil
	}
	return &domain.Profile{Vision: last[1], System: last[2]}, nil
}

func (s *Store) SaveProfile(p *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Create(s.plansPath)
	if err != nil {
		return fmt.Errorf("creating plans csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(plansHeader); err != nil {
		return fmt.Errorf("writing plans header: %w", err)
	}
	record := []string{
		time.Now().Format("2006-01-02 15:04:05"),
		p.Vision,
		p.System,
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("writing plans row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}
