package remind

import (
	"bufio"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/vow/internal/model"
)

// Entry records one delivered reminder. Hash ties the entry to the
// commitment content so edits to the store do not inherit old history.
type Entry struct {
	ID     string `json:"id"`
	Hash   string `json:"hash"`
	SentAt int64  `json:"sent_at"`
}

// Time returns the delivery time of the entry.
func (e Entry) Time() time.Time {
	return time.Unix(e.SentAt, 0)
}

// Ledger is an append-only JSONL file of delivered reminders, one
// entry per line. Malformed lines are skipped on load so a partial
// write never blocks future deliveries.
type Ledger struct {
	mu   sync.Mutex
	path string
}

// NewLedger creates a ledger backed by the file at path. The file is
// created on first Record.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Path returns the ledger file location.
func (l *Ledger) Path() string {
	return l.path
}

// Load reads all entries in file order. A missing file yields an
// empty ledger.
func (l *Ledger) Load() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			slog.Debug("skipping malformed ledger line", "line", lineNum, "error", err)
			continue
		}
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("failed to read ledger: %w", err)
	}

	return entries, nil
}

// LastSent returns the most recent delivery time per commitment hash.
func (l *Ledger) LastSent() (map[string]time.Time, error) {
	entries, err := l.Load()
	if err != nil {
		return nil, err
	}

	last := make(map[string]time.Time, len(entries))
	for _, e := range entries {
		t := e.Time()
		if t.After(last[e.Hash]) {
			last[e.Hash] = t
		}
	}
	return last, nil
}

// Record appends a delivery entry for the commitment and returns it.
func (l *Ledger) Record(c model.Commitment, at time.Time) (Entry, error) {
	id, err := ulid.New(ulid.Timestamp(at), rand.Reader)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to generate entry id: %w", err)
	}

	entry := Entry{
		ID:     id.String(),
		Hash:   c.ContentHash(),
		SentAt: at.Unix(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o700); err != nil {
		return Entry{}, fmt.Errorf("failed to create ledger directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to open ledger: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to marshal entry: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return Entry{}, fmt.Errorf("failed to append entry: %w", err)
	}

	return entry, nil
}
