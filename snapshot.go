package wealthwise

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptySnapshot rejects imports that carry neither accounts nor a
// profile; such a file is not a tracker export.
var ErrEmptySnapshot = errors.New("snapshot holds no accounts and no profile")

// Snapshot is the full-state export consumed and produced by the
// persistence boundary. Loading is all-or-nothing: a snapshot either
// replaces the whole tracker state or nothing at all.
type Snapshot struct {
	Accounts     []*Account    `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	Budgets      []*Budget     `json:"budgets"`
	Investments  []*Investment `json:"investments"`
	Goals        []*Goal       `json:"goals"`
	Profile      *UserProfile  `json:"userProfile,omitempty"`
}

// Snapshot exports the tracker's full state.
func (tr *Tracker) Snapshot() *Snapshot {
	s := &Snapshot{
		Accounts:    tr.Ledger.accounts,
		Budgets:     tr.Budgets,
		Investments: tr.Investments,
		Goals:       tr.Goals,
		Profile:     tr.Profile,
	}
	for t := range tr.Ledger.Transactions() {
		s.Transactions = append(s.Transactions, t)
	}
	return s
}

// EncodeSnapshot writes the snapshot as indented JSON.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot and rebuilds a tracker from it. On any
// error the returned tracker is nil; a partially read file never leaks into
// live state.
func DecodeSnapshot(r io.Reader) (*Tracker, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	if len(s.Accounts) == 0 && s.Profile == nil {
		return nil, ErrEmptySnapshot
	}

	tr := NewTracker()
	tr.Ledger.accounts = s.Accounts
	tr.Ledger.transactions = s.Transactions
	tr.Ledger.sortDescending()
	tr.Budgets = s.Budgets
	tr.Investments = s.Investments
	tr.Goals = s.Goals
	tr.Profile = s.Profile
	return tr, nil
}

// LoadSnapshot reads a tracker from a snapshot file. A missing file is not
// an error: it yields a fresh tracker in the onboarding state, the first-run
// experience.
func LoadSnapshot(path string) (*Tracker, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewTracker(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot %q: %w", path, err)
	}
	defer f.Close()
	tr, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot %q: %w", path, err)
	}
	return tr, nil
}

// SaveSnapshot writes the tracker state to a snapshot file, replacing it
// atomically so a failed write never truncates the previous snapshot.
func SaveSnapshot(path string, tr *Tracker) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("cannot create snapshot %q: %w", tmp, err)
	}
	if err := EncodeSnapshot(f, tr.Snapshot()); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot close snapshot %q: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}
