// Package store persists trips and expenses as JSON files under the data
// directory. Both collections follow a full-replace discipline: load all,
// mutate the slice, write the whole file back. Writes go through a temp
// file and rename so a crash mid-write never leaves a truncated store.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mfigueredo/viatico/internal/model"
)

const (
	tripsFile    = "trips.json"
	expensesFile = "expenses.json"
)

// Store reads and writes the trip and expense collections.
// A missing file is a valid initial state and loads as an empty collection.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// LoadTrips returns every stored trip, or an empty slice when none exist.
func (s *Store) LoadTrips() ([]model.Trip, error) {
	var trips []model.Trip
	if err := s.loadJSON(tripsFile, &trips); err != nil {
		return nil, fmt.Errorf("loading trips: %w", err)
	}
	return trips, nil
}

// SaveTrips replaces the whole trip collection.
func (s *Store) SaveTrips(trips []model.Trip) error {
	if err := s.saveJSON(tripsFile, nonNil(trips)); err != nil {
		return fmt.Errorf("saving trips: %w", err)
	}
	return nil
}

// SaveTrip upserts one trip: any stored trip with the same id is replaced,
// otherwise the trip is appended. Saving the same trip twice leaves exactly
// one copy in the store.
func (s *Store) SaveTrip(trip model.Trip) error {
	trips, err := s.LoadTrips()
	if err != nil {
		return err
	}
	kept := trips[:0]
	for _, t := range trips {
		if t.ID != trip.ID {
			kept = append(kept, t)
		}
	}
	kept = append(kept, trip)
	return s.SaveTrips(kept)
}

// LoadExpenses returns every stored expense, or an empty slice when none exist.
func (s *Store) LoadExpenses() ([]model.Expense, error) {
	var expenses []model.Expense
	if err := s.loadJSON(expensesFile, &expenses); err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}
	return expenses, nil
}

// SaveExpenses replaces the whole expense collection.
func (s *Store) SaveExpenses(expenses []model.Expense) error {
	if err := s.saveJSON(expensesFile, nonNil(expenses)); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}
	return nil
}

// Reset wipes both collections to empty.
func (s *Store) Reset() error {
	if err := s.SaveTrips(nil); err != nil {
		return err
	}
	return s.SaveExpenses(nil)
}

func (s *Store) loadJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		// Tolerate a file truncated by a crash mid-write.
		return nil
	}
	return json.Unmarshal(data, v)
}

func (s *Store) saveJSON(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	// Atomic replace: write to a temp file in the same directory, then rename.
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, filepath.Join(s.dir, name))
}

// nonNil keeps empty collections serializing as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
