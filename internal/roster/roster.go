// Package roster scores force lists against a battle value budget.
package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
	"github.com/JustinWhittecar/bvcalc/internal/equipment"
	"github.com/JustinWhittecar/bvcalc/internal/ingestion"
)

const (
	DefaultBudget   = 7000
	DefaultGunnery  = 4
	DefaultPiloting = 5
)

// Roster is a named force list.
type Roster struct {
	Name    string  `json:"name"`
	Budget  int     `json:"budget"`
	Entries []Entry `json:"entries"`
}

// Entry is one unit on a roster with its crew skills. A roster file may name
// a unit file instead of embedding the unit; Resolve loads it.
type Entry struct {
	File     string   `json:"file,omitempty"`
	Unit     *bv.Unit `json:"unit,omitempty"`
	Gunnery  int      `json:"gunnery"`
	Piloting int      `json:"piloting"`
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	type plain Entry
	p := plain{Gunnery: DefaultGunnery, Piloting: DefaultPiloting}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}

func (r *Roster) UnmarshalJSON(data []byte) error {
	type plain Roster
	p := plain{Budget: DefaultBudget}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Roster(p)
	return nil
}

// NewEntry wraps a unit at the default 4/5 crew.
func NewEntry(u *bv.Unit) Entry {
	return Entry{Unit: u, Gunnery: DefaultGunnery, Piloting: DefaultPiloting}
}

// Load reads a roster JSON file and resolves its unit files relative to the
// roster's directory.
func Load(path string, cat *equipment.Catalog) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var r Roster
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	if err := r.Resolve(filepath.Dir(path), cat); err != nil {
		return nil, err
	}
	return &r, nil
}

// Resolve loads every entry that names a unit file.
func (r *Roster) Resolve(dir string, cat *equipment.Catalog) error {
	for i := range r.Entries {
		e := &r.Entries[i]
		if e.Unit != nil || e.File == "" {
			continue
		}
		path := e.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		u, _, err := ingestion.LoadUnit(path, cat)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		e.Unit = u
	}
	return nil
}
