package roster

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
	"github.com/JustinWhittecar/bvcalc/internal/db"
	"github.com/JustinWhittecar/bvcalc/internal/equipment"
	"github.com/JustinWhittecar/bvcalc/internal/ingestion"
)

var locustPath = filepath.Join("..", "ingestion", "testdata", "Locust_LCT-1V.mtf")

func locust(t *testing.T) *bv.Unit {
	t.Helper()
	u, _, err := ingestion.LoadUnit(locustPath, equipment.Default())
	require.NoError(t, err)
	return u
}

func bunker(cf int) *bv.Unit {
	return &bv.Unit{
		Name:     "Bunker",
		Kind:     bv.KindBuilding,
		Building: &bv.Building{Hexes: []bv.Hex{{CF: cf, Armor: 20}}},
	}
}

func TestDecodeDefaults(t *testing.T) {
	var r Roster
	body := `{"name":"Lance","entries":[{"file":"a.mtf"},{"file":"b.mtf","gunnery":0,"piloting":1}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	assert.Equal(t, DefaultBudget, r.Budget)
	require.Len(t, r.Entries, 2)
	assert.Equal(t, 4, r.Entries[0].Gunnery)
	assert.Equal(t, 5, r.Entries[0].Piloting)
	assert.Equal(t, 0, r.Entries[1].Gunnery)
	assert.Equal(t, 1, r.Entries[1].Piloting)
}

func TestScore(t *testing.T) {
	s, err := NewScorer(2)
	require.NoError(t, err)

	loc := locust(t)
	r := &Roster{Name: "Recon", Budget: 1000, Entries: []Entry{
		NewEntry(loc),
		{Unit: loc, Gunnery: 3, Piloting: 4},
	}}
	sc, err := s.Score(context.Background(), r)
	require.NoError(t, err)

	require.Len(t, sc.Entries, 2)
	assert.Equal(t, 425, sc.Entries[0].BV)
	assert.Equal(t, 425, sc.Entries[0].AdjustedBV)
	assert.Equal(t, 561, sc.Entries[1].AdjustedBV)
	assert.Equal(t, 850, sc.TotalBV)
	assert.Equal(t, 986, sc.AdjustedBV)
	assert.False(t, sc.OverBudget)

	r.Budget = 900
	sc, err = s.Score(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, sc.OverBudget)
}

func TestScoreWorkerCountIndependent(t *testing.T) {
	loc := locust(t)
	r := &Roster{Name: "Company"}
	for i := 0; i < 24; i++ {
		e := NewEntry(loc)
		if i%3 == 0 {
			e = NewEntry(bunker(10 * (i + 1)))
		}
		e.Gunnery = i % 8
		r.Entries = append(r.Entries, e)
	}

	one, err := NewScorer(1)
	require.NoError(t, err)
	eight, err := NewScorer(8)
	require.NoError(t, err)

	a, err := one.Score(context.Background(), r)
	require.NoError(t, err)
	b, err := eight.Score(context.Background(), r)
	require.NoError(t, err)

	assert.Equal(t, DefaultBudget, a.Budget)
	assert.Equal(t, a, b)
	for i, es := range b.Entries {
		assert.Equal(t, r.Entries[i].Unit.Name, es.Unit, "entry %d out of order", i)
	}
}

func TestScoreMisuse(t *testing.T) {
	s, err := NewScorer(4)
	require.NoError(t, err)

	r := &Roster{Entries: []Entry{
		NewEntry(bunker(40)),
		NewEntry(&bv.Unit{Name: "Ghost", Kind: bv.KindMek}),
	}}
	_, err = s.Score(context.Background(), r)
	require.Error(t, err)
	assert.ErrorIs(t, err, bv.ErrCallerMisuse)
	assert.Contains(t, err.Error(), "entry 1")

	_, err = s.Score(context.Background(), &Roster{Entries: []Entry{{Gunnery: 4, Piloting: 5}}})
	assert.ErrorIs(t, err, bv.ErrCallerMisuse)

	_, err = s.Score(context.Background(), &Roster{Entries: []Entry{{Unit: bunker(40), Gunnery: 8, Piloting: 5}}})
	assert.ErrorIs(t, err, bv.ErrSkillRange)
}

func TestScoreSavesResults(t *testing.T) {
	conn, err := db.ConnectResultsDB(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	defer conn.Close()
	store := db.NewSQLiteResults(conn)

	s, err := NewScorer(4, WithStore(store))
	require.NoError(t, err)

	r := &Roster{Entries: []Entry{NewEntry(locust(t)), NewEntry(bunker(40))}}
	_, err = s.Score(context.Background(), r)
	require.NoError(t, err)

	got, err := store.Latest(context.Background(), "Locust LCT-1V")
	require.NoError(t, err)
	assert.Equal(t, 425, got.BV)
	assert.Equal(t, "roster", got.Source)
	assert.NotEmpty(t, got.Lines)

	all, err := store.List(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLoad(t *testing.T) {
	abs, err := filepath.Abs(locustPath)
	require.NoError(t, err)

	dir := t.TempDir()
	bunkerJSON := `{"name":"Bunker","kind":"building","movement":{},"building":{"hexes":[{"cf":40,"armor":20}]}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bunker.json"), []byte(bunkerJSON), 0o644))

	body := `{"name":"Garrison","budget":2000,"entries":[
		{"file":"` + filepath.ToSlash(abs) + `","gunnery":3,"piloting":4},
		{"file":"bunker.json"}
	]}`
	path := filepath.Join(dir, "garrison.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	r, err := Load(path, equipment.Default())
	require.NoError(t, err)
	assert.Equal(t, 2000, r.Budget)
	require.Len(t, r.Entries, 2)
	assert.Equal(t, "Locust LCT-1V", r.Entries[0].Unit.Name)
	assert.Equal(t, bv.KindBuilding, r.Entries[1].Unit.Kind)
	assert.Equal(t, 4, r.Entries[1].Gunnery)

	_, err = Load(filepath.Join(dir, "missing.json"), equipment.Default())
	assert.ErrorContains(t, err, "read roster")

	require.NoError(t, os.WriteFile(path, []byte(`{"entries":[{"file":"nope.mtf"}]}`), 0o644))
	_, err = Load(path, equipment.Default())
	assert.ErrorContains(t, err, "entry 0")
}
