package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/bvcalc/internal/models"
	"github.com/JustinWhittecar/bvcalc/internal/roster"
)

var testdata = filepath.Join("..", "..", "internal", "ingestion", "testdata")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(viper.Reset)
	color.NoColor = true

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalcTable(t *testing.T) {
	out, err := run(t, "calc", "--report", filepath.Join(testdata, "Locust_LCT-1V.mtf"))
	require.NoError(t, err)
	assert.Contains(t, out, "Locust LCT-1V")
	assert.Contains(t, out, "425")
	assert.Contains(t, out, "4/5")
}

func TestCalcJSON(t *testing.T) {
	out, err := run(t, "calc", "--json", "--gunnery", "3", "--piloting", "4", filepath.Join(testdata, "Locust_LCT-1V.mtf"))
	require.NoError(t, err)

	var results []models.CalcResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, 425, results[0].BV)
	assert.Equal(t, 561, results[0].AdjustedBV)
	assert.NotEmpty(t, results[0].Report)
}

func TestCalcSave(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SLIC_RESULTS_DB_PATH", filepath.Join(dir, "results.db"))

	_, err := run(t, "calc", "--save", filepath.Join(testdata, "Locust_LCT-1V.mtf"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "results.db"))
}

func TestCalcErrors(t *testing.T) {
	_, err := run(t, "calc")
	assert.Error(t, err)

	_, err = run(t, "calc", "--gunnery", "9", filepath.Join(testdata, "Locust_LCT-1V.mtf"))
	assert.ErrorContains(t, err, "skill rating out of range")

	_, err = run(t, "calc", filepath.Join(t.TempDir(), "unit.txt"))
	assert.ErrorContains(t, err, "unsupported unit file type")
}

func TestRoster(t *testing.T) {
	abs, err := filepath.Abs(filepath.Join(testdata, "Locust_LCT-1V.mtf"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "lance.json")
	body := `{"name":"Scout Lance","budget":1000,"entries":[{"file":"` + filepath.ToSlash(abs) + `"},{"file":"` + filepath.ToSlash(abs) + `","gunnery":3,"piloting":4}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := run(t, "roster", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Scout Lance")
	assert.Contains(t, out, "Total: 986 BV (850 base) / budget 1000")

	out, err = run(t, "roster", "--json", "--budget", "900", path)
	require.NoError(t, err)
	var sc roster.Score
	require.NoError(t, json.Unmarshal([]byte(out), &sc))
	assert.Equal(t, 900, sc.Budget)
	assert.True(t, sc.OverBudget)
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "slic.db")
	conn, err := sql.Open("sqlite", catalog)
	require.NoError(t, err)
	for _, stmt := range []string{
		`CREATE TABLE equipment (id INTEGER PRIMARY KEY, name TEXT NOT NULL, type TEXT NOT NULL, heat INTEGER,
			tonnage REAL NOT NULL, slots INTEGER NOT NULL, internal_name TEXT, bv INTEGER, rack_size INTEGER DEFAULT 0)`,
		`CREATE TABLE chassis (id INTEGER PRIMARY KEY, name TEXT NOT NULL, tonnage INTEGER NOT NULL, tech_base TEXT NOT NULL)`,
		`CREATE TABLE variants (id INTEGER PRIMARY KEY, chassis_id INTEGER NOT NULL, model_code TEXT NOT NULL,
			name TEXT NOT NULL, battle_value INTEGER)`,
		`INSERT INTO chassis (id, name, tonnage, tech_base) VALUES (1, 'Locust', 20, 'Inner Sphere'), (2, 'Atlas', 100, 'Inner Sphere')`,
		`INSERT INTO variants (chassis_id, model_code, name, battle_value)
			VALUES (1, 'LCT-1V', 'Locust LCT-1V', 432), (2, 'AS7-D', 'Atlas AS7-D', 1897)`,
	} {
		_, err := conn.Exec(stmt)
		require.NoError(t, err)
	}
	require.NoError(t, conn.Close())

	csvPath := filepath.Join(dir, "out.csv")
	t.Setenv("SLIC_RESULTS_DB_PATH", filepath.Join(dir, "results.db"))
	out, err := run(t, "verify", "--csv", csvPath, "--save", catalog, testdata)
	require.NoError(t, err)

	assert.Contains(t, out, "MTF matched: 1")
	assert.Contains(t, out, "No MTF found: 1")
	assert.Contains(t, out, "Within ±10:   1")
	assert.Contains(t, out, "pub= 432 calc= 425 diff=   -7")
	assert.Contains(t, out, "Stored 1 results")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "Locust,LCT-1V,432,425,-7,7,"))
}

func TestBucket(t *testing.T) {
	rs := []verifyResult{{absDiff: 0}, {absDiff: 1, pctDiff: 0.5}, {absDiff: 7, pctDiff: 1.6}, {absDiff: 80, pctDiff: 12}}
	b := bucket(rs)
	assert.Equal(t, 1, b.exact)
	assert.Equal(t, 2, b.within1)
	assert.Equal(t, 2, b.within5)
	assert.Equal(t, 3, b.within10)
	assert.Equal(t, 3, b.within50)
	assert.Equal(t, 1, b.over50)
	assert.Equal(t, 2, b.within1pct)
	assert.Equal(t, 3, b.within5pct)
	assert.Equal(t, 3, b.within10pct)
}

func TestFindMTF(t *testing.T) {
	index := map[string]string{
		"locust_lct-1v":   "a.mtf",
		"archer arc-2r":   "b.mtf",
		"king crab kgc-0": "c.mtf",
	}
	assert.Equal(t, "a.mtf", findMTF("Locust", "LCT-1V", index))
	assert.Equal(t, "b.mtf", findMTF("Archer", "ARC-2R", index))
	assert.Equal(t, "", findMTF("Atlas", "AS7-D", index))
}
