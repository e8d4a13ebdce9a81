package bv

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMek is a 20 ton Mek: 18 armor, 9 structure, 6/9 movement, 10 heat
// sinks, a medium and a small laser.
func testMek() *Unit {
	return &Unit{
		Name:    "Test Mek TM-1",
		Kind:    KindMek,
		Tonnage: 20,
		Engine:  EngineStandard,
		Gyro:    GyroStandard,
		Cockpit: CockpitStandard,
		Locations: []Location{
			{Name: LocHead, Armor: 6, Structure: 3},
			{Name: LocCenterTorso, Armor: 10, RearArmor: 2, Structure: 6},
		},
		Equipment: []Mounted{
			{Name: "Medium Laser", Category: CategoryWeapon, Location: LocCenterTorso, BV: 46, Heat: 3, DirectFire: true},
			{Name: "Small Laser", Category: CategoryWeapon, Location: LocHead, BV: 9, Heat: 1, DirectFire: true},
		},
		Movement:     Movement{Walk: 6, Mode: ModeBiped},
		HeatCapacity: 10,
	}
}

func TestComputeMek(t *testing.T) {
	res, err := Compute(testMek())
	require.NoError(t, err)

	// defence: (18*2.5 + 9*1.5 + 20*0.5) * 1.3 = 89.05
	// offence: (46 + 9 + 20) * 1.5 = 112.5
	assert.InDelta(t, 89.05, res.Defensive, 1e-9)
	assert.InDelta(t, 112.5, res.Offensive, 1e-9)
	assert.InDelta(t, 14, res.HeatEfficiency, 1e-9)
	assert.Equal(t, 4.0, res.HeatUsed)
	assert.False(t, res.HeatExceeded)
	assert.InDelta(t, 1.3, res.DefensiveFactor, 1e-9)
	assert.Equal(t, 1.5, res.SpeedFactor)
	assert.Equal(t, 202, res.BV)
	assert.Nil(t, res.Arcs)

	last := res.Report.Lines()[res.Report.Len()-1]
	assert.Equal(t, "Battle value", last.Label)
	assert.Equal(t, "202", last.Result)
}

func TestComputeReportOrder(t *testing.T) {
	res, err := Compute(testMek())
	require.NoError(t, err)

	order := []string{
		"Armor", "Structure", "Defensive equipment", "Explosive equipment",
		"Defensive value", "Weapons", "Weight", "Defensive battle rating",
		"Speed factor", "Offensive battle rating", "Base battle value", "Battle value",
	}
	idx := make(map[string]int)
	for i, l := range res.Report.Lines() {
		if _, ok := idx[l.Label]; !ok {
			idx[l.Label] = i
		}
	}
	prev := -1
	for _, label := range order {
		i, ok := idx[label]
		require.True(t, ok, "missing report line %q", label)
		assert.Greater(t, i, prev, "line %q out of order", label)
		prev = i
	}
}

func TestComputeUnarmedUnit(t *testing.T) {
	u := &Unit{
		Name:      "Empty",
		Kind:      KindMek,
		Locations: []Location{{Name: LocCenterTorso}},
	}
	res, err := Compute(u)
	require.NoError(t, err)
	assert.Equal(t, 0, res.BV)

	armor, ok := res.Report.Find("Armor")
	require.True(t, ok)
	assert.Equal(t, "0", armor.Result)

	weapons, ok := res.Report.Find("Weapons")
	require.True(t, ok)
	assert.Equal(t, "N/A", weapons.Result)

	ammo, ok := res.Report.Find("Ammo")
	require.True(t, ok)
	assert.Equal(t, "N/A", ammo.Result)
}

func TestComputeDefensiveFloor(t *testing.T) {
	u := &Unit{
		Name:      "Ammo Bin",
		Kind:      KindMek,
		Locations: []Location{{Name: LocLeftTorso}},
		Equipment: []Mounted{{
			Name: "IS Ammo AC/20", Category: CategoryAmmo, Location: LocLeftTorso,
			BV: 22, AmmoKey: "ac20", Explosive: true,
		}},
	}
	res, err := Compute(u)
	require.NoError(t, err)

	clamp, ok := res.Report.Find("Defensive value below minimum")
	require.True(t, ok)
	assert.Equal(t, "-15 -> 0", clamp.Calculation)
	assert.Equal(t, 0.0, res.Defensive)
	assert.GreaterOrEqual(t, res.BV, 0)
}

func TestComputeDeterministic(t *testing.T) {
	u := testMek()
	a, err := Compute(u)
	require.NoError(t, err)
	b, err := Compute(u)
	require.NoError(t, err)

	assert.Equal(t, a.BV, b.BV)
	assert.Equal(t, a.Report.String(), b.Report.String())
}

func TestComputeDoesNotMutateUnit(t *testing.T) {
	u := testMek()
	u.Equipment = append(u.Equipment, Mounted{
		Name: "Medium Laser", Category: CategoryWeapon, Location: LocCenterTorso, Rear: true, BV: 46, Heat: 3,
	})
	before, err := json.Marshal(u)
	require.NoError(t, err)

	_, err = Compute(u)
	require.NoError(t, err)

	after, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestComputeConcurrent(t *testing.T) {
	want, err := Compute(testMek())
	require.NoError(t, err)

	u := testMek()
	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Compute(u)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want.BV, r.BV)
		assert.Equal(t, want.Report.String(), r.Report.String())
	}
}

func TestComputeErrors(t *testing.T) {
	_, err := Compute(&Unit{Name: "x", Kind: "tank"})
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.ErrorIs(t, err, ErrCallerMisuse)

	_, err = Compute(&Unit{Name: "x", Kind: KindMek})
	assert.ErrorIs(t, err, ErrNoLocations)
	assert.ErrorIs(t, err, ErrCallerMisuse)

	_, err = Compute(nil)
	assert.ErrorIs(t, err, ErrCallerMisuse)

	v, err := VariantFor(KindVehicle)
	require.NoError(t, err)
	_, err = ComputeWith(v, testMek())
	assert.ErrorIs(t, err, ErrVariantMismatch)
	assert.True(t, errors.Is(err, ErrCallerMisuse))

	_, err = ComputeWith(nil, testMek())
	assert.ErrorIs(t, err, ErrVariantMismatch)

	_, err = Compute(&Unit{Name: "x", Kind: KindBattleArmor})
	assert.ErrorIs(t, err, ErrNoLocations)

	_, err = Compute(&Unit{Name: "x", Kind: KindInfantry})
	assert.ErrorIs(t, err, ErrNoLocations)
}

func TestVariantForEveryKind(t *testing.T) {
	for _, k := range Kinds {
		v, err := VariantFor(k)
		require.NoError(t, err, k)
		assert.Equal(t, k, v.Kind())
	}
}

func TestResultJSON(t *testing.T) {
	res, err := Compute(testMek())
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"label":"Battle value"`))

	var back Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, res.Report.Lines(), back.Report.Lines())
	assert.Equal(t, res.BV, back.BV)
}

func TestReportAppendDoesNotAlias(t *testing.T) {
	var r Report
	a := r.Append(note("a", "1"))
	b := a.Append(note("b", "2"))
	c := a.Append(note("c", "3"))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, "b", b.Lines()[1].Label)
	assert.Equal(t, "c", c.Lines()[1].Label)

	lines := c.Lines()
	lines[0].Label = "changed"
	assert.Equal(t, "a", c.Lines()[0].Label)
}

func TestNum(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{32.5, "32.5"},
		{89.05, "89.05"},
		{1.333333, "1.33"},
		{-0.001, "0"},
		{-15, "-15"},
	}
	for _, tt := range tests {
		if got := num(tt.x); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.x, got, tt.want)
		}
	}
}
