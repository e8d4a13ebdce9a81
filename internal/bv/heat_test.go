package bv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(name string, heat, bv float64) WeaponRecord {
	return WeaponRecord{Mounted: &Mounted{Name: name, Category: CategoryWeapon}, BV: bv, Heat: heat}
}

func TestWalkHeatOverflow(t *testing.T) {
	recs := []WeaponRecord{
		rec("c", 8, 15),
		rec("a", 0, 5),
		rec("b", 8, 20),
	}
	w := WalkHeat(recs, 10)

	assert.InDelta(t, 32.5, w.Total, 1e-9)
	assert.Equal(t, 16.0, w.HeatUsed)
	assert.True(t, w.Exceeded)

	require.Len(t, recs, 3)
	assert.Equal(t, "a", recs[0].name())
	assert.Equal(t, "b", recs[1].name())
	assert.Equal(t, "c", recs[2].name())
}

func TestWalkHeatWithinEfficiency(t *testing.T) {
	w := WalkHeat([]WeaponRecord{rec("a", 5, 10), rec("b", 5, 10)}, 10)
	assert.InDelta(t, 20, w.Total, 1e-9)
	assert.False(t, w.Exceeded)
	for _, l := range w.Lines {
		assert.NotEqual(t, "Heat efficiency exceeded", l.Label)
	}
}

func TestSortForHeat(t *testing.T) {
	recs := []WeaponRecord{
		rec("hot", 6, 10),
		rec("cool", 2, 10),
		rec("big", 9, 30),
		rec("free", 0, 1),
		rec("twin1", 3, 8),
		rec("twin2", 3, 8),
	}
	SortForHeat(recs)

	var got []string
	for _, r := range recs {
		got = append(got, r.name())
	}
	assert.Equal(t, []string{"free", "big", "cool", "hot", "twin1", "twin2"}, got)
}

// Adding a weapon past efficiency adds at most its own BV, and less than
// adding it with heat to spare.
func TestHeatMonotonicity(t *testing.T) {
	base := func() []WeaponRecord {
		return []WeaponRecord{rec("a", 5, 20), rec("b", 5, 18)}
	}
	extra := rec("extra", 4, 12)

	before := WalkHeat(base(), 10).Total
	over := WalkHeat(append(base(), extra), 10).Total
	under := WalkHeat(append(base(), extra), 30).Total

	assert.LessOrEqual(t, over-before, extra.BV)
	assert.Less(t, over, under)
	assert.InDelta(t, before+extra.BV, under, 1e-9)

	prev := -1.0
	for eff := 0.0; eff <= 20; eff++ {
		total := WalkHeat(append(base(), extra), eff).Total
		assert.GreaterOrEqual(t, total, prev, "efficiency %v", eff)
		prev = total
	}
}
