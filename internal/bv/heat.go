package bv

import (
	"fmt"
	"sort"
)

// WeaponRecord is a weapon's BV and heat while weapons are being scored.
type WeaponRecord struct {
	Mounted *Mounted
	BV      float64
	Heat    float64
}

func (w WeaponRecord) name() string {
	if w.Mounted == nil {
		return "weapon"
	}
	return w.Mounted.Name
}

// SortForHeat orders records for the heat walk: heat-free weapons first,
// then BV descending, ties broken by lower heat. Full ties keep input order.
func SortForHeat(recs []WeaponRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		zi, zj := recs[i].Heat == 0, recs[j].Heat == 0
		if zi != zj {
			return zi
		}
		if recs[i].BV != recs[j].BV {
			return recs[i].BV > recs[j].BV
		}
		return recs[i].Heat < recs[j].Heat
	})
}

// HeatWalk is the outcome of applying heat efficiency to sorted weapons.
type HeatWalk struct {
	Total    float64
	HeatUsed float64
	Exceeded bool
	Lines    []Line
}

// WalkHeat sorts recs and accumulates their heat. The weapon that pushes
// cumulative heat past efficiency, and every weapon after it, counts at half.
func WalkHeat(recs []WeaponRecord, efficiency float64) HeatWalk {
	SortForHeat(recs)

	var w HeatWalk
	for _, r := range recs {
		w.HeatUsed += r.Heat
		if !w.Exceeded && w.HeatUsed > efficiency {
			w.Exceeded = true
			w.Lines = append(w.Lines, note("Heat efficiency exceeded",
				fmt.Sprintf("%s > %s", num(w.HeatUsed), num(efficiency))))
		}
		bv := r.BV
		calc := fmt.Sprintf("heat %s, total %s", num(r.Heat), num(w.HeatUsed))
		if w.Exceeded {
			bv *= 0.5
			calc += ", " + times(r.BV, 0.5)
		}
		w.Total += bv
		w.Lines = append(w.Lines, line(r.name(), calc, bv))
	}
	return w
}

// sumUnlimited adds records without any heat limit.
func sumUnlimited(recs []WeaponRecord) HeatWalk {
	var w HeatWalk
	for _, r := range recs {
		w.HeatUsed += r.Heat
		w.Total += r.BV
		w.Lines = append(w.Lines, line(r.name(), "", r.BV))
	}
	return w
}
