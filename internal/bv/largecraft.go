package bv

import (
	"fmt"
	"slices"
)

// largeCraftVariant scores DropShips, JumpShips and WarShips. They differ
// only in ring layout and type modifier.
type largeCraftVariant struct {
	kind Kind
}

func (v largeCraftVariant) Kind() Kind { return v.kind }

func (largeCraftVariant) Armor(u *Unit) Step { return armorStep(u, 2.5, 0) }

func (largeCraftVariant) Structure(u *Unit) Step {
	return structureStep("Structural integrity", float64(u.StructuralIntegrity), 20)
}

func (largeCraftVariant) DefensiveEquipment(u *Unit) Step {
	return defensiveEquipmentStep(u.Equipment)
}

func (largeCraftVariant) ExplosiveEquipment(u *Unit) Step {
	return explosiveStep(u.Equipment, caseProtects(u))
}

func (largeCraftVariant) DefensiveFloor() float64 { return 0 }

func (v largeCraftVariant) TypeModifier(u *Unit) Step {
	if u.SpaceStation {
		return multiplier("Type modifier", "space station", 0.7)
	}
	m := 0.75
	if v.kind == KindWarShip {
		m = 0.8
	}
	return multiplier("Type modifier", string(v.kind), m)
}

// ringArc places a weapon on the vessel's ring. Six-arc vessels fold
// broadsides into the matching side; turrets fire from the nose.
func ringArc(kind Kind, m *Mounted) Arc {
	a := vesselArc(m)
	switch a {
	case ArcTurret:
		return ArcNose
	case ArcLeftBroadside:
		if kind != KindWarShip {
			return ArcLeft
		}
	case ArcRightBroadside:
		if kind != KindWarShip {
			return ArcRight
		}
	}
	return a
}

// Weapons resolves the nominal arcs from undiscounted arc sums, then walks
// heat separately for every arc and scales each arc by its multiplier.
// A weapon on an arc the vessel does not have scores zero.
func (v largeCraftVariant) Weapons(u *Unit) WeaponStep {
	var ws WeaponStep
	byArc := make(map[Arc][]WeaponRecord)
	sums := make(map[Arc]float64)
	ring := ringFor(v.kind)
	recs := weaponRecords(u, u.Equipment)
	for _, r := range recs {
		a := ringArc(v.kind, r.Mounted)
		if !slices.Contains(ring, a) {
			ws.Lines = append(ws.Lines, note(r.name(), fmt.Sprintf("unknown arc %q, not scored", a)))
			continue
		}
		byArc[a] = append(byArc[a], r)
		sums[a] += r.BV
	}

	arcs := ResolveNominalArcs(v.kind, sums)
	ws.Arcs = &arcs
	ws.Lines = append(ws.Lines, arcs.lines()...)
	if len(recs) == 0 {
		ws.Lines = append(ws.Lines, na("Weapons"))
		return addSupport(ws, u, u.Equipment)
	}

	eff := float64(u.HeatCapacity)
	ws.HeatEfficiency = eff
	ws.Lines = append(ws.Lines, line("Heat efficiency", "per arc", eff))
	for _, a := range ring {
		rs := byArc[a]
		if len(rs) == 0 {
			continue
		}
		walk := WalkHeat(rs, eff)
		m := arcs.Multiplier(a)
		arcBV := walk.Total * m
		ws.Value += arcBV
		if walk.HeatUsed > ws.HeatUsed {
			ws.HeatUsed = walk.HeatUsed
		}
		ws.HeatExceeded = ws.HeatExceeded || walk.Exceeded
		ws.Lines = append(ws.Lines, walk.Lines...)
		ws.Lines = append(ws.Lines, line(fmt.Sprintf("Arc %s", a), times(walk.Total, m), arcBV))
	}
	ws.Lines = append(ws.Lines, line("Weapons", "", ws.Value))
	return addSupport(ws, u, u.Equipment)
}

func (largeCraftVariant) Weight(*Unit) Step { return noTerm("Weight") }

func (largeCraftVariant) DefensiveFactor(*Unit) Step { return unity("Defensive factor") }

func (largeCraftVariant) SpeedFactor(u *Unit) Step {
	return speedFactorStep(u.Movement.maxThrust())
}

func (largeCraftVariant) OffensiveTypeModifier(*Unit) Step {
	return unity("Offensive type modifier")
}

func (largeCraftVariant) FinalModifier(*Unit) Step { return unity("Final modifier") }
