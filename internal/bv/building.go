package bv

import "fmt"

type buildingVariant struct{}

func (buildingVariant) Kind() Kind { return KindBuilding }

func hexes(u *Unit) []Hex {
	if u.Building == nil {
		return nil
	}
	return u.Building.Hexes
}

func (buildingVariant) Armor(u *Unit) Step {
	hs := hexes(u)
	if len(hs) == 0 {
		return Step{Lines: []Line{note("Armor", "no hexes")}}
	}
	points := 0
	for _, h := range hs {
		points += h.Armor
	}
	v := float64(points) * 2.5
	return Step{Value: v, Lines: []Line{line("Armor", times(float64(points), 2.5), v)}}
}

func (buildingVariant) Structure(u *Unit) Step {
	hs := hexes(u)
	if len(hs) == 0 {
		return Step{Lines: []Line{note("Construction factor", "no hexes")}}
	}
	cf := 0
	for _, h := range hs {
		cf += h.CF
	}
	return structureStep("Construction factor", float64(cf), 1.5)
}

func (buildingVariant) DefensiveEquipment(u *Unit) Step {
	return defensiveEquipmentStep(u.Equipment)
}

func (buildingVariant) ExplosiveEquipment(*Unit) Step { return noTerm("Explosive equipment") }

func (buildingVariant) DefensiveFloor() float64 { return 0 }

func (buildingVariant) TypeModifier(*Unit) Step { return multiplier("Type modifier", "building", 0.5) }

// Weapons counts every weapon in full from any facing with no heat limit.
func (buildingVariant) Weapons(u *Unit) WeaponStep {
	return scoreWeapons(u, u.Equipment, weaponRules{})
}

func (buildingVariant) Weight(u *Unit) Step {
	n := len(hexes(u))
	if n == 0 {
		return Step{Lines: []Line{note("Hexes", "no hexes")}}
	}
	v := float64(n) * 50
	return Step{Value: v, Lines: []Line{line("Hexes", fmt.Sprintf("%d x 50", n), v)}}
}

func (buildingVariant) DefensiveFactor(*Unit) Step { return unity("Defensive factor") }

func (buildingVariant) SpeedFactor(*Unit) Step { return unity("Speed factor") }

func (buildingVariant) OffensiveTypeModifier(*Unit) Step {
	return unity("Offensive type modifier")
}

func (buildingVariant) FinalModifier(*Unit) Step { return unity("Final modifier") }
