package bv

var vehicleTMMBonuses = []tmmBonus{
	{EquipStealth, 2},
	{EquipChameleon, 2},
}

type vehicleVariant struct{}

func (vehicleVariant) Kind() Kind { return KindVehicle }

func (vehicleVariant) Armor(u *Unit) Step { return armorStep(u, 2.5, 0) }

func (vehicleVariant) Structure(u *Unit) Step {
	return structureStep("Structure", float64(u.TotalStructure()), 1.5*u.structureMultiplier())
}

func (vehicleVariant) DefensiveEquipment(u *Unit) Step {
	return defensiveEquipmentStep(u.Equipment)
}

func (vehicleVariant) ExplosiveEquipment(u *Unit) Step {
	return explosiveStep(u.Equipment, caseProtects(u))
}

func (vehicleVariant) DefensiveFloor() float64 { return 0 }

// TypeModifier scales defence by motive type.
func (vehicleVariant) TypeModifier(u *Unit) Step {
	m := 0.6
	switch u.Movement.Mode {
	case ModeTracked:
		m = 0.9
	case ModeWheeled:
		m = 0.8
	case ModeHover, ModeVTOL, ModeWiGE:
		m = 0.7
	}
	calc := string(u.Movement.Mode)
	if u.Chassis.Amphibious {
		m += 0.2
		calc += " + amphibious"
	}
	if u.Chassis.DuneBuggy {
		m += 0.1
		calc += " + dune buggy"
	}
	return multiplier("Type modifier", calc, m)
}

// Weapons walks heat only when the vehicle carries heat sinks; a vehicle
// without them has no heat to track.
func (vehicleVariant) Weapons(u *Unit) WeaponStep {
	return scoreWeapons(u, u.Equipment, weaponRules{
		arcs:       bestArc,
		heat:       u.HeatCapacity > 0,
		efficiency: float64(u.HeatCapacity),
	})
}

func (vehicleVariant) Weight(u *Unit) Step {
	w := u.Tonnage * 0.5
	return Step{Value: w, Lines: []Line{line("Weight", times(u.Tonnage, 0.5), w)}}
}

func (vehicleVariant) DefensiveFactor(u *Unit) Step {
	mv := u.Movement
	airborne := 0
	if mv.Mode == ModeVTOL || mv.Mode == ModeWiGE {
		airborne = 1
	}
	return tmmStep(u, mv.runMP(), mv.Jump, mv.UMU, 1, airborne, vehicleTMMBonuses)
}

func (vehicleVariant) SpeedFactor(u *Unit) Step {
	mv := u.Movement
	return speedFactorStep(SpeedFactorMP(mv.runMP(), mv.Jump, mv.UMU))
}

func (vehicleVariant) OffensiveTypeModifier(*Unit) Step { return unity("Offensive type modifier") }

func (vehicleVariant) FinalModifier(*Unit) Step { return unity("Final modifier") }
