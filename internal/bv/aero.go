package bv

// Aerospace fighter location names.
const (
	LocNose      = "NOS"
	LocLeftWing  = "LWG"
	LocRightWing = "RWG"
	LocAft       = "AFT"
)

type fighterVariant struct{}

func (fighterVariant) Kind() Kind { return KindAeroFighter }

func (fighterVariant) Armor(u *Unit) Step { return armorStep(u, 2.5, 0) }

func (fighterVariant) Structure(u *Unit) Step {
	return structureStep("Structural integrity", float64(u.StructuralIntegrity), 2.0)
}

func (fighterVariant) DefensiveEquipment(u *Unit) Step {
	return defensiveEquipmentStep(u.Equipment)
}

func (fighterVariant) ExplosiveEquipment(u *Unit) Step {
	return explosiveStep(u.Equipment, caseProtects(u))
}

func (fighterVariant) DefensiveFloor() float64 { return 0 }

func (fighterVariant) TypeModifier(*Unit) Step { return multiplier("Type modifier", "fighter", 1.2) }

func fighterRear(m *Mounted) bool {
	return m.Rear || m.Location == LocAft || m.Arc == ArcAft
}

// Weapons counts nose and wing weapons in full and aft weapons at half.
func (fighterVariant) Weapons(u *Unit) WeaponStep {
	return scoreWeapons(u, u.Equipment, weaponRules{
		arcs: func(recs []WeaponRecord) ([]WeaponRecord, []Line) {
			return frontRear(recs, fighterRear)
		},
		heat:       true,
		efficiency: float64(u.HeatCapacity),
	})
}

func (fighterVariant) Weight(*Unit) Step { return noTerm("Weight") }

func (fighterVariant) DefensiveFactor(*Unit) Step { return unity("Defensive factor") }

func (fighterVariant) SpeedFactor(u *Unit) Step {
	return speedFactorStep(u.Movement.maxThrust())
}

func (fighterVariant) OffensiveTypeModifier(*Unit) Step {
	return unity("Offensive type modifier")
}

func (fighterVariant) FinalModifier(u *Unit) Step {
	if u.Cockpit == CockpitSmall {
		return multiplier("Cockpit small", "", 0.95)
	}
	return unity("Final modifier")
}
