package bv

import (
	"fmt"
	"math"
)

// Mek location names, matching the MTF abbreviations.
const (
	LocHead        = "HD"
	LocCenterTorso = "CT"
	LocLeftTorso   = "LT"
	LocRightTorso  = "RT"
	LocLeftArm     = "LA"
	LocRightArm    = "RA"
	LocLeftLeg     = "LL"
	LocRightLeg    = "RL"
	LocFrontLeft   = "FLL"
	LocFrontRight  = "FRL"
	LocRearLeft    = "RLL"
	LocRearRight   = "RRL"
)

var mekTMMBonuses = []tmmBonus{
	{EquipStealth, 2},
	{EquipNullSig, 2},
	{EquipVoidSig, 3},
	{EquipChameleon, 2},
	{EquipMimetic, 1},
}

// Heat efficiency lost to signature systems.
var mekSignatureHeat = []struct {
	equip EquipType
	heat  int
}{
	{EquipStealth, 10},
	{EquipNullSig, 10},
	{EquipVoidSig, 10},
	{EquipChameleon, 6},
}

type mekVariant struct{}

func (mekVariant) Kind() Kind { return KindMek }

func (mekVariant) Armor(u *Unit) Step {
	bonus := 0.0
	if u.Has(EquipBlueShield) {
		bonus = 0.2
	}
	return armorStep(u, 2.5, bonus)
}

func (mekVariant) Structure(u *Unit) Step {
	engine := engineStructureMultiplier(u.Engine, u.Clan)
	factor := 1.5 * u.structureMultiplier() * engine
	s := structureStep("Structure", float64(u.TotalStructure()), factor)

	gyro := u.Tonnage * gyroMultiplier(u.Gyro)
	s.Value += gyro
	s.Lines = append(s.Lines, line("Gyro", times(u.Tonnage, gyroMultiplier(u.Gyro)), gyro))
	return s
}

func (mekVariant) DefensiveEquipment(u *Unit) Step {
	return defensiveEquipmentStep(u.Equipment)
}

func (mekVariant) ExplosiveEquipment(u *Unit) Step {
	return explosiveStep(u.Equipment, mekProtected(u))
}

// mekProtected reports whether CASE shields a location. CASE II always
// does. Clan Meks have CASE in side torsos and arms built in. Inner Sphere
// XL and XXL engines leave side torsos exposed without CASE II. Arms are
// shielded by CASE in the arm or the adjoining torso.
func mekProtected(u *Unit) func(*Mounted, string) bool {
	xl := !u.Clan && (u.Engine == EngineXL || u.Engine == EngineXXL)
	return func(m *Mounted, loc string) bool {
		l := u.Location(loc)
		if l == nil {
			return false
		}
		if l.CASEII {
			return true
		}
		if m.Type == EquipBlueShield && l.CASE {
			return true
		}
		switch loc {
		case LocLeftTorso, LocRightTorso:
			if u.Clan {
				return true
			}
			return l.CASE && !xl
		case LocLeftArm, LocRightArm:
			if u.Clan {
				return true
			}
			torso := u.Location(LocLeftTorso)
			if loc == LocRightArm {
				torso = u.Location(LocRightTorso)
			}
			if torso != nil && torso.CASEII {
				return true
			}
			if xl {
				return false
			}
			return l.CASE || (torso != nil && torso.CASE)
		default:
			return false
		}
	}
}

func (mekVariant) DefensiveFloor() float64 { return 0 }

func (mekVariant) TypeModifier(*Unit) Step { return unity("Type modifier") }

func (mekVariant) Weapons(u *Unit) WeaponStep {
	eff, lines := mekHeatEfficiency(u)
	rear := func(m *Mounted) bool { return m.Rear }
	ws := scoreWeapons(u, u.Equipment, weaponRules{
		arcs: func(recs []WeaponRecord) ([]WeaponRecord, []Line) {
			return frontRear(recs, rear)
		},
		heat:       true,
		efficiency: eff,
	})
	ws.Lines = append(lines, ws.Lines...)
	return ws
}

func mekHeatEfficiency(u *Unit) (float64, []Line) {
	mv := u.Movement
	move := MovementHeat(mv.runMP(), mv.Jump, mv.UMU)
	eff := 6 + u.HeatCapacity - move
	calc := fmt.Sprintf("6 + %d - %d", u.HeatCapacity, move)

	if pods := u.Count(EquipCoolantPod); pods > 0 {
		if pods > u.HeatCapacity {
			pods = u.HeatCapacity
		}
		eff += pods
		calc += fmt.Sprintf(" + %d pods", pods)
	}
	if u.Has(EquipEmergencyCoolant) {
		eff += 4
		calc += " + 4 ECS"
	}
	for _, s := range mekSignatureHeat {
		if u.Has(s.equip) {
			eff -= s.heat
			calc += fmt.Sprintf(" - %d %s", s.heat, s.equip)
		}
	}
	return float64(eff), []Line{line("Heat efficiency formula", calc, float64(eff))}
}

func (mekVariant) Weight(u *Unit) Step {
	mult := 1.0
	calc := num(u.Tonnage)
	switch u.Myomer {
	case MyomerTSM:
		mult = 1.5
	case MyomerIndustrialTSM:
		mult = 1.15
	}
	aesLegs := false
	for i := range u.Equipment {
		m := &u.Equipment[i]
		if m.Type != EquipAES {
			continue
		}
		switch m.Location {
		case LocLeftArm, LocRightArm:
			mult += 0.1
		case LocLeftLeg, LocRightLeg, LocFrontLeft, LocFrontRight, LocRearLeft, LocRearRight:
			aesLegs = true
		}
	}
	if aesLegs {
		if u.Quad {
			mult += 0.4
		} else {
			mult += 0.2
		}
	}
	if mult != 1 {
		calc += " x " + num(mult)
	}
	w := u.Tonnage * mult
	return Step{Value: w, Lines: []Line{line("Weight", calc, w)}}
}

// mekRunMP is the run MP after MASC, superchargers and TSM.
func mekRunMP(u *Unit) int {
	walk := u.Movement.Walk
	run := u.Movement.runMP()
	masc, sc := u.Has(EquipMASC), u.Has(EquipSupercharger)
	switch {
	case masc && sc:
		run = int(math.Ceil(float64(walk) * 2.5))
	case masc || sc:
		run = walk * 2
	}
	if u.Myomer == MyomerTSM {
		if tsm := ceilHalf((walk + 1) * 3); tsm > run {
			run = tsm
		}
	}
	return run
}

func (mekVariant) DefensiveFactor(u *Unit) Step {
	return tmmStep(u, mekRunMP(u), u.Movement.Jump, u.Movement.UMU, 1, 0, mekTMMBonuses)
}

func (mekVariant) SpeedFactor(u *Unit) Step {
	return speedFactorStep(SpeedFactorMP(mekRunMP(u), u.Movement.Jump, u.Movement.UMU))
}

func (mekVariant) OffensiveTypeModifier(u *Unit) Step {
	industrial := u.Industrial || u.Cockpit == CockpitIndustrial || u.Cockpit == CockpitPrimitive
	if industrial && !u.Has(EquipAFC) {
		return multiplier("Industrial without advanced fire control", "", 0.9)
	}
	return unity("Offensive type modifier")
}

func (mekVariant) FinalModifier(u *Unit) Step {
	m := cockpitMultiplier(u.Cockpit)
	var lines []Line
	if m != 1 {
		lines = append(lines, line("Cockpit "+string(u.Cockpit), "", m))
	}
	if kits := u.Count(EquipRISCOverride); kits > 0 {
		k := math.Pow(1.01, float64(kits))
		m *= k
		lines = append(lines, line("RISC heat sink override", fmt.Sprintf("%d kits", kits), k))
	}
	if len(lines) == 0 {
		lines = []Line{na("Final modifier")}
	}
	return Step{Value: m, Lines: lines}
}
