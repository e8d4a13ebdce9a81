package bv

import "math"

// Explosive penalty per critical slot.
const (
	fullExplosivePenalty    = 15.0
	reducedExplosivePenalty = 1.0
)

type ExplosiveClass int

const (
	NotExplosive ExplosiveClass = iota
	// ReducedExplosive covers explosive weapons (gauss, capacitors) and
	// Blue Shield.
	ReducedExplosive
	// FullExplosive covers ammunition and ordinary explosive equipment.
	FullExplosive
)

// defensiveTable holds the fixed BV added by defensive equipment.
var defensiveTable = map[EquipType]float64{
	EquipAMS:         32,
	EquipLaserAMS:    45,
	EquipECM:         61,
	EquipAngelECM:    100,
	EquipWatchdog:    68,
	EquipBeagleProbe: 10,
	EquipClanProbe:   12,
	EquipLightProbe:  7,
	EquipBloodhound:  25,
	EquipAPod:        1,
	EquipBPod:        2,
	EquipMPod:        5,
}

func IsAmmo(m *Mounted) bool {
	return m.Category == CategoryAmmo
}

// IsAMSAmmo reports whether ammunition feeds an anti-missile system.
func IsAMSAmmo(m *Mounted) bool {
	return IsAmmo(m) && (m.Type == EquipAMS || m.AmmoKey == "ams")
}

func IsAMS(m *Mounted) bool {
	return !IsAmmo(m) && (m.Type == EquipAMS || m.Type == EquipLaserAMS)
}

// IsDefensive reports whether the item adds to the defensive value.
func IsDefensive(m *Mounted) bool {
	if IsAmmo(m) {
		return false
	}
	_, ok := defensiveTable[m.Type]
	return ok
}

// IsOffensiveWeapon reports whether the item is scored as a weapon.
func IsOffensiveWeapon(m *Mounted) bool {
	if m.Category != CategoryWeapon && m.Category != CategoryPhysical {
		return false
	}
	return !IsAMS(m) && m.Type != EquipFieldGun
}

// DefensiveEquipmentBV returns the table value for defensive equipment.
func DefensiveEquipmentBV(m *Mounted) float64 {
	if !IsDefensive(m) {
		return 0
	}
	return defensiveTable[m.Type]
}

// Explosiveness classifies an item for the explosive penalty.
func Explosiveness(m *Mounted) ExplosiveClass {
	if m.Type == EquipBlueShield {
		return ReducedExplosive
	}
	if !m.Explosive {
		return NotExplosive
	}
	if m.Category == CategoryWeapon {
		return ReducedExplosive
	}
	return FullExplosive
}

func (c ExplosiveClass) penaltyPerSlot() float64 {
	switch c {
	case FullExplosive:
		return fullExplosivePenalty
	case ReducedExplosive:
		return reducedExplosivePenalty
	default:
		return 0
	}
}

// WeaponHeat returns the heat a weapon counts for heat efficiency.
func WeaponHeat(m *Mounted) float64 {
	heat := m.Heat
	switch {
	case m.Ultra:
		heat *= 2
	case m.Rotary:
		heat *= 6
	}
	if m.Streak {
		heat = math.Ceil(heat * 0.5)
	}
	if m.OneShot {
		heat = math.Ceil(heat * 0.25)
	}
	if m.PulseModule {
		heat += 2
	}
	if m.Insulator {
		heat = math.Max(1, heat-1)
	}
	if m.Capacitor {
		heat += 5
	}
	return heat
}

// WeaponBV returns the standalone BV of a weapon on the given unit,
// including fire control bonuses but ignoring heat and arcs.
func WeaponBV(u *Unit, m *Mounted) float64 {
	bv := m.BV
	switch m.Artemis {
	case "iv":
		bv *= 1.2
	case "v":
		bv *= 1.3
	}
	if m.Apollo {
		bv *= 1.15
	}
	if m.DirectFire && u.Has(EquipTargetingComp) {
		bv *= 1.25
	}
	return bv
}
