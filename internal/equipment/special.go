package equipment

import (
	"strings"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
)

// special maps a compacted name fragment to an equipment template. Order
// matters: the first fragment contained in the name wins.
var special = []struct {
	fragment string
	item     Item
}{
	{"laserantimissile", Item{Name: "Laser AMS", Category: bv.CategoryWeapon, Type: bv.EquipLaserAMS, BV: 45, Slots: 1}},
	{"antimissile", Item{Name: "AMS", Category: bv.CategoryWeapon, Type: bv.EquipAMS, BV: 32, Heat: 1, Slots: 1, AmmoKey: "ams"}},
	{"angelecm", Item{Name: "Angel ECM Suite", Type: bv.EquipAngelECM, Slots: 2}},
	{"guardianecm", Item{Name: "Guardian ECM Suite", Type: bv.EquipECM, Slots: 2}},
	{"ecmsuite", Item{Name: "ECM Suite", Type: bv.EquipECM, Slots: 1}},
	{"watchdog", Item{Name: "Watchdog CEWS", Type: bv.EquipWatchdog, Slots: 1}},
	{"bloodhound", Item{Name: "Bloodhound Active Probe", Type: bv.EquipBloodhound, Slots: 3}},
	{"lightactiveprobe", Item{Name: "Light Active Probe", Type: bv.EquipLightProbe, Slots: 1}},
	{"beagle", Item{Name: "Beagle Active Probe", Type: bv.EquipBeagleProbe, Slots: 2}},
	{"activeprobe", Item{Name: "Active Probe", Type: bv.EquipBeagleProbe, Slots: 2}},
	{"apod", Item{Name: "A-Pod", Type: bv.EquipAPod, Slots: 1}},
	{"bpod", Item{Name: "B-Pod", Type: bv.EquipBPod, Slots: 1, Explosive: true}},
	{"mpod", Item{Name: "M-Pod", Type: bv.EquipMPod, Slots: 1, Explosive: true}},
	{"caseii", Item{Name: "CASE II", Type: bv.EquipCASEII, Slots: 1}},
	{"case", Item{Name: "CASE", Type: bv.EquipCASE, Slots: 1}},
	{"targetingcomputer", Item{Name: "Targeting Computer", Type: bv.EquipTargetingComp, Slots: 1}},
	{"supercharger", Item{Name: "Supercharger", Type: bv.EquipSupercharger, Slots: 1}},
	{"masc", Item{Name: "MASC", Type: bv.EquipMASC, Slots: 1}},
	{"actuatorenhancement", Item{Name: "AES", Type: bv.EquipAES, Slots: 1}},
	{"aes", Item{Name: "AES", Type: bv.EquipAES, Slots: 1}},
	{"coolantpod", Item{Name: "Coolant Pod", Type: bv.EquipCoolantPod, Slots: 1, Explosive: true}},
	{"emergencycoolant", Item{Name: "Emergency Coolant System", Type: bv.EquipEmergencyCoolant, Slots: 1, Explosive: true}},
	{"blueshield", Item{Name: "Blue Shield", Type: bv.EquipBlueShield, Slots: 1}},
	{"improvedstealth", Item{Name: "Improved Stealth", Type: bv.EquipImprovedStealth, Slots: 1}},
	{"stealth", Item{Name: "Stealth Armor", Type: bv.EquipStealth, Slots: 1}},
	{"nullsignature", Item{Name: "Null Signature System", Type: bv.EquipNullSig, Slots: 1}},
	{"voidsignature", Item{Name: "Void Signature System", Type: bv.EquipVoidSig, Slots: 1}},
	{"chameleon", Item{Name: "Chameleon Light Polarization Shield", Type: bv.EquipChameleon, Slots: 1}},
	{"mimetic", Item{Name: "Mimetic Armor", Type: bv.EquipMimetic, Slots: 1}},
	{"camo", Item{Name: "Camo System", Type: bv.EquipCamo, Slots: 1}},
	{"advancedfirecontrol", Item{Name: "Advanced Fire Control", Type: bv.EquipAFC, Slots: 1}},
	{"rischeatsinkoverride", Item{Name: "RISC Heat Sink Override Kit", Type: bv.EquipRISCOverride, Slots: 1}},
	{"tag", Item{Name: "TAG", Slots: 1}},
	{"c3", Item{Name: "C3 Computer", Slots: 1}},
}

// compact lowercases a name and removes spaces, dashes and slashes.
func compact(name string) string {
	r := strings.NewReplacer(" ", "", "-", "", "/", "", "_", "")
	return r.Replace(strings.ToLower(name))
}

// specialItem classifies equipment that has no weapon entry.
func specialItem(name string, clan bool) (Item, bool) {
	n := compact(name)
	if n == "ams" || n == "isams" || n == "clams" {
		n = "antimissile"
	}
	for _, s := range special {
		if !strings.Contains(n, s.fragment) {
			continue
		}
		it := s.item
		if it.Category == "" {
			it.Category = bv.CategoryEquipment
		}
		it.InternalName = name
		it.Clan = clan
		if s.fragment == "activeprobe" && clan {
			it.Name = "Active Probe"
			it.Type = bv.EquipClanProbe
			it.Slots = 1
		}
		return it, true
	}
	return Item{}, false
}

// Modifier is an add-on that changes the weapon it is linked to.
type Modifier int

const (
	NoModifier Modifier = iota
	ArtemisIV
	ArtemisV
	Apollo
	PPCCapacitor
	LaserInsulator
	PulseModule
)

// ModifierFor recognises fire control and weapon add-ons by crit name.
func ModifierFor(name string) Modifier {
	n := compact(name)
	switch {
	case strings.Contains(n, "artemisv") && !strings.Contains(n, "artemisiv"):
		return ArtemisV
	case strings.Contains(n, "artemis"):
		return ArtemisIV
	case strings.Contains(n, "apollo"):
		return Apollo
	case strings.Contains(n, "ppccapacitor"):
		return PPCCapacitor
	case strings.Contains(n, "laserinsulator"):
		return LaserInsulator
	case strings.Contains(n, "pulsemodule"):
		return PulseModule
	}
	return NoModifier
}

// Apply sets the modifier's flag on a mounted weapon.
func (mod Modifier) Apply(m *bv.Mounted) {
	switch mod {
	case ArtemisIV:
		m.Artemis = "iv"
	case ArtemisV:
		m.Artemis = "v"
	case Apollo:
		m.Apollo = true
	case PPCCapacitor:
		m.Capacitor = true
		m.Explosive = true
	case LaserInsulator:
		m.Insulator = true
	case PulseModule:
		m.PulseModule = true
	}
}

// Accepts reports whether the modifier can link to the weapon.
func (mod Modifier) Accepts(m *bv.Mounted) bool {
	n := strings.ToLower(m.Name)
	switch mod {
	case ArtemisIV, ArtemisV:
		return strings.Contains(n, "lrm") || strings.Contains(n, "srm") || strings.Contains(n, "mml")
	case Apollo:
		return strings.Contains(n, "mrm")
	case PPCCapacitor:
		return strings.Contains(n, "ppc")
	case LaserInsulator, PulseModule:
		return strings.Contains(n, "laser")
	}
	return false
}

var structural = []string{
	"shoulder", "upper arm", "lower arm", "hand actuator",
	"hip", "upper leg", "lower leg", "foot actuator",
	"life support", "sensors", "cockpit", "gyro",
	"fusion engine", "engine", "-empty-", "-fixed-",
	"endo steel", "endo-steel", "ferro-fibrous", "endo-composite",
	"heat sink", "jump jet", "umu",
}

// IsStructural reports whether a crit slot holds an actuator, engine,
// heat sink, jump jet or structure/armor filler rather than equipment.
func IsStructural(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "is ")
	n = strings.TrimPrefix(n, "clan ")
	n = strings.TrimPrefix(n, "cl ")
	for _, s := range structural {
		if n == s || strings.HasPrefix(n, s) {
			return true
		}
	}
	c := compact(n)
	for _, s := range []string{"heatsink", "jumpjet", "endo", "ferro", "engine", "gyro", "reactive", "reflective", "hardened"} {
		if strings.Contains(c, s) {
			return true
		}
	}
	return false
}
