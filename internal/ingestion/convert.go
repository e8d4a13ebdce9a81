package ingestion

import (
	"fmt"
	"strings"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
	"github.com/JustinWhittecar/bvcalc/internal/equipment"
)

// internalStructure holds standard internal structure points per location
// by tonnage: centre torso, side torso, arm, leg. The head always has 3.
var internalStructure = map[int][4]int{
	10: {4, 3, 1, 2}, 15: {5, 4, 2, 3}, 20: {6, 5, 3, 4}, 25: {8, 6, 4, 6},
	30: {10, 7, 5, 7}, 35: {11, 8, 6, 8}, 40: {12, 10, 6, 10}, 45: {14, 11, 7, 11},
	50: {16, 12, 8, 12}, 55: {18, 13, 9, 13}, 60: {20, 14, 10, 14}, 65: {21, 15, 10, 15},
	70: {22, 15, 11, 15}, 75: {23, 16, 12, 16}, 80: {25, 17, 13, 17}, 85: {27, 18, 14, 18},
	90: {29, 19, 15, 19}, 95: {30, 20, 16, 20}, 100: {31, 21, 17, 21},
}

var bipedLocations = []string{
	bv.LocHead, bv.LocCenterTorso, bv.LocLeftTorso, bv.LocRightTorso,
	bv.LocLeftArm, bv.LocRightArm, bv.LocLeftLeg, bv.LocRightLeg,
}

var quadLocations = []string{
	bv.LocHead, bv.LocCenterTorso, bv.LocLeftTorso, bv.LocRightTorso,
	bv.LocFrontLeft, bv.LocFrontRight, bv.LocRearLeft, bv.LocRearRight,
}

var rearArmorKey = map[string]string{
	bv.LocCenterTorso: "RTC",
	bv.LocLeftTorso:   "RTL",
	bv.LocRightTorso:  "RTR",
}

// Armor and structure type multipliers; unlisted types count 1.0.
var armorTypeMultiplier = map[string]float64{
	"commercial":           0.5,
	"reactive":             1.5,
	"reflective":           1.5,
	"hardened":             2.0,
	"ferro-lamellor":       1.2,
	"ballistic-reinforced": 1.5,
}

var structureTypeMultiplier = map[string]float64{
	"industrial": 0.5,
	"composite":  0.5,
	"reinforced": 2.0,
}

// typeMultiplier matches the longest table key contained in the type name.
func typeMultiplier(table map[string]float64, name string) float64 {
	n := strings.ToLower(name)
	best, m := "", 1.0
	for k, v := range table {
		if len(k) > len(best) && strings.Contains(n, k) {
			best, m = k, v
		}
	}
	return m
}

func structurePoints(mass int, loc string) int {
	row := internalStructure[mass]
	switch loc {
	case bv.LocHead:
		return 3
	case bv.LocCenterTorso:
		return row[0]
	case bv.LocLeftTorso, bv.LocRightTorso:
		return row[1]
	case bv.LocLeftArm, bv.LocRightArm:
		return row[2]
	default:
		return row[3]
	}
}

func parseEngineType(s string) bv.Engine {
	n := strings.ToLower(s)
	switch {
	case strings.Contains(n, "xxl"):
		return bv.EngineXXL
	case strings.Contains(n, "xl"):
		return bv.EngineXL
	case strings.Contains(n, "light"):
		return bv.EngineLight
	case strings.Contains(n, "compact"):
		return bv.EngineCompact
	case strings.Contains(n, "fuel cell") || strings.Contains(n, "fuel-cell"):
		return bv.EngineFuelCell
	case strings.Contains(n, "fission"):
		return bv.EngineFission
	case strings.Contains(n, "ice") || strings.Contains(n, "i.c.e."):
		return bv.EngineICE
	default:
		return bv.EngineStandard
	}
}

func parseGyro(s string) bv.Gyro {
	n := strings.ToLower(s)
	switch {
	case strings.Contains(n, "heavy"):
		return bv.GyroHeavyDuty
	case strings.Contains(n, "compact"):
		return bv.GyroCompact
	case strings.Contains(n, "xl"):
		return bv.GyroXL
	case n == "none":
		return bv.GyroNone
	default:
		return bv.GyroStandard
	}
}

func parseCockpit(s string) bv.Cockpit {
	n := strings.ToLower(s)
	switch {
	case strings.Contains(n, "small"):
		return bv.CockpitSmall
	case strings.Contains(n, "torso"):
		return bv.CockpitTorsoMounted
	case strings.Contains(n, "interface"):
		return bv.CockpitInterface
	case strings.Contains(n, "drone"):
		return bv.CockpitDroneOS
	case strings.Contains(n, "industrial"):
		return bv.CockpitIndustrial
	case strings.Contains(n, "primitive"):
		return bv.CockpitPrimitive
	default:
		return bv.CockpitStandard
	}
}

func parseMyomer(s string) bv.Myomer {
	n := strings.ToLower(s)
	switch {
	case strings.Contains(n, "industrial"):
		return bv.MyomerIndustrialTSM
	case strings.Contains(n, "triple") || strings.Contains(n, "tsm"):
		return bv.MyomerTSM
	default:
		return bv.MyomerStandard
	}
}

func isDoubleHS(hsType string) bool {
	n := strings.ToLower(hsType)
	return strings.Contains(n, "double") || strings.Contains(n, "laser")
}

// ToUnit converts a parsed Mek into a battle value snapshot. It returns the
// crit slot names the catalog could not resolve; those items are left out.
func ToUnit(d *MTFData, cat *equipment.Catalog) (*bv.Unit, []string, error) {
	if _, ok := internalStructure[d.Mass]; !ok {
		return nil, nil, fmt.Errorf("%s: unsupported tonnage %d", d.FullName(), d.Mass)
	}
	tech := strings.ToLower(d.TechBase)
	clan := strings.Contains(tech, "clan") && !strings.Contains(tech, "is chassis")
	quad := strings.Contains(strings.ToLower(d.Config), "quad")

	u := &bv.Unit{
		Name:                d.FullName(),
		Kind:                bv.KindMek,
		Tonnage:             float64(d.Mass),
		Clan:                clan,
		Quad:                quad,
		Engine:              parseEngineType(d.EngineType),
		Gyro:                parseGyro(d.Gyro),
		Cockpit:             parseCockpit(d.Cockpit),
		Myomer:              parseMyomer(d.Myomer),
		ArmorMultiplier:     typeMultiplier(armorTypeMultiplier, d.ArmorType),
		StructureMultiplier: typeMultiplier(structureTypeMultiplier, d.Structure),
		Movement:            bv.Movement{Walk: d.WalkMP, Jump: d.JumpMP, Mode: bv.ModeBiped},
	}
	if quad {
		u.Movement.Mode = bv.ModeQuad
	}
	n := strings.ToLower(d.Structure + " " + d.Cockpit)
	u.Industrial = strings.Contains(n, "industrial")

	hs := d.HeatSinkCount
	if isDoubleHS(d.HeatSinkType) {
		hs *= 2
	}
	u.HeatCapacity = hs

	locs := bipedLocations
	if quad {
		locs = quadLocations
	}
	for _, name := range locs {
		u.Locations = append(u.Locations, bv.Location{
			Name:      name,
			Armor:     d.Armor[name],
			RearArmor: d.Armor[rearArmorKey[name]],
			Structure: structurePoints(d.Mass, name),
		})
	}

	var unknown []string
	for li, loc := range locs {
		items, flags, miss := mountLocation(loc, d.Crits[loc], cat, u.Clan, u.Tonnage)
		u.Equipment = append(u.Equipment, items...)
		unknown = append(unknown, miss...)
		u.Locations[li].CASE = flags.caseI
		u.Locations[li].CASEII = flags.caseII
		if flags.tsm && u.Myomer == bv.MyomerStandard {
			u.Myomer = bv.MyomerTSM
		}
		u.Movement.UMU += flags.umu
	}
	return u, unknown, nil
}

type locationFlags struct {
	caseI, caseII bool
	tsm           bool
	umu           int
}

// mountLocation groups the crit slots of one location into mounted items.
// Consecutive identical names form one item of the catalog's slot count;
// ammunition takes one slot per item.
func mountLocation(loc string, crits []string, cat *equipment.Catalog, clan bool, tonnage float64) ([]bv.Mounted, locationFlags, []string) {
	var (
		items   []bv.Mounted
		flags   locationFlags
		unknown []string
	)
	for i := 0; i < len(crits); {
		raw := crits[i]
		name, rear := equipment.CleanName(raw)
		lower := strings.ToLower(name)

		switch {
		case name == "" || equipment.IsStructural(name):
			if strings.HasPrefix(lower, "umu") || strings.Contains(lower, " umu") {
				flags.umu++
			}
			i++
			continue
		case strings.Contains(strings.ReplaceAll(lower, " ", ""), "triplestrength") || lower == "istsm" || lower == "tsm":
			flags.tsm = true
			i++
			continue
		}

		if mod := equipment.ModifierFor(name); mod != equipment.NoModifier {
			for j := len(items) - 1; j >= 0; j-- {
				if items[j].Location == loc && mod.Accepts(&items[j]) && !linked(&items[j], mod) {
					mod.Apply(&items[j])
					break
				}
			}
			i++
			continue
		}

		it, ok := cat.Lookup(name, clan)
		if !ok {
			unknown = append(unknown, raw)
			i++
			continue
		}
		switch it.Type {
		case bv.EquipCASE:
			flags.caseI = true
			i++
			continue
		case bv.EquipCASEII:
			flags.caseII = true
			i++
			continue
		}

		size := it.Slots
		if size < 1 || it.Category == bv.CategoryAmmo {
			size = 1
		}
		n := run(crits, i, size)
		slots := make([]bv.Slot, n)
		for k := range slots {
			slots[k] = bv.Slot{Location: loc, Index: i + k}
		}
		m := it.Mount(loc, slots, tonnage)
		m.Rear = rear
		items = append(items, m)
		i += n
	}
	return items, flags, unknown
}

// run counts consecutive crit slots equal to crits[i], up to limit.
func run(crits []string, i, limit int) int {
	n := 1
	for i+n < len(crits) && crits[i+n] == crits[i] && n < limit {
		n++
	}
	return n
}

func linked(m *bv.Mounted, mod equipment.Modifier) bool {
	switch mod {
	case equipment.ArtemisIV, equipment.ArtemisV:
		return m.Artemis != ""
	case equipment.Apollo:
		return m.Apollo
	case equipment.PPCCapacitor:
		return m.Capacitor
	case equipment.LaserInsulator:
		return m.Insulator
	case equipment.PulseModule:
		return m.PulseModule
	}
	return false
}
