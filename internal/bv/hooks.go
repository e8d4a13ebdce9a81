package bv

import (
	"fmt"
	"sort"
)

// Shared rule implementations. Variants call these explicitly.

func unity(label string) Step {
	return Step{Value: 1, Lines: []Line{na(label)}}
}

func multiplier(label, calc string, m float64) Step {
	return Step{Value: m, Lines: []Line{line(label, calc, m)}}
}

// armorStep scores armor points by pointValue, honouring per-location
// armor multipliers. bonus is added to every multiplier.
func armorStep(u *Unit, pointValue, bonus float64) Step {
	unitMult := u.armorMultiplier() + bonus
	var total float64
	for _, l := range u.Locations {
		m := unitMult
		if l.ArmorMultiplier != 0 {
			m = l.ArmorMultiplier + bonus
		}
		total += float64(l.Armor+l.RearArmor) * pointValue * m
	}
	calc := times(float64(u.TotalArmor()), pointValue)
	if unitMult != 1 {
		calc += " x " + num(unitMult)
	}
	return Step{Value: total, Lines: []Line{line("Armor", calc, total)}}
}

func structureStep(label string, points, factor float64) Step {
	total := points * factor
	return Step{Value: total, Lines: []Line{line(label, times(points, factor), total)}}
}

// defensiveEquipmentStep adds the table value of each defensive item and the
// BV of AMS ammunition, capped at the BV of the AMS it feeds.
func defensiveEquipmentStep(items []Mounted) Step {
	var s Step
	var amsBV, amsAmmo float64
	for i := range items {
		m := &items[i]
		if IsAMSAmmo(m) {
			amsAmmo += m.BV
			continue
		}
		bv := DefensiveEquipmentBV(m)
		if bv == 0 {
			continue
		}
		if IsAMS(m) {
			amsBV += bv
		}
		s.Value += bv
		s.Lines = append(s.Lines, line(m.Name, "", bv))
	}
	if amsAmmo > 0 {
		capped := amsAmmo
		if capped > amsBV {
			capped = amsBV
		}
		s.Value += capped
		s.Lines = append(s.Lines, line("AMS ammo", fmt.Sprintf("%s, max %s", num(amsAmmo), num(amsBV)), capped))
	}
	if len(s.Lines) == 0 {
		s.Lines = []Line{na("Defensive equipment")}
	}
	return s
}

// explosiveStep totals the explosive penalty. protected reports whether a
// slot's location shields it; each slot is charged at most once even when
// one item spans several locations.
func explosiveStep(items []Mounted, protected func(m *Mounted, loc string) bool) Step {
	var s Step
	seen := make(map[Slot]bool)
	for i := range items {
		m := &items[i]
		per := Explosiveness(m).penaltyPerSlot()
		if per == 0 {
			continue
		}
		charged := 0
		if len(m.Slots) == 0 && !protected(m, m.Location) {
			charged = 1
		}
		for _, sl := range m.Slots {
			if seen[sl] || protected(m, sl.Location) {
				continue
			}
			seen[sl] = true
			charged++
		}
		if charged == 0 {
			continue
		}
		pen := per * float64(charged)
		s.Value += pen
		s.Lines = append(s.Lines, line(m.Name, fmt.Sprintf("%d slots x %s", charged, num(per)), -pen))
	}
	if len(s.Lines) == 0 {
		s.Lines = []Line{na("Explosive equipment")}
	}
	return s
}

func caseProtects(u *Unit) func(*Mounted, string) bool {
	return func(_ *Mounted, loc string) bool {
		l := u.Location(loc)
		return l != nil && (l.CASE || l.CASEII)
	}
}

// weaponRules configures the shared weapon step.
type weaponRules struct {
	// arcs adjusts record BV for firing arcs; nil counts every arc in full.
	arcs func([]WeaponRecord) ([]WeaponRecord, []Line)
	// heat enables the heat walk against efficiency.
	heat       bool
	efficiency float64
}

// weaponRecords builds the transient records for all offensive weapons.
func weaponRecords(u *Unit, items []Mounted) []WeaponRecord {
	var recs []WeaponRecord
	for i := range items {
		m := &items[i]
		if !IsOffensiveWeapon(m) {
			continue
		}
		recs = append(recs, WeaponRecord{Mounted: m, BV: WeaponBV(u, m), Heat: WeaponHeat(m)})
	}
	return recs
}

func scoreWeapons(u *Unit, items []Mounted, rules weaponRules) WeaponStep {
	var ws WeaponStep
	recs := weaponRecords(u, items)
	if len(recs) == 0 {
		ws.Lines = append(ws.Lines, na("Weapons"))
	} else {
		if rules.arcs != nil {
			var lines []Line
			recs, lines = rules.arcs(recs)
			ws.Lines = append(ws.Lines, lines...)
		}
		var walk HeatWalk
		if rules.heat {
			ws.HeatEfficiency = rules.efficiency
			ws.Lines = append(ws.Lines, line("Heat efficiency", "", rules.efficiency))
			walk = WalkHeat(recs, rules.efficiency)
		} else {
			walk = sumUnlimited(recs)
		}
		ws.Lines = append(ws.Lines, walk.Lines...)
		ws.Lines = append(ws.Lines, line("Weapons", "", walk.Total))
		ws.Value += walk.Total
		ws.HeatUsed = walk.HeatUsed
		ws.HeatExceeded = walk.Exceeded
	}
	return addSupport(ws, u, items)
}

// addSupport adds ammunition and offensive equipment to a weapon step.
func addSupport(ws WeaponStep, u *Unit, items []Mounted) WeaponStep {
	ammo, lines := ammoStep(u, items)
	ws.Value += ammo
	ws.Lines = append(ws.Lines, lines...)

	equip, lines := offensiveEquipmentStep(items)
	ws.Value += equip
	ws.Lines = append(ws.Lines, lines...)
	return ws
}

// ammoStep scores ammunition per ammo key, each key capped at the BV of the
// weapons that fire it. Ammunition without a weapon adds nothing.
func ammoStep(u *Unit, items []Mounted) (float64, []Line) {
	weaponBV := make(map[string]float64)
	for i := range items {
		m := &items[i]
		if IsOffensiveWeapon(m) && m.AmmoKey != "" {
			weaponBV[m.AmmoKey] += WeaponBV(u, m)
		}
	}
	return cappedAmmo(items, weaponBV)
}

// cappedAmmo totals non-AMS ammunition by key, capping each key at
// weaponBV[key].
func cappedAmmo(items []Mounted, weaponBV map[string]float64) (float64, []Line) {
	ammoBV := make(map[string]float64)
	for i := range items {
		m := &items[i]
		if IsAmmo(m) && !IsAMSAmmo(m) {
			ammoBV[m.AmmoKey] += m.BV
		}
	}
	if len(ammoBV) == 0 {
		return 0, []Line{na("Ammo")}
	}

	keys := make([]string, 0, len(ammoBV))
	for k := range ammoBV {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var total float64
	var lines []Line
	for _, k := range keys {
		a, w := ammoBV[k], weaponBV[k]
		bv := a
		if bv > w {
			bv = w
		}
		total += bv
		lines = append(lines, line("Ammo "+k, fmt.Sprintf("%s, max %s", num(a), num(w)), bv))
	}
	return total, lines
}

func offensiveEquipmentStep(items []Mounted) (float64, []Line) {
	var total float64
	var lines []Line
	for i := range items {
		m := &items[i]
		if m.Category != CategoryEquipment || m.BV <= 0 || IsDefensive(m) {
			continue
		}
		total += m.BV
		lines = append(lines, line(m.Name, "", m.BV))
	}
	return total, lines
}

// tmmStep builds the defensive movement factor from the best of running,
// jumping (+jumpBonus) and submerged movement, plus flat and equipment
// bonuses.
func tmmStep(u *Unit, run, jump, umu, jumpBonus, flat int, bonuses []tmmBonus) Step {
	tmm := TMM(run)
	calc := fmt.Sprintf("run %d", run)
	if jump > 0 {
		if j := TMM(jump) + jumpBonus; j > tmm {
			tmm = j
		}
		calc += fmt.Sprintf(", jump %d", jump)
	}
	if umu > 0 {
		if s := TMM(umu); s > tmm {
			tmm = s
		}
		calc += fmt.Sprintf(", umu %d", umu)
	}
	lines := []Line{line("Target movement modifier", calc, float64(tmm))}
	if flat != 0 {
		tmm += flat
		lines = append(lines, line("TMM bonus", "", float64(flat)))
	}
	for _, b := range bonuses {
		if u.Has(b.equip) {
			tmm += b.bonus
			lines = append(lines, line("TMM bonus "+string(b.equip), "", float64(b.bonus)))
		}
	}
	f := TMMFactor(tmm)
	lines = append(lines, line("Defensive factor", fmt.Sprintf("1 + %d / 10", tmm), f))
	return Step{Value: f, Lines: lines}
}

// tmmBonus is a variant's additive TMM bonus for signature equipment.
type tmmBonus struct {
	equip EquipType
	bonus int
}

func noTerm(label string) Step {
	return Step{Lines: []Line{na(label)}}
}

func speedFactorStep(mp int) Step {
	sf := SpeedFactor(mp)
	return Step{Value: sf, Lines: []Line{line("Speed factor", fmt.Sprintf("speed MP %d", mp), sf)}}
}
