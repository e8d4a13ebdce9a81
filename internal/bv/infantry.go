package bv

import "fmt"

type infantryVariant struct{}

func (infantryVariant) Kind() Kind { return KindInfantry }

func fullStrength(p *Infantry) int { return p.Squads * p.SquadSize }

// men is the number of troopers still fighting.
func men(p *Infantry) int {
	if p.Surviving > 0 && p.Surviving < fullStrength(p) {
		return p.Surviving
	}
	return fullStrength(p)
}

// Armor scores the troopers themselves: men x 1.5 x damage divisor.
func (infantryVariant) Armor(u *Unit) Step {
	p := u.Infantry
	div := p.DamageDivisor
	if div == 0 {
		div = 1
	}
	n := men(p)
	v := float64(n) * 1.5 * div
	return Step{Value: v, Lines: []Line{line("Troopers", fmt.Sprintf("%d x 1.5 x %s", n, num(div)), v)}}
}

func (infantryVariant) Structure(*Unit) Step { return noTerm("Structure") }

func (infantryVariant) DefensiveEquipment(u *Unit) Step {
	return defensiveEquipmentStep(u.Equipment)
}

func (infantryVariant) ExplosiveEquipment(*Unit) Step { return noTerm("Explosive equipment") }

func (infantryVariant) DefensiveFloor() float64 { return 0 }

func (infantryVariant) TypeModifier(*Unit) Step { return unity("Type modifier") }

// Weapons splits the platoon into primary and secondary shooters, adds field
// guns and scales everything by the surviving share of the platoon.
func (infantryVariant) Weapons(u *Unit) WeaponStep {
	p := u.Infantry
	var ws WeaponStep

	secondary := p.SecondaryPerSquad * p.Squads
	primary := fullStrength(p) - secondary
	if primary < 0 {
		primary = 0
	}
	pv := p.PrimaryBV * float64(primary)
	sv := p.SecondaryBV * float64(secondary)
	ws.Value = pv + sv
	ws.Lines = append(ws.Lines,
		line("Primary weapons", fmt.Sprintf("%s x %d", num(p.PrimaryBV), primary), pv),
		line("Secondary weapons", fmt.Sprintf("%s x %d", num(p.SecondaryBV), secondary), sv),
	)

	gunBV := make(map[string]float64)
	for i := range u.Equipment {
		m := &u.Equipment[i]
		if m.Type != EquipFieldGun {
			continue
		}
		bv := WeaponBV(u, m)
		if m.AmmoKey != "" {
			gunBV[m.AmmoKey] += bv
		}
		ws.Value += bv
		ws.Lines = append(ws.Lines, line("Field gun "+m.Name, "", bv))
	}
	if len(gunBV) > 0 {
		ammo, lines := cappedAmmo(u.Equipment, gunBV)
		ws.Value += ammo
		ws.Lines = append(ws.Lines, lines...)
	}

	if full, n := fullStrength(p), men(p); n < full && full > 0 {
		ratio := float64(n) / float64(full)
		ws.Value *= ratio
		ws.Lines = append(ws.Lines, line("Understrength", fmt.Sprintf("%d / %d", n, full), ratio))
	}
	ws.Lines = append(ws.Lines, line("Weapons", "", ws.Value))
	return ws
}

func (infantryVariant) Weight(*Unit) Step { return noTerm("Weight") }

func infantryRunMP(mv Movement) int {
	if mv.Run > 0 {
		return mv.Run
	}
	return mv.Walk
}

func (infantryVariant) DefensiveFactor(u *Unit) Step {
	mv := u.Movement
	return tmmStep(u, infantryRunMP(mv), mv.Jump, mv.UMU, 0, 0, nil)
}

func (infantryVariant) SpeedFactor(u *Unit) Step {
	mv := u.Movement
	return speedFactorStep(SpeedFactorMP(infantryRunMP(mv), mv.Jump, mv.UMU))
}

func (infantryVariant) OffensiveTypeModifier(*Unit) Step {
	return unity("Offensive type modifier")
}

func (infantryVariant) FinalModifier(u *Unit) Step {
	if u.Infantry.AntiMek {
		return multiplier("Anti-Mek training", "", 1.1)
	}
	return unity("Final modifier")
}
