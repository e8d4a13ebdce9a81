package bv

import (
	"fmt"
	"reflect"
)

var battleArmorTMMBonuses = []tmmBonus{
	{EquipStealth, 1},
	{EquipImprovedStealth, 2},
	{EquipMimetic, 3},
	{EquipCamo, 2},
}

// battleArmorVariant scores one trooper. computeSquad combines the troopers.
type battleArmorVariant struct{}

func (battleArmorVariant) Kind() Kind { return KindBattleArmor }

func (battleArmorVariant) Armor(u *Unit) Step { return armorStep(u, 2.5, 0) }

func (battleArmorVariant) Structure(*Unit) Step {
	return structureStep("Structure", 1, 1.5)
}

func (battleArmorVariant) DefensiveEquipment(u *Unit) Step {
	return defensiveEquipmentStep(u.Equipment)
}

func (battleArmorVariant) ExplosiveEquipment(*Unit) Step { return noTerm("Explosive equipment") }

func (battleArmorVariant) DefensiveFloor() float64 { return 1 }

func (battleArmorVariant) TypeModifier(*Unit) Step { return unity("Type modifier") }

func (battleArmorVariant) Weapons(u *Unit) WeaponStep {
	return scoreWeapons(u, u.Equipment, weaponRules{})
}

func (battleArmorVariant) Weight(*Unit) Step { return noTerm("Weight") }

func (battleArmorVariant) DefensiveFactor(u *Unit) Step {
	mv := u.Movement
	return tmmStep(u, mv.runMP(), mv.Jump, mv.UMU, 1, 0, battleArmorTMMBonuses)
}

func (battleArmorVariant) SpeedFactor(u *Unit) Step {
	mv := u.Movement
	return speedFactorStep(SpeedFactorMP(mv.runMP(), mv.Jump, mv.UMU))
}

func (battleArmorVariant) OffensiveTypeModifier(*Unit) Step {
	return unity("Offensive type modifier")
}

func (battleArmorVariant) FinalModifier(*Unit) Step { return unity("Final modifier") }

// trooperView is the unit as seen by one trooper: squad-wide equipment plus
// the trooper's own, and a single location holding its armor.
func trooperView(u *Unit, t Trooper) *Unit {
	view := *u
	view.Troopers = nil
	view.Locations = []Location{{Name: "Trooper", Armor: t.Armor, Structure: 1}}
	view.Equipment = make([]Mounted, 0, len(u.Equipment)+len(t.Equipment))
	view.Equipment = append(view.Equipment, u.Equipment...)
	view.Equipment = append(view.Equipment, t.Equipment...)
	return &view
}

func troopersIdentical(ts []Trooper) bool {
	for i := 1; i < len(ts); i++ {
		if !reflect.DeepEqual(ts[i], ts[0]) {
			return false
		}
	}
	return true
}

// SquadFactor is the multiplier applied to the average trooper BV of a
// squad of n.
func SquadFactor(n int) float64 {
	return (0.9 + 0.1*float64(n)) * float64(n)
}

// computeSquad runs the pipeline per trooper, averages the unrounded trooper
// values and scales the average by squad size. Identical troopers are
// computed once.
func computeSquad(v Variant, u *Unit) Result {
	n := len(u.Troopers)
	same := troopersIdentical(u.Troopers)

	var rep Report
	var first, sum Accumulator
	values := make([]float64, n)
	for i, t := range u.Troopers {
		if same && i > 0 {
			values[i] = values[0]
			sum.Defensive += first.Defensive
			sum.Offensive += first.Offensive
			continue
		}
		prefix := fmt.Sprintf("Trooper %d: ", i+1)
		acc, r := run(v, trooperView(u, t), Accumulator{}, prefix)
		acc.Base = acc.Defensive + acc.Offensive
		values[i] = acc.Base
		if i == 0 {
			first = acc
		}
		sum.Defensive += acc.Defensive
		sum.Offensive += acc.Offensive
		rep = rep.Append(r.Lines()...)
		rep = rep.Append(line(prefix+"Battle value", num(acc.Defensive)+" + "+num(acc.Offensive), acc.Base))
	}
	if same && n > 1 {
		rep = rep.Append(note("Identical troopers", fmt.Sprintf("trooper 1 x %d", n)))
	}

	var total float64
	for _, x := range values {
		total += x
	}
	avg := total / float64(n)
	factor := SquadFactor(n)
	base := avg * factor
	rep = rep.Append(
		line("Average trooper battle value", fmt.Sprintf("%s / %d", num(total), n), avg),
		line("Squad factor", fmt.Sprintf("(0.9 + 0.1 x %d) x %d", n, n), factor),
		line("Base battle value", times(avg, factor), base),
	)

	f := v.FinalModifier(u)
	rep = rep.Append(f.Lines...)
	final := base * f.Value
	bv := roundBV(final)
	rep = rep.Append(Line{Label: "Battle value", Calculation: num(final), Result: fmt.Sprint(bv)})

	acc := Accumulator{
		Defensive:       sum.Defensive / float64(n),
		Offensive:       sum.Offensive / float64(n),
		Base:            base,
		DefensiveFactor: first.DefensiveFactor,
		SpeedFactor:     first.SpeedFactor,
	}
	res := newResult(u, acc, bv, rep)
	res.Troopers = values
	return res
}
