package bv

import (
	"fmt"
)

// Step is the contribution of one hook: an additive term or a multiplier,
// together with the report lines that explain it.
type Step struct {
	Value float64
	Lines []Line
}

// WeaponStep is the offensive contribution of weapons, ammunition and
// offensive equipment.
type WeaponStep struct {
	Value          float64
	HeatEfficiency float64
	HeatUsed       float64
	HeatExceeded   bool
	Arcs           *ArcAssignment
	Lines          []Line
}

// Variant supplies the rules of one unit category. Every hook is required;
// shared behaviour lives in plain helper functions the variants call.
type Variant interface {
	Kind() Kind
	Armor(u *Unit) Step
	Structure(u *Unit) Step
	DefensiveEquipment(u *Unit) Step
	ExplosiveEquipment(u *Unit) Step
	// DefensiveFloor is the minimum defensive value before modifiers.
	DefensiveFloor() float64
	TypeModifier(u *Unit) Step
	Weapons(u *Unit) WeaponStep
	Weight(u *Unit) Step
	// DefensiveFactor is the movement (TMM) multiplier on defence.
	DefensiveFactor(u *Unit) Step
	// SpeedFactor is the movement multiplier on offence.
	SpeedFactor(u *Unit) Step
	OffensiveTypeModifier(u *Unit) Step
	FinalModifier(u *Unit) Step
}

// Accumulator is the running state of one calculation. Each pipeline stage
// takes it by value and returns the updated copy.
type Accumulator struct {
	Defensive       float64
	Offensive       float64
	Base            float64
	HeatEfficiency  float64
	HeatSum         float64
	HeatExceeded    bool
	DefensiveFactor float64
	SpeedFactor     float64
	Arcs            *ArcAssignment
}

// Result is the outcome of a calculation.
type Result struct {
	Unit            string         `json:"unit"`
	Kind            Kind           `json:"kind"`
	BV              int            `json:"bv"`
	Defensive       float64        `json:"defensive"`
	Offensive       float64        `json:"offensive"`
	Base            float64        `json:"base"`
	HeatEfficiency  float64        `json:"heatEfficiency"`
	HeatUsed        float64        `json:"heatUsed"`
	HeatExceeded    bool           `json:"heatExceeded"`
	DefensiveFactor float64        `json:"defensiveFactor"`
	SpeedFactor     float64        `json:"speedFactor"`
	Troopers        []float64      `json:"troopers,omitempty"`
	Arcs            *ArcAssignment `json:"arcs,omitempty"`
	Report          Report         `json:"report"`
}

type stage func(v Variant, u *Unit, acc Accumulator) (Accumulator, []Line)

// pipeline is the fixed order of a calculation, summarize excluded.
var pipeline = []stage{
	processArmor,
	processStructure,
	processDefensiveEquipment,
	processExplosiveEquipment,
	processTypeModifier,
	processWeapons,
	processWeight,
	processSpeedFactor,
	processOffensiveTypeModifier,
}

// VariantFor returns the variant that scores units of kind k.
func VariantFor(k Kind) (Variant, error) {
	switch k {
	case KindMek:
		return mekVariant{}, nil
	case KindVehicle:
		return vehicleVariant{}, nil
	case KindBattleArmor:
		return battleArmorVariant{}, nil
	case KindInfantry:
		return infantryVariant{}, nil
	case KindAeroFighter:
		return fighterVariant{}, nil
	case KindDropShip, KindJumpShip, KindWarShip:
		return largeCraftVariant{kind: k}, nil
	case KindBuilding:
		return buildingVariant{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
}

// Compute scores u with the variant for its kind.
func Compute(u *Unit) (Result, error) {
	if u == nil {
		return Result{}, fmt.Errorf("%w: nil unit", ErrNoLocations)
	}
	v, err := VariantFor(u.Kind)
	if err != nil {
		return Result{}, err
	}
	return ComputeWith(v, u)
}

// ComputeWith scores u with an explicit variant. Handing a unit to the wrong
// variant is an error, never a silent miscalculation.
func ComputeWith(v Variant, u *Unit) (Result, error) {
	if u == nil {
		return Result{}, fmt.Errorf("%w: nil unit", ErrNoLocations)
	}
	if v == nil {
		return Result{}, fmt.Errorf("%w: nil variant", ErrVariantMismatch)
	}
	if v.Kind() != u.Kind {
		return Result{}, fmt.Errorf("%w: %s variant for %s unit", ErrVariantMismatch, v.Kind(), u.Kind)
	}
	if err := validate(u); err != nil {
		return Result{}, err
	}
	if u.Kind == KindBattleArmor {
		return computeSquad(v, u), nil
	}

	acc, rep := run(v, u, Accumulator{}, "")
	acc, bv, lines := summarize(v, u, acc)
	rep = rep.Append(lines...)
	return newResult(u, acc, bv, rep), nil
}

func validate(u *Unit) error {
	switch u.Kind {
	case KindBuilding:
		return nil
	case KindBattleArmor:
		if len(u.Troopers) == 0 {
			return fmt.Errorf("%w: battle armor %q has no troopers", ErrNoLocations, u.Name)
		}
	case KindInfantry:
		if u.Infantry == nil {
			return fmt.Errorf("%w: infantry %q has no platoon data", ErrNoLocations, u.Name)
		}
	default:
		if len(u.Locations) == 0 {
			return fmt.Errorf("%w: %q", ErrNoLocations, u.Name)
		}
	}
	return nil
}

// run folds the pipeline over a fresh report. prefix labels the lines of
// one battle armor trooper.
func run(v Variant, u *Unit, acc Accumulator, prefix string) (Accumulator, Report) {
	var rep Report
	for _, s := range pipeline {
		var lines []Line
		acc, lines = s(v, u, acc)
		if prefix != "" {
			for i := range lines {
				lines[i].Label = prefix + lines[i].Label
			}
		}
		rep = rep.Append(lines...)
	}
	return acc, rep
}

func processArmor(v Variant, u *Unit, acc Accumulator) (Accumulator, []Line) {
	s := v.Armor(u)
	acc.Defensive += s.Value
	return acc, s.Lines
}

func processStructure(v Variant, u *Unit, acc Accumulator) (Accumulator, []Line) {
	s := v.Structure(u)
	acc.Defensive += s.Value
	return acc, s.Lines
}

func processDefensiveEquipment(v Variant, u *Unit, acc Accumulator) (Accumulator, []Line) {
	s := v.DefensiveEquipment(u)
	acc.Defensive += s.Value
	return acc, s.Lines
}

func processExplosiveEquipment(v Variant, u *Unit, acc Accumulator) (Accumulator, []Line) {
	s := v.ExplosiveEquipment(u)
	acc.Defensive -= s.Value
	return acc, s.Lines
}

func processTypeModifier(v Variant, u *Unit, acc Accumulator) (Accumulator, []Line) {
	var lines []Line
	if floor := v.DefensiveFloor(); acc.Defensive < floor {
		lines = append(lines, line("Defensive value below minimum", num(acc.Defensive)+" -> "+num(floor), floor))
		acc.Defensive = floor
	}
	s := v.TypeModifier(u)
	lines = append(lines, s.Lines...)
	acc.Defensive *= s.Value
	lines = append(lines, line("Defensive value", "", acc.Defensive))
	return acc, lines
}

func processWeapons(v Variant, u *Unit, acc Accumulator) (Accumulator, []Line) {
	w := v.Weapons(u)
	acc.Offensive += w.Value
	acc.HeatEfficiency = w.HeatEfficiency
	acc.HeatSum = w.HeatUsed
	acc.HeatExceeded = w.HeatExceeded
	acc.Arcs = w.Arcs
	return acc, w.Lines
}

func processWeight(v Variant, u *Unit, acc Accumulator) (Accumulator, []Line) {
	s := v.Weight(u)
	acc.Offensive += s.Value
	return acc, s.Lines
}

func processSpeedFactor(v Variant, u *Unit, acc Accumulator) (Accumulator, []Line) {
	d := v.DefensiveFactor(u)
	acc.DefensiveFactor = d.Value
	acc.Defensive *= d.Value
	lines := append([]Line{}, d.Lines...)
	lines = append(lines, line("Defensive battle rating", "", acc.Defensive))

	s := v.SpeedFactor(u)
	acc.SpeedFactor = s.Value
	acc.Offensive *= s.Value
	lines = append(lines, s.Lines...)
	return acc, lines
}

func processOffensiveTypeModifier(v Variant, u *Unit, acc Accumulator) (Accumulator, []Line) {
	s := v.OffensiveTypeModifier(u)
	acc.Offensive *= s.Value
	lines := append([]Line{}, s.Lines...)
	lines = append(lines, line("Offensive battle rating", "", acc.Offensive))
	return acc, lines
}

// summarize combines defence and offence, applies the final modifier and
// rounds. This is the only place a calculation rounds.
func summarize(v Variant, u *Unit, acc Accumulator) (Accumulator, int, []Line) {
	acc.Base = acc.Defensive + acc.Offensive
	lines := []Line{line("Base battle value", num(acc.Defensive)+" + "+num(acc.Offensive), acc.Base)}
	f := v.FinalModifier(u)
	lines = append(lines, f.Lines...)
	total := acc.Base * f.Value
	bv := roundBV(total)
	lines = append(lines, Line{Label: "Battle value", Calculation: num(total), Result: fmt.Sprint(bv)})
	return acc, bv, lines
}

func newResult(u *Unit, acc Accumulator, bv int, rep Report) Result {
	return Result{
		Unit:            u.Name,
		Kind:            u.Kind,
		BV:              bv,
		Defensive:       acc.Defensive,
		Offensive:       acc.Offensive,
		Base:            acc.Base,
		HeatEfficiency:  acc.HeatEfficiency,
		HeatUsed:        acc.HeatSum,
		HeatExceeded:    acc.HeatExceeded,
		DefensiveFactor: acc.DefensiveFactor,
		SpeedFactor:     acc.SpeedFactor,
		Arcs:            acc.Arcs,
		Report:          rep,
	}
}
