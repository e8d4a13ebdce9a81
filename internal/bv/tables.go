package bv

import "math"

// TMM calculates Target Movement Modifier from MP
func TMM(mp int) int {
	switch {
	case mp <= 2:
		return 0
	case mp <= 4:
		return 1
	case mp <= 6:
		return 2
	case mp <= 9:
		return 3
	case mp <= 12:
		return 4
	case mp <= 17:
		return 5
	case mp <= 24:
		return 6
	default:
		return 7
	}
}

// TMMFactor returns 1 + TMM/10
func TMMFactor(tmm int) float64 {
	return 1.0 + float64(tmm)/10.0
}

// SpeedFactorMP is the movement used for the offensive speed factor: run
// plus half the jump, or UMU if that is better.
func SpeedFactorMP(run, jump, umu int) int {
	mp := run + int(math.Ceil(float64(jump)/2.0))
	if umu > mp {
		mp = umu
	}
	return mp
}

// SpeedFactor is the offensive multiplier for a given speed factor MP,
// rounded to two decimals.
func SpeedFactor(mp int) float64 {
	base := 1.0 + float64(mp-5)/10.0
	if base < 0.1 {
		base = 0.1
	}
	sf := math.Pow(base, 1.2)
	return math.Round(sf*100) / 100
}

// MovementHeat returns the movement heat for BV calculation
func MovementHeat(runMP, jumpMP, umuMP int) int {
	heat := 0
	if runMP > 0 {
		heat = 2
	}
	if umuMP > 0 && heat < 1 {
		heat = 1
	}
	if jumpMP > 0 {
		jumpHeat := jumpMP
		if jumpHeat < 3 {
			jumpHeat = 3
		}
		if jumpHeat > heat {
			heat = jumpHeat
		}
	}
	return heat
}

// engineStructureMultiplier scales Mek internal structure BV by how
// vulnerable the engine is.
func engineStructureMultiplier(e Engine, clan bool) float64 {
	switch e {
	case EngineXL:
		if clan {
			return 0.75
		}
		return 0.5
	case EngineXXL:
		if clan {
			return 0.5
		}
		return 0.25
	case EngineLight:
		return 0.75
	default:
		return 1.0
	}
}

func gyroMultiplier(g Gyro) float64 {
	switch g {
	case GyroHeavyDuty:
		return 1.0
	case GyroNone:
		return 0
	default:
		return 0.5
	}
}

func cockpitMultiplier(c Cockpit) float64 {
	switch c {
	case CockpitSmall, CockpitTorsoMounted, CockpitDroneOS:
		return 0.95
	case CockpitInterface:
		return 1.3
	default:
		return 1.0
	}
}

// skillTable is indexed [gunnery][piloting].
var skillTable = [8][8]float64{
	{2.42, 2.31, 2.21, 2.10, 1.93, 1.75, 1.68, 1.59},
	{2.21, 2.11, 2.02, 1.92, 1.76, 1.60, 1.54, 1.46},
	{1.93, 1.85, 1.76, 1.68, 1.54, 1.40, 1.35, 1.28},
	{1.66, 1.58, 1.51, 1.44, 1.32, 1.20, 1.16, 1.10},
	{1.38, 1.32, 1.26, 1.20, 1.10, 1.00, 0.95, 0.90},
	{1.31, 1.19, 1.13, 1.08, 0.99, 0.90, 0.86, 0.81},
	{1.24, 1.12, 1.07, 1.02, 0.94, 0.85, 0.81, 0.77},
	{1.17, 1.06, 1.01, 0.96, 0.88, 0.80, 0.76, 0.72},
}

// SkillMultiplier returns the crew skill multiplier; 4/5 is 1.0.
func SkillMultiplier(gunnery, piloting int) (float64, error) {
	if gunnery < 0 || gunnery > 7 || piloting < 0 || piloting > 7 {
		return 0, ErrSkillRange
	}
	return skillTable[gunnery][piloting], nil
}

// AdjustForSkill scales a final BV by crew skill, rounding once.
func AdjustForSkill(bv, gunnery, piloting int) (int, error) {
	m, err := SkillMultiplier(gunnery, piloting)
	if err != nil {
		return 0, err
	}
	return roundBV(float64(bv) * m), nil
}

// roundBV is the single rounding step of a calculation.
func roundBV(x float64) int {
	if x <= 0 {
		return 0
	}
	return int(math.Round(x))
}
