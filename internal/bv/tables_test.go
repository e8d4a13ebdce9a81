package bv

import (
	"errors"
	"math"
	"testing"
)

func TestTMM(t *testing.T) {
	tests := []struct {
		mp   int
		want int
	}{
		{0, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}, {6, 2}, {7, 3}, {9, 3}, {10, 4},
		{12, 4}, {13, 5}, {17, 5}, {18, 6}, {24, 6}, {25, 7},
	}
	for _, tt := range tests {
		got := TMM(tt.mp)
		if got != tt.want {
			t.Errorf("TMM(%d) = %d, want %d", tt.mp, got, tt.want)
		}
	}
}

func TestSpeedFactor(t *testing.T) {
	tests := []struct {
		run, jump, umu int
		want           float64
	}{
		{6, 0, 0, 1.12}, // Archer
		{5, 0, 0, 1.0},
		{8, 0, 0, 1.37},
		{6, 6, 0, 1.50}, // speed MP 9
		{4, 0, 0, 0.88},
		{3, 0, 6, 1.12}, // UMU beats running
	}
	for _, tt := range tests {
		got := SpeedFactor(SpeedFactorMP(tt.run, tt.jump, tt.umu))
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SpeedFactor(%d,%d,%d) = %.4f, want %.2f", tt.run, tt.jump, tt.umu, got, tt.want)
		}
	}
}

func TestMovementHeat(t *testing.T) {
	tests := []struct {
		run, jump, umu int
		want           int
	}{
		{6, 0, 0, 2}, // running only
		{6, 4, 0, 4}, // jump 4 > run heat
		{6, 2, 0, 3}, // jump 2 -> min 3
		{0, 0, 3, 1}, // submerged
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		got := MovementHeat(tt.run, tt.jump, tt.umu)
		if got != tt.want {
			t.Errorf("MovementHeat(%d,%d,%d) = %d, want %d", tt.run, tt.jump, tt.umu, got, tt.want)
		}
	}
}

func TestSkillMultiplier(t *testing.T) {
	tests := []struct {
		g, p int
		want float64
	}{
		{4, 5, 1.00},
		{3, 4, 1.32},
		{0, 0, 2.42},
		{7, 7, 0.72},
	}
	for _, tt := range tests {
		got, err := SkillMultiplier(tt.g, tt.p)
		if err != nil {
			t.Fatalf("SkillMultiplier(%d,%d): %v", tt.g, tt.p, err)
		}
		if got != tt.want {
			t.Errorf("SkillMultiplier(%d,%d) = %.2f, want %.2f", tt.g, tt.p, got, tt.want)
		}
	}

	if _, err := SkillMultiplier(8, 5); !errors.Is(err, ErrCallerMisuse) {
		t.Errorf("out of range gunnery: err = %v, want caller misuse", err)
	}
	if _, err := SkillMultiplier(4, -1); !errors.Is(err, ErrSkillRange) {
		t.Errorf("out of range piloting: err = %v, want ErrSkillRange", err)
	}
}

func TestAdjustForSkill(t *testing.T) {
	got, err := AdjustForSkill(1000, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1320 {
		t.Errorf("AdjustForSkill(1000,3,4) = %d, want 1320", got)
	}
}

func TestRoundBV(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{2.5, 3},
		{2.49, 2},
		{270.4, 270},
		{-3, 0},
		{0, 0},
	}
	for _, tt := range tests {
		got := roundBV(tt.x)
		if got != tt.want {
			t.Errorf("roundBV(%v) = %d, want %d", tt.x, got, tt.want)
		}
		if again := roundBV(float64(got)); again != got {
			t.Errorf("roundBV not idempotent for %v: %d then %d", tt.x, got, again)
		}
	}
}

func TestEngineStructureMultiplier(t *testing.T) {
	tests := []struct {
		e    Engine
		clan bool
		want float64
	}{
		{EngineStandard, false, 1},
		{EngineXL, false, 0.5},
		{EngineXL, true, 0.75},
		{EngineLight, false, 0.75},
		{EngineXXL, false, 0.25},
		{EngineXXL, true, 0.5},
	}
	for _, tt := range tests {
		if got := engineStructureMultiplier(tt.e, tt.clan); got != tt.want {
			t.Errorf("engineStructureMultiplier(%s, clan=%v) = %v, want %v", tt.e, tt.clan, got, tt.want)
		}
	}
}
