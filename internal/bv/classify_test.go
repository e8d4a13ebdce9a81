package bv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeaponHeat(t *testing.T) {
	tests := []struct {
		name string
		m    Mounted
		want float64
	}{
		{"plain", Mounted{Heat: 3}, 3},
		{"ultra", Mounted{Heat: 1, Ultra: true}, 2},
		{"rotary", Mounted{Heat: 1, Rotary: true}, 6},
		{"streak", Mounted{Heat: 3, Streak: true}, 2},
		{"one-shot", Mounted{Heat: 4, OneShot: true}, 1},
		{"pulse module", Mounted{Heat: 3, PulseModule: true}, 5},
		{"insulator", Mounted{Heat: 1, Insulator: true}, 1},
		{"insulated large laser", Mounted{Heat: 8, Insulator: true}, 7},
		{"capacitor", Mounted{Heat: 10, Capacitor: true}, 15},
	}
	for _, tt := range tests {
		if got := WeaponHeat(&tt.m); got != tt.want {
			t.Errorf("%s: WeaponHeat = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWeaponBV(t *testing.T) {
	plain := &Unit{}
	withTC := &Unit{Equipment: []Mounted{{Name: "Targeting Computer", Category: CategoryEquipment, Type: EquipTargetingComp}}}

	assert.InDelta(t, 12, WeaponBV(plain, &Mounted{BV: 10, Artemis: "iv"}), 1e-9)
	assert.InDelta(t, 13, WeaponBV(plain, &Mounted{BV: 10, Artemis: "v"}), 1e-9)
	assert.InDelta(t, 11.5, WeaponBV(plain, &Mounted{BV: 10, Apollo: true}), 1e-9)
	assert.InDelta(t, 46, WeaponBV(plain, &Mounted{BV: 46, DirectFire: true}), 1e-9)
	assert.InDelta(t, 57.5, WeaponBV(withTC, &Mounted{BV: 46, DirectFire: true}), 1e-9)
	assert.InDelta(t, 45, WeaponBV(withTC, &Mounted{BV: 45}), 1e-9)
}

func TestExplosiveness(t *testing.T) {
	assert.Equal(t, FullExplosive, Explosiveness(&Mounted{Category: CategoryAmmo, Explosive: true}))
	assert.Equal(t, ReducedExplosive, Explosiveness(&Mounted{Category: CategoryWeapon, Explosive: true}))
	assert.Equal(t, ReducedExplosive, Explosiveness(&Mounted{Category: CategoryEquipment, Type: EquipBlueShield}))
	assert.Equal(t, FullExplosive, Explosiveness(&Mounted{Category: CategoryEquipment, Explosive: true}))
	assert.Equal(t, NotExplosive, Explosiveness(&Mounted{Category: CategoryAmmo}))
}

func TestClassifier(t *testing.T) {
	ams := &Mounted{Category: CategoryWeapon, Type: EquipAMS}
	amsAmmo := &Mounted{Category: CategoryAmmo, AmmoKey: "ams"}
	laser := &Mounted{Category: CategoryWeapon}
	hatchet := &Mounted{Category: CategoryPhysical}
	ecm := &Mounted{Category: CategoryEquipment, Type: EquipECM}

	assert.False(t, IsOffensiveWeapon(ams))
	assert.True(t, IsAMS(ams))
	assert.True(t, IsDefensive(ams))
	assert.True(t, IsAMSAmmo(amsAmmo))
	assert.False(t, IsDefensive(amsAmmo))
	assert.True(t, IsOffensiveWeapon(laser))
	assert.True(t, IsOffensiveWeapon(hatchet))
	assert.False(t, IsOffensiveWeapon(ecm))
	assert.Equal(t, 61.0, DefensiveEquipmentBV(ecm))
	assert.Equal(t, 0.0, DefensiveEquipmentBV(laser))
}

func TestDefensiveEquipmentAMSAmmoCap(t *testing.T) {
	items := []Mounted{
		{Name: "AMS", Category: CategoryWeapon, Type: EquipAMS, BV: 32},
		{Name: "Guardian ECM Suite", Category: CategoryEquipment, Type: EquipECM},
		{Name: "IS AMS Ammo", Category: CategoryAmmo, Type: EquipAMS, AmmoKey: "ams", BV: 11},
		{Name: "IS AMS Ammo", Category: CategoryAmmo, Type: EquipAMS, AmmoKey: "ams", BV: 11},
	}
	assert.InDelta(t, 32+61+22, defensiveEquipmentStep(items).Value, 1e-9)

	for i := 0; i < 3; i++ {
		items = append(items, items[2])
	}
	// 5 tons of AMS ammo is capped at the AMS BV
	assert.InDelta(t, 32+61+32, defensiveEquipmentStep(items).Value, 1e-9)
}

func TestAmmoCap(t *testing.T) {
	lrm := Mounted{Name: "LRM 5", Category: CategoryWeapon, BV: 45, Heat: 2, AmmoKey: "lrm5"}
	ton := Mounted{Name: "IS Ammo LRM-5", Category: CategoryAmmo, BV: 6, AmmoKey: "lrm5", Explosive: true}
	orphan := Mounted{Name: "IS Ammo AC/20", Category: CategoryAmmo, BV: 22, AmmoKey: "ac20", Explosive: true}

	got, _ := ammoStep(&Unit{}, []Mounted{lrm, ton, ton})
	assert.InDelta(t, 12, got, 1e-9)

	items := []Mounted{lrm}
	for i := 0; i < 10; i++ {
		items = append(items, ton)
	}
	got, _ = ammoStep(&Unit{}, items)
	assert.InDelta(t, 45, got, 1e-9)

	got, lines := ammoStep(&Unit{}, []Mounted{lrm, orphan})
	assert.InDelta(t, 0, got, 1e-9)
	assert.Equal(t, "Ammo ac20", lines[0].Label)
}
