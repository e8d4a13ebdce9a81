package equipment

import "github.com/JustinWhittecar/bvcalc/internal/bv"

type weaponClass int

const (
	energy weaponClass = iota
	ballistic
	missile
)

type weaponRow struct {
	internal string
	name     string
	class    weaponClass
	bv       float64
	heat     float64
	slots    int
	tons     float64
}

var innerSphereWeapons = []weaponRow{
	{"ISSmallLaser", "Small Laser", energy, 9, 1, 1, 0.5},
	{"ISMediumLaser", "Medium Laser", energy, 46, 3, 1, 1},
	{"ISLargeLaser", "Large Laser", energy, 123, 8, 2, 5},
	{"ISERSmallLaser", "ER Small Laser", energy, 17, 2, 1, 0.5},
	{"ISERMediumLaser", "ER Medium Laser", energy, 62, 5, 1, 1},
	{"ISERLargeLaser", "ER Large Laser", energy, 163, 12, 2, 5},
	{"ISSmallPulseLaser", "Small Pulse Laser", energy, 12, 2, 1, 1},
	{"ISMediumPulseLaser", "Medium Pulse Laser", energy, 48, 4, 1, 2},
	{"ISLargePulseLaser", "Large Pulse Laser", energy, 119, 10, 2, 7},
	{"ISSmallXPulseLaser", "Small X-Pulse Laser", energy, 21, 3, 1, 1},
	{"ISMediumXPulseLaser", "Medium X-Pulse Laser", energy, 71, 6, 1, 2},
	{"ISLargeXPulseLaser", "Large X-Pulse Laser", energy, 178, 14, 2, 7},
	{"ISPPC", "PPC", energy, 176, 10, 3, 7},
	{"ISERPPC", "ER PPC", energy, 229, 15, 3, 7},
	{"ISLightPPC", "Light PPC", energy, 88, 5, 2, 3},
	{"ISHeavyPPC", "Heavy PPC", energy, 317, 15, 4, 10},
	{"ISSNPPC", "Snub-Nose PPC", energy, 165, 10, 2, 6},
	{"ISFlamer", "Flamer", energy, 6, 3, 1, 1},
	{"ISERFlamer", "ER Flamer", energy, 16, 4, 1, 1},
	{"ISPlasmaRifle", "Plasma Rifle", ballistic, 210, 10, 2, 6},

	{"ISMachine Gun", "Machine Gun", ballistic, 5, 0, 1, 0.5},
	{"ISLightMachineGun", "Light Machine Gun", ballistic, 5, 0, 1, 0.5},
	{"ISHeavyMachineGun", "Heavy Machine Gun", ballistic, 6, 0, 1, 1},
	{"ISAC2", "AC/2", ballistic, 37, 1, 1, 6},
	{"ISAC5", "AC/5", ballistic, 70, 1, 4, 8},
	{"ISAC10", "AC/10", ballistic, 123, 3, 7, 12},
	{"ISAC20", "AC/20", ballistic, 178, 7, 10, 14},
	{"ISLAC2", "Light AC/2", ballistic, 30, 1, 1, 4},
	{"ISLAC5", "Light AC/5", ballistic, 62, 1, 2, 5},
	{"ISLBXAC2", "LB 2-X AC", ballistic, 42, 1, 4, 6},
	{"ISLBXAC5", "LB 5-X AC", ballistic, 83, 1, 5, 8},
	{"ISLBXAC10", "LB 10-X AC", ballistic, 148, 2, 6, 11},
	{"ISLBXAC20", "LB 20-X AC", ballistic, 237, 6, 11, 14},
	{"ISUltraAC2", "Ultra AC/2", ballistic, 56, 1, 3, 7},
	{"ISUltraAC5", "Ultra AC/5", ballistic, 112, 1, 5, 9},
	{"ISUltraAC10", "Ultra AC/10", ballistic, 210, 4, 7, 13},
	{"ISUltraAC20", "Ultra AC/20", ballistic, 281, 8, 10, 15},
	{"ISRotaryAC2", "Rotary AC/2", ballistic, 118, 1, 3, 8},
	{"ISRotaryAC5", "Rotary AC/5", ballistic, 247, 1, 6, 10},
	{"ISGaussRifle", "Gauss Rifle", ballistic, 320, 1, 7, 15},
	{"ISLightGaussRifle", "Light Gauss Rifle", ballistic, 159, 1, 5, 12},
	{"ISHeavyGaussRifle", "Heavy Gauss Rifle", ballistic, 346, 2, 11, 18},

	{"ISLRM5", "LRM 5", missile, 45, 2, 1, 2},
	{"ISLRM10", "LRM 10", missile, 90, 4, 2, 5},
	{"ISLRM15", "LRM 15", missile, 136, 5, 3, 7},
	{"ISLRM20", "LRM 20", missile, 181, 6, 5, 10},
	{"ISSRM2", "SRM 2", missile, 21, 2, 1, 1},
	{"ISSRM4", "SRM 4", missile, 39, 3, 1, 2},
	{"ISSRM6", "SRM 6", missile, 59, 4, 2, 3},
	{"ISStreakSRM2", "Streak SRM 2", missile, 30, 2, 1, 1.5},
	{"ISStreakSRM4", "Streak SRM 4", missile, 59, 3, 1, 3},
	{"ISStreakSRM6", "Streak SRM 6", missile, 89, 4, 2, 4.5},
	{"ISMRM10", "MRM 10", missile, 56, 4, 2, 3},
	{"ISMRM20", "MRM 20", missile, 112, 6, 3, 7},
	{"ISMRM30", "MRM 30", missile, 168, 10, 5, 10},
	{"ISMRM40", "MRM 40", missile, 224, 12, 7, 12},
	{"ISMML3", "MML 3", missile, 29, 2, 2, 1.5},
	{"ISMML5", "MML 5", missile, 45, 3, 3, 3},
	{"ISMML7", "MML 7", missile, 67, 4, 4, 4.5},
	{"ISMML9", "MML 9", missile, 86, 5, 5, 6},
	{"ISRocketLauncher10", "Rocket Launcher 10", missile, 18, 3, 1, 0.5},
	{"ISRocketLauncher15", "Rocket Launcher 15", missile, 23, 4, 2, 1},
	{"ISRocketLauncher20", "Rocket Launcher 20", missile, 24, 5, 3, 1.5},
}

var clanWeapons = []weaponRow{
	{"CLERMicroLaser", "ER Micro Laser", energy, 7, 1, 1, 0.25},
	{"CLERSmallLaser", "ER Small Laser", energy, 31, 2, 1, 0.5},
	{"CLERMediumLaser", "ER Medium Laser", energy, 108, 5, 1, 1},
	{"CLERLargeLaser", "ER Large Laser", energy, 248, 12, 1, 4},
	{"CLMicroPulseLaser", "Micro Pulse Laser", energy, 12, 1, 1, 0.5},
	{"CLSmallPulseLaser", "Small Pulse Laser", energy, 24, 2, 1, 1},
	{"CLMediumPulseLaser", "Medium Pulse Laser", energy, 111, 4, 1, 2},
	{"CLLargePulseLaser", "Large Pulse Laser", energy, 265, 10, 2, 6},
	{"CLHeavySmallLaser", "Heavy Small Laser", energy, 15, 3, 1, 0.5},
	{"CLHeavyMediumLaser", "Heavy Medium Laser", energy, 76, 7, 2, 1},
	{"CLHeavyLargeLaser", "Heavy Large Laser", energy, 244, 18, 3, 4},
	{"CLERPPC", "ER PPC", energy, 412, 15, 2, 6},
	{"CLFlamer", "Flamer", energy, 6, 3, 1, 0.5},
	{"CLERFlamer", "ER Flamer", energy, 16, 4, 1, 1},
	{"CLPlasmaCannon", "Plasma Cannon", ballistic, 170, 7, 1, 3},

	{"CLMachine Gun", "Machine Gun", ballistic, 5, 0, 1, 0.25},
	{"CLLightMachineGun", "Light Machine Gun", ballistic, 5, 0, 1, 0.25},
	{"CLHeavyMachineGun", "Heavy Machine Gun", ballistic, 6, 0, 1, 0.5},
	{"CLLBXAC2", "LB 2-X AC", ballistic, 47, 1, 3, 5},
	{"CLLBXAC5", "LB 5-X AC", ballistic, 93, 1, 4, 7},
	{"CLLBXAC10", "LB 10-X AC", ballistic, 148, 2, 5, 10},
	{"CLLBXAC20", "LB 20-X AC", ballistic, 237, 6, 9, 12},
	{"CLUltraAC2", "Ultra AC/2", ballistic, 62, 1, 2, 5},
	{"CLUltraAC5", "Ultra AC/5", ballistic, 122, 1, 3, 7},
	{"CLUltraAC10", "Ultra AC/10", ballistic, 210, 3, 4, 10},
	{"CLUltraAC20", "Ultra AC/20", ballistic, 335, 7, 8, 12},
	{"CLGaussRifle", "Gauss Rifle", ballistic, 320, 1, 6, 12},
	{"CLAPGaussRifle", "AP Gauss Rifle", ballistic, 21, 1, 1, 0.5},
	{"CLHAG20", "HAG/20", ballistic, 267, 4, 6, 10},
	{"CLHAG30", "HAG/30", ballistic, 401, 6, 8, 13},
	{"CLHAG40", "HAG/40", ballistic, 535, 8, 10, 16},

	{"CLLRM5", "LRM 5", missile, 55, 2, 1, 1},
	{"CLLRM10", "LRM 10", missile, 109, 4, 1, 2.5},
	{"CLLRM15", "LRM 15", missile, 164, 5, 2, 3.5},
	{"CLLRM20", "LRM 20", missile, 220, 6, 4, 5},
	{"CLSRM2", "SRM 2", missile, 21, 2, 1, 0.5},
	{"CLSRM4", "SRM 4", missile, 39, 3, 1, 1},
	{"CLSRM6", "SRM 6", missile, 59, 4, 1, 1.5},
	{"CLStreakSRM2", "Streak SRM 2", missile, 40, 2, 1, 1},
	{"CLStreakSRM4", "Streak SRM 4", missile, 79, 3, 1, 2},
	{"CLStreakSRM6", "Streak SRM 6", missile, 118, 4, 2, 3},
	{"CLStreakLRM5", "Streak LRM 5", missile, 87, 2, 1, 2},
	{"CLStreakLRM10", "Streak LRM 10", missile, 173, 4, 2, 5},
	{"CLStreakLRM15", "Streak LRM 15", missile, 260, 5, 3, 7},
	{"CLStreakLRM20", "Streak LRM 20", missile, 346, 6, 5, 10},
	{"CLATM3", "ATM 3", missile, 53, 2, 2, 1.5},
	{"CLATM6", "ATM 6", missile, 105, 4, 3, 3.5},
	{"CLATM9", "ATM 9", missile, 147, 6, 4, 5},
	{"CLATM12", "ATM 12", missile, 212, 8, 5, 7},
	{"CLiATM3", "Improved ATM 3", missile, 83, 2, 2, 1.5},
	{"CLiATM6", "Improved ATM 6", missile, 165, 4, 3, 3.5},
	{"CLiATM9", "Improved ATM 9", missile, 231, 6, 4, 5},
	{"CLiATM12", "Improved ATM 12", missile, 317, 8, 5, 7},
}

// builtinItems returns the built-in catalog contents.
func builtinItems() []Item {
	var items []Item
	for _, w := range innerSphereWeapons {
		items = append(items, w.item(false))
	}
	for _, w := range clanWeapons {
		items = append(items, w.item(true))
	}

	items = append(items,
		Item{Name: "AMS", InternalName: "ISAntiMissileSystem", Category: bv.CategoryWeapon, Type: bv.EquipAMS,
			BV: 32, Heat: 1, Slots: 1, Tonnage: 0.5, AmmoKey: "ams"},
		Item{Name: "AMS", InternalName: "CLAntiMissileSystem", Clan: true, Category: bv.CategoryWeapon, Type: bv.EquipAMS,
			BV: 32, Heat: 1, Slots: 1, Tonnage: 0.5, AmmoKey: "ams"},
		Item{Name: "Laser AMS", InternalName: "ISLaserAntiMissileSystem", Category: bv.CategoryWeapon, Type: bv.EquipLaserAMS,
			BV: 45, Heat: 7, Slots: 2, Tonnage: 1.5},
		Item{Name: "Laser AMS", InternalName: "CLLaserAntiMissileSystem", Clan: true, Category: bv.CategoryWeapon, Type: bv.EquipLaserAMS,
			BV: 45, Heat: 5, Slots: 1, Tonnage: 1},

		// Physical weapons: damage x BV factor.
		Item{Name: "Hatchet", InternalName: "Hatchet", Category: bv.CategoryPhysical, BV: 1.5, PerTons: 5},
		Item{Name: "Sword", InternalName: "Sword", Category: bv.CategoryPhysical, BV: 1.725, PerTons: 10, Bonus: 1},
		Item{Name: "Mace", InternalName: "Mace", Category: bv.CategoryPhysical, BV: 1, PerTons: 4},
		Item{Name: "Retractable Blade", InternalName: "ISRetractableBlade", Category: bv.CategoryPhysical, BV: 1.725, PerTons: 10},
		Item{Name: "Claws", InternalName: "ISClaw", Category: bv.CategoryPhysical, BV: 1.275, PerTons: 7},
	)
	return items
}

func (w weaponRow) item(clan bool) Item {
	it := Item{
		Name:         w.name,
		InternalName: w.internal,
		Clan:         clan,
		Category:     bv.CategoryWeapon,
		BV:           w.bv,
		Heat:         w.heat,
		Slots:        w.slots,
		Tonnage:      w.tons,
		DirectFire:   w.class != missile,
	}
	if w.class != energy {
		it.AmmoKey = AmmoKey(w.name)
	}
	flagWeapon(&it)
	return it
}
