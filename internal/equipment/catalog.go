package equipment

import (
	"math"
	"sort"
	"strings"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
)

// Item is a catalog template for one kind of equipment.
type Item struct {
	Name         string
	InternalName string
	Clan         bool
	Category     bv.Category
	Type         bv.EquipType
	BV           float64
	Heat         float64
	Slots        int
	Tonnage      float64
	AmmoKey      string
	Explosive    bool

	Ultra      bool
	Rotary     bool
	Streak     bool
	OneShot    bool
	DirectFire bool

	// Physical weapons scale with the carrier's tonnage: damage is
	// ceil(tonnage/PerTons) + Bonus, and BV is damage x BV.
	PerTons float64
	Bonus   float64
}

// Mount turns the template into a mounted item. Tonnage is the carrying
// unit's tonnage and only matters for physical weapons.
func (it Item) Mount(loc string, slots []bv.Slot, tonnage float64) bv.Mounted {
	m := bv.Mounted{
		Name:       it.Name,
		Category:   it.Category,
		Type:       it.Type,
		Location:   loc,
		BV:         it.BV,
		Heat:       it.Heat,
		AmmoKey:    it.AmmoKey,
		Slots:      slots,
		Explosive:  it.Explosive,
		Ultra:      it.Ultra,
		Rotary:     it.Rotary,
		Streak:     it.Streak,
		OneShot:    it.OneShot,
		DirectFire: it.DirectFire,
	}
	if it.PerTons > 0 {
		dmg := math.Ceil(tonnage/it.PerTons) + it.Bonus
		m.BV = dmg * it.BV
	}
	return m
}

// Row is one record of the equipment table.
type Row struct {
	Name         string
	InternalName string
	Type         string
	BV           float64
	Heat         float64
	RackSize     int
	Tonnage      float64
	Slots        int
}

// Catalog resolves MegaMek equipment names to item templates. A Catalog is
// safe for concurrent reads once built.
type Catalog struct {
	byInternal map[string]*Item
	byName     map[string][]*Item
}

func New() *Catalog {
	return &Catalog{
		byInternal: make(map[string]*Item),
		byName:     make(map[string][]*Item),
	}
}

// Default returns a catalog holding the built-in weapon and equipment
// tables.
func Default() *Catalog {
	c := New()
	for _, it := range builtinItems() {
		c.Add(it)
	}
	return c
}

// Add registers an item, replacing any entry with the same internal name.
func (c *Catalog) Add(it Item) {
	p := &it
	if it.InternalName != "" {
		if old, ok := c.byInternal[it.InternalName]; ok {
			c.removeName(old)
		}
		c.byInternal[it.InternalName] = p
	}
	key := strings.ToLower(it.Name)
	c.byName[key] = append(c.byName[key], p)
}

func (c *Catalog) removeName(old *Item) {
	key := strings.ToLower(old.Name)
	items := c.byName[key]
	for i, it := range items {
		if it == old {
			c.byName[key] = append(items[:i:i], items[i+1:]...)
			return
		}
	}
}

// Len returns the number of distinct items.
func (c *Catalog) Len() int {
	n := 0
	for _, items := range c.byName {
		n += len(items)
	}
	return n
}

// Merge overlays rows from the equipment table. Known items take the row's
// BV, heat and weight; unknown rows become new entries.
func (c *Catalog) Merge(rows []Row) int {
	added := 0
	for _, r := range rows {
		if r.Name == "" {
			continue
		}
		if it, ok := c.byInternal[r.InternalName]; ok && r.InternalName != "" {
			it.BV = r.BV
			it.Heat = r.Heat
			if r.Tonnage > 0 {
				it.Tonnage = r.Tonnage
			}
			if r.Slots > 0 {
				it.Slots = r.Slots
			}
			continue
		}
		c.Add(rowItem(r))
		added++
	}
	return added
}

func rowItem(r Row) Item {
	clan := strings.HasPrefix(strings.ToLower(r.InternalName), "cl")
	it := Item{
		Name:         r.Name,
		InternalName: r.InternalName,
		Clan:         clan,
		Category:     bv.CategoryEquipment,
		BV:           r.BV,
		Heat:         r.Heat,
		Slots:        r.Slots,
		Tonnage:      r.Tonnage,
	}
	if it.Slots == 0 {
		it.Slots = 1
	}
	switch strings.ToLower(r.Type) {
	case "energy":
		it.Category = bv.CategoryWeapon
		it.DirectFire = true
	case "ballistic":
		it.Category = bv.CategoryWeapon
		it.DirectFire = true
		it.AmmoKey = AmmoKey(r.Name)
	case "missile", "artillery":
		it.Category = bv.CategoryWeapon
		it.AmmoKey = AmmoKey(r.Name)
	case "physical":
		it.Category = bv.CategoryPhysical
	}
	if it.Category == bv.CategoryWeapon {
		flagWeapon(&it)
	}
	return it
}

// flagWeapon derives heat modifiers from the weapon name.
func flagWeapon(it *Item) {
	n := strings.ToLower(it.Name)
	it.Ultra = strings.Contains(n, "ultra")
	it.Rotary = strings.Contains(n, "rotary")
	it.Streak = strings.Contains(n, "streak") || strings.Contains(n, "atm ")
	it.OneShot = strings.Contains(n, "rocket launcher") || strings.HasSuffix(n, "(os)")
	if strings.Contains(n, "gauss") || strings.Contains(n, "hag/") {
		it.Explosive = true
	}
}

// Lookup resolves a crit slot or weapon name. It tries the internal name,
// the display name, known aliases and then the name with tech prefixes
// removed. Ammunition and special equipment are recognised by pattern.
func (c *Catalog) Lookup(name string, clan bool) (Item, bool) {
	name, _ = CleanName(name)
	if name == "" {
		return Item{}, false
	}
	if it, ok := c.lookup(name, clan); ok {
		return it, true
	}
	if IsAmmoName(name) {
		return ammoItem(name)
	}
	if it, ok := specialItem(name, clan); ok {
		return it, true
	}
	return Item{}, false
}

func (c *Catalog) lookup(name string, clan bool) (Item, bool) {
	if it, ok := c.byInternal[name]; ok {
		return *it, true
	}
	if it, ok := c.byDisplay(name, clan); ok {
		return it, true
	}
	if alias, ok := aliases[name]; ok {
		return c.byDisplay(alias, clan || strings.HasPrefix(name, "CL"))
	}
	for _, p := range []struct {
		prefix string
		clan   bool
	}{
		{"Clan ", true}, {"CL ", true}, {"CL", true}, {"IS ", false}, {"IS", false},
	} {
		if rest, ok := strings.CutPrefix(name, p.prefix); ok && rest != "" {
			if it, ok := c.byDisplay(rest, p.clan); ok {
				return it, true
			}
		}
	}
	return Item{}, false
}

// byDisplay finds an item by display name, preferring the requested tech
// base.
func (c *Catalog) byDisplay(name string, clan bool) (Item, bool) {
	items := c.byName[strings.ToLower(name)]
	if len(items) == 0 {
		return Item{}, false
	}
	for _, it := range items {
		if it.Clan == clan {
			return *it, true
		}
	}
	return *items[0], true
}

// Search returns items whose display or internal name contains q, sorted
// by name with Inner Sphere entries first.
func (c *Catalog) Search(q string) []Item {
	q = strings.ToLower(strings.TrimSpace(q))
	var out []Item
	for _, items := range c.byName {
		for _, it := range items {
			if q == "" || strings.Contains(strings.ToLower(it.Name), q) ||
				strings.Contains(strings.ToLower(it.InternalName), q) {
				out = append(out, *it)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		if out[i].Clan != out[j].Clan {
			return !out[i].Clan
		}
		return out[i].InternalName < out[j].InternalName
	})
	return out
}

// CleanName strips the rear-mount and omnipod markers from a crit slot
// name and reports whether the item faces rear.
func CleanName(raw string) (string, bool) {
	n := strings.TrimSpace(raw)
	n = strings.TrimSuffix(n, " (omnipod)")
	rear := false
	if s, ok := strings.CutSuffix(n, "(R)"); ok {
		n = strings.TrimSpace(s)
		rear = true
	}
	return n, rear
}

func ammoItem(name string) (Item, bool) {
	perTon, ok := AmmoBV(name)
	if !ok {
		return Item{}, false
	}
	if IsHalfTon(name) {
		perTon /= 2
	}
	it := Item{
		Name:      name,
		Category:  bv.CategoryAmmo,
		BV:        perTon,
		Slots:     1,
		Tonnage:   1,
		AmmoKey:   AmmoKey(name),
		Explosive: IsExplosiveAmmo(name),
	}
	if IsAMSAmmo(name) {
		it.Type = bv.EquipAMS
	}
	return it, true
}

// aliases maps MegaMek internal names and alternate spellings to display
// names.
var aliases = map[string]string{
	"iATM 3": "Improved ATM 3", "iATM 6": "Improved ATM 6",
	"iATM 9": "Improved ATM 9", "iATM 12": "Improved ATM 12",

	"ISMediumLaser": "Medium Laser", "ISSmallLaser": "Small Laser", "ISLargeLaser": "Large Laser",
	"ISERMediumLaser": "ER Medium Laser", "ISERSmallLaser": "ER Small Laser", "ISERLargeLaser": "ER Large Laser",
	"ISMediumPulseLaser": "Medium Pulse Laser", "ISSmallPulseLaser": "Small Pulse Laser", "ISLargePulseLaser": "Large Pulse Laser",
	"ISMediumXPulseLaser": "Medium X-Pulse Laser", "ISSmallXPulseLaser": "Small X-Pulse Laser", "ISLargeXPulseLaser": "Large X-Pulse Laser",
	"ISPPC": "PPC", "ISERPPC": "ER PPC", "ISLightPPC": "Light PPC", "ISHeavyPPC": "Heavy PPC", "ISSNPPC": "Snub-Nose PPC",
	"ISFlamer": "Flamer", "ISERFlamer": "ER Flamer",
	"ISLRM5": "LRM 5", "ISLRM10": "LRM 10", "ISLRM15": "LRM 15", "ISLRM20": "LRM 20",
	"ISSRM2": "SRM 2", "ISSRM4": "SRM 4", "ISSRM6": "SRM 6",
	"ISStreakSRM2": "Streak SRM 2", "ISStreakSRM4": "Streak SRM 4", "ISStreakSRM6": "Streak SRM 6",
	"ISMRM10": "MRM 10", "ISMRM20": "MRM 20", "ISMRM30": "MRM 30", "ISMRM40": "MRM 40",
	"ISMML3": "MML 3", "ISMML5": "MML 5", "ISMML7": "MML 7", "ISMML9": "MML 9",
	"ISGaussRifle": "Gauss Rifle", "ISLightGaussRifle": "Light Gauss Rifle", "ISHeavyGaussRifle": "Heavy Gauss Rifle",
	"ISAC2": "AC/2", "ISAC5": "AC/5", "ISAC10": "AC/10", "ISAC20": "AC/20",
	"ISLBXAC2": "LB 2-X AC", "ISLBXAC5": "LB 5-X AC", "ISLBXAC10": "LB 10-X AC", "ISLBXAC20": "LB 20-X AC",
	"ISUltraAC2": "Ultra AC/2", "ISUltraAC5": "Ultra AC/5", "ISUltraAC10": "Ultra AC/10", "ISUltraAC20": "Ultra AC/20",
	"ISRotaryAC2": "Rotary AC/2", "ISRotaryAC5": "Rotary AC/5",
	"ISLAC2": "Light AC/2", "ISLAC5": "Light AC/5",
	"ISRocketLauncher10": "Rocket Launcher 10", "ISRocketLauncher15": "Rocket Launcher 15", "ISRocketLauncher20": "Rocket Launcher 20",
	"ISMachine Gun": "Machine Gun", "ISHeavyMachineGun": "Heavy Machine Gun", "ISLightMachineGun": "Light Machine Gun",
	"ISPlasmaRifle": "Plasma Rifle",
	"ISAntiMissileSystem": "AMS", "ISLaserAntiMissileSystem": "Laser AMS",

	"CLERMediumLaser": "ER Medium Laser", "CLERSmallLaser": "ER Small Laser", "CLERLargeLaser": "ER Large Laser",
	"CLERMicroLaser": "ER Micro Laser", "CLMicroPulseLaser": "Micro Pulse Laser",
	"CLMediumPulseLaser": "Medium Pulse Laser", "CLSmallPulseLaser": "Small Pulse Laser", "CLLargePulseLaser": "Large Pulse Laser",
	"CLHeavyMediumLaser": "Heavy Medium Laser", "CLHeavySmallLaser": "Heavy Small Laser", "CLHeavyLargeLaser": "Heavy Large Laser",
	"CLERPPC": "ER PPC",
	"CLFlamer": "Flamer", "CLERFlamer": "ER Flamer",
	"CLLRM5": "LRM 5", "CLLRM10": "LRM 10", "CLLRM15": "LRM 15", "CLLRM20": "LRM 20",
	"CLSRM2": "SRM 2", "CLSRM4": "SRM 4", "CLSRM6": "SRM 6",
	"CLStreakSRM2": "Streak SRM 2", "CLStreakSRM4": "Streak SRM 4", "CLStreakSRM6": "Streak SRM 6",
	"CLStreakLRM5": "Streak LRM 5", "CLStreakLRM10": "Streak LRM 10", "CLStreakLRM15": "Streak LRM 15", "CLStreakLRM20": "Streak LRM 20",
	"CLATM3": "ATM 3", "CLATM6": "ATM 6", "CLATM9": "ATM 9", "CLATM12": "ATM 12",
	"CLiATM3": "Improved ATM 3", "CLiATM6": "Improved ATM 6", "CLiATM9": "Improved ATM 9", "CLiATM12": "Improved ATM 12",
	"CLGaussRifle": "Gauss Rifle", "CLAPGaussRifle": "AP Gauss Rifle",
	"CLHAGRifle20": "HAG/20", "CLHAGRifle30": "HAG/30", "CLHAGRifle40": "HAG/40",
	"CLHAG20": "HAG/20", "CLHAG30": "HAG/30", "CLHAG40": "HAG/40",
	"CLLBXAC2": "LB 2-X AC", "CLLBXAC5": "LB 5-X AC", "CLLBXAC10": "LB 10-X AC", "CLLBXAC20": "LB 20-X AC",
	"CLUltraAC2": "Ultra AC/2", "CLUltraAC5": "Ultra AC/5", "CLUltraAC10": "Ultra AC/10", "CLUltraAC20": "Ultra AC/20",
	"CLMachine Gun": "Machine Gun", "CLHeavyMachineGun": "Heavy Machine Gun", "CLLightMachineGun": "Light Machine Gun",
	"CLPlasmaCannon": "Plasma Cannon",
	"CLAntiMissileSystem": "AMS", "CLAMS": "AMS", "CLLaserAntiMissileSystem": "Laser AMS",

	"Particle Cannon": "PPC",
	"LAC/2":           "Light AC/2", "LAC/5": "Light AC/5",
	"Autocannon/2": "AC/2", "Autocannon/5": "AC/5", "Autocannon/10": "AC/10", "Autocannon/20": "AC/20",
	"Anti-Missile System": "AMS",
}
