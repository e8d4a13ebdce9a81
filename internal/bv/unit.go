package bv

// Kind is the unit category. It selects the variant that scores a unit.
type Kind string

const (
	KindMek         Kind = "mek"
	KindVehicle     Kind = "vehicle"
	KindBattleArmor Kind = "battlearmor"
	KindInfantry    Kind = "infantry"
	KindAeroFighter Kind = "aerofighter"
	KindDropShip    Kind = "dropship"
	KindJumpShip    Kind = "jumpship"
	KindWarShip     Kind = "warship"
	KindBuilding    Kind = "building"
)

// Kinds lists every supported unit category.
var Kinds = []Kind{
	KindMek, KindVehicle, KindBattleArmor, KindInfantry, KindAeroFighter,
	KindDropShip, KindJumpShip, KindWarShip, KindBuilding,
}

// MoveMode is a unit's motive system.
type MoveMode string

const (
	ModeBiped    MoveMode = "biped"
	ModeQuad     MoveMode = "quad"
	ModeTracked  MoveMode = "tracked"
	ModeWheeled  MoveMode = "wheeled"
	ModeHover    MoveMode = "hover"
	ModeVTOL     MoveMode = "vtol"
	ModeWiGE     MoveMode = "wige"
	ModeNaval    MoveMode = "naval"
	ModeLeg      MoveMode = "leg"
	ModeJump     MoveMode = "jump"
	ModeAerodyne MoveMode = "aerodyne"
	ModeSpheroid MoveMode = "spheroid"
	ModeStation  MoveMode = "station"
)

type Category string

const (
	CategoryWeapon    Category = "weapon"
	CategoryAmmo      Category = "ammo"
	CategoryEquipment Category = "equipment"
	CategoryPhysical  Category = "physical"
)

// EquipType identifies equipment the rules treat specially. Plain weapons
// and ammunition leave it empty.
type EquipType string

const (
	EquipNone             EquipType = ""
	EquipAMS              EquipType = "ams"
	EquipLaserAMS         EquipType = "laserams"
	EquipECM              EquipType = "ecm"
	EquipAngelECM         EquipType = "angelecm"
	EquipWatchdog         EquipType = "watchdog"
	EquipBeagleProbe      EquipType = "beagleprobe"
	EquipClanProbe        EquipType = "clanprobe"
	EquipLightProbe       EquipType = "lightprobe"
	EquipBloodhound       EquipType = "bloodhound"
	EquipAPod             EquipType = "apod"
	EquipBPod             EquipType = "bpod"
	EquipMPod             EquipType = "mpod"
	EquipCASE             EquipType = "case"
	EquipCASEII           EquipType = "caseii"
	EquipTargetingComp    EquipType = "tc"
	EquipMASC             EquipType = "masc"
	EquipSupercharger     EquipType = "supercharger"
	EquipAES              EquipType = "aes"
	EquipCoolantPod       EquipType = "coolantpod"
	EquipEmergencyCoolant EquipType = "emergencycoolant"
	EquipBlueShield       EquipType = "blueshield"
	EquipStealth          EquipType = "stealth"
	EquipImprovedStealth  EquipType = "improvedstealth"
	EquipNullSig          EquipType = "nullsig"
	EquipVoidSig          EquipType = "voidsig"
	EquipChameleon        EquipType = "chameleon"
	EquipMimetic          EquipType = "mimetic"
	EquipCamo             EquipType = "camo"
	EquipAFC              EquipType = "afc"
	EquipRISCOverride     EquipType = "riscoverride"
	EquipFieldGun         EquipType = "fieldgun"
)

type Engine string

const (
	EngineStandard Engine = "standard"
	EngineXL       Engine = "xl"
	EngineXXL      Engine = "xxl"
	EngineLight    Engine = "light"
	EngineCompact  Engine = "compact"
	EngineICE      Engine = "ice"
	EngineFuelCell Engine = "fuelcell"
	EngineFission  Engine = "fission"
)

type Gyro string

const (
	GyroStandard  Gyro = "standard"
	GyroCompact   Gyro = "compact"
	GyroXL        Gyro = "xl"
	GyroHeavyDuty Gyro = "heavyduty"
	GyroNone      Gyro = "none"
)

type Cockpit string

const (
	CockpitStandard     Cockpit = "standard"
	CockpitSmall        Cockpit = "small"
	CockpitTorsoMounted Cockpit = "torsomounted"
	CockpitInterface    Cockpit = "interface"
	CockpitDroneOS      Cockpit = "droneos"
	CockpitIndustrial   Cockpit = "industrial"
	CockpitPrimitive    Cockpit = "primitive"
)

type Myomer string

const (
	MyomerStandard      Myomer = "standard"
	MyomerTSM           Myomer = "tsm"
	MyomerIndustrialTSM Myomer = "industrialtsm"
)

// Unit is an immutable snapshot of everything the calculator reads. Nothing
// in this package writes to a Unit it is handed.
type Unit struct {
	Name       string  `json:"name"`
	Kind       Kind    `json:"kind"`
	Tonnage    float64 `json:"tonnage"`
	Clan       bool    `json:"clan,omitempty"`
	Quad       bool    `json:"quad,omitempty"`
	Industrial bool    `json:"industrial,omitempty"`

	Engine  Engine  `json:"engine,omitempty"`
	Gyro    Gyro    `json:"gyro,omitempty"`
	Cockpit Cockpit `json:"cockpit,omitempty"`
	Myomer  Myomer  `json:"myomer,omitempty"`

	// Multipliers for the armor and structure type; zero means 1.0.
	ArmorMultiplier     float64 `json:"armorMultiplier,omitempty"`
	StructureMultiplier float64 `json:"structureMultiplier,omitempty"`

	Locations []Location `json:"locations,omitempty"`
	Equipment []Mounted  `json:"equipment,omitempty"`
	Movement  Movement   `json:"movement"`

	// HeatCapacity is total heat dissipation (double sinks already doubled).
	HeatCapacity        int  `json:"heatCapacity,omitempty"`
	StructuralIntegrity int  `json:"structuralIntegrity,omitempty"`
	SpaceStation        bool `json:"spaceStation,omitempty"`

	Chassis  ChassisMods `json:"chassis,omitempty"`
	Troopers []Trooper   `json:"troopers,omitempty"`
	Infantry *Infantry   `json:"infantry,omitempty"`
	Building *Building   `json:"building,omitempty"`
}

type Location struct {
	Name      string `json:"name"`
	Armor     int    `json:"armor"`
	RearArmor int    `json:"rearArmor,omitempty"`
	Structure int    `json:"structure"`
	CASE      bool   `json:"case,omitempty"`
	CASEII    bool   `json:"caseII,omitempty"`
	// ArmorMultiplier overrides the unit armor multiplier (patchwork armor).
	ArmorMultiplier float64 `json:"armorMultiplier,omitempty"`
}

// Slot is one critical slot an item occupies.
type Slot struct {
	Location string `json:"location"`
	Index    int    `json:"index"`
}

// Mounted is one item of equipment on the unit.
type Mounted struct {
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	Type     EquipType `json:"type,omitempty"`
	Location string    `json:"location,omitempty"`
	Rear     bool      `json:"rear,omitempty"`
	Arc      Arc       `json:"arc,omitempty"`

	// BV is the item's base battle value; for ammunition it is per ton.
	BV   float64 `json:"bv"`
	Heat float64 `json:"heat,omitempty"`

	// AmmoKey links weapons and the ammunition they fire.
	AmmoKey   string `json:"ammoKey,omitempty"`
	Slots     []Slot `json:"slots,omitempty"`
	Explosive bool   `json:"explosive,omitempty"`

	Ultra       bool   `json:"ultra,omitempty"`
	Rotary      bool   `json:"rotary,omitempty"`
	Streak      bool   `json:"streak,omitempty"`
	OneShot     bool   `json:"oneShot,omitempty"`
	PulseModule bool   `json:"pulseModule,omitempty"`
	Insulator   bool   `json:"insulator,omitempty"`
	Capacitor   bool   `json:"capacitor,omitempty"`
	Artemis     string `json:"artemis,omitempty"`
	Apollo      bool   `json:"apollo,omitempty"`
	DirectFire  bool   `json:"directFire,omitempty"`
}

type Movement struct {
	Walk       int      `json:"walk,omitempty"`
	Run        int      `json:"run,omitempty"`
	Jump       int      `json:"jump,omitempty"`
	UMU        int      `json:"umu,omitempty"`
	SafeThrust int      `json:"safeThrust,omitempty"`
	MaxThrust  int      `json:"maxThrust,omitempty"`
	Mode       MoveMode `json:"mode,omitempty"`
}

type ChassisMods struct {
	Amphibious bool `json:"amphibious,omitempty"`
	DuneBuggy  bool `json:"duneBuggy,omitempty"`
}

// Trooper is one suit of a battle armor squad.
type Trooper struct {
	Armor     int       `json:"armor"`
	Equipment []Mounted `json:"equipment,omitempty"`
}

type Infantry struct {
	Squads            int     `json:"squads"`
	SquadSize         int     `json:"squadSize"`
	SecondaryPerSquad int     `json:"secondaryPerSquad,omitempty"`
	PrimaryBV         float64 `json:"primaryBV"`
	SecondaryBV       float64 `json:"secondaryBV,omitempty"`
	// Surviving troopers; zero means full strength.
	Surviving     int     `json:"surviving,omitempty"`
	DamageDivisor float64 `json:"damageDivisor,omitempty"`
	AntiMek       bool    `json:"antiMek,omitempty"`
}

type Building struct {
	Hexes []Hex `json:"hexes,omitempty"`
}

type Hex struct {
	CF    int `json:"cf"`
	Armor int `json:"armor,omitempty"`
}

// Has reports whether the unit mounts at least one item of type t.
func (u *Unit) Has(t EquipType) bool {
	return u.Count(t) > 0
}

// Count returns the number of mounted items of type t.
func (u *Unit) Count(t EquipType) int {
	n := 0
	for i := range u.Equipment {
		if u.Equipment[i].Type == t {
			n++
		}
	}
	return n
}

// Location returns the named location, or nil.
func (u *Unit) Location(name string) *Location {
	for i := range u.Locations {
		if u.Locations[i].Name == name {
			return &u.Locations[i]
		}
	}
	return nil
}

// TotalArmor sums front and rear armor over all locations.
func (u *Unit) TotalArmor() int {
	total := 0
	for _, l := range u.Locations {
		total += l.Armor + l.RearArmor
	}
	return total
}

// TotalStructure sums internal structure over all locations.
func (u *Unit) TotalStructure() int {
	total := 0
	for _, l := range u.Locations {
		total += l.Structure
	}
	return total
}

func (u *Unit) armorMultiplier() float64 {
	if u.ArmorMultiplier == 0 {
		return 1
	}
	return u.ArmorMultiplier
}

func (u *Unit) structureMultiplier() float64 {
	if u.StructureMultiplier == 0 {
		return 1
	}
	return u.StructureMultiplier
}

// runMP returns the run MP, deriving it from walk when unset.
func (m Movement) runMP() int {
	if m.Run > 0 {
		return m.Run
	}
	return ceilHalf(m.Walk * 3)
}

func (m Movement) maxThrust() int {
	if m.MaxThrust > 0 {
		return m.MaxThrust
	}
	return ceilHalf(m.SafeThrust * 3)
}

func ceilHalf(n int) int {
	return (n + 1) / 2
}
