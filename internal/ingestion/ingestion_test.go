package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
	"github.com/JustinWhittecar/bvcalc/internal/equipment"
)

func TestParseMTF(t *testing.T) {
	d, err := ParseMTF(filepath.Join("testdata", "Locust_LCT-1V.mtf"))
	require.NoError(t, err)

	assert.Equal(t, "Locust LCT-1V", d.FullName())
	assert.Equal(t, 1934, d.MulID)
	assert.Equal(t, 20, d.Mass)
	assert.Equal(t, 160, d.EngineRating)
	assert.Equal(t, "Fusion Engine(IS)", d.EngineType)
	assert.Equal(t, 10, d.HeatSinkCount)
	assert.Equal(t, "Single", d.HeatSinkType)
	assert.Equal(t, 8, d.WalkMP)
	assert.Equal(t, 10, d.Armor["CT"])
	assert.Equal(t, 2, d.Armor["RTC"])
	assert.Len(t, d.Weapons, 3)
	assert.Equal(t, WeaponEntry{Name: "Machine Gun", Location: "Left Arm"}, d.Weapons[1])
	assert.Len(t, d.Crits["CT"], 12)
	assert.Len(t, d.Crits["HD"], 6)
	assert.Equal(t, "IS Ammo MG - Full", d.Crits["CT"][11])
}

func TestParseMTFErrors(t *testing.T) {
	_, err := ParseMTF(filepath.Join("testdata", "missing.mtf"))
	assert.ErrorContains(t, err, "open mtf")

	_, err = ReadMTF(strings.NewReader("mass:20\n"))
	assert.ErrorContains(t, err, "missing chassis")
}

func TestParseHeatSinks(t *testing.T) {
	tests := []struct {
		val   string
		count int
		kind  string
	}{
		{"10 Single", 10, "Single"},
		{"14 IS Double", 14, "IS Double"},
		{"12", 12, "Single"},
	}
	for _, tt := range tests {
		n, k := parseHeatSinks(tt.val)
		if n != tt.count || k != tt.kind {
			t.Errorf("parseHeatSinks(%q) = %d, %q, want %d, %q", tt.val, n, k, tt.count, tt.kind)
		}
	}
}

func TestParseArmorValue(t *testing.T) {
	assert.Equal(t, 26, parseArmorValue("26"))
	assert.Equal(t, 12, parseArmorValue("Reactive(Inner Sphere):12"))
	assert.Equal(t, 0, parseArmorValue("junk"))
}

func TestToUnitLocust(t *testing.T) {
	d, err := ParseMTF(filepath.Join("testdata", "Locust_LCT-1V.mtf"))
	require.NoError(t, err)

	u, unknown, err := ToUnit(d, equipment.Default())
	require.NoError(t, err)
	assert.Empty(t, unknown)

	assert.Equal(t, bv.KindMek, u.Kind)
	assert.False(t, u.Clan)
	assert.Equal(t, bv.EngineStandard, u.Engine)
	assert.Equal(t, 10, u.HeatCapacity)
	assert.Equal(t, 62, u.TotalArmor())
	assert.Equal(t, 33, u.TotalStructure())

	ct := u.Location(bv.LocCenterTorso)
	require.NotNil(t, ct)
	assert.Equal(t, 2, ct.RearArmor)
	assert.Equal(t, 6, ct.Structure)

	require.Len(t, u.Equipment, 4)
	names := make([]string, len(u.Equipment))
	for i, m := range u.Equipment {
		names[i] = m.Name
	}
	assert.ElementsMatch(t, []string{"Machine Gun", "Machine Gun", "Medium Laser", "IS Ammo MG - Full"}, names)

	for _, m := range u.Equipment {
		if m.Category == bv.CategoryAmmo {
			assert.Equal(t, "mg", m.AmmoKey)
			assert.Equal(t, []bv.Slot{{Location: bv.LocCenterTorso, Index: 11}}, m.Slots)
		}
	}

	res, err := bv.Compute(u)
	require.NoError(t, err)
	// defence (62*2.5 + 33*1.5 + 10 - 15 ammo) * 1.4 = 279.3
	// offence (46 + 5 + 5 + 1 ammo + 20) * 1.89 = 145.53
	assert.Equal(t, 425, res.BV)
}

const quadMTF = `chassis:Test Quad
model:TQ-1
Config:Quad
techbase:Clan
mass:50
engine:250 XL Engine(Clan)
structure:Clan Endo Steel
myomer:Standard
heat sinks:12 Clan Double
walk mp:5
jump mp:0
armor:Ferro-Fibrous(Clan)
FLL armor:10
FRL armor:10
RLL armor:10
RRL armor:10
LT armor:12
RT armor:12
CT armor:16
HD armor:9
RTL armor:4
RTR armor:4
RTC armor:5

Weapons:3
LRM 10, Left Torso
ER Medium Laser, Right Torso
ER Medium Laser, Center Torso

Left Torso:
CLLRM10
Artemis IV FCS
CLCASE
Clan Ammo LRM-10 Artemis-capable
Clan Ammo LRM-10 Artemis-capable
Mystery Box
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-

Right Torso:
CLERMediumLaser
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-

Center Torso:
XL Engine
XL Engine
XL Engine
Gyro
Gyro
Gyro
Gyro
XL Engine
XL Engine
XL Engine
CLERMediumLaser (R)
-Empty-
`

func TestToUnitQuadClan(t *testing.T) {
	d, err := ReadMTF(strings.NewReader(quadMTF))
	require.NoError(t, err)

	u, unknown, err := ToUnit(d, equipment.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"Mystery Box"}, unknown)

	assert.True(t, u.Clan)
	assert.True(t, u.Quad)
	assert.Equal(t, bv.ModeQuad, u.Movement.Mode)
	assert.Equal(t, bv.EngineXL, u.Engine)
	assert.Equal(t, 24, u.HeatCapacity)
	assert.NotNil(t, u.Location(bv.LocFrontLeft))
	assert.Nil(t, u.Location(bv.LocLeftArm))
	assert.True(t, u.Location(bv.LocLeftTorso).CASE)
	assert.Equal(t, 12, u.Location(bv.LocFrontLeft).Structure)

	var lrm, rear *bv.Mounted
	ammo := 0
	for i := range u.Equipment {
		m := &u.Equipment[i]
		switch {
		case m.Name == "LRM 10":
			lrm = m
		case m.Rear:
			rear = m
		case m.Category == bv.CategoryAmmo:
			ammo++
			assert.Equal(t, "lrm 10", m.AmmoKey)
		}
	}
	require.NotNil(t, lrm)
	assert.Equal(t, "iv", lrm.Artemis)
	assert.Equal(t, 109.0, lrm.BV)
	assert.Equal(t, 2, ammo)
	require.NotNil(t, rear)
	assert.Equal(t, "ER Medium Laser", rear.Name)
	assert.Equal(t, bv.LocCenterTorso, rear.Location)

	_, err = bv.Compute(u)
	require.NoError(t, err)
}

func TestMountLocationGroupsSlots(t *testing.T) {
	crits := []string{"LRM 10", "LRM 10", "LRM 10", "LRM 10", "IS Ammo LRM-10", "IS Ammo LRM-10", "ISCASEII"}
	items, flags, unknown := mountLocation(bv.LocLeftTorso, crits, equipment.Default(), false, 50)
	assert.Empty(t, unknown)
	assert.True(t, flags.caseII)
	require.Len(t, items, 4)
	assert.Len(t, items[0].Slots, 2)
	assert.Equal(t, 2, items[1].Slots[0].Index)
	assert.Equal(t, bv.CategoryAmmo, items[2].Category)
	assert.Equal(t, 5, items[3].Slots[0].Index)
}

func TestToUnitUnsupportedTonnage(t *testing.T) {
	_, _, err := ToUnit(&MTFData{Chassis: "Odd", Mass: 22}, equipment.Default())
	assert.ErrorContains(t, err, "unsupported tonnage 22")
}

func TestTypeMultipliers(t *testing.T) {
	assert.Equal(t, 1.0, typeMultiplier(armorTypeMultiplier, "Standard(Inner Sphere)"))
	assert.Equal(t, 1.5, typeMultiplier(armorTypeMultiplier, "Reactive(Clan)"))
	assert.Equal(t, 2.0, typeMultiplier(armorTypeMultiplier, "Hardened"))
	assert.Equal(t, 0.5, typeMultiplier(structureTypeMultiplier, "IS Industrial"))
	assert.Equal(t, 1.0, typeMultiplier(structureTypeMultiplier, "Clan Endo Steel"))
}

func TestLoadUnit(t *testing.T) {
	cat := equipment.Default()

	u, _, err := LoadUnit(filepath.Join("testdata", "Locust_LCT-1V.mtf"), cat)
	require.NoError(t, err)
	assert.Equal(t, "Locust LCT-1V", u.Name)

	dir := t.TempDir()
	path := filepath.Join(dir, "bunker.json")
	body := `{"name":"Bunker","kind":"building","movement":{},"building":{"hexes":[{"cf":40,"armor":20}]}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	u, unknown, err := LoadUnit(path, cat)
	require.NoError(t, err)
	assert.Nil(t, unknown)
	assert.Equal(t, bv.KindBuilding, u.Kind)
	require.NotNil(t, u.Building)
	assert.Equal(t, 40, u.Building.Hexes[0].CF)

	_, _, err = LoadUnit(filepath.Join(dir, "unit.txt"), cat)
	assert.ErrorContains(t, err, "unsupported unit file type")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"name":"x","wings":3}`), 0o644))
	_, _, err = LoadUnit(bad, cat)
	assert.ErrorContains(t, err, "decode unit")
}
