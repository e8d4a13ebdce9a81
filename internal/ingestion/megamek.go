package ingestion

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// parseArmorValue handles both standard "26" and patchwork "Reactive(Inner Sphere):26" formats
func parseArmorValue(val string) int {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if idx := strings.LastIndex(val, ":"); idx >= 0 {
		if n, err := strconv.Atoi(val[idx+1:]); err == nil {
			return n
		}
	}
	return 0
}

// MTFData holds the parsed fields of a MegaMek .mtf file that battle value
// depends on.
type MTFData struct {
	Chassis  string
	Model    string
	MulID    int
	Config   string
	TechBase string

	Mass         int
	EngineRating int
	EngineType   string
	Structure    string
	Myomer       string
	Cockpit      string
	Gyro         string

	HeatSinkCount int
	HeatSinkType  string

	WalkMP int
	JumpMP int

	ArmorType string
	// Armor maps location abbreviations to front armor points. Rear torso
	// armor is keyed RTL, RTR and RTC as in the file.
	Armor map[string]int

	Weapons []WeaponEntry

	// Crits maps location abbreviations to crit slot names in slot order.
	Crits map[string][]string
}

// WeaponEntry is a weapon from the Weapons:N summary block.
type WeaponEntry struct {
	Name     string
	Location string
}

// ParseMTF reads a MegaMek .mtf file and returns structured data.
func ParseMTF(path string) (*MTFData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mtf: %w", err)
	}
	defer f.Close()
	return ReadMTF(f)
}

// ReadMTF parses MTF text from r.
func ReadMTF(r io.Reader) (*MTFData, error) {
	data := &MTFData{
		Armor: make(map[string]int),
		Crits: make(map[string][]string),
	}

	scanner := bufio.NewScanner(r)
	// Lore lines can be long
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var currentLocation string
	var inWeapons bool

	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lower := strings.ToLower(trimmed)

		if loc := matchLocationHeader(trimmed); loc != "" {
			currentLocation = loc
			inWeapons = false
			continue
		}
		if strings.HasPrefix(lower, "weapons:") {
			inWeapons = true
			currentLocation = ""
			continue
		}

		if currentLocation != "" {
			// A key:value line ends the crit block.
			if idx := strings.Index(trimmed, ":"); idx > 0 && isHeaderKey(lower[:idx]) {
				currentLocation = ""
			} else {
				data.Crits[currentLocation] = append(data.Crits[currentLocation], trimmed)
				continue
			}
		}

		if inWeapons {
			if parts := strings.SplitN(trimmed, ",", 2); len(parts) == 2 {
				data.Weapons = append(data.Weapons, WeaponEntry{
					Name:     strings.TrimSpace(parts[0]),
					Location: strings.TrimSpace(parts[1]),
				})
				continue
			}
			inWeapons = false
		}

		idx := strings.Index(trimmed, ":")
		if idx < 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(trimmed[:idx]))
		val := strings.TrimSpace(trimmed[idx+1:])

		switch key {
		case "chassis":
			data.Chassis = val
		case "model":
			data.Model = val
		case "mul id":
			data.MulID, _ = strconv.Atoi(val)
		case "config":
			data.Config = val
		case "techbase":
			data.TechBase = val
		case "mass":
			data.Mass, _ = strconv.Atoi(val)
		case "engine":
			data.EngineRating, data.EngineType = parseEngine(val)
		case "structure":
			data.Structure = val
		case "myomer":
			data.Myomer = val
		case "cockpit":
			data.Cockpit = val
		case "gyro":
			data.Gyro = val
		case "heat sinks":
			data.HeatSinkCount, data.HeatSinkType = parseHeatSinks(val)
		case "walk mp":
			data.WalkMP, _ = strconv.Atoi(val)
		case "jump mp":
			data.JumpMP, _ = strconv.Atoi(val)
		case "armor":
			data.ArmorType = val
		default:
			if loc, ok := strings.CutSuffix(key, " armor"); ok {
				data.Armor[strings.ToUpper(loc)] = parseArmorValue(val)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan mtf: %w", err)
	}
	if data.Chassis == "" {
		return nil, fmt.Errorf("missing chassis field")
	}
	return data, nil
}

var headerKeys = map[string]bool{
	"chassis": true, "model": true, "config": true, "techbase": true, "era": true,
	"source": true, "rules level": true, "mass": true, "engine": true, "structure": true,
	"myomer": true, "heat sinks": true, "walk mp": true, "jump mp": true, "armor": true,
	"overview": true, "capabilities": true, "deployment": true, "history": true,
	"manufacturer": true, "primaryfactory": true, "systemmanufacturer": true, "quirk": true,
}

func isHeaderKey(k string) bool {
	return headerKeys[strings.TrimSpace(k)]
}

var locationHeaders = map[string]string{
	"Left Arm:":        "LA",
	"Right Arm:":       "RA",
	"Left Torso:":      "LT",
	"Right Torso:":     "RT",
	"Center Torso:":    "CT",
	"Head:":            "HD",
	"Left Leg:":        "LL",
	"Right Leg:":       "RL",
	"Front Left Leg:":  "FLL",
	"Front Right Leg:": "FRL",
	"Rear Left Leg:":   "RLL",
	"Rear Right Leg:":  "RRL",
}

// matchLocationHeader maps a location header like "Left Arm:" to its
// abbreviation.
func matchLocationHeader(line string) string {
	return locationHeaders[line]
}

// parseEngine parses "300 Fusion Engine(IS)" -> (300, "Fusion Engine(IS)")
func parseEngine(val string) (int, string) {
	parts := strings.SplitN(val, " ", 2)
	if len(parts) < 2 {
		rating, _ := strconv.Atoi(val)
		return rating, ""
	}
	rating, _ := strconv.Atoi(parts[0])
	return rating, parts[1]
}

// parseHeatSinks parses "14 IS Double" -> (14, "IS Double")
func parseHeatSinks(val string) (int, string) {
	parts := strings.SplitN(val, " ", 2)
	if len(parts) < 2 {
		count, _ := strconv.Atoi(val)
		return count, "Single"
	}
	count, _ := strconv.Atoi(parts[0])
	return count, parts[1]
}

// FullName returns "Chassis Model" or just "Chassis" if model is empty.
func (d *MTFData) FullName() string {
	if d.Model == "" {
		return d.Chassis
	}
	return d.Chassis + " " + d.Model
}
