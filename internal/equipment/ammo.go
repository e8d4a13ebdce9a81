package equipment

import "strings"

// AmmoKey normalises an ammunition or weapon name to the key that links
// them. "IS Ammo LRM-20", "Clan Ammo LRM-20" and "LRM 20" all map to
// "lrm 20"; MML ammunition of either kind maps to its launcher.
func AmmoKey(name string) string {
	n := strings.Replace(normalizeAmmo(name), "improved atm", "iatm", 1)
	switch {
	case strings.HasPrefix(n, "mml "):
		n = strings.TrimSuffix(strings.TrimSuffix(n, " lrm"), " srm")
	case strings.HasPrefix(n, "atm ") || strings.HasPrefix(n, "iatm "):
		n = strings.TrimSuffix(strings.TrimSuffix(n, " er"), " he")
	case strings.HasPrefix(n, "lb ") && strings.HasSuffix(n, " cluster"):
		n = strings.TrimSuffix(n, " cluster") + " ac"
	}
	n = strings.TrimSuffix(n, " rifle")
	return strings.Replace(n, "machine gun", "mg", 1)
}

// normalizeAmmo strips tech prefixes, the "ammo" marker, capability
// suffixes and half-ton markers, and turns dashes into spaces.
func normalizeAmmo(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, " (omnipod)")
	for _, p := range []string{"isams ", "clams "} {
		if strings.HasPrefix(n, p) {
			n = "ams " + strings.TrimPrefix(n, p)
		}
	}

	n = strings.TrimPrefix(n, "is ")
	n = strings.TrimPrefix(n, "clan ")
	n = strings.TrimPrefix(n, "cl ")
	n = strings.TrimPrefix(n, "ammo ")
	n = strings.TrimSuffix(n, " ammo")

	for _, suffix := range []string{" - full", " - half", " (half)", " half"} {
		n = strings.TrimSuffix(n, suffix)
	}
	n = strings.TrimSuffix(n, " ammo")
	for _, c := range []string{" artemis-capable", " artemis v-capable", " narc-capable", " torpedo"} {
		n = strings.Replace(n, c, "", 1)
	}

	n = strings.ReplaceAll(n, "autocannon/", "ac/")
	n = strings.ReplaceAll(n, "-", " ")
	return strings.Join(strings.Fields(n), " ")
}

// IsHalfTon reports whether an ammunition entry is a half-ton bin.
func IsHalfTon(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "half")
}

// AmmoBV returns the BV per ton for an ammunition name and whether the
// type is known. Unknown ammunition scores zero.
func AmmoBV(name string) (float64, bool) {
	key := normalizeAmmo(name)
	if bv, ok := ammoBVTable[key]; ok {
		return bv, true
	}
	// Longest pattern wins so "streak srm 6" never matches "srm 6".
	best := ""
	for pattern := range ammoBVTable {
		if len(pattern) > len(best) && strings.Contains(key, pattern) {
			best = pattern
		}
	}
	if best == "" {
		return 0, false
	}
	return ammoBVTable[best], true
}

// IsExplosiveAmmo reports whether ammunition of this type explodes. Gauss
// slugs and plasma do not.
func IsExplosiveAmmo(name string) bool {
	n := strings.ToLower(name)
	return !strings.Contains(n, "gauss") && !strings.Contains(n, "plasma") && !strings.Contains(n, "magshot")
}

// IsAMSAmmo reports whether the ammunition feeds an anti-missile system.
func IsAMSAmmo(name string) bool {
	key := AmmoKey(name)
	return key == "ams" || strings.Contains(key, "anti missile")
}

// IsAmmoName reports whether a crit slot name is ammunition.
func IsAmmoName(name string) bool {
	n := strings.ToLower(name)
	if len(n) >= 100 {
		return false
	}
	return strings.HasPrefix(n, "is ammo") || strings.HasPrefix(n, "clan ammo") ||
		strings.HasPrefix(n, "cl ammo") || strings.HasPrefix(n, "ammo") ||
		strings.HasPrefix(n, "isams ammo") || strings.HasPrefix(n, "clams ammo") ||
		strings.Contains(n, " ammo ") || strings.HasSuffix(n, " ammo")
}

// ammoBVTable maps ammo keys to BV per ton.
var ammoBVTable = map[string]float64{
	"ac/2":  5,
	"ac/5":  9,
	"ac/10": 15,
	"ac/20": 22,

	"lb 2 x ac":  5,
	"lb 5 x ac":  9,
	"lb 10 x ac": 15,
	"lb 20 x ac": 22,
	"lb 2 x":     5,
	"lb 5 x":     9,
	"lb 10 x":    15,
	"lb 20 x":    22,

	"ultra ac/2":  7,
	"ultra ac/5":  14,
	"ultra ac/10": 26,
	"ultra ac/20": 35,

	"rotary ac/2": 15,
	"rotary ac/5": 31,

	"light ac/2": 4,
	"light ac/5": 8,

	"hvac/2":  5,
	"hvac/5":  9,
	"hvac/10": 15,

	"improved ac/2":  5,
	"improved ac/5":  9,
	"improved ac/10": 15,
	"improved ac/20": 22,

	"lrm 5":  6,
	"lrm 10": 11,
	"lrm 15": 17,
	"lrm 20": 23,

	"srm 2": 3,
	"srm 4": 5,
	"srm 6": 7,

	"streak srm 2": 4,
	"streak srm 4": 7,
	"streak srm 6": 11,

	"streak lrm 5":  6,
	"streak lrm 10": 11,
	"streak lrm 15": 17,
	"streak lrm 20": 23,

	"mrm 10": 7,
	"mrm 20": 14,
	"mrm 30": 21,
	"mrm 40": 28,

	"mml 3 lrm": 4,
	"mml 3 srm": 2,
	"mml 5 lrm": 6,
	"mml 5 srm": 3,
	"mml 7 lrm": 8,
	"mml 7 srm": 5,
	"mml 9 lrm": 11,
	"mml 9 srm": 7,

	"atm 3":  14,
	"atm 6":  26,
	"atm 9":  36,
	"atm 12": 52,

	"iatm 3":  14,
	"iatm 6":  26,
	"iatm 9":  36,
	"iatm 12": 52,

	"gauss":             40,
	"gauss rifle":       40,
	"heavy gauss":       43,
	"heavy gauss rifle": 43,
	"light gauss":       20,
	"light gauss rifle": 20,
	"improved gauss":    40,
	"hag/20":            30,
	"hag/30":            30,
	"hag/40":            30,
	"ap gauss rifle":    3,
	"magshot":           2,

	"mg":                1,
	"machine gun":       1,
	"light machine gun": 1,
	"heavy machine gun": 1,

	"ams":                 11,
	"anti missile system": 11,

	"narc":        0,
	"narc beacon": 0,
	"inarc":       0,

	"thunderbolt 5":  5,
	"thunderbolt 10": 10,
	"thunderbolt 15": 15,
	"thunderbolt 20": 20,

	"arrow iv": 10,

	"plasma rifle":  26,
	"plasma cannon": 21,

	"sniper":   6,
	"thumper":  5,
	"long tom": 25,

	"extended lrm 5":  6,
	"extended lrm 10": 11,
	"extended lrm 15": 17,
	"extended lrm 20": 23,

	"enhanced lrm 5":  6,
	"enhanced lrm 10": 11,
	"enhanced lrm 15": 17,
	"enhanced lrm 20": 23,

	"protomech ac/2": 4,
	"protomech ac/4": 6,
	"protomech ac/8": 12,

	"silver bullet": 22,

	"rifle (cannon, light)":  3,
	"rifle (cannon, medium)": 6,
	"rifle (cannon, heavy)":  9,
}
