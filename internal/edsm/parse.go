package edsm

import (
	"strings"
	"unicode"
)

// mapBodyType translates an EDSM planet subtype to the journal's
// planet class vocabulary so both sources key the same way.
var bodyTypes = map[string]string{
	"Earth-like world":                  "Earthlike body",
	"Metal-rich body":                   "Metal rich body",
	"High metal content world":          "High metal content body",
	"Rocky Ice world":                   "Rocky ice body",
	"Class I gas giant":                 "Sudarsky class I gas giant",
	"Class II gas giant":                "Sudarsky class II gas giant",
	"Class III gas giant":               "Sudarsky class III gas giant",
	"Class IV gas giant":                "Sudarsky class IV gas giant",
	"Class V gas giant":                 "Sudarsky class V gas giant",
	"Gas giant with ammonia-based life": "Gas giant with ammonia based life",
	"Gas giant with water-based life":   "Gas giant with water based life",
	"Helium-rich gas giant":             "Helium rich gas giant",
}

func mapBodyType(subType string) string {
	if mapped, ok := bodyTypes[subType]; ok {
		return mapped
	}
	return subType
}

// starClasses translates EDSM star subtypes to journal star classes
// for bodies whose spectral class is not published.
var starClasses = map[string]string{
	"White Dwarf (D) Star":    "D",
	"White Dwarf (DA) Star":   "DA",
	"White Dwarf (DAB) Star":  "DAB",
	"White Dwarf (DAO) Star":  "DAO",
	"White Dwarf (DAZ) Star":  "DAZ",
	"White Dwarf (DB) Star":   "DB",
	"White Dwarf (DBZ) Star":  "DBZ",
	"White Dwarf (DBV) Star":  "DBV",
	"White Dwarf (DO) Star":   "DO",
	"White Dwarf (DOV) Star":  "DOV",
	"White Dwarf (DQ) Star":   "DQ",
	"White Dwarf (DC) Star":   "DC",
	"White Dwarf (DCV) Star":  "DCV",
	"White Dwarf (DX) Star":   "DX",
	"CS Star":                 "CS",
	"C Star":                  "C",
	"CN Star":                 "CN",
	"CJ Star":                 "CJ",
	"CH Star":                 "CH",
	"CHd Star":                "CHd",
	"MS-type Star":            "MS",
	"S-type Star":             "S",
	"Herbig Ae/Be Star":       "AeBe",
	"Wolf-Rayet Star":         "W",
	"Wolf-Rayet N Star":       "WN",
	"Wolf-Rayet NC Star":      "WNC",
	"Wolf-Rayet C Star":       "WC",
	"Wolf-Rayet O Star":       "WO",
	"Neutron Star":            "N",
	"Black Hole":              "H",
	"Supermassive Black Hole": "SupermassiveBlackHole",
}

func mapStarClass(subType string) string {
	return starClasses[subType]
}

// atmosphereSuffixes maps EDSM atmosphere descriptions, which carry a
// density prefix ("Thin Ammonia"), onto journal atmosphere type
// tokens. Order matters: the rich variants must match before their
// plain counterparts.
var atmosphereSuffixes = []struct{ suffix, token string }{
	{"Ammonia", "Ammonia"},
	{"Water", "Water"},
	{"Carbon dioxide", "CarbonDioxide"},
	{"Sulphur dioxide", "SulphurDioxide"},
	{"Nitrogen", "Nitrogen"},
	{"Water-rich", "WaterRich"},
	{"Methane-rich", "MethaneRich"},
	{"Ammonia-rich", "AmmoniaRich"},
	{"Carbon dioxide-rich", "CarbonDioxideRich"},
	{"Methane", "Methane"},
	{"Helium", "Helium"},
	{"Silicate vapour", "SilicateVapour"},
	{"Metallic vapour", "MetallicVapour"},
	{"Neon-rich", "NeonRich"},
	{"Argon-rich", "ArgonRich"},
	{"Neon", "Neon"},
	{"Argon", "Argon"},
	{"Oxygen", "Oxygen"},
}

func mapAtmosphere(atmosphere string) string {
	for _, entry := range atmosphereSuffixes {
		if strings.HasSuffix(atmosphere, entry.suffix) {
			return entry.token
		}
	}
	if atmosphere == "No atmosphere" {
		return "None"
	}
	return atmosphere
}

// ringClasses translates EDSM ring types to the journal's ring class
// identifiers, misspelling included.
var ringClasses = map[string]string{
	"Icy":        "eRingClass_Icy",
	"Rocky":      "eRingClass_Rocky",
	"Metal Rich": "eRingClass_MetalRich",
	"Metallic":   "eRingClass_Metalic",
}

func mapRingClass(ringType string) string {
	if mapped, ok := ringClasses[ringType]; ok {
		return mapped
	}
	return ringType
}

// mapVolcanism normalizes EDSM volcanism descriptions to the
// journal's phrasing: empty for none, otherwise sentence case with a
// "volcanism" suffix.
func mapVolcanism(volcanism string) string {
	if volcanism == "" || volcanism == "No volcanism" {
		return ""
	}
	lowered := strings.ToLower(volcanism)
	runes := []rune(lowered)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes) + " volcanism"
}
