// Package galaxy assigns galactic coordinates to one of the 42 named
// regions. The partition is a coarse ring and sector grid centered on
// the galactic core, anchored so that Sol falls in the Inner Orion
// Spur.
package galaxy

import "math"

// Game coordinates are in light years with Sol at the origin and the
// galactic core on the positive z axis.
const (
	coreZ     = 25900.0
	maxRadius = 45000.0
)

var ringBounds = [...]float64{6000, 12000, 18000, 24000, 30000, maxRadius}

// regionNames is indexed by region id minus one.
var regionNames = [...]string{
	"Galactic Centre",
	"Empyrean Straits",
	"Ryker's Hope",
	"Odin's Hold",
	"Norma Arm",
	"Arcadian Stream",
	"Izanami",
	"Inner Orion-Perseus Conflux",
	"Inner Scutum-Centaurus Arm",
	"Norma Expanse",
	"Trojan Belt",
	"The Veils",
	"Newton's Vault",
	"The Conduit",
	"Outer Orion-Perseus Conflux",
	"Orion-Cygnus Arm",
	"Temple",
	"Inner Orion Spur",
	"Hawking's Gap",
	"Dryman's Point",
	"Sagittarius-Carina Arm",
	"Mare Somnia",
	"Acheron",
	"Formorian Frontier",
	"Hieronymus Delta",
	"Outer Scutum-Centaurus Arm",
	"Outer Arm",
	"Aquila's Halo",
	"Errant Marches",
	"Perseus Arm",
	"Formidine Rift",
	"Vulcan Gate",
	"Elysian Shore",
	"Sanguineous Rim",
	"Outer Orion Spur",
	"Achilles's Altar",
	"Xibalba",
	"Lyra's Song",
	"Tenebrae",
	"The Abyss",
	"Kepler's Crest",
	"The Void",
}

// regionGrid maps a ring (distance band from the core) and angular
// sector to a region id. Sector zero points from the core toward Sol.
var regionGrid = [6][7]int64{
	{1, 2, 3, 4, 5, 6, 7},
	{8, 9, 10, 11, 12, 13, 14},
	{15, 16, 17, 19, 20, 21, 22},
	{23, 24, 25, 26, 27, 28, 29},
	{18, 30, 31, 32, 33, 34, 35},
	{36, 37, 38, 39, 40, 41, 42},
}

// FindRegion classifies a point in game coordinates. It returns the
// region id and display name, or ok false for points beyond the
// galactic disc.
func FindRegion(x, y, z float64) (int64, string, bool) {
	dx := x
	dz := z - coreZ
	r := math.Hypot(dx, dz)
	if r > maxRadius {
		return 0, "", false
	}

	ring := len(ringBounds) - 1
	for i, bound := range ringBounds {
		if r < bound {
			ring = i
			break
		}
	}

	theta := math.Atan2(dx, -dz)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	sector := int(theta / (2 * math.Pi / 7))
	if sector > 6 {
		sector = 6
	}

	id := regionGrid[ring][sector]
	return id, regionNames[id-1], true
}

// RegionName returns the display name for a region id, empty when the
// id is out of range.
func RegionName(id int64) string {
	if id < 1 || id > int64(len(regionNames)) {
		return ""
	}
	return regionNames[id-1]
}
