package bio

// colorTable holds the variant color lookup for one species: keyed by
// local star class or by surface element, whichever drives that
// species' coloration.
type colorTable struct {
	star    map[string]string
	element map[string]string
}

// Genus describes one taxonomic family: its display name, the minimum
// colony separation in meters, and whether several of its species can
// share a body.
type Genus struct {
	Name     string
	Distance int
	Multiple bool

	star    map[string]string
	species map[string]colorTable
}

// Lookup returns the genus record for a codex genus identifier.
func Lookup(genus string) (Genus, bool) {
	g, ok := genera[genus]
	return g, ok
}

var genera = map[string]Genus{
	"$Codex_Ent_Aleoids_Genus_Name;": {
		Name:     "Aleoida",
		Distance: 150,
		star: map[string]string{
			"B": "Yellow", "A": "Green", "F": "Teal", "K": "Turquoise",
			"M": "Emerald", "L": "Lime", "T": "Sage", "TTS": "Mauve",
			"D": "Indigo", "W": "Grey", "Y": "Amethyst", "N": "Ocher",
		},
	},
	"$Codex_Ent_Bacterial_Genus_Name;": {
		Name:     "Bacterium",
		Distance: 500,
		species: map[string]colorTable{
			"$Codex_Ent_Bacterial_01_Name;": {star: map[string]string{
				"O": "Turquoise", "B": "Grey", "A": "Yellow", "F": "Lime",
				"G": "Emerald", "K": "Green", "M": "Teal", "L": "Sage",
				"T": "Red", "Y": "Mauve", "TTS": "Maroon", "AeBe": "Orange",
				"W": "Amethyst", "D": "Ocher", "N": "Indigo",
			}},
			"$Codex_Ent_Bacterial_02_Name;": {element: map[string]string{
				"antimony": "Magenta", "polonium": "Gold", "ruthenium": "Orange",
				"technetium": "Cyan", "tellurium": "Green", "yttrium": "Cobalt",
			}},
			"$Codex_Ent_Bacterial_03_Name;": {element: map[string]string{
				"cadmium": "White", "mercury": "Peach", "molybdenum": "Lime",
				"niobium": "Red", "tungsten": "Aquamarine", "tin": "Mulberry",
			}},
			"$Codex_Ent_Bacterial_04_Name;": {element: map[string]string{
				"antimony": "Cyan", "polonium": "Magenta", "ruthenium": "Cobalt",
				"technetium": "Lime", "tellurium": "White", "yttrium": "Aquamarine",
			}},
			"$Codex_Ent_Bacterial_05_Name;": {element: map[string]string{
				"antimony": "Cyan", "polonium": "Orange", "ruthenium": "Mulberry",
				"technetium": "Gold", "tellurium": "Red", "yttrium": "Lime",
			}},
			"$Codex_Ent_Bacterial_06_Name;": {star: map[string]string{
				"O": "Turquoise", "B": "Grey", "A": "Yellow", "F": "Lime",
				"G": "Emerald", "K": "Green", "M": "Teal", "L": "Sage",
				"T": "Red", "Y": "Mauve", "TTS": "Maroon", "AeBe": "Orange",
				"W": "Amethyst", "D": "Ocher", "N": "Indigo",
			}},
			"$Codex_Ent_Bacterial_07_Name;": {element: map[string]string{
				"cadmium": "Gold", "mercury": "Orange", "molybdenum": "Yellow",
				"niobium": "Magenta", "tungsten": "Green", "tin": "Cobalt",
			}},
			"$Codex_Ent_Bacterial_08_Name;": {element: map[string]string{
				"antimony": "Red", "polonium": "Lime", "ruthenium": "Gold",
				"technetium": "Aquamarine", "tellurium": "Yellow", "yttrium": "Cobalt",
			}},
			"$Codex_Ent_Bacterial_09_Name;": {element: map[string]string{
				"antimony": "Red", "polonium": "Aquamarine", "ruthenium": "Cobalt",
				"technetium": "Lime", "tellurium": "Cyan", "yttrium": "Gold",
			}},
			"$Codex_Ent_Bacterial_10_Name;": {element: map[string]string{
				"antimony": "Cobalt", "polonium": "Yellow", "ruthenium": "Aquamarine",
				"technetium": "Gold", "tellurium": "Lime", "yttrium": "Red",
			}},
			"$Codex_Ent_Bacterial_11_Name;": {element: map[string]string{
				"cadmium": "Lime", "mercury": "White", "molybdenum": "Aquamarine",
				"niobium": "Peach", "tungsten": "Blue", "tin": "Red",
			}},
			"$Codex_Ent_Bacterial_12_Name;": {star: map[string]string{
				"O": "Turquoise", "B": "Grey", "A": "Yellow", "F": "Lime",
				"G": "Emerald", "K": "Green", "M": "Teal", "L": "Sage",
				"T": "Red", "Y": "Mauve", "TTS": "Maroon", "AeBe": "Orange",
				"W": "Amethyst", "D": "Ocher", "N": "Indigo",
			}},
			"$Codex_Ent_Bacterial_13_Name;": {element: map[string]string{
				"cadmium": "Peach", "mercury": "Red", "molybdenum": "White",
				"niobium": "Mulberry", "tungsten": "Lime", "tin": "Blue",
			}},
		},
	},
	"$Codex_Ent_Cactoid_Genus_Name;": {
		Name:     "Cactoida",
		Distance: 300,
		star: map[string]string{
			"O": "Grey", "A": "Green", "F": "Yellow", "G": "Teal",
			"M": "Amethyst", "L": "Mauve", "T": "Orange", "Y": "Ocher",
			"TTS": "Red", "D": "Turquoise", "W": "Indigo", "N": "Sage",
		},
	},
	"$Codex_Ent_Clypeus_Genus_Name;": {
		Name:     "Clypeus",
		Distance: 150,
		star: map[string]string{
			"B": "Maroon", "A": "Orange", "F": "Mauve", "G": "Amethyst",
			"K": "Grey", "M": "Turquoise", "Y": "Green", "L": "Teal",
			"W": "Lime", "N": "Yellow",
		},
	},
	"$Codex_Ent_Conchas_Genus_Name;": {
		Name:     "Concha",
		Distance: 150,
		species: map[string]colorTable{
			"$Codex_Ent_Conchas_01_Name;": {element: map[string]string{
				"cadmium": "Red", "mercury": "Mulberry", "molybdenum": "Peach",
				"niobium": "Blue", "tungsten": "White", "tin": "Aquamarine",
			}},
			"$Codex_Ent_Conchas_02_Name;": {star: map[string]string{
				"B": "Indigo", "A": "Teal", "F": "Grey", "G": "Turquoise",
				"K": "Red", "L": "Orange", "Y": "Yellow", "W": "Lime",
				"D": "Green", "N": "Emerald",
			}},
			"$Codex_Ent_Conchas_03_Name;": {star: map[string]string{
				"B": "Indigo", "A": "Teal", "F": "Grey", "G": "Turquoise",
				"K": "Red", "L": "Orange", "Y": "Yellow", "W": "Lime",
				"D": "Green", "N": "Emerald",
			}},
			"$Codex_Ent_Conchas_04_Name;": {element: map[string]string{
				"antimony": "Peach", "polonium": "Red", "ruthenium": "Orange",
				"technetium": "White", "tellurium": "Yellow", "yttrium": "Gold",
			}},
		},
	},
	"$Codex_Ent_Cone_Name;": {Name: "Bark Mound", Distance: 100},
	"$Codex_Ent_Electricae_Genus_Name;": {
		Name:     "Electricae",
		Distance: 1000,
		species: map[string]colorTable{
			"$Codex_Ent_Electricae_01_Name;": {element: map[string]string{
				"antimony": "Cobalt", "polonium": "Cyan", "ruthenium": "Blue",
				"technetium": "Magenta", "tellurium": "Red", "yttrium": "Mulberry",
			}},
			"$Codex_Ent_Electricae_02_Name;": {element: map[string]string{
				"antimony": "Cyan", "polonium": "Cobalt", "ruthenium": "Blue",
				"technetium": "Aquamarine", "tellurium": "Magenta", "yttrium": "Green",
			}},
		},
	},
	"$Codex_Ent_Fonticulus_Genus_Name;": {
		Name:     "Fonticulua",
		Distance: 500,
		star: map[string]string{
			"O": "Grey", "B": "Lime", "A": "Green", "F": "Yellow",
			"G": "Teal", "K": "Emerald", "M": "Amethyst", "L": "Mauve",
			"T": "Orange", "TTS": "Red", "Y": "Ocher", "W": "Indigo",
			"D": "Turquoise", "N": "Sage", "AeBe": "Maroon",
		},
	},
	"$Codex_Ent_Fumerolas_Genus_Name;": {
		Name:     "Fumerola",
		Distance: 100,
		species: map[string]colorTable{
			"$Codex_Ent_Fumerolas_01_Name;": {element: map[string]string{
				"cadmium": "Orange", "mercury": "Magenta", "molybdenum": "Gold",
				"niobium": "Cobalt", "tungsten": "Yellow", "tin": "Teal",
			}},
			"$Codex_Ent_Fumerolas_02_Name;": {element: map[string]string{
				"cadmium": "Aquamarine", "mercury": "Lime", "molybdenum": "Blue",
				"niobium": "White", "tungsten": "Mulberry", "tin": "Peach",
			}},
			"$Codex_Ent_Fumerolas_03_Name;": {element: map[string]string{
				"cadmium": "White", "mercury": "Peach", "molybdenum": "Lime",
				"niobium": "Red", "tungsten": "Aquamarine", "tin": "Mulberry",
			}},
			"$Codex_Ent_Fumerolas_04_Name;": {element: map[string]string{
				"cadmium": "Green", "mercury": "Yellow", "molybdenum": "Cyan",
				"niobium": "Gold", "tungsten": "Cobalt", "tin": "Orange",
			}},
		},
	},
	"$Codex_Ent_Fungoids_Genus_Name;": {
		Name:     "Fungoida",
		Distance: 300,
		species: map[string]colorTable{
			"$Codex_Ent_Fungoids_01_Name;": {element: map[string]string{
				"antimony": "Peach", "polonium": "White", "ruthenium": "Gold",
				"technetium": "Lime", "tellurium": "Yellow", "yttrium": "Orange",
			}},
			"$Codex_Ent_Fungoids_02_Name;": {element: map[string]string{
				"cadmium": "Blue", "mercury": "Green", "molybdenum": "Magenta",
				"niobium": "White", "tungsten": "Peach", "tin": "Orange",
			}},
			"$Codex_Ent_Fungoids_03_Name;": {element: map[string]string{
				"antimony": "Red", "polonium": "Mulberry", "ruthenium": "Magenta",
				"technetium": "Peach", "tellurium": "Gold", "yttrium": "Orange",
			}},
			"$Codex_Ent_Fungoids_04_Name;": {element: map[string]string{
				"cadmium": "Cyan", "mercury": "Lime", "molybdenum": "Mulberry",
				"niobium": "Green", "tungsten": "Orange", "tin": "Red",
			}},
		},
	},
	"$Codex_Ent_Ground_Struct_Ice_Name;": {Name: "Crystalline Shards", Distance: 100},
	"$Codex_Ent_Osseus_Genus_Name;": {
		Name:     "Osseus",
		Distance: 800,
		species: map[string]colorTable{
			"$Codex_Ent_Osseus_01_Name;": {star: map[string]string{
				"O": "Yellow", "A": "Lime", "F": "Turquoise", "G": "Grey",
				"K": "Indigo", "T": "Emerald", "Y": "Maroon", "TTS": "Green",
			}},
			"$Codex_Ent_Osseus_02_Name;": {element: map[string]string{
				"cadmium": "White", "mercury": "Lime", "molybdenum": "Peach",
				"niobium": "Aquamarine", "tungsten": "Red", "tin": "Blue",
			}},
			"$Codex_Ent_Osseus_03_Name;": {star: map[string]string{
				"O": "Yellow", "A": "Lime", "F": "Turquoise", "G": "Grey",
				"K": "Indigo", "T": "Emerald", "Y": "Maroon", "TTS": "Green",
			}},
			"$Codex_Ent_Osseus_04_Name;": {element: map[string]string{
				"antimony": "White", "polonium": "Peach", "ruthenium": "Gold",
				"technetium": "Lime", "tellurium": "Green", "yttrium": "Yellow",
			}},
			"$Codex_Ent_Osseus_05_Name;": {star: map[string]string{
				"O": "Yellow", "A": "Lime", "F": "Turquoise", "G": "Grey",
				"K": "Indigo", "T": "Emerald", "Y": "Maroon", "TTS": "Green",
			}},
			"$Codex_Ent_Osseus_06_Name;": {star: map[string]string{
				"O": "Yellow", "A": "Lime", "F": "Turquoise", "G": "Grey",
				"K": "Indigo", "T": "Emerald", "Y": "Maroon", "TTS": "Green",
			}},
		},
	},
	"$Codex_Ent_Recepta_Genus_Name;": {
		Name:     "Recepta",
		Distance: 150,
		species: map[string]colorTable{
			"$Codex_Ent_Recepta_01_Name;": {star: map[string]string{
				"B": "Turquoise", "A": "Amethyst", "F": "Mauve", "G": "Orange",
				"K": "Red", "M": "Maroon", "T": "Teal", "TTS": "Sage",
				"L": "Ochre", "AeBe": "Grey", "N": "Emerald",
			}},
			"$Codex_Ent_Recepta_02_Name;": {element: map[string]string{
				"cadmium": "Lime", "mercury": "Cyan", "molybdenum": "Gold",
				"niobium": "Mulberry", "tungsten": "Red", "tin": "Orange",
			}},
			"$Codex_Ent_Recepta_03_Name;": {element: map[string]string{
				"antimony": "Lime", "polonium": "White", "ruthenium": "Yellow",
				"technetium": "Aquamarine", "tellurium": "Cyan", "yttrium": "Green",
			}},
		},
	},
	"$Codex_Ent_Brancae_Name;": {Name: "Brain Tree", Distance: 100, Multiple: true},
	"$Codex_Ent_Shrubs_Genus_Name;": {
		Name:     "Frutexa",
		Distance: 150,
		star: map[string]string{
			"O": "Yellow", "B": "Lime", "F": "Green", "G": "Emerald",
			"M": "Grey", "L": "Teal", "TTS": "Mauve", "W": "Orange",
			"D": "Indigo", "N": "Red",
		},
	},
	"$Codex_Ent_Sphere_Name;": {Name: "Anemone", Distance: 100},
	"$Codex_Ent_Stratum_Genus_Name;": {
		Name:     "Stratum",
		Distance: 500,
		species: map[string]colorTable{
			"$Codex_Ent_Stratum_01_Name;": {star: stratumStars},
			"$Codex_Ent_Stratum_02_Name;": {star: stratumStars},
			"$Codex_Ent_Stratum_03_Name;": {star: stratumStars},
			"$Codex_Ent_Stratum_04_Name;": {star: map[string]string{
				"B": "Emerald", "A": "Emerald", "N": "Emerald", "T": "Emerald",
			}},
			"$Codex_Ent_Stratum_05_Name;": {star: stratumStars},
			"$Codex_Ent_Stratum_06_Name;": {star: stratumStars},
			"$Codex_Ent_Stratum_07_Name;": {star: stratumStars},
			"$Codex_Ent_Stratum_08_Name;": {star: stratumStars},
		},
	},
	// Stratum araneamus variants carry the species id where the genus id
	// normally sits, so it gets its own entry keyed by species.
	"$Codex_Ent_Stratum_04_Name;": {
		Name:     "Stratum",
		Distance: 500,
		star:     map[string]string{"F": "Emerald"},
	},
	"$Codex_Ent_Tube_Name;": {Name: "Sinuous Tubers", Distance: 100, Multiple: true},
	"$Codex_Ent_Tubus_Genus_Name;": {
		Name:     "Tubus",
		Distance: 800,
		star: map[string]string{
			"O": "Green", "B": "Emerald", "A": "Indigo", "F": "Grey",
			"G": "Red", "K": "Maroon", "M": "Teal", "L": "Turquoise",
			"T": "Mauve", "TTS": "Ocher", "W": "Lime", "D": "Yellow",
			"N": "Amethyst",
		},
	},
	"$Codex_Ent_Tussocks_Genus_Name;": {
		Name:     "Tussock",
		Distance: 200,
		star: map[string]string{
			"F": "Yellow", "G": "Lime", "K": "Green", "M": "Emerald",
			"L": "Sage", "T": "Teal", "Y": "Red", "W": "Orange",
			"D": "Maroon", "N": "Yellow",
		},
	},
	"$Codex_Ent_Vents_Name;": {Name: "Amphora Plant", Distance: 100},
}

var stratumStars = map[string]string{
	"F": "Emerald", "K": "Lime", "M": "Green", "L": "Turquoise",
	"Y": "Indigo", "T": "Grey", "TTS": "Amethyst", "D": "Mauve",
	"AeBe": "Teal", "W": "Red",
}
