package bio

// genusOrder fixes the iteration order for variant matching so that
// resolution is deterministic.
var genusOrder = []string{
	"$Codex_Ent_Aleoids_Genus_Name;",
	"$Codex_Ent_Bacterial_Genus_Name;",
	"$Codex_Ent_Cactoid_Genus_Name;",
	"$Codex_Ent_Clypeus_Genus_Name;",
	"$Codex_Ent_Conchas_Genus_Name;",
	"$Codex_Ent_Cone_Name;",
	"$Codex_Ent_Electricae_Genus_Name;",
	"$Codex_Ent_Fonticulus_Genus_Name;",
	"$Codex_Ent_Fumerolas_Genus_Name;",
	"$Codex_Ent_Fungoids_Genus_Name;",
	"$Codex_Ent_Ground_Struct_Ice_Name;",
	"$Codex_Ent_Osseus_Genus_Name;",
	"$Codex_Ent_Recepta_Genus_Name;",
	"$Codex_Ent_Brancae_Name;",
	"$Codex_Ent_Shrubs_Genus_Name;",
	"$Codex_Ent_Sphere_Name;",
	"$Codex_Ent_Stratum_Genus_Name;",
	"$Codex_Ent_Tube_Name;",
	"$Codex_Ent_Tubus_Genus_Name;",
	"$Codex_Ent_Tussocks_Genus_Name;",
	"$Codex_Ent_Vents_Name;",
}

// speciesPrefixes maps each genus to the identifier prefixes of its
// species. A variant id is a species prefix followed by a color or
// element token.
var speciesPrefixes = map[string][]string{
	"$Codex_Ent_Aleoids_Genus_Name;": {
		"$Codex_Ent_Aleoids_01_",
		"$Codex_Ent_Aleoids_02_",
		"$Codex_Ent_Aleoids_03_",
		"$Codex_Ent_Aleoids_04_",
		"$Codex_Ent_Aleoids_05_",
	},
	"$Codex_Ent_Bacterial_Genus_Name;": {
		"$Codex_Ent_Bacterial_01_",
		"$Codex_Ent_Bacterial_02_",
		"$Codex_Ent_Bacterial_03_",
		"$Codex_Ent_Bacterial_04_",
		"$Codex_Ent_Bacterial_05_",
		"$Codex_Ent_Bacterial_06_",
		"$Codex_Ent_Bacterial_07_",
		"$Codex_Ent_Bacterial_08_",
		"$Codex_Ent_Bacterial_09_",
		"$Codex_Ent_Bacterial_10_",
		"$Codex_Ent_Bacterial_11_",
		"$Codex_Ent_Bacterial_12_",
		"$Codex_Ent_Bacterial_13_",
	},
	"$Codex_Ent_Cactoid_Genus_Name;": {
		"$Codex_Ent_Cactoid_01_",
		"$Codex_Ent_Cactoid_02_",
		"$Codex_Ent_Cactoid_03_",
		"$Codex_Ent_Cactoid_04_",
		"$Codex_Ent_Cactoid_05_",
	},
	"$Codex_Ent_Clypeus_Genus_Name;": {
		"$Codex_Ent_Clypeus_01_",
		"$Codex_Ent_Clypeus_02_",
		"$Codex_Ent_Clypeus_03_",
	},
	"$Codex_Ent_Conchas_Genus_Name;": {
		"$Codex_Ent_Conchas_01_",
		"$Codex_Ent_Conchas_02_",
		"$Codex_Ent_Conchas_03_",
		"$Codex_Ent_Conchas_04_",
	},
	"$Codex_Ent_Cone_Name;": {
		"$Codex_Ent_Cone_",
	},
	"$Codex_Ent_Electricae_Genus_Name;": {
		"$Codex_Ent_Electricae_01_",
		"$Codex_Ent_Electricae_02_",
	},
	"$Codex_Ent_Fonticulus_Genus_Name;": {
		"$Codex_Ent_Fonticulus_01_",
		"$Codex_Ent_Fonticulus_02_",
		"$Codex_Ent_Fonticulus_03_",
		"$Codex_Ent_Fonticulus_04_",
		"$Codex_Ent_Fonticulus_05_",
		"$Codex_Ent_Fonticulus_06_",
	},
	"$Codex_Ent_Fumerolas_Genus_Name;": {
		"$Codex_Ent_Fumerolas_01_",
		"$Codex_Ent_Fumerolas_02_",
		"$Codex_Ent_Fumerolas_03_",
		"$Codex_Ent_Fumerolas_04_",
	},
	"$Codex_Ent_Fungoids_Genus_Name;": {
		"$Codex_Ent_Fungoids_01_",
		"$Codex_Ent_Fungoids_02_",
		"$Codex_Ent_Fungoids_03_",
		"$Codex_Ent_Fungoids_04_",
	},
	"$Codex_Ent_Ground_Struct_Ice_Name;": {
		"$Codex_Ent_Ground_Struct_Ice_",
	},
	"$Codex_Ent_Osseus_Genus_Name;": {
		"$Codex_Ent_Osseus_01_",
		"$Codex_Ent_Osseus_02_",
		"$Codex_Ent_Osseus_03_",
		"$Codex_Ent_Osseus_04_",
		"$Codex_Ent_Osseus_05_",
		"$Codex_Ent_Osseus_06_",
	},
	"$Codex_Ent_Recepta_Genus_Name;": {
		"$Codex_Ent_Recepta_01_",
		"$Codex_Ent_Recepta_02_",
		"$Codex_Ent_Recepta_03_",
	},
	"$Codex_Ent_Brancae_Name;": {
		"$Codex_Ent_Seed_",
		"$Codex_Ent_SeedABCD_01_",
		"$Codex_Ent_SeedABCD_02_",
		"$Codex_Ent_SeedABCD_03_",
		"$Codex_Ent_SeedEFGH_01_",
		"$Codex_Ent_SeedEFGH_02_",
		"$Codex_Ent_SeedEFGH_03_",
		"$Codex_Ent_SeedEFGH_",
	},
	"$Codex_Ent_Shrubs_Genus_Name;": {
		"$Codex_Ent_Shrubs_01_",
		"$Codex_Ent_Shrubs_02_",
		"$Codex_Ent_Shrubs_03_",
		"$Codex_Ent_Shrubs_04_",
		"$Codex_Ent_Shrubs_05_",
		"$Codex_Ent_Shrubs_06_",
		"$Codex_Ent_Shrubs_07_",
	},
	"$Codex_Ent_Sphere_Name;": {
		"$Codex_Ent_Sphere_",
		"$Codex_Ent_SphereABCD_01_",
		"$Codex_Ent_SphereABCD_02_",
		"$Codex_Ent_SphereABCD_03_",
		"$Codex_Ent_SphereEFGH_01_",
		"$Codex_Ent_SphereEFGH_02_",
		"$Codex_Ent_SphereEFGH_03_",
		"$Codex_Ent_SphereEFGH_",
	},
	"$Codex_Ent_Stratum_Genus_Name;": {
		"$Codex_Ent_Stratum_01_",
		"$Codex_Ent_Stratum_02_",
		"$Codex_Ent_Stratum_03_",
		"$Codex_Ent_Stratum_04_",
		"$Codex_Ent_Stratum_05_",
		"$Codex_Ent_Stratum_06_",
		"$Codex_Ent_Stratum_07_",
		"$Codex_Ent_Stratum_08_",
	},
	"$Codex_Ent_Tube_Name;": {
		"$Codex_Ent_Tube_",
		"$Codex_Ent_TubeABCD_01_",
		"$Codex_Ent_TubeABCD_02_",
		"$Codex_Ent_TubeABCD_03_",
		"$Codex_Ent_TubeEFGH_01_",
		"$Codex_Ent_TubeEFGH_02_",
		"$Codex_Ent_TubeEFGH_03_",
		"$Codex_Ent_TubeEFGH_",
	},
	"$Codex_Ent_Tubus_Genus_Name;": {
		"$Codex_Ent_Tubus_01_",
		"$Codex_Ent_Tubus_02_",
		"$Codex_Ent_Tubus_03_",
		"$Codex_Ent_Tubus_04_",
		"$Codex_Ent_Tubus_05_",
	},
	"$Codex_Ent_Tussocks_Genus_Name;": {
		"$Codex_Ent_Tussocks_01_",
		"$Codex_Ent_Tussocks_02_",
		"$Codex_Ent_Tussocks_03_",
		"$Codex_Ent_Tussocks_04_",
		"$Codex_Ent_Tussocks_05_",
		"$Codex_Ent_Tussocks_06_",
		"$Codex_Ent_Tussocks_07_",
		"$Codex_Ent_Tussocks_08_",
		"$Codex_Ent_Tussocks_09_",
		"$Codex_Ent_Tussocks_10_",
		"$Codex_Ent_Tussocks_11_",
		"$Codex_Ent_Tussocks_12_",
		"$Codex_Ent_Tussocks_13_",
		"$Codex_Ent_Tussocks_14_",
		"$Codex_Ent_Tussocks_15_",
	},
	"$Codex_Ent_Vents_Name;": {
		"$Codex_Ent_Vents_",
	},
}

// speciesByGenus maps each genus to its full species identifiers.
var speciesByGenus = map[string][]string{
	"$Codex_Ent_Aleoids_Genus_Name;": {
		"$Codex_Ent_Aleoids_01_Name;",
		"$Codex_Ent_Aleoids_02_Name;",
		"$Codex_Ent_Aleoids_03_Name;",
		"$Codex_Ent_Aleoids_04_Name;",
		"$Codex_Ent_Aleoids_05_Name;",
	},
	"$Codex_Ent_Bacterial_Genus_Name;": {
		"$Codex_Ent_Bacterial_01_Name;",
		"$Codex_Ent_Bacterial_02_Name;",
		"$Codex_Ent_Bacterial_03_Name;",
		"$Codex_Ent_Bacterial_04_Name;",
		"$Codex_Ent_Bacterial_05_Name;",
		"$Codex_Ent_Bacterial_06_Name;",
		"$Codex_Ent_Bacterial_07_Name;",
		"$Codex_Ent_Bacterial_08_Name;",
		"$Codex_Ent_Bacterial_09_Name;",
		"$Codex_Ent_Bacterial_10_Name;",
		"$Codex_Ent_Bacterial_11_Name;",
		"$Codex_Ent_Bacterial_12_Name;",
		"$Codex_Ent_Bacterial_13_Name;",
	},
	"$Codex_Ent_Cactoid_Genus_Name;": {
		"$Codex_Ent_Cactoid_01_Name;",
		"$Codex_Ent_Cactoid_02_Name;",
		"$Codex_Ent_Cactoid_03_Name;",
		"$Codex_Ent_Cactoid_04_Name;",
		"$Codex_Ent_Cactoid_05_Name;",
	},
	"$Codex_Ent_Clypeus_Genus_Name;": {
		"$Codex_Ent_Clypeus_01_Name;",
		"$Codex_Ent_Clypeus_02_Name;",
		"$Codex_Ent_Clypeus_03_Name;",
	},
	"$Codex_Ent_Conchas_Genus_Name;": {
		"$Codex_Ent_Conchas_01_Name;",
		"$Codex_Ent_Conchas_02_Name;",
		"$Codex_Ent_Conchas_03_Name;",
		"$Codex_Ent_Conchas_04_Name;",
	},
	"$Codex_Ent_Cone_Name;": {
		"$Codex_Ent_Cone_Name;",
	},
	"$Codex_Ent_Electricae_Genus_Name;": {
		"$Codex_Ent_Electricae_01_Name;",
		"$Codex_Ent_Electricae_02_Name;",
	},
	"$Codex_Ent_Fonticulus_Genus_Name;": {
		"$Codex_Ent_Fonticulus_01_Name;",
		"$Codex_Ent_Fonticulus_02_Name;",
		"$Codex_Ent_Fonticulus_03_Name;",
		"$Codex_Ent_Fonticulus_04_Name;",
		"$Codex_Ent_Fonticulus_05_Name;",
		"$Codex_Ent_Fonticulus_06_Name;",
	},
	"$Codex_Ent_Fumerolas_Genus_Name;": {
		"$Codex_Ent_Fumerolas_01_Name;",
		"$Codex_Ent_Fumerolas_02_Name;",
		"$Codex_Ent_Fumerolas_03_Name;",
		"$Codex_Ent_Fumerolas_04_Name;",
	},
	"$Codex_Ent_Fungoids_Genus_Name;": {
		"$Codex_Ent_Fungoids_01_Name;",
		"$Codex_Ent_Fungoids_02_Name;",
		"$Codex_Ent_Fungoids_03_Name;",
		"$Codex_Ent_Fungoids_04_Name;",
	},
	"$Codex_Ent_Ground_Struct_Ice_Name;": {
		"$Codex_Ent_Ground_Struct_Ice_Name;",
	},
	"$Codex_Ent_Osseus_Genus_Name;": {
		"$Codex_Ent_Osseus_01_Name;",
		"$Codex_Ent_Osseus_02_Name;",
		"$Codex_Ent_Osseus_03_Name;",
		"$Codex_Ent_Osseus_04_Name;",
		"$Codex_Ent_Osseus_05_Name;",
		"$Codex_Ent_Osseus_06_Name;",
	},
	"$Codex_Ent_Recepta_Genus_Name;": {
		"$Codex_Ent_Recepta_01_Name;",
		"$Codex_Ent_Recepta_02_Name;",
		"$Codex_Ent_Recepta_03_Name;",
	},
	"$Codex_Ent_Brancae_Name;": {
		"$Codex_Ent_Seed_Name;",
		"$Codex_Ent_SeedABCD_01_Name;",
		"$Codex_Ent_SeedABCD_02_Name;",
		"$Codex_Ent_SeedABCD_03_Name;",
		"$Codex_Ent_SeedEFGH_01_Name;",
		"$Codex_Ent_SeedEFGH_02_Name;",
		"$Codex_Ent_SeedEFGH_03_Name;",
		"$Codex_Ent_SeedEFGH_Name;",
	},
	"$Codex_Ent_Shrubs_Genus_Name;": {
		"$Codex_Ent_Shrubs_01_Name;",
		"$Codex_Ent_Shrubs_02_Name;",
		"$Codex_Ent_Shrubs_03_Name;",
		"$Codex_Ent_Shrubs_04_Name;",
		"$Codex_Ent_Shrubs_05_Name;",
		"$Codex_Ent_Shrubs_06_Name;",
		"$Codex_Ent_Shrubs_07_Name;",
	},
	"$Codex_Ent_Sphere_Name;": {
		"$Codex_Ent_Sphere_Name;",
		"$Codex_Ent_SphereABCD_01_Name;",
		"$Codex_Ent_SphereABCD_02_Name;",
		"$Codex_Ent_SphereABCD_03_Name;",
		"$Codex_Ent_SphereEFGH_01_Name;",
		"$Codex_Ent_SphereEFGH_02_Name;",
		"$Codex_Ent_SphereEFGH_03_Name;",
		"$Codex_Ent_SphereEFGH_Name;",
	},
	"$Codex_Ent_Stratum_Genus_Name;": {
		"$Codex_Ent_Stratum_01_Name;",
		"$Codex_Ent_Stratum_02_Name;",
		"$Codex_Ent_Stratum_03_Name;",
		"$Codex_Ent_Stratum_04_Name;",
		"$Codex_Ent_Stratum_05_Name;",
		"$Codex_Ent_Stratum_06_Name;",
		"$Codex_Ent_Stratum_07_Name;",
		"$Codex_Ent_Stratum_08_Name;",
	},
	"$Codex_Ent_Tube_Name;": {
		"$Codex_Ent_Tube_Name;",
		"$Codex_Ent_TubeABCD_01_Name;",
		"$Codex_Ent_TubeABCD_02_Name;",
		"$Codex_Ent_TubeABCD_03_Name;",
		"$Codex_Ent_TubeEFGH_01_Name;",
		"$Codex_Ent_TubeEFGH_02_Name;",
		"$Codex_Ent_TubeEFGH_03_Name;",
		"$Codex_Ent_TubeEFGH_Name;",
	},
	"$Codex_Ent_Tubus_Genus_Name;": {
		"$Codex_Ent_Tubus_01_Name;",
		"$Codex_Ent_Tubus_02_Name;",
		"$Codex_Ent_Tubus_03_Name;",
		"$Codex_Ent_Tubus_04_Name;",
		"$Codex_Ent_Tubus_05_Name;",
	},
	"$Codex_Ent_Tussocks_Genus_Name;": {
		"$Codex_Ent_Tussocks_01_Name;",
		"$Codex_Ent_Tussocks_02_Name;",
		"$Codex_Ent_Tussocks_03_Name;",
		"$Codex_Ent_Tussocks_04_Name;",
		"$Codex_Ent_Tussocks_05_Name;",
		"$Codex_Ent_Tussocks_06_Name;",
		"$Codex_Ent_Tussocks_07_Name;",
		"$Codex_Ent_Tussocks_08_Name;",
		"$Codex_Ent_Tussocks_09_Name;",
		"$Codex_Ent_Tussocks_10_Name;",
		"$Codex_Ent_Tussocks_11_Name;",
		"$Codex_Ent_Tussocks_12_Name;",
		"$Codex_Ent_Tussocks_13_Name;",
		"$Codex_Ent_Tussocks_14_Name;",
		"$Codex_Ent_Tussocks_15_Name;",
	},
	"$Codex_Ent_Vents_Name;": {
		"$Codex_Ent_Vents_Name;",
	},
}
