package edsm

import "testing"

func TestMapBodyType(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Earth-like world", "Earthlike body"},
		{"High metal content world", "High metal content body"},
		{"Class II gas giant", "Sudarsky class II gas giant"},
		{"Icy body", "Icy body"},
	}
	for _, tt := range tests {
		if got := mapBodyType(tt.in); got != tt.want {
			t.Errorf("mapBodyType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapStarClass(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Neutron Star", "N"},
		{"Black Hole", "H"},
		{"White Dwarf (DAZ) Star", "DAZ"},
		{"Wolf-Rayet NC Star", "WNC"},
		{"M (Red dwarf) Star", ""},
	}
	for _, tt := range tests {
		if got := mapStarClass(tt.in); got != tt.want {
			t.Errorf("mapStarClass(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapAtmosphere(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Thin Ammonia", "Ammonia"},
		{"Hot thick Carbon dioxide", "CarbonDioxide"},
		{"Thin Argon-rich", "ArgonRich"},
		{"Thin Neon", "Neon"},
		{"Silicate vapour", "SilicateVapour"},
		{"No atmosphere", "None"},
		{"Suitable for water-based life", "Suitable for water-based life"},
	}
	for _, tt := range tests {
		if got := mapAtmosphere(tt.in); got != tt.want {
			t.Errorf("mapAtmosphere(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapRingClass(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Icy", "eRingClass_Icy"},
		{"Rocky", "eRingClass_Rocky"},
		{"Metal Rich", "eRingClass_MetalRich"},
		{"Metallic", "eRingClass_Metalic"},
		{"Unknown", "Unknown"},
	}
	for _, tt := range tests {
		if got := mapRingClass(tt.in); got != tt.want {
			t.Errorf("mapRingClass(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapVolcanism(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"No volcanism", ""},
		{"Minor Silicate Vapour Geysers", "Minor silicate vapour geysers volcanism"},
		{"Water Magma", "Water magma volcanism"},
	}
	for _, tt := range tests {
		if got := mapVolcanism(tt.in); got != tt.want {
			t.Errorf("mapVolcanism(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
