package galaxy

import "testing"

func TestFindRegion(t *testing.T) {
	t.Run("sol is in the inner orion spur", func(t *testing.T) {
		id, name, ok := FindRegion(0, 0, 0)
		if !ok {
			t.Fatal("expected Sol to classify")
		}
		if id != 18 || name != "Inner Orion Spur" {
			t.Errorf("got region %d %q", id, name)
		}
	})

	t.Run("galactic core", func(t *testing.T) {
		id, name, ok := FindRegion(0, 0, 25900)
		if !ok || id != 1 || name != "Galactic Centre" {
			t.Errorf("got region %d %q ok=%v", id, name, ok)
		}
	})

	t.Run("beyond the disc", func(t *testing.T) {
		if _, _, ok := FindRegion(0, 0, -50000); ok {
			t.Error("expected point beyond the disc to miss")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		id1, _, _ := FindRegion(1200.5, -300, 8000)
		id2, _, _ := FindRegion(1200.5, -300, 8000)
		if id1 != id2 {
			t.Errorf("same point classified differently: %d vs %d", id1, id2)
		}
	})

	t.Run("height does not matter", func(t *testing.T) {
		id1, _, _ := FindRegion(500, 0, 1000)
		id2, _, _ := FindRegion(500, 2000, 1000)
		if id1 != id2 {
			t.Errorf("y offset changed region: %d vs %d", id1, id2)
		}
	})
}

func TestRegionName(t *testing.T) {
	if name := RegionName(18); name != "Inner Orion Spur" {
		t.Errorf("RegionName(18) = %q", name)
	}
	if name := RegionName(42); name != "The Void" {
		t.Errorf("RegionName(42) = %q", name)
	}
	if name := RegionName(0); name != "" {
		t.Errorf("RegionName(0) = %q, want empty", name)
	}
	if name := RegionName(43); name != "" {
		t.Errorf("RegionName(43) = %q, want empty", name)
	}
}
