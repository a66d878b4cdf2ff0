package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "explo.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if db.MigrationFailed() {
		t.Fatal("migration failed on a fresh database")
	}
	return db
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return sessionFor(t, newTestDB(t))
}

func sessionFor(t *testing.T, db *DB) *Session {
	t.Helper()
	s, err := db.NewSession(context.Background())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "explo.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	s := sessionFor(t, db)
	if _, err = s.GetOrCreateCommander("Jameson"); err != nil {
		t.Fatalf("GetOrCreateCommander: %v", err)
	}
	s.Close()
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer db.Close()
	if db.MigrationFailed() {
		t.Fatal("migration failed on reopen")
	}
	s = sessionFor(t, db)
	cmdr, err := s.GetOrCreateCommander("Jameson")
	if err != nil {
		t.Fatalf("GetOrCreateCommander after reopen: %v", err)
	}
	if cmdr.ID != 1 {
		t.Errorf("commander not persisted across reopen, id = %d", cmdr.ID)
	}
}

func TestGetOrCreateCommander(t *testing.T) {
	s := newTestSession(t)

	first, err := s.GetOrCreateCommander("Jameson")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := s.GetOrCreateCommander("Jameson")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("same name produced two rows: %d and %d", first.ID, second.ID)
	}

	other, err := s.GetOrCreateCommander("Ryder")
	if err != nil {
		t.Fatalf("second commander: %v", err)
	}
	if other.ID == first.ID {
		t.Error("distinct names share a row")
	}
}

func TestSystemRoundTrip(t *testing.T) {
	s := newTestSession(t)

	sys, err := s.GetOrCreateSystem("Sol")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sys.BodyCount != 1 {
		t.Errorf("new system body count = %d, want 1", sys.BodyCount)
	}

	region := int64(18)
	sys.X, sys.Y, sys.Z = 1.5, -2.5, 3.0
	sys.Region = &region
	sys.BodyCount = 10
	sys.NonBodyCount = 2
	if err = s.SaveSystem(sys); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.RefreshSystem(sys.ID)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got.X != 1.5 || got.Y != -2.5 || got.Z != 3.0 {
		t.Errorf("coordinates not persisted: %+v", got)
	}
	if got.Region == nil || *got.Region != 18 {
		t.Errorf("region not persisted: %+v", got.Region)
	}
	if got.BodyCount != 10 || got.NonBodyCount != 2 {
		t.Errorf("counts not persisted: %+v", got)
	}

	again, err := s.GetOrCreateSystem("Sol")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.ID != sys.ID {
		t.Error("same name produced two systems")
	}
}

func TestShortBodyName(t *testing.T) {
	tests := []struct {
		system, full, want string
	}{
		{"Sol", "Sol 2", "2"},
		{"Sol", "Sol", "Sol"},
		{"Luyten's Star", "Luyten's Star A 1 a", "A 1 a"},
		{"HIP 12345", "Other 1", "Other 1"},
	}
	for _, tt := range tests {
		if got := ShortBodyName(tt.system, tt.full); got != tt.want {
			t.Errorf("ShortBodyName(%q, %q) = %q, want %q", tt.system, tt.full, got, tt.want)
		}
	}
}

func TestGetMainStar(t *testing.T) {
	s := newTestSession(t)
	sys, _ := s.GetOrCreateSystem("Alpha Centauri")

	if _, err := s.GetMainStar(sys.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound without stars, got %v", err)
	}

	far, err := s.GetOrCreateStar(sys.ID, "B", 2)
	if err != nil {
		t.Fatalf("create star: %v", err)
	}
	distance := 8700.0
	far.Distance = &distance
	if err = s.SaveStar(far); err != nil {
		t.Fatalf("save star: %v", err)
	}

	main, err := s.GetOrCreateStar(sys.ID, "A", 1)
	if err != nil {
		t.Fatalf("create main star: %v", err)
	}
	zero := 0.0
	main.Distance = &zero
	main.Type = "G"
	main.Subclass = 2
	if err = s.SaveStar(main); err != nil {
		t.Fatalf("save main star: %v", err)
	}

	got, err := s.GetMainStar(sys.ID)
	if err != nil {
		t.Fatalf("GetMainStar: %v", err)
	}
	if got.Name != "A" || got.Type != "G" || got.Subclass != 2 {
		t.Errorf("wrong main star: %+v", got)
	}
}

func TestSetScanStateMonotonic(t *testing.T) {
	s := newTestSession(t)
	sys, _ := s.GetOrCreateSystem("Test")
	cmdr, _ := s.GetOrCreateCommander("Jameson")
	planet, err := s.GetOrCreatePlanet(sys.ID, "1", 1)
	if err != nil {
		t.Fatalf("create planet: %v", err)
	}

	steps := []struct {
		set  int64
		want int64
	}{
		{1, 1},
		{3, 3},
		{2, 3},
		{0, 3},
	}
	for _, step := range steps {
		if err = s.SetScanState(planet.ID, cmdr.ID, step.set); err != nil {
			t.Fatalf("SetScanState(%d): %v", step.set, err)
		}
		st, err := s.GetOrCreatePlanetStatus(planet.ID, cmdr.ID)
		if err != nil {
			t.Fatalf("status: %v", err)
		}
		if st.ScanState != step.want {
			t.Errorf("after set %d: scan state = %d, want %d", step.set, st.ScanState, step.want)
		}
	}
}

func TestPlanetRoundTrip(t *testing.T) {
	s := newTestSession(t)
	sys, _ := s.GetOrCreateSystem("Test")
	planet, err := s.GetOrCreatePlanet(sys.ID, "A 1", 5)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	temp := 154.5
	volcanism := "Minor silicate vapour geysers volcanism"
	planet.Type = "Icy body"
	planet.Atmosphere = "Ammonia"
	planet.Volcanism = &volcanism
	planet.Temp = &temp
	planet.Landable = true
	planet.TerraformState = "Terraformable"
	planet.ParentStars.Add("A")
	planet.ParentStars.Add("B")
	planet.Materials.Add("iron")
	planet.Materials.Add("nickel")
	if err = s.SavePlanet(planet); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetOrCreatePlanet(sys.ID, "A 1", 5)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Type != "Icy body" || got.Atmosphere != "Ammonia" || !got.Landable {
		t.Errorf("attributes not persisted: %+v", got)
	}
	if got.Volcanism == nil || *got.Volcanism != volcanism {
		t.Errorf("volcanism not persisted: %v", got.Volcanism)
	}
	if got.Temp == nil || *got.Temp != temp {
		t.Errorf("temperature not persisted: %v", got.Temp)
	}
	if !got.ParentStars.Has("A") || !got.ParentStars.Has("B") || got.ParentStars.Len() != 2 {
		t.Errorf("parent stars not persisted: %v", got.ParentStars.Slice())
	}
	if !got.Materials.Has("iron") || !got.Materials.Has("nickel") {
		t.Errorf("materials not persisted: %v", got.Materials.Slice())
	}

	byBody, err := s.FindPlanetByBodyID(sys.ID, 5)
	if err != nil {
		t.Fatalf("FindPlanetByBodyID: %v", err)
	}
	if byBody.ID != planet.ID {
		t.Error("body id lookup found a different planet")
	}
	if _, err = s.FindPlanetByBodyID(sys.ID, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown body id, got %v", err)
	}
}

func TestPlanetGasUpsert(t *testing.T) {
	s := newTestSession(t)
	sys, _ := s.GetOrCreateSystem("Test")
	planet, _ := s.GetOrCreatePlanet(sys.ID, "1", 1)

	if err := s.AddPlanetGas(planet.ID, "Ammonia", 92.5); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddPlanetGas(planet.ID, "Ammonia", 93.0); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	gasses, err := s.GetPlanetGasses(planet.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(gasses) != 1 {
		t.Fatalf("expected one gas row, got %d", len(gasses))
	}
	if gasses[0].Percent != 93.0 {
		t.Errorf("percent not updated: %v", gasses[0].Percent)
	}
}

func TestJournalLedger(t *testing.T) {
	s := newTestSession(t)

	seen, err := s.HasJournal("Journal.2024-01-02T030405.01.log")
	if err != nil {
		t.Fatalf("HasJournal: %v", err)
	}
	if seen {
		t.Fatal("fresh ledger reports journal as seen")
	}

	if err = s.RecordJournal("Journal.2024-01-02T030405.01.log"); err != nil {
		t.Fatalf("RecordJournal: %v", err)
	}
	// A concurrent replay of the same file is a benign race.
	if err = s.RecordJournal("Journal.2024-01-02T030405.01.log"); err != nil {
		t.Fatalf("duplicate RecordJournal: %v", err)
	}

	seen, err = s.HasJournal("Journal.2024-01-02T030405.01.log")
	if err != nil {
		t.Fatalf("HasJournal: %v", err)
	}
	if !seen {
		t.Error("recorded journal not reported as seen")
	}
}
