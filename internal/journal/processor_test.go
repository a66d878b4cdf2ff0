package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"explodata/internal/database"
)

func newTestSession(t *testing.T) *database.Session {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "explo.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if db.MigrationFailed() {
		t.Fatal("migration failed on a fresh database")
	}
	s, err := db.NewSession(context.Background())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func feed(t *testing.T, p *Processor, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if err := p.Process([]byte(line)); err != nil {
			t.Fatalf("Process(%s): %v", line, err)
		}
	}
}

const (
	loadGameLine = `{"event":"LoadGame","Commander":"Jameson"}`
	jumpLine     = `{"event":"FSDJump","StarSystem":"Sol","StarPos":[0.0,0.0,0.0]}`
)

func TestProcessMalformedLine(t *testing.T) {
	p := NewProcessor(newTestSession(t))
	if err := p.Process([]byte(`{"event":`)); err == nil {
		t.Error("expected an error for truncated JSON")
	}
	if err := p.Process([]byte(`{"Commander":"Jameson"}`)); err == nil {
		t.Error("expected an error for a line without an event")
	}
}

func TestProcessCommanderAndSystem(t *testing.T) {
	s := newTestSession(t)
	p := NewProcessor(s)

	feed(t, p, loadGameLine, jumpLine)

	sys, err := s.GetOrCreateSystem("Sol")
	if err != nil {
		t.Fatalf("system: %v", err)
	}
	if sys.Region == nil || *sys.Region != 18 {
		t.Errorf("region not classified: %v", sys.Region)
	}

	// Scans before a jump have no system to attach to and are dropped.
	p2 := NewProcessor(newTestSession(t))
	feed(t, p2, `{"event":"Scan","BodyName":"Sol","StarType":"G","BodyID":0}`)
}

func TestProcessIncompleteJump(t *testing.T) {
	s := newTestSession(t)
	p := NewProcessor(s)

	feed(t, p, `{"event":"Location","StarSystem":"Colonia"}`)
	if p.system != nil {
		t.Error("system established without coordinates")
	}

	feed(t, p, `{"event":"FSDJump","StarPos":[1.0,2.0,3.0]}`)
	if p.system != nil {
		t.Error("system established without a name")
	}
	// A nameless row written by the event would carry the coordinates.
	sys, err := s.GetOrCreateSystem("")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if sys.X != 0 || sys.Y != 0 || sys.Z != 0 || sys.Region != nil {
		t.Errorf("nameless jump persisted a system: %+v", sys)
	}
}

func TestProcessStarScan(t *testing.T) {
	s := newTestSession(t)
	p := NewProcessor(s)

	feed(t, p, loadGameLine, jumpLine,
		`{"event":"Scan","ScanType":"AutoScan","BodyName":"Sol","BodyID":0,
		"StarType":"G","Subclass":2,"StellarMass":1.0,"Luminosity":"Vab",
		"DistanceFromArrivalLS":0.0,"WasDiscovered":true}`)

	sys, _ := s.GetOrCreateSystem("Sol")
	star, err := s.GetMainStar(sys.ID)
	if err != nil {
		t.Fatalf("GetMainStar: %v", err)
	}
	if star.Type != "G" || star.Subclass != 2 || star.Luminosity != "Vab" {
		t.Errorf("star attributes wrong: %+v", star)
	}

	stars, err := s.ListStars(sys.ID)
	if err != nil || len(stars) != 1 {
		t.Fatalf("star listing wrong: %v (err %v)", stars, err)
	}

	cmdr, _ := s.GetOrCreateCommander("Jameson")
	status, err := s.GetOrCreateStarStatus(star.ID, cmdr.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !status.Discovered || !status.WasDiscovered {
		t.Errorf("discovery flags wrong: %+v", status)
	}
}

func TestProcessPlanetScan(t *testing.T) {
	s := newTestSession(t)
	p := NewProcessor(s)

	feed(t, p, loadGameLine,
		`{"event":"FSDJump","StarSystem":"Alpha Centauri","StarPos":[3.03,-0.09,3.15]}`,
		`{"event":"Scan","ScanType":"Detailed","BodyName":"Alpha Centauri AB 1 a","BodyID":5,
		"PlanetClass":"Icy body","MassEM":0.02,"SurfaceGravity":1.1,"Landable":true,
		"AtmosphereType":"Ammonia","TerraformState":"",
		"AtmosphereComposition":[{"Name":"Ammonia","Percent":92.5}],
		"Materials":[{"Name":"iron"},{"Name":"nickel"}]}`)

	sys, _ := s.GetOrCreateSystem("Alpha Centauri")
	planet, err := s.FindPlanetByBodyID(sys.ID, 5)
	if err != nil {
		t.Fatalf("planet: %v", err)
	}
	if planet.Type != "Icy body" || planet.Atmosphere != "Ammonia" || !planet.Landable {
		t.Errorf("planet attributes wrong: %+v", planet)
	}
	if !planet.ParentStars.Has("A") || !planet.ParentStars.Has("B") || planet.ParentStars.Len() != 2 {
		t.Errorf("parent stars wrong: %v", planet.ParentStars.Slice())
	}
	if !planet.Materials.Has("iron") || !planet.Materials.Has("nickel") {
		t.Errorf("materials wrong: %v", planet.Materials.Slice())
	}

	gasses, err := s.GetPlanetGasses(planet.ID)
	if err != nil || len(gasses) != 1 || gasses[0].Percent != 92.5 {
		t.Errorf("gasses wrong: %v (err %v)", gasses, err)
	}

	cmdr, _ := s.GetOrCreateCommander("Jameson")
	status, _ := s.GetOrCreatePlanetStatus(planet.ID, cmdr.ID)
	if status.ScanState != 3 {
		t.Errorf("detailed scan state = %d, want 3", status.ScanState)
	}
}

func TestProcessPlanetNamedAfterSystem(t *testing.T) {
	s := newTestSession(t)
	p := NewProcessor(s)

	feed(t, p, loadGameLine, jumpLine,
		`{"event":"Scan","ScanType":"AutoScan","BodyName":"Sol 3","BodyID":3,
		"PlanetClass":"Earthlike body"}`)

	sys, _ := s.GetOrCreateSystem("Sol")
	planet, err := s.FindPlanetByBodyID(sys.ID, 3)
	if err != nil {
		t.Fatalf("planet: %v", err)
	}
	if !planet.ParentStars.Has("Sol") || planet.ParentStars.Len() != 1 {
		t.Errorf("single-star system parent wrong: %v", planet.ParentStars.Slice())
	}
}

func TestProcessHonk(t *testing.T) {
	s := newTestSession(t)
	p := NewProcessor(s)

	feed(t, p, loadGameLine, jumpLine,
		`{"event":"FSSDiscoveryScan","BodyCount":10,"NonBodyCount":2,"Progress":0.35}`)

	sys, _ := s.GetOrCreateSystem("Sol")
	if sys.BodyCount != 10 || sys.NonBodyCount != 2 {
		t.Errorf("counts wrong: %+v", sys)
	}
	cmdr, _ := s.GetOrCreateCommander("Jameson")
	status, _ := s.GetOrCreateSystemStatus(sys.ID, cmdr.ID)
	if !status.Honked || status.FullyScanned {
		t.Errorf("partial honk flags wrong: %+v", status)
	}

	feed(t, p, `{"event":"FSSDiscoveryScan","BodyCount":10,"NonBodyCount":2,"Progress":1.0}`)
	status, _ = s.GetOrCreateSystemStatus(sys.ID, cmdr.ID)
	if !status.FullyScanned {
		t.Error("full-progress honk did not mark the system fully scanned")
	}
}

func TestProcessAllBodiesFound(t *testing.T) {
	s := newTestSession(t)
	p := NewProcessor(s)

	feed(t, p, loadGameLine, jumpLine, `{"event":"FSSAllBodiesFound"}`)

	sys, _ := s.GetOrCreateSystem("Sol")
	cmdr, _ := s.GetOrCreateCommander("Jameson")
	status, _ := s.GetOrCreateSystemStatus(sys.ID, cmdr.ID)
	if !status.FullyScanned {
		t.Error("system not marked fully scanned")
	}
}

func TestProcessSurfaceScan(t *testing.T) {
	s := newTestSession(t)
	p := NewProcessor(s)

	feed(t, p, loadGameLine, jumpLine,
		`{"event":"Scan","ScanType":"Detailed","BodyName":"Sol 4","BodyID":4,"PlanetClass":"Rocky body"}`,
		`{"event":"FSSAllBodiesFound"}`,
		`{"event":"SAAScanComplete","BodyName":"Sol 4","BodyID":4,"ProbesUsed":4,"EfficiencyTarget":6}`)

	sys, _ := s.GetOrCreateSystem("Sol")
	cmdr, _ := s.GetOrCreateCommander("Jameson")
	planet, _ := s.FindPlanetByBodyID(sys.ID, 4)
	status, _ := s.GetOrCreatePlanetStatus(planet.ID, cmdr.ID)
	if !status.Mapped || !status.Efficient {
		t.Errorf("mapping flags wrong: %+v", status)
	}

	// The only known planet is now mapped in a fully scanned system.
	sysStatus, _ := s.GetOrCreateSystemStatus(sys.ID, cmdr.ID)
	if !sysStatus.FullyMapped {
		t.Error("system not marked fully mapped")
	}
}

func TestProcessSurfaceScanRing(t *testing.T) {
	s := newTestSession(t)
	p := NewProcessor(s)

	feed(t, p, loadGameLine, jumpLine,
		`{"event":"SAAScanComplete","BodyName":"Sol 6 A Ring","BodyID":12,"ProbesUsed":2,"EfficiencyTarget":1}`)

	sys, _ := s.GetOrCreateSystem("Sol")
	if _, err := s.FindPlanetByBodyID(sys.ID, 12); !errors.Is(err, database.ErrNotFound) {
		t.Error("ring recorded as a planet")
	}
	nonBodies, err := s.ListNonBodies(sys.ID)
	if err != nil {
		t.Fatalf("list non-bodies: %v", err)
	}
	if len(nonBodies) != 1 || nonBodies[0].Name != "6 A Ring" {
		t.Fatalf("non-bodies wrong: %v", nonBodies)
	}
	cmdr, _ := s.GetOrCreateCommander("Jameson")
	status, _ := s.GetOrCreateNonBodyStatus(nonBodies[0].ID, cmdr.ID)
	if !status.Mapped || status.Efficient {
		t.Errorf("ring mapping flags wrong: %+v", status)
	}
}

func TestProcessSignals(t *testing.T) {
	s := newTestSession(t)
	p := NewProcessor(s)

	feed(t, p, loadGameLine, jumpLine,
		`{"event":"SAASignalsFound","BodyName":"Sol 4","BodyID":4,
		"Signals":[{"Type":"$SAA_SignalType_Biological;","Count":3},{"Type":"$SAA_SignalType_Geological;","Count":2}],
		"Genuses":[{"Genus":"$Codex_Ent_Bacterial_Genus_Name;"}]}`)

	sys, _ := s.GetOrCreateSystem("Sol")
	planet, err := s.FindPlanetByBodyID(sys.ID, 4)
	if err != nil {
		t.Fatalf("planet: %v", err)
	}
	if planet.BioSignals != 3 {
		t.Errorf("bio signals = %d, want 3", planet.BioSignals)
	}
	floras, _ := s.ListFlora(planet.ID)
	if len(floras) != 1 || floras[0].Genus != "$Codex_Ent_Bacterial_Genus_Name;" {
		t.Errorf("flora wrong: %v", floras)
	}

	// Signals on a belt cluster never become a planet.
	feed(t, p, `{"event":"FSSBodySignals","BodyName":"Sol A Belt Cluster 1","BodyID":20,
		"Signals":[{"Type":"$SAA_SignalType_Biological;","Count":1}]}`)
	if _, err := s.FindPlanetByBodyID(sys.ID, 20); !errors.Is(err, database.ErrNotFound) {
		t.Error("belt cluster recorded as a planet")
	}
}

func TestProcessOrganicScan(t *testing.T) {
	s := newTestSession(t)
	p := NewProcessor(s)
	genus := "$Codex_Ent_Bacterial_Genus_Name;"
	species := "$Codex_Ent_Bacterial_01_Name;"

	feed(t, p, loadGameLine, jumpLine,
		`{"event":"Scan","ScanType":"Detailed","BodyName":"Sol 4","BodyID":4,"PlanetClass":"Rocky body"}`)

	sys, _ := s.GetOrCreateSystem("Sol")
	cmdr, _ := s.GetOrCreateCommander("Jameson")
	planet, _ := s.FindPlanetByBodyID(sys.ID, 4)

	// Partial stages refine the color but never advance the counter.
	feed(t, p, `{"event":"ScanOrganic","ScanType":"Log","Body":4,
		"Genus":"`+genus+`","Species":"`+species+`","Variant":"$Codex_Ent_Bacterial_01_F_Name;"}`)
	flora, err := s.GetFlora(planet.ID, genus, "")
	if err != nil {
		t.Fatalf("flora: %v", err)
	}
	if flora.Color != "Lime" {
		t.Errorf("color = %q, want Lime", flora.Color)
	}
	count, _ := s.GetFloraScan(flora.ID, cmdr.ID)
	if count != 0 {
		t.Errorf("log stage advanced counter to %d", count)
	}

	feed(t, p, `{"event":"ScanOrganic","ScanType":"Analyse","Body":4,
		"Genus":"`+genus+`","Species":"`+species+`"}`)
	flora, _ = s.GetFlora(planet.ID, genus, species)
	count, _ = s.GetFloraScan(flora.ID, cmdr.ID)
	if count != 3 {
		t.Errorf("analysis counter = %d, want 3", count)
	}

	// A scan against an unknown body is dropped.
	feed(t, p, `{"event":"ScanOrganic","ScanType":"Analyse","Body":99,
		"Genus":"`+genus+`","Species":"`+species+`"}`)
}

func TestProcessCodexEntry(t *testing.T) {
	s := newTestSession(t)
	p := NewProcessor(s)

	feed(t, p, loadGameLine, jumpLine,
		`{"event":"Scan","ScanType":"Detailed","BodyName":"Sol 4","BodyID":4,"PlanetClass":"Rocky body"}`,
		`{"event":"CodexEntry","Category":"$Codex_Category_Biology;","BodyID":4,
		"Name":"$Codex_Ent_Stratum_04_F_Name;"}`)

	sys, _ := s.GetOrCreateSystem("Sol")
	cmdr, _ := s.GetOrCreateCommander("Jameson")
	planet, _ := s.FindPlanetByBodyID(sys.ID, 4)

	floras, _ := s.ListFlora(planet.ID)
	if len(floras) != 1 {
		t.Fatalf("expected one flora, got %d", len(floras))
	}
	if floras[0].Species != "$Codex_Ent_Stratum_04_Name;" || floras[0].Color != "Emerald" {
		t.Errorf("flora wrong: %+v", floras[0])
	}
	has, _ := s.HasCodexScan(cmdr.ID, 18, "$Codex_Ent_Stratum_04_F_Name;")
	if !has {
		t.Error("sighting not recorded in the region")
	}

	// Non-biology categories and entries without a body are dropped.
	feed(t, p,
		`{"event":"CodexEntry","Category":"$Codex_Category_StellarBodies;","BodyID":4,"Name":"$Codex_Ent_G_Type_Name;"}`,
		`{"event":"CodexEntry","Category":"$Codex_Category_Biology;","Name":"$Codex_Ent_Stratum_04_F_Name;"}`)
}

func TestRingName(t *testing.T) {
	if got := ringName("Sol 6", "Sol 6 A Ring"); got != "A Ring" {
		t.Errorf("got %q", got)
	}
	if got := ringName("Sol 6", "A Ring"); got != "A Ring" {
		t.Errorf("short full name: got %q", got)
	}
}
