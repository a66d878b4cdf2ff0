package journal

import (
	"errors"
	"regexp"
	"strings"

	"explodata/internal/bio"
	"explodata/internal/database"
	"explodata/internal/galaxy"
)

// parentStarPattern matches short body names like "AB 2 a": the
// leading capitals name the stars the body orbits.
var parentStarPattern = regexp.MustCompile(`^([A-Z]+) .+$`)

// Processor applies journal events to the store one at a time. It
// tracks the commander and system established by earlier events in the
// same stream. A Processor owns its Session and must not be shared
// between goroutines.
type Processor struct {
	session *database.Session
	cmdr    *database.Commander
	system  *database.System
}

func NewProcessor(session *database.Session) *Processor {
	return &Processor{session: session}
}

// Process decodes and applies one journal line. Any error, malformed
// JSON included, counts as a line failure for the caller's retry
// accounting.
func (p *Processor) Process(line []byte) error {
	entry, err := decodeEntry(line)
	if err != nil {
		return err
	}
	return p.apply(entry)
}

// apply dispatches one classified event. Events that arrive before a
// commander or system is established are dropped; the journal format
// guarantees the ordering in practice, and a truncated file must not
// poison the run.
func (p *Processor) apply(e *Entry) error {
	switch classify(e) {
	case eventLoadGame:
		return p.setCommander(e.Commander)
	case eventCommander:
		return p.setCommander(e.Name)
	case eventJump:
		return p.setSystem(e.StarSystem, e.StarPos)
	case eventScanStar:
		if p.system == nil {
			return nil
		}
		return p.addStar(e)
	case eventScanPlanet:
		if p.system == nil {
			return nil
		}
		return p.addPlanet(e)
	case eventScanNonBody:
		if p.system == nil {
			return nil
		}
		return p.addNonBody(e)
	case eventHonk:
		return p.applyHonk(e)
	case eventSignals:
		if p.system == nil {
			return nil
		}
		return p.addSignals(e)
	case eventAllBodiesFound:
		return p.applyAllBodiesFound()
	case eventSurfaceScan:
		return p.applySurfaceScan(e)
	case eventOrganicScan:
		if p.system == nil || p.cmdr == nil {
			return nil
		}
		return p.addOrganicScan(e)
	case eventCodexEntry:
		return p.addCodexEntry(e)
	}
	return nil
}

func (p *Processor) setCommander(name string) error {
	cmdr, err := p.session.GetOrCreateCommander(name)
	if err != nil {
		return err
	}
	p.cmdr = &cmdr
	return nil
}

// setSystem establishes the current system. Events without coordinates
// (docked carrier jumps, some location lines) or without a system name
// are ignored so a stale system is never half-updated and a nameless
// system row is never created.
func (p *Processor) setSystem(name string, pos []float64) error {
	if name == "" || len(pos) < 3 {
		return nil
	}
	sys, err := p.session.GetOrCreateSystem(name)
	if err != nil {
		return err
	}
	sys.X, sys.Y, sys.Z = pos[0], pos[1], pos[2]
	if id, _, ok := galaxy.FindRegion(sys.X, sys.Y, sys.Z); ok {
		sys.Region = &id
	}
	if err = p.session.SaveSystem(sys); err != nil {
		return err
	}
	p.system = &sys
	return nil
}

func (p *Processor) addStar(e *Entry) error {
	name := database.ShortBodyName(p.system.Name, e.BodyName)
	star, err := p.session.GetOrCreateStar(p.system.ID, name, e.bodyID())
	if err != nil {
		return err
	}

	distance := e.DistanceFromArrivalLS
	star.Distance = &distance
	star.Type = e.StarType
	star.Mass = e.StellarMass
	star.Subclass = e.Subclass
	star.Luminosity = e.Luminosity
	star.Rotation = e.RotationPeriod
	star.OrbitalPeriod = e.OrbitalPeriod
	if err = p.session.SaveStar(star); err != nil {
		return err
	}

	if p.cmdr != nil {
		status, err := p.session.GetOrCreateStarStatus(star.ID, p.cmdr.ID)
		if err != nil {
			return err
		}
		status.Discovered = true
		status.WasDiscovered = wasDiscovered(e)
		if err = p.session.SaveStarStatus(status); err != nil {
			return err
		}
	}

	for _, ring := range e.Rings {
		if err = p.session.AddStarRing(star.ID, ringName(e.BodyName, ring.Name), ring.RingClass); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) addPlanet(e *Entry) error {
	name := database.ShortBodyName(p.system.Name, e.BodyName)
	planet, err := p.session.GetOrCreatePlanet(p.system.ID, name, e.bodyID())
	if err != nil {
		return err
	}

	planet.Type = e.PlanetClass
	planet.Distance = e.DistanceFromArrivalLS
	planet.Mass = e.MassEM
	planet.Gravity = e.SurfaceGravity
	planet.Temp = e.SurfaceTemperature
	planet.Pressure = e.SurfacePressure
	planet.Radius = e.Radius
	planet.Volcanism = e.Volcanism
	planet.Rotation = e.RotationPeriod
	planet.OrbitalPeriod = e.OrbitalPeriod
	planet.Landable = e.Landable
	planet.TerraformState = e.TerraformState
	if e.AtmosphereType != nil {
		planet.Atmosphere = *e.AtmosphereType
	}

	// Leading capitals in the short name identify the parent stars;
	// bodies named after the system orbit its single star.
	if m := parentStarPattern.FindStringSubmatch(name); m != nil {
		for _, star := range m[1] {
			planet.ParentStars.Add(string(star))
		}
	} else {
		planet.ParentStars.Add(p.system.Name)
	}
	for _, mat := range e.Materials {
		planet.Materials.Add(mat.Name)
	}
	if err = p.session.SavePlanet(planet); err != nil {
		return err
	}

	if p.cmdr != nil {
		status, err := p.session.GetOrCreatePlanetStatus(planet.ID, p.cmdr.ID)
		if err != nil {
			return err
		}
		status.Discovered = true
		status.WasDiscovered = wasDiscovered(e)
		status.WasMapped = e.WasMapped
		if err = p.session.SavePlanetStatus(status); err != nil {
			return err
		}
		if err = p.session.SetScanState(planet.ID, p.cmdr.ID, scanLevel(e.ScanType)); err != nil {
			return err
		}
	}

	for _, gas := range e.AtmosphereComposition {
		if err = p.session.AddPlanetGas(planet.ID, gas.Name, gas.Percent); err != nil {
			return err
		}
	}
	for _, ring := range e.Rings {
		if err = p.session.AddPlanetRing(planet.ID, ringName(e.BodyName, ring.Name), ring.RingClass); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) addNonBody(e *Entry) error {
	name := database.ShortBodyName(p.system.Name, e.BodyName)
	nb, err := p.session.GetOrCreateNonBody(p.system.ID, name, e.bodyID())
	if err != nil {
		return err
	}
	if p.cmdr == nil {
		return nil
	}
	status, err := p.session.GetOrCreateNonBodyStatus(nb.ID, p.cmdr.ID)
	if err != nil {
		return err
	}
	status.Discovered = true
	status.WasDiscovered = e.WasDiscovered
	return p.session.SaveNonBodyStatus(status)
}

// applyHonk handles the system-wide discovery scan: it fixes the body
// counts and, when the scan reports full progress, marks the system
// fully scanned.
func (p *Processor) applyHonk(e *Entry) error {
	if p.system == nil || p.cmdr == nil {
		return nil
	}
	sys, err := p.session.RefreshSystem(p.system.ID)
	if err != nil {
		return err
	}
	status, err := p.session.GetOrCreateSystemStatus(sys.ID, p.cmdr.ID)
	if err != nil {
		return err
	}
	status.Honked = true
	if e.Progress == 1.0 {
		status.FullyScanned = true
	}
	if err = p.session.SaveSystemStatus(status); err != nil {
		return err
	}

	sys.BodyCount = e.BodyCount
	sys.NonBodyCount = e.NonBodyCount
	if err = p.session.SaveSystem(sys); err != nil {
		return err
	}
	p.system = &sys
	return nil
}

func (p *Processor) applyAllBodiesFound() error {
	if p.system == nil || p.cmdr == nil {
		return nil
	}
	status, err := p.session.GetOrCreateSystemStatus(p.system.ID, p.cmdr.ID)
	if err != nil {
		return err
	}
	status.FullyScanned = true
	return p.session.SaveSystemStatus(status)
}

// applySurfaceScan handles completed surface mapping. Rings and belt
// clusters record against the non-body table, everything else against
// the planet. A mapped planet may complete the system: once every
// known planet is mapped in a fully scanned system, the system is
// fully mapped.
func (p *Processor) applySurfaceScan(e *Entry) error {
	if p.system == nil || p.cmdr == nil {
		return nil
	}
	name := database.ShortBodyName(p.system.Name, e.BodyName)
	efficient := e.EfficiencyTarget >= e.ProbesUsed

	if isRingOrBelt(name) {
		nb, err := p.session.GetOrCreateNonBody(p.system.ID, name, e.bodyID())
		if err != nil {
			return err
		}
		status, err := p.session.GetOrCreateNonBodyStatus(nb.ID, p.cmdr.ID)
		if err != nil {
			return err
		}
		status.Mapped = true
		status.Efficient = efficient
		if err = p.session.SaveNonBodyStatus(status); err != nil {
			return err
		}
	} else {
		planet, err := p.session.GetOrCreatePlanet(p.system.ID, name, e.bodyID())
		if err != nil {
			return err
		}
		status, err := p.session.GetOrCreatePlanetStatus(planet.ID, p.cmdr.ID)
		if err != nil {
			return err
		}
		status.Mapped = true
		status.Efficient = efficient
		if err = p.session.SavePlanetStatus(status); err != nil {
			return err
		}
	}

	return p.checkFullyMapped()
}

func (p *Processor) checkFullyMapped() error {
	status, err := p.session.GetOrCreateSystemStatus(p.system.ID, p.cmdr.ID)
	if err != nil {
		return err
	}
	if !status.FullyScanned {
		return nil
	}
	planets, err := p.session.ListPlanets(p.system.ID)
	if err != nil {
		return err
	}
	for _, planet := range planets {
		ps, err := p.session.GetOrCreatePlanetStatus(planet.ID, p.cmdr.ID)
		if err != nil {
			return err
		}
		if !ps.Mapped {
			return nil
		}
	}
	status.FullyMapped = true
	return p.session.SaveSystemStatus(status)
}

// addSignals records biological signal counts and any genuses already
// identified by the scanner. Signals on rings and belt clusters are
// not bodies and are dropped.
func (p *Processor) addSignals(e *Entry) error {
	name := database.ShortBodyName(p.system.Name, e.BodyName)
	if isRingOrBelt(name) {
		return nil
	}
	planet, err := p.session.GetOrCreatePlanet(p.system.ID, name, e.bodyID())
	if err != nil {
		return err
	}

	for _, signal := range e.Signals {
		if signal.Type == "$SAA_SignalType_Biological;" {
			planet.BioSignals = signal.Count
			if err = p.session.SavePlanet(planet); err != nil {
				return err
			}
		}
	}

	for _, genus := range e.Genuses {
		if _, err = p.session.GetOrCreateFlora(planet.ID, genus.Genus, ""); err != nil {
			return err
		}
	}
	return nil
}

// addOrganicScan records hand-scanner progress on a flora. Only a
// completed analysis advances the persistent scan counter; every stage
// with variant data refines the color.
func (p *Processor) addOrganicScan(e *Entry) error {
	planet, err := p.session.FindPlanetByBodyID(p.system.ID, e.Body)
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var level int64
	switch e.ScanType {
	case "Log":
		level = 1
	case "Sample":
		level = 2
	case "Analyse":
		level = 3
	}

	if level == 3 {
		if err = p.session.SetFloraSpeciesScan(planet.ID, e.Genus, e.Species, level, p.cmdr.ID); err != nil {
			return err
		}
	}
	if e.Variant != "" {
		_, _, color := bio.ParseVariant(e.Variant)
		if err = p.session.SetFloraColor(planet.ID, e.Genus, color); err != nil {
			return err
		}
	}
	return nil
}

// addCodexEntry handles first-sighting codex records for biology. The
// specimen resolves to genus, species and color in one step, and the
// sighting is logged against the system's galactic region.
func (p *Processor) addCodexEntry(e *Entry) error {
	if e.Category != "$Codex_Category_Biology;" || e.BodyID == nil {
		return nil
	}
	if p.system == nil || p.cmdr == nil {
		return nil
	}
	planet, err := p.session.FindPlanetByBodyID(p.system.ID, *e.BodyID)
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	genus, species, color := bio.ParseVariant(e.Name)
	if genus != "" && species != "" {
		if err = p.session.AddFlora(planet.ID, genus, species, color); err != nil {
			return err
		}
	}
	return p.session.SetCodexScan(p.cmdr.ID, e.Name, p.system.Region)
}

func wasDiscovered(e *Entry) bool {
	return e.ScanType == "NavBeaconDetail" || e.WasDiscovered
}

// scanLevel ranks scan fidelity for the monotonic per-planet scan
// state.
func scanLevel(scanType string) int64 {
	switch scanType {
	case "AutoScan":
		return 1
	case "Basic":
		return 2
	case "Detailed", "NavBeaconDetail":
		return 3
	}
	return 0
}

func isRingOrBelt(shortName string) bool {
	return strings.HasSuffix(shortName, "Ring") || strings.Contains(shortName, "Belt Cluster")
}

// ringName strips the parent body's name from a ring's full name.
func ringName(bodyName, fullRingName string) string {
	if len(fullRingName) > len(bodyName)+1 {
		return fullRingName[len(bodyName)+1:]
	}
	return fullRingName
}
