package edsm

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"explodata/internal/database"
	"explodata/internal/log"
)

const (
	// EDSM publishes gravity in g and periods in days; the store keeps
	// the journal's units (m/s² and seconds).
	surfaceGravity = 9.797759
	secondsPerDay  = 86400
)

var parentStarPattern = regexp.MustCompile(`^([A-Z]+) .+$`)

// Observer receives enrichment lifecycle notifications.
type Observer struct {
	Start  func()
	Finish func()
}

// Fetcher runs catalog enrichment in the background, one system at a
// time. A fetch requested while another is in flight is dropped.
type Fetcher struct {
	db     *database.DB
	client *Client

	mu      sync.Mutex
	running bool

	obsMu     sync.RWMutex
	observers map[string]Observer
}

func NewFetcher(db *database.DB, client *Client) *Fetcher {
	return &Fetcher{
		db:        db,
		client:    client,
		observers: make(map[string]Observer),
	}
}

// Subscribe registers an observer under a name, replacing any previous
// observer registered with the same name.
func (f *Fetcher) Subscribe(name string, obs Observer) {
	f.obsMu.Lock()
	defer f.obsMu.Unlock()
	f.observers[name] = obs
}

// Unsubscribe removes a named observer.
func (f *Fetcher) Unsubscribe(name string) {
	f.obsMu.Lock()
	defer f.obsMu.Unlock()
	delete(f.observers, name)
}

// Fetch starts background enrichment for one system. Returns false if
// an enrichment is already running.
func (f *Fetcher) Fetch(systemName string) bool {
	f.mu.Lock()
	if f.running {
		f.mu.Unlock()
		return false
	}
	f.running = true
	f.mu.Unlock()

	f.fireStart()
	go f.worker(systemName)
	return true
}

// Running reports whether an enrichment is in flight.
func (f *Fetcher) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *Fetcher) worker(systemName string) {
	defer func() {
		f.mu.Lock()
		f.running = false
		f.mu.Unlock()
		f.fireFinish()
	}()

	ctx := context.Background()
	data, err := f.client.Bodies(ctx, systemName)
	if err != nil {
		// The catalog is best effort; a failed fetch enriches nothing.
		log.Warn("Catalog fetch failed", "system", systemName, "error", err)
		return
	}
	if err = f.Ingest(ctx, data); err != nil {
		log.Error("Catalog ingest failed", "system", systemName, "error", err)
	}
}

// Ingest writes one catalog response into the store. A malformed body
// is logged and skipped; it never aborts the rest of the response.
func (f *Fetcher) Ingest(ctx context.Context, data SystemBodies) error {
	if data.Name == "" {
		// EDSM answers unknown systems with an empty object.
		return nil
	}
	session, err := f.db.NewSession(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	sys, err := session.GetOrCreateSystem(data.Name)
	if err != nil {
		return err
	}

	for _, body := range data.Bodies {
		switch body.Type {
		case "Star":
			err = ingestStar(session, sys, body)
		case "Planet":
			err = ingestPlanet(session, sys, body)
		default:
			continue
		}
		if err != nil {
			log.Error("Could not ingest catalog body", "system", sys.Name,
				"body", body.Name, "error", err)
		}
	}
	return nil
}

func ingestStar(session *database.Session, sys database.System, body Body) error {
	name := database.ShortBodyName(sys.Name, body.Name)
	star, err := session.GetOrCreateStar(sys.ID, name, body.BodyID)
	if err != nil {
		return err
	}

	if body.SpectralClass != "" {
		star.Type = body.SpectralClass[:len(body.SpectralClass)-1]
		star.Subclass, _ = strconv.ParseInt(body.SpectralClass[len(body.SpectralClass)-1:], 10, 64)
	} else {
		star.Type = mapStarClass(body.SubType)
	}
	star.Luminosity = body.Luminosity
	distance := body.DistanceToArrival
	star.Distance = &distance
	star.Mass = body.SolarMasses
	star.OrbitalPeriod = periodSeconds(body.OrbitalPeriod)
	star.Rotation = body.RotationalPeriod * secondsPerDay
	if err = session.SaveStar(star); err != nil {
		return err
	}

	for _, ring := range append(body.Belts, body.Rings...) {
		if err = session.AddStarRing(star.ID, trimRingName(body.Name, ring.Name),
			mapRingClass(ring.Type)); err != nil {
			return err
		}
	}
	return nil
}

func ingestPlanet(session *database.Session, sys database.System, body Body) error {
	name := database.ShortBodyName(sys.Name, body.Name)
	planet, err := session.GetOrCreatePlanet(sys.ID, name, body.BodyID)
	if err != nil {
		return err
	}

	planet.Type = mapBodyType(body.SubType)
	planet.Distance = body.DistanceToArrival
	planet.Atmosphere = mapAtmosphere(body.AtmosphereType)
	planet.Gravity = body.Gravity * surfaceGravity
	planet.Temp = body.SurfaceTemperature
	planet.Mass = body.EarthMasses
	planet.Landable = body.IsLandable
	planet.OrbitalPeriod = periodSeconds(body.OrbitalPeriod)
	planet.Rotation = body.RotationalPeriod * secondsPerDay
	volcanism := mapVolcanism(body.VolcanismType)
	planet.Volcanism = &volcanism
	planet.TerraformState = ""
	if body.TerraformingState == "Candidate for terraforming" {
		planet.TerraformState = "Terraformable"
	}

	if m := parentStarPattern.FindStringSubmatch(name); m != nil {
		for _, star := range m[1] {
			planet.ParentStars.Add(string(star))
		}
	} else {
		planet.ParentStars.Add(sys.Name)
	}
	for material := range body.Materials {
		planet.Materials.Add(strings.ToLower(material))
	}
	if err = session.SavePlanet(planet); err != nil {
		return err
	}

	for gas, percent := range body.AtmosphereComposition {
		if err = session.AddPlanetGas(planet.ID, mapAtmosphere(gas), percent); err != nil {
			return err
		}
	}
	for _, ring := range body.Rings {
		if err = session.AddPlanetRing(planet.ID, trimRingName(body.Name, ring.Name),
			mapRingClass(ring.Type)); err != nil {
			return err
		}
	}
	return nil
}

func periodSeconds(days *float64) float64 {
	if days == nil {
		return 0
	}
	return *days * secondsPerDay
}

func trimRingName(bodyName, fullRingName string) string {
	if len(fullRingName) > len(bodyName)+1 {
		return fullRingName[len(bodyName)+1:]
	}
	return fullRingName
}

func (f *Fetcher) fireStart() {
	for _, obs := range f.snapshotObservers() {
		if obs.Start != nil {
			obs.Start()
		}
	}
}

func (f *Fetcher) fireFinish() {
	for _, obs := range f.snapshotObservers() {
		if obs.Finish != nil {
			obs.Finish()
		}
	}
}

func (f *Fetcher) snapshotObservers() []Observer {
	f.obsMu.RLock()
	defer f.obsMu.RUnlock()
	observers := make([]Observer, 0, len(f.observers))
	for _, obs := range f.observers {
		observers = append(observers, obs)
	}
	return observers
}
