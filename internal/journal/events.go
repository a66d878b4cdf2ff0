// Package journal replays game journal files into the exploration
// store. A Controller discovers journal files, fans them out to a
// bounded pool of replay tasks, and reports progress to subscribed
// observers; a Processor applies one decoded event at a time.
package journal

import (
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

// Entry is one decoded journal line. Journal events share a flat
// shape, so a single struct covers every event the processor consumes.
// Pointer fields mark attributes whose absence is meaningful.
type Entry struct {
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`

	// loadgame / commander
	Commander string `json:"Commander"`
	Name      string `json:"Name"`

	// location / fsdjump / carrierjump
	StarSystem string    `json:"StarSystem"`
	StarPos    []float64 `json:"StarPos"`

	// scan and surface scan events
	BodyName              string     `json:"BodyName"`
	BodyID                *int64     `json:"BodyID"`
	ScanType              string     `json:"ScanType"`
	WasDiscovered         bool       `json:"WasDiscovered"`
	WasMapped             bool       `json:"WasMapped"`
	DistanceFromArrivalLS float64    `json:"DistanceFromArrivalLS"`
	StarType              string     `json:"StarType"`
	Subclass              int64      `json:"Subclass"`
	StellarMass           float64    `json:"StellarMass"`
	Luminosity            string     `json:"Luminosity"`
	RotationPeriod        float64    `json:"RotationPeriod"`
	OrbitalPeriod         float64    `json:"OrbitalPeriod"`
	PlanetClass           string     `json:"PlanetClass"`
	MassEM                float64    `json:"MassEM"`
	SurfaceGravity        float64    `json:"SurfaceGravity"`
	SurfaceTemperature    *float64   `json:"SurfaceTemperature"`
	SurfacePressure       *float64   `json:"SurfacePressure"`
	Radius                float64    `json:"Radius"`
	Volcanism             *string    `json:"Volcanism"`
	Landable              bool       `json:"Landable"`
	TerraformState        string     `json:"TerraformState"`
	AtmosphereType        *string    `json:"AtmosphereType"`
	AtmosphereComposition []GasShare `json:"AtmosphereComposition"`
	Materials             []Material `json:"Materials"`
	Rings                 []RingInfo `json:"Rings"`

	// fssdiscoveryscan
	BodyCount    int64   `json:"BodyCount"`
	NonBodyCount int64   `json:"NonBodyCount"`
	Progress     float64 `json:"Progress"`

	// fssbodysignals / saasignalsfound
	Signals []Signal     `json:"Signals"`
	Genuses []GenusFound `json:"Genuses"`

	// saascancomplete
	EfficiencyTarget int64 `json:"EfficiencyTarget"`
	ProbesUsed       int64 `json:"ProbesUsed"`

	// scanorganic
	Body    int64  `json:"Body"`
	Genus   string `json:"Genus"`
	Species string `json:"Species"`
	Variant string `json:"Variant"`

	// codexentry
	Category string `json:"Category"`
}

// GasShare is one component of an atmosphere composition.
type GasShare struct {
	Name    string  `json:"Name"`
	Percent float64 `json:"Percent"`
}

// Material is one surface prospecting material.
type Material struct {
	Name string `json:"Name"`
}

// RingInfo is one ring or belt attached to a scanned body.
type RingInfo struct {
	Name      string `json:"Name"`
	RingClass string `json:"RingClass"`
}

// Signal is one surface signal source count.
type Signal struct {
	Type  string `json:"Type"`
	Count int64  `json:"Count"`
}

// GenusFound is one identified genus in a signals event.
type GenusFound struct {
	Genus string `json:"Genus"`
}

func (e *Entry) bodyID() int64 {
	if e.BodyID != nil {
		return *e.BodyID
	}
	return 0
}

// eventKind is the closed set of event variants the processor handles.
// Classification happens once, at decode time; anything else is
// unclassified and ignored.
type eventKind int

const (
	eventUnclassified eventKind = iota
	eventLoadGame
	eventCommander
	eventJump
	eventScanStar
	eventScanPlanet
	eventScanNonBody
	eventHonk
	eventSignals
	eventAllBodiesFound
	eventSurfaceScan
	eventOrganicScan
	eventCodexEntry
)

// classify resolves an entry to its variant. Scan events split into
// star, planet, and non-body variants here: the journal carries no
// explicit discriminant for them beyond which attributes are present.
func classify(e *Entry) eventKind {
	switch strings.ToLower(e.Event) {
	case "loadgame":
		return eventLoadGame
	case "commander", "newcommander":
		return eventCommander
	case "location", "fsdjump", "carrierjump":
		return eventJump
	case "scan":
		switch {
		case e.StarType != "":
			return eventScanStar
		case e.PlanetClass != "":
			return eventScanPlanet
		default:
			return eventScanNonBody
		}
	case "fssdiscoveryscan":
		return eventHonk
	case "fssbodysignals", "saasignalsfound":
		return eventSignals
	case "fssallbodiesfound":
		return eventAllBodiesFound
	case "saascancomplete":
		return eventSurfaceScan
	case "scanorganic":
		return eventOrganicScan
	case "codexentry":
		return eventCodexEntry
	}
	return eventUnclassified
}

func decodeEntry(line []byte) (*Entry, error) {
	var e Entry
	if err := json.Unmarshal(line, &e); err != nil {
		return nil, err
	}
	if e.Event == "" {
		return nil, errors.New("journal entry has no event field")
	}
	return &e, nil
}
