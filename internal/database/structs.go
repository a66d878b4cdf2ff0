package database

// Entity records for the exploration store. These are plain data rows;
// they carry no session affinity and can be passed freely between
// goroutines. All mutation goes through Session methods.

// Commander is a player identity, created on first sighting.
type Commander struct {
	ID   int64
	Name string
}

// System is a star system, unique by name.
type System struct {
	ID           int64
	Name         string
	X            float64
	Y            float64
	Z            float64
	Region       *int64 // nil until derived from coordinates
	BodyCount    int64
	NonBodyCount int64
}

// SystemStatus tracks per-commander discovery progress in a system.
type SystemStatus struct {
	ID           int64
	SystemID     int64
	CommanderID  int64
	Honked       bool
	FullyScanned bool
	FullyMapped  bool
}

// Star is a stellar body, unique by (system, name, body id).
type Star struct {
	ID            int64
	SystemID      int64
	Name          string
	BodyID        int64
	Distance      *float64
	Mass          float64
	Type          string
	Subclass      int64
	Luminosity    string
	Rotation      float64
	OrbitalPeriod float64
}

// StarStatus tracks per-commander discovery flags for a star.
type StarStatus struct {
	ID            int64
	StarID        int64
	CommanderID   int64
	Discovered    bool
	WasDiscovered bool
}

// Planet is a planetary body, unique by (system, name, body id).
// Materials and ParentStars are genuine sets in the domain model;
// they serialize to delimited strings only at the row codec.
type Planet struct {
	ID             int64
	SystemID       int64
	Name           string
	Type           string
	BodyID         int64
	Atmosphere     string
	Volcanism      *string
	Distance       float64
	Mass           float64
	Gravity        float64
	Temp           *float64
	Pressure       *float64
	Radius         float64
	Rotation       float64
	OrbitalPeriod  float64
	Landable       bool
	ParentStars    StringSet
	BioSignals     int64
	Materials      StringSet
	TerraformState string
}

// PlanetStatus tracks per-commander discovery and mapping flags for a
// planet. ScanState only ever escalates (see Session.SetScanState).
type PlanetStatus struct {
	ID            int64
	PlanetID      int64
	CommanderID   int64
	Discovered    bool
	WasDiscovered bool
	Mapped        bool
	WasMapped     bool
	Efficient     bool
	ScanState     int64
}

// PlanetGas is one atmospheric component, unique by (planet, gas name).
type PlanetGas struct {
	ID       int64
	PlanetID int64
	GasName  string
	Percent  float64
}

// Ring is a planetary or stellar ring / belt, unique by name within
// its parent body.
type Ring struct {
	ID     int64
	BodyID int64 // parent star or planet row id
	Name   string
	Type   string
}

// PlanetFlora is a biological signal on a planet, at most one per
// genus per planet. Species and color are filled in as scans resolve
// them.
type PlanetFlora struct {
	ID       int64
	PlanetID int64
	Genus    string
	Species  string
	Color    string
}

// FloraScan is a per-commander scan progress counter (0-3) for one
// flora record.
type FloraScan struct {
	ID          int64
	CommanderID int64
	FloraID     int64
	Count       int64
}

// Waypoint is an ephemeral navigation marker for a flora record,
// cleared once the flora is fully analyzed.
type Waypoint struct {
	ID          int64
	CommanderID int64
	FloraID     int64
	Type        string // "tag" or "scan"
	Latitude    float64
	Longitude   float64
}

// NonBody covers asteroid belts, clusters, and other scan targets
// without the full body attribute set.
type NonBody struct {
	ID       int64
	SystemID int64
	Name     string
	BodyID   int64
}

// NonBodyStatus tracks per-commander flags for a non-body object.
type NonBodyStatus struct {
	ID            int64
	NonBodyID     int64
	CommanderID   int64
	Discovered    bool
	WasDiscovered bool
	Mapped        bool
	WasMapped     bool
	Efficient     bool
}

// CodexScan records the first-ever sighting of a codex specimen id in
// a galactic region by a commander.
type CodexScan struct {
	ID          int64
	CommanderID int64
	Region      int64
	Biological  string
}
