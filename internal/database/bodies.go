package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ShortBodyName strips the leading "<system name> " prefix from a full
// body name. Bodies whose name exactly matches the system name (the
// main star of a one-star system) keep the full name. Every code path
// that parses a body name, journal or catalog, goes through here so
// the same physical body always keys identically.
func ShortBodyName(systemName, fullName string) string {
	if after, found := strings.CutPrefix(fullName, systemName+" "); found {
		return after
	}
	return fullName
}

// GetOrCreateStar looks up a star by (system, short name), creating it
// with the given body id if absent.
func (s *Session) GetOrCreateStar(systemID int64, name string, bodyID int64) (Star, error) {
	var star Star
	err := s.queryRow(`SELECT id, system_id, name, body_id, distance, mass, type, subclass,
		luminosity, rotation, orbital_period FROM stars WHERE system_id = ? AND name = ?`,
		systemID, name).
		Scan(&star.ID, &star.SystemID, &star.Name, &star.BodyID, &star.Distance, &star.Mass,
			&star.Type, &star.Subclass, &star.Luminosity, &star.Rotation, &star.OrbitalPeriod)
	if err == nil {
		return star, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Star{}, fmt.Errorf("failed to look up star: %w", err)
	}

	res, err := s.exec(`INSERT INTO stars (system_id, name, body_id) VALUES (?, ?, ?)`,
		systemID, name, bodyID)
	if err != nil {
		if isUniqueViolation(err) {
			return s.GetOrCreateStar(systemID, name, bodyID)
		}
		return Star{}, fmt.Errorf("failed to create star: %w", err)
	}
	id, _ := res.LastInsertId()
	return Star{ID: id, SystemID: systemID, Name: name, BodyID: bodyID}, nil
}

// SaveStar writes all mutable star attributes in one statement.
func (s *Session) SaveStar(star Star) error {
	_, err := s.exec(`UPDATE stars SET body_id = ?, distance = ?, mass = ?, type = ?,
		subclass = ?, luminosity = ?, rotation = ?, orbital_period = ? WHERE id = ?`,
		star.BodyID, star.Distance, star.Mass, star.Type, star.Subclass, star.Luminosity,
		star.Rotation, star.OrbitalPeriod, star.ID)
	if err != nil {
		return fmt.Errorf("failed to save star: %w", err)
	}
	return nil
}

// GetMainStar returns the system's arrival star (distance zero), or
// ErrNotFound if no star qualifies.
func (s *Session) GetMainStar(systemID int64) (Star, error) {
	var star Star
	err := s.queryRow(`SELECT id, system_id, name, body_id, distance, mass, type, subclass,
		luminosity, rotation, orbital_period FROM stars WHERE system_id = ? AND distance = 0`,
		systemID).
		Scan(&star.ID, &star.SystemID, &star.Name, &star.BodyID, &star.Distance, &star.Mass,
			&star.Type, &star.Subclass, &star.Luminosity, &star.Rotation, &star.OrbitalPeriod)
	if errors.Is(err, sql.ErrNoRows) {
		return Star{}, ErrNotFound
	}
	if err != nil {
		return Star{}, fmt.Errorf("failed to look up main star: %w", err)
	}
	return star, nil
}

// ListStars returns all stars recorded for a system.
func (s *Session) ListStars(systemID int64) ([]Star, error) {
	rows, err := s.query(`SELECT id, system_id, name, body_id, distance, mass, type, subclass,
		luminosity, rotation, orbital_period FROM stars WHERE system_id = ? ORDER BY body_id`,
		systemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stars: %w", err)
	}
	defer rows.Close()

	var stars []Star
	for rows.Next() {
		var star Star
		if err := rows.Scan(&star.ID, &star.SystemID, &star.Name, &star.BodyID, &star.Distance,
			&star.Mass, &star.Type, &star.Subclass, &star.Luminosity, &star.Rotation,
			&star.OrbitalPeriod); err != nil {
			return nil, fmt.Errorf("failed to read star row: %w", err)
		}
		stars = append(stars, star)
	}
	return stars, rows.Err()
}

// GetOrCreateStarStatus fetches the per-commander flags for a star,
// creating them with discovered=true (a star is never recorded before
// somebody observes it).
func (s *Session) GetOrCreateStarStatus(starID, commanderID int64) (StarStatus, error) {
	var st StarStatus
	err := s.queryRow(`SELECT id, star_id, commander_id, discovered, was_discovered
		FROM star_status WHERE star_id = ? AND commander_id = ?`, starID, commanderID).
		Scan(&st.ID, &st.StarID, &st.CommanderID, &st.Discovered, &st.WasDiscovered)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return StarStatus{}, fmt.Errorf("failed to look up star status: %w", err)
	}

	res, err := s.exec(`INSERT INTO star_status (star_id, commander_id) VALUES (?, ?)`,
		starID, commanderID)
	if err != nil {
		if isUniqueViolation(err) {
			return s.GetOrCreateStarStatus(starID, commanderID)
		}
		return StarStatus{}, fmt.Errorf("failed to create star status: %w", err)
	}
	id, _ := res.LastInsertId()
	return StarStatus{ID: id, StarID: starID, CommanderID: commanderID, Discovered: true}, nil
}

// SaveStarStatus writes the status flags in one statement.
func (s *Session) SaveStarStatus(st StarStatus) error {
	_, err := s.exec(`UPDATE star_status SET discovered = ?, was_discovered = ? WHERE id = ?`,
		st.Discovered, st.WasDiscovered, st.ID)
	if err != nil {
		return fmt.Errorf("failed to save star status: %w", err)
	}
	return nil
}

// AddStarRing upserts a ring or belt on a star by name.
func (s *Session) AddStarRing(starID int64, name, ringType string) error {
	_, err := s.exec(`INSERT INTO star_rings (star_id, name, type) VALUES (?, ?, ?)
		ON CONFLICT(star_id, name) DO UPDATE SET type = excluded.type`,
		starID, name, ringType)
	if err != nil {
		return fmt.Errorf("failed to add star ring: %w", err)
	}
	return nil
}

// GetOrCreatePlanet looks up a planet by (system, short name), creating
// it with the given body id if absent.
func (s *Session) GetOrCreatePlanet(systemID int64, name string, bodyID int64) (Planet, error) {
	planet, err := s.scanPlanet(s.queryRow(planetSelect+` WHERE system_id = ? AND name = ?`,
		systemID, name))
	if err == nil {
		return planet, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Planet{}, fmt.Errorf("failed to look up planet: %w", err)
	}

	res, err := s.exec(`INSERT INTO planets (system_id, name, body_id) VALUES (?, ?, ?)`,
		systemID, name, bodyID)
	if err != nil {
		if isUniqueViolation(err) {
			return s.GetOrCreatePlanet(systemID, name, bodyID)
		}
		return Planet{}, fmt.Errorf("failed to create planet: %w", err)
	}
	id, _ := res.LastInsertId()
	return Planet{ID: id, SystemID: systemID, Name: name, BodyID: bodyID}, nil
}

// FindPlanetByBodyID looks up a planet by its in-system body sequence
// id. Returns ErrNotFound on miss; organic scans for unknown bodies
// are dropped by the caller.
func (s *Session) FindPlanetByBodyID(systemID, bodyID int64) (Planet, error) {
	planet, err := s.scanPlanet(s.queryRow(planetSelect+` WHERE system_id = ? AND body_id = ?`,
		systemID, bodyID))
	if errors.Is(err, sql.ErrNoRows) {
		return Planet{}, ErrNotFound
	}
	if err != nil {
		return Planet{}, fmt.Errorf("failed to look up planet by body id: %w", err)
	}
	return planet, nil
}

// ListPlanets returns all planets recorded for a system.
func (s *Session) ListPlanets(systemID int64) ([]Planet, error) {
	rows, err := s.query(planetSelect+` WHERE system_id = ? ORDER BY body_id`, systemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list planets: %w", err)
	}
	defer rows.Close()

	var planets []Planet
	for rows.Next() {
		planet, err := s.scanPlanet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read planet row: %w", err)
		}
		planets = append(planets, planet)
	}
	return planets, rows.Err()
}

const planetSelect = `SELECT id, system_id, name, type, body_id, atmosphere, volcanism,
	distance, mass, gravity, temp, pressure, radius, rotation, orbital_period, landable,
	parent_stars, bio_signals, materials, terraform_state FROM planets`

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Session) scanPlanet(row rowScanner) (Planet, error) {
	var (
		p                      Planet
		parentStars, materials string
	)
	err := row.Scan(&p.ID, &p.SystemID, &p.Name, &p.Type, &p.BodyID, &p.Atmosphere,
		&p.Volcanism, &p.Distance, &p.Mass, &p.Gravity, &p.Temp, &p.Pressure, &p.Radius,
		&p.Rotation, &p.OrbitalPeriod, &p.Landable, &parentStars, &p.BioSignals,
		&materials, &p.TerraformState)
	if err != nil {
		return Planet{}, err
	}
	p.ParentStars = decodeStringSet(parentStars)
	p.Materials = decodeStringSet(materials)
	return p, nil
}

// SavePlanet writes all mutable planet attributes in one statement.
// The material and parent-star sets serialize to sorted delimited
// strings here and nowhere else.
func (s *Session) SavePlanet(p Planet) error {
	_, err := s.exec(`UPDATE planets SET type = ?, body_id = ?, atmosphere = ?, volcanism = ?,
		distance = ?, mass = ?, gravity = ?, temp = ?, pressure = ?, radius = ?,
		rotation = ?, orbital_period = ?, landable = ?, parent_stars = ?, bio_signals = ?,
		materials = ?, terraform_state = ? WHERE id = ?`,
		p.Type, p.BodyID, p.Atmosphere, p.Volcanism, p.Distance, p.Mass, p.Gravity,
		p.Temp, p.Pressure, p.Radius, p.Rotation, p.OrbitalPeriod, p.Landable,
		p.ParentStars.encode(), p.BioSignals, p.Materials.encode(), p.TerraformState, p.ID)
	if err != nil {
		return fmt.Errorf("failed to save planet: %w", err)
	}
	return nil
}

// GetOrCreatePlanetStatus fetches the per-commander flags for a
// planet, creating them with discovered=true.
func (s *Session) GetOrCreatePlanetStatus(planetID, commanderID int64) (PlanetStatus, error) {
	var st PlanetStatus
	err := s.queryRow(`SELECT id, planet_id, commander_id, discovered, was_discovered,
		mapped, was_mapped, efficient, scan_state FROM planet_status
		WHERE planet_id = ? AND commander_id = ?`, planetID, commanderID).
		Scan(&st.ID, &st.PlanetID, &st.CommanderID, &st.Discovered, &st.WasDiscovered,
			&st.Mapped, &st.WasMapped, &st.Efficient, &st.ScanState)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return PlanetStatus{}, fmt.Errorf("failed to look up planet status: %w", err)
	}

	res, err := s.exec(`INSERT INTO planet_status (planet_id, commander_id) VALUES (?, ?)`,
		planetID, commanderID)
	if err != nil {
		if isUniqueViolation(err) {
			return s.GetOrCreatePlanetStatus(planetID, commanderID)
		}
		return PlanetStatus{}, fmt.Errorf("failed to create planet status: %w", err)
	}
	id, _ := res.LastInsertId()
	return PlanetStatus{ID: id, PlanetID: planetID, CommanderID: commanderID, Discovered: true}, nil
}

// SavePlanetStatus writes the status flags in one statement. ScanState
// is excluded; it only moves through SetScanState.
func (s *Session) SavePlanetStatus(st PlanetStatus) error {
	_, err := s.exec(`UPDATE planet_status SET discovered = ?, was_discovered = ?,
		mapped = ?, was_mapped = ?, efficient = ? WHERE id = ?`,
		st.Discovered, st.WasDiscovered, st.Mapped, st.WasMapped, st.Efficient, st.ID)
	if err != nil {
		return fmt.Errorf("failed to save planet status: %w", err)
	}
	return nil
}

// SetScanState raises the scan level for a planet and commander. The
// value is monotonic: a later lower-fidelity scan never downgrades a
// stronger prior result.
func (s *Session) SetScanState(planetID, commanderID, value int64) error {
	st, err := s.GetOrCreatePlanetStatus(planetID, commanderID)
	if err != nil {
		return err
	}
	_, err = s.exec(`UPDATE planet_status SET scan_state = ? WHERE id = ? AND scan_state < ?`,
		value, st.ID, value)
	if err != nil {
		return fmt.Errorf("failed to set scan state: %w", err)
	}
	return nil
}

// AddPlanetGas upserts one atmospheric component; re-observation
// overwrites the percentage, never duplicates the row.
func (s *Session) AddPlanetGas(planetID int64, gas string, percent float64) error {
	_, err := s.exec(`INSERT INTO planet_gasses (planet_id, gas_name, percent) VALUES (?, ?, ?)
		ON CONFLICT(planet_id, gas_name) DO UPDATE SET percent = excluded.percent`,
		planetID, gas, percent)
	if err != nil {
		return fmt.Errorf("failed to add planet gas: %w", err)
	}
	return nil
}

// GetPlanetGasses returns the recorded atmosphere composition.
func (s *Session) GetPlanetGasses(planetID int64) ([]PlanetGas, error) {
	rows, err := s.query(`SELECT id, planet_id, gas_name, percent FROM planet_gasses
		WHERE planet_id = ? ORDER BY gas_name`, planetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list planet gasses: %w", err)
	}
	defer rows.Close()

	var gasses []PlanetGas
	for rows.Next() {
		var g PlanetGas
		if err := rows.Scan(&g.ID, &g.PlanetID, &g.GasName, &g.Percent); err != nil {
			return nil, fmt.Errorf("failed to read gas row: %w", err)
		}
		gasses = append(gasses, g)
	}
	return gasses, rows.Err()
}

// AddPlanetRing upserts a ring on a planet by name.
func (s *Session) AddPlanetRing(planetID int64, name, ringType string) error {
	_, err := s.exec(`INSERT INTO planet_rings (planet_id, name, type) VALUES (?, ?, ?)
		ON CONFLICT(planet_id, name) DO UPDATE SET type = excluded.type`,
		planetID, name, ringType)
	if err != nil {
		return fmt.Errorf("failed to add planet ring: %w", err)
	}
	return nil
}

// GetOrCreateNonBody looks up a belt cluster or similar scan target,
// creating it if absent.
func (s *Session) GetOrCreateNonBody(systemID int64, name string, bodyID int64) (NonBody, error) {
	var nb NonBody
	err := s.queryRow(`SELECT id, system_id, name, body_id FROM non_bodies
		WHERE system_id = ? AND name = ?`, systemID, name).
		Scan(&nb.ID, &nb.SystemID, &nb.Name, &nb.BodyID)
	if err == nil {
		return nb, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return NonBody{}, fmt.Errorf("failed to look up non-body: %w", err)
	}

	res, err := s.exec(`INSERT INTO non_bodies (system_id, name, body_id) VALUES (?, ?, ?)`,
		systemID, name, bodyID)
	if err != nil {
		if isUniqueViolation(err) {
			return s.GetOrCreateNonBody(systemID, name, bodyID)
		}
		return NonBody{}, fmt.Errorf("failed to create non-body: %w", err)
	}
	id, _ := res.LastInsertId()
	return NonBody{ID: id, SystemID: systemID, Name: name, BodyID: bodyID}, nil
}

// ListNonBodies returns all non-body scan targets recorded for a
// system.
func (s *Session) ListNonBodies(systemID int64) ([]NonBody, error) {
	rows, err := s.query(`SELECT id, system_id, name, body_id FROM non_bodies
		WHERE system_id = ? ORDER BY body_id`, systemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list non-bodies: %w", err)
	}
	defer rows.Close()

	var nonBodies []NonBody
	for rows.Next() {
		var nb NonBody
		if err := rows.Scan(&nb.ID, &nb.SystemID, &nb.Name, &nb.BodyID); err != nil {
			return nil, fmt.Errorf("failed to read non-body row: %w", err)
		}
		nonBodies = append(nonBodies, nb)
	}
	return nonBodies, rows.Err()
}

// GetOrCreateNonBodyStatus fetches the per-commander flags for a
// non-body, creating them with discovered=true.
func (s *Session) GetOrCreateNonBodyStatus(nonBodyID, commanderID int64) (NonBodyStatus, error) {
	var st NonBodyStatus
	err := s.queryRow(`SELECT id, non_body_id, commander_id, discovered, was_discovered,
		mapped, was_mapped, efficient FROM non_body_status
		WHERE non_body_id = ? AND commander_id = ?`, nonBodyID, commanderID).
		Scan(&st.ID, &st.NonBodyID, &st.CommanderID, &st.Discovered, &st.WasDiscovered,
			&st.Mapped, &st.WasMapped, &st.Efficient)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return NonBodyStatus{}, fmt.Errorf("failed to look up non-body status: %w", err)
	}

	res, err := s.exec(`INSERT INTO non_body_status (non_body_id, commander_id) VALUES (?, ?)`,
		nonBodyID, commanderID)
	if err != nil {
		if isUniqueViolation(err) {
			return s.GetOrCreateNonBodyStatus(nonBodyID, commanderID)
		}
		return NonBodyStatus{}, fmt.Errorf("failed to create non-body status: %w", err)
	}
	id, _ := res.LastInsertId()
	return NonBodyStatus{ID: id, NonBodyID: nonBodyID, CommanderID: commanderID, Discovered: true}, nil
}

// SaveNonBodyStatus writes the status flags in one statement.
func (s *Session) SaveNonBodyStatus(st NonBodyStatus) error {
	_, err := s.exec(`UPDATE non_body_status SET discovered = ?, was_discovered = ?,
		mapped = ?, was_mapped = ?, efficient = ? WHERE id = ?`,
		st.Discovered, st.WasDiscovered, st.Mapped, st.WasMapped, st.Efficient, st.ID)
	if err != nil {
		return fmt.Errorf("failed to save non-body status: %w", err)
	}
	return nil
}
