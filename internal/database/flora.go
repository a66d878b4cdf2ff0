package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// GetFlora finds the flora record for a genus on a planet. A record
// whose species is still unset matches any queried species, because a
// genus is first seen via signal detection before closer scanning
// determines the species; once the species is known it becomes part of
// the match key. Returns ErrNotFound on miss.
func (s *Session) GetFlora(planetID int64, genus, species string) (PlanetFlora, error) {
	rows, err := s.query(`SELECT id, planet_id, genus, species, color FROM planet_flora
		WHERE planet_id = ? AND genus = ? ORDER BY id`, planetID, genus)
	if err != nil {
		return PlanetFlora{}, fmt.Errorf("failed to look up flora: %w", err)
	}
	defer rows.Close()

	var fallback *PlanetFlora
	for rows.Next() {
		var f PlanetFlora
		if err := rows.Scan(&f.ID, &f.PlanetID, &f.Genus, &f.Species, &f.Color); err != nil {
			return PlanetFlora{}, fmt.Errorf("failed to read flora row: %w", err)
		}
		if f.Species == "" {
			return f, nil
		}
		if species != "" {
			if f.Species == species {
				return f, nil
			}
		} else if fallback == nil {
			fallback = &f
		}
	}
	if err := rows.Err(); err != nil {
		return PlanetFlora{}, err
	}
	if fallback != nil {
		return *fallback, nil
	}
	return PlanetFlora{}, ErrNotFound
}

// GetOrCreateFlora finds the flora record for a genus, creating it
// (with the species, when known) on miss.
func (s *Session) GetOrCreateFlora(planetID int64, genus, species string) (PlanetFlora, error) {
	flora, err := s.GetFlora(planetID, genus, species)
	if err == nil {
		return flora, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return PlanetFlora{}, err
	}

	res, err := s.exec(`INSERT INTO planet_flora (planet_id, genus, species) VALUES (?, ?, ?)`,
		planetID, genus, species)
	if err != nil {
		if isUniqueViolation(err) {
			return s.GetOrCreateFlora(planetID, genus, species)
		}
		return PlanetFlora{}, fmt.Errorf("failed to create flora: %w", err)
	}
	id, _ := res.LastInsertId()
	return PlanetFlora{ID: id, PlanetID: planetID, Genus: genus, Species: species}, nil
}

// AddFlora upserts a flora record, overwriting species and color with
// the provided values.
func (s *Session) AddFlora(planetID int64, genus, species, color string) error {
	flora, err := s.GetOrCreateFlora(planetID, genus, species)
	if err != nil {
		return err
	}
	_, err = s.exec(`UPDATE planet_flora SET species = ?, color = ? WHERE id = ?`,
		species, color, flora.ID)
	if err != nil {
		return fmt.Errorf("failed to update flora: %w", err)
	}
	return nil
}

// SetFloraColor sets the resolved variant color on a genus record.
func (s *Session) SetFloraColor(planetID int64, genus, color string) error {
	flora, err := s.GetOrCreateFlora(planetID, genus, "")
	if err != nil {
		return err
	}
	_, err = s.exec(`UPDATE planet_flora SET color = ? WHERE id = ?`, color, flora.ID)
	if err != nil {
		return fmt.Errorf("failed to set flora color: %w", err)
	}
	return nil
}

// SetFloraSpeciesScan records scan progress for a flora and commander.
// The counter only escalates. Reaching level 3 (fully analyzed)
// deletes all pending waypoints for that flora and commander.
func (s *Session) SetFloraSpeciesScan(planetID int64, genus, species string, scan, commanderID int64) error {
	flora, err := s.GetOrCreateFlora(planetID, genus, species)
	if err != nil {
		return err
	}
	if _, err = s.exec(`UPDATE planet_flora SET species = ? WHERE id = ?`, species, flora.ID); err != nil {
		return fmt.Errorf("failed to set flora species: %w", err)
	}

	if _, err = s.exec(`INSERT INTO flora_scans (commander_id, flora_id) VALUES (?, ?)
		ON CONFLICT(commander_id, flora_id) DO NOTHING`, commanderID, flora.ID); err != nil {
		return fmt.Errorf("failed to create flora scan: %w", err)
	}
	if _, err = s.exec(`UPDATE flora_scans SET count = ? WHERE commander_id = ? AND flora_id = ?
		AND count < ?`, scan, commanderID, flora.ID, scan); err != nil {
		return fmt.Errorf("failed to set flora scan count: %w", err)
	}

	if scan == 3 {
		if _, err = s.exec(`DELETE FROM flora_waypoints WHERE commander_id = ? AND flora_id = ?`,
			commanderID, flora.ID); err != nil {
			return fmt.Errorf("failed to clear flora waypoints: %w", err)
		}
	}
	return nil
}

// GetFloraScan returns the scan counter for a flora and commander,
// zero if none exists.
func (s *Session) GetFloraScan(floraID, commanderID int64) (int64, error) {
	var count int64
	err := s.queryRow(`SELECT count FROM flora_scans WHERE commander_id = ? AND flora_id = ?`,
		commanderID, floraID).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up flora scan: %w", err)
	}
	return count, nil
}

// AddFloraWaypoint stores a navigation marker for a flora, unless that
// flora is already fully analyzed for the commander.
func (s *Session) AddFloraWaypoint(planetID int64, genus, species string, commanderID int64,
	latitude, longitude float64, scanWaypoint bool) error {

	flora, err := s.GetFlora(planetID, genus, species)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	count, err := s.GetFloraScan(flora.ID, commanderID)
	if err != nil {
		return err
	}
	if count == 3 {
		return nil
	}

	waypointType := "tag"
	if scanWaypoint {
		waypointType = "scan"
	}
	_, err = s.exec(`INSERT INTO flora_waypoints (commander_id, flora_id, type, latitude, longitude)
		VALUES (?, ?, ?, ?, ?)`, commanderID, flora.ID, waypointType, latitude, longitude)
	if err != nil {
		return fmt.Errorf("failed to add flora waypoint: %w", err)
	}
	return nil
}

// ListFloraWaypoints returns the pending waypoints for a flora and
// commander.
func (s *Session) ListFloraWaypoints(floraID, commanderID int64) ([]Waypoint, error) {
	rows, err := s.query(`SELECT id, commander_id, flora_id, type, latitude, longitude
		FROM flora_waypoints WHERE flora_id = ? AND commander_id = ? ORDER BY id`,
		floraID, commanderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list waypoints: %w", err)
	}
	defer rows.Close()

	var waypoints []Waypoint
	for rows.Next() {
		var w Waypoint
		if err := rows.Scan(&w.ID, &w.CommanderID, &w.FloraID, &w.Type, &w.Latitude, &w.Longitude); err != nil {
			return nil, fmt.Errorf("failed to read waypoint row: %w", err)
		}
		waypoints = append(waypoints, w)
	}
	return waypoints, rows.Err()
}

// HasWaypoint reports whether any flora on the planet still has a
// pending tag waypoint for the commander.
func (s *Session) HasWaypoint(planetID, commanderID int64) (bool, error) {
	var count int64
	err := s.queryRow(`SELECT COUNT(*) FROM flora_waypoints w
		JOIN planet_flora f ON f.id = w.flora_id
		WHERE f.planet_id = ? AND w.commander_id = ? AND w.type = 'tag'`,
		planetID, commanderID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count waypoints: %w", err)
	}
	return count > 0, nil
}

// ListFlora returns all flora recorded on a planet.
func (s *Session) ListFlora(planetID int64) ([]PlanetFlora, error) {
	rows, err := s.query(`SELECT id, planet_id, genus, species, color FROM planet_flora
		WHERE planet_id = ? ORDER BY genus`, planetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flora: %w", err)
	}
	defer rows.Close()

	var floras []PlanetFlora
	for rows.Next() {
		var f PlanetFlora
		if err := rows.Scan(&f.ID, &f.PlanetID, &f.Genus, &f.Species, &f.Color); err != nil {
			return nil, fmt.Errorf("failed to read flora row: %w", err)
		}
		floras = append(floras, f)
	}
	return floras, rows.Err()
}

// ClearFlora deletes all flora records for a planet, cascading to
// their scans and waypoints.
func (s *Session) ClearFlora(planetID int64) error {
	if _, err := s.exec(`DELETE FROM planet_flora WHERE planet_id = ?`, planetID); err != nil {
		return fmt.Errorf("failed to clear flora: %w", err)
	}
	return nil
}

// SetCodexScan records the first sighting of a codex specimen id in a
// region for a commander. Duplicate sightings are a no-op.
func (s *Session) SetCodexScan(commanderID int64, biological string, region *int64) error {
	if region == nil {
		return nil
	}
	_, err := s.exec(`INSERT INTO codex_scans (commander_id, region, biological) VALUES (?, ?, ?)
		ON CONFLICT(commander_id, region, biological) DO NOTHING`,
		commanderID, *region, biological)
	if err != nil {
		return fmt.Errorf("failed to record codex scan: %w", err)
	}
	return nil
}

// HasCodexScan reports whether a specimen id has already been logged
// in a region by a commander.
func (s *Session) HasCodexScan(commanderID, region int64, biological string) (bool, error) {
	var count int64
	err := s.queryRow(`SELECT COUNT(*) FROM codex_scans
		WHERE commander_id = ? AND region = ? AND biological = ?`,
		commanderID, region, biological).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to look up codex scan: %w", err)
	}
	return count > 0, nil
}

// HasJournal reports whether a journal file is already recorded as
// fully processed.
func (s *Session) HasJournal(name string) (bool, error) {
	var count int64
	err := s.queryRow(`SELECT COUNT(*) FROM journal_log WHERE journal = ?`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check journal ledger: %w", err)
	}
	return count > 0, nil
}

// RecordJournal marks a journal file as fully processed. A duplicate
// insert (a race with a concurrent replay of the same file) is
// swallowed.
func (s *Session) RecordJournal(name string) error {
	_, err := s.exec(`INSERT INTO journal_log (journal) VALUES (?)`, name)
	if err != nil && !isUniqueViolation(err) {
		return fmt.Errorf("failed to record journal: %w", err)
	}
	return nil
}
