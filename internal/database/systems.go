package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// GetOrCreateCommander looks up a commander by display name, creating
// the row on first sighting.
func (s *Session) GetOrCreateCommander(name string) (Commander, error) {
	var cmdr Commander
	err := s.queryRow(`SELECT id, name FROM commanders WHERE name = ?`, name).
		Scan(&cmdr.ID, &cmdr.Name)
	if err == nil {
		return cmdr, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Commander{}, fmt.Errorf("failed to look up commander: %w", err)
	}

	res, err := s.exec(`INSERT INTO commanders (name) VALUES (?)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return s.GetOrCreateCommander(name)
		}
		return Commander{}, fmt.Errorf("failed to create commander: %w", err)
	}
	id, _ := res.LastInsertId()
	return Commander{ID: id, Name: name}, nil
}

// GetOrCreateSystem looks up a system by name, creating it with
// defaults on first reference.
func (s *Session) GetOrCreateSystem(name string) (System, error) {
	sys, err := s.getSystem(name)
	if err == nil {
		return sys, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return System{}, fmt.Errorf("failed to look up system: %w", err)
	}

	res, err := s.exec(`INSERT INTO systems (name) VALUES (?)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost a race with a concurrent replay task.
			return s.GetOrCreateSystem(name)
		}
		return System{}, fmt.Errorf("failed to create system: %w", err)
	}
	id, _ := res.LastInsertId()
	return System{ID: id, Name: name, BodyCount: 1}, nil
}

func (s *Session) getSystem(name string) (System, error) {
	var sys System
	err := s.queryRow(`SELECT id, name, x, y, z, region, body_count, non_body_count
		FROM systems WHERE name = ?`, name).
		Scan(&sys.ID, &sys.Name, &sys.X, &sys.Y, &sys.Z, &sys.Region,
			&sys.BodyCount, &sys.NonBodyCount)
	return sys, err
}

// RefreshSystem re-fetches a system row by primary key. Replay tasks
// call this before mutating entities that may have been written by a
// concurrent task.
func (s *Session) RefreshSystem(id int64) (System, error) {
	var sys System
	err := s.queryRow(`SELECT id, name, x, y, z, region, body_count, non_body_count
		FROM systems WHERE id = ?`, id).
		Scan(&sys.ID, &sys.Name, &sys.X, &sys.Y, &sys.Z, &sys.Region,
			&sys.BodyCount, &sys.NonBodyCount)
	if err != nil {
		return System{}, fmt.Errorf("failed to refresh system: %w", err)
	}
	return sys, nil
}

// SaveSystem writes all mutable system attributes in one statement.
func (s *Session) SaveSystem(sys System) error {
	_, err := s.exec(`UPDATE systems SET x = ?, y = ?, z = ?, region = ?,
		body_count = ?, non_body_count = ? WHERE id = ?`,
		sys.X, sys.Y, sys.Z, sys.Region, sys.BodyCount, sys.NonBodyCount, sys.ID)
	if err != nil {
		return fmt.Errorf("failed to save system: %w", err)
	}
	return nil
}

// GetOrCreateSystemStatus fetches the per-commander status row for a
// system, creating it lazily on first query.
func (s *Session) GetOrCreateSystemStatus(systemID, commanderID int64) (SystemStatus, error) {
	var st SystemStatus
	err := s.queryRow(`SELECT id, system_id, commander_id, honked, fully_scanned, fully_mapped
		FROM system_status WHERE system_id = ? AND commander_id = ?`, systemID, commanderID).
		Scan(&st.ID, &st.SystemID, &st.CommanderID, &st.Honked, &st.FullyScanned, &st.FullyMapped)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return SystemStatus{}, fmt.Errorf("failed to look up system status: %w", err)
	}

	res, err := s.exec(`INSERT INTO system_status (system_id, commander_id) VALUES (?, ?)`,
		systemID, commanderID)
	if err != nil {
		if isUniqueViolation(err) {
			return s.GetOrCreateSystemStatus(systemID, commanderID)
		}
		return SystemStatus{}, fmt.Errorf("failed to create system status: %w", err)
	}
	id, _ := res.LastInsertId()
	return SystemStatus{ID: id, SystemID: systemID, CommanderID: commanderID}, nil
}

// SaveSystemStatus writes the status flags in one statement.
func (s *Session) SaveSystemStatus(st SystemStatus) error {
	_, err := s.exec(`UPDATE system_status SET honked = ?, fully_scanned = ?, fully_mapped = ?
		WHERE id = ?`, st.Honked, st.FullyScanned, st.FullyMapped, st.ID)
	if err != nil {
		return fmt.Errorf("failed to save system status: %w", err)
	}
	return nil
}
