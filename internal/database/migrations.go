package database

import (
	"fmt"
	"strconv"
	"strings"
)

// schemaVersion is the current schema revision, stored under the
// "version" key in the metadata table.
const schemaVersion = 3

const schemaDDL = `
CREATE TABLE IF NOT EXISTS metadata (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS commanders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS systems (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	x REAL NOT NULL DEFAULT 0,
	y REAL NOT NULL DEFAULT 0,
	z REAL NOT NULL DEFAULT 0,
	region INTEGER,
	body_count INTEGER NOT NULL DEFAULT 1,
	non_body_count INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS system_status (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	system_id INTEGER NOT NULL REFERENCES systems(id) ON DELETE CASCADE,
	commander_id INTEGER NOT NULL REFERENCES commanders(id),
	honked INTEGER NOT NULL DEFAULT 0,
	fully_scanned INTEGER NOT NULL DEFAULT 0,
	fully_mapped INTEGER NOT NULL DEFAULT 0,
	UNIQUE(system_id, commander_id)
);
CREATE TABLE IF NOT EXISTS stars (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	system_id INTEGER NOT NULL REFERENCES systems(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	body_id INTEGER NOT NULL,
	distance REAL,
	mass REAL NOT NULL DEFAULT 0,
	type TEXT NOT NULL DEFAULT '',
	subclass INTEGER NOT NULL DEFAULT 0,
	luminosity TEXT NOT NULL DEFAULT '',
	rotation REAL NOT NULL DEFAULT 0,
	orbital_period REAL NOT NULL DEFAULT 0,
	UNIQUE(system_id, name, body_id)
);
CREATE TABLE IF NOT EXISTS star_status (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	star_id INTEGER NOT NULL REFERENCES stars(id) ON DELETE CASCADE,
	commander_id INTEGER NOT NULL REFERENCES commanders(id),
	discovered INTEGER NOT NULL DEFAULT 1,
	was_discovered INTEGER NOT NULL DEFAULT 0,
	UNIQUE(star_id, commander_id)
);
CREATE TABLE IF NOT EXISTS star_rings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	star_id INTEGER NOT NULL REFERENCES stars(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	type TEXT NOT NULL DEFAULT '',
	UNIQUE(star_id, name)
);
CREATE TABLE IF NOT EXISTS planets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	system_id INTEGER NOT NULL REFERENCES systems(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	type TEXT NOT NULL DEFAULT '',
	body_id INTEGER NOT NULL,
	atmosphere TEXT NOT NULL DEFAULT '',
	volcanism TEXT,
	distance REAL NOT NULL DEFAULT 0,
	mass REAL NOT NULL DEFAULT 0,
	gravity REAL NOT NULL DEFAULT 0,
	temp REAL,
	pressure REAL,
	radius REAL NOT NULL DEFAULT 0,
	rotation REAL NOT NULL DEFAULT 0,
	orbital_period REAL NOT NULL DEFAULT 0,
	landable INTEGER NOT NULL DEFAULT 0,
	parent_stars TEXT NOT NULL DEFAULT '',
	bio_signals INTEGER NOT NULL DEFAULT 0,
	materials TEXT NOT NULL DEFAULT '',
	terraform_state TEXT NOT NULL DEFAULT '',
	UNIQUE(system_id, name, body_id)
);
CREATE TABLE IF NOT EXISTS planet_status (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	planet_id INTEGER NOT NULL REFERENCES planets(id) ON DELETE CASCADE,
	commander_id INTEGER NOT NULL REFERENCES commanders(id),
	discovered INTEGER NOT NULL DEFAULT 1,
	was_discovered INTEGER NOT NULL DEFAULT 0,
	mapped INTEGER NOT NULL DEFAULT 0,
	was_mapped INTEGER NOT NULL DEFAULT 0,
	efficient INTEGER NOT NULL DEFAULT 0,
	scan_state INTEGER NOT NULL DEFAULT 0,
	UNIQUE(planet_id, commander_id)
);
CREATE TABLE IF NOT EXISTS planet_gasses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	planet_id INTEGER NOT NULL REFERENCES planets(id) ON DELETE CASCADE,
	gas_name TEXT NOT NULL,
	percent REAL NOT NULL,
	UNIQUE(planet_id, gas_name)
);
CREATE TABLE IF NOT EXISTS planet_rings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	planet_id INTEGER NOT NULL REFERENCES planets(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	type TEXT NOT NULL DEFAULT '',
	UNIQUE(planet_id, name)
);
CREATE TABLE IF NOT EXISTS planet_flora (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	planet_id INTEGER NOT NULL REFERENCES planets(id) ON DELETE CASCADE,
	genus TEXT NOT NULL,
	species TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	UNIQUE(planet_id, genus)
);
CREATE TABLE IF NOT EXISTS flora_scans (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	commander_id INTEGER NOT NULL REFERENCES commanders(id),
	flora_id INTEGER NOT NULL REFERENCES planet_flora(id) ON DELETE CASCADE,
	count INTEGER NOT NULL DEFAULT 0,
	UNIQUE(commander_id, flora_id)
);
CREATE TABLE IF NOT EXISTS flora_waypoints (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	commander_id INTEGER NOT NULL REFERENCES commanders(id),
	flora_id INTEGER NOT NULL REFERENCES planet_flora(id) ON DELETE CASCADE,
	type TEXT NOT NULL DEFAULT 'tag',
	latitude REAL NOT NULL,
	longitude REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS non_bodies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	system_id INTEGER NOT NULL REFERENCES systems(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	body_id INTEGER NOT NULL,
	UNIQUE(system_id, name, body_id)
);
CREATE TABLE IF NOT EXISTS non_body_status (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	non_body_id INTEGER NOT NULL REFERENCES non_bodies(id) ON DELETE CASCADE,
	commander_id INTEGER NOT NULL REFERENCES commanders(id),
	discovered INTEGER NOT NULL DEFAULT 1,
	was_discovered INTEGER NOT NULL DEFAULT 0,
	mapped INTEGER NOT NULL DEFAULT 0,
	was_mapped INTEGER NOT NULL DEFAULT 0,
	efficient INTEGER NOT NULL DEFAULT 0,
	UNIQUE(non_body_id, commander_id)
);
CREATE TABLE IF NOT EXISTS codex_scans (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	commander_id INTEGER NOT NULL REFERENCES commanders(id),
	region INTEGER NOT NULL,
	biological TEXT NOT NULL DEFAULT '',
	UNIQUE(commander_id, region, biological)
);
CREATE TABLE IF NOT EXISTS journal_log (
	journal TEXT PRIMARY KEY
);
`

// migrate creates any missing tables and applies the versioned
// migration chain for databases created by older releases. The
// current version is stamped into the metadata table on success.
//
// A known failure signature (non-integer version value left behind by
// a past bad write) gets a corrective version stamp and is reported
// for operator follow-up rather than retried.
func (d *DB) migrate() error {
	for _, stmt := range strings.Split(schemaDDL, ";\n") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := d.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	var value string
	err := d.db.QueryRow(`SELECT value FROM metadata WHERE key = 'version'`).Scan(&value)
	if err == nil {
		version, convErr := strconv.Atoi(value)
		if convErr != nil {
			d.stampVersion(1)
			return fmt.Errorf("unreadable schema version %q, corrective stamp applied; rerun the import: %w", value, convErr)
		}
		if err := d.applyMigrations(version); err != nil {
			return err
		}
	}

	d.stampVersion(schemaVersion)
	return nil
}

// applyMigrations upgrades a database stamped with an older version.
// Fresh databases never reach this path with work to do because the
// schema DDL already creates the latest shape.
func (d *DB) applyMigrations(version int) error {
	if version < 2 {
		// Remove duplicate gas rows left behind before the
		// (planet_id, gas_name) uniqueness constraint existed.
		_, err := d.db.Exec(`
DELETE FROM planet_gasses
WHERE ROWID IN (
	SELECT t.ROWID FROM planet_gasses t INNER JOIN (
		SELECT *, RANK() OVER(PARTITION BY planet_id, gas_name ORDER BY id) rank
		FROM planet_gasses
	) r ON t.id = r.id WHERE r.rank > 1
)`)
		if err != nil {
			return fmt.Errorf("failed to deduplicate planet gasses: %w", err)
		}
		columns := []struct{ table, column, definition string }{
			{"systems", "x", "REAL NOT NULL DEFAULT 0"},
			{"systems", "y", "REAL NOT NULL DEFAULT 0"},
			{"systems", "z", "REAL NOT NULL DEFAULT 0"},
			{"systems", "region", "INTEGER"},
			{"stars", "distance", "REAL"},
		}
		for _, c := range columns {
			if err := d.addColumnIfMissing(c.table, c.column, c.definition); err != nil {
				return err
			}
		}
	}
	if version < 3 {
		columns := []struct{ table, column, definition string }{
			{"systems", "body_count", "INTEGER NOT NULL DEFAULT 1"},
			{"systems", "non_body_count", "INTEGER NOT NULL DEFAULT 0"},
			{"stars", "subclass", "INTEGER NOT NULL DEFAULT 0"},
			{"stars", "mass", "REAL NOT NULL DEFAULT 0"},
			{"planets", "mass", "REAL NOT NULL DEFAULT 0"},
			{"planets", "terraform_state", "TEXT NOT NULL DEFAULT ''"},
		}
		for _, c := range columns {
			if err := d.addColumnIfMissing(c.table, c.column, c.definition); err != nil {
				return err
			}
		}
	}
	return nil
}

// addColumnIfMissing adds a column to an existing table. SQLite has no
// ADD COLUMN IF NOT EXISTS, so presence is checked via table_info.
func (d *DB) addColumnIfMissing(table, column, definition string) error {
	rows, err := d.db.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return fmt.Errorf("failed to inspect table %s: %w", table, err)
	}
	defer rows.Close()

	exists := false
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal any
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return fmt.Errorf("failed to read table info for %s: %w", table, err)
		}
		if name == column {
			exists = true
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = d.db.Exec(fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, table, column, definition))
	if err != nil {
		return fmt.Errorf("failed to add column %s.%s: %w", table, column, err)
	}
	return nil
}

func (d *DB) stampVersion(version int) {
	d.db.Exec(`INSERT INTO metadata (key, value) VALUES ('version', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, strconv.Itoa(version))
}
