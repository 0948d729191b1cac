package schema

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BusSeating/pkg/dbmetrics"
	"github.com/m04kA/SMC-BusSeating/pkg/psqlbuilder"
)

var postgresStatements = []string{
	`CREATE TABLE IF NOT EXISTS routes (
		number     INTEGER PRIMARY KEY,
		bus_number TEXT    NOT NULL,
		driver     TEXT    NOT NULL,
		capacity   INTEGER NOT NULL CHECK (capacity > 0)
	)`,
	`CREATE TABLE IF NOT EXISTS people (
		id              TEXT    PRIMARY KEY,
		name            TEXT    NOT NULL,
		email           TEXT    NOT NULL,
		email_key       TEXT    NOT NULL,
		date_of_birth   TEXT    NOT NULL,
		role            TEXT    NOT NULL CHECK (role IN ('student', 'staff')),
		gender          TEXT,
		paid            BOOLEAN,
		seat_number     INTEGER,
		route_number    INTEGER REFERENCES routes (number),
		roster_position INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS people_role_email_uidx ON people (role, email_key)`,
	`CREATE INDEX IF NOT EXISTS people_route_idx ON people (route_number, roster_position)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id           BIGSERIAL   PRIMARY KEY,
		route_number INTEGER     NOT NULL REFERENCES routes (number),
		record_date  TEXT        NOT NULL,
		headcount    INTEGER     NOT NULL CHECK (headcount >= 0),
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS attendance_route_idx ON attendance (route_number, id)`,
}

var sqliteStatements = []string{
	`CREATE TABLE IF NOT EXISTS routes (
		number     INTEGER PRIMARY KEY,
		bus_number TEXT    NOT NULL,
		driver     TEXT    NOT NULL,
		capacity   INTEGER NOT NULL CHECK (capacity > 0)
	)`,
	`CREATE TABLE IF NOT EXISTS people (
		id              TEXT    PRIMARY KEY,
		name            TEXT    NOT NULL,
		email           TEXT    NOT NULL,
		email_key       TEXT    NOT NULL,
		date_of_birth   TEXT    NOT NULL,
		role            TEXT    NOT NULL CHECK (role IN ('student', 'staff')),
		gender          TEXT,
		paid            BOOLEAN,
		seat_number     INTEGER,
		route_number    INTEGER REFERENCES routes (number),
		roster_position INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS people_role_email_uidx ON people (role, email_key)`,
	`CREATE INDEX IF NOT EXISTS people_route_idx ON people (route_number, roster_position)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		route_number INTEGER NOT NULL REFERENCES routes (number),
		record_date  TEXT    NOT NULL,
		headcount    INTEGER NOT NULL CHECK (headcount >= 0),
		submitted_at TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS attendance_route_idx ON attendance (route_number, id)`,
}

// Apply создает таблицы, если их еще нет
func Apply(ctx context.Context, db dbmetrics.DBExecutor, driver string) error {
	statements := postgresStatements
	if driver == psqlbuilder.DriverSQLite {
		statements = sqliteStatements
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: statement %d: %w", i, err)
		}
	}
	return nil
}
