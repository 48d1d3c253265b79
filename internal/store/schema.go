package store

// schemaVersion is the current schema. Bump together with a migration step
// in sqlstore.go.
const schemaVersion = 1

var schema = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS readings (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at     TEXT NOT NULL,
	question       TEXT NOT NULL DEFAULT '',
	date_input     TEXT NOT NULL DEFAULT '',
	code           TEXT NOT NULL,
	changed_code   TEXT NOT NULL DEFAULT '',
	changing_lines TEXT NOT NULL DEFAULT '',
	bazi_key       TEXT NOT NULL,
	san_he_ju      TEXT NOT NULL DEFAULT '',
	chart_payload  BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_readings_created ON readings(created_at DESC);
`
