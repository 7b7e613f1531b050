package database

const DB_NAME = "db.db"

const DB_SCHEMA = `CREATE TABLE IF NOT EXISTS Report (
	ID integer PRIMARY KEY AUTOINCREMENT,
	ReportID text NOT NULL UNIQUE,
	CreatedAt text NOT NULL,
	Products integer,
	Records integer,
	Skipped integer,
	Body text NOT NULL
);

CREATE TABLE IF NOT EXISTS License (
	ID integer PRIMARY KEY AUTOINCREMENT,
	LicenseKey text NOT NULL,
	CreatedAt text NOT NULL
);
`
