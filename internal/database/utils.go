package database

import (
	"WooMasterKit/pkg/logging"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

func Exists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// Open connects to the sqlite file (":memory:" works too) and makes sure the
// schema exists.
func Open(dbname string) (*sqlx.DB, error) {
	logger := logging.GetLogger()
	logger.Info("Open:>Start")
	defer logger.Info("Open:>End")

	if dbname != ":memory:" {
		if Exists(dbname) {
			logger.Info(dbname, " exist")
		} else {
			logger.Info(dbname, " not exist, creating")
		}
	}

	db, err := sqlx.Connect("sqlite3", dbname)
	if err != nil {
		return nil, errors.Wrapf(err, "failed sqlx.Connect(sqlite3, %s)", dbname)
	}
	// a single connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(DB_SCHEMA); err != nil {
		if err := db.Close(); err != nil {
			logger.Error(err)
		}
		return nil, errors.Wrap(err, "failed to create schema")
	}

	return db, nil
}
