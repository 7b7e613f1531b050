package license

import (
	"WooMasterKit/pkg/logging"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type License struct {
	ID         int    `db:"ID"`
	LicenseKey string `db:"LicenseKey"`
	CreatedAt  string `db:"CreatedAt"`
}

func (l *License) Insert(db *sqlx.DB) error {
	logger := logging.GetLogger()
	logger.Debug("Start License.Insert")
	defer logger.Debug("End License.Insert")

	query := "INSERT INTO License (LicenseKey, CreatedAt) VALUES ($1, $2);"
	if _, err := db.Exec(query, l.LicenseKey, l.CreatedAt); err != nil {
		return errors.Wrap(err, "failed INSERT to dbsqlite; table License")
	}
	return nil
}

// SelectLast returns the most recently stored key, nil when there is none.
func SelectLast(db *sqlx.DB) (*License, error) {
	query := "SELECT * FROM License ORDER BY ID DESC LIMIT 1;"
	l := new(License)
	if err := db.Get(l, query); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed SELECT to dbsqlite; query:\n%s", query)
	}
	return l, nil
}
