package report

import (
	"WooMasterKit/pkg/logging"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type Report struct {
	ID        int    `db:"ID"`
	ReportID  string `db:"ReportID"`
	CreatedAt string `db:"CreatedAt"`
	Products  int    `db:"Products"`
	Records   int    `db:"Records"`
	Skipped   int    `db:"Skipped"`
	Body      string `db:"Body"`
}

func (r *Report) Insert(db *sqlx.DB) error {
	logger := logging.GetLogger()
	logger.Debug("Start Report.Insert")
	defer logger.Debug("End Report.Insert")

	query := `INSERT INTO Report (ReportID, CreatedAt, Products, Records, Skipped, Body)
VALUES (:ReportID, :CreatedAt, :Products, :Records, :Skipped, :Body);`
	logger.Debugf("INSERT:\n%s(%s)", query, r.ReportID)

	if _, err := db.NamedExec(query, r); err != nil {
		return errors.Wrapf(err, "failed INSERT to dbsqlite; ReportID:%s", r.ReportID)
	}
	return nil
}

// SelectByReportID returns sql.ErrNoRows when there is no such report.
func (r *Report) SelectByReportID(db *sqlx.DB) (*Report, error) {
	logger := logging.GetLogger()
	logger.Debug("Start Report.SelectByReportID")
	defer logger.Debug("End Report.SelectByReportID")

	query := "SELECT * FROM Report WHERE ReportID=$1;"
	logger.Debugf("SELECT:\n%s(%s)", query, r.ReportID)

	row := new(Report)
	if err := db.Get(row, query, r.ReportID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed SELECT to dbsqlite; query:\n%s(%s)", query, r.ReportID)
	}
	return row, nil
}

// DeleteCreatedBefore removes reports older than createdAt, both in the
// fixed width UTC layout of the store.
func DeleteCreatedBefore(db *sqlx.DB, createdAt string) (int64, error) {
	query := "DELETE FROM Report WHERE CreatedAt < $1;"
	res, err := db.Exec(query, createdAt)
	if err != nil {
		return 0, errors.Wrapf(err, "failed DELETE in dbsqlite; query:\n%s(%s)", query, createdAt)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed RowsAffected()")
	}
	return n, nil
}
