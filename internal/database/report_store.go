package database

import (
	"WooMasterKit/internal/bulkprice"
	"WooMasterKit/internal/database/model/license"
	"WooMasterKit/internal/database/model/report"
	"WooMasterKit/pkg/logging"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// fixed width so that CreatedAt compares as text
const timeLayout = "2006-01-02T15:04:05.000000Z"

// ReportStore keeps bulk change reports in sqlite.
type ReportStore struct {
	db *sqlx.DB
}

func NewReportStore(db *sqlx.DB) *ReportStore {
	return &ReportStore{db: db}
}

func (s *ReportStore) Put(r *bulkprice.Report) error {
	body, err := json.Marshal(r)
	if err != nil {
		return errors.Wrapf(err, "failed json.Marshal() report %s", r.ID)
	}

	row := &report.Report{
		ReportID:  r.ID,
		CreatedAt: r.CreatedAt.UTC().Format(timeLayout),
		Products:  len(r.Products),
		Records:   r.Records(),
		Skipped:   len(r.Skipped),
		Body:      string(body),
	}
	return row.Insert(s.db)
}

func (s *ReportStore) Get(id string) (*bulkprice.Report, error) {
	row, err := (&report.Report{ReportID: id}).SelectByReportID(s.db)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.Wrapf(bulkprice.ErrReportNotFound, "id %s", id)
		}
		return nil, err
	}

	r := new(bulkprice.Report)
	if err := json.Unmarshal([]byte(row.Body), r); err != nil {
		return nil, errors.Wrapf(err, "failed json.Unmarshal() report %s", id)
	}
	return r, nil
}

// Purge deletes reports created before t.
func (s *ReportStore) Purge(t time.Time) error {
	n, err := report.DeleteCreatedBefore(s.db, t.UTC().Format(timeLayout))
	if err != nil {
		return err
	}
	logging.GetLogger().Debugf("Purge:>deleted %d reports", n)
	return nil
}

// LicenseStore keeps license keys submitted on the Go Pro page.
type LicenseStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewLicenseStore(db *sqlx.DB) *LicenseStore {
	return &LicenseStore{db: db, now: time.Now}
}

func (s *LicenseStore) Save(key string) error {
	l := &license.License{
		LicenseKey: key,
		CreatedAt:  s.now().UTC().Format(timeLayout),
	}
	return l.Insert(s.db)
}

// Current returns the last saved key or "".
func (s *LicenseStore) Current() (string, error) {
	l, err := license.SelectLast(s.db)
	if err != nil {
		return "", err
	}
	if l == nil {
		return "", nil
	}
	return l.LicenseKey, nil
}
