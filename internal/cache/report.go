// Package cache keeps bulk change reports for a limited time, either in
// process memory or in redis.
package cache

import (
	"WooMasterKit/internal/bulkprice"
	"WooMasterKit/pkg/logging"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const reportKeyPrefix = "woo-masterkit:report:"

type reports struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	reports map[string]*report
}

type report struct {
	report     *bulkprice.Report
	timeUpdate time.Time
}

// NewMemoryReportStore keeps reports in a map, entries older than ttl are
// dropped on access.
func NewMemoryReportStore(ttl time.Duration) bulkprice.ReportStore {
	return &reports{
		ttl:     ttl,
		now:     time.Now,
		reports: make(map[string]*report),
	}
}

func (c *reports) Put(r *bulkprice.Report) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expire()
	c.reports[r.ID] = &report{report: r, timeUpdate: c.now()}
	return nil
}

func (c *reports) Get(id string) (*bulkprice.Report, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expire()
	if r, ok := c.reports[id]; ok {
		return r.report, nil
	}
	return nil, errors.Wrapf(bulkprice.ErrReportNotFound, "id %s", id)
}

func (c *reports) expire() {
	for id, r := range c.reports {
		if c.now().Sub(r.timeUpdate) > c.ttl {
			delete(c.reports, id)
		}
	}
}

// RedisReportStore keeps reports as JSON strings with an expiry.
type RedisReportStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisReportStore(client *redis.Client, ttl time.Duration) *RedisReportStore {
	return &RedisReportStore{client: client, ttl: ttl}
}

func (s *RedisReportStore) Ping() error {
	if err := s.client.Ping(context.Background()).Err(); err != nil {
		return errors.Wrap(err, "failed redis Ping()")
	}
	return nil
}

func (s *RedisReportStore) Put(r *bulkprice.Report) error {
	logger := logging.GetLogger()
	logger.Debugf("RedisReportStore.Put:>%s", r.ID)

	body, err := json.Marshal(r)
	if err != nil {
		return errors.Wrapf(err, "failed json.Marshal() report %s", r.ID)
	}
	if err := s.client.Set(context.Background(), reportKeyPrefix+r.ID, body, s.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed redis SET report %s", r.ID)
	}
	return nil
}

func (s *RedisReportStore) Get(id string) (*bulkprice.Report, error) {
	body, err := s.client.Get(context.Background(), reportKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.Wrapf(bulkprice.ErrReportNotFound, "id %s", id)
		}
		return nil, errors.Wrapf(err, "failed redis GET report %s", id)
	}

	r := new(bulkprice.Report)
	if err := json.Unmarshal(body, r); err != nil {
		return nil, errors.Wrapf(err, "failed json.Unmarshal() report %s", id)
	}
	return r, nil
}
