package cache

import (
	"WooMasterKit/internal/bulkprice"
	"WooMasterKit/internal/price"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReportStore(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	s := NewMemoryReportStore(time.Hour).(*reports)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Put(&bulkprice.Report{ID: "a"}))

	r, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", r.ID)

	_, err = s.Get("b")
	assert.Equal(t, bulkprice.ErrReportNotFound, errors.Cause(err))

	now = now.Add(2 * time.Hour)
	_, err = s.Get("a")
	assert.Equal(t, bulkprice.ErrReportNotFound, errors.Cause(err))
}

func TestRedisReportStore_Unreachable(t *testing.T) {
	client := NewRedisClient("127.0.0.1:1", "", 0)
	defer client.Close()
	s := NewRedisReportStore(client, time.Minute)

	assert.Error(t, s.Ping())
	assert.Error(t, s.Put(&bulkprice.Report{ID: "a"}))
	_, err := s.Get("a")
	require.Error(t, err)
	assert.NotEqual(t, bulkprice.ErrReportNotFound, errors.Cause(err))
}

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisReportStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisReportStore(client, ttl), mr
}

func TestRedisReportStore_RoundTrip(t *testing.T) {
	s, mr := newRedisStore(t, time.Hour)
	require.NoError(t, s.Ping())

	in := &bulkprice.Report{
		ID:         "r1",
		CreatedAt:  time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC),
		Currency:   "$",
		ChangeType: price.Increase,
		Amount:     decimal.RequireFromString("9.999"),
		Round:      true,
		Fields:     []price.Field{price.Regular},
		Products: []bulkprice.ProductReport{{
			ProductID: 42,
			Name:      "Shirt",
			Kind:      bulkprice.KindVariable,
			Records: []bulkprice.ChangeRecord{{
				ProductID:   42,
				VariationID: 43,
				Field:       price.Regular,
				Old:         decimal.RequireFromString("100.00"),
				New:         decimal.RequireFromString("110"),
			}},
			SaveErrors: 1,
		}},
		Skipped: []string{"notfound"},
	}
	require.NoError(t, s.Put(in))

	assert.True(t, mr.Exists(reportKeyPrefix+"r1"))
	assert.Equal(t, time.Hour, mr.TTL(reportKeyPrefix+"r1"))

	out, err := s.Get("r1")
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
	assert.Equal(t, in.ChangeType, out.ChangeType)
	assert.True(t, in.Amount.Equal(out.Amount))
	assert.Equal(t, in.Fields, out.Fields)
	assert.Equal(t, in.Skipped, out.Skipped)
	require.Len(t, out.Products, 1)
	assert.Equal(t, 1, out.Products[0].SaveErrors)
	require.Len(t, out.Products[0].Records, 1)
	rec := out.Products[0].Records[0]
	assert.Equal(t, 43, rec.VariationID)
	assert.True(t, rec.Old.Equal(decimal.NewFromInt(100)))
	assert.True(t, rec.New.Equal(decimal.NewFromInt(110)))
}

func TestRedisReportStore_NotFound(t *testing.T) {
	s, _ := newRedisStore(t, time.Hour)

	_, err := s.Get("missing")
	require.Error(t, err)
	assert.Equal(t, bulkprice.ErrReportNotFound, errors.Cause(err))
}

func TestRedisReportStore_Expires(t *testing.T) {
	s, mr := newRedisStore(t, time.Minute)
	require.NoError(t, s.Put(&bulkprice.Report{ID: "a"}))

	_, err := s.Get("a")
	require.NoError(t, err)

	mr.FastForward(time.Minute)

	_, err = s.Get("a")
	assert.Equal(t, bulkprice.ErrReportNotFound, errors.Cause(err))
}
