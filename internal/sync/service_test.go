package sync

import (
	"WooMasterKit/internal/bulkprice"
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purgerMock struct {
	calls []time.Time
	err   error
	panic bool
}

func (p *purgerMock) Purge(before time.Time) error {
	p.calls = append(p.calls, before)
	if p.panic {
		panic("boom")
	}
	return p.err
}

type notifierMock struct {
	messages []string
}

func (n *notifierMock) SendMessage(text string) error {
	n.messages = append(n.messages, text)
	return nil
}

func (n *notifierMock) NotifyReport(*bulkprice.Report) error { return nil }

func TestPurgeOnce(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	p := &purgerMock{err: errors.New("locked")}
	s := NewPurgeService(p, time.Hour, time.Minute, nil)
	s.now = func() time.Time { return now }

	s.PurgeOnce()

	require.Len(t, p.calls, 1)
	assert.Equal(t, now.Add(-time.Hour), p.calls[0])
}

func TestPurgeServiceWithRecovered_StopsOnCancel(t *testing.T) {
	p := &purgerMock{}
	n := &notifierMock{}
	s := NewPurgeService(p, time.Hour, time.Hour, n)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.PurgeServiceWithRecovered(ctx)

	assert.Len(t, p.calls, 1)
	assert.Empty(t, n.messages)
}

func TestPurgeServiceWithRecovered_GivesUpAfterPanics(t *testing.T) {
	p := &purgerMock{panic: true}
	n := &notifierMock{}
	s := NewPurgeService(p, time.Hour, time.Hour, n)

	s.PurgeServiceWithRecovered(context.Background())

	assert.Len(t, p.calls, maxRestarts)
	require.Len(t, n.messages, maxRestarts+1)
	assert.Equal(t, "report purge restarts stopped", n.messages[maxRestarts])
}
