package nonce

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAt(now time.Time) *Service {
	s := New("secret", 24*time.Hour)
	s.now = func() time.Time { return now }
	return s
}

func TestCreateVerify(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	s := newAt(now)

	n := s.Create(ActionBulkChangePrice, "admin")
	assert.Len(t, n, 10)

	age, err := s.Verify(n, ActionBulkChangePrice, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, age)
}

func TestVerify_PreviousTick(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	n := newAt(now).Create(ActionBulkChangePrice, "admin")

	age, err := newAt(now.Add(12*time.Hour)).Verify(n, ActionBulkChangePrice, "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, age)
}

func TestVerify_Expired(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	n := newAt(now).Create(ActionBulkChangePrice, "admin")

	_, err := newAt(now.Add(25*time.Hour)).Verify(n, ActionBulkChangePrice, "admin")
	assert.Equal(t, ErrInvalidNonce, errors.Cause(err))
}

func TestVerify_Mismatch(t *testing.T) {
	s := newAt(time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC))
	n := s.Create(ActionBulkChangePrice, "admin")

	tests := map[string]struct {
		nonce, action, user string
	}{
		"empty":        {"", ActionBulkChangePrice, "admin"},
		"other action": {n, ActionSearchProducts, "admin"},
		"other user":   {n, ActionBulkChangePrice, "editor"},
		"tampered":     {n[:9] + "x", ActionBulkChangePrice, "admin"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := s.Verify(tt.nonce, tt.action, tt.user)
			assert.Equal(t, ErrInvalidNonce, errors.Cause(err))
		})
	}

	other := New("other secret", 24*time.Hour)
	other.now = s.now
	_, err := other.Verify(n, ActionBulkChangePrice, "admin")
	assert.Error(t, err)
}
