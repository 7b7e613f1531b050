// Package nonce issues WordPress style nonces: a short HMAC over the action,
// the user and a time tick. A nonce stays valid for one to two half-lifetimes.
package nonce

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

const (
	ActionBulkChangePrice = "woo_masterkit_bulk_change_price"
	ActionSearchProducts  = "woo_masterkit_search_products"
	ActionLicense         = "woo_masterkit_license"
)

var ErrInvalidNonce = errors.New("invalid nonce")

type Service struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

func New(secret string, lifetime time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
}

func (s *Service) tick() int64 {
	half := int64(s.lifetime / 2)
	n := s.now().UnixNano()
	return (n + half - 1) / half
}

func (s *Service) hash(tick int64, action, user string) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%d|%s|%s", tick, action, user)
	sum := hex.EncodeToString(mac.Sum(nil))
	return sum[len(sum)-12 : len(sum)-2]
}

func (s *Service) Create(action, user string) string {
	return s.hash(s.tick(), action, user)
}

// Verify returns 1 when the nonce was made in the current half-lifetime and
// 2 when it was made in the previous one.
func (s *Service) Verify(nonce, action, user string) (int, error) {
	if nonce == "" {
		return 0, errors.Wrap(ErrInvalidNonce, "empty")
	}

	tick := s.tick()
	if hmac.Equal([]byte(nonce), []byte(s.hash(tick, action, user))) {
		return 1, nil
	}
	if hmac.Equal([]byte(nonce), []byte(s.hash(tick-1, action, user))) {
		return 2, nil
	}
	return 0, errors.Wrapf(ErrInvalidNonce, "action %s", action)
}
