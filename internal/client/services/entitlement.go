// Package services contains the client-side application services of the
// premium gate: the entitlement store that remembers whether premium content
// is unlocked, and the purchase workflow that unlocks it.
package services

import (
	"bytes"
	"context"

	"github.com/dmitrijs2005/premiumgate/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/premiumgate/internal/logging"
)

const (
	// EntitlementKey is the metadata key holding the premium flag. No other
	// component may write it.
	EntitlementKey = "jg_premium"

	// UnlockSentinel is the only value of EntitlementKey that means unlocked.
	UnlockSentinel = "1"
)

// EntitlementStore is the single owner of the durable premium flag.
//
// IsUnlocked never fails: a missing, unreadable or unexpected value reads as
// locked. Grant and Revoke are idempotent; when they return an error the
// previously persisted value is left in place.
type EntitlementStore interface {
	IsUnlocked(ctx context.Context) bool
	Grant(ctx context.Context) error
	Revoke(ctx context.Context) error
}

type entitlementStore struct {
	repo metadata.Repository
	log  logging.Logger
}

// NewEntitlementStore binds an EntitlementStore to a metadata repository.
func NewEntitlementStore(repo metadata.Repository, log logging.Logger) EntitlementStore {
	if log == nil {
		log = logging.Nop()
	}
	return &entitlementStore{repo: repo, log: log.With("key", EntitlementKey)}
}

func (s *entitlementStore) IsUnlocked(ctx context.Context) bool {
	v, err := s.repo.Get(ctx, EntitlementKey)
	if err != nil {
		s.log.Warn(ctx, "entitlement read failed, treating as locked", "error", err)
		return false
	}
	if v == nil {
		return false
	}
	if !bytes.Equal(v, []byte(UnlockSentinel)) {
		s.log.Warn(ctx, "unexpected entitlement value, treating as locked", "value", string(v))
		return false
	}
	return true
}

func (s *entitlementStore) Grant(ctx context.Context) error {
	if err := s.repo.Set(ctx, EntitlementKey, []byte(UnlockSentinel)); err != nil {
		return err
	}
	s.log.Info(ctx, "entitlement granted")
	return nil
}

func (s *entitlementStore) Revoke(ctx context.Context) error {
	if err := s.repo.Delete(ctx, EntitlementKey); err != nil {
		return err
	}
	s.log.Info(ctx, "entitlement revoked")
	return nil
}
