package services

import (
	"errors"
	"time"
)

var (
	// ErrEmbargoNotElapsed is matched by *EmbargoError.
	ErrEmbargoNotElapsed = errors.New("embargo not elapsed")
	ErrProviderFailure   = errors.New("checkout provider failure")
	ErrConcurrentAttempt = errors.New("unlock attempt already in progress")
	ErrAttemptCancelled  = errors.New("unlock attempt cancelled")
	ErrEntitlementWrite  = errors.New("failed to persist entitlement")
	ErrUnknownItem       = errors.New("unknown premium item")

	// ErrSimulatedFault is what a faulting SimulatedCheckout returns.
	ErrSimulatedFault = errors.New("simulated provider fault")

	errRevokedDuringCheckout = errors.New("entitlement revoked during checkout")
)

// EmbargoError reports an attempt made before the item's release instant.
type EmbargoError struct {
	ReleaseAt time.Time
}

func (e *EmbargoError) Error() string {
	return ErrEmbargoNotElapsed.Error() + ": unlocks at " + e.ReleaseAt.Format(time.RFC3339)
}

func (e *EmbargoError) Is(target error) bool { return target == ErrEmbargoNotElapsed }
