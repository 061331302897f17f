package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/premiumgate/internal/catalog"
	"github.com/dmitrijs2005/premiumgate/internal/clock"
	"github.com/dmitrijs2005/premiumgate/internal/logging"
	"github.com/google/uuid"
)

// Status is the purchase workflow state shown by the gate view.
type Status int

const (
	StatusIdle Status = iota
	StatusProcessing
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusProcessing:
		return "processing"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Outcome is the result of one unlock attempt. Err is nil exactly when Status
// is StatusSucceeded. ReleaseAt is the item's release instant, so a caller
// handling ErrEmbargoNotElapsed can tell the user when to retry.
type Outcome struct {
	AttemptID string
	SKU       string
	Status    Status
	ReleaseAt time.Time
	Err       error
}

// PurchaseWorkflow runs simulated checkouts and grants the entitlement when
// one succeeds after the item's release instant.
//
// At most one attempt is in flight at a time; a second attempt started while
// one is processing is rejected with ErrConcurrentAttempt and touches
// nothing. All methods are safe for concurrent use.
type PurchaseWorkflow struct {
	store    EntitlementStore
	provider CheckoutProvider
	clock    clock.Clock
	log      logging.Logger

	mu      sync.Mutex
	status  Status
	last    Outcome
	attempt string
	cancel  context.CancelCauseFunc
}

func NewPurchaseWorkflow(store EntitlementStore, provider CheckoutProvider, c clock.Clock, log logging.Logger) *PurchaseWorkflow {
	if log == nil {
		log = logging.Nop()
	}
	return &PurchaseWorkflow{store: store, provider: provider, clock: c, log: log}
}

// Status returns the current workflow status.
func (w *PurchaseWorkflow) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Last returns the outcome of the most recent finished attempt, or the zero
// Outcome if there is none since construction or the last revoke.
func (w *PurchaseWorkflow) Last() Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Unlocked reports the durable entitlement.
func (w *PurchaseWorkflow) Unlocked(ctx context.Context) bool {
	return w.store.IsUnlocked(ctx)
}

// AttemptUnlock runs one attempt to completion and returns its outcome. It
// blocks the calling goroutine only.
func (w *PurchaseWorkflow) AttemptUnlock(ctx context.Context, item catalog.PremiumItem) Outcome {
	ch, err := w.Start(ctx, item)
	if err != nil {
		return Outcome{SKU: item.SKU, Status: StatusFailed, ReleaseAt: item.ReleaseAt, Err: err}
	}
	return <-ch
}

// Start moves the workflow to StatusProcessing and runs the attempt in the
// background. The outcome is delivered exactly once on the returned channel,
// which is then closed. If an attempt is already processing, Start returns
// ErrConcurrentAttempt and nothing changes.
func (w *PurchaseWorkflow) Start(ctx context.Context, item catalog.PremiumItem) (<-chan Outcome, error) {
	w.mu.Lock()
	if w.status == StatusProcessing {
		w.mu.Unlock()
		w.log.Warn(ctx, "unlock rejected, attempt in progress", "sku", item.SKU)
		return nil, ErrConcurrentAttempt
	}

	id := uuid.NewString()
	attemptCtx, cancel := context.WithCancelCause(ctx)
	w.status = StatusProcessing
	w.attempt = id
	w.cancel = cancel
	w.mu.Unlock()

	log := w.log.With("attempt", id, "sku", item.SKU)
	log.Info(ctx, "checkout started", "price", item.Price.String())

	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		defer cancel(nil)
		out <- w.run(attemptCtx, id, item, log)
	}()
	return out, nil
}

func (w *PurchaseWorkflow) run(ctx context.Context, id string, item catalog.PremiumItem, log logging.Logger) Outcome {
	o := Outcome{AttemptID: id, SKU: item.SKU, ReleaseAt: item.ReleaseAt}

	checkoutErr := w.provider.Checkout(ctx, item)

	// The cancellation check and the grant happen under the lock so a
	// concurrent Revoke either cancels us first or runs after the grant.
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case ctx.Err() != nil:
		o.Err = fmt.Errorf("%w: %w", ErrAttemptCancelled, context.Cause(ctx))
	case checkoutErr != nil:
		o.Err = fmt.Errorf("%w: %w", ErrProviderFailure, checkoutErr)
	case !item.ReleaseAt.IsZero() && w.clock.Now().Before(item.ReleaseAt):
		o.Err = &EmbargoError{ReleaseAt: item.ReleaseAt}
	default:
		if err := w.store.Grant(ctx); err != nil {
			o.Err = fmt.Errorf("%w: %w", ErrEntitlementWrite, err)
		}
	}

	if o.Err == nil {
		o.Status = StatusSucceeded
		log.Info(ctx, "checkout succeeded")
	} else {
		o.Status = StatusFailed
		log.Warn(ctx, "checkout failed", "error", o.Err)
	}

	// A revoke during checkout already reset the workflow; leave it Idle.
	if w.attempt == id {
		w.status = o.Status
		w.last = o
		w.attempt = ""
		w.cancel = nil
	}
	return o
}

// Revoke removes the entitlement and resets the workflow to StatusIdle. An
// attempt in flight is cancelled and will not grant. The status is reset even
// if the durable delete fails; the error is returned so the caller can tell
// the user the flag may still be set.
func (w *PurchaseWorkflow) Revoke(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		w.log.Info(ctx, "cancelling checkout in progress", "attempt", w.attempt)
		w.cancel(errRevokedDuringCheckout)
	}
	w.cancel = nil
	w.attempt = ""
	w.status = StatusIdle
	w.last = Outcome{}

	if err := w.store.Revoke(ctx); err != nil {
		w.log.Error(ctx, "revoke failed", "error", err)
		return err
	}
	return nil
}
