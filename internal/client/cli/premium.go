package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/premiumgate/internal/catalog"
	"github.com/dmitrijs2005/premiumgate/internal/client/services"
)

// unlockLayout renders release instants the way the site shows them, e.g.
// "06:17 PM EAT on Aug 21, 2025".
const unlockLayout = "03:04 PM MST on " + dateLayout

const checkoutFailedMessage = "Checkout failed. Please try again."

func embargoMessage(releaseAt time.Time) string {
	return fmt.Sprintf("Premium content unlocks at %s. Try again later.", releaseAt.Format(unlockLayout))
}

func successMessage(title string) string {
	return fmt.Sprintf("Unlocked %s successfully! Enjoy your premium content.", title)
}

// outcomeMessage maps a finished or rejected attempt to what the user sees.
func outcomeMessage(o services.Outcome, title string) string {
	var embargo *services.EmbargoError

	switch {
	case o.Err == nil:
		return successMessage(title)
	case errors.As(o.Err, &embargo):
		return embargoMessage(embargo.ReleaseAt)
	case errors.Is(o.Err, services.ErrConcurrentAttempt):
		return "A checkout is already processing."
	case errors.Is(o.Err, services.ErrAttemptCancelled):
		return "Checkout cancelled."
	case errors.Is(o.Err, services.ErrEntitlementWrite):
		return "Premium access could not be saved. Please try again."
	default:
		return checkoutFailedMessage
	}
}

// receipt shortens an attempt id into a mock receipt number.
func receipt(attemptID string) string {
	if len(attemptID) > 8 {
		attemptID = attemptID[:8]
	}
	return strings.ToUpper(attemptID)
}

// lookup resolves sku against the catalog. An empty sku picks the first item.
func (a *App) lookup(sku string) (catalog.PremiumItem, error) {
	if sku == "" {
		if items := a.catalog.Items(); len(items) > 0 {
			return items[0], nil
		}
		return catalog.PremiumItem{}, services.ErrUnknownItem
	}
	item, ok := a.catalog.Item(sku)
	if !ok {
		return catalog.PremiumItem{}, fmt.Errorf("%w: %s", services.ErrUnknownItem, sku)
	}
	return item, nil
}

// Unlock starts a checkout for sku and returns without waiting for it. The
// outcome is printed when the checkout finishes.
func (a *App) Unlock(ctx context.Context, sku string) error {
	item, err := a.lookup(sku)
	if err != nil {
		a.Println(fmt.Sprintf("No premium item %q. Type 'list' to see what is available.", sku))
		return err
	}

	a.log.Debug(ctx, "unlock requested", "sku", item.SKU)

	if a.gate.Unlocked(ctx) {
		a.Println("Premium content is already unlocked.")
		return nil
	}

	ch, err := a.gate.Start(ctx, item)
	if err != nil {
		a.Println(outcomeMessage(services.Outcome{SKU: item.SKU, Err: err}, item.Title))
		return err
	}
	a.Println(fmt.Sprintf("Processing %s (%s)...", item.Title, item.Price))

	a.pending.Add(1)
	go func() {
		defer a.pending.Done()
		a.report(<-ch, item)
	}()
	return nil
}

func (a *App) report(o services.Outcome, item catalog.PremiumItem) {
	msg := outcomeMessage(o, item.Title)
	if o.Err == nil {
		msg += fmt.Sprintf("\nReceipt #%s", receipt(o.AttemptID))
	}
	a.Println(msg)
}

// Status renders the premium section for the current workflow state.
func (a *App) Status(ctx context.Context) error {
	switch {
	case a.gate.Status() == services.StatusProcessing:
		a.Println("Premium: processing checkout...")
	case a.gate.Unlocked(ctx):
		a.Println(a.renderUnlocked())
	default:
		a.Println(a.renderLocked())
	}
	return nil
}

func (a *App) renderLocked() string {
	var b strings.Builder
	b.WriteString("Premium (locked)\n")

	now := a.clock.Now()
	for _, it := range a.catalog.Items() {
		fmt.Fprintf(&b, "  [%s] %s  %s\n", it.SKU, it.Title, it.Price)
		if it.Description != "" {
			fmt.Fprintf(&b, "      %s\n", it.Description)
		}
		if !it.ReleaseAt.IsZero() && now.Before(it.ReleaseAt) {
			fmt.Fprintf(&b, "      Available from %s\n", it.ReleaseAt.Format(unlockLayout))
		}
	}
	b.WriteString("Type 'unlock <sku>' to buy.")
	return b.String()
}

func (a *App) renderUnlocked() string {
	var b strings.Builder
	b.WriteString("Premium (member)\n")

	for _, it := range a.catalog.Items() {
		fmt.Fprintf(&b, "  %s\n", it.Title)
		if !it.ReleaseAt.IsZero() {
			fmt.Fprintf(&b, "    Member access since %s\n", it.ReleaseAt.Format(dateLayout))
		}
		for i, tr := range it.Tracks {
			fmt.Fprintf(&b, "    %d. %s  %s\n", i+1, tr.Name, tr.Length())
		}
	}
	b.WriteString("Type 'revoke' to drop access.")
	return b.String()
}

// Revoke drops premium access and shows the locked view again.
func (a *App) Revoke(ctx context.Context) error {
	if err := a.gate.Revoke(ctx); err != nil {
		a.Println("Could not revoke premium access. Please try again.")
		return err
	}
	a.Println("Premium access revoked.")
	return a.Status(ctx)
}
