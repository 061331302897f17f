package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/premiumgate/internal/catalog"
	"github.com/dmitrijs2005/premiumgate/internal/client/services"
	"github.com/dmitrijs2005/premiumgate/internal/clock"
	"github.com/dmitrijs2005/premiumgate/internal/logging"
)

// Gate is the workflow surface the view renders from.
// *services.PurchaseWorkflow satisfies it.
type Gate interface {
	Status() services.Status
	Unlocked(ctx context.Context) bool
	Start(ctx context.Context, item catalog.PremiumItem) (<-chan services.Outcome, error)
	Revoke(ctx context.Context) error
}

type App struct {
	catalog *catalog.Catalog
	gate    Gate
	clock   clock.Clock
	log     logging.Logger

	mu  sync.Mutex // guards out; outcomes are printed from background goroutines
	out io.Writer

	pending sync.WaitGroup
}

func NewApp(cat *catalog.Catalog, g Gate, c clock.Clock, log logging.Logger, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{catalog: cat, gate: g, clock: c, log: log, out: out}
}

// Run prints the premium section once and then serves commands from in. When
// the loop ends it waits for a checkout still in flight so its outcome is
// reported before returning.
func (a *App) Run(ctx context.Context, in io.Reader) {
	a.Println(fmt.Sprintf("Welcome to %s (type 'help' for commands)", a.catalog.Artist().Name))
	_ = a.Status(ctx)

	var prompt func() string
	if interactive(in) {
		prompt = func() string { return a.badge(ctx) }
	}

	runREPL(ctx, a, prompt, bufio.NewScanner(in))
	a.pending.Wait()
}

// Println writes one line of user-facing output.
func (a *App) Println(args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintln(a.out, args...)
}

// Print writes without a trailing newline; used for the prompt.
func (a *App) Print(s string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprint(a.out, s)
}

func (a *App) badge(ctx context.Context) string {
	switch {
	case a.gate.Status() == services.StatusProcessing:
		return "processing"
	case a.gate.Unlocked(ctx):
		return "member"
	default:
		return "locked"
	}
}
