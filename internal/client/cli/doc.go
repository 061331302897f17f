// Package cli provides the interactive premium gate view.
//
// It renders the artist page as text and drives the purchase workflow from a
// line-oriented REPL. A checkout runs in the background so the prompt stays
// usable while it is processing; its outcome is printed when it finishes.
//
// Commands:
//   - profile, links, videos   artist page sections
//   - catalog | list           premium items with prices
//   - unlock [sku]             buy premium access (first item when no sku)
//   - status                   show the premium section as it is now
//   - revoke                   drop premium access
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx, in), which blocks until the user exits
// or the input ends.
package cli
