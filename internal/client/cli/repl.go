package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

const helpText = "Available commands: profile, links, videos, (l)ist, unlock [sku], status, revoke, exit"

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Println(args ...any)
	Print(s string)
	Profile()
	Links()
	Videos()
	Catalog()
	Unlock(ctx context.Context, sku string) error
	Status(ctx context.Context) error
	Revoke(ctx context.Context) error
}

// runREPL reads a line from scanner, parses the first token as the command
// and dispatches to a. Unknown commands are reported back to the user. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// When promptFn is non-nil its result is shown as the prompt badge before
// each read.
//
// Errors returned by command handlers are ignored here; handlers print their
// own user-facing messages.
func runREPL(ctx context.Context, a execIface, promptFn func() string, scanner *bufio.Scanner) {
	for {
		if promptFn != nil {
			a.Print(fmt.Sprintf("gate (%s)> ", promptFn()))
		}
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.Println(helpText)

		case "profile":
			a.Profile()

		case "links":
			a.Links()

		case "videos":
			a.Videos()

		case "l", "list", "catalog":
			a.Catalog()

		case "unlock", "buy":
			sku := ""
			if len(args) > 0 {
				sku = args[0]
			}
			_ = a.Unlock(ctx, sku)

		case "status":
			_ = a.Status(ctx)

		case "revoke":
			_ = a.Revoke(ctx)

		case "exit", "quit":
			a.Println("Bye!")
			return

		default:
			a.Println("Unknown command:", cmd)
		}
	}
}
