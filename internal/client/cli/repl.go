package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Profile(ctx context.Context) error
	Ref(ctx context.Context, code string) error
	Sign(ctx context.Context) error
	Reject(ctx context.Context) error
}

// runREPL starts a read–eval–print loop over scanner, dispatching the first
// token of each line to a. The loop exits on scanner EOF, on "exit" or "quit",
// or when ctx is cancelled.
//
// Commands:
//
//	help            show available commands
//	login           connect a wallet, or verify the connected one
//	logout          disconnect and drop the session
//	status          show session state and address
//	profile         show the loaded profile
//	ref <code>      store a referral code
//	sign | reject   answer a pending wallet signature request
//	exit | quit     leave the program
//
// Handler errors are ignored here; handlers report their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("ws %s> ", statusFn()))
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
			printlnFn("Available commands: login, logout, status, profile, ref <code>, sign, reject, exit")

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "ref":
			if len(args) == 0 {
				printlnFn("Usage: ref <code>")
				continue
			}
			_ = a.Ref(ctx, args[0])

		case "sign":
			_ = a.Sign(ctx)

		case "reject":
			_ = a.Reject(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
