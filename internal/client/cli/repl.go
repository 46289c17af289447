package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Places(ctx context.Context) error
	Filter(ctx context.Context, maxPrice string) error
	Place(ctx context.Context, id string) error
	Review(ctx context.Context, id string) error
	Open(ctx context.Context, target string) error
}

// runREPL starts a simple read–eval–print loop for the HBnB CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help              — show available commands
//	  - login             — authenticate
//	  - place <id>        — show a place and its reviews
//	  - open <page>       — open a page, e.g. place.html?id=42
//	  - exit | quit       — leave the program
//
//	Logged in, additionally:
//	  - places            — list places
//	  - filter [max|all]  — filter the loaded list by price, no API call
//	  - review <id>       — review a place
//	  - logout            — log out
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "hbnb %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(w, "Available commands: places, filter [10|50|100|all], place <id>, review <id>, open <page>, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, place <id>, open <page>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "places":
			_ = a.Places(ctx)

		case "filter":
			maxPrice := ""
			if len(args) > 0 && args[0] != "all" {
				maxPrice = args[0]
			}
			_ = a.Filter(ctx, maxPrice)

		case "place":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: place <id>")
				continue
			}
			_ = a.Place(ctx, args[0])

		case "review":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: review <id>")
				continue
			}
			_ = a.Review(ctx, args[0])

		case "open":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: open <page>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
