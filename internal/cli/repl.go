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
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	CreateFolder(ctx context.Context) error
	RenameFolder(ctx context.Context) error
	DeleteFolder(ctx context.Context) error
	Upload(ctx context.Context) error
	DeletePhotos(ctx context.Context) error
	Download(ctx context.Context) error
	View(ctx context.Context) error
	NextPhoto(ctx context.Context) error
	PrevPhoto(ctx context.Context) error
	CloseViewer(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the photo vault CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - ls | list      — list folders and photos
//	  - mkdir          — create a folder
//	  - rename         — rename a folder
//	  - rmdir          — delete a folder and its photos
//	  - upload         — add photos to a folder
//	  - rm             — delete photos from a folder
//	  - save           — write a photo back out as a file
//	  - view           — open the viewer on a photo
//	  - n | next       — viewer: next photo (wraps around)
//	  - p | prev       — viewer: previous photo (wraps around)
//	  - close          — close the viewer
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vault %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)s, mkdir, rename, rmdir, upload, rm, save, view, (n)ext, (p)rev, close, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "ls", "list":
			_ = a.List(ctx)

		case "mkdir":
			_ = a.CreateFolder(ctx)

		case "rename":
			_ = a.RenameFolder(ctx)

		case "rmdir":
			_ = a.DeleteFolder(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "rm":
			_ = a.DeletePhotos(ctx)

		case "save":
			_ = a.Download(ctx)

		case "view":
			_ = a.View(ctx)

		case "n", "next":
			_ = a.NextPhoto(ctx)

		case "p", "prev":
			_ = a.PrevPhoto(ctx)

		case "close":
			_ = a.CloseViewer(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
