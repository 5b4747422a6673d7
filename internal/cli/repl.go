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
	hasOpenResume() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	ListResumes(ctx context.Context) error
	CreateResume(ctx context.Context) error
	OpenResume(ctx context.Context) error
	RenameResume(ctx context.Context) error
	DeleteResume(ctx context.Context) error
	CloseResume(ctx context.Context) error
	ParseUpload(ctx context.Context) error

	ShowSection(ctx context.Context) error
	AddEntry(ctx context.Context) error
	EditEntry(ctx context.Context) error
	RemoveEntry(ctx context.Context) error
	SaveSection(ctx context.Context) error
	DiscardSection(ctx context.Context) error

	Preview(ctx context.Context) error
	Export(ctx context.Context) error
	ExportATS(ctx context.Context) error
	Optimize(ctx context.Context) error

	Recommend(ctx context.Context) error
	RunScraper(ctx context.Context) error
	Jobs(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the resume CLI.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - list           — list resumes
//	  - create         — create a resume
//	  - open           — open a resume for editing
//	  - delete         — delete a resume
//	  - parse          — upload a resume file and seed sections from it
//	  - recommend      — job title recommendations
//	  - scrape         — start the job scraper
//	  - jobs           — show scraped job postings
//	  - logout         — log out
//
//	With an open resume, additionally:
//	  - show           — display one section
//	  - add            — add a section entry (or set a singleton section)
//	  - edit           — edit a section entry in place
//	  - remove         — remove a section entry (persists immediately)
//	  - save           — save a section's local edits
//	  - discard        — drop a section's local edits
//	  - preview        — render the assembled document
//	  - export         — export the document (PDF)
//	  - ats            — export the plain ATS version
//	  - optimize       — score the resume against a job description
//	  - title          — rename the resume
//	  - close          — close the resume
//
// Any errors returned by command handlers are reported here in one line;
// handlers print their own domain-specific feedback. This keeps the REPL
// loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	run := func(err error) {
		if err != nil {
			printlnFn("error:", err.Error())
		}
	}

	for {
		printlnFn(fmt.Sprintf("resume %s> ", statusFn()))
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
			switch {
			case a.hasOpenResume():
				printlnFn("Available commands: show, add, edit, remove, save, discard, preview, export, ats, optimize, title, close, exit")
			case a.isLoggedIn():
				printlnFn("Available commands: list, create, open, delete, parse, recommend, scrape, jobs, logout, exit")
			default:
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			run(a.Register(ctx))

		case "login":
			run(a.Login(ctx))

		case "logout":
			run(a.Logout(ctx))

		case "l", "list":
			run(a.ListResumes(ctx))

		case "create":
			run(a.CreateResume(ctx))

		case "open":
			run(a.OpenResume(ctx))

		case "title":
			run(a.RenameResume(ctx))

		case "delete":
			run(a.DeleteResume(ctx))

		case "close":
			run(a.CloseResume(ctx))

		case "parse":
			run(a.ParseUpload(ctx))

		case "show":
			run(a.ShowSection(ctx))

		case "add":
			run(a.AddEntry(ctx))

		case "edit":
			run(a.EditEntry(ctx))

		case "remove":
			run(a.RemoveEntry(ctx))

		case "save":
			run(a.SaveSection(ctx))

		case "discard":
			run(a.DiscardSection(ctx))

		case "preview":
			run(a.Preview(ctx))

		case "export":
			run(a.Export(ctx))

		case "ats":
			run(a.ExportATS(ctx))

		case "optimize":
			run(a.Optimize(ctx))

		case "recommend":
			run(a.Recommend(ctx))

		case "scrape":
			run(a.RunScraper(ctx))

		case "jobs":
			run(a.Jobs(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
