package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"resumecli/internal/api"
	"resumecli/internal/config"
	"resumecli/internal/logging"
	"resumecli/internal/models"
	"resumecli/internal/preview"
	"resumecli/internal/session"
	"resumecli/internal/store"
)

// App holds the wiring of the interactive client: configuration, the
// persisted session, the API client and the state of the currently open
// resume (if any).
type App struct {
	config    *config.Config
	logger    logging.Logger
	client    api.Client
	session   *session.Session
	assembler *preview.Assembler
	reader    *bufio.Reader

	resume *models.Resume
	store  *store.Store
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewDefault()

	sessionPath := c.SessionFile
	if sessionPath == "" {
		var err error
		sessionPath, err = session.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	sess, err := session.Load(sessionPath)
	if err != nil {
		return nil, err
	}

	client := api.New(c.APIBaseURL, sess, logger, api.Options{
		Timeout:           c.RequestTimeout,
		RequestsPerSecond: c.RequestsPerSecond,
	})

	return &App{
		config:    c,
		logger:    logger,
		client:    client,
		session:   sess,
		assembler: preview.NewAssembler(client, logger),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Resume CLI (type 'help' for commands)")
	if a.session.Authenticated() && a.session.Expired() {
		fmt.Println("Stored session has expired, please log in again.")
		_ = a.session.Clear()
	}
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) hasOpenResume() bool {
	return a.resume != nil
}

// status is shown in the REPL prompt: the logged-in email and, when a
// resume is open, its title.
func (a *App) status() string {
	s := ""
	if a.session.Authenticated() {
		s = a.session.Email()
	}
	if a.resume != nil {
		s = s + " / " + a.resume.Title
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// requireResume guards commands that only make sense with an open resume.
func (a *App) requireResume() error {
	if a.resume == nil {
		return fmt.Errorf("no resume is open; use 'open' first")
	}
	return nil
}
