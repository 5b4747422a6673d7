package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	open     bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool    { return f.loggedIn }
func (f *fakeExec) hasOpenResume() bool { return f.open }

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	f.open = false
	return f.record("logout")
}
func (f *fakeExec) ListResumes(ctx context.Context) error  { return f.record("list") }
func (f *fakeExec) CreateResume(ctx context.Context) error { return f.record("create") }
func (f *fakeExec) OpenResume(ctx context.Context) error {
	f.open = true
	return f.record("open")
}
func (f *fakeExec) RenameResume(ctx context.Context) error { return f.record("title") }
func (f *fakeExec) DeleteResume(ctx context.Context) error { return f.record("delete") }
func (f *fakeExec) CloseResume(ctx context.Context) error {
	f.open = false
	return f.record("close")
}
func (f *fakeExec) ParseUpload(ctx context.Context) error    { return f.record("parse") }
func (f *fakeExec) ShowSection(ctx context.Context) error    { return f.record("show") }
func (f *fakeExec) AddEntry(ctx context.Context) error       { return f.record("add") }
func (f *fakeExec) EditEntry(ctx context.Context) error      { return f.record("edit") }
func (f *fakeExec) RemoveEntry(ctx context.Context) error    { return f.record("remove") }
func (f *fakeExec) SaveSection(ctx context.Context) error    { return f.record("save") }
func (f *fakeExec) DiscardSection(ctx context.Context) error { return f.record("discard") }
func (f *fakeExec) Preview(ctx context.Context) error        { return f.record("preview") }
func (f *fakeExec) Export(ctx context.Context) error         { return f.record("export") }
func (f *fakeExec) ExportATS(ctx context.Context) error      { return f.record("ats") }
func (f *fakeExec) Optimize(ctx context.Context) error       { return f.record("optimize") }
func (f *fakeExec) Recommend(ctx context.Context) error      { return f.record("recommend") }
func (f *fakeExec) RunScraper(ctx context.Context) error     { return f.record("scrape") }
func (f *fakeExec) Jobs(ctx context.Context) error           { return f.record("jobs") }

func runScript(t *testing.T, exec *fakeExec, lines ...string) []string {
	t.Helper()

	var output []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, strings.TrimSpace(strings.Trim(strings.TrimSpace(fmtSprint(a)), "\n")))
		}
		output = append(output, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
	return output
}

func fmtSprint(a any) string {
	if s, ok := a.(string); ok {
		return s
	}
	if err, ok := a.(error); ok {
		return err.Error()
	}
	return ""
}

func TestRunREPL_DispatchesCommandsInOrder(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec,
		"login",
		"list",
		"create",
		"open",
		"show",
		"add",
		"save",
		"preview",
		"export",
		"optimize",
		"close",
		"logout",
		"exit",
	)

	assert.Equal(t, []string{
		"login", "list", "create", "open", "show", "add", "save",
		"preview", "export", "optimize", "close", "logout",
	}, exec.calls)
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	exec := &fakeExec{}
	output := runScript(t, exec, "frobnicate", "exit")

	joined := strings.Join(output, "\n")
	assert.Contains(t, joined, "Unknown command: frobnicate")
	assert.Empty(t, exec.calls)
}

func TestRunREPL_HelpTracksState(t *testing.T) {
	exec := &fakeExec{}
	output := runScript(t, exec, "help", "login", "help", "open", "help", "exit")

	joined := strings.Join(output, "\n")
	assert.Contains(t, joined, "register, login, exit")
	assert.Contains(t, joined, "list, create, open")
	assert.Contains(t, joined, "show, add, edit, remove")
}

func TestRunREPL_EmptyLinesIgnoredAndEOFExits(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec, "", "   ", "list")

	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_HandlerErrorIsPrinted(t *testing.T) {
	exec := &fakeExec{}
	origPrint := printlnFn
	var output []string
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			output = append(output, fmtSprint(a))
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	failing := &failingExec{fakeExec: exec}
	sc := bufio.NewScanner(strings.NewReader("list\nexit"))
	runREPL(context.Background(), failing, func() string { return "" }, sc)

	assert.Contains(t, strings.Join(output, "\n"), "backend down")
}

type failingExec struct {
	*fakeExec
}

func (f *failingExec) ListResumes(ctx context.Context) error {
	return errors.New("backend down")
}
