package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) Login(ctx context.Context) error      { return s.record("login") }
func (s *stubExec) Register(ctx context.Context) error   { return s.record("register") }
func (s *stubExec) Logout(ctx context.Context) error     { return s.record("logout") }
func (s *stubExec) Whoami(ctx context.Context) error     { return s.record("whoami") }
func (s *stubExec) List(ctx context.Context) error       { return s.record("list") }
func (s *stubExec) Show(ctx context.Context) error       { return s.record("show") }
func (s *stubExec) Add(ctx context.Context) error        { return s.record("add") }
func (s *stubExec) Update(ctx context.Context) error     { return s.record("update") }
func (s *stubExec) Upload(ctx context.Context) error     { return s.record("upload") }
func (s *stubExec) Categories(ctx context.Context) error { return s.record("categories") }

func runScript(t *testing.T, a *stubExec, script string) []string {
	t.Helper()

	var output []string
	origPrintln := printlnFn
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				parts = append(parts, s)
			}
		}
		output = append(output, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrintln })

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), a, func() string { return "" }, scanner)
	return output
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	a := &stubExec{loggedIn: true}
	runScript(t, a, "list\nshow\nadd\nupdate\nupload\ncategories\nwhoami\nlogout\nexit\n")

	require.Equal(t,
		[]string{"list", "show", "add", "update", "upload", "categories", "whoami", "logout"},
		a.calls)
}

func TestRunREPL_ListShortcut(t *testing.T) {
	a := &stubExec{}
	runScript(t, a, "l\nquit\n")
	require.Equal(t, []string{"list"}, a.calls)
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	a := &stubExec{}
	out := runScript(t, a, "frobnicate\nexit\n")

	var found bool
	for _, line := range out {
		if strings.Contains(line, "Unknown command:") {
			found = true
		}
	}
	require.True(t, found)
	require.Empty(t, a.calls)
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	out := runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	require.Contains(t, strings.Join(out, "\n"), "login, register, exit")

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	require.Contains(t, strings.Join(out, "\n"), "logout")
}

func TestRunREPL_EmptyLinesSkipped(t *testing.T) {
	a := &stubExec{}
	runScript(t, a, "\n\n   \nexit\n")
	require.Empty(t, a.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	a := &stubExec{}
	runScript(t, a, "list\n") // no exit, scanner hits EOF
	require.Equal(t, []string{"list"}, a.calls)
}
