package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.err
}

func (f *fakeExec) isLoggedIn() bool                           { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error         { return f.record("register", nil) }
func (f *fakeExec) Feed(ctx context.Context) error             { return f.record("feed", nil) }
func (f *fakeExec) Mine(ctx context.Context) error             { return f.record("mine", nil) }
func (f *fakeExec) Post(ctx context.Context) error             { return f.record("post", nil) }
func (f *fakeExec) Show(_ context.Context, a []string) error   { return f.record("show", a) }
func (f *fakeExec) Edit(_ context.Context, a []string) error   { return f.record("edit", a) }
func (f *fakeExec) Delete(_ context.Context, a []string) error { return f.record("delete", a) }
func (f *fakeExec) Like(_ context.Context, a []string) error   { return f.record("like", a) }
func (f *fakeExec) Unlike(_ context.Context, a []string) error { return f.record("unlike", a) }
func (f *fakeExec) Comment(_ context.Context, a []string) error {
	return f.record("comment", a)
}
func (f *fakeExec) Comments(_ context.Context, a []string) error {
	return f.record("comments", a)
}
func (f *fakeExec) EditComment(_ context.Context, a []string) error {
	return f.record("editcomment", a)
}
func (f *fakeExec) DeleteComment(_ context.Context, a []string) error {
	return f.record("delcomment", a)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"feed",
		"mine",
		"",
		"show 3",
		"post",
		"edit 3",
		"delete 3",
		"like 4",
		"unlike 4",
		"comment 4",
		"comments 4",
		"editcomment 9",
		"delcomment 9",
		"logout",
		"exit",
		"feed",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	assert.Equal(t, []string{
		"login", "feed", "mine", "show 3", "post", "edit 3", "delete 3",
		"like 4", "unlike 4", "comment 4", "comments 4", "editcomment 9", "delcomment 9",
		"logout",
	}, exec.calls)
}

func TestRunREPL_ReportsErrorsAndUnknownCommands(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("feed\nfoobar\n")))

	assert.Contains(t, *out, "Error: boom")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Equal(t, []string{"feed"}, exec.calls)
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("feed")))

	assert.Equal(t, []string{"feed"}, exec.calls)
}
