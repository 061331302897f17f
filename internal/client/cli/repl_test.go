package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls  []string
	skus   []string
	lines  []string
	prints []string
}

func (f *fakeExec) Println(args ...any) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.(string)
	}
	f.lines = append(f.lines, strings.Join(parts, " "))
}
func (f *fakeExec) Print(s string) { f.prints = append(f.prints, s) }
func (f *fakeExec) Profile() { f.calls = append(f.calls, "profile") }
func (f *fakeExec) Links() { f.calls = append(f.calls, "links") }
func (f *fakeExec) Videos() { f.calls = append(f.calls, "videos") }
func (f *fakeExec) Catalog() { f.calls = append(f.calls, "catalog") }
func (f *fakeExec) Unlock(ctx context.Context, sku string) error {
	f.calls = append(f.calls, "unlock")
	f.skus = append(f.skus, sku)
	return nil
}
func (f *fakeExec) Status(ctx context.Context) error {
	f.calls = append(f.calls, "status")
	return nil
}
func (f *fakeExec) Revoke(ctx context.Context) error {
	f.calls = append(f.calls, "revoke")
	return nil
}

func TestRunREPL_Dispatch(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"help",
		"profile",
		"",
		"links",
		"videos",
		"l",
		"catalog",
		"unlock unreleased-ep-002",
		"buy",
		"status",
		"revoke",
		"foobar",
		"exit",
		"status",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, nil, bufio.NewScanner(input))

	assert.Equal(t, []string{
		"profile", "links", "videos", "catalog", "catalog",
		"unlock", "unlock", "status", "revoke",
	}, exec.calls)
	assert.Equal(t, []string{"unreleased-ep-002", ""}, exec.skus)
	assert.Equal(t, []string{helpText, "Unknown command: foobar", "Bye!"}, exec.lines)
	assert.Empty(t, exec.prints, "no prompt without a prompt func")
}

func TestRunREPL_PromptAndEOF(t *testing.T) {
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "locked" }, bufio.NewScanner(strings.NewReader("status\n")))

	assert.Equal(t, []string{"status"}, exec.calls)
	assert.Equal(t, []string{"gate (locked)> ", "gate (locked)> "}, exec.prints)
	assert.Empty(t, exec.lines)
}
