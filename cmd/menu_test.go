package cmd

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestRunMenu_InvalidChoice(t *testing.T) {
	appCtx := setupTestAppContext(t)
	cmd, out := newTestCommand("2\n")

	if err := runMenu(cmd, appCtx); err != nil {
		t.Fatalf("expected invalid choice to exit cleanly, got %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "1. url scanner") {
		t.Errorf("expected banner menu in output, got %q", output)
	}
	if !strings.Contains(output, `invalid choice "2", please select option 1`) {
		t.Errorf("expected invalid choice message, got %q", output)
	}
	if strings.Contains(output, urlPrompt) {
		t.Errorf("did not expect URL prompt after invalid choice")
	}
}

func TestRunMenu_ChoiceIsExact(t *testing.T) {
	appCtx := setupTestAppContext(t)
	cmd, out := newTestCommand(" 1\n")

	if err := runMenu(cmd, appCtx); err != nil {
		t.Fatalf("runMenu() error = %v", err)
	}
	if !strings.Contains(out.String(), "invalid choice") {
		t.Fatalf("expected padded choice to be rejected, got %q", out.String())
	}
}

func TestRunMenu_ScansURL(t *testing.T) {
	appCtx := setupTestAppContext(t)
	srv := newVulnerableServer(t)
	cmd, out := newTestCommand("1\n" + srv.URL + "\n")

	if err := runMenu(cmd, appCtx); err != nil {
		t.Fatalf("runMenu() error = %v", err)
	}

	output := out.String()
	for _, want := range []string{
		choicePrompt,
		urlPrompt,
		"Vulnerabilities found at " + srv.URL,
		"URL does not use HTTPS",
		"possible SQL injection",
		"missing CSRF protection",
		"server information: test-server/1.0",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRunMenu_FetchFailureExitsCleanly(t *testing.T) {
	appCtx := setupTestAppContext(t)
	target := closedServerURL(t)
	cmd, out := newTestCommand("1\n" + target)

	if err := runMenu(cmd, appCtx); err != nil {
		t.Fatalf("expected fetch failure to be reported, not returned: %v", err)
	}
	if !strings.Contains(out.String(), "error accessing "+target) {
		t.Fatalf("expected error message, got %q", out.String())
	}
	if strings.Contains(out.String(), "URL does not use HTTPS") {
		t.Fatalf("expected no partial report on fetch failure")
	}
}

func TestRunMenu_EmptyInput(t *testing.T) {
	appCtx := setupTestAppContext(t)
	cmd, _ := newTestCommand("")

	if err := runMenu(cmd, appCtx); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF error on empty input, got %v", err)
	}
}

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("one\r\ntwo"))

	first, err := readLine(r)
	if err != nil || first != "one" {
		t.Fatalf("readLine() = %q, %v", first, err)
	}
	second, err := readLine(r)
	if err != nil || second != "two" {
		t.Fatalf("expected final line without newline, got %q, %v", second, err)
	}
	if _, err := readLine(r); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}
