package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/protocolhere/urlscan/internal/checker"
	apperrors "github.com/protocolhere/urlscan/internal/shared/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func disableColor(t *testing.T) {
	t.Helper()
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = original
	})
}

func sampleReport(findings ...checker.Finding) *checker.Report {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &checker.Report{
		ID:          "scan-1",
		Target:      "http://example.com",
		FinalURL:    "http://example.com/home",
		StatusCode:  200,
		StartedAt:   start,
		CompletedAt: start.Add(1500 * time.Millisecond),
		Findings:    findings,
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "", want: "text"},
		{format: "text", want: "text"},
		{format: "JSON", want: "json"},
		{format: " log ", want: "log"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := New(tt.format, &bytes.Buffer{}, zap.NewNop().Sugar())
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.format, err)
			}
			if r.Format() != tt.want {
				t.Fatalf("New(%q).Format() = %s, want %s", tt.format, r.Format(), tt.want)
			}
		})
	}

	if _, err := New("xml", nil, nil); !errors.Is(err, apperrors.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestTextReporter_Findings(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	r := &TextReporter{W: &buf}
	report := sampleReport(
		checker.Finding{Kind: checker.KindInsecureScheme, Message: "URL does not use HTTPS"},
		checker.Finding{Kind: checker.KindServerDisclosure, Message: "server information: nginx"},
	)
	if err := r.Report(context.Background(), report); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Target:   http://example.com",
		"Final:    http://example.com/home",
		"Status:   200",
		"Duration: 1.50s",
		"Vulnerabilities found at http://example.com:",
		"  - URL does not use HTTPS\n  - server information: nginx",
		"Summary: 2 finding(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestTextReporter_Safe(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	if err := (&TextReporter{W: &buf}).Report(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if !strings.Contains(buf.String(), "target appears safe") {
		t.Fatalf("expected safe message, got %s", buf.String())
	}
	if strings.Contains(buf.String(), "Vulnerabilities found") {
		t.Fatalf("did not expect findings header for safe report")
	}
}

func TestTextReporter_Error(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	if err := (&TextReporter{W: &buf}).Error(context.Background(), "http://down", errors.New("no such host")); err != nil {
		t.Fatalf("Error() error = %v", err)
	}
	if got := buf.String(); got != "[!] error accessing http://down: no such host\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestTextReporter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := (&TextReporter{W: &buf}).Report(ctx, sampleReport()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output after cancellation")
	}
}

func TestJSONReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := &JSONReporter{W: &buf, Compact: true}
	report := sampleReport(checker.Finding{Kind: checker.KindXSS, Message: "possible XSS vulnerability"})
	if err := r.Report(context.Background(), report); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("expected compact single-line JSON, got %q", buf.String())
	}

	var got jsonOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.ID != "scan-1" || got.Target != "http://example.com" || got.StatusCode != 200 {
		t.Errorf("unexpected metadata: %+v", got)
	}
	if got.Safe {
		t.Error("expected safe=false when findings exist")
	}
	if len(got.Findings) != 1 || got.Findings[0].Kind != checker.KindXSS {
		t.Errorf("unexpected findings: %+v", got.Findings)
	}
	if got.Scan == nil || got.Scan.DurationSeconds != 1.5 {
		t.Errorf("unexpected scan timing: %+v", got.Scan)
	}
}

func TestJSONReporter_SafeHasEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONReporter{W: &buf}).Report(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"findings": []`) {
		t.Errorf("expected empty findings array, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"safe": true`) {
		t.Errorf("expected safe=true, got %s", buf.String())
	}
}

func TestJSONReporter_Error(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONReporter{W: &buf, Compact: true}).Error(context.Background(), "http://down", errors.New("refused")); err != nil {
		t.Fatalf("Error() error = %v", err)
	}

	var got jsonOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Error != "refused" || got.Target != "http://down" || got.Safe {
		t.Fatalf("unexpected error document: %+v", got)
	}
}

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := &LogReporter{Logger: zap.New(core).Sugar()}

	report := sampleReport(
		checker.Finding{Kind: checker.KindMissingCSRF, Message: "missing CSRF protection"},
		checker.Finding{Kind: checker.KindInsecureCookie, Message: "insecure cookies detected (missing Secure/HttpOnly flags)"},
	)
	if err := r.Report(context.Background(), report); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected header plus 2 finding entries, got %d", len(entries))
	}
	if entries[0].Message != "vulnerabilities found at http://example.com:" {
		t.Errorf("unexpected header entry %q", entries[0].Message)
	}
	if entries[1].Message != "missing CSRF protection" || entries[2].Message != "insecure cookies detected (missing Secure/HttpOnly flags)" {
		t.Errorf("unexpected finding order: %q, %q", entries[1].Message, entries[2].Message)
	}

	logs.TakeAll()
	if err := r.Report(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if got := logs.All(); len(got) != 1 || got[0].Message != "http://example.com appears safe" {
		t.Fatalf("unexpected safe log entries: %+v", got)
	}

	logs.TakeAll()
	if err := r.Error(context.Background(), "http://down", errors.New("refused")); err != nil {
		t.Fatalf("Error() error = %v", err)
	}
	if got := logs.FilterLevelExact(zapcore.ErrorLevel).All(); len(got) != 1 {
		t.Fatalf("expected one error entry, got %d", len(got))
	}
}

func TestLogReporter_NilLogger(t *testing.T) {
	r := &LogReporter{}
	if err := r.Report(context.Background(), sampleReport()); err != nil {
		t.Fatalf("expected nil logger to be tolerated, got %v", err)
	}
}
