package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/protocolhere/urlscan/internal/checker"
)

const (
	doubleLine = "\u2550" // ═
	singleLine = "\u2500" // ─
	lineWidth  = 50
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

// TextReporter outputs coloured terminal text.
type TextReporter struct {
	W io.Writer

	mu sync.Mutex
}

// Format returns "text".
func (r *TextReporter) Format() string {
	return "text"
}

// Report writes the findings of one scan to W.
func (r *TextReporter) Report(ctx context.Context, report *checker.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b := &strings.Builder{}
	doubleBar := strings.Repeat(doubleLine, lineWidth)
	singleBar := strings.Repeat(singleLine, lineWidth)

	fmt.Fprintln(b, doubleBar)
	fmt.Fprintf(b, "%s %s\n", colorInfo("Target:  "), report.Target)
	if report.FinalURL != "" && report.FinalURL != report.Target {
		fmt.Fprintf(b, "%s %s\n", colorInfo("Final:   "), report.FinalURL)
	}
	if report.StatusCode != 0 {
		fmt.Fprintf(b, "%s %d\n", colorInfo("Status:  "), report.StatusCode)
	}
	fmt.Fprintf(b, "%s %.2fs\n", colorInfo("Duration:"), report.Duration().Seconds())
	fmt.Fprintln(b, singleBar)

	if report.Safe() {
		fmt.Fprintln(b, colorSuccess("target appears safe"))
	} else {
		fmt.Fprintf(b, "Vulnerabilities found at %s:\n", report.Target)
		for _, msg := range report.Messages() {
			fmt.Fprintf(b, "  %s %s\n", colorWarn("-"), msg)
		}
	}

	fmt.Fprintln(b, doubleBar)
	fmt.Fprintf(b, "Summary: %d finding(s)\n", len(report.Findings))

	return r.write(b.String())
}

// Error writes an aborted scan to W.
func (r *TextReporter) Error(ctx context.Context, target string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return r.write(fmt.Sprintf("%s error accessing %s: %v\n", colorError("[!]"), target, err))
}

func (r *TextReporter) write(s string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := io.WriteString(r.W, s)
	return err
}
