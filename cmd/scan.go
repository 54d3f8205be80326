package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/protocolhere/urlscan/internal/checker"
	"github.com/protocolhere/urlscan/internal/report"
	apperrors "github.com/protocolhere/urlscan/internal/shared/errors"
	"github.com/protocolhere/urlscan/internal/transport"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var scanFromStdin bool

var scanCmd = &cobra.Command{
	Use:   "scan [url...]",
	Short: "Run the check battery against one or more URLs",
	Long: `Fetch each URL once and run the fixed check battery against it:

  - HTTPS usage of the URL
  - SQL keywords in the visible text
  - <script> tags in the markup
  - CSRF token markers in every form
  - X-Frame-Options and six further security headers
  - Server header disclosure
  - Secure/HttpOnly flags on cookies

Several URLs are scanned concurrently; each URL is fetched exactly once and a
failure on one URL never affects another.`,
	Example: `  urlscan scan https://example.com
  urlscan scan --output json https://a.example http://b.example
  cat urls.txt | urlscan scan --stdin --concurrency 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx := getAppContext(cmd)

		targets := append([]string(nil), args...)
		if scanFromStdin {
			fromStdin, err := readTargets(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read targets from stdin: %w", err)
			}
			targets = append(targets, fromStdin...)
		}
		if len(targets) == 0 {
			return fmt.Errorf("no targets given: %w", apperrors.ErrEmptyTarget)
		}

		return scanTargets(cmd.Context(), appCtx, targets, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// readTargets reads one URL per line, skipping blank lines and # comments.
func readTargets(r io.Reader) ([]string, error) {
	var targets []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		targets = append(targets, line)
	}
	return targets, scanner.Err()
}

// scanTargets runs the pipeline for every target and renders the reports in input order.
func scanTargets(ctx context.Context, appCtx *AppContext, targets []string, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := appCtx.Config.Scan

	reporter, err := report.New(cfg.Output, out, appCtx.Logger)
	if err != nil {
		return err
	}

	client := transport.NewClient(transport.Options{
		Timeout:      time.Duration(cfg.TimeoutSecs) * time.Second,
		UserAgent:    cfg.UserAgent,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})
	pipeline := checker.NewPipeline(client, appCtx.Logger)
	runner := &checker.Runner{
		Concurrency: cfg.Concurrency,
		RateLimit:   cfg.RateLimit,
	}

	var progress *progressPrinter
	if len(targets) > 1 && cfg.Progress && isTerminal(errOut) {
		progress = newProgressPrinter(errOut, len(targets), "scan")
		progress.Start()
	}

	start := time.Now()
	results := runner.Run(ctx, targets, pipeline, func(r checker.Result) {
		if progress != nil {
			progress.Increment(r.Err == nil, r.Duration.Seconds())
		}
	})
	if progress != nil {
		progress.Stop()
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			if err := reporter.Error(ctx, r.Target, r.Err); err != nil {
				return fmt.Errorf("failed to render error for %s: %w", r.Target, err)
			}
			continue
		}
		if err := reporter.Report(ctx, r.Report); err != nil {
			return fmt.Errorf("failed to render report for %s: %w", r.Target, err)
		}
	}

	stats := client.Stats()
	appCtx.Logger.Debugw("scan run complete",
		"targets", len(targets),
		"failed", failed,
		"requests", stats.TotalRequests,
		"avg_request", stats.AvgDuration,
		"elapsed", time.Since(start),
	)

	if len(targets) > 1 && reporter.Format() == "text" {
		fmt.Fprintf(out, "Scanned %d target(s): %s, %s\n",
			len(targets),
			formatStatusWithColor(true, fmt.Sprintf("%d ok", len(targets)-failed)),
			formatStatusWithColor(failed == 0, fmt.Sprintf("%d failed", failed)),
		)
	}

	if failed > 0 {
		return &ScanFailedError{Failed: failed, Total: len(targets)}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func init() {
	scanCmd.Flags().BoolVar(&scanFromStdin, "stdin", false, "read additional URLs from stdin, one per line")
	scanCmd.Flags().IntVar(&cliConfig.Scan.Concurrency, "concurrency", cliConfig.Scan.Concurrency, "number of URLs scanned in parallel")
	scanCmd.Flags().IntVar(&cliConfig.Scan.RateLimit, "rate-limit", cliConfig.Scan.RateLimit, "maximum scans started per second (0 = unlimited)")
	scanCmd.Flags().BoolVar(&cliConfig.Scan.Progress, "progress", cliConfig.Scan.Progress, "show a progress line on the terminal for multi-URL scans")
}
