package report

import (
	"context"

	"github.com/protocolhere/urlscan/internal/checker"
	"go.uber.org/zap"
)

// LogReporter writes reports through a structured logger, one entry per finding.
type LogReporter struct {
	Logger *zap.SugaredLogger
}

// Format returns "log".
func (r *LogReporter) Format() string {
	return "log"
}

func (r *LogReporter) logger() *zap.SugaredLogger {
	if r.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return r.Logger
}

// Report logs the scan outcome at info level.
func (r *LogReporter) Report(ctx context.Context, report *checker.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l := r.logger().With("scan_id", report.ID, "target", report.Target)
	if report.Safe() {
		l.Infof("%s appears safe", report.Target)
		return nil
	}

	l.Infof("vulnerabilities found at %s:", report.Target)
	for _, f := range report.Findings {
		l.Infow(f.Message, "kind", f.Kind)
	}
	return nil
}

// Error logs an aborted scan at error level.
func (r *LogReporter) Error(ctx context.Context, target string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	r.logger().Errorw("error accessing "+target, "target", target, "error", err)
	return nil
}
