// Package report renders scan reports. Reporters are constructed once per
// invocation and carry their own writer or logger; nothing here is global.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/protocolhere/urlscan/internal/checker"
	apperrors "github.com/protocolhere/urlscan/internal/shared/errors"
	"go.uber.org/zap"
)

// Reporter renders the outcome of one scan.
type Reporter interface {
	// Format returns the format name ("text", "json", "log").
	Format() string

	// Report renders a completed scan.
	Report(ctx context.Context, report *checker.Report) error

	// Error renders a scan that was aborted before any report existed.
	Error(ctx context.Context, target string, err error) error
}

// Formats lists the accepted format names.
var Formats = []string{"text", "json", "log"}

// New returns the reporter for format. Writers are used by text and json,
// the logger by log.
func New(format string, w io.Writer, logger *zap.SugaredLogger) (Reporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return &TextReporter{W: w}, nil
	case "json":
		return &JSONReporter{W: w}, nil
	case "log":
		return &LogReporter{Logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w %q (expected one of %s)", apperrors.ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
}
