package report

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/protocolhere/urlscan/internal/checker"
)

// JSONReporter outputs one JSON document per scan.
type JSONReporter struct {
	W io.Writer

	// Compact outputs single-line JSON when true (no indentation).
	Compact bool

	mu sync.Mutex
}

// Format returns "json".
func (r *JSONReporter) Format() string {
	return "json"
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	SchemaVersion string            `json:"schema_version"`
	Tool          string            `json:"tool"`
	ID            string            `json:"id,omitempty"`
	Target        string            `json:"target"`
	FinalURL      string            `json:"final_url,omitempty"`
	StatusCode    int               `json:"status_code,omitempty"`
	Scan          *jsonScan         `json:"scan,omitempty"`
	Findings      []checker.Finding `json:"findings"`
	Safe          bool              `json:"safe"`
	Error         string            `json:"error,omitempty"`
}

// jsonScan represents scan timing in JSON.
type jsonScan struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds float64   `json:"duration_seconds"`
}

const jsonSchemaVersion = "1"

// Report writes one scan as JSON.
func (r *JSONReporter) Report(ctx context.Context, report *checker.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	findings := report.Findings
	if findings == nil {
		findings = []checker.Finding{}
	}

	return r.encode(jsonOutput{
		SchemaVersion: jsonSchemaVersion,
		Tool:          "urlscan",
		ID:            report.ID,
		Target:        report.Target,
		FinalURL:      report.FinalURL,
		StatusCode:    report.StatusCode,
		Scan: &jsonScan{
			StartTime:       report.StartedAt,
			EndTime:         report.CompletedAt,
			DurationSeconds: report.Duration().Seconds(),
		},
		Findings: findings,
		Safe:     report.Safe(),
	})
}

// Error writes an aborted scan as JSON. Safe is always false: nothing was inspected.
func (r *JSONReporter) Error(ctx context.Context, target string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return r.encode(jsonOutput{
		SchemaVersion: jsonSchemaVersion,
		Tool:          "urlscan",
		Target:        target,
		Findings:      []checker.Finding{},
		Error:         err.Error(),
	})
}

func (r *JSONReporter) encode(out jsonOutput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	enc := json.NewEncoder(r.W)
	if !r.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
