package checker

import (
	"context"
	"time"

	"github.com/protocolhere/urlscan/internal/document"
	"github.com/protocolhere/urlscan/internal/transport"
)

// Kind is a stable identifier for the check that produced a finding.
type Kind string

const (
	KindInsecureScheme        Kind = "insecure-scheme"
	KindSQLInjection          Kind = "sql-injection"
	KindXSS                   Kind = "xss"
	KindMissingCSRF           Kind = "missing-csrf"
	KindClickjacking          Kind = "clickjacking"
	KindMissingSecurityHeader Kind = "missing-security-header"
	KindServerDisclosure      Kind = "server-disclosure"
	KindInsecureCookie        Kind = "insecure-cookie"
)

// Finding is one detected issue. It always renders as a single line.
type Finding struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (f Finding) String() string {
	return f.Message
}

// Stage decides when a check runs relative to the fetch.
type Stage int

const (
	// StageTarget checks only look at the raw target string and run before the fetch.
	StageTarget Stage = iota
	// StageContent checks look at the fetched response and parsed document.
	StageContent
)

func (s Stage) String() string {
	switch s {
	case StageTarget:
		return "target"
	case StageContent:
		return "content"
	default:
		return "unknown"
	}
}

// Input is the shared, read-only snapshot every check receives.
// Response and Document are nil for StageTarget checks.
type Input struct {
	Target   string
	Response *transport.Response
	Document *document.Document
}

// Check is a single stateless inspection rule.
type Check interface {
	// Name returns a short human-readable name (e.g. "security headers")
	Name() string

	// Kind returns the kind of every finding this check emits
	Kind() Kind

	// Stage reports which inputs the check needs
	Stage() Stage

	// Run inspects the input and returns zero or more findings
	Run(in Input) []Finding
}

// Fetcher retrieves the one response a scan inspects.
type Fetcher interface {
	Fetch(ctx context.Context, target string) (*transport.Response, error)
}

// Report is the ordered result of scanning one target.
type Report struct {
	ID          string    `json:"id"`
	Target      string    `json:"target"`
	FinalURL    string    `json:"final_url,omitempty"`
	StatusCode  int       `json:"status_code,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	Findings    []Finding `json:"findings"`
}

// Safe reports whether the scan produced no findings.
func (r *Report) Safe() bool {
	return r == nil || len(r.Findings) == 0
}

// Messages returns the rendered findings in report order.
func (r *Report) Messages() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		out = append(out, f.String())
	}
	return out
}

// Duration is the wall-clock time the scan took.
func (r *Report) Duration() time.Duration {
	if r == nil {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}
