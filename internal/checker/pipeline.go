package checker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/protocolhere/urlscan/internal/document"
	"go.uber.org/zap"
)

// DefaultChecks returns the fixed check battery in execution order.
func DefaultChecks() []Check {
	return []Check{
		SchemeCheck{},
		InjectionCheck{},
		ScriptTagCheck{},
		CSRFCheck{},
		ClickjackingCheck{},
		SecurityHeadersCheck{},
		ServerBannerCheck{},
		CookieFlagsCheck{},
	}
}

// Pipeline runs an ordered list of checks against a single fetched snapshot.
type Pipeline struct {
	fetcher Fetcher
	checks  []Check
	logger  *zap.SugaredLogger
}

// NewPipeline builds a pipeline over the default checks. A nil logger disables logging.
func NewPipeline(fetcher Fetcher, logger *zap.SugaredLogger) *Pipeline {
	return NewPipelineWithChecks(fetcher, logger, DefaultChecks()...)
}

// NewPipelineWithChecks builds a pipeline over an explicit ordered list of checks.
func NewPipelineWithChecks(fetcher Fetcher, logger *zap.SugaredLogger, checks ...Check) *Pipeline {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Pipeline{
		fetcher: fetcher,
		checks:  append([]Check(nil), checks...),
		logger:  logger,
	}
}

// Checks returns the configured checks in execution order.
func (p *Pipeline) Checks() []Check {
	out := make([]Check, len(p.checks))
	copy(out, p.checks)
	return out
}

// Scan runs target checks, fetches and parses the target exactly once, then runs
// content checks in order. A fetch failure aborts the scan and no report is returned.
func (p *Pipeline) Scan(ctx context.Context, target string) (*Report, error) {
	report := &Report{
		ID:        uuid.NewString(),
		Target:    target,
		StartedAt: time.Now().UTC(),
	}
	log := p.logger.With("scan_id", report.ID, "target", target)

	in := Input{Target: target}
	findings := p.runStage(log, StageTarget, in)

	resp, err := p.fetcher.Fetch(ctx, target)
	if err != nil {
		log.Debugw("fetch failed, scan aborted", "pending_findings", len(findings), "error", err)
		return nil, err
	}
	log.Debugw("fetched target", "status", resp.StatusCode, "final_url", resp.FinalURL, "bytes", len(resp.Body))

	in.Response = resp
	in.Document = document.Parse(resp.Body)
	findings = append(findings, p.runStage(log, StageContent, in)...)

	report.FinalURL = resp.FinalURL
	report.StatusCode = resp.StatusCode
	report.Findings = findings
	report.CompletedAt = time.Now().UTC()
	return report, nil
}

func (p *Pipeline) runStage(log *zap.SugaredLogger, stage Stage, in Input) []Finding {
	var findings []Finding
	for _, chk := range p.checks {
		if chk.Stage() != stage {
			continue
		}
		out := chk.Run(in)
		log.Debugw("check complete", "check", chk.Name(), "findings", len(out))
		findings = append(findings, out...)
	}
	return findings
}
