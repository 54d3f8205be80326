// Package checker implements the urlscan check pipeline.
//
// Architecture overview:
//
//   - Checks implement the Check interface (Name, Kind, Stage, Run). Each one is
//     a stateless rule over a shared Input snapshot: the raw target string, the
//     fetched response and the parsed document.
//   - Pipeline fixes the execution order. Target-stage checks run first, the
//     target is fetched and parsed exactly once, then content-stage checks run
//     in declaration order. Findings are concatenated without deduplication.
//   - A failed fetch aborts the scan; callers get the error and no report.
//   - Runner fans several targets out over a bounded worker pool with a global
//     rate limit, keeping each target's pipeline sequential and isolated.
//
// Rendering reports is left to internal/report so that cmd/ can pick a format.
package checker
