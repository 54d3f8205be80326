// Package constants centralizes defaults shared across the CLI.
//
// Timeouts, body limits and naming live here so cmd/ and internal/ agree on
// them without introducing import cycles.
package constants
