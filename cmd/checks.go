package cmd

import (
	"fmt"

	"github.com/protocolhere/urlscan/internal/checker"
	"github.com/spf13/cobra"
)

// CheckSpec describes one pipeline check as listed by "urlscan checks".
type CheckSpec struct {
	Position int
	Name     string
	Stage    string
	Kind     string
}

// checkCatalog derives the listing from the pipeline itself so it cannot drift.
func checkCatalog() []CheckSpec {
	checks := checker.NewPipeline(nil, nil).Checks()
	out := make([]CheckSpec, 0, len(checks))
	for i, chk := range checks {
		out = append(out, CheckSpec{
			Position: i + 1,
			Name:     chk.Name(),
			Stage:    chk.Stage().String(),
			Kind:     string(chk.Kind()),
		})
	}
	return out
}

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the checks in execution order",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, colorInfo("Checks (in execution order):"))
		for _, spec := range checkCatalog() {
			fmt.Fprintf(out, "  %d. %-24s %-8s %s\n", spec.Position, spec.Name, spec.Stage, spec.Kind)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, colorInfo("Security headers swept:"))
		for _, spec := range checker.SecurityHeaderSpecs() {
			fmt.Fprintf(out, "  - %-26s %s\n", spec.Header, spec.Label)
		}
		return nil
	},
}
