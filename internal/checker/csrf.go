package checker

import "strings"

const csrfMarker = "csrf"

// CSRFCheck flags the first form whose markup carries no CSRF token marker.
// Forms after the first offender are not inspected.
type CSRFCheck struct{}

func (CSRFCheck) Name() string { return "csrf tokens" }
func (CSRFCheck) Kind() Kind   { return KindMissingCSRF }
func (CSRFCheck) Stage() Stage { return StageContent }

func (c CSRFCheck) Run(in Input) []Finding {
	for _, form := range in.Document.Forms() {
		if !strings.Contains(strings.ToLower(form.Markup()), csrfMarker) {
			return []Finding{{Kind: c.Kind(), Message: "missing CSRF protection"}}
		}
	}
	return nil
}
