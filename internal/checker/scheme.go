package checker

import "strings"

// SchemeCheck flags targets that are not requested over HTTPS.
// It compares only the leading characters of the raw target, case-insensitively.
type SchemeCheck struct{}

func (SchemeCheck) Name() string { return "https usage" }
func (SchemeCheck) Kind() Kind   { return KindInsecureScheme }
func (SchemeCheck) Stage() Stage { return StageTarget }

func (c SchemeCheck) Run(in Input) []Finding {
	if strings.HasPrefix(strings.ToLower(in.Target), "https") {
		return nil
	}
	return []Finding{{Kind: c.Kind(), Message: "URL does not use HTTPS"}}
}
