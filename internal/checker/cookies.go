package checker

import "strings"

// CookieFlagsCheck flags the response once if any Set-Cookie value lacks the
// Secure or HttpOnly attribute. The test is a case-sensitive substring match on
// the raw header value, and affected cookies are not enumerated.
type CookieFlagsCheck struct{}

func (CookieFlagsCheck) Name() string { return "cookie flags" }
func (CookieFlagsCheck) Kind() Kind   { return KindInsecureCookie }
func (CookieFlagsCheck) Stage() Stage { return StageContent }

func (c CookieFlagsCheck) Run(in Input) []Finding {
	for _, raw := range in.Response.Cookies() {
		if !strings.Contains(raw, "Secure") || !strings.Contains(raw, "HttpOnly") {
			return []Finding{{Kind: c.Kind(), Message: "insecure cookies detected (missing Secure/HttpOnly flags)"}}
		}
	}
	return nil
}
