package checker

import (
	"net/http"
	"strings"
)

// SecurityHeaderSpec pairs a response header with the label used in findings.
type SecurityHeaderSpec struct {
	Header string
	Label  string
}

// securityHeaderSpecs is swept in declaration order.
var securityHeaderSpecs = []SecurityHeaderSpec{
	{Header: "Content-Security-Policy", Label: "Content Security Policy (CSP)"},
	{Header: "Strict-Transport-Security", Label: "HTTP Strict Transport Security (HSTS)"},
	{Header: "X-Content-Type-Options", Label: "Content Type Options (XCTO)"},
	{Header: "X-XSS-Protection", Label: "XSS Protection (XXSSP)"},
	{Header: "Referrer-Policy", Label: "Referrer Policy"},
	{Header: "Permissions-Policy", Label: "Permissions Policy"},
}

// SecurityHeaderSpecs returns a copy of the swept headers in order.
func SecurityHeaderSpecs() []SecurityHeaderSpec {
	out := make([]SecurityHeaderSpec, len(securityHeaderSpecs))
	copy(out, securityHeaderSpecs)
	return out
}

// headerPresent reports whether the header was sent at all, even with an empty value.
func headerPresent(h http.Header, name string) bool {
	return len(h.Values(name)) > 0
}

// headerValue joins repeated header lines the way most HTTP clients expose them.
func headerValue(h http.Header, name string) string {
	return strings.Join(h.Values(name), ", ")
}

// ClickjackingCheck flags responses without an X-Frame-Options header.
// Any value, including an empty one, counts as present.
type ClickjackingCheck struct{}

func (ClickjackingCheck) Name() string { return "clickjacking protection" }
func (ClickjackingCheck) Kind() Kind   { return KindClickjacking }
func (ClickjackingCheck) Stage() Stage { return StageContent }

func (c ClickjackingCheck) Run(in Input) []Finding {
	if headerPresent(in.Response.Header, "X-Frame-Options") {
		return nil
	}
	return []Finding{{Kind: c.Kind(), Message: "missing clickjacking protection (X-Frame-Options header)"}}
}

// SecurityHeadersCheck emits one finding per swept header that is absent or blank.
type SecurityHeadersCheck struct{}

func (SecurityHeadersCheck) Name() string { return "security headers" }
func (SecurityHeadersCheck) Kind() Kind   { return KindMissingSecurityHeader }
func (SecurityHeadersCheck) Stage() Stage { return StageContent }

func (c SecurityHeadersCheck) Run(in Input) []Finding {
	var findings []Finding
	for _, spec := range securityHeaderSpecs {
		if strings.TrimSpace(headerValue(in.Response.Header, spec.Header)) != "" {
			continue
		}
		findings = append(findings, Finding{
			Kind:    c.Kind(),
			Message: spec.Label + " header missing (" + spec.Header + ")",
		})
	}
	return findings
}

// ServerBannerCheck echoes the Server header verbatim when the response discloses one.
type ServerBannerCheck struct{}

func (ServerBannerCheck) Name() string { return "server information" }
func (ServerBannerCheck) Kind() Kind   { return KindServerDisclosure }
func (ServerBannerCheck) Stage() Stage { return StageContent }

func (c ServerBannerCheck) Run(in Input) []Finding {
	if !headerPresent(in.Response.Header, "Server") {
		return nil
	}
	return []Finding{{Kind: c.Kind(), Message: "server information: " + headerValue(in.Response.Header, "Server")}}
}
