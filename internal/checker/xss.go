package checker

import "strings"

const scriptTag = "<script>"

// ScriptTagCheck flags documents containing an attribute-less <script> tag.
// The whole markup is lower-cased first so any casing of the tag matches.
type ScriptTagCheck struct{}

func (ScriptTagCheck) Name() string { return "script tags" }
func (ScriptTagCheck) Kind() Kind   { return KindXSS }
func (ScriptTagCheck) Stage() Stage { return StageContent }

func (c ScriptTagCheck) Run(in Input) []Finding {
	if !strings.Contains(strings.ToLower(in.Document.Markup()), scriptTag) {
		return nil
	}
	return []Finding{{Kind: c.Kind(), Message: "possible XSS vulnerability"}}
}
