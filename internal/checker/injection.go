package checker

import "strings"

// sqlKeywords are matched against the upper-cased visible text.
var sqlKeywords = []string{"SELECT", "UNION", "INSERT", "UPDATE", "DELETE", "DROP"}

// InjectionCheck flags pages whose text mentions any SQL keyword. It is a crude
// heuristic: prose and code are not distinguished and the keyword is not reported.
type InjectionCheck struct{}

func (InjectionCheck) Name() string { return "sql injection patterns" }
func (InjectionCheck) Kind() Kind   { return KindSQLInjection }
func (InjectionCheck) Stage() Stage { return StageContent }

func (c InjectionCheck) Run(in Input) []Finding {
	text := strings.ToUpper(in.Document.Text())
	for _, keyword := range sqlKeywords {
		if strings.Contains(text, keyword) {
			return []Finding{{Kind: c.Kind(), Message: "possible SQL injection"}}
		}
	}
	return nil
}
