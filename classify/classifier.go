// Package classify turns raw provider failures into user-facing causes.
// Pure functions only; no network access, no side effects.
package classify

import "strings"

// User-facing causes, stable regardless of participant or round.
const (
	NoKeyConfigured = "No API key is configured for this model. Add one in the desk settings."
	CreditExhausted = "The configured API key has no remaining credit."
	WrongKeyType    = "The configured key belongs to another product tier and cannot be used for chat."
	InvalidKey      = "The configured API key was rejected. Check the desk configuration."
)

type rule struct {
	cause    string
	patterns []string
}

// Evaluated in priority order, first match wins. Quota exhaustion outranks
// the generic invalid-key bucket because providers often phrase it as
// "invalid request: quota exceeded".
var rules = []rule{
	{NoKeyConfigured, []string{"no active credential", "no api key", "api key not found", "missing api key", "no key configured"}},
	{CreditExhausted, []string{"quota", "credit", "insufficient_quota", "billing hard limit", "exceeded your current"}},
	{WrongKeyType, []string{"coding-only", "coding plan", "different product", "not valid for this product", "wrong key type"}},
	{InvalidKey, []string{"invalid api key", "invalid key", "incorrect api key", "unauthorized", "authentication_error", "401"}},
}

// Classify maps a raw failure message to a fixed category, falling back to
// the raw message unchanged when nothing matches.
func Classify(raw string) string {
	lowered := strings.ToLower(raw)
	for _, r := range rules {
		for _, p := range r.patterns {
			if strings.Contains(lowered, p) {
				return r.cause
			}
		}
	}
	return raw
}
