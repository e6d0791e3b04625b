package core

import "strings"

// IsRateLimit reports whether an error looks like provider throttling or
// quota exhaustion. Providers surface these as message text, not typed
// errors, so matching is by substring.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate_limit") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "429")
}
