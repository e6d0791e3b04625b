package verdict

import (
	"regexp"
	"strings"

	"github.com/sentra-id/cekfakta/src/models"
)

// Models follow the template loosely at best: the status label may carry
// markdown emphasis, brackets, or different casing. Extraction is a
// best-effort scan; a miss resolves to UNKNOWN, never an error.
var statusLine = regexp.MustCompile(`(?im)^[\s*_#>-]*status[\s*_]*:[\s*_]*(.+)$`)

// Statuses the prompt asks for. Anything else the model writes on a
// Status line (SATIRE, MUNGKIN HOAKS, ...) collapses to UNKNOWN so the
// stored verdict set stays closed.
var knownStatuses = map[string]bool{
	"FAKTA":       true,
	"HOAKS":       true,
	"TIDAK JELAS": true,
}

// Extract pulls the structured verdict out of free-form model text.
func Extract(text string) string {
	m := statusLine.FindStringSubmatch(text)
	if m == nil {
		return models.VerdictUnknown
	}

	status := strings.TrimSpace(m[1])
	status = strings.Trim(status, "*_[](){}<>")
	status = strings.ToUpper(strings.Join(strings.Fields(status), " "))
	if !knownStatuses[status] {
		return models.VerdictUnknown
	}
	return status
}
