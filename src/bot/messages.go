package bot

import (
	"fmt"
	"strings"

	"github.com/sentra-id/cekfakta/src/pipeline"
)

const maxMessageLength = 1900

// buildReply composes the final user-facing message: the model's
// analysis plus the reference links that fed it.
func buildReply(userID string, out pipeline.Outcome) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<@%s> **Hasil Analisis:**\n%s", userID, strings.TrimSpace(out.Answer))

	if len(out.Evidence) > 0 {
		b.WriteString("\n\n**Sumber Referensi:**\n")
		for _, ev := range out.Evidence {
			title := ev.Title
			if title == "" {
				title = ev.URL
			}
			fmt.Fprintf(&b, "- %s\n  %s\n", title, ev.URL)
		}
	}

	return b.String()
}

// splitMessage chunks a reply under Discord's message size limit,
// breaking on line boundaries where possible.
func splitMessage(text string) []string {
	if len(text) <= maxMessageLength {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder

	for _, line := range strings.Split(text, "\n") {
		for len(line) > maxMessageLength {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			chunks = append(chunks, line[:maxMessageLength])
			line = line[maxMessageLength:]
		}

		if current.Len() > 0 && current.Len()+len(line)+1 > maxMessageLength {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
