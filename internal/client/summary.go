package client

import (
	"fmt"
	"strings"
)

const shownFailedEmails = 5

// Summary renders the outcome of an import as user-facing lines. The first
// line reports success, or failure when nothing was imported.
func (r ImportResponse) Summary() []string {
	var lines []string
	if r.Imported > 0 {
		line := fmt.Sprintf("Successfully imported %d customer", r.Imported)
		if r.Imported > 1 {
			line += "s"
		}
		if r.Failed > 0 {
			line += fmt.Sprintf(", %d failed", r.Failed)
		}
		lines = append(lines, line)
	} else {
		lines = append(lines, fmt.Sprintf("Failed to import customers. %d customers failed.", r.Failed))
	}

	if r.Failed == 0 {
		return lines
	}
	emails := r.FailedEmails()
	if len(emails) == 0 {
		return lines
	}
	if len(emails) > shownFailedEmails {
		emails = emails[:shownFailedEmails]
	}
	line := "Failed emails: " + strings.Join(emails, ", ")
	if r.Failed > shownFailedEmails {
		line += fmt.Sprintf(" and %d more", r.Failed-shownFailedEmails)
	}
	return append(lines, line)
}
