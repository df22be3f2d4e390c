package notifications

import (
	"course_suggestions_system/internal"
	"course_suggestions_system/internal/db/models"
	"fmt"
	"strings"
)

func proposedText(suggestion *models.Suggestion) string {
	var builder strings.Builder

	builder.WriteString("New course suggestion\n\n")
	builder.WriteString(fmt.Sprintf("#%d %s\n", suggestion.ID, suggestion.Name))
	if suggestion.Description != "" {
		builder.WriteString(fmt.Sprintf("%s\n", suggestion.Description))
	}
	builder.WriteString(fmt.Sprintf("Proposed by: %s\n", suggestion.ProposerUsername))
	builder.WriteString(fmt.Sprintf("Date: %s\n", internal.Format(suggestion.CreatedAt)))
	builder.WriteString(fmt.Sprintf("\n/approve %d or /reject %d", suggestion.ID, suggestion.ID))

	return builder.String()
}

func moderatedText(suggestion *models.Suggestion) string {
	return fmt.Sprintf(
		"%s: #%d %s (%d votes, %s)",
		suggestion.Status.CapitalizedString(),
		suggestion.ID,
		suggestion.Name,
		suggestion.Votes,
		internal.Format(suggestion.UpdatedAt),
	)
}
