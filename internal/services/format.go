package services

import (
	"strings"
	"time"
)

const (
	fullDateLayout = "02.01.2006"
	clockLayout    = "15:04"

	messageMaxLength = 200
)

// formatAuthor joins name and location for display. Location is optional.
func formatAuthor(name, location string) string {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if location == "" {
		return name
	}
	return name + " from " + location
}

// truncateMessage shortens text to messageMaxLength characters, cutting at
// the last word boundary and appending an ellipsis. The cut counts runes, not
// bytes, so a multibyte character at the boundary is never split.
func truncateMessage(text string) string {
	runes := []rune(text)
	if len(runes) <= messageMaxLength {
		return text
	}
	cut := string(runes[:messageMaxLength-3])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

func formatDate(t time.Time) string {
	return t.Format(fullDateLayout)
}

func formatClock(t time.Time) string {
	return t.Format(clockLayout)
}
