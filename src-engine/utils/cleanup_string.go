package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// strips surrounding spaces and collapses inner whitespace runs
func CleanupString(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleCase is for display strings only; stored values keep their casing.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
