package utils

import "strings"

// QueryKeywords lowercases the query and splits it on whitespace, keeping
// words of three characters or more. Hyphens and other punctuation are
// preserved so "t-shirt" stays one keyword.
func QueryKeywords(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 {
			keywords = append(keywords, f)
		}
	}
	return keywords
}
