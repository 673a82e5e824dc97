package mcp

import "strings"

// parseTags splits a comma-separated tag string, trimming whitespace and
// dropping empty entries.
func parseTags(tagsStr string) []string {
	var tagsList []string
	for _, tag := range strings.Split(tagsStr, ",") {
		t := strings.TrimSpace(tag)
		if t != "" {
			tagsList = append(tagsList, t)
		}
	}
	return tagsList
}
