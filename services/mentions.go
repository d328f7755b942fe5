package services

import "regexp"

var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9_.]+)`)

// ExtractMentions returns the usernames @-mentioned in text, first occurrence
// order, deduplicated. A caption mentioning the same user twice yields one
// entry, so one mutation emits at most one mention notification per user.
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		username := m[1]
		if _, ok := seen[username]; ok {
			continue
		}
		seen[username] = struct{}{}
		out = append(out, username)
	}
	return out
}
