package session

import "strings"

// extractIdentifiers normalizes raw input into an ordered identifier batch.
// Tokenization depends on mode; tokens without a parseable integer prefix
// are filtered out. Pure function, never errors.
func extractIdentifiers(raw string, mode Mode) []int64 {
	var ids []int64
	for _, tok := range tokenize(raw, mode) {
		if id, ok := parseLeadingInt(tok); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// tokenize splits raw input into trimmed, non-empty tokens.
func tokenize(raw string, mode Mode) []string {
	if mode == Single {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			return nil
		}
		return []string{tok}
	}

	var toks []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			toks = append(toks, line)
		}
	}
	return toks
}

// parseLeadingInt parses the longest signed base-10 prefix of s, stopping at
// the first non-digit ("123abc" yields 123). This permissive behavior is
// kept deliberately for compatibility with earlier releases; tokens with no
// digit prefix report ok=false.
func parseLeadingInt(s string) (int64, bool) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	var n int64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int64(s[i]-'0')
		i++
	}
	if i == start {
		return 0, false
	}

	if neg {
		n = -n
	}
	return n, true
}
