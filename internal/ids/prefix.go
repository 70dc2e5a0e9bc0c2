package ids

import "strings"

// NormalizeUnique lowercases IDs and drops empties and duplicates, preserving
// order.
func NormalizeUnique(values []string) []string {
	unique := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, value := range values {
		lower := strings.ToLower(value)
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		unique = append(unique, lower)
	}
	return unique
}

// MatchPrefix finds the ID matching prefix. An exact match wins over prefix
// matches. Returns the match, whether anything matched, and whether the
// prefix was ambiguous.
func MatchPrefix(values []string, prefix string) (match string, found, ambiguous bool) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", false, false
	}

	for _, value := range values {
		if value == prefix {
			return value, true, false
		}
	}

	for _, value := range values {
		if !strings.HasPrefix(value, prefix) {
			continue
		}
		if found {
			return "", true, true
		}
		match = value
		found = true
	}

	return match, found, false
}

// UniquePrefixLengths returns the shortest unique prefix length for each ID.
func UniquePrefixLengths(values []string) map[string]int {
	unique := NormalizeUnique(values)
	lengths := make(map[string]int, len(unique))
	for _, value := range unique {
		lengths[value] = uniquePrefixLength(value, unique)
	}
	return lengths
}

func uniquePrefixLength(value string, values []string) int {
	for length := 1; length <= len(value); length++ {
		prefix := value[:length]
		unique := true
		for _, other := range values {
			if other == value {
				continue
			}
			if strings.HasPrefix(other, prefix) {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}
	return len(value)
}
