package service

import "strings"

// ResolveFundName maps a free-text fund name onto the closest known fund
// name using keyword overlap.
//
// Resolution order:
//  1. An exact (case-sensitive) match wins immediately.
//  2. Otherwise the requested name is lowercased, the word "fund" dropped,
//     and split into keywords; the known name containing the most keywords
//     as substrings wins. Ties keep the first known name encountered.
//  3. When nothing scores above zero the first known name is a forced
//     fallback; callers surface this as a "matched to" note.
//  4. An empty known set returns the requested name unchanged.
func ResolveFundName(requested string, known []string) string {
	for _, name := range known {
		if name == requested {
			return requested
		}
	}

	if len(known) == 0 {
		return requested
	}

	cleaned := strings.ReplaceAll(strings.ToLower(requested), "fund", "")
	keywords := strings.Fields(cleaned)

	matched := ""
	bestScore := 0
	for _, name := range known {
		lower := strings.ToLower(name)
		score := 0
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			matched = name
		}
	}

	if matched == "" {
		// Forced approximate match against an unrecognisable request.
		return known[0]
	}
	return matched
}
