package model

import "strings"

// TitleCase upper-cases the first letter of each space-separated word and
// lower-cases the rest, matching how risk labels are keyed in the metric
// store ("low" and "LOW" both map to "Low").
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
