package search

import (
	"strconv"
	"strings"
)

// Query represents the structured parameters of a story search.
// It decouples the raw user input from the index engine requirements.
type Query struct {
	RawInput string // The original query string from the user
	Terms    string // The actual text to search in the index
	EpicID   string // Restrict to one epic's board
	Status   string // Restrict to one board column
	Limit    int    // Pagination: number of results
}

// Parse extracts command-line style arguments from a raw query.
// Example: login flow --epic 7f2c --status backlog --limit 5
func Parse(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    10, // Default limit
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "epic":
				query.EpicID = val
			case "status":
				query.Status = val
			case "limit":
				if n, err := strconv.Atoi(val); err == nil && n > 0 {
					query.Limit = n
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}

		textTerms = append(textTerms, part)
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
