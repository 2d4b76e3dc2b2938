package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name  string
		input string
		want  Query
	}{
		{
			"plain terms",
			"login flow",
			Query{RawInput: "login flow", Terms: "login flow", Limit: 10},
		},
		{
			"terms with filters",
			"login flow --epic 7f2c --status backlog --limit 5",
			Query{RawInput: "login flow --epic 7f2c --status backlog --limit 5",
				Terms: "login flow", EpicID: "7f2c", Status: "backlog", Limit: 5},
		},
		{
			"filters only",
			"--status done",
			Query{RawInput: "--status done", Status: "done", Limit: 10},
		},
		{
			"invalid limit falls back to default",
			"cart --limit zero",
			Query{RawInput: "cart --limit zero", Terms: "cart", Limit: 10},
		},
		{
			"negative limit falls back to default",
			"cart --limit -3",
			Query{RawInput: "cart --limit -3", Terms: "cart", Limit: 10},
		},
		{
			"trailing flag without value is kept as text",
			"cart --epic",
			Query{RawInput: "cart --epic", Terms: "cart --epic", Limit: 10},
		},
		{
			"empty input",
			"",
			Query{RawInput: "", Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(&tt.want, Parse(tt.input))
		})
	}
}
