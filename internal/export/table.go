package export

import (
	"bytes"

	"github.com/olekukonko/tablewriter"

	"github.com/blackmichael/photo-challenge-bot/internal/domain"
)

// Table renders the export rows as an aligned text table for terminal
// output. Returns "" when there is nothing to render.
func Table(aggs []domain.PostAggregate) string {
	if len(aggs) == 0 {
		return ""
	}

	var buf bytes.Buffer
	tw := tablewriter.NewWriter(&buf)
	tw.SetHeader(header)
	tw.SetAutoWrapText(false)
	for _, row := range Rows(aggs) {
		tw.Append(row)
	}
	tw.Render()
	return buf.String()
}
