package renderer

import (
	"bytes"
	"fmt"

	"github.com/cli117/stockmon/feed"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the valuation history, newest first. A positive
// limit caps the number of rows; masked mode hides every amount.
func HistoryMarkdown(h *feed.History, limit int, masked bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Valuation History")

	header := []string{"Date", "Total"}
	alignment := []md.TableAlignment{md.AlignLeft, md.AlignRight}
	for _, asset := range h.Assets {
		header = append(header, asset)
		alignment = append(alignment, md.AlignRight)
	}
	table := md.TableSet{Alignment: alignment, Header: header, Rows: [][]string{}}

	rows := h.Rows
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	for _, row := range rows {
		cells := []string{row.Date, Amount(row.TotalValue, masked)}
		for _, asset := range h.Assets {
			cells = append(cells, Amount(row.Values[asset], masked))
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("%d of %d snapshots shown.", len(rows), len(h.Rows)))

	return doc.String()
}
