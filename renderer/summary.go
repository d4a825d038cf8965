package renderer

import (
	"bytes"
	"fmt"

	"github.com/cli117/stockmon"
	"github.com/cli117/stockmon/feed"
	md "github.com/nao1215/markdown"
)

// Summary is the data for the dashboard front page report.
type Summary struct {
	Date       string
	TotalValue stockmon.Money
	// Masked hides every monetary amount in the report.
	Masked bool

	Returns []feed.PeriodReturn
	Weights []feed.Weight
	// Sentiment is optional; nil skips the section.
	Sentiment *feed.FearGreedSummary
}

func SummaryMarkdown(s *Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.Date))
	if s.Masked {
		doc.PlainText(fmt.Sprintf("Total Value: %s", Masked))
	} else {
		doc.PlainText(fmt.Sprintf("Total Value: %s", s.TotalValue))
	}

	if len(s.Returns) > 0 {
		doc.H2("Performance")
		table := md.TableSet{
			Header: []string{"Period", "Return", "Profit"},
			Rows:   [][]string{},
		}
		for _, r := range s.Returns {
			table.Rows = append(table.Rows, []string{
				r.Period,
				Percent(r.Return),
				Amount(r.Profit, s.Masked),
			})
		}
		doc.Table(table)
	}

	if len(s.Weights) > 0 {
		doc.H2("Allocation")
		table := md.TableSet{
			Header: []string{"Asset", "Value", "Share"},
			Rows:   [][]string{},
		}
		for _, w := range s.Weights {
			table.Rows = append(table.Rows, []string{
				w.Symbol,
				Amount(w.Value, s.Masked),
				fmt.Sprintf("%.1f%%", w.Share*100),
			})
		}
		doc.Table(table)
	}

	if s.Sentiment != nil {
		doc.H2("Market Sentiment")
		doc.PlainText(fmt.Sprintf("Fear & Greed: %.0f (%s)", s.Sentiment.Score, s.Sentiment.Rating))
	}

	return doc.String()
}
