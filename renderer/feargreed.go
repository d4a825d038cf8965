package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cli117/stockmon/feed"
	md "github.com/nao1215/markdown"
)

func FearGreedMarkdown(fg *feed.FearGreed, days int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	s := fg.Summary
	doc.H1("Fear & Greed Index")
	doc.PlainText(fmt.Sprintf("Score: %.0f (%s)", s.Score, s.Rating))

	doc.H2("Previous Readings")
	doc.Table(md.TableSet{
		Header: []string{"Period", "Score"},
		Rows: [][]string{
			{"Previous close", fmt.Sprintf("%.0f", s.PreviousClose)},
			{"1 week ago", fmt.Sprintf("%.0f", s.Previous1Week)},
			{"1 month ago", fmt.Sprintf("%.0f", s.Previous1Month)},
			{"1 year ago", fmt.Sprintf("%.0f", s.Previous1Year)},
		},
	})

	doc.H2("Components")
	components := []struct {
		name   string
		series feed.RatedSeries
	}{
		{"Stock Price Strength", fg.Strength},
		{"Stock Price Breadth", fg.Breadth},
		{"Market Volatility (VIX)", fg.VIX},
		{"Market Volatility (VIX 50d)", fg.VIX50},
	}
	table := md.TableSet{
		Header: []string{"Component", "Value", "Rating"},
		Rows:   [][]string{},
	}
	for _, c := range components {
		value, rating := "-", c.series.Rating
		if n := len(c.series.Data); n > 0 {
			value = fmt.Sprintf("%.2f", c.series.Data[n-1].Y)
		}
		table.Rows = append(table.Rows, []string{c.name, value, rating})
	}
	doc.Table(table)

	if days > 0 && len(fg.Historical.Data) > 0 {
		doc.H2(fmt.Sprintf("Last %d Days", days))
		table := md.TableSet{
			Header: []string{"Date", "Score", "Rating"},
			Rows:   [][]string{},
		}
		for _, p := range fg.Historical.Last(days) {
			table.Rows = append(table.Rows, []string{
				time.UnixMilli(p.X).UTC().Format("2006-01-02"),
				fmt.Sprintf("%.1f", p.Y),
				p.Rating,
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
