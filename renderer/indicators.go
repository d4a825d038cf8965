package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cli117/stockmon/feed"
	md "github.com/nao1215/markdown"
)

func IndicatorsMarkdown(ind *feed.Indicators) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Economic Indicators")

	table := md.TableSet{
		Header: []string{"Indicator", "Latest", "As Of"},
		Rows:   [][]string{},
	}
	for _, key := range feed.IndicatorOrder {
		series, ok := ind.Indicators[key]
		if !ok {
			continue
		}
		latest, ok := series.Latest()
		if !ok {
			continue
		}
		table.Rows = append(table.Rows, []string{
			series.Name,
			indicatorValue(series.Unit, latest.Y),
			time.UnixMilli(latest.X).UTC().Format("2006-01-02"),
		})
	}
	doc.Table(table)

	return doc.String()
}

// indicatorValue formats one reading. Dollar series arrive in millions and
// are scaled to trillions or billions for display.
func indicatorValue(unit string, v float64) string {
	switch unit {
	case "millions USD":
		if v >= 1e6 {
			return fmt.Sprintf("$%.2fT", v/1e6)
		}
		return fmt.Sprintf("$%.0fB", v/1e3)
	case "%":
		return fmt.Sprintf("%.1f%%", v)
	default:
		if unit == "" {
			return fmt.Sprintf("%.1f", v)
		}
		return fmt.Sprintf("%.1f %s", v, unit)
	}
}
