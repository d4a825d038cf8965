package feed

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// History is the portfolio valuation history CSV: a header row with `date`
// and `total_value` columns plus one column per asset, newest row first.
type History struct {
	// Assets are the asset column names, in file order.
	Assets []string
	Rows   []HistoryRow
}

// HistoryRow is one valuation snapshot.
type HistoryRow struct {
	Date       string
	TotalValue float64
	// Values maps an asset column to its valuation for the day.
	Values map[string]float64
}

// FetchHistory retrieves and parses the valuation history.
func (c *Client) FetchHistory() (*History, error) {
	body, err := c.get(HistoryPath)
	if err != nil {
		return nil, err
	}
	h, err := ParseHistory(string(body))
	if err != nil {
		return nil, fmt.Errorf("cannot parse feed %q: %w", HistoryPath, err)
	}
	return h, nil
}

// ParseHistory parses the history CSV. A missing `date` or `total_value`
// column is a parse failure; a malformed cell only zeroes its own value.
func ParseHistory(text string) (*History, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimSpace(text)))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("empty history")
	}

	header := records[0]
	dateCol, totalCol := -1, -1
	var assets []string
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "date":
			dateCol = i
		case "total_value":
			totalCol = i
		default:
			assets = append(assets, strings.TrimSpace(name))
		}
	}
	if dateCol < 0 {
		return nil, fmt.Errorf("missing %q column", "date")
	}
	if totalCol < 0 {
		return nil, fmt.Errorf("missing %q column", "total_value")
	}

	h := &History{Assets: assets}
	for _, rec := range records[1:] {
		if len(rec) != len(header) {
			continue
		}
		row := HistoryRow{Date: strings.TrimSpace(rec[dateCol]), Values: make(map[string]float64)}
		row.TotalValue, _ = strconv.ParseFloat(strings.TrimSpace(rec[totalCol]), 64)
		for i, name := range header {
			if i == dateCol || i == totalCol {
				continue
			}
			v := assetCellValue(rec[i])
			if v < 0 {
				v = 0
			}
			row.Values[strings.TrimSpace(name)] = v
		}
		h.Rows = append(h.Rows, row)
	}
	return h, nil
}

// Latest returns the most recent snapshot. Rows are stored in file order,
// newest first.
func (h *History) Latest() (HistoryRow, bool) {
	if len(h.Rows) == 0 {
		return HistoryRow{}, false
	}
	return h.Rows[0], true
}

// assetCellValue reads an asset cell. Cells may carry a decorated
// `(value|extra)` form; the value sits between the parenthesis and the bar.
func assetCellValue(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if strings.HasPrefix(cell, "(") {
		inner := cell[1:]
		if i := strings.IndexAny(inner, "|)"); i >= 0 {
			inner = inner[:i]
		}
		cell = strings.TrimSpace(inner)
	}
	v, _ := strconv.ParseFloat(cell, 64)
	return v
}
