package feed

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// FearGreedSummary is the headline block of the fear & greed feed.
type FearGreedSummary struct {
	Score          float64 `json:"score"`
	Rating         string  `json:"rating"`
	Timestamp      string  `json:"timestamp"`
	PreviousClose  float64 `json:"previous_close"`
	Previous1Week  float64 `json:"previous_1_week"`
	Previous1Month float64 `json:"previous_1_month"`
	Previous1Year  float64 `json:"previous_1_year"`
}

// RatedPoint is one sample of a sentiment time series: a millisecond epoch
// timestamp, a value, and the rating band the value falls in.
type RatedPoint struct {
	X      int64   `json:"x"`
	Y      float64 `json:"y"`
	Rating string  `json:"rating"`
}

// RatedSeries is a sentiment time series with its current rating label.
type RatedSeries struct {
	Rating string       `json:"rating"`
	Data   []RatedPoint `json:"data"`
}

// FearGreed is the full fear & greed index feed.
type FearGreed struct {
	Summary    FearGreedSummary `json:"fear_and_greed"`
	Historical RatedSeries      `json:"fear_and_greed_historical"`
	Strength   RatedSeries      `json:"stock_price_strength"`
	Breadth    RatedSeries      `json:"stock_price_breadth"`
	VIX        RatedSeries      `json:"market_volatility_vix"`
	VIX50      RatedSeries      `json:"market_volatility_vix_50"`
}

// FetchFearGreed retrieves and decodes the fear & greed feed.
func (c *Client) FetchFearGreed() (*FearGreed, error) {
	var fg FearGreed
	if err := c.jwget(FearGreedPath, &fg); err != nil {
		return nil, err
	}
	return &fg, nil
}

// LatestHistoricalScore extracts the most recent historical score without
// decoding the whole feed.
func (c *Client) LatestHistoricalScore() (float64, error) {
	var jobj any
	if err := c.jwget(FearGreedPath, &jobj); err != nil {
		return 0, err
	}
	path := "$.fear_and_greed_historical.data[-1:]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing fear & greed feed: %q %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	point, ok := jval.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("error parsing fear & greed feed: %q is not a point", path)
	}
	score, ok := point["y"].(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing fear & greed feed: score is not a number")
	}
	return score, nil
}

// Last returns the most recent n points of the series, oldest first.
func (s RatedSeries) Last(n int) []RatedPoint {
	if n >= len(s.Data) {
		return s.Data
	}
	return s.Data[len(s.Data)-n:]
}
