package feed

import (
	"encoding/json"
	"fmt"
)

// TimePoint is one [timestamp_ms, value] sample of an indicator series.
type TimePoint struct {
	X int64
	Y float64
}

// UnmarshalJSON decodes the two-element array form used by the feed.
func (p *TimePoint) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("invalid time point: %w", err)
	}
	p.X = int64(pair[0])
	p.Y = pair[1]
	return nil
}

// Indicator is a single macro-economic series with display metadata.
type Indicator struct {
	Name string      `json:"name"`
	Unit string      `json:"unit"`
	Data []TimePoint `json:"data"`
}

// Latest returns the most recent sample.
func (ind Indicator) Latest() (TimePoint, bool) {
	if len(ind.Data) == 0 {
		return TimePoint{}, false
	}
	return ind.Data[len(ind.Data)-1], true
}

// Indicators is the macro indicator feed: a fixed set of named series. The
// FedBalanceSheet series is optional upstream.
type Indicators struct {
	Indicators map[string]Indicator `json:"indicators"`
}

// IndicatorOrder is the fixed display order of the feed's series.
var IndicatorOrder = []string{
	"FedBalanceSheet",
	"CoreCPI",
	"CorePCE",
	"UnemploymentRate",
	"ConsumerSentiment",
}

// FetchIndicators retrieves and decodes the macro indicator feed.
func (c *Client) FetchIndicators() (*Indicators, error) {
	var ind Indicators
	if err := c.jwget(IndicatorsPath, &ind); err != nil {
		return nil, err
	}
	if ind.Indicators == nil {
		return nil, fmt.Errorf("indicator feed has no %q object", "indicators")
	}
	return &ind, nil
}
