package feed

import (
	"fmt"
	"sort"
)

// PeriodReturn is the portfolio performance over one named period.
type PeriodReturn struct {
	Period string  `json:"period"`
	Return float64 `json:"return"` // fraction, not percent
	Profit float64 `json:"profit"`
	Growth float64 `json:"growth"`
}

// FetchReturns retrieves the per-period portfolio returns.
func (c *Client) FetchReturns() ([]PeriodReturn, error) {
	var returns []PeriodReturn
	if err := c.jwget(ReturnsPath, &returns); err != nil {
		return nil, err
	}
	return returns, nil
}

// AssetReturn is the valuation and period performance of one holding.
type AssetReturn struct {
	TotalValue float64            `json:"total_value"`
	Returns    map[string]float64 `json:"returns"` // period key -> percent
}

// AssetReturns is the per-asset breakdown feed.
type AssetReturns struct {
	PortfolioReturns map[string]AssetReturn `json:"portfolio_returns"`
}

// FetchAssetReturns retrieves the per-asset breakdown.
func (c *Client) FetchAssetReturns() (*AssetReturns, error) {
	var ar AssetReturns
	if err := c.jwget(AssetReturnsPath, &ar); err != nil {
		return nil, err
	}
	if ar.PortfolioReturns == nil {
		return nil, fmt.Errorf("asset returns feed has no %q object", "portfolio_returns")
	}
	return &ar, nil
}

// Weight is one asset's share of the portfolio value.
type Weight struct {
	Symbol string
	Value  float64
	Share  float64 // fraction of total
}

// Weights returns the asset allocation, largest first. Assets below one
// per-mille of the total are filtered out, matching the allocation display.
func (ar *AssetReturns) Weights() []Weight {
	var total float64
	for _, a := range ar.PortfolioReturns {
		total += a.TotalValue
	}
	if total == 0 {
		return nil
	}

	var weights []Weight
	for symbol, a := range ar.PortfolioReturns {
		share := a.TotalValue / total
		if share < 0.001 {
			continue
		}
		weights = append(weights, Weight{Symbol: symbol, Value: a.TotalValue, Share: share})
	}
	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Value != weights[j].Value {
			return weights[i].Value > weights[j].Value
		}
		return weights[i].Symbol < weights[j].Symbol
	})
	return weights
}
