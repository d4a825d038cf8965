package feed

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const fearGreedSample = `{
  "fear_and_greed": {
    "score": 62.4, "rating": "greed", "timestamp": "2026-08-28T23:59:00+00:00",
    "previous_close": 60.1, "previous_1_week": 55.0,
    "previous_1_month": 48.3, "previous_1_year": 71.2
  },
  "fear_and_greed_historical": {
    "rating": "greed",
    "data": [
      {"x": 1756166400000, "y": 58.2, "rating": "greed"},
      {"x": 1756252800000, "y": 60.1, "rating": "greed"},
      {"x": 1756339200000, "y": 62.4, "rating": "greed"}
    ]
  },
  "stock_price_strength": {"rating": "extreme greed", "data": [{"x": 1756339200000, "y": 9.8, "rating": "extreme greed"}]},
  "stock_price_breadth": {"rating": "neutral", "data": [{"x": 1756339200000, "y": 0.4, "rating": "neutral"}]},
  "market_volatility_vix": {"rating": "neutral", "data": [{"x": 1756339200000, "y": 15.2, "rating": "neutral"}]},
  "market_volatility_vix_50": {"rating": "neutral", "data": [{"x": 1756339200000, "y": 16.8}]}
}`

const indicatorsSample = `{
  "indicators": {
    "CoreCPI": {"name": "Core CPI (YoY)", "unit": "%", "data": [[1723680000000, 3.2], [1726358400000, 3.1]]},
    "UnemploymentRate": {"name": "Unemployment Rate", "unit": "%", "data": [[1726358400000, 4.2]]},
    "FedBalanceSheet": {"name": "Fed Balance Sheet", "unit": "millions USD", "data": [[1726358400000, 7100000]]}
  }
}`

const returnsSample = `[
  {"period": "1W", "return": 0.012, "profit": 1523.10, "growth": 1250.00},
  {"period": "YTD", "return": -0.034, "profit": -4210.55, "growth": 3000.00}
]`

const assetReturnsSample = `{
  "portfolio_returns": {
    "AAPL": {"total_value": 60000, "returns": {"year_to_date": 12.5}},
    "CASH": {"total_value": 39990, "returns": {}},
    "DUST": {"total_value": 10, "returns": {}}
  }
}`

const historySample = `date,total_value,AAPL,MSFT
2026-08-28,100000.50,(60000.25|+1.2%),39990.25
2026-08-27,99000.00,59500.00,(39500.00|-0.4%)
2026-08-26,98000.00,-100,39000.00`

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mux := http.NewServeMux()
	serve := func(path, body string) {
		mux.HandleFunc("/"+path, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("t") == "" {
				t.Error("missing cache-busting parameter")
			}
			w.Write([]byte(body))
		})
	}
	serve(FearGreedPath, fearGreedSample)
	serve(IndicatorsPath, indicatorsSample)
	serve(ReturnsPath, returnsSample)
	serve(AssetReturnsPath, assetReturnsSample)
	serve(HistoryPath, historySample)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return &Client{BaseURL: srv.URL, http: srv.Client(), now: func() time.Time { return time.UnixMilli(1756339200000) }}
}

func TestFetchFearGreed(t *testing.T) {
	fg, err := newTestClient(t).FetchFearGreed()
	if err != nil {
		t.Fatal(err)
	}
	if fg.Summary.Score != 62.4 || fg.Summary.Rating != "greed" {
		t.Errorf("summary = %+v", fg.Summary)
	}
	if len(fg.Historical.Data) != 3 {
		t.Fatalf("historical has %d points", len(fg.Historical.Data))
	}
	if last := fg.Historical.Last(2); len(last) != 2 || last[1].Y != 62.4 {
		t.Errorf("Last(2) = %+v", last)
	}
	if fg.VIX50.Data[0].Rating != "" {
		t.Errorf("vix50 points carry no rating, got %q", fg.VIX50.Data[0].Rating)
	}
}

func TestLatestHistoricalScore(t *testing.T) {
	score, err := newTestClient(t).LatestHistoricalScore()
	if err != nil {
		t.Fatal(err)
	}
	if score != 62.4 {
		t.Errorf("score = %v, want 62.4", score)
	}
}

func TestFetchIndicators(t *testing.T) {
	ind, err := newTestClient(t).FetchIndicators()
	if err != nil {
		t.Fatal(err)
	}
	cpi, ok := ind.Indicators["CoreCPI"]
	if !ok {
		t.Fatal("CoreCPI missing")
	}
	if cpi.Unit != "%" || len(cpi.Data) != 2 {
		t.Errorf("CoreCPI = %+v", cpi)
	}
	latest, ok := cpi.Latest()
	if !ok || latest.Y != 3.1 || latest.X != 1726358400000 {
		t.Errorf("latest = %+v", latest)
	}
}

func TestFetchReturns(t *testing.T) {
	returns, err := newTestClient(t).FetchReturns()
	if err != nil {
		t.Fatal(err)
	}
	if len(returns) != 2 || returns[0].Period != "1W" || returns[1].Return != -0.034 {
		t.Errorf("returns = %+v", returns)
	}
}

func TestAssetWeights(t *testing.T) {
	ar, err := newTestClient(t).FetchAssetReturns()
	if err != nil {
		t.Fatal(err)
	}
	weights := ar.Weights()
	// DUST is 0.01% of the portfolio and must be filtered out
	if len(weights) != 2 {
		t.Fatalf("weights = %+v", weights)
	}
	if weights[0].Symbol != "AAPL" || weights[1].Symbol != "CASH" {
		t.Errorf("order = %v, %v", weights[0].Symbol, weights[1].Symbol)
	}
	if weights[0].Share < 0.59 || weights[0].Share > 0.61 {
		t.Errorf("AAPL share = %v", weights[0].Share)
	}
}

func TestFetchHistory(t *testing.T) {
	h, err := newTestClient(t).FetchHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Assets) != 2 || h.Assets[0] != "AAPL" {
		t.Errorf("assets = %v", h.Assets)
	}
	latest, ok := h.Latest()
	if !ok || latest.Date != "2026-08-28" || latest.TotalValue != 100000.50 {
		t.Errorf("latest = %+v", latest)
	}
	// decorated cells carry their value between '(' and '|'
	if latest.Values["AAPL"] != 60000.25 {
		t.Errorf("AAPL = %v", latest.Values["AAPL"])
	}
	// negative valuations clamp to zero like the stacked chart did
	if h.Rows[2].Values["AAPL"] != 0 {
		t.Errorf("clamped value = %v", h.Rows[2].Values["AAPL"])
	}
}

func TestParseHistoryMissingColumn(t *testing.T) {
	if _, err := ParseHistory("date,AAPL\n2026-08-28,1"); err == nil || !strings.Contains(err.Error(), "total_value") {
		t.Errorf("err = %v, want missing column failure", err)
	}
	if _, err := ParseHistory("total_value,AAPL\n1,2"); err == nil || !strings.Contains(err.Error(), "date") {
		t.Errorf("err = %v, want missing column failure", err)
	}
}
