package renderer

import (
	"regexp"
	"strings"
	"testing"

	"github.com/cli117/stockmon"
	"github.com/cli117/stockmon/feed"
)

// wantRow checks for a table row, tolerating the column padding of the
// markdown table writer.
func wantRow(t *testing.T, got string, cells ...string) {
	t.Helper()
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = regexp.QuoteMeta(c)
	}
	pattern := `\|\s*` + strings.Join(parts, `\s*\|\s*`) + `\s*\|`
	if !regexp.MustCompile(pattern).MatchString(got) {
		t.Errorf("missing row %v in:\n%s", cells, got)
	}
}

func sampleSummary(masked bool) *Summary {
	return &Summary{
		Date:       "2026-08-28",
		TotalValue: stockmon.M(100000.50, "USD"),
		Masked:     masked,
		Returns: []feed.PeriodReturn{
			{Period: "1W", Return: 0.012, Profit: 1523.10},
			{Period: "YTD", Return: -0.034, Profit: -4210.55},
		},
		Weights: []feed.Weight{
			{Symbol: "AAPL", Value: 60000.25, Share: 0.6},
			{Symbol: "CASH", Value: 39990.25, Share: 0.4},
		},
		Sentiment: &feed.FearGreedSummary{Score: 62.4, Rating: "greed"},
	}
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown(sampleSummary(false))

	for _, want := range []string{
		"# Portfolio Summary on 2026-08-28",
		"$100,000.50",
		"Fear & Greed: 62 (greed)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary misses %q:\n%s", want, got)
		}
	}
	wantRow(t, got, "1W", "+1.20%", "$1523.10")
	wantRow(t, got, "YTD", "-3.40%", "$-4210.55")
	wantRow(t, got, "AAPL", "$60000.25", "60.0%")
}

func TestSummaryMarkdownMasked(t *testing.T) {
	got := SummaryMarkdown(sampleSummary(true))

	if strings.Contains(got, "100,000") || strings.Contains(got, "60000") {
		t.Errorf("masked summary leaks amounts:\n%s", got)
	}
	if !strings.Contains(got, Masked) {
		t.Errorf("masked summary misses %q:\n%s", Masked, got)
	}
	// returns stay visible, only amounts are hidden
	if !strings.Contains(got, "+1.20%") {
		t.Errorf("masked summary misses returns:\n%s", got)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	h := &feed.History{
		Assets: []string{"AAPL", "MSFT"},
		Rows: []feed.HistoryRow{
			{Date: "2026-08-28", TotalValue: 100000.50, Values: map[string]float64{"AAPL": 60000.25, "MSFT": 39990.25}},
			{Date: "2026-08-27", TotalValue: 99000, Values: map[string]float64{"AAPL": 59500, "MSFT": 39500}},
			{Date: "2026-08-26", TotalValue: 98000, Values: map[string]float64{"AAPL": 59000, "MSFT": 39000}},
		},
	}

	got := HistoryMarkdown(h, 2, false)
	if !strings.Contains(got, "2026-08-28") || strings.Contains(got, "2026-08-26") {
		t.Errorf("limit not honored:\n%s", got)
	}
	wantRow(t, got, "2026-08-28", "$100000.50", "$60000.25", "$39990.25")
	if !strings.Contains(got, "2 of 3 snapshots shown.") {
		t.Errorf("footer missing:\n%s", got)
	}

	masked := HistoryMarkdown(h, 0, true)
	if strings.Contains(masked, "60000.25") || !strings.Contains(masked, Masked) {
		t.Errorf("masked history leaks amounts:\n%s", masked)
	}
}

func TestFearGreedMarkdown(t *testing.T) {
	fg := &feed.FearGreed{
		Summary: feed.FearGreedSummary{Score: 62.4, Rating: "greed", PreviousClose: 60.1},
		Historical: feed.RatedSeries{Rating: "greed", Data: []feed.RatedPoint{
			{X: 1756252800000, Y: 60.1, Rating: "greed"},
			{X: 1756339200000, Y: 62.4, Rating: "greed"},
		}},
		VIX: feed.RatedSeries{Rating: "neutral", Data: []feed.RatedPoint{{X: 1756339200000, Y: 15.2}}},
	}

	got := FearGreedMarkdown(fg, 2)
	if !strings.Contains(got, "Score: 62 (greed)") {
		t.Errorf("headline missing:\n%s", got)
	}
	if !strings.Contains(got, "## Last 2 Days") {
		t.Errorf("history section missing:\n%s", got)
	}
	wantRow(t, got, "Previous close", "60")
	wantRow(t, got, "Market Volatility (VIX)", "15.20", "neutral")
	wantRow(t, got, "2025-08-28", "62.4", "greed")
}

func TestIndicatorValue(t *testing.T) {
	tests := []struct {
		unit string
		v    float64
		want string
	}{
		{"millions USD", 7100000, "$7.10T"},
		{"millions USD", 950000, "$950B"},
		{"%", 3.2, "3.2%"},
		{"index", 61.5, "61.5 index"},
		{"", 61.5, "61.5"},
	}
	for _, tc := range tests {
		if got := indicatorValue(tc.unit, tc.v); got != tc.want {
			t.Errorf("indicatorValue(%q, %v) = %q, want %q", tc.unit, tc.v, got, tc.want)
		}
	}
}

func TestIndicatorsMarkdown(t *testing.T) {
	ind := &feed.Indicators{Indicators: map[string]feed.Indicator{
		"CoreCPI":         {Name: "Core CPI (YoY)", Unit: "%", Data: []feed.TimePoint{{X: 1726358400000, Y: 3.1}}},
		"FedBalanceSheet": {Name: "Fed Balance Sheet", Unit: "millions USD", Data: []feed.TimePoint{{X: 1726358400000, Y: 7100000}}},
	}}

	got := IndicatorsMarkdown(ind)
	wantRow(t, got, "Fed Balance Sheet", "$7.10T", "2024-09-15")
	wantRow(t, got, "Core CPI (YoY)", "3.1%", "2024-09-15")
	// the balance sheet is ordered first
	if strings.Index(got, "Fed Balance Sheet") > strings.Index(got, "Core CPI") {
		t.Errorf("order not honored:\n%s", got)
	}
}

func TestConfigMarkdown(t *testing.T) {
	doc := stockmon.ParseConfig(strings.Join([]string{
		"[Portfolio]",
		"AAPL = 10",
		"[OptionsPortfolio]",
		"AAPL_2025-06-20_150_CALL = 10",
		"[Settings]",
		"# 1: Conservative 2: Aggressive",
		"data_source = 1",
		"",
	}, "\n"))
	session := stockmon.NewEditSession(doc)

	positions := ConfigMarkdown("Positions", session.Panel(stockmon.PanelPositions))
	for _, want := range []string{"# Positions", "## Portfolio", "## OptionsPortfolio"} {
		if !strings.Contains(positions, want) {
			t.Errorf("positions panel misses %q:\n%s", want, positions)
		}
	}
	wantRow(t, positions, "AAPL", "10")
	wantRow(t, positions, "AAPL", "2025-06-20", "150", "CALL", "10")

	settings := ConfigMarkdown("Settings", session.Panel(stockmon.PanelSettings))
	if !strings.Contains(settings, "1 (Conservative)") {
		t.Errorf("enum label missing:\n%s", settings)
	}
}
