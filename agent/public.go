package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/cli117/stockmon"
	"github.com/cli117/stockmon/feed"
	"github.com/cli117/stockmon/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand the state and performance of his portfolio:
			its current value, allocation, returns, market sentiment and the macro backdrop.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you already looked at his portfolio; consult the Analyst first
			to understand what he holds before answering.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns the expert in charge of market news and context,
// grounded on web search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert market researcher,
		very well aware of financial products and institutions and of
		the latest news about companies, funds and markets.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market researcher. You can search and find anything related to
			financial institutions, companies, markets or funds. You leverage Google Search to
			ground your assertions in solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's own dashboard data.
// It reads the published feeds through the given client; masked hides
// monetary amounts from its reports.
func NewAnalyst(fc *feed.Client, masked bool) *Expert {
	lib := analystLibrary(fc, masked)

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has direct access to the user's portfolio dashboard:
		current valuation, allocation, per-period returns, valuation history, the fear & greed
		index and macro-economic indicators. Ask the Analyst anything about what the user holds
		and how it has performed.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's portfolio dashboard.
				You know how to use the Tools to read the published dashboard data:
				  - the portfolio summary with allocation and per-period returns
				  - the daily valuation history
				  - the fear & greed index
				  - macro-economic indicators
				You are part of a team of experts; yours is everything the dashboard shows.
				Pardon their approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a Function from a declaration and a closure.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// report wraps a markdown-producing closure into a FunctionResponse.
func report(id, name string, f func() (string, error)) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
	out, err := f()
	if err != nil {
		fresp.Response["error"] = err.Error()
		return fresp
	}
	fresp.Response["output"] = out
	return fresp
}

// intArg reads an optional numeric argument, defaulting when absent.
func intArg(args map[string]any, key string, def int) int {
	v, ok := args[key]
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return int(f)
}

func analystLibrary(fc *feed.Client, masked bool) []Function {
	summary := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "PortfolioSummary",
			Description: `PortfolioSummary returns the current state of the user's portfolio:
			total value, allocation by asset and returns per period, as a markdown report.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the portfolio's current value, allocation and returns.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return report(id, "PortfolioSummary", func() (string, error) {
				s, err := BuildSummary(fc, masked)
				if err != nil {
					return "", err
				}
				return renderer.SummaryMarkdown(s), nil
			})
		},
	}

	history := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "ValuationHistory",
			Description: `ValuationHistory returns the daily portfolio valuation, newest first.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"days": {
						Type:        genai.TypeNumber,
						Description: "How many most recent days to include. 30 by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of daily valuations per asset.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return report(id, "ValuationHistory", func() (string, error) {
				h, err := fc.FetchHistory()
				if err != nil {
					return "", err
				}
				return renderer.HistoryMarkdown(h, intArg(args, "days", 30), masked), nil
			})
		},
	}

	feargreed := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "FearGreed",
			Description: `FearGreed returns the CNN fear & greed index, its components and recent history.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"days": {
						Type:        genai.TypeNumber,
						Description: "How many most recent days of history to include. 7 by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the fear & greed index.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return report(id, "FearGreed", func() (string, error) {
				fg, err := fc.FetchFearGreed()
				if err != nil {
					return "", err
				}
				return renderer.FearGreedMarkdown(fg, intArg(args, "days", 7)), nil
			})
		},
	}

	indicators := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "EconomicIndicators",
			Description: `EconomicIndicators returns the latest macro-economic readings: CPI, PCE, unemployment, consumer sentiment and the Fed balance sheet.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the latest macro-economic readings.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return report(id, "EconomicIndicators", func() (string, error) {
				ind, err := fc.FetchIndicators()
				if err != nil {
					return "", err
				}
				return renderer.IndicatorsMarkdown(ind), nil
			})
		},
	}

	return []Function{summary, history, feargreed, indicators}
}

// BuildSummary assembles the front page report from the published feeds.
// Each optional panel degrades independently: a broken returns, allocation
// or sentiment feed drops only its own section. The valuation history is
// required, there is no summary without a total.
func BuildSummary(fc *feed.Client, masked bool) (*renderer.Summary, error) {
	history, err := fc.FetchHistory()
	if err != nil {
		return nil, err
	}
	latest, ok := history.Latest()
	if !ok {
		return nil, fmt.Errorf("valuation history is empty")
	}

	s := &renderer.Summary{
		Date:       latest.Date,
		TotalValue: stockmon.M(latest.TotalValue, "USD"),
		Masked:     masked,
	}
	if returns, err := fc.FetchReturns(); err == nil {
		s.Returns = returns
	} else {
		log.Printf("summary: returns feed unavailable: %v", err)
	}
	if assets, err := fc.FetchAssetReturns(); err == nil {
		s.Weights = assets.Weights()
	} else {
		log.Printf("summary: asset returns feed unavailable: %v", err)
	}
	if fg, err := fc.FetchFearGreed(); err == nil {
		s.Sentiment = &fg.Summary
	} else {
		log.Printf("summary: fear & greed feed unavailable: %v", err)
	}
	return s, nil
}
