package stockmon

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Decoding is driven by a declared per-section schema instead of sniffing key
// shapes at each call site. A section unknown to the schema decodes as plain
// scalar settings.

// Strategy selects how keys of a section decode into records.
type Strategy int

const (
	// StrategyScalar decodes every key as a ScalarRecord with a fixed key
	// (label + value input).
	StrategyScalar Strategy = iota
	// StrategyPlain decodes keys as ScalarRecords whose key itself is
	// editable (symbol -> quantity rows).
	StrategyPlain
	// StrategyOptions decodes every key as an OptionContractRecord.
	StrategyOptions
	// StrategyReserved marks a section that is present in the document but
	// never rendered nor editable.
	StrategyReserved
)

// Panel designates which editor panel a section is rendered in.
type Panel int

const (
	PanelSettings Panel = iota
	PanelPositions
	PanelNone
)

// SectionSchema declares how a section decodes and where it renders.
type SectionSchema struct {
	Strategy Strategy
	Panel    Panel
}

// schema maps section names to their declared decoding strategy. Sections not
// listed here default to scalar settings.
var schema = map[string]SectionSchema{
	"Portfolio":        {Strategy: StrategyPlain, Panel: PanelPositions},
	"OptionsPortfolio": {Strategy: StrategyOptions, Panel: PanelPositions},
	"Cash":             {Strategy: StrategyScalar, Panel: PanelPositions},
	ReservedSection:    {Strategy: StrategyReserved, Panel: PanelNone},
}

// SchemaOf returns the declared schema for a section name.
func SchemaOf(name string) SectionSchema {
	if s, ok := schema[name]; ok {
		return s
	}
	return SectionSchema{Strategy: StrategyScalar, Panel: PanelSettings}
}

// DataSourceKey is the one settings key that renders as a constrained choice.
// Its valid options are spelled out in the comment line right above it.
const DataSourceKey = "data_source"

// Record is a decoded key/value pair. Key returns the textual key as it
// appears (or would appear) in the file, Value the textual value.
type Record interface {
	RecordKey() string
	RecordValue() string
}

// ScalarRecord is the default record kind: a plain key and value.
type ScalarRecord struct {
	Key   string
	Value string
}

func (r ScalarRecord) RecordKey() string   { return r.Key }
func (r ScalarRecord) RecordValue() string { return r.Value }

// EnumOption is one selectable choice of an EnumRecord.
type EnumOption struct {
	Code  string
	Label string
}

// EnumRecord is a scalar whose valid values are an enumerated list parsed
// from the comment line immediately preceding it.
type EnumRecord struct {
	Key     string
	Value   string
	Options []EnumOption
}

func (r EnumRecord) RecordKey() string   { return r.Key }
func (r EnumRecord) RecordValue() string { return r.Value }

// OptionType is the contract type of an option position.
type OptionType string

const (
	Call OptionType = "CALL"
	Put  OptionType = "PUT"
)

// OptionContractRecord is a position in an option contract. Its key encodes
// underlying, expiry, strike and contract type as four '_'-joined fields; the
// value is the held quantity.
type OptionContractRecord struct {
	Underlying string
	Expiry     Date
	Strike     decimal.Decimal
	Type       OptionType
	Quantity   decimal.Decimal

	// raw sub-fields as found in the file, used to rebuild the key
	// without normalization surprises.
	rawExpiry string
	rawStrike string
	rawValue  string
}

func (r OptionContractRecord) RecordKey() string {
	return strings.Join([]string{r.Underlying, r.rawExpiry, r.rawStrike, string(r.Type)}, "_")
}

func (r OptionContractRecord) RecordValue() string { return r.rawValue }

// DecodeOptionKey decodes a '_'-joined option contract key and its quantity
// value. It reports false when the key does not split into exactly four
// parts; such keys are not rendered and not editable, but their lines still
// pass through verbatim on save. Unparseable expiry, strike or quantity
// degrade to zero values, the raw text is kept.
func DecodeOptionKey(key, value string) (OptionContractRecord, bool) {
	parts := strings.Split(key, "_")
	if len(parts) != 4 {
		return OptionContractRecord{}, false
	}
	r := OptionContractRecord{
		Underlying: parts[0],
		Type:       OptionType(strings.ToUpper(parts[3])),
		rawExpiry:  parts[1],
		rawStrike:  parts[2],
		rawValue:   value,
	}
	if d, err := ParseDate(parts[1]); err == nil {
		r.Expiry = d
	}
	if s, err := decimal.NewFromString(parts[2]); err == nil {
		r.Strike = s
	}
	if q, err := decimal.NewFromString(value); err == nil {
		r.Quantity = q
	}
	return r, true
}

// enumOptionStart locates the `<digits>:` introducers of an enum comment.
var enumOptionStart = regexp.MustCompile(`\d+\s*:`)

// DecodeEnumOptions extracts the `<code>: <label>` choices from a comment
// line such as `# 1: Yahoo Finance 2: Alpha Vantage`. Each option runs from
// its digit-colon introducer up to the next one. A line with no such pattern
// yields nil.
func DecodeEnumOptions(comment string) []EnumOption {
	locs := enumOptionStart.FindAllStringIndex(comment, -1)
	if len(locs) == 0 {
		return nil
	}
	opts := make([]EnumOption, 0, len(locs))
	for i, loc := range locs {
		end := len(comment)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		chunk := comment[loc[0]:end]
		colon := strings.Index(chunk, ":")
		opts = append(opts, EnumOption{
			Code:  strings.TrimSpace(chunk[:colon]),
			Label: strings.TrimSpace(chunk[colon+1:]),
		})
	}
	return opts
}

// DecodeSection decodes the entries of a section into records, following the
// declared schema. Decoding is total: it never fails, records that cannot be
// decoded in their declared kind either degrade (enum to scalar) or are
// dropped (malformed option keys).
func (doc *ConfigDocument) DecodeSection(s *Section) []Record {
	sc := SchemaOf(s.Name)
	if sc.Strategy == StrategyReserved {
		return nil
	}

	var records []Record
	for _, e := range s.Entries {
		switch sc.Strategy {
		case StrategyOptions:
			if r, ok := DecodeOptionKey(e.Key, e.Value); ok {
				records = append(records, r)
			}
		default:
			if e.Key == DataSourceKey {
				if opts := doc.precedingEnumOptions(e.Line); opts != nil {
					records = append(records, EnumRecord{Key: e.Key, Value: e.Value, Options: opts})
					continue
				}
				// no usable comment above: degrade to free text
			}
			records = append(records, ScalarRecord{Key: e.Key, Value: e.Value})
		}
	}
	return records
}

// precedingEnumOptions scans the single line immediately above a key/value
// line for enum choices.
func (doc *ConfigDocument) precedingEnumOptions(line int) []EnumOption {
	if line == 0 {
		return nil
	}
	return DecodeEnumOptions(strings.TrimSpace(doc.lines[line-1].Raw))
}
