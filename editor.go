package stockmon

import (
	"strings"
)

// The edit model is a plain in-memory row list that a presentation layer
// observes and patches through explicit commands (add row, update field,
// remove row). Saving flattens the rows into an EditMap; nothing ever reads
// state back out of rendered output.

// RowKind tells which fields of an EditRow are meaningful.
type RowKind int

const (
	RowScalar RowKind = iota
	RowEnum
	RowOption
)

// EditRow is one editable row of a section. Fields hold raw user text, the
// way input widgets would; validation happens only when flattening.
type EditRow struct {
	Kind RowKind

	// RowScalar and RowEnum. For static sections Key is a fixed label;
	// for plain sections it is editable.
	Key   string
	Value string

	// RowEnum only.
	Options []EnumOption

	// RowOption only.
	Underlying   string
	Expiry       string
	Strike       string
	ContractType string
	Quantity     string
}

// EditSection is the ordered editable row list of one section.
type EditSection struct {
	Name   string
	Schema SectionSchema
	Rows   []*EditRow
}

// AddRow appends a blank row and returns it. Only plain and option sections
// accept new rows.
func (es *EditSection) AddRow() *EditRow {
	var r *EditRow
	switch es.Schema.Strategy {
	case StrategyPlain:
		r = &EditRow{Kind: RowScalar}
	case StrategyOptions:
		r = &EditRow{Kind: RowOption, ContractType: string(Call)}
	default:
		return nil
	}
	es.Rows = append(es.Rows, r)
	return r
}

// RemoveRow deletes row i from the in-memory list. This does not delete the
// corresponding line in the persisted file: saving is update-and-append only,
// a removed row simply leaves its original line untouched.
func (es *EditSection) RemoveRow(i int) {
	if i < 0 || i >= len(es.Rows) {
		return
	}
	es.Rows = append(es.Rows[:i], es.Rows[i+1:]...)
}

// EditSession projects a parsed document into editable per-section row lists.
// It holds the only mutable editing state; the document itself is never
// touched until Flatten + Reserialize.
type EditSession struct {
	doc      *ConfigDocument
	Sections []*EditSection
}

// NewEditSession builds the editable projection of a document. Reserved
// sections are excluded entirely; sections appear in document order.
func NewEditSession(doc *ConfigDocument) *EditSession {
	s := &EditSession{doc: doc}
	for _, sec := range doc.Sections {
		sc := SchemaOf(sec.Name)
		if sc.Strategy == StrategyReserved {
			continue
		}
		es := &EditSection{Name: sec.Name, Schema: sc}
		for _, rec := range doc.DecodeSection(sec) {
			es.Rows = append(es.Rows, newRow(rec))
		}
		s.Sections = append(s.Sections, es)
	}
	return s
}

func newRow(rec Record) *EditRow {
	switch r := rec.(type) {
	case OptionContractRecord:
		return &EditRow{
			Kind:         RowOption,
			Underlying:   r.Underlying,
			Expiry:       r.rawExpiry,
			Strike:       r.rawStrike,
			ContractType: string(r.Type),
			Quantity:     r.rawValue,
		}
	case EnumRecord:
		return &EditRow{Kind: RowEnum, Key: r.Key, Value: r.Value, Options: r.Options}
	default:
		return &EditRow{Kind: RowScalar, Key: rec.RecordKey(), Value: rec.RecordValue()}
	}
}

// Document returns the parsed document this session projects.
func (s *EditSession) Document() *ConfigDocument { return s.doc }

// Section returns the editable section with the given name.
func (s *EditSession) Section(name string) (*EditSection, bool) {
	for _, es := range s.Sections {
		if es.Name == name {
			return es, true
		}
	}
	return nil, false
}

// Panel returns the editable sections rendered in the given panel, in
// document order.
func (s *EditSession) Panel(p Panel) []*EditSection {
	var out []*EditSection
	for _, es := range s.Sections {
		if es.Schema.Panel == p {
			out = append(out, es)
		}
	}
	return out
}

// Set updates (or appends) the value of the row keyed by key. For plain
// sections a missing key adds a new row; for static sections a missing key is
// still added so that saving appends it to the file.
func (es *EditSection) Set(key, value string) {
	for _, r := range es.Rows {
		if r.Kind != RowOption && r.Key == key {
			r.Value = value
			return
		}
	}
	es.Rows = append(es.Rows, &EditRow{Kind: RowScalar, Key: key, Value: value})
}

// SetOption updates the quantity of the option row matching the contract, or
// appends a new row.
func (es *EditSection) SetOption(underlying, expiry, strike string, typ OptionType, quantity string) {
	underlying = strings.ToUpper(strings.TrimSpace(underlying))
	for _, r := range es.Rows {
		if r.Kind == RowOption && r.Underlying == underlying && r.Expiry == expiry &&
			r.Strike == strike && OptionType(r.ContractType) == typ {
			r.Quantity = quantity
			return
		}
	}
	es.Rows = append(es.Rows, &EditRow{
		Kind:         RowOption,
		Underlying:   underlying,
		Expiry:       expiry,
		Strike:       strike,
		ContractType: string(typ),
		Quantity:     quantity,
	})
}

// Flatten collects every currently visible row into a fresh EditMap, the sole
// input of reserialization. Rows with an empty required field are skipped:
// plain rows need key and value, option rows need underlying, expiry, strike
// and quantity. Static rows always carry their fixed key.
func (s *EditSession) Flatten() *EditMap {
	em := NewEditMap()
	for _, es := range s.Sections {
		for _, r := range es.Rows {
			switch r.Kind {
			case RowOption:
				underlying := strings.ToUpper(strings.TrimSpace(r.Underlying))
				expiry := strings.TrimSpace(r.Expiry)
				strike := strings.TrimSpace(r.Strike)
				quantity := strings.TrimSpace(r.Quantity)
				if underlying == "" || expiry == "" || strike == "" || quantity == "" {
					continue
				}
				key := strings.Join([]string{underlying, expiry, strike, r.ContractType}, "_")
				em.Set(es.Name, key, quantity)
			default:
				key := strings.TrimSpace(r.Key)
				if key == "" {
					continue
				}
				if es.Schema.Strategy == StrategyPlain && strings.TrimSpace(r.Value) == "" {
					continue
				}
				em.Set(es.Name, key, strings.TrimSpace(r.Value))
			}
		}
	}
	return em
}

// EditMap is the flattened snapshot of all user-visible edits, section by
// section, in row order. Order matters: newly added keys are appended to
// their section in this order.
type EditMap struct {
	order    []string
	sections map[string]*sectionEdits
}

type sectionEdits struct {
	keys   []string
	values map[string]string
}

// NewEditMap returns an empty EditMap.
func NewEditMap() *EditMap {
	return &EditMap{sections: make(map[string]*sectionEdits)}
}

// Set records an edit. Setting the same section/key twice keeps the last
// value and the first position.
func (em *EditMap) Set(section, key, value string) {
	se, ok := em.sections[section]
	if !ok {
		se = &sectionEdits{values: make(map[string]string)}
		em.sections[section] = se
		em.order = append(em.order, section)
	}
	if _, ok := se.values[key]; !ok {
		se.keys = append(se.keys, key)
	}
	se.values[key] = value
}

// Get returns the edited value for section/key.
func (em *EditMap) Get(section, key string) (string, bool) {
	se, ok := em.sections[section]
	if !ok {
		return "", false
	}
	v, ok := se.values[key]
	return v, ok
}

// Sections returns the edited section names in insertion order.
func (em *EditMap) Sections() []string { return em.order }

// Keys returns the edited keys of a section in insertion order.
func (em *EditMap) Keys(section string) []string {
	se, ok := em.sections[section]
	if !ok {
		return nil
	}
	return se.keys
}
