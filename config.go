package stockmon

import (
	"strings"
)

// This file implements the parsing side of the dashboard configuration file.
// The format is a plain ini-like text: `[Section]` headers, `key = value`
// lines, `#` starts a trailing comment. The raw line sequence is the single
// source of truth for formatting: parsing never mutates it, and everything
// that is not a header or a key/value line is carried verbatim so that
// Reserialize can reproduce untouched lines byte for byte.

// Proxy holds credentials for the upstream scripts and is never surfaced in
// the editor.
const ReservedSection = "Proxy"

// LineKind classifies a single raw configuration line.
type LineKind int

const (
	// LineOther is anything that is not a header or a key/value line:
	// blanks, comments, malformed lines, and anything before the first
	// section header. Such lines are passed through verbatim.
	LineOther LineKind = iota
	LineHeader
	LineKeyValue
)

// Line is one raw configuration line together with its classification.
type Line struct {
	Raw  string
	Kind LineKind

	// Name is the section name for a LineHeader.
	Name string

	// Key and Value are the trimmed, comment-stripped sides of a
	// LineKeyValue, split at the first '='.
	Key   string
	Value string

	// Comment is the text after the first '#', '#' excluded. HasComment
	// distinguishes a `#` with nothing behind it from no comment at all.
	Comment    string
	HasComment bool
}

// classifyLine classifies a raw line. A key/value line only exists inside an
// open section; outside of one the same text degrades to LineOther. There is
// no error condition: unparseable lines degrade to LineOther.
func classifyLine(raw string, inSection bool) Line {
	l := Line{Raw: raw, Kind: LineOther}

	code := raw
	if i := strings.Index(raw, "#"); i >= 0 {
		code = raw[:i]
		l.Comment = raw[i+1:]
		l.HasComment = true
	}
	trimmed := strings.TrimSpace(code)

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && len(trimmed) >= 2 {
		l.Kind = LineHeader
		l.Name = trimmed[1 : len(trimmed)-1]
		return l
	}
	// ';' comment lines are tolerated and passed through like any other
	// non key/value line.
	if strings.HasPrefix(trimmed, ";") {
		return l
	}
	if inSection {
		if i := strings.Index(trimmed, "="); i >= 0 {
			key := strings.TrimSpace(trimmed[:i])
			if key == "" {
				return l
			}
			l.Kind = LineKeyValue
			l.Key = key
			l.Value = strings.TrimSpace(trimmed[i+1:])
		}
	}
	return l
}

// Entry is a single key/value pair recorded in a section, with the index of
// the line it was read from.
type Entry struct {
	Key   string
	Value string
	Line  int
}

// Section is a named group of key/value lines delimited by `[Name]` headers.
// Start and End form a half-open range into the document's line sequence,
// header line included.
type Section struct {
	Name    string
	Start   int
	End     int
	Entries []Entry
}

// Value returns the value recorded for key. When the key repeats within the
// section the last occurrence wins; every duplicate line is still preserved
// for reserialization.
func (s *Section) Value(key string) (string, bool) {
	for i := len(s.Entries) - 1; i >= 0; i-- {
		if s.Entries[i].Key == key {
			return s.Entries[i].Value, true
		}
	}
	return "", false
}

// ConfigDocument is the parsed form of a configuration file. It keeps the
// complete classified line sequence plus the ordered list of sections, in
// order of first appearance. Duplicate headers are not merged: each header
// opens its own Section and lookups pick the last one.
type ConfigDocument struct {
	lines    []Line
	Sections []*Section
}

// ParseConfig parses the raw configuration text. It never fails: any line it
// does not understand is kept as-is and ignored by the editor.
func ParseConfig(text string) *ConfigDocument {
	doc := &ConfigDocument{}
	var current *Section

	for i, raw := range strings.Split(text, "\n") {
		l := classifyLine(raw, current != nil)
		doc.lines = append(doc.lines, l)

		switch l.Kind {
		case LineHeader:
			if current != nil {
				current.End = i
			}
			current = &Section{Name: l.Name, Start: i, End: i + 1}
			doc.Sections = append(doc.Sections, current)
		case LineKeyValue:
			current.Entries = append(current.Entries, Entry{Key: l.Key, Value: l.Value, Line: i})
		}
		if current != nil {
			current.End = i + 1
		}
	}
	return doc
}

// Section returns the section with the given name. With duplicate headers the
// last one wins, matching Section.Value semantics.
func (doc *ConfigDocument) Section(name string) (*Section, bool) {
	for i := len(doc.Sections) - 1; i >= 0; i-- {
		if doc.Sections[i].Name == name {
			return doc.Sections[i], true
		}
	}
	return nil, false
}

// Line returns the raw text of line i.
func (doc *ConfigDocument) Line(i int) string { return doc.lines[i].Raw }

// Len returns the number of lines in the document.
func (doc *ConfigDocument) Len() int { return len(doc.lines) }

// String reassembles the document unchanged.
func (doc *ConfigDocument) String() string {
	raws := make([]string, len(doc.lines))
	for i, l := range doc.lines {
		raws[i] = l.Raw
	}
	return strings.Join(raws, "\n")
}
