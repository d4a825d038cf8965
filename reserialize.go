package stockmon

import (
	"strings"
)

// Reserialize merges an EditMap back onto the original line sequence and
// returns the new file content. The merge is update-and-append only:
//
//  1. Header and other lines pass through verbatim.
//  2. A key/value line whose key is edited in its section is rewritten as
//     `key = value`, the original trailing comment reattached with a single
//     leading space. A key absent from the EditMap passes through unchanged;
//     there is no deletion path.
//  3. Edited keys not found in their section are appended at the end of the
//     section, before its trailing run of blank lines.
//
// A section or line not mentioned by any edited key is reproduced byte for
// byte. With duplicate keys inside a section, every matching line is
// rewritten to the same edited value.
func (doc *ConfigDocument) Reserialize(edits *EditMap) string {
	type editedKey struct{ section, key string }
	processed := make(map[editedKey]bool)

	out := make([]string, 0, len(doc.lines))
	section := ""
	for _, l := range doc.lines {
		switch l.Kind {
		case LineHeader:
			section = l.Name
			out = append(out, l.Raw)
		case LineKeyValue:
			v, ok := edits.Get(section, l.Key)
			if !ok {
				out = append(out, l.Raw)
				continue
			}
			line := l.Key + " = " + v
			if l.HasComment {
				line += " #" + l.Comment
			}
			out = append(out, line)
			processed[editedKey{section, l.Key}] = true
		default:
			out = append(out, l.Raw)
		}
	}

	// Append stage: new keys go to the end of their section, before the
	// trailing blank run (or before the next header). Edits for a section
	// that does not exist in the document are dropped.
	for _, name := range edits.Sections() {
		var adds []string
		for _, key := range edits.Keys(name) {
			if processed[editedKey{name, key}] {
				continue
			}
			v, _ := edits.Get(name, key)
			adds = append(adds, key+" = "+v)
		}
		if len(adds) == 0 {
			continue
		}

		header, next := -1, -1
		for i, line := range out {
			t := strings.TrimSpace(line)
			if header < 0 {
				if t == "["+name+"]" {
					header = i
				}
			} else if strings.HasPrefix(t, "[") {
				next = i
				break
			}
		}
		if header < 0 {
			continue
		}
		insert := len(out)
		if next >= 0 {
			insert = next
		}
		for insert > header+1 && strings.TrimSpace(out[insert-1]) == "" {
			insert--
		}
		out = append(out[:insert], append(adds, out[insert:]...)...)
	}

	return strings.Join(out, "\n")
}
