package renderer

import (
	"bytes"
	"fmt"

	"github.com/cli117/stockmon"
	md "github.com/nao1215/markdown"
)

// ConfigMarkdown renders the editable sections of one panel.
func ConfigMarkdown(title string, sections []*stockmon.EditSection) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	for _, es := range sections {
		doc.H2(es.Name)
		if es.Schema.Strategy == stockmon.StrategyOptions {
			doc.Table(optionTable(es))
		} else {
			doc.Table(scalarTable(es))
		}
	}

	return doc.String()
}

func scalarTable(es *stockmon.EditSection) md.TableSet {
	table := md.TableSet{
		Header: []string{"Key", "Value"},
		Rows:   [][]string{},
	}
	for _, r := range es.Rows {
		value := r.Value
		// enum rows display the label of the selected code when known
		if r.Kind == stockmon.RowEnum {
			for _, opt := range r.Options {
				if opt.Code == r.Value {
					value = fmt.Sprintf("%s (%s)", r.Value, opt.Label)
					break
				}
			}
		}
		table.Rows = append(table.Rows, []string{r.Key, value})
	}
	return table
}

func optionTable(es *stockmon.EditSection) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Underlying", "Expiry", "Strike", "Type", "Quantity"},
		Rows:   [][]string{},
	}
	for _, r := range es.Rows {
		table.Rows = append(table.Rows, []string{
			r.Underlying, r.Expiry, r.Strike, r.ContractType, r.Quantity,
		})
	}
	return table
}
