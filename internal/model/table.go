package model

import "strings"

// Row is one tabular record: a mapping of canonical column key to scalar
// value. Rows carry no identity beyond their content.
type Row map[string]string

// Table is a set of tabular records with companion column metadata. Keys
// and Headers are always the same length and positionally aligned: Keys
// holds canonical column keys, Headers the original human labels.
type Table struct {
	Name    string   `json:"name"`
	Module  string   `json:"module"`
	Keys    []string `json:"keys"`
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

// signatureSep joins cell values when computing content signatures. A unit
// separator cannot occur in spreadsheet-derived cell text.
const signatureSep = "\x1f"

// Signature derives the row's content signature under the table's column
// order: every value stringified and joined. Two rows with identical
// signatures are the same logical record regardless of source.
func (t *Table) Signature(row Row) string {
	parts := make([]string, len(t.Keys))
	for i, k := range t.Keys {
		parts[i] = row[k]
	}
	return strings.Join(parts, signatureSep)
}

// HeaderFor returns the original display label for a column key, falling
// back to the key itself when no header is available.
func (t *Table) HeaderFor(key string) string {
	for i, k := range t.Keys {
		if k == key && i < len(t.Headers) && t.Headers[i] != "" {
			return t.Headers[i]
		}
	}
	return key
}
