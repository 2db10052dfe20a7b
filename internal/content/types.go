// Package content holds the derivation pipeline behind the content table:
// decoding raw record collections, filtering by graph membership, projecting
// records into display rows, applying the browse/search mode, and deriving
// policy picker options. Every function here is pure and recomputation-safe;
// callers may re-run any derivation arbitrarily often on the same inputs.
package content

// Record is one unit of ingested content as supplied by the hosting
// application. Records are read-only snapshots; nothing in this package
// mutates them.
type Record struct {
	ID         string
	GraphNames []string
	Labels     map[string]any
	CreatedAt  int64 // epoch seconds
}

// Policy is one extraction policy belonging to a graph. Only its presence
// and position matter here; the rule itself lives with the ingest pipeline.
type Policy struct {
	ID        string
	Name      string
	Extractor string
}

// Graph is a named extraction pipeline with its ordered policies.
type Graph struct {
	Name     string
	Policies []Policy
}

// DisplayRow is the projection of a Record bound to the table grid. Rows are
// recomputed from records on every relevant input change and carry no
// identity beyond the current pass; ID doubles as the grid row key.
type DisplayRow struct {
	ID        string
	Children  int    // always zero, see ProjectRow
	Labels    string // JSON object
	CreatedAt string
}

// PolicyOption is one selectable entry in the policy picker.
type PolicyOption struct {
	Value string
	Label string
}
