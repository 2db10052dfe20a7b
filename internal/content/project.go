package content

import (
	"encoding/json"
	"time"
)

// RowFormatter renders record timestamps for display rows. The zero value
// formats in UTC with a minute-resolution layout.
type RowFormatter struct {
	Layout   string
	Location *time.Location
}

func (f RowFormatter) layout() string {
	if f.Layout == "" {
		return "2006-01-02 15:04"
	}
	return f.Layout
}

func (f RowFormatter) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

// FormatCreatedAt renders an epoch-seconds timestamp in the formatter's
// location. Zero and negative epochs take the same path as any other value;
// the row shows whatever instant they denote.
func (f RowFormatter) FormatCreatedAt(epoch int64) string {
	return time.Unix(epoch, 0).In(f.location()).Format(f.layout())
}

// ProjectRow maps one record to its display row. Children is the literal
// zero: descendant counts never made it into the ingest metadata, so there
// is nothing to compute from.
func ProjectRow(r Record, f RowFormatter) DisplayRow {
	return DisplayRow{
		ID:        r.ID,
		Children:  0,
		Labels:    marshalLabels(r.Labels),
		CreatedAt: f.FormatCreatedAt(r.CreatedAt),
	}
}

// ProjectRows maps records to rows in order.
func ProjectRows(records []Record, f RowFormatter) []DisplayRow {
	out := make([]DisplayRow, 0, len(records))
	for _, r := range records {
		out = append(out, ProjectRow(r, f))
	}
	return out
}

// marshalLabels serializes a label map. Nil and empty maps both render as
// {}, and equal maps render identically since the encoder orders keys.
func marshalLabels(labels map[string]any) string {
	if len(labels) == 0 {
		return "{}"
	}
	b, err := json.Marshal(labels)
	if err != nil {
		return "{}"
	}
	return string(b)
}
