package content

import "encoding/json"

// rawRecord mirrors the wire shape of one content record.
type rawRecord struct {
	ID         string         `json:"id"`
	GraphNames []string       `json:"extraction_graph_names"`
	Labels     map[string]any `json:"labels"`
	CreatedAt  int64          `json:"created_at"`
}

// DecodeRecords decodes a JSON value into records. Anything that does not
// decode as an array of records (an error object, a bare null, truncated
// output) yields an empty, non-nil slice: upstream exports sometimes hand
// back those shapes where the record list should be, and the table treats
// all of them as "no content" rather than failing.
func DecodeRecords(raw []byte) []Record {
	var rows []rawRecord
	if err := json.Unmarshal(raw, &rows); err != nil {
		return []Record{}
	}
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, Record{
			ID:         r.ID,
			GraphNames: r.GraphNames,
			Labels:     r.Labels,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out
}
