package content

// FilterByGraph returns the records whose graph membership includes graph,
// preserving input order. Records with no memberships never match; no
// matches yields an empty slice.
func FilterByGraph(records []Record, graph string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !memberOf(r, graph) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func memberOf(r Record, graph string) bool {
	for _, name := range r.GraphNames {
		if name == graph {
			return true
		}
	}
	return false
}
