package content

import "testing"

func TestDecodeRecordsArray(t *testing.T) {
	raw := []byte(`[
		{"id":"a1","extraction_graph_names":["g1"],"labels":{"x":1},"created_at":1700000000},
		{"id":"b2","extraction_graph_names":["g2"],"labels":{},"created_at":0}
	]`)
	got := DecodeRecords(raw)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID != "a1" || got[1].ID != "b2" {
		t.Fatalf("ids = %q, %q; want a1, b2", got[0].ID, got[1].ID)
	}
	if len(got[0].GraphNames) != 1 || got[0].GraphNames[0] != "g1" {
		t.Errorf("graph names = %v, want [g1]", got[0].GraphNames)
	}
	if got[0].CreatedAt != 1700000000 {
		t.Errorf("created_at = %d, want 1700000000", got[0].CreatedAt)
	}
	if v, ok := got[0].Labels["x"]; !ok || v != float64(1) {
		t.Errorf("labels = %v, want x=1", got[0].Labels)
	}
}

func TestDecodeRecordsNonArray(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "object", raw: `{"error":"boom"}`},
		{name: "string", raw: `"oops"`},
		{name: "number", raw: `42`},
		{name: "truncated", raw: `[{"id":"a1"`},
		{name: "empty input", raw: ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeRecords([]byte(tt.raw))
			if got == nil {
				t.Fatal("got nil, want empty slice")
			}
			if len(got) != 0 {
				t.Fatalf("got %d records, want 0", len(got))
			}
		})
	}
}

func TestDecodeRecordsNull(t *testing.T) {
	got := DecodeRecords([]byte(`null`))
	if got == nil || len(got) != 0 {
		t.Fatalf("null input: got %v, want empty slice", got)
	}
}

func TestDecodeRecordsMissingFields(t *testing.T) {
	got := DecodeRecords([]byte(`[{"id":"bare"}]`))
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	r := got[0]
	if r.ID != "bare" || r.GraphNames != nil || r.Labels != nil || r.CreatedAt != 0 {
		t.Fatalf("unexpected defaults: %+v", r)
	}
}
