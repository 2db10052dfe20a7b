package content

import (
	"fmt"
	"log"
	"strings"
)

// PolicyOptions derives the picker entries for a set of graphs: the Nth
// graph yields option value "policyN" labeled "Policy N" (1-based), one
// option per graph no matter how many policies the graph itself carries.
// Empty input derives an empty sequence.
//
// TODO: key options by policy id instead of graph position once selecting a
// policy drives a real action; positional values cannot survive graphs being
// reordered or removed.
func PolicyOptions(graphs []Graph) []PolicyOption {
	out := make([]PolicyOption, 0, len(graphs))
	for i := range graphs {
		out = append(out, PolicyOption{
			Value: fmt.Sprintf("policy%d", i+1),
			Label: fmt.Sprintf("Policy %d", i+1),
		})
	}
	return out
}

// PolicyOptionsLogged derives options and reports the result to diag when it
// is non-nil. The derivation itself stays pure; writing to the sink is the
// caller's choice, not an ambient side effect.
func PolicyOptionsLogged(graphs []Graph, diag *log.Logger) []PolicyOption {
	opts := PolicyOptions(graphs)
	if diag != nil {
		labels := make([]string, 0, len(opts))
		for _, o := range opts {
			labels = append(labels, o.Label)
		}
		diag.Printf("derived %d policy options from %d graphs: %s",
			len(opts), len(graphs), strings.Join(labels, ", "))
	}
	return opts
}
