package content

import "github.com/agnivade/levenshtein"

// maxSuggestDistance bounds how far a typo may be from a real graph name
// before no suggestion is offered.
const maxSuggestDistance = 3

// NearestGraph returns the known graph name closest to name, for "did you
// mean" hints when a requested graph does not exist. The second return is
// false when no graph is within editing distance.
func NearestGraph(name string, graphs []Graph) (string, bool) {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, g := range graphs {
		d := levenshtein.ComputeDistance(name, g.Name)
		if d < bestDist {
			best = g.Name
			bestDist = d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
