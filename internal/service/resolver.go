package service

import (
	"strings"

	"propertyagent/internal/model"
	"propertyagent/internal/utils"
)

// Resolver maps free-text school names to exactly one catalog record
// using trigram similarity. It works on an immutable snapshot of the
// schools catalog taken at construction, so resolution is a pure
// function of the snapshot and the query text.
type Resolver struct {
	schools   []model.School
	threshold float64
}

// NewResolver creates a resolver over the given catalog snapshot.
// Candidates scoring below threshold are discarded entirely.
func NewResolver(schools []model.School, threshold float64) *Resolver {
	snapshot := make([]model.School, len(schools))
	copy(snapshot, schools)
	return &Resolver{
		schools:   snapshot,
		threshold: threshold,
	}
}

// Resolve returns the single best-matching school for query, or false
// when no candidate clears the similarity threshold. Ties on the top
// score are broken by the lexicographically first catalog name, so
// repeated calls always return the same record.
func (r *Resolver) Resolve(query string) (*model.School, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, false
	}

	var best *model.School
	bestScore := 0.0

	for i := range r.schools {
		candidate := &r.schools[i]
		score := utils.TrigramSimilarity(query, candidate.Name)
		if score < r.threshold {
			continue
		}
		switch {
		case best == nil || score > bestScore:
			best = candidate
			bestScore = score
		case score == bestScore && candidate.Name < best.Name:
			best = candidate
		}
	}

	if best == nil {
		return nil, false
	}

	school := *best
	return &school, true
}
