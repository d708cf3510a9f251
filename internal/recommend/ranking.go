package recommend

import "sort"

// RankRecommendations sorts recommendations by priority tier rank
// (critical, high, medium, low). The sort is stable: recommendations of
// equal priority keep their generation order.
func RankRecommendations(recs []Recommendation) []Recommendation {
	sorted := make([]Recommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Rank(sorted[i].Priority) < Rank(sorted[j].Priority)
	})
	return sorted
}
