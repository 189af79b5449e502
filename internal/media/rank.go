package media

import "sort"

// QualityScore blends three popularity/engagement signals into one ranking
// metric. The weights and integer truncation are load-bearing: downstream
// ordering depends on them exactly.
func QualityScore(downloads, numReviews int, avgRating float64) int {
	return int(float64(downloads)*0.5 + float64(numReviews)*100 + avgRating*1000)
}

// SortByQuality re-ranks items by quality score, descending. The sort is
// stable: ties keep the provider-returned order.
func SortByQuality(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].QualityScore > items[j].QualityScore
	})
}
