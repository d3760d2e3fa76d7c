package domain

// Mean returns the arithmetic mean of scores, or 0 when scores is empty.
// Callers decide how an empty input is reported; this helper never fails.
func Mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
