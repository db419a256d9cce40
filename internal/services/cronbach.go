package services

// CronbachAlpha estimates internal consistency for a screening
// instrument. Each row of answers is one submission, each column one
// question, so the matrix is [nSubmissions][nQuestions]. Population
// variance (divide by N) is used throughout, which keeps perfectly
// correlated answers at alpha=1.0. Degenerate inputs score 0.
func CronbachAlpha(answers [][]float64) float64 {
	n := len(answers)
	if n == 0 {
		return 0
	}
	q := len(answers[0])
	if q < 2 {
		return 0
	}

	questionMeans := make([]float64, q)
	submissionTotals := make([]float64, n)
	for i, row := range answers {
		if len(row) != q {
			return 0
		}
		for j, v := range row {
			questionMeans[j] += v
			submissionTotals[i] += v
		}
	}
	for j := range questionMeans {
		questionMeans[j] /= float64(n)
	}

	var questionVarSum float64
	for j := 0; j < q; j++ {
		var sum float64
		for i := 0; i < n; i++ {
			d := answers[i][j] - questionMeans[j]
			sum += d * d
		}
		questionVarSum += sum / float64(n)
	}

	var totalMean float64
	for _, t := range submissionTotals {
		totalMean += t
	}
	totalMean /= float64(n)
	var totalVar float64
	for _, t := range submissionTotals {
		d := t - totalMean
		totalVar += d * d
	}
	totalVar /= float64(n)
	if totalVar == 0 {
		return 0
	}

	qf := float64(q)
	alpha := (qf / (qf - 1.0)) * (1.0 - questionVarSum/totalVar)
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}
