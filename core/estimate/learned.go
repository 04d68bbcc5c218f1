package estimate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// scaler standardizes features to zero mean and unit variance. Columns
// with no variance keep a unit divisor.
type scaler struct {
	mean []float64
	std  []float64
}

func fitScaler(X [][]float64) *scaler {
	cols := len(X[0])
	s := &scaler{mean: make([]float64, cols), std: make([]float64, cols)}
	col := make([]float64, len(X))
	for j := 0; j < cols; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		m, sd := stat.MeanStdDev(col, nil)
		if sd == 0 || math.IsNaN(sd) {
			sd = 1
		}
		s.mean[j] = m
		s.std[j] = sd
	}
	return s
}

func (s *scaler) transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for j := range x {
		out[j] = (x[j] - s.mean[j]) / s.std[j]
	}
	return out
}

// stump is a one-split regression tree over a single feature.
type stump struct {
	feature   int
	threshold float64
	left      float64
	right     float64
}

func (st stump) apply(x []float64) float64 {
	if x[st.feature] <= st.threshold {
		return st.left
	}
	return st.right
}

// boostedModel is a gradient-boosted ensemble of regression stumps fitted
// on squared error.
type boostedModel struct {
	bias   float64
	lr     float64
	stumps []stump
}

func fitBoosted(X [][]float64, y []float64, rounds int, lr float64) *boostedModel {
	m := &boostedModel{bias: stat.Mean(y, nil), lr: lr}
	pred := make([]float64, len(y))
	for i := range pred {
		pred[i] = m.bias
	}
	resid := make([]float64, len(y))
	for r := 0; r < rounds; r++ {
		for i := range resid {
			resid[i] = y[i] - pred[i]
		}
		st, ok := bestStump(X, resid)
		if !ok {
			break
		}
		m.stumps = append(m.stumps, st)
		for i := range pred {
			pred[i] += lr * st.apply(X[i])
		}
	}
	return m
}

// bestStump scans every feature and split point for the largest squared
// error reduction on the residuals. Returns false when no split improves
// on the constant fit, which ends boosting early.
func bestStump(X [][]float64, resid []float64) (stump, bool) {
	n := len(resid)
	if n < 2 {
		return stump{}, false
	}
	total := floats.Sum(resid)
	bestGain := total * total / float64(n)
	var best stump
	found := false

	idx := make([]int, n)
	for j := 0; j < len(X[0]); j++ {
		for i := range idx {
			idx[i] = i
		}
		sort.Slice(idx, func(a, b int) bool { return X[idx[a]][j] < X[idx[b]][j] })

		sumLeft := 0.0
		for k := 0; k < n-1; k++ {
			sumLeft += resid[idx[k]]
			if X[idx[k]][j] == X[idx[k+1]][j] {
				continue
			}
			nL := float64(k + 1)
			nR := float64(n - k - 1)
			sumRight := total - sumLeft
			gain := sumLeft*sumLeft/nL + sumRight*sumRight/nR
			if gain > bestGain+1e-12 {
				bestGain = gain
				found = true
				best = stump{
					feature:   j,
					threshold: (X[idx[k]][j] + X[idx[k+1]][j]) / 2,
					left:      sumLeft / nL,
					right:     sumRight / nR,
				}
			}
		}
	}
	return best, found
}

func (m *boostedModel) predict(x []float64) float64 {
	p := m.bias
	for _, st := range m.stumps {
		p += m.lr * st.apply(x)
	}
	return p
}
