package models

import (
    "errors"
    "fmt"
    "math"
)

// Model is a binary classifier. A nil sampleWeight means uniform weights.
type Model interface {
    Fit(X [][]float64, y []int, sampleWeight []float64) error
    Predict(X [][]float64) []int
    PredictProba(X [][]float64) []float64
    Name() string
}

var ErrDegenerateWeights = errors.New("degenerate sample weights")

// resolveWeights validates the inputs of Fit and returns a weight vector
// normalised to sum to len(X).
func resolveWeights(X [][]float64, y []int, w []float64) ([]float64, error) {
    n := len(X)
    if n == 0 { return nil, errors.New("empty training set") }
    if len(y) != n { return nil, fmt.Errorf("X has %d rows, y has %d", n, len(y)) }
    if w == nil {
        out := make([]float64, n)
        for i := range out { out[i] = 1 }
        return out, nil
    }
    if len(w) != n { return nil, fmt.Errorf("%w: %d weights for %d rows", ErrDegenerateWeights, len(w), n) }
    total := 0.0
    for i, v := range w {
        if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
            return nil, fmt.Errorf("%w: weight %d is %v", ErrDegenerateWeights, i, v)
        }
        total += v
    }
    if total <= 0 { return nil, fmt.Errorf("%w: zero total weight", ErrDegenerateWeights) }
    out := make([]float64, n)
    scale := float64(n) / total
    for i, v := range w { out[i] = v * scale }
    return out, nil
}

func probaToPred(ps []float64) []int {
    out := make([]int, len(ps))
    for i := range ps { if ps[i] >= 0.5 { out[i] = 1 } }
    return out
}

func sigmoid(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }
