package models

import "math"

// LogisticRegression is trained with full-batch gradient descent on the
// weighted log loss. Inputs are standardised with statistics from Fit.
type LogisticRegression struct {
    Lr     float64
    Epochs int
    L2     float64
    W      []float64
    B      float64
    Mean   []float64
    Std    []float64
}

func NewLogisticRegression() *LogisticRegression {
    return &LogisticRegression{Lr: 0.5, Epochs: 300, L2: 1e-4}
}

func (m *LogisticRegression) Name() string { return "LogisticRegression" }

func (m *LogisticRegression) Fit(X [][]float64, y []int, sampleWeight []float64) error {
    w, err := resolveWeights(X, y, sampleWeight)
    if err != nil { return err }
    n := len(X)
    d := len(X[0])
    m.Mean = make([]float64, d)
    m.Std = make([]float64, d)
    for _, row := range X {
        for j, v := range row { m.Mean[j] += v }
    }
    for j := range m.Mean { m.Mean[j] /= float64(n) }
    for _, row := range X {
        for j, v := range row { dv := v - m.Mean[j]; m.Std[j] += dv * dv }
    }
    for j := range m.Std {
        m.Std[j] = math.Sqrt(m.Std[j] / float64(n))
        if m.Std[j] == 0 { m.Std[j] = 1 }
    }

    Z := make([][]float64, n)
    for i, row := range X { Z[i] = m.scale(row) }

    m.W = make([]float64, d)
    m.B = 0
    gW := make([]float64, d)
    for ep := 0; ep < m.Epochs; ep++ {
        for j := range gW { gW[j] = m.L2 * m.W[j] }
        gb := 0.0
        for i, z := range Z {
            diff := w[i] * (m.score(z) - float64(y[i])) / float64(n)
            for j, v := range z { gW[j] += diff * v }
            gb += diff
        }
        for j := range m.W { m.W[j] -= m.Lr * gW[j] }
        m.B -= m.Lr * gb
    }
    return nil
}

func (m *LogisticRegression) scale(x []float64) []float64 {
    z := make([]float64, len(x))
    for j, v := range x { z[j] = (v - m.Mean[j]) / m.Std[j] }
    return z
}

func (m *LogisticRegression) score(z []float64) float64 {
    s := m.B
    for j, v := range z { s += m.W[j] * v }
    return sigmoid(s)
}

func (m *LogisticRegression) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    if m.W == nil { for i := range out { out[i] = 0.5 }; return out }
    for i, row := range X { out[i] = m.score(m.scale(row)) }
    return out
}

func (m *LogisticRegression) Predict(X [][]float64) []int { return probaToPred(m.PredictProba(X)) }
