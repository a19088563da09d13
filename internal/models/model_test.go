package models

import (
    "math/rand"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func separable(n int, seed int64) ([][]float64, []int) {
    rng := rand.New(rand.NewSource(seed))
    X := make([][]float64, n)
    y := make([]int, n)
    for i := range X {
        a, b := rng.Float64()*4-2, rng.Float64()*4-2
        X[i] = []float64{a, b}
        if a+0.5*b > 0 { y[i] = 1 }
    }
    return X, y
}

func accuracy(y, p []int) float64 {
    c := 0
    for i := range y { if y[i] == p[i] { c++ } }
    return float64(c) / float64(len(y))
}

func TestModelsLearnSeparableData(t *testing.T) {
    X, y := separable(600, 1)
    for _, algo := range []string{"dt", "rf", "bagging", "gb", "logreg"} {
        t.Run(algo, func(t *testing.T) {
            p := DefaultParams()
            p.Algo = algo
            p.Estimators = 30
            p.LR = 0.3
            m, err := New(p)
            require.NoError(t, err)
            require.NoError(t, m.Fit(X, y, nil))
            assert.Greater(t, accuracy(y, m.Predict(X)), 0.85, m.Name())
            for _, v := range m.PredictProba(X[:10]) { assert.True(t, v >= 0 && v <= 1) }
        })
    }
}

func TestNewUnknownAlgorithm(t *testing.T) {
    p := DefaultParams()
    p.Algo = "svm"
    _, err := New(p)
    assert.Error(t, err)
}

func TestFitRejectsDegenerateWeights(t *testing.T) {
    X, y := separable(20, 2)
    tests := []struct {
        name string
        w    []float64
    }{
        {"all zero", make([]float64, 20)},
        {"short", make([]float64, 3)},
        {"negative", append([]float64{-1}, make([]float64, 19)...)},
    }
    learners := []Model{NewDecisionTree(), NewRandomForest(), NewGradientBoosting(), NewLogisticRegression()}
    for _, tt := range tests {
        for _, m := range learners {
            t.Run(tt.name+"/"+m.Name(), func(t *testing.T) {
                assert.ErrorIs(t, m.Fit(X, y, tt.w), ErrDegenerateWeights)
            })
        }
    }
}

func TestDecisionTreeHonoursWeights(t *testing.T) {
    // one feature value, conflicting labels: the heavier side wins the leaf
    X := [][]float64{{1}, {1}, {1}, {1}}
    y := []int{1, 0, 0, 0}
    dt := NewDecisionTree()

    require.NoError(t, dt.Fit(X, y, nil))
    assert.Equal(t, []int{0}, dt.Predict([][]float64{{1}}))

    require.NoError(t, dt.Fit(X, y, []float64{10, 1, 1, 1}))
    assert.Equal(t, []int{1}, dt.Predict([][]float64{{1}}))
    assert.InDelta(t, 10.0/13.0, dt.PredictProba([][]float64{{1}})[0], 1e-12)
}

func TestLogisticRegressionHonoursWeights(t *testing.T) {
    X := [][]float64{{0}, {0}, {0}, {0}}
    y := []int{1, 0, 0, 0}
    m := NewLogisticRegression()
    require.NoError(t, m.Fit(X, y, []float64{9, 1, 1, 1}))
    assert.Equal(t, []int{1}, m.Predict([][]float64{{0}}))
}

func TestDecisionTreeDeterministicWithSeed(t *testing.T) {
    X, y := separable(300, 3)
    a, b := NewDecisionTree(), NewDecisionTree()
    require.NoError(t, a.Fit(X, y, nil))
    require.NoError(t, b.Fit(X, y, nil))
    assert.Equal(t, a.PredictProba(X), b.PredictProba(X))
}
