package models

import (
    "math"
    "math/rand"
)

// RandomForest averages weighted trees grown on bootstrap samples.
// MaxFeatures < 0 considers every feature at each split (plain bagging),
// 0 picks sqrt(n_features).
type RandomForest struct {
    NEstimators        int
    MaxDepth           int
    MinSamples         int
    MaxThresholdsPerFe int
    MaxFeatures        int
    Seed               int64
    Trees              []*DecisionTree
}

func NewRandomForest() *RandomForest {
    return &RandomForest{NEstimators: 30, MaxDepth: 6, MinSamples: 20, MaxThresholdsPerFe: 32, MaxFeatures: 0, Seed: 1, Trees: []*DecisionTree{}}
}

func (rf *RandomForest) Name() string {
    if rf.MaxFeatures < 0 { return "Bagging" }
    return "RandomForest"
}

func (rf *RandomForest) Fit(X [][]float64, y []int, sampleWeight []float64) error {
    w, err := resolveWeights(X, y, sampleWeight)
    if err != nil { return err }
    if rf.NEstimators <= 0 { rf.NEstimators = 30 }
    n := len(X)
    nFeats := len(X[0])
    maxFeats := rf.MaxFeatures
    switch {
    case maxFeats < 0:
        maxFeats = nFeats
    case maxFeats == 0:
        maxFeats = int(math.Max(1, math.Min(float64(nFeats), math.Sqrt(float64(nFeats)))))
    }
    rng := rand.New(rand.NewSource(rf.Seed))
    rf.Trees = make([]*DecisionTree, 0, rf.NEstimators)
    for k := 0; k < rf.NEstimators; k++ {
        Xb := make([][]float64, n)
        yb := make([]int, n)
        wb := make([]float64, n)
        for i := 0; i < n; i++ { j := rng.Intn(n); Xb[i] = X[j]; yb[i] = y[j]; wb[i] = w[j] }
        dt := NewDecisionTree()
        dt.MaxDepth = rf.MaxDepth
        dt.MinSamplesSplit = rf.MinSamples
        dt.MaxThresholdsPerFe = rf.MaxThresholdsPerFe
        dt.MaxFeatures = maxFeats
        dt.Seed = rf.Seed + int64(k) + 1
        if err := dt.Fit(Xb, yb, wb); err != nil { return err }
        rf.Trees = append(rf.Trees, dt)
    }
    return nil
}

func (rf *RandomForest) Predict(X [][]float64) []int { return probaToPred(rf.PredictProba(X)) }

func (rf *RandomForest) PredictProba(X [][]float64) []float64 {
    n := len(X)
    out := make([]float64, n)
    if len(rf.Trees) == 0 { for i := range out { out[i] = 0.5 }; return out }
    for _, dt := range rf.Trees {
        p := dt.PredictProba(X)
        for i := 0; i < n; i++ { out[i] += p[i] }
    }
    m := float64(len(rf.Trees))
    for i := 0; i < n; i++ { out[i] /= m }
    return out
}
