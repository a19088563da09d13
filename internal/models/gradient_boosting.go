package models

import (
    "math"
    "sort"
)

type gbTree struct {
    Feature   int
    Threshold float64
    LeftVal   float64
    RightVal  float64
}

// GradientBoosting fits weighted decision stumps to logistic-loss residuals.
type GradientBoosting struct {
    NEstimators        int
    LearningRate       float64
    MinSamples         int
    MaxThresholdsPerFe int
    Init               float64
    Trees              []gbTree
}

func NewGradientBoosting() *GradientBoosting {
    return &GradientBoosting{NEstimators: 50, LearningRate: 0.1, MinSamples: 5, MaxThresholdsPerFe: 32}
}

func (gb *GradientBoosting) Name() string { return "GradientBoosting" }

func (gb *GradientBoosting) Fit(X [][]float64, y []int, sampleWeight []float64) error {
    w, err := resolveWeights(X, y, sampleWeight)
    if err != nil { return err }
    n := len(X)
    pos, total := 0.0, 0.0
    for i := 0; i < n; i++ { pos += w[i] * float64(y[i]); total += w[i] }
    base := pos / total
    if base <= 1e-3 { base = 1e-3 }
    if base >= 1-1e-3 { base = 1 - 1e-3 }
    gb.Init = math.Log(base / (1.0 - base))
    gb.Trees = gb.Trees[:0]
    F := make([]float64, n)
    for i := 0; i < n; i++ { F[i] = gb.Init }

    nFeats := len(X[0])
    cands := make([][]float64, nFeats)
    for j := 0; j < nFeats; j++ { cands[j] = gbCandidateThresholds(X, j, gb.MaxThresholdsPerFe) }

    r := make([]float64, n)
    for m := 0; m < gb.NEstimators; m++ {
        for i := 0; i < n; i++ { r[i] = float64(y[i]) - sigmoid(F[i]) }

        best := gbTree{Feature: -1}
        bestSSE := math.MaxFloat64
        for j := 0; j < nFeats; j++ {
            for _, thr := range cands[j] {
                var leftSum, leftW, rightSum, rightW float64
                leftCount, rightCount := 0, 0
                for i := 0; i < n; i++ {
                    if X[i][j] <= thr { leftSum += w[i] * r[i]; leftW += w[i]; leftCount++ } else { rightSum += w[i] * r[i]; rightW += w[i]; rightCount++ }
                }
                if leftCount < gb.MinSamples || rightCount < gb.MinSamples { continue }
                if leftW == 0 || rightW == 0 { continue }
                leftAvg := leftSum / leftW
                rightAvg := rightSum / rightW

                sse := 0.0
                for i := 0; i < n; i++ {
                    d := r[i] - rightAvg
                    if X[i][j] <= thr { d = r[i] - leftAvg }
                    sse += w[i] * d * d
                }
                if sse < bestSSE {
                    bestSSE = sse
                    best = gbTree{Feature: j, Threshold: thr, LeftVal: leftAvg, RightVal: rightAvg}
                }
            }
        }
        if best.Feature == -1 { break }
        gb.Trees = append(gb.Trees, best)
        for i := 0; i < n; i++ { F[i] += gb.LearningRate * best.eval(X[i]) }
    }
    return nil
}

func (t gbTree) eval(x []float64) float64 {
    if x[t.Feature] > t.Threshold { return t.RightVal }
    return t.LeftVal
}

func (gb *GradientBoosting) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    for i := range X {
        f := gb.Init
        for _, t := range gb.Trees { f += gb.LearningRate * t.eval(X[i]) }
        out[i] = sigmoid(f)
    }
    return out
}

func (gb *GradientBoosting) Predict(X [][]float64) []int { return probaToPred(gb.PredictProba(X)) }

func gbCandidateThresholds(X [][]float64, j int, nCand int) []float64 {
    if nCand <= 0 { nCand = 16 }
    n := len(X)
    vals := make([]float64, n)
    for i := 0; i < n; i++ { vals[i] = X[i][j] }
    sort.Float64s(vals)
    out := make([]float64, 0, nCand)
    for k := 1; k < nCand; k++ {
        idx := int(math.Round(float64(k) / float64(nCand) * float64(n-1)))
        if idx <= 0 || idx >= n { continue }
        thr := vals[idx]
        if len(out) == 0 || thr != out[len(out)-1] {
            out = append(out, thr)
        }
    }
    if len(out) == 0 {
        sum := 0.0
        for i := 0; i < n; i++ { sum += vals[i] }
        out = append(out, sum/float64(n))
    }
    return out
}
