package models

import (
    "math"
    "math/rand"
)

type DTNode struct {
    Feature   int
    Threshold float64
    Left      *DTNode
    Right     *DTNode
    IsLeaf    bool
    ProbaLeaf float64
}

type DecisionTree struct {
    MaxDepth           int
    MinSamplesSplit    int
    MaxThresholdsPerFe int
    MaxFeatures        int
    Seed               int64
    Root               *DTNode

    rng *rand.Rand
}

func NewDecisionTree() *DecisionTree {
    return &DecisionTree{MaxDepth: 6, MinSamplesSplit: 20, MaxThresholdsPerFe: 64, Seed: 1}
}

func (dt *DecisionTree) Name() string { return "DecisionTree" }

func (dt *DecisionTree) Fit(X [][]float64, y []int, sampleWeight []float64) error {
    w, err := resolveWeights(X, y, sampleWeight)
    if err != nil { return err }
    dt.rng = rand.New(rand.NewSource(dt.Seed))
    idx := make([]int, len(X))
    for i := range idx { idx[i] = i }
    dt.Root = dt.build(X, y, w, idx, 0)
    return nil
}

func (dt *DecisionTree) Predict(X [][]float64) []int { return probaToPred(dt.PredictProba(X)) }

func (dt *DecisionTree) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    for i := range X { out[i] = dt.predictProbaOne(X[i]) }
    return out
}

func (dt *DecisionTree) predictProbaOne(x []float64) float64 {
    n := dt.Root
    if n == nil { return 0.5 }
    for !n.IsLeaf {
        if x[n.Feature] <= n.Threshold { n = n.Left } else { n = n.Right }
        if n == nil { return 0.5 }
    }
    return n.ProbaLeaf
}

func (dt *DecisionTree) build(X [][]float64, y []int, w []float64, idx []int, depth int) *DTNode {
    node := &DTNode{}
    p := classProba(y, w, idx)
    if len(idx) < dt.MinSamplesSplit || depth >= dt.MaxDepth || p == 0 || p == 1 {
        node.IsLeaf = true
        node.ProbaLeaf = p
        return node
    }
    bestFeature := -1
    bestThr := 0.0
    bestImp := math.MaxFloat64
    leftIdxBest := []int{}
    rightIdxBest := []int{}

    feats := pickFeatures(dt.rng, len(X[0]), dt.MaxFeatures)
    for _, f := range feats {
        cand := candidateThresholds(dt.rng, X, idx, f, dt.MaxThresholdsPerFe)
        for _, thr := range cand {
            lIdx, rIdx := splitIdx(X, idx, f, thr)
            if len(lIdx) == 0 || len(rIdx) == 0 { continue }
            imp := giniImpurity(y, w, lIdx, rIdx)
            if imp < bestImp {
                bestImp = imp
                bestFeature = f
                bestThr = thr
                leftIdxBest = lIdx
                rightIdxBest = rIdx
            }
        }
    }

    if bestFeature == -1 {
        node.IsLeaf = true
        node.ProbaLeaf = p
        return node
    }
    node.Feature = bestFeature
    node.Threshold = bestThr
    node.Left = dt.build(X, y, w, leftIdxBest, depth+1)
    node.Right = dt.build(X, y, w, rightIdxBest, depth+1)
    return node
}

// classProba is the weighted share of positives; an all-zero-weight node
// carries no evidence and predicts 0.5.
func classProba(y []int, w []float64, idx []int) float64 {
    pos, total := 0.0, 0.0
    for _, i := range idx { pos += w[i] * float64(y[i]); total += w[i] }
    if total == 0 { return 0.5 }
    return pos / total
}

func splitIdx(X [][]float64, idx []int, f int, thr float64) ([]int, []int) {
    l := make([]int, 0, len(idx))
    r := make([]int, 0, len(idx))
    for _, i := range idx {
        if X[i][f] <= thr { l = append(l, i) } else { r = append(r, i) }
    }
    return l, r
}

func giniImpurity(y []int, w []float64, lIdx, rIdx []int) float64 {
    g := func(ids []int) (float64, float64) {
        pos, total := 0.0, 0.0
        for _, i := range ids { pos += w[i] * float64(y[i]); total += w[i] }
        if total == 0 { return 0, 0 }
        p := pos / total
        return p * (1 - p), total
    }
    gl, wl := g(lIdx)
    gr, wr := g(rIdx)
    n := wl + wr
    if n == 0 { return math.MaxFloat64 }
    return (wl/n)*gl + (wr/n)*gr
}

func candidateThresholds(rng *rand.Rand, X [][]float64, idx []int, f int, maxC int) []float64 {
    values := make([]float64, len(idx))
    for j, i := range idx { values[j] = X[i][f] }
    rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
    m := int(math.Min(float64(maxC), float64(len(values))))
    out := make([]float64, 0, m)
    for i := 0; i < m; i++ { out = append(out, values[i]) }
    return out
}

func pickFeatures(rng *rand.Rand, nFeats int, maxFeats int) []int {
    idx := make([]int, nFeats)
    for i := 0; i < nFeats; i++ { idx[i] = i }
    if maxFeats <= 0 || maxFeats >= nFeats { return idx }
    rng.Shuffle(nFeats, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
    out := make([]int, maxFeats)
    copy(out, idx[:maxFeats])
    return out
}
