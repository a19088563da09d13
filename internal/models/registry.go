package models

import "fmt"

// Params carries the hyperparameters shared by the learners. Fields that do
// not apply to the chosen algorithm are ignored.
type Params struct {
    Algo       string  `yaml:"algo" toml:"algo" validate:"oneof=dt rf bagging gb logreg"`
    Estimators int     `yaml:"estimators" toml:"estimators" validate:"gte=1"`
    MaxDepth   int     `yaml:"max_depth" toml:"max_depth" validate:"gte=1"`
    MinSamples int     `yaml:"min_samples" toml:"min_samples" validate:"gte=1"`
    LR         float64 `yaml:"lr" toml:"lr" validate:"gt=0"`
    Epochs     int     `yaml:"epochs" toml:"epochs" validate:"gte=1"`
    Seed       int64   `yaml:"seed" toml:"seed"`
}

func DefaultParams() Params {
    return Params{Algo: "dt", Estimators: 30, MaxDepth: 6, MinSamples: 20, LR: 0.1, Epochs: 300, Seed: 1}
}

// New returns an untrained model. Every call yields an independent instance.
func New(p Params) (Model, error) {
    switch p.Algo {
    case "rf", "bagging":
        rf := NewRandomForest()
        rf.NEstimators = p.Estimators
        rf.MaxDepth = p.MaxDepth
        rf.MinSamples = p.MinSamples
        rf.Seed = p.Seed
        if p.Algo == "bagging" { rf.MaxFeatures = -1 }
        return rf, nil
    case "gb":
        gb := NewGradientBoosting()
        gb.NEstimators = p.Estimators
        gb.LearningRate = p.LR
        gb.MinSamples = p.MinSamples
        return gb, nil
    case "logreg":
        lr := NewLogisticRegression()
        lr.Lr = p.LR
        lr.Epochs = p.Epochs
        return lr, nil
    case "dt", "":
        dt := NewDecisionTree()
        dt.MaxDepth = p.MaxDepth
        dt.MinSamplesSplit = p.MinSamples
        dt.Seed = p.Seed
        return dt, nil
    default:
        return nil, fmt.Errorf("unknown algorithm %q", p.Algo)
    }
}
