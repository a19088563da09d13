package metrics

import "errors"

// Func scores one partition of predictions.
type Func func(yTrue, yPred []int) (float64, error)

// ErrUndefined is returned by a Func whose ratio has a zero denominator.
// Compute records such scores as 0.0.
var ErrUndefined = errors.New("metric undefined for partition")

const (
    Accuracy          = "accuracy"
    Precision         = "precision"
    Recall            = "recall"
    SelectionRate     = "selection_rate"
    TruePositiveRate  = "true_positive_rate"
    FalsePositiveRate = "false_positive_rate"
    F1                = "f1"
    Count             = "count"
)

type confusion struct{ tp, fp, tn, fn int }

func confusionOf(yTrue, yPred []int) confusion {
    var c confusion
    for i := range yTrue {
        switch {
        case yPred[i] == 1 && yTrue[i] == 1:
            c.tp++
        case yPred[i] == 1:
            c.fp++
        case yTrue[i] == 0:
            c.tn++
        default:
            c.fn++
        }
    }
    return c
}

func ratio(num, den int) (float64, error) {
    if den == 0 { return 0, ErrUndefined }
    return float64(num) / float64(den), nil
}

func AccuracyScore(yTrue, yPred []int) (float64, error) {
    c := confusionOf(yTrue, yPred)
    return ratio(c.tp+c.tn, len(yTrue))
}

func PrecisionScore(yTrue, yPred []int) (float64, error) {
    c := confusionOf(yTrue, yPred)
    return ratio(c.tp, c.tp+c.fp)
}

// RecallScore is also the true positive rate.
func RecallScore(yTrue, yPred []int) (float64, error) {
    c := confusionOf(yTrue, yPred)
    return ratio(c.tp, c.tp+c.fn)
}

func FalsePositiveRateScore(yTrue, yPred []int) (float64, error) {
    c := confusionOf(yTrue, yPred)
    return ratio(c.fp, c.fp+c.tn)
}

func SelectionRateScore(yTrue, yPred []int) (float64, error) {
    c := confusionOf(yTrue, yPred)
    return ratio(c.tp+c.fp, len(yPred))
}

func F1Score(yTrue, yPred []int) (float64, error) {
    c := confusionOf(yTrue, yPred)
    return ratio(2*c.tp, 2*c.tp+c.fp+c.fn)
}

func CountScore(yTrue, _ []int) (float64, error) { return float64(len(yTrue)), nil }

// Standard is the set reported per model on the dashboard.
func Standard() map[string]Func {
    return map[string]Func{
        Accuracy:      AccuracyScore,
        Precision:     PrecisionScore,
        Recall:        RecallScore,
        SelectionRate: SelectionRateScore,
    }
}

// Extended adds the rates equalized odds is defined over.
func Extended() map[string]Func {
    fns := Standard()
    fns[TruePositiveRate] = RecallScore
    fns[FalsePositiveRate] = FalsePositiveRateScore
    fns[F1] = F1Score
    fns[Count] = CountScore
    return fns
}
