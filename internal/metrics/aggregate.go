package metrics

import (
    "errors"
    "fmt"
    "math"
    "sort"

    "fairgrid/internal/data"
)

var ErrLengthMismatch = errors.New("y_true, y_pred and sensitive values differ in length")

// MetricComputationError reports a metric that failed on one partition.
// Group is empty for the overall partition.
type MetricComputationError struct {
    Metric string
    Group  string
    Err    error
}

func (e *MetricComputationError) Error() string {
    where := "overall"
    if e.Group != "" { where = "group " + e.Group }
    return fmt.Sprintf("metric %s on %s: %v", e.Metric, where, e.Err)
}

func (e *MetricComputationError) Unwrap() error { return e.Err }

// Table holds metric scores per sensitive group plus an overall row.
type Table struct {
    Metrics []string                      `json:"metrics"`
    Groups  []string                      `json:"groups"`
    Overall map[string]float64            `json:"overall"`
    ByGroup map[string]map[string]float64 `json:"by_group"`
}

func Compute(yTrue, yPred []int, sensitive []string, fns map[string]Func) (*Table, error) {
    if len(yTrue) != len(yPred) || len(yTrue) != len(sensitive) {
        return nil, fmt.Errorf("%w: %d/%d/%d", ErrLengthMismatch, len(yTrue), len(yPred), len(sensitive))
    }
    names := make([]string, 0, len(fns))
    for k := range fns { names = append(names, k) }
    sort.Strings(names)

    groups := data.DistinctSorted(sensitive)
    parts := make(map[string][]int, len(groups))
    for i, v := range sensitive { parts[v] = append(parts[v], i) }

    t := &Table{
        Metrics: names,
        Groups:  groups,
        Overall: make(map[string]float64, len(names)),
        ByGroup: make(map[string]map[string]float64, len(names)),
    }
    for _, name := range names {
        fn := fns[name]
        v, err := score(fn, yTrue, yPred)
        if err != nil { return nil, &MetricComputationError{Metric: name, Err: err} }
        t.Overall[name] = v

        row := make(map[string]float64, len(groups))
        for _, g := range groups {
            idx := parts[g]
            yt := make([]int, len(idx))
            yp := make([]int, len(idx))
            for j, i := range idx { yt[j] = yTrue[i]; yp[j] = yPred[i] }
            v, err := score(fn, yt, yp)
            if err != nil { return nil, &MetricComputationError{Metric: name, Group: g, Err: err} }
            row[g] = v
        }
        t.ByGroup[name] = row
    }
    return t, nil
}

func score(fn Func, yTrue, yPred []int) (float64, error) {
    v, err := fn(yTrue, yPred)
    if errors.Is(err, ErrUndefined) { return 0, nil }
    if err != nil { return 0, err }
    if math.IsNaN(v) { return 0, nil }
    return v, nil
}

// Value returns the score of metric for group. An empty group is an
// ordinary group value; use OverallValue for the whole population.
func (t *Table) Value(metric, group string) (float64, bool) {
    row, ok := t.ByGroup[metric]
    if !ok { return 0, false }
    v, ok := row[group]
    return v, ok
}

func (t *Table) OverallValue(metric string) (float64, bool) {
    v, ok := t.Overall[metric]
    return v, ok
}

func (t *Table) GroupMin(metric string) float64 {
    out := math.Inf(1)
    for _, g := range t.Groups { out = math.Min(out, t.ByGroup[metric][g]) }
    return out
}

func (t *Table) GroupMax(metric string) float64 {
    out := math.Inf(-1)
    for _, g := range t.Groups { out = math.Max(out, t.ByGroup[metric][g]) }
    return out
}

// Difference is the disparity of metric: best group minus worst group.
func (t *Table) Difference(metric string) float64 {
    if len(t.Groups) == 0 { return 0 }
    return t.GroupMax(metric) - t.GroupMin(metric)
}

// Ratio is worst group over best group; 1 when every group scores 0.
func (t *Table) Ratio(metric string) float64 {
    if len(t.Groups) == 0 { return 1 }
    hi := t.GroupMax(metric)
    if hi == 0 { return 1 }
    return t.GroupMin(metric) / hi
}

// EqualizedOddsDifference is the larger of the TPR and FPR disparities.
func EqualizedOddsDifference(yTrue, yPred []int, sensitive []string) (float64, error) {
    t, err := Compute(yTrue, yPred, sensitive, map[string]Func{
        TruePositiveRate:  RecallScore,
        FalsePositiveRate: FalsePositiveRateScore,
    })
    if err != nil { return 0, err }
    return math.Max(t.Difference(TruePositiveRate), t.Difference(FalsePositiveRate)), nil
}

func DemographicParityDifference(yTrue, yPred []int, sensitive []string) (float64, error) {
    t, err := Compute(yTrue, yPred, sensitive, map[string]Func{SelectionRate: SelectionRateScore})
    if err != nil { return 0, err }
    return t.Difference(SelectionRate), nil
}
