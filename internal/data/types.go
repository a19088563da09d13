package data

import (
    "errors"
    "fmt"
    "math/rand"
    "sort"
)

type Applicant struct {
    ApplicantID    string  `json:"applicant_id"`
    AgeBucket      string  `json:"age_bucket"`
    Income         float64 `json:"income"`
    Debt           float64 `json:"debt"`
    YearsEmployed  float64 `json:"years_employed"`
    CreditLines    int     `json:"credit_lines"`
    LatePayments   int     `json:"late_payments"`
    Employment     string  `json:"employment"`
    Purpose        string  `json:"purpose"`
    Approved       int     `json:"approved"`
}

var ErrMisaligned = errors.New("dataset columns are not aligned")

// Dataset holds feature vectors, binary labels and the sensitive attribute
// row-aligned. It is never mutated after NewDataset returns.
type Dataset struct {
    FeatureNames  []string
    X             [][]float64
    Y             []int
    Sensitive     []string
    SensitiveName string
}

func NewDataset(featureNames []string, X [][]float64, y []int, sensitive []string, sensitiveName string) (*Dataset, error) {
    if len(X) != len(y) || len(y) != len(sensitive) {
        return nil, fmt.Errorf("%w: X=%d y=%d sensitive=%d", ErrMisaligned, len(X), len(y), len(sensitive))
    }
    width := len(featureNames)
    for i := range X {
        if len(X[i]) != width {
            return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrMisaligned, i, len(X[i]), width)
        }
        if y[i] != 0 && y[i] != 1 {
            return nil, fmt.Errorf("label at row %d is %d, want 0 or 1", i, y[i])
        }
    }
    return &Dataset{FeatureNames: featureNames, X: X, Y: y, Sensitive: sensitive, SensitiveName: sensitiveName}, nil
}

func (d *Dataset) Len() int { return len(d.Y) }

// Groups returns the distinct sensitive values in sorted order.
func (d *Dataset) Groups() []string { return DistinctSorted(d.Sensitive) }

func DistinctSorted(values []string) []string {
    seen := make(map[string]struct{}, 8)
    out := []string{}
    for _, v := range values {
        if _, ok := seen[v]; ok { continue }
        seen[v] = struct{}{}
        out = append(out, v)
    }
    sort.Strings(out)
    return out
}

func (d *Dataset) Subset(idx []int) *Dataset {
    X := make([][]float64, len(idx))
    y := make([]int, len(idx))
    s := make([]string, len(idx))
    for j, i := range idx { X[j] = d.X[i]; y[j] = d.Y[i]; s[j] = d.Sensitive[i] }
    return &Dataset{FeatureNames: d.FeatureNames, X: X, Y: y, Sensitive: s, SensitiveName: d.SensitiveName}
}

// Split performs a label-stratified shuffle split.
func (d *Dataset) Split(testRatio float64, seed int64) (train, test *Dataset, err error) {
    if testRatio <= 0 || testRatio >= 1 {
        return nil, nil, fmt.Errorf("test ratio %.3f out of (0,1)", testRatio)
    }
    rng := rand.New(rand.NewSource(seed))
    var posIdx, negIdx []int
    for i := range d.Y { if d.Y[i] == 1 { posIdx = append(posIdx, i) } else { negIdx = append(negIdx, i) } }
    rp := rng.Perm(len(posIdx))
    rn := rng.Perm(len(negIdx))
    pTrain := int((1 - testRatio) * float64(len(posIdx)))
    nTrain := int((1 - testRatio) * float64(len(negIdx)))
    trainIdx := make([]int, 0, pTrain+nTrain)
    testIdx := make([]int, 0, d.Len()-pTrain-nTrain)
    for i := 0; i < len(posIdx); i++ { if i < pTrain { trainIdx = append(trainIdx, posIdx[rp[i]]) } else { testIdx = append(testIdx, posIdx[rp[i]]) } }
    for i := 0; i < len(negIdx); i++ { if i < nTrain { trainIdx = append(trainIdx, negIdx[rn[i]]) } else { testIdx = append(testIdx, negIdx[rn[i]]) } }
    rng.Shuffle(len(trainIdx), func(i, j int) { trainIdx[i], trainIdx[j] = trainIdx[j], trainIdx[i] })
    rng.Shuffle(len(testIdx), func(i, j int) { testIdx[i], testIdx[j] = testIdx[j], testIdx[i] })
    return d.Subset(trainIdx), d.Subset(testIdx), nil
}
