package features

import (
    "path/filepath"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "fairgrid/internal/data"
)

func TestGeneratedApplicantsLoad(t *testing.T) {
    path := filepath.Join(t.TempDir(), "data", "applicants.csv")
    require.NoError(t, data.GenerateSyntheticApplicants(500, 9, path))

    ds, err := LoadDataset(path)
    require.NoError(t, err)
    assert.Equal(t, 500, ds.Len())
    assert.Equal(t, SensitiveColumn, ds.SensitiveName)
    assert.Equal(t, FeatureNames(), ds.FeatureNames)
    assert.Equal(t, data.AgeBuckets, ds.Groups())
    for _, row := range ds.X { assert.Len(t, row, len(ds.FeatureNames)) }

    pos := 0
    for _, v := range ds.Y { pos += v }
    assert.Greater(t, pos, 0)
    assert.Less(t, pos, 500)
}

func TestVectorizeExcludesSensitiveAttribute(t *testing.T) {
    a := data.Applicant{AgeBucket: "18-25", Income: 2000, Debt: 500, Employment: "Contract", Purpose: "car"}
    b := a
    b.AgeBucket = "60+"
    va, names := Vectorize(a)
    vb, _ := Vectorize(b)
    assert.Equal(t, va, vb)
    for _, n := range names { assert.NotContains(t, strings.ToLower(n), "age") }

    idx := map[string]int{}
    for i, n := range names { idx[n] = i }
    assert.Equal(t, 1.0, va[idx["Emp_contract"]])
    assert.Equal(t, 0.25, va[idx["DebtToIncome"]])
}

func TestReadDatasetMissingColumn(t *testing.T) {
    _, err := ReadDataset(strings.NewReader("applicant_id,age_bucket\nA1,18-25\n"))
    assert.ErrorContains(t, err, "missing column")
}
