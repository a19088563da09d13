package data

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestNewDatasetValidates(t *testing.T) {
    names := []string{"f"}
    tests := []struct {
        name string
        X    [][]float64
        y    []int
        s    []string
    }{
        {"short labels", [][]float64{{1}, {2}}, []int{1}, []string{"a", "b"}},
        {"short sensitive", [][]float64{{1}, {2}}, []int{1, 0}, []string{"a"}},
        {"ragged row", [][]float64{{1}, {2, 3}}, []int{1, 0}, []string{"a", "b"}},
        {"non binary", [][]float64{{1}, {2}}, []int{1, 2}, []string{"a", "b"}},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            _, err := NewDataset(names, tt.X, tt.y, tt.s, "grp")
            assert.Error(t, err)
        })
    }

    d, err := NewDataset(names, [][]float64{{1}, {2}, {3}}, []int{1, 0, 1}, []string{"b", "a", "b"}, "grp")
    require.NoError(t, err)
    assert.Equal(t, 3, d.Len())
    assert.Equal(t, []string{"a", "b"}, d.Groups())
}

func TestSplitIsStratifiedAndDeterministic(t *testing.T) {
    n := 200
    X := make([][]float64, n)
    y := make([]int, n)
    s := make([]string, n)
    for i := range X {
        X[i] = []float64{float64(i)}
        if i%4 == 0 { y[i] = 1 }
        s[i] = []string{"x", "y"}[i%2]
    }
    d, err := NewDataset([]string{"i"}, X, y, s, "grp")
    require.NoError(t, err)

    train, test, err := d.Split(0.25, 42)
    require.NoError(t, err)
    assert.Equal(t, n, train.Len()+test.Len())

    pos := func(ds *Dataset) int {
        c := 0
        for _, v := range ds.Y { c += v }
        return c
    }
    assert.Equal(t, 37, pos(train))
    assert.Equal(t, 13, pos(test))

    for i := range train.X {
        j := int(train.X[i][0])
        assert.Equal(t, y[j], train.Y[i])
        assert.Equal(t, s[j], train.Sensitive[i])
    }

    train2, _, err := d.Split(0.25, 42)
    require.NoError(t, err)
    assert.Equal(t, train.X, train2.X)

    _, _, err = d.Split(1.5, 1)
    assert.Error(t, err)
}
