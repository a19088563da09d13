package mitigation

import (
    "fmt"
    "math"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestCountL1Ball(t *testing.T) {
    tests := []struct {
        dim, r, want int
    }{
        {1, 0, 1},
        {1, 3, 7},
        {2, 1, 5},
        {2, 3, 25},
        {3, 1, 7},
    }
    for _, tt := range tests {
        t.Run(fmt.Sprintf("dim%d_r%d", tt.dim, tt.r), func(t *testing.T) {
            assert.Equal(t, tt.want, countL1Ball(tt.dim, tt.r))
        })
    }
}

func TestLatticeGrid(t *testing.T) {
    tests := []struct {
        name  string
        n     int
        dim   int
        limit float64
    }{
        {"one point", 1, 2, 2},
        {"line", 20, 1, 2},
        {"plane", 20, 2, 2},
        {"four groups equalized odds", 20, 6, 1.5},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            grid := latticeGrid(tt.n, tt.dim, tt.limit)
            require.Len(t, grid, tt.n)
            seen := map[string]bool{}
            for _, p := range grid {
                require.Len(t, p, tt.dim)
                key := fmt.Sprint(p)
                assert.False(t, seen[key], "duplicate point %v", p)
                seen[key] = true
                norm := 0.0
                for _, v := range p { norm += math.Abs(v) }
                assert.LessOrEqual(t, norm, tt.limit+1e-9)
            }
            for _, v := range grid[0] { assert.Equal(t, 0.0, v) }
        })
    }
}

func TestLatticeGridLineSpacing(t *testing.T) {
    grid := latticeGrid(5, 1, 2)
    got := make([]float64, len(grid))
    for i, p := range grid { got[i] = p[0] }
    assert.Equal(t, []float64{0, -1, 1, -2, 2}, got)
}
