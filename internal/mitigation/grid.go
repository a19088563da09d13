package mitigation

import "sort"

// latticeGrid returns n distinct points of the dim-dimensional L1 ball of
// radius limit. The points are integer lattice points of the smallest ball
// holding at least n of them, ordered by L1 norm then lexicographically, and
// scaled so the outermost shell sits on limit. The origin always comes first.
func latticeGrid(n, dim int, limit float64) [][]float64 {
    if n <= 0 || dim <= 0 { return nil }
    r := 0
    for countL1Ball(dim, r) < n { r++ }

    pts := make([][]int, 0, n)
    cur := make([]int, dim)
    var walk func(d, budget int)
    walk = func(d, budget int) {
        if d == dim {
            p := make([]int, dim)
            copy(p, cur)
            pts = append(pts, p)
            return
        }
        for v := -budget; v <= budget; v++ {
            cur[d] = v
            walk(d+1, budget-abs(v))
        }
    }
    walk(0, r)

    sort.SliceStable(pts, func(i, j int) bool {
        ni, nj := l1(pts[i]), l1(pts[j])
        if ni != nj { return ni < nj }
        for k := range pts[i] {
            if pts[i][k] != pts[j][k] { return pts[i][k] < pts[j][k] }
        }
        return false
    })

    scale := 0.0
    if r > 0 { scale = limit / float64(r) }
    out := make([][]float64, n)
    for i := 0; i < n; i++ {
        out[i] = make([]float64, dim)
        for k, v := range pts[i] { out[i][k] = float64(v) * scale }
    }
    return out
}

// countL1Ball counts integer points x in Z^dim with |x|_1 <= r.
func countL1Ball(dim, r int) int {
    if dim == 0 { return 1 }
    total := 0
    for v := -r; v <= r; v++ { total += countL1Ball(dim-1, r-abs(v)) }
    return total
}

func l1(p []int) int {
    s := 0
    for _, v := range p { s += abs(v) }
    return s
}

func abs(v int) int { if v < 0 { return -v } ; return v }
