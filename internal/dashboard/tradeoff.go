package dashboard

import (
    "encoding/csv"
    "fmt"
    "os"
    "path/filepath"
    "sort"

    "gonum.org/v1/plot"
    "gonum.org/v1/plot/plotter"
    "gonum.org/v1/plot/plotutil"
    "gonum.org/v1/plot/vg"
    "gonum.org/v1/plot/vg/draw"
)

// TradeoffPoint places a model in accuracy / disparity space.
type TradeoffPoint struct {
    ID        string  `json:"id"`
    Accuracy  float64 `json:"accuracy"`
    Disparity float64 `json:"disparity"`
}

// Points uses the equalized odds difference as the disparity axis.
func (b *Bundle) Points() []TradeoffPoint {
    out := make([]TradeoffPoint, len(b.Models))
    for i, m := range b.Models {
        out[i] = TradeoffPoint{ID: m.ID, Accuracy: m.Accuracy, Disparity: m.EqualizedOddsDifference}
    }
    return out
}

// Frontier returns the points no other point dominates, sorted by
// disparity. Higher accuracy and lower disparity are better.
func Frontier(points []TradeoffPoint) []TradeoffPoint {
    var frontier []TradeoffPoint
    for i := range points {
        dominated := false
        for j := range points {
            if i != j && dominates(points[j], points[i]) { dominated = true; break }
        }
        if !dominated { frontier = append(frontier, points[i]) }
    }
    sort.SliceStable(frontier, func(i, j int) bool {
        if frontier[i].Disparity != frontier[j].Disparity { return frontier[i].Disparity < frontier[j].Disparity }
        return frontier[i].ID < frontier[j].ID
    })
    return frontier
}

func dominates(a, b TradeoffPoint) bool {
    if a.Accuracy < b.Accuracy || a.Disparity > b.Disparity { return false }
    return a.Accuracy > b.Accuracy || a.Disparity < b.Disparity
}

func WriteTradeoffCSV(path string, points []TradeoffPoint) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()
    onFrontier := map[string]bool{}
    for _, p := range Frontier(points) { onFrontier[p.ID] = true }
    w := csv.NewWriter(f)
    if err := w.Write([]string{"id", "accuracy", "equalized_odds_difference", "pareto"}); err != nil { return err }
    for _, p := range points {
        rec := []string{p.ID, fmt.Sprintf("%.6f", p.Accuracy), fmt.Sprintf("%.6f", p.Disparity), fmt.Sprint(onFrontier[p.ID])}
        if err := w.Write(rec); err != nil { return err }
    }
    w.Flush()
    return w.Error()
}

// PlotTradeoff draws every point with the Pareto frontier overlaid. The
// point whose ID equals highlight, usually the unmitigated model, gets its
// own glyph. The image format follows the extension of path.
func PlotTradeoff(path string, points []TradeoffPoint, highlight string) error {
    p := plot.New()
    p.Title.Text = "Accuracy vs equalized odds difference"
    p.X.Label.Text = "Equalized odds difference"
    p.Y.Label.Text = "Accuracy"
    p.Y.Max = 1
    p.X.Min = 0

    var rest, marked plotter.XYs
    for _, pt := range points {
        xy := plotter.XY{X: pt.Disparity, Y: pt.Accuracy}
        if pt.ID == highlight { marked = append(marked, xy) } else { rest = append(rest, xy) }
    }
    if len(rest) > 0 {
        s, err := plotter.NewScatter(rest)
        if err != nil { return err }
        s.GlyphStyle.Color = plotutil.Color(0)
        s.GlyphStyle.Radius = vg.Points(3)
        p.Add(s)
        p.Legend.Add("Candidates", s)
    }
    if len(marked) > 0 {
        s, err := plotter.NewScatter(marked)
        if err != nil { return err }
        s.GlyphStyle.Color = plotutil.Color(1)
        s.GlyphStyle.Shape = draw.PyramidGlyph{}
        s.GlyphStyle.Radius = vg.Points(5)
        p.Add(s)
        p.Legend.Add(highlight, s)
    }
    front := Frontier(points)
    if len(front) > 1 {
        xys := make(plotter.XYs, len(front))
        for i, pt := range front { xys[i] = plotter.XY{X: pt.Disparity, Y: pt.Accuracy} }
        if err := plotutil.AddLines(p, "Pareto frontier", xys); err != nil { return err }
    }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
