package main

import (
    "flag"
    "fmt"
    "os"

    "fairgrid/internal/dashboard"
    "fairgrid/internal/metrics"
)

func main() {
    bundlePath := flag.String("bundle", "data/dashboard.json", "Dashboard bundle to analyze")
    model := flag.String("model", "", "Only report this model ID")
    extended := flag.Bool("extended", false, "Also report TPR, FPR, F1 and counts")
    highlight := flag.String("highlight", "unmitigated", "Model marked on the trade-off plot")
    outImg := flag.String("out_img", "", "Trade-off PNG to write")
    outCsv := flag.String("out_csv", "", "Trade-off CSV to write")
    flag.Parse()

    b, err := dashboard.ReadFile(*bundlePath)
    if err != nil { fmt.Fprintln(os.Stderr, "Failed to read bundle:", err); os.Exit(1) }
    fmt.Printf("Bundle %s | sensitive=%s | groups=%v | models=%d\n", b.ID, b.SensitiveFeature, b.Groups, len(b.Models))

    fns := metrics.Standard()
    if *extended { fns = metrics.Extended() }
    found := false
    for _, m := range b.Models {
        if *model != "" && m.ID != *model { continue }
        found = true
        tbl, err := metrics.Compute(b.YTrue, m.Predictions, b.Sensitive, fns)
        if err != nil { fmt.Fprintf(os.Stderr, "%s: %v\n", m.ID, err); os.Exit(1) }
        eo, err := metrics.EqualizedOddsDifference(b.YTrue, m.Predictions, b.Sensitive)
        if err != nil { fmt.Fprintf(os.Stderr, "%s: %v\n", m.ID, err); os.Exit(1) }
        fmt.Printf("\n%s | accuracy=%.4f | eo_diff=%.4f | selection_ratio=%.4f\n",
            m.ID, tbl.Overall[metrics.Accuracy], eo, tbl.Ratio(metrics.SelectionRate))
        for k, v := range m.Meta { fmt.Printf("  %s: %s\n", k, v) }
        if err := tbl.WriteText(os.Stdout); err != nil { fmt.Fprintln(os.Stderr, err); os.Exit(1) }
    }
    if !found { fmt.Fprintln(os.Stderr, "Unknown model:", *model); os.Exit(1) }

    points := b.Points()
    fmt.Println("\nPareto frontier:")
    for _, p := range dashboard.Frontier(points) {
        fmt.Printf("  %-14s accuracy=%.4f eo_diff=%.4f\n", p.ID, p.Accuracy, p.Disparity)
    }

    if *outCsv != "" {
        if err := dashboard.WriteTradeoffCSV(*outCsv, points); err != nil {
            fmt.Println("Failed to write CSV:", err)
        } else {
            fmt.Println("Trade-off CSV saved to:", *outCsv)
        }
    }
    if *outImg != "" {
        if err := dashboard.PlotTradeoff(*outImg, points, *highlight); err != nil {
            fmt.Println("Failed to write PNG:", err)
        } else {
            fmt.Println("Trade-off plot saved to:", *outImg)
        }
    }
}
