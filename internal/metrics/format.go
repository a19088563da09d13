package metrics

import (
    "fmt"
    "io"
    "text/tabwriter"
)

// WriteText renders the table with one row per group, then the overall
// row and a trailing disparity row. A blank group value is shown as "<empty>".
func (t *Table) WriteText(w io.Writer) error {
    tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
    fmt.Fprint(tw, "group\t")
    for _, m := range t.Metrics { fmt.Fprintf(tw, "%s\t", m) }
    fmt.Fprintln(tw)
    for _, g := range t.Groups {
        label := g
        if g == "" { label = "<empty>" }
        fmt.Fprintf(tw, "%s\t", label)
        for _, m := range t.Metrics { fmt.Fprintf(tw, "%.4f\t", t.ByGroup[m][g]) }
        fmt.Fprintln(tw)
    }
    fmt.Fprint(tw, "overall\t")
    for _, m := range t.Metrics { fmt.Fprintf(tw, "%.4f\t", t.Overall[m]) }
    fmt.Fprintln(tw)
    fmt.Fprint(tw, "difference\t")
    for _, m := range t.Metrics { fmt.Fprintf(tw, "%.4f\t", t.Difference(m)) }
    fmt.Fprintln(tw)
    return tw.Flush()
}
