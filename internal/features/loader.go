package features

import (
    "encoding/csv"
    "fmt"
    "io"
    "os"
    "strconv"

    "fairgrid/internal/data"
)

const SensitiveColumn = "age_bucket"

func LoadDataset(path string) (*data.Dataset, error) {
    f, err := os.Open(path)
    if err != nil { return nil, err }
    defer f.Close()
    return ReadDataset(f)
}

// ReadDataset parses applicant CSV rows as written by
// data.GenerateSyntheticApplicants. Columns are located by header name.
func ReadDataset(r io.Reader) (*data.Dataset, error) {
    rows, err := csv.NewReader(r).ReadAll()
    if err != nil { return nil, err }
    if len(rows) < 2 { return nil, fmt.Errorf("csv has no data rows") }

    col := map[string]int{}
    for i, h := range rows[0] { col[h] = i }
    for _, h := range data.Header {
        if _, ok := col[h]; !ok { return nil, fmt.Errorf("csv missing column %q", h) }
    }

    X := make([][]float64, 0, len(rows)-1)
    y := make([]int, 0, len(rows)-1)
    sens := make([]string, 0, len(rows)-1)
    var names []string
    for i := 1; i < len(rows); i++ {
        row := rows[i]
        a, err := parseApplicant(row, col)
        if err != nil { return nil, fmt.Errorf("row %d: %w", i, err) }
        v, n := Vectorize(a)
        names = n
        X = append(X, v)
        y = append(y, a.Approved)
        sens = append(sens, a.AgeBucket)
    }
    return data.NewDataset(names, X, y, sens, SensitiveColumn)
}

func parseApplicant(row []string, col map[string]int) (data.Applicant, error) {
    get := func(k string) string { return row[col[k]] }
    var a data.Applicant
    var err error
    a.ApplicantID = get("applicant_id")
    a.AgeBucket = get("age_bucket")
    a.Employment = get("employment")
    a.Purpose = get("purpose")
    if a.Income, err = strconv.ParseFloat(get("income"), 64); err != nil { return a, err }
    if a.Debt, err = strconv.ParseFloat(get("debt"), 64); err != nil { return a, err }
    if a.YearsEmployed, err = strconv.ParseFloat(get("years_employed"), 64); err != nil { return a, err }
    if a.CreditLines, err = strconv.Atoi(get("credit_lines")); err != nil { return a, err }
    if a.LatePayments, err = strconv.Atoi(get("late_payments")); err != nil { return a, err }
    if a.Approved, err = strconv.Atoi(get("approved")); err != nil { return a, err }
    return a, nil
}
